package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := Frame(ActionThrust, ActionFire)

	if !f.Has(ActionThrust) || !f.Has(ActionFire) {
		t.Errorf("Frame() = %v, expected Thrust and Fire", f.Actions)
	}
	if f.Has(ActionRotateLeft) {
		t.Error("Has(RotateLeft) = true, expected false")
	}

	c := f.Clone()
	f.Clear()
	if f.Has(ActionThrust) {
		t.Error("Clear() left Thrust set")
	}
	if !c.Has(ActionThrust) {
		t.Error("Clone() should copy the actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Set() on a zero frame should work")
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got      string
		expected string
	}{
		{ActionFirePressed.String(), "FirePressed"},
		{Action(99).String(), "Unknown"},
		{CueAsteroidSmall.String(), "asteroid-small"},
		{Cue(-1).String(), "unknown"},
		{PhaseGameOver.String(), "game-over"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("String() = %q, expected %q", tt.got, tt.expected)
		}
	}
}
