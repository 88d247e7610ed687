package roids

import "github.com/vovakirdan/roids-arcade/internal/core"

// Autopilot returns a fixed input script for headless runs: it starts the
// game, weaves, thrusts and fires in a repeating 40-tick pattern.
func Autopilot(tick int) core.InputFrame {
	f := core.NewInputFrame()
	switch {
	case tick == 0:
		f.Set(core.ActionStart)
	case tick%40 < 10:
		f.Set(core.ActionRotateLeft)
	case tick%40 < 15:
		f.Set(core.ActionThrust)
	}
	if tick%3 == 0 {
		f.Set(core.ActionFire)
		f.Set(core.ActionFirePressed)
	}
	return f
}
