package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so the
// loader only sees what a test puts there.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdirDir := dir
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(chdirDir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })
	return dir
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, v := range Variants() {
		t.Run(string(v), func(t *testing.T) {
			got, err := decode(v, GetDefaultYAML(v))
			if err != nil {
				t.Fatalf("decode(%s) error: %v", v, err)
			}
			want := DefaultRoidsConfig(v)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("embedded %s.yaml differs from DefaultRoidsConfig:\n got  %+v\n want %+v", v, got, want)
			}
			if got.Variant != v {
				t.Errorf("Variant = %q, expected %q", got.Variant, v)
			}
		})
	}
}

func TestDefaultsValidate(t *testing.T) {
	for _, v := range Variants() {
		if err := DefaultRoidsConfig(v).Validate(); err != nil {
			t.Errorf("DefaultRoidsConfig(%s).Validate() = %v, expected nil", v, err)
		}
	}
}

func TestVariantRules(t *testing.T) {
	classic := DefaultRoidsConfig(VariantClassic)
	plus := DefaultRoidsConfig(VariantPlus)
	enders := DefaultRoidsConfig(VariantEnders)

	if classic.Enemies.Enabled || classic.Ship.TurretAlternation {
		t.Error("classic should have no enemies and a single muzzle")
	}
	if !plus.Enemies.Enabled || !plus.Ship.TurretAlternation {
		t.Error("plus should have enemies and alternating turrets")
	}
	if enders.Waves.LevelUpThreshold != 0 || enders.Ship.MaxBullets != 5 || !enders.Ship.FireOnPress {
		t.Errorf("enders rules wrong: %+v %+v", enders.Waves, enders.Ship)
	}
	if classic.Waves.Initial != 7 || plus.Waves.Initial != 10 {
		t.Errorf("initial waves = %d/%d, expected 7/10", classic.Waves.Initial, plus.Waves.Initial)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultRoidsConfig(VariantPlus)
	cfg.Field.Width = 0
	cfg.Ship.Lives = 0
	cfg.Asteroids.SeekChance = 1.5
	cfg.Asteroids.Placement = "orbit"
	cfg.Enemies.BaseHealth = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected error")
	}

	for _, want := range []string{"field", "ship.lives", "asteroids.seek_chance", "asteroids.placement", "enemies.base_health"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error missing %q: %v", want, err)
		}
	}
}

func TestValidateProbabilityOrder(t *testing.T) {
	cfg := DefaultRoidsConfig(VariantPlus)
	cfg.Asteroids.SeekChance = 2
	cfg.Waves.TopUpChance = -1
	cfg.Enemies.RetargetChance = 3
	cfg.Enemies.WanderChance = 4

	first := cfg.Validate()
	if first == nil {
		t.Fatal("Validate() = nil, expected error")
	}
	for rangeIdx, rangeN := 0, 20; rangeIdx < rangeN; rangeIdx++ {
		if got := cfg.Validate(); got.Error() != first.Error() {
			t.Fatalf("Validate() message changed between calls:\n%v\n%v", first, got)
		}
	}

	msg := first.Error()
	last := -1
	for _, name := range []string{"asteroids.seek_chance", "waves.top_up_chance", "enemies.retarget_chance", "enemies.wander_chance"} {
		i := strings.Index(msg, name)
		if i <= last {
			t.Errorf("Validate() reported %q out of order: %v", name, msg)
		}
		last = i
	}
}

func TestValidateIgnoresDisabledEnemies(t *testing.T) {
	cfg := DefaultRoidsConfig(VariantClassic)
	cfg.Enemies.BaseHealth = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil with enemies disabled", err)
	}
}

func TestLoadRoidsCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "ship:\n  lives: 7\nwaves:\n  initial: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRoids(VariantPlus, path)
	if err != nil {
		t.Fatalf("LoadRoids() error: %v", err)
	}
	if cfg.Ship.Lives != 7 || cfg.Waves.Initial != 2 {
		t.Errorf("overrides not applied: lives=%d initial=%d", cfg.Ship.Lives, cfg.Waves.Initial)
	}
	if cfg.Ship.Thrust != 0.1 || !cfg.Enemies.Enabled {
		t.Errorf("unset fields should keep variant defaults, got thrust=%v enemies=%v", cfg.Ship.Thrust, cfg.Enemies.Enabled)
	}
}

func TestLoadRoidsCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(bad, []byte("ship: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(invalid, []byte("ship:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read config"},
		{"malformed yaml", bad, "failed to parse config"},
		{"fails validation", invalid, "ship.lives"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadRoids(VariantPlus, tc.path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadRoids() error = %v, expected it to contain %q", err, tc.want)
			}
		})
	}
}

func TestLoadRoidsSearchOrder(t *testing.T) {
	dir := isolate(t)

	cfg, err := LoadRoids(VariantEnders, "")
	if err != nil {
		t.Fatalf("LoadRoids() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRoidsConfig(VariantEnders)) {
		t.Error("with no files present LoadRoids should return the embedded default")
	}

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join(dir, "configs", "enders.yaml")
	if err := os.WriteFile(local, []byte("ship:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadRoids(VariantEnders, "")
	if err != nil {
		t.Fatalf("LoadRoids() error: %v", err)
	}
	if cfg.Ship.Lives != 9 {
		t.Errorf("local ./configs override not used, lives = %d", cfg.Ship.Lives)
	}

	// A broken local file is skipped silently.
	if err := os.WriteFile(local, []byte("ship:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadRoids(VariantEnders, "")
	if err != nil {
		t.Fatalf("LoadRoids() error: %v", err)
	}
	if cfg.Ship.Lives != 3 {
		t.Errorf("invalid local file should fall through to defaults, lives = %d", cfg.Ship.Lives)
	}
}

func TestApplyRoidsPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		lives    int
		escalate bool
	}{
		{DifficultyEasy, 5, true},
		{DifficultyNormal, 3, true},
		{DifficultyHard, 2, true},
		{DifficultyFixed, 3, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRoidsConfig(VariantPlus)
			ApplyRoidsPreset(&cfg, tc.preset)
			if cfg.Ship.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Ship.Lives, tc.lives)
			}
			if cfg.Difficulty.Escalate != tc.escalate {
				t.Errorf("Escalate = %v, expected %v", cfg.Difficulty.Escalate, tc.escalate)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestDifficultyManagerScaling(t *testing.T) {
	d := NewDifficultyManager(DefaultRoidsConfig(VariantPlus))

	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"health level 1", d.EnemyHealth(1), 5},
		{"health level 2", d.EnemyHealth(2), 6},
		{"health level 5", d.EnemyHealth(5), 7},
		{"shoot interval level 1", d.EnemyShootInterval(1), 85},
		{"shoot interval floor", d.EnemyShootInterval(10), 40},
		{"shoot interval past floor", d.EnemyShootInterval(30), 40},
		{"spawn interval level 1", d.EnemySpawnInterval(1), 1150},
		{"spawn interval floor", d.EnemySpawnInterval(12), 600},
		{"cap level 1", d.EnemyCap(1), 1},
		{"cap level 3", d.EnemyCap(3), 2},
		{"cap level 6", d.EnemyCap(6), 3},
		{"wave level 2", d.WaveSize(2), 10},
		{"top-up level 1", d.TopUpTarget(1), 4},
	}

	for _, tc := range tests {
		if tc.got != tc.expected {
			t.Errorf("%s = %d, expected %d", tc.name, tc.got, tc.expected)
		}
	}

	if s := d.EnemySpeed(5); math.Abs(s-1.5) > 1e-9 {
		t.Errorf("EnemySpeed(5) = %v, expected 1.5", s)
	}
	if s := d.EnemyRetargetSpeed(5); s != 1.5 {
		t.Errorf("EnemyRetargetSpeed(5) = %v, expected fixed 1.5", s)
	}

	enders := NewDifficultyManager(DefaultRoidsConfig(VariantEnders))
	if s := enders.EnemyRetargetSpeed(3); math.Abs(s-1.3) > 1e-9 {
		t.Errorf("enders EnemyRetargetSpeed(3) = %v, expected 1.3", s)
	}
}

func TestDifficultyManagerFixed(t *testing.T) {
	cfg := DefaultRoidsConfig(VariantPlus)
	ApplyRoidsPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled() = true, expected false for fixed preset")
	}
	if h := d.EnemyHealth(10); h != 5 {
		t.Errorf("EnemyHealth(10) = %d, expected level-1 value 5", h)
	}
	if w := d.WaveSize(10); w != 9 {
		t.Errorf("WaveSize(10) = %d, expected level-1 value 9", w)
	}
}

func TestParseHelpers(t *testing.T) {
	if v, err := ParseVariant("enders"); err != nil || v != VariantEnders {
		t.Errorf("ParseVariant(enders) = %q, %v", v, err)
	}
	if _, err := ParseVariant("galaga"); err == nil {
		t.Error("ParseVariant(galaga) should fail")
	}
	if p, err := ParseDifficulty(""); err != nil || p != "" {
		t.Errorf("ParseDifficulty(\"\") = %q, %v", p, err)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("ParseDifficulty(nightmare) should fail")
	}
}

func TestMarshalRoidsRoundTrip(t *testing.T) {
	out, err := MarshalRoids(DefaultRoidsConfig(VariantEnders))
	if err != nil {
		t.Fatalf("MarshalRoids() error: %v", err)
	}
	if !strings.Contains(string(out), "placement: scatter") {
		t.Errorf("marshalled YAML missing placement:\n%s", out)
	}
}
