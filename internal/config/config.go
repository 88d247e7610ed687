// Package config provides YAML-based simulation configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// Variant names a rule set of the asteroid shooter.
type Variant string

const (
	VariantClassic Variant = "classic"
	VariantPlus    Variant = "plus"
	VariantEnders  Variant = "enders"
)

// Variants returns all known variants in menu order.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantPlus, VariantEnders}
}

// ParseVariant converts a string to a Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("config: unknown variant %q", s)
}

// RoidsConfig contains every tunable of the simulation.
// Variant differences are expressed here rather than in code.
type RoidsConfig struct {
	Variant    Variant          `yaml:"variant"`
	Title      string           `yaml:"title"`
	Field      FieldConfig      `yaml:"field"`
	Ship       ShipConfig       `yaml:"ship"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Waves      WaveConfig       `yaml:"waves"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Particles  ParticleConfig   `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig is the play-field size in simulation units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Size                   float64 `yaml:"size"`
	HitRadius              float64 `yaml:"hit_radius"`
	Thrust                 float64 `yaml:"thrust"`
	RotationSpeed          float64 `yaml:"rotation_speed"`
	Drag                   float64 `yaml:"drag"`
	MaxSpeed               float64 `yaml:"max_speed"` // 0 = unlimited
	Lives                  int     `yaml:"lives"`
	ShootCooldown          int     `yaml:"shoot_cooldown"`
	InvulnerableTicks      int     `yaml:"invulnerable_ticks"`
	LevelStartInvulnerable bool    `yaml:"level_start_invulnerable"`
	TurretAlternation      bool    `yaml:"turret_alternation"`
	RecoilKick             float64 `yaml:"recoil_kick"`
	RecoilDecay            float64 `yaml:"recoil_decay"`
	MaxBullets             int     `yaml:"max_bullets"` // 0 = unlimited
	FireOnPress            bool    `yaml:"fire_on_press"`
}

// BulletConfig defines player and enemy projectiles.
type BulletConfig struct {
	Speed         float64 `yaml:"speed"`
	Radius        float64 `yaml:"radius"`
	Lifespan      int     `yaml:"lifespan"`
	EnemySpeed    float64 `yaml:"enemy_speed"`
	EnemyRadius   float64 `yaml:"enemy_radius"`
	EnemyLifespan int     `yaml:"enemy_lifespan"`
	EnemyAimError float64 `yaml:"enemy_aim_error"` // radians, uniform in ±value
}

// AsteroidConfig defines asteroid generation.
type AsteroidConfig struct {
	RadiusPerTier        float64 `yaml:"radius_per_tier"`
	SeekSpeed            float64 `yaml:"seek_speed"`
	TierSpeedStep        float64 `yaml:"tier_speed_step"`
	DriftSpread          float64 `yaml:"drift_spread"`
	SpinRange            float64 `yaml:"spin_range"`
	SeekChance           float64 `yaml:"seek_chance"`
	OutlineMinPoints     int     `yaml:"outline_min_points"`
	OutlineMaxPoints     int     `yaml:"outline_max_points"`
	OutlinePointsPerTier int     `yaml:"outline_points_per_tier"`
	OutlineJitter        float64 `yaml:"outline_jitter"`
	SplitSpeedFactor     float64 `yaml:"split_speed_factor"` // 0 = fresh random drift
	Placement            string  `yaml:"placement"`          // "edge" or "scatter"
	SafeDistance         float64 `yaml:"safe_distance"`
}

// Asteroid placement modes.
const (
	PlacementEdge    = "edge"
	PlacementScatter = "scatter"
)

// EnemyConfig defines enemy ships and their spawn policy.
type EnemyConfig struct {
	Enabled            bool    `yaml:"enabled"`
	Size               float64 `yaml:"size"`
	HitRadius          float64 `yaml:"hit_radius"`
	BaseSpeed          float64 `yaml:"base_speed"`
	SpeedPerLevel      float64 `yaml:"speed_per_level"`
	RetargetChance     float64 `yaml:"retarget_chance"`
	RetargetSpeed      float64 `yaml:"retarget_speed"` // 0 = level speed
	WanderChance       float64 `yaml:"wander_chance"`
	RotationSpeed      float64 `yaml:"rotation_speed"`
	BaseHealth         int     `yaml:"base_health"`
	HealthLevelDivisor int     `yaml:"health_level_divisor"`
	ShootInterval      int     `yaml:"shoot_interval"`
	ShootIntervalStep  int     `yaml:"shoot_interval_step"`
	ShootIntervalFloor int     `yaml:"shoot_interval_floor"`
	SpawnInterval      int     `yaml:"spawn_interval"`
	SpawnIntervalStep  int     `yaml:"spawn_interval_step"`
	SpawnIntervalFloor int     `yaml:"spawn_interval_floor"`
	InitialSpawnDelay  int     `yaml:"initial_spawn_delay"`
	LevelUpSpawnDelay  int     `yaml:"level_up_spawn_delay"`
	CapBase            int     `yaml:"cap_base"`
	CapLevelDivisor    int     `yaml:"cap_level_divisor"`
	EdgePadding        float64 `yaml:"edge_padding"`
	HitFlashTicks      int     `yaml:"hit_flash_ticks"`
}

// WaveConfig defines asteroid waves and level progression.
type WaveConfig struct {
	Initial          int     `yaml:"initial"`
	BaseCount        int     `yaml:"base_count"`
	LevelUpThreshold int     `yaml:"level_up_threshold"`
	TopUpBase        int     `yaml:"top_up_base"`
	TopUpChance      float64 `yaml:"top_up_chance"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	Large  int `yaml:"large"`
	Medium int `yaml:"medium"`
	Small  int `yaml:"small"`
	Enemy  int `yaml:"enemy"`
}

// ParticleConfig defines explosion bursts.
type ParticleConfig struct {
	AsteroidBurst int     `yaml:"asteroid_burst"`
	EnemyBurst    int     `yaml:"enemy_burst"`
	MinSpeed      float64 `yaml:"min_speed"`
	SpeedRange    float64 `yaml:"speed_range"`
	MinLife       int     `yaml:"min_life"`
	LifeRange     int     `yaml:"life_range"`
}

// DifficultyConfig controls per-level escalation.
type DifficultyConfig struct {
	// Escalate enables level-scaled enemy stats and wave sizes.
	// When false every formula is evaluated at level 1.
	Escalate bool `yaml:"escalate"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a CLI string to a preset. Empty means none.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// Validate reports every field that would break the simulation.
func (c RoidsConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field: size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	check(c.Ship.Size > 0, "ship.size must be positive")
	check(c.Ship.HitRadius > 0, "ship.hit_radius must be positive")
	check(c.Ship.Lives >= 1, "ship.lives must be at least 1, got %d", c.Ship.Lives)
	check(c.Ship.Drag > 0 && c.Ship.Drag <= 1, "ship.drag must be in (0, 1], got %v", c.Ship.Drag)
	check(c.Ship.ShootCooldown >= 0, "ship.shoot_cooldown must not be negative")
	check(c.Ship.InvulnerableTicks > 0, "ship.invulnerable_ticks must be positive")
	check(c.Ship.MaxBullets >= 0, "ship.max_bullets must not be negative")
	check(c.Bullets.Lifespan > 0 && c.Bullets.EnemyLifespan > 0, "bullets: lifespans must be positive")
	check(c.Bullets.Radius > 0 && c.Bullets.EnemyRadius > 0, "bullets: radii must be positive")
	check(c.Asteroids.RadiusPerTier > 0, "asteroids.radius_per_tier must be positive")
	check(c.Asteroids.OutlineMinPoints >= 3, "asteroids.outline_min_points must be at least 3")
	check(c.Asteroids.OutlineMaxPoints >= c.Asteroids.OutlineMinPoints,
		"asteroids.outline_max_points (%d) below outline_min_points (%d)",
		c.Asteroids.OutlineMaxPoints, c.Asteroids.OutlineMinPoints)
	check(c.Asteroids.OutlineJitter >= 0 && c.Asteroids.OutlineJitter < 1, "asteroids.outline_jitter must be in [0, 1)")
	check(c.Asteroids.Placement == PlacementEdge || c.Asteroids.Placement == PlacementScatter,
		"asteroids.placement must be %q or %q, got %q", PlacementEdge, PlacementScatter, c.Asteroids.Placement)
	check(c.Waves.LevelUpThreshold >= 0, "waves.level_up_threshold must not be negative")
	check(c.Waves.Initial >= 0 && c.Waves.BaseCount >= 0, "waves: counts must not be negative")

	for _, p := range []struct {
		name string
		v    float64
	}{
		{"asteroids.seek_chance", c.Asteroids.SeekChance},
		{"waves.top_up_chance", c.Waves.TopUpChance},
		{"enemies.retarget_chance", c.Enemies.RetargetChance},
		{"enemies.wander_chance", c.Enemies.WanderChance},
	} {
		check(p.v >= 0 && p.v <= 1, "%s must be a probability, got %v", p.name, p.v)
	}

	if c.Enemies.Enabled {
		check(c.Enemies.BaseHealth >= 1, "enemies.base_health must be at least 1")
		check(c.Enemies.HealthLevelDivisor > 0 && c.Enemies.CapLevelDivisor > 0, "enemies: level divisors must be positive")
		check(c.Enemies.ShootIntervalFloor > 0, "enemies.shoot_interval_floor must be positive")
		check(c.Enemies.SpawnIntervalFloor > 0, "enemies.spawn_interval_floor must be positive")
		check(c.Enemies.HitRadius > 0, "enemies.hit_radius must be positive")
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid %s config: %w", c.Variant, errors.Join(errs...))
}
