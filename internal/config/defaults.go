package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/plus.yaml
var defaultPlusYAML []byte

//go:embed defaults/enders.yaml
var defaultEndersYAML []byte

// DefaultRoidsConfig returns the hardcoded configuration for a variant.
// It mirrors the embedded YAML and is used when the embed cannot be parsed.
func DefaultRoidsConfig(v Variant) RoidsConfig {
	cfg := RoidsConfig{
		Variant: VariantPlus,
		Title:   "Roids+",
		Field:   FieldConfig{Width: 1200, Height: 900},
		Ship: ShipConfig{
			Size:              25,
			HitRadius:         12.5,
			Thrust:            0.1,
			RotationSpeed:     0.05,
			Drag:              0.99,
			Lives:             3,
			ShootCooldown:     10,
			InvulnerableTicks: 120,
			TurretAlternation: true,
			RecoilKick:        5,
			RecoilDecay:       0.5,
		},
		Bullets: BulletConfig{
			Speed:         5,
			Radius:        3,
			Lifespan:      60,
			EnemySpeed:    4,
			EnemyRadius:   3,
			EnemyLifespan: 120,
			EnemyAimError: 0.15,
		},
		Asteroids: AsteroidConfig{
			RadiusPerTier:        15,
			SeekSpeed:            1.5,
			TierSpeedStep:        0.5,
			DriftSpread:          3,
			SpinRange:            0.05,
			SeekChance:           0.4,
			OutlineMinPoints:     10,
			OutlineMaxPoints:     10,
			OutlinePointsPerTier: 2,
			OutlineJitter:        0.3,
			Placement:            PlacementEdge,
			SafeDistance:         150,
		},
		Enemies: EnemyConfig{
			Enabled:            true,
			Size:               30,
			HitRadius:          15,
			BaseSpeed:          1,
			SpeedPerLevel:      0.1,
			RetargetChance:     0.01,
			RetargetSpeed:      1.5,
			WanderChance:       0.02,
			RotationSpeed:      0.02,
			BaseHealth:         5,
			HealthLevelDivisor: 2,
			ShootInterval:      90,
			ShootIntervalStep:  5,
			ShootIntervalFloor: 40,
			SpawnInterval:      1200,
			SpawnIntervalStep:  50,
			SpawnIntervalFloor: 600,
			LevelUpSpawnDelay:  300,
			CapBase:            1,
			CapLevelDivisor:    3,
			EdgePadding:        50,
			HitFlashTicks:      10,
		},
		Waves: WaveConfig{
			Initial:          10,
			BaseCount:        8,
			LevelUpThreshold: 2,
			TopUpBase:        3,
			TopUpChance:      1,
		},
		Scoring: ScoringConfig{Large: 100, Medium: 200, Small: 300, Enemy: 1000},
		Particles: ParticleConfig{
			AsteroidBurst: 15,
			EnemyBurst:    30,
			MinSpeed:      1,
			SpeedRange:    3,
			MinLife:       30,
			LifeRange:     30,
		},
		Difficulty: DifficultyConfig{Escalate: true},
	}

	switch v {
	case VariantClassic:
		cfg.Variant = VariantClassic
		cfg.Title = "Roids"
		cfg.Ship.TurretAlternation = false
		cfg.Enemies.Enabled = false
		cfg.Waves.Initial = 7
		cfg.Waves.BaseCount = 6

	case VariantEnders:
		cfg.Variant = VariantEnders
		cfg.Title = "Enders Roids"
		cfg.Ship.HitRadius = 15
		cfg.Ship.MaxSpeed = 5
		cfg.Ship.LevelStartInvulnerable = true
		cfg.Ship.MaxBullets = 5
		cfg.Ship.FireOnPress = true
		cfg.Asteroids.OutlineMinPoints = 7
		cfg.Asteroids.OutlineMaxPoints = 12
		cfg.Asteroids.OutlinePointsPerTier = 0
		cfg.Asteroids.OutlineJitter = 0.2
		cfg.Asteroids.SplitSpeedFactor = 1.3
		cfg.Asteroids.Placement = PlacementScatter
		cfg.Enemies.RetargetSpeed = 0
		cfg.Enemies.InitialSpawnDelay = 1100
		cfg.Waves.LevelUpThreshold = 0
		cfg.Waves.TopUpChance = 0.01
		cfg.Scoring = ScoringConfig{Large: 20, Medium: 50, Small: 100, Enemy: 1000}
	}

	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(v Variant) []byte {
	switch v {
	case VariantClassic:
		return defaultClassicYAML
	case VariantPlus:
		return defaultPlusYAML
	case VariantEnders:
		return defaultEndersYAML
	default:
		return nil
	}
}
