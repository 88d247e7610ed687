package roids

import "math"

// fixed converts a float to fixed-point with three decimals for hashing.
func fixed(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot contains the simulation state in primitive types for
// determinism checks and dumps.
type Snapshot struct {
	Tick   uint64 `yaml:"tick"`
	Phase  string `yaml:"phase"`
	Score  int    `yaml:"score"`
	Lives  int    `yaml:"lives"`
	Level  int    `yaml:"level"`
	Paused bool   `yaml:"paused"`

	// Ship state is fixed-point: X, Y, VX, VY, Rotation.
	Ship             [5]int `yaml:"ship"`
	Invulnerable     bool   `yaml:"invulnerable"`
	ShipCooldown     int    `yaml:"ship_cooldown"`
	ActiveTurret     int    `yaml:"active_turret"`
	EnemySpawnTimer  int    `yaml:"enemy_spawn_timer"`
	ParticleCount    int    `yaml:"particle_count"`
	BulletCount      int    `yaml:"bullet_count"`
	EnemyBulletCount int    `yaml:"enemy_bullet_count"`

	// Each asteroid is 4 ints: Tier, X, Y, Radius.
	AsteroidCount int   `yaml:"asteroid_count"`
	AsteroidData  []int `yaml:"asteroid_data,flow"`

	// Each enemy is 4 ints: X, Y, Health, Cooldown.
	EnemyCount int   `yaml:"enemy_count"`
	EnemyData  []int `yaml:"enemy_data,flow"`
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	s := w.Ship
	snap := Snapshot{
		Tick:            w.tick,
		Phase:           w.Phase.String(),
		Score:           w.Score,
		Lives:           s.Lives,
		Level:           w.Level,
		Ship:            [5]int{fixed(s.Pos.X), fixed(s.Pos.Y), fixed(s.Vel.X), fixed(s.Vel.Y), fixed(s.Rotation)},
		Invulnerable:    s.Invulnerable,
		ShipCooldown:    s.Cooldown,
		ActiveTurret:    int(s.ActiveTurret),
		EnemySpawnTimer: w.EnemySpawnCooldown,
		ParticleCount:   len(w.Particles),
		BulletCount:     len(w.Bullets),
		AsteroidCount:   len(w.Asteroids),
		EnemyCount:      len(w.Enemies),
		AsteroidData:    make([]int, 0, len(w.Asteroids)*4),
		EnemyData:       make([]int, 0, len(w.Enemies)*4),
	}

	for _, a := range w.Asteroids {
		snap.AsteroidData = append(snap.AsteroidData, int(a.Tier), fixed(a.Pos.X), fixed(a.Pos.Y), fixed(a.Radius))
	}
	for _, e := range w.Enemies {
		snap.EnemyData = append(snap.EnemyData, fixed(e.Pos.X), fixed(e.Pos.Y), e.Health, e.Cooldown)
		snap.EnemyBulletCount += len(e.Bullets)
	}
	return snap
}

// Snapshot returns the game's world state including the pause flag.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	snap := g.world.Snapshot()
	snap.Paused = g.paused
	return snap
}

// Hash computes a hash of the snapshot for quick comparison.
func (s Snapshot) Hash() uint64 {
	var h uint64 = 17
	mix := func(v int) {
		h = h*31 + uint64(v)
	}

	h = h*31 + s.Tick
	for _, c := range s.Phase {
		mix(int(c))
	}
	mix(s.Score)
	mix(s.Lives)
	mix(s.Level)
	if s.Paused {
		mix(1)
	}
	for _, v := range s.Ship {
		mix(v)
	}
	if s.Invulnerable {
		mix(1)
	}
	mix(s.ShipCooldown)
	mix(s.ActiveTurret)
	mix(s.EnemySpawnTimer)
	mix(s.ParticleCount)
	mix(s.BulletCount)
	mix(s.EnemyBulletCount)
	mix(s.AsteroidCount)
	for _, v := range s.AsteroidData {
		mix(v)
	}
	mix(s.EnemyCount)
	for _, v := range s.EnemyData {
		mix(v)
	}
	return h
}
