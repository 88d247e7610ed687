package roids

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/roids-arcade/internal/config"
	"github.com/vovakirdan/roids-arcade/internal/core"
)

// newTestWorld returns a playing world for the variant with every collection
// emptied and the enemy timer pushed out of reach.
func newTestWorld(t *testing.T, v config.Variant) *World {
	t.Helper()
	w := NewWorld(config.DefaultRoidsConfig(v), rand.New(rand.NewSource(42)))
	w.Phase = core.PhasePlaying
	w.Asteroids = nil
	w.Enemies = nil
	w.Bullets = nil
	w.Particles = nil
	w.Ship.Invulnerable = false
	w.Ship.InvulnerableTicks = 0
	w.EnemySpawnCooldown = 100000
	return w
}

// placeAsteroid adds a motionless asteroid.
func placeAsteroid(w *World, tier Tier, pos core.Vec2) *Asteroid {
	a := w.newAsteroid(tier, pos)
	a.Spin = 0
	w.Asteroids = append(w.Asteroids, a)
	return a
}

// placeEnemy adds a motionless enemy with the variant's sizes.
func placeEnemy(w *World, pos core.Vec2, health int) *EnemyShip {
	e := &EnemyShip{
		Pos:           pos,
		Health:        health,
		ShootInterval: 1000,
		Cooldown:      1000,
		size:          w.cfg.Enemies.Size,
		hitSize:       w.cfg.Enemies.HitRadius,
	}
	w.Enemies = append(w.Enemies, e)
	return e
}

func countCue(cues []core.Cue, c core.Cue) int {
	n := 0
	for _, got := range cues {
		if got == c {
			n++
		}
	}
	return n
}

func TestInitialWave(t *testing.T) {
	tests := []struct {
		variant config.Variant
		want    int
	}{
		{config.VariantClassic, 7},
		{config.VariantPlus, 10},
		{config.VariantEnders, 10},
	}

	for _, tc := range tests {
		w := NewWorld(config.DefaultRoidsConfig(tc.variant), rand.New(rand.NewSource(1)))
		if got := len(w.Asteroids); got != tc.want {
			t.Errorf("%s: initial asteroids = %d, expected %d", tc.variant, got, tc.want)
		}
		for _, a := range w.Asteroids {
			if a.Tier != TierLarge || a.Radius != 45 {
				t.Errorf("%s: initial asteroid tier=%v radius=%v, expected large/45", tc.variant, a.Tier, a.Radius)
			}
		}
		if w.Phase != core.PhaseNotStarted || w.Level != 1 || w.Score != 0 {
			t.Errorf("%s: fresh world phase=%v level=%d score=%d", tc.variant, w.Phase, w.Level, w.Score)
		}
	}
}

func TestEndersScatterKeepsSafeDistance(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		w := NewWorld(config.DefaultRoidsConfig(config.VariantEnders), rand.New(rand.NewSource(seed)))
		for _, a := range w.Asteroids {
			if d := a.Pos.Dist(w.Ship.Pos); d < 150 {
				t.Fatalf("seed %d: asteroid at %v only %.1f from ship", seed, a.Pos, d)
			}
		}
		if !w.Ship.Invulnerable {
			t.Errorf("seed %d: enders ship should start invulnerable", seed)
		}
	}
}

func TestAsteroidOutline(t *testing.T) {
	w := newTestWorld(t, config.VariantPlus)
	for _, tier := range []Tier{TierSmall, TierMedium, TierLarge} {
		a := w.newAsteroid(tier, core.V(300, 300))
		want := 10 + int(tier)*2
		if len(a.Outline) != want {
			t.Errorf("%v outline points = %d, expected %d", tier, len(a.Outline), want)
		}
		for _, p := range a.Outline {
			if r := p.Len(); r < a.Radius*0.7-1e-9 || r > a.Radius*1.3+1e-9 {
				t.Errorf("%v vertex radius %.2f outside [%.2f, %.2f]", tier, r, a.Radius*0.7, a.Radius*1.3)
			}
		}
	}
}

func TestLevelUp(t *testing.T) {
	w := newTestWorld(t, config.VariantPlus)
	placeAsteroid(w, TierLarge, core.V(60, 60))
	placeAsteroid(w, TierLarge, core.V(1140, 840))

	cues := w.Tick(Intents{})

	if w.Level != 2 {
		t.Fatalf("Level = %d, expected 2", w.Level)
	}
	if got := len(w.Asteroids); got != 12 {
		t.Errorf("asteroids = %d, expected 2 + 10", got)
	}
	if countCue(cues, core.CueLevelUp) != 1 {
		t.Errorf("cues = %v, expected one level-up", cues)
	}
	if w.EnemySpawnCooldown != 300 {
		t.Errorf("EnemySpawnCooldown = %d, expected 300 after level-up", w.EnemySpawnCooldown)
	}
}

func TestLevelUpBlockedByEnemy(t *testing.T) {
	w := newTestWorld(t, config.VariantPlus)
	placeEnemy(w, core.V(100, 800), 5)

	w.Tick(Intents{})

	if w.Level != 1 {
		t.Errorf("Level = %d, expected 1 while an enemy is alive", w.Level)
	}
}

func TestTopUp(t *testing.T) {
	w := newTestWorld(t, config.VariantPlus)
	placeAsteroid(w, TierLarge, core.V(60, 60))
	placeAsteroid(w, TierLarge, core.V(1140, 60))
	placeAsteroid(w, TierLarge, core.V(60, 840))

	w.Tick(Intents{})

	if got := len(w.Asteroids); got != 4 {
		t.Errorf("asteroids = %d, expected top-up to 4", got)
	}
	if w.Level != 1 {
		t.Errorf("Level = %d, expected 1", w.Level)
	}
}

func TestEnemySpawnTimer(t *testing.T) {
	w := newTestWorld(t, config.VariantPlus)
	for i, rangeN := 0, 5; i < rangeN; i++ {
		placeAsteroid(w, TierLarge, core.V(60+float64(i)*200, 60))
	}
	w.EnemySpawnCooldown = 1

	w.Tick(Intents{})
	if len(w.Enemies) != 1 {
		t.Fatalf("enemies = %d, expected 1", len(w.Enemies))
	}
	if w.EnemySpawnCooldown != 1150 {
		t.Errorf("EnemySpawnCooldown = %d, expected 1150", w.EnemySpawnCooldown)
	}
	e := w.Enemies[0]
	if e.Health != 5 || e.ShootInterval != 85 {
		t.Errorf("enemy health=%d interval=%d, expected 5/85", e.Health, e.ShootInterval)
	}

	// The level-1 cap is one enemy.
	w.EnemySpawnCooldown = 1
	w.Tick(Intents{})
	if len(w.Enemies) != 1 {
		t.Errorf("enemies = %d, expected cap of 1", len(w.Enemies))
	}
	if w.EnemySpawnCooldown != 0 {
		t.Errorf("EnemySpawnCooldown = %d, expected 0 while capped", w.EnemySpawnCooldown)
	}
}

func TestClassicHasNoEnemies(t *testing.T) {
	w := NewWorld(config.DefaultRoidsConfig(config.VariantClassic), rand.New(rand.NewSource(3)))
	w.Tick(Intents{Start: true})
	for rangeIdx, rangeN := 0, 3000; rangeIdx < rangeN; rangeIdx++ {
		w.Tick(Intents{})
		if w.Phase != core.PhasePlaying {
			break
		}
		if len(w.Enemies) != 0 {
			t.Fatal("classic spawned an enemy")
		}
	}
}

func TestEnemyFiresOnFirstUpdate(t *testing.T) {
	w := newTestWorld(t, config.VariantPlus)
	for i, rangeN := 0, 5; i < rangeN; i++ {
		placeAsteroid(w, TierLarge, core.V(60+float64(i)*200, 60))
	}
	e := placeEnemy(w, core.V(100, 800), 5)
	e.Cooldown = 0
	e.ShootInterval = 85

	cues := w.Tick(Intents{})
	if len(e.Bullets) != 1 || countCue(cues, core.CueEnemyFire) != 1 {
		t.Fatalf("enemy bullets = %d cues = %v, expected one shot", len(e.Bullets), cues)
	}
	if e.Cooldown != 85 {
		t.Errorf("Cooldown = %d, expected 85", e.Cooldown)
	}

	// Aim error stays within ±0.15 of the bearing to the ship.
	b := e.Bullets[0]
	want := e.Pos.DirectionTo(w.Ship.Pos).Angle()
	if diff := math.Abs(b.Vel.Angle() - want); diff > 0.15+1e-9 {
		t.Errorf("bullet heading off by %.3f rad", diff)
	}
}

func TestBulletExpires(t *testing.T) {
	// Steps skip the spawner so nothing else enters the field.
	step := func(w *World, in Intents) {
		w.update(in)
		w.Collide()
	}

	t.Run("player", func(t *testing.T) {
		w := newTestWorld(t, config.VariantClassic)
		lifespan := w.cfg.Bullets.Lifespan

		// The firing step already ages the new bullet.
		step(w, Intents{Fire: true})
		for rangeIdx, rangeN := 0, lifespan-2; rangeIdx < rangeN; rangeIdx++ {
			step(w, Intents{})
		}
		if len(w.Bullets) != 1 {
			t.Fatalf("bullets = %d after %d steps, expected 1", len(w.Bullets), lifespan-1)
		}
		if w.Bullets[0].Life != 1 {
			t.Errorf("Life = %d, expected 1", w.Bullets[0].Life)
		}

		step(w, Intents{})
		if len(w.Bullets) != 0 {
			t.Errorf("bullets = %d after %d steps, expected 0", len(w.Bullets), lifespan)
		}
	})

	t.Run("enemy", func(t *testing.T) {
		w := newTestWorld(t, config.VariantPlus)
		w.Ship.grantInvulnerability(100000)
		lifespan := w.cfg.Bullets.EnemyLifespan

		e := placeEnemy(w, core.V(100, 100), 1000)
		e.Bullets = append(e.Bullets, &Bullet{
			Pos:    core.V(50, 850),
			Radius: w.cfg.Bullets.EnemyRadius,
			Life:   lifespan,
		})

		for rangeIdx, rangeN := 0, lifespan-1; rangeIdx < rangeN; rangeIdx++ {
			step(w, Intents{})
		}
		if len(w.Enemies) != 1 || len(e.Bullets) != 1 {
			t.Fatalf("enemies=%d bullets=%d after %d steps, expected 1/1", len(w.Enemies), len(e.Bullets), lifespan-1)
		}

		step(w, Intents{})
		if len(e.Bullets) != 0 {
			t.Errorf("enemy bullets = %d after %d steps, expected 0", len(e.Bullets), lifespan)
		}
	})
}

func TestPhaseTransitions(t *testing.T) {
	tests := []struct {
		variant       config.Variant
		wantShielded  bool
		wantAsteroids int
	}{
		{config.VariantPlus, false, 10},
		{config.VariantEnders, true, 10},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			cfg := config.DefaultRoidsConfig(tt.variant)
			w := NewWorld(cfg, rand.New(rand.NewSource(5)))

			before := w.Snapshot().Hash()
			w.Tick(Intents{})
			if w.Phase != core.PhaseNotStarted || w.Snapshot().Hash() != before {
				t.Error("world should not advance before start")
			}

			w.Tick(Intents{Start: true})
			if w.Phase != core.PhasePlaying {
				t.Fatalf("Phase = %v, expected playing", w.Phase)
			}

			for i, rangeN := 0, 30; i < rangeN; i++ {
				w.Tick(Intents{Fire: true, FirePressed: i%2 == 0, Thrust: true})
			}

			// A survivable hit leaves the shield up and debris behind.
			w.Ship.Invulnerable = false
			w.Ship.InvulnerableTicks = 0
			w.Ship.Lives = 2
			w.hitShip()
			if !w.Ship.Invulnerable || w.Phase != core.PhasePlaying {
				t.Fatalf("hit left invulnerable=%v phase=%v", w.Ship.Invulnerable, w.Phase)
			}
			w.explode(w.Ship.Pos, 10, 5)
			w.Ship.ActiveTurret = TurretRight
			w.Ship.Recoil = [2]float64{3, 3}
			w.EnemySpawnCooldown = 7

			w.Score = 1234
			w.Level = 4
			w.Ship.Lives = 0
			w.Phase = core.PhaseGameOver

			w.Tick(Intents{})
			if w.Phase != core.PhaseGameOver {
				t.Error("game over should hold without restart")
			}

			w.Tick(Intents{Restart: true})
			if w.Phase != core.PhasePlaying {
				t.Errorf("Phase = %v, expected playing after restart", w.Phase)
			}
			if w.Score != 0 || w.Level != 1 || w.Ship.Lives != 3 {
				t.Errorf("restart left score=%d level=%d lives=%d", w.Score, w.Level, w.Ship.Lives)
			}
			if len(w.Asteroids) != tt.wantAsteroids || len(w.Bullets) != 0 || len(w.Enemies) != 0 || len(w.Particles) != 0 {
				t.Errorf("restart left asteroids=%d bullets=%d enemies=%d particles=%d",
					len(w.Asteroids), len(w.Bullets), len(w.Enemies), len(w.Particles))
			}
			if w.Ship.Pos != w.Field().Center() || w.Ship.Vel != (core.Vec2{}) {
				t.Errorf("restart ship at %v moving %v", w.Ship.Pos, w.Ship.Vel)
			}

			wantTicks := 0
			if tt.wantShielded {
				wantTicks = cfg.Ship.InvulnerableTicks
			}
			if w.Ship.Invulnerable != tt.wantShielded || w.Ship.InvulnerableTicks != wantTicks {
				t.Errorf("restart shield = %v/%d, expected %v/%d",
					w.Ship.Invulnerable, w.Ship.InvulnerableTicks, tt.wantShielded, wantTicks)
			}
			if w.EnemySpawnCooldown != cfg.Enemies.InitialSpawnDelay {
				t.Errorf("EnemySpawnCooldown = %d, expected %d", w.EnemySpawnCooldown, cfg.Enemies.InitialSpawnDelay)
			}
			if w.Ship.ActiveTurret != TurretLeft || w.Ship.Recoil != ([2]float64{}) {
				t.Errorf("restart turret=%v recoil=%v, expected left/zero", w.Ship.ActiveTurret, w.Ship.Recoil)
			}
			if w.Ship.Cooldown != 0 {
				t.Errorf("Cooldown = %d, expected 0", w.Ship.Cooldown)
			}
		})
	}
}

func TestWrapInvariant(t *testing.T) {
	w := NewWorld(config.DefaultRoidsConfig(config.VariantPlus), rand.New(rand.NewSource(9)))
	w.Tick(Intents{Start: true})
	f := w.Field()

	for i, rangeN := 0, 3000; i < rangeN; i++ {
		w.Tick(Intents{RotateLeft: i%7 < 3, Thrust: i%5 < 2, Fire: true})
		if w.Phase == core.PhaseGameOver {
			w.Tick(Intents{Restart: true})
		}

		if !f.Contains(w.Ship.Pos, 0) {
			t.Fatalf("tick %d: ship escaped to %v", i, w.Ship.Pos)
		}
		// Fresh fragments start at their parent's position, so the
		// large-tier margin bounds every asteroid.
		for _, a := range w.Asteroids {
			if !f.Contains(a.Pos, 45) {
				t.Fatalf("tick %d: asteroid escaped to %v", i, a.Pos)
			}
		}
		for _, b := range w.Bullets {
			if !f.Contains(b.Pos, 0) {
				t.Fatalf("tick %d: bullet escaped to %v", i, b.Pos)
			}
		}
		for _, e := range w.Enemies {
			if !f.Contains(e.Pos, e.Size()) {
				t.Fatalf("tick %d: enemy escaped to %v", i, e.Pos)
			}
		}
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	w := NewWorld(config.DefaultRoidsConfig(config.VariantEnders), rand.New(rand.NewSource(11)))
	w.Tick(Intents{Start: true})

	last := 0
	for i, rangeN := 0, 4000; i < rangeN; i++ {
		w.Tick(Intents{RotateRight: true, FirePressed: i%4 == 0, Fire: true})
		if w.Phase == core.PhaseGameOver {
			break
		}
		if w.Score < last {
			t.Fatalf("tick %d: score went from %d to %d", i, last, w.Score)
		}
		last = w.Score
	}
}

func TestThrustCues(t *testing.T) {
	w := newTestWorld(t, config.VariantPlus)
	placeAsteroid(w, TierLarge, core.V(60, 60))
	placeAsteroid(w, TierLarge, core.V(1140, 60))
	placeAsteroid(w, TierLarge, core.V(60, 840))
	w.cfg.Waves.TopUpChance = 0

	var got []core.Cue
	for _, in := range []Intents{{Thrust: true}, {Thrust: true}, {}, {}} {
		for _, c := range w.Tick(in) {
			if c == core.CueThrustStart || c == core.CueThrustStop {
				got = append(got, c)
			}
		}
	}

	want := []core.Cue{core.CueThrustStart, core.CueThrustStop}
	if !slices.Equal(got, want) {
		t.Errorf("thrust cues = %v, expected %v", got, want)
	}
}
