package roids

import (
	"math"

	"github.com/vovakirdan/roids-arcade/internal/core"
)

// EnemyShip wanders the field and shoots at the player. Its bullets belong
// to it and vanish when it is destroyed.
type EnemyShip struct {
	Pos           core.Vec2
	Vel           core.Vec2
	Rotation      float64
	Health        int
	ShootInterval int
	Cooldown      int
	HitFlash      int
	Bullets       []*Bullet

	dead    bool
	rammed  uint64 // collision stamp of the last ram by the player ship
	size    float64
	hitSize float64
}

// Dead reports whether the enemy is pending removal.
func (e *EnemyShip) Dead() bool { return e.dead }

// Size returns the enemy's drawing size.
func (e *EnemyShip) Size() float64 { return e.size }

// HitRadius returns the enemy's collision radius.
func (e *EnemyShip) HitRadius() float64 { return e.hitSize }

// spawnEnemy creates an enemy just inside a random field edge with level-scaled stats.
func (w *World) spawnEnemy() *EnemyShip {
	ec := w.cfg.Enemies
	pad := ec.EdgePadding

	var pos core.Vec2
	switch w.rng.Intn(4) {
	case 0:
		pos = core.V(w.rng.Float64()*w.field.W, pad)
	case 1:
		pos = core.V(w.field.W-pad, w.rng.Float64()*w.field.H)
	case 2:
		pos = core.V(w.rng.Float64()*w.field.W, w.field.H-pad)
	default:
		pos = core.V(pad, w.rng.Float64()*w.field.H)
	}

	speed := w.diff.EnemySpeed(w.Level)
	e := &EnemyShip{
		Pos:           pos,
		Vel:           core.V((w.rng.Float64()-0.5)*speed, (w.rng.Float64()-0.5)*speed),
		Rotation:      w.rng.Float64() * 2 * math.Pi,
		Health:        w.diff.EnemyHealth(w.Level),
		ShootInterval: w.diff.EnemyShootInterval(w.Level),
		size:          ec.Size,
		hitSize:       ec.HitRadius,
	}
	w.Enemies = append(w.Enemies, e)
	w.log.Debug("enemy spawned", "level", w.Level, "health", e.Health, "interval", e.ShootInterval)
	return e
}

// updateEnemy steers, moves and fires one enemy, then advances its bullets.
func (w *World) updateEnemy(e *EnemyShip, target core.Vec2) {
	ec := w.cfg.Enemies

	if w.rng.Float64() < ec.RetargetChance {
		e.Vel = e.Pos.DirectionTo(target).Scale(w.diff.EnemyRetargetSpeed(w.Level))
	}
	if w.rng.Float64() < ec.WanderChance {
		e.Rotation += w.rng.Float64()*math.Pi - math.Pi/2
	}

	e.Pos = w.field.Wrap(e.Pos.Add(e.Vel), e.size)
	e.Rotation += ec.RotationSpeed

	if e.Cooldown > 0 {
		e.Cooldown--
	}
	if e.Cooldown == 0 {
		w.enemyFire(e, target)
		e.Cooldown = e.ShootInterval
	}

	for _, b := range e.Bullets {
		b.update(w.field)
	}

	if e.HitFlash > 0 {
		e.HitFlash--
	}
}

// enemyFire shoots at target with a uniform aim error.
func (w *World) enemyFire(e *EnemyShip, target core.Vec2) {
	bc := w.cfg.Bullets
	angle := e.Pos.DirectionTo(target).Angle() + (w.rng.Float64()*2-1)*bc.EnemyAimError
	e.Bullets = append(e.Bullets, &Bullet{
		Pos:    e.Pos,
		Vel:    core.FromAngle(angle).Scale(bc.EnemySpeed),
		Radius: bc.EnemyRadius,
		Life:   bc.EnemyLifespan,
	})
	w.emit(core.CueEnemyFire)
}

// hit applies one point of damage and reports whether the enemy is destroyed.
func (e *EnemyShip) hit(flashTicks int) bool {
	e.Health--
	e.HitFlash = flashTicks
	return e.Health <= 0
}
