package roids

import (
	"github.com/vovakirdan/roids-arcade/internal/core"
)

// Tier is the asteroid size class. Larger tiers are bigger and slower.
type Tier int

const (
	TierSmall  Tier = 1
	TierMedium Tier = 2
	TierLarge  Tier = 3
)

func (t Tier) String() string {
	switch t {
	case TierSmall:
		return "small"
	case TierMedium:
		return "medium"
	case TierLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Turret selects one of the ship's two gun mounts.
type Turret int

const (
	TurretLeft Turret = iota
	TurretRight
)

func (t Turret) other() Turret {
	if t == TurretLeft {
		return TurretRight
	}
	return TurretLeft
}

func (t Turret) String() string {
	if t == TurretLeft {
		return "left"
	}
	return "right"
}

// Bullet is a player or enemy projectile.
type Bullet struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Life   int // ticks remaining

	dead bool
}

// update moves the bullet and burns one tick of lifespan.
// Bullets wrap with no margin.
func (b *Bullet) update(f core.Field) {
	b.Pos = f.Wrap(b.Pos.Add(b.Vel), 0)
	b.Life--
	if b.Life <= 0 {
		b.Life = 0
		b.dead = true
	}
}

// Dead reports whether the bullet is pending removal.
func (b *Bullet) Dead() bool { return b.dead }

// RGB is an explosion particle color.
type RGB struct {
	R, G, B uint8
}

// Particle is a purely cosmetic explosion fragment.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Size  float64
	Color RGB
	Life  int
}

func (p *Particle) update() {
	p.Pos = p.Pos.Add(p.Vel)
	p.Life--
}

// Heat returns 0 for a red particle and 1 for a yellow one.
func (p *Particle) Heat() float64 {
	return float64(p.Color.G) / 255
}
