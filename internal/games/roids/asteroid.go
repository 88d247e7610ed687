package roids

import (
	"math"

	"github.com/vovakirdan/roids-arcade/internal/config"
	"github.com/vovakirdan/roids-arcade/internal/core"
)

// Asteroid is a drifting rock. Its outline is generated once at creation and
// only rotated afterwards.
type Asteroid struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Tier     Tier
	Radius   float64
	Rotation float64
	Spin     float64
	Outline  []core.Vec2 // polygon vertices relative to Pos, unrotated

	dead bool
	born uint64 // collision stamp of the pass that created it, 0 if none
}

// Dead reports whether the asteroid is pending removal.
func (a *Asteroid) Dead() bool { return a.dead }

// Points returns the outline rotated to the asteroid's current heading.
func (a *Asteroid) Points() []core.Vec2 {
	pts := make([]core.Vec2, len(a.Outline))
	for i, p := range a.Outline {
		pts[i] = a.Pos.Add(p.Rotate(a.Rotation))
	}
	return pts
}

func (a *Asteroid) update(f core.Field) {
	a.Pos = f.Wrap(a.Pos.Add(a.Vel), a.Radius)
	a.Rotation += a.Spin
}

// tierFactor is how many steps below Large a tier sits.
func tierFactor(t Tier) float64 {
	return float64(TierLarge - t)
}

// newAsteroid builds an asteroid at pos with a fresh outline and spin.
// The caller decides the velocity.
func (w *World) newAsteroid(tier Tier, pos core.Vec2) *Asteroid {
	ac := w.cfg.Asteroids
	a := &Asteroid{
		Pos:    pos,
		Tier:   tier,
		Radius: float64(tier) * ac.RadiusPerTier,
		Spin:   w.rng.Float64()*ac.SpinRange - ac.SpinRange/2,
	}

	n := ac.OutlineMinPoints + int(tier)*ac.OutlinePointsPerTier
	if spread := ac.OutlineMaxPoints - ac.OutlineMinPoints; spread > 0 {
		n += w.rng.Intn(spread + 1)
	}
	a.Outline = make([]core.Vec2, n)
	for i := range a.Outline {
		angle := float64(i) / float64(n) * 2 * math.Pi
		r := a.Radius * (1 - ac.OutlineJitter + w.rng.Float64()*2*ac.OutlineJitter)
		a.Outline[i] = core.FromAngle(angle).Scale(r)
	}
	return a
}

// driftVelocity returns a random drift that is faster for smaller tiers.
func (w *World) driftVelocity(tier Tier) core.Vec2 {
	ac := w.cfg.Asteroids
	scale := 1 + tierFactor(tier)*ac.TierSpeedStep
	return core.V(
		w.rng.Float64()*ac.DriftSpread-ac.DriftSpread/2,
		w.rng.Float64()*ac.DriftSpread-ac.DriftSpread/2,
	).Scale(scale)
}

// seekVelocity aims at target with a tier-dependent speed.
func (w *World) seekVelocity(tier Tier, from, target core.Vec2) core.Vec2 {
	ac := w.cfg.Asteroids
	return from.DirectionTo(target).Scale(ac.SeekSpeed + tierFactor(tier)*ac.TierSpeedStep)
}

// edgePosition picks one of the four field edges uniformly and returns a
// point just outside it, offset by radius.
func (w *World) edgePosition(radius float64) core.Vec2 {
	fw, fh := w.field.W, w.field.H
	switch w.rng.Intn(4) {
	case 0:
		return core.V(w.rng.Float64()*fw, -radius)
	case 1:
		return core.V(fw+radius, w.rng.Float64()*fh)
	case 2:
		return core.V(w.rng.Float64()*fw, fh+radius)
	default:
		return core.V(-radius, w.rng.Float64()*fh)
	}
}

const scatterAttempts = 32

// scatterPosition picks a random in-field point at least SafeDistance from
// the ship. It falls back to an edge after scatterAttempts misses.
func (w *World) scatterPosition(radius float64) core.Vec2 {
	safe := w.cfg.Asteroids.SafeDistance
	for rangeIdx, rangeN := 0, scatterAttempts; rangeIdx < rangeN; rangeIdx++ {
		p := core.V(w.rng.Float64()*w.field.W, w.rng.Float64()*w.field.H)
		if p.Dist(w.Ship.Pos) >= safe {
			return p
		}
	}
	return w.edgePosition(radius)
}

// spawnAsteroid adds one Large asteroid. With probability SeekChance it
// heads for the ship, otherwise it drifts.
func (w *World) spawnAsteroid(placement string) *Asteroid {
	radius := float64(TierLarge) * w.cfg.Asteroids.RadiusPerTier

	var pos core.Vec2
	if placement == config.PlacementScatter {
		pos = w.scatterPosition(radius)
	} else {
		pos = w.edgePosition(radius)
	}

	a := w.newAsteroid(TierLarge, pos)
	if w.rng.Float64() < w.cfg.Asteroids.SeekChance {
		a.Vel = w.seekVelocity(TierLarge, pos, w.Ship.Pos)
	} else {
		a.Vel = w.driftVelocity(TierLarge)
	}
	w.Asteroids = append(w.Asteroids, a)
	w.log.Debug("asteroid spawned", "pos", pos, "velocity", a.Vel)
	return a
}

// spawnWave adds count Large asteroids using the configured placement.
func (w *World) spawnWave(count int) {
	for rangeIdx, rangeN := 0, count; rangeIdx < rangeN; rangeIdx++ {
		w.spawnAsteroid(w.cfg.Asteroids.Placement)
	}
}

// split replaces a destroyed asteroid with two children one tier down.
// Children are stamped so the rest of the current collision pass ignores them.
func (w *World) split(a *Asteroid) {
	if a.Tier <= TierSmall {
		return
	}
	child := a.Tier - 1
	for rangeIdx, rangeN := 0, 2; rangeIdx < rangeN; rangeIdx++ {
		c := w.newAsteroid(child, a.Pos)
		if f := w.cfg.Asteroids.SplitSpeedFactor; f > 0 {
			c.Vel = core.FromAngle(w.rng.Float64() * 2 * math.Pi).Scale(a.Vel.Len() * f)
		} else {
			c.Vel = w.driftVelocity(child)
		}
		c.born = w.stamp()
		w.Asteroids = append(w.Asteroids, c)
	}
}
