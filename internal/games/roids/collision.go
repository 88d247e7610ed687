package roids

import (
	"math"
	"slices"

	"github.com/vovakirdan/roids-arcade/internal/core"
)

// Collide resolves every contact in the world and then drops destroyed
// entities. Pairs are checked in a fixed order:
//
//	ship / asteroid
//	ship / enemy bullet
//	ship / enemy (ram)
//	player bullet / asteroid
//	player bullet / enemy
//
// Entities already marked dead, and asteroids split off during this pass,
// are skipped, so a second call with no movement in between changes nothing.
func (w *World) Collide() {
	w.collideShip()
	w.collideBullets()
	w.compact()
}

func (w *World) collideShip() {
	s := w.Ship

	for _, a := range w.Asteroids {
		if !w.shipTargetable() {
			break
		}
		if a.dead || a.born == w.stamp() {
			continue
		}
		if core.CirclesCollide(s.Pos, s.HitRadius(), a.Pos, a.Radius) {
			w.hitShip()
		}
	}

	for _, e := range w.Enemies {
		for _, b := range e.Bullets {
			if !s.Alive() {
				break
			}
			if b.dead {
				continue
			}
			// An enemy bullet is spent on contact even when the ship is shielded.
			if core.CirclesCollide(s.Pos, s.HitRadius(), b.Pos, b.Radius) {
				b.dead = true
				w.hitShip()
			}
		}
	}

	for _, e := range w.Enemies {
		if !s.Alive() {
			break
		}
		if e.dead || e.rammed == w.stamp() {
			continue
		}
		if core.CirclesCollide(s.Pos, s.Size(), e.Pos, e.HitRadius()) {
			e.rammed = w.stamp()
			// A shield blocks only the ship's loss. The enemy still takes the hit.
			w.hitShip()
			if e.hit(w.cfg.Enemies.HitFlashTicks) {
				w.killEnemy(e)
			}
		}
	}
}

// shipTargetable reports whether asteroid contact can hurt the ship right now.
func (w *World) shipTargetable() bool {
	return w.Ship.Alive() && !w.Ship.Invulnerable
}

func (w *World) collideBullets() {
	for _, b := range w.Bullets {
		if b.dead {
			continue
		}
		for _, a := range w.Asteroids {
			if a.dead || a.born == w.stamp() {
				continue
			}
			if core.CirclesCollide(b.Pos, b.Radius, a.Pos, a.Radius) {
				b.dead = true
				w.destroyAsteroid(a)
				break
			}
		}
	}

	for _, b := range w.Bullets {
		if b.dead {
			continue
		}
		for _, e := range w.Enemies {
			if e.dead {
				continue
			}
			if core.CirclesCollide(b.Pos, b.Radius, e.Pos, e.HitRadius()) {
				b.dead = true
				if e.hit(w.cfg.Enemies.HitFlashTicks) {
					w.killEnemy(e)
				}
				break
			}
		}
	}
}

// hitShip applies a hit and raises the matching cues. A fatal hit ends the game.
func (w *World) hitShip() {
	fatal, applied := w.Ship.hit(w.field.Center())
	if !applied {
		return
	}
	w.emit(core.CueShipHit)
	w.log.Debug("ship hit", "lives", w.Ship.Lives)
	if fatal {
		w.Phase = core.PhaseGameOver
		w.emit(core.CueGameOver)
		w.log.Info("game over", "score", w.Score, "level", w.Level)
	}
}

func (w *World) destroyAsteroid(a *Asteroid) {
	a.dead = true
	w.split(a)
	w.explode(a.Pos, a.Radius/2, w.cfg.Particles.AsteroidBurst)
	w.addScore(w.asteroidPoints(a.Tier))
	if a.Tier > TierSmall {
		w.emit(core.CueAsteroidHit)
	} else {
		w.emit(core.CueAsteroidSmall)
	}
}

func (w *World) killEnemy(e *EnemyShip) {
	e.dead = true
	w.explode(e.Pos, e.size, w.cfg.Particles.EnemyBurst)
	w.addScore(w.cfg.Scoring.Enemy)
	w.emit(core.CueExplosion)
	w.log.Debug("enemy destroyed", "score", w.Score)
}

func (w *World) asteroidPoints(t Tier) int {
	switch t {
	case TierLarge:
		return w.cfg.Scoring.Large
	case TierMedium:
		return w.cfg.Scoring.Medium
	default:
		return w.cfg.Scoring.Small
	}
}

// addScore never lets the score go down.
func (w *World) addScore(points int) {
	if points > 0 {
		w.Score += points
	}
}

// explode scatters count particles from pos. baseSize scales particle size.
func (w *World) explode(pos core.Vec2, baseSize float64, count int) {
	pc := w.cfg.Particles
	for rangeIdx, rangeN := 0, count; rangeIdx < rangeN; rangeIdx++ {
		angle := w.rng.Float64() * 2 * math.Pi
		speed := pc.MinSpeed + w.rng.Float64()*pc.SpeedRange
		w.Particles = append(w.Particles, &Particle{
			Pos:   pos,
			Vel:   core.FromAngle(angle).Scale(speed),
			Color: RGB{R: 255, G: uint8(55 + w.rng.Intn(201)), B: 0},
			Size:  w.rng.Float64()*baseSize/5 + 1,
			Life:  pc.MinLife + w.rng.Intn(pc.LifeRange+1),
		})
	}
}

// compact removes every entity marked dead.
func (w *World) compact() {
	w.Bullets = slices.DeleteFunc(w.Bullets, (*Bullet).Dead)
	w.Asteroids = slices.DeleteFunc(w.Asteroids, (*Asteroid).Dead)
	w.Enemies = slices.DeleteFunc(w.Enemies, (*EnemyShip).Dead)
	for _, e := range w.Enemies {
		e.Bullets = slices.DeleteFunc(e.Bullets, (*Bullet).Dead)
	}
	w.Particles = slices.DeleteFunc(w.Particles, func(p *Particle) bool { return p.Life <= 0 })
}
