package roids

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roids-arcade/internal/config"
	"github.com/vovakirdan/roids-arcade/internal/core"
)

// Intents is the per-tick player input the world understands.
type Intents struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	Fire        bool // trigger held
	FirePressed bool // trigger went down this tick
	Start       bool
	Restart     bool
}

// IntentsFrom translates a platform input frame.
func IntentsFrom(in core.InputFrame) Intents {
	return Intents{
		RotateLeft:  in.Has(core.ActionRotateLeft),
		RotateRight: in.Has(core.ActionRotateRight),
		Thrust:      in.Has(core.ActionThrust),
		Fire:        in.Has(core.ActionFire),
		FirePressed: in.Has(core.ActionFirePressed),
		Start:       in.Has(core.ActionStart),
		Restart:     in.Has(core.ActionRestart),
	}
}

// World owns every entity of one game session and advances them in fixed ticks.
// It is not safe for concurrent use.
type World struct {
	Phase     core.Phase
	Ship      *Ship
	Bullets   []*Bullet
	Asteroids []*Asteroid
	Enemies   []*EnemyShip
	Particles []*Particle
	Score     int
	Level     int

	// EnemySpawnCooldown counts down to the next enemy spawn attempt.
	EnemySpawnCooldown int

	cfg   config.RoidsConfig
	diff  *config.DifficultyManager
	field core.Field
	rng   *rand.Rand
	log   *log.Logger

	tick uint64
	cues []core.Cue
}

// NewWorld creates a world in the NotStarted phase with the initial wave placed.
func NewWorld(cfg config.RoidsConfig, rng *rand.Rand) *World {
	w := &World{
		cfg:   cfg,
		diff:  config.NewDifficultyManager(cfg),
		field: core.Field{W: cfg.Field.Width, H: cfg.Field.Height},
		rng:   rng,
		log:   log.New(io.Discard),
	}
	w.Reset()
	return w
}

// SetLogger routes world events to l.
func (w *World) SetLogger(l *log.Logger) {
	if l != nil {
		w.log = l
	}
}

// Reset rebuilds the session: fresh ship, empty collections, score 0,
// level 1 and the initial wave. The phase returns to NotStarted.
func (w *World) Reset() {
	w.Phase = core.PhaseNotStarted
	w.Ship = newShip(w.cfg.Ship, w.field.Center())
	w.Bullets = nil
	w.Asteroids = nil
	w.Enemies = nil
	w.Particles = nil
	w.Score = 0
	w.Level = 1
	w.EnemySpawnCooldown = w.cfg.Enemies.InitialSpawnDelay
	w.tick = 0
	w.cues = nil

	w.spawnWave(w.cfg.Waves.Initial)
	if w.cfg.Ship.LevelStartInvulnerable {
		w.Ship.grantInvulnerability(w.cfg.Ship.InvulnerableTicks)
	}
}

// Field returns the play-field bounds.
func (w *World) Field() core.Field { return w.field }

// Config returns the configuration the world was built with.
func (w *World) Config() config.RoidsConfig { return w.cfg }

// Ticks returns how many playing ticks have elapsed since the last reset.
func (w *World) Ticks() uint64 { return w.tick }

// stamp identifies the current tick for per-tick entity marks. It is never
// zero so a fresh entity is never mistaken for a marked one.
func (w *World) stamp() uint64 { return w.tick + 1 }

func (w *World) emit(c core.Cue) {
	w.cues = append(w.cues, c)
}

// Tick advances the world by one fixed step and returns the cues raised.
// While playing the order is: update, collide, spawn, level check.
func (w *World) Tick(in Intents) []core.Cue {
	w.cues = nil

	switch w.Phase {
	case core.PhaseNotStarted:
		if in.Start || in.Fire || in.FirePressed || in.Thrust {
			w.Phase = core.PhasePlaying
			w.log.Info("game started", "variant", w.cfg.Variant)
		}
		return w.cues

	case core.PhaseGameOver:
		if in.Restart || in.Start {
			w.Reset()
			w.Phase = core.PhasePlaying
			w.log.Info("game restarted", "variant", w.cfg.Variant)
		}
		return w.cues
	}

	w.update(in)
	w.Collide()
	if w.Phase == core.PhaseGameOver {
		w.tick++
		return w.cues
	}
	w.spawn()
	w.checkLevel()
	w.tick++
	return w.cues
}

// update moves every entity one step and handles the player's trigger.
func (w *World) update(in Intents) {
	s := w.Ship
	wasThrusting := s.Thrusting
	s.update(in, w.field)
	switch {
	case s.Thrusting && !wasThrusting:
		w.emit(core.CueThrustStart)
	case !s.Thrusting && wasThrusting:
		w.emit(core.CueThrustStop)
	}

	trigger := in.Fire
	if w.cfg.Ship.FireOnPress {
		trigger = in.FirePressed
	}
	if trigger && s.CanFire() && w.bulletSlotFree() {
		b, _ := s.fire(w.cfg.Bullets)
		w.Bullets = append(w.Bullets, b)
		w.emit(core.CueFire)
	}

	for _, b := range w.Bullets {
		b.update(w.field)
	}
	for _, a := range w.Asteroids {
		a.update(w.field)
	}
	for _, e := range w.Enemies {
		w.updateEnemy(e, s.Pos)
	}
	for _, p := range w.Particles {
		p.update()
	}
}

func (w *World) bulletSlotFree() bool {
	limit := w.cfg.Ship.MaxBullets
	return limit == 0 || len(w.Bullets) < limit
}
