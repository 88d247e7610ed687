// Package roids implements a wrap-around asteroid shooter.
// The ship rotates, thrusts and fires at asteroids that split into smaller
// pieces. The plus and enders variants add enemy ships that hunt the player.
//
// All rules live in World, which advances in fixed ticks from a seeded RNG.
// Game adapts a World to the platform's registry.Game interface.
package roids

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roids-arcade/internal/config"
	"github.com/vovakirdan/roids-arcade/internal/core"
	"github.com/vovakirdan/roids-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives simulation events. Silent unless the CLI installs one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger installs the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

var gameIDs = map[config.Variant]string{
	config.VariantClassic: "roids",
	config.VariantPlus:    "roids_plus",
	config.VariantEnders:  "roids_enders",
}

var blurbs = map[config.Variant]string{
	config.VariantClassic: "Split rocks, dodge debris. One gun, no company.",
	config.VariantPlus:    "Twin turrets and hunter ships that shoot back.",
	config.VariantEnders:  "Five rounds in the air, scattered waves, no mercy.",
}

// Game adapts a World to the arcade platform.
type Game struct {
	variant config.Variant
	cfg     config.RoidsConfig
	world   *World
	runtime core.RuntimeConfig
	paused  bool
	frame   int // render counter for blinking

	// difficulty overrides the package preset when difficultySet is true.
	difficulty    config.DifficultyPreset
	difficultySet bool
}

// New creates a game of the given variant. Call Reset before stepping it.
func New(v config.Variant) *Game {
	return &Game{variant: v, cfg: config.DefaultRoidsConfig(v)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return gameIDs[g.variant]
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Title
}

// Blurb returns a one-line description for menus.
func (g *Game) Blurb() string {
	return blurbs[g.variant]
}

// Variant returns the rule set this game plays.
func (g *Game) Variant() config.Variant {
	return g.variant
}

// SetDifficulty overrides the CLI preset for this instance.
// Unknown names select no preset.
func (g *Game) SetDifficulty(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	g.difficulty = p
	g.difficultySet = true
}

// Reset loads the configuration and builds a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRoids(g.variant, configPath)
	if err != nil {
		logger.Warn("falling back to default config", "variant", g.variant, "err", err)
		cfg = config.DefaultRoidsConfig(g.variant)
	}
	preset := difficultyPreset
	if g.difficultySet {
		preset = g.difficulty
	}
	if preset != "" {
		config.ApplyRoidsPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.paused = false
	g.frame = 0

	g.world = NewWorld(cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.world.SetLogger(logger)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionPause) && g.world.Phase == core.PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	cues := g.world.Tick(IntentsFrom(in))
	return core.StepResult{State: g.State(), Cues: cues}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Lives: g.cfg.Ship.Lives, Level: 1}
	}
	w := g.world
	return core.GameState{
		Phase:    w.Phase,
		Score:    w.Score,
		Lives:    w.Ship.Lives,
		Level:    w.Level,
		GameOver: w.Phase == core.PhaseGameOver,
		Paused:   g.paused,
	}
}

// World exposes the simulation, e.g. for autopilots and tests.
func (g *Game) World() *World {
	return g.world
}

func init() {
	for _, v := range config.Variants() {
		v := v
		registry.Register(gameIDs[v], func() registry.Game {
			return New(v)
		})
	}
}
