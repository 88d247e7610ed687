package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roids-arcade/internal/config"
	"github.com/vovakirdan/roids-arcade/internal/core"
	"github.com/vovakirdan/roids-arcade/internal/games/roids"
	"github.com/vovakirdan/roids-arcade/internal/platform/tui"
	"github.com/vovakirdan/roids-arcade/internal/registry"
)

var flagBell bool

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Rotate
  Up/W             - Thrust
  Space            - Fire (and start)
  Enter            - Start
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (when paused or over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Five lives, longer shields, fewer rocks aimed at you
  normal - The variant's own settings
  hard   - Two lives, shorter shields, faster enemy fire
  fixed  - Enemies never escalate with the level

Examples:
  arcade play roids
  arcade play roids_plus --difficulty easy
  arcade play roids_enders --seed 42
  arcade play roids --config ./my-roids.yaml --bell`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on hits, level-ups and game over")
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// createGame instantiates a game and checks that --config loads for it.
// Games fall back to defaults on a bad config, which would hide typos.
func createGame(gameID string) (registry.Game, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}

	if rg, ok := game.(*roids.Game); ok && flagConfig != "" {
		if _, err := config.LoadRoids(rg.Variant(), flagConfig); err != nil {
			return nil, err
		}
	}
	return game, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	game, err := createGame(args[0])
	if err != nil {
		return err
	}

	opts := tui.Options{Logger: appLogger}
	if flagBell {
		opts.Bell = os.Stdout
	}

	if err := tui.Run(game, terminalConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
