package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roids-arcade/internal/platform/tui"
	"github.com/vovakirdan/roids-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Pause and press Esc in a game to return to the menu.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Change difficulty
  Enter/Space   - Select game
  Tab           - Leaderboard
  Q/Esc         - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty hard`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on hits, level-ups and game over")
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := terminalConfig()
	opts := tui.Options{Logger: appLogger}
	if flagBell {
		opts.Bell = os.Stdout
	}

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsLeaderboard {
			goBack, err := tui.RunLeaderboard(cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := createGame(menuResult.GameID)
		if err != nil {
			return err
		}
		if t, ok := game.(registry.Tunable); ok && menuResult.Difficulty != "" {
			t.SetDifficulty(menuResult.Difficulty)
		}

		// Fresh seed per game unless --seed pins it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.RunEmbedded(game, cfg, opts)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
