package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roids-arcade/internal/platform/tui"
)

var flagPlain bool

var leaderboardCmd = &cobra.Command{
	Use:     "leaderboard",
	Aliases: []string{"scores"},
	Short:   "Show the leaderboard",
	Long: `Display the top 10 pilots.

Scores are not recorded; the board shows the house entries.

Examples:
  arcade leaderboard
  arcade leaderboard --plain`,
	Args: cobra.NoArgs,
	RunE: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runLeaderboard(_ *cobra.Command, _ []string) error {
	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(tui.RenderLeaderboardText(tui.SampleLeaderboard()))
		return nil
	}

	cfg := terminalConfig()
	_, err := tui.RunLeaderboard(cfg.ScreenW, cfg.ScreenH)
	return err
}
