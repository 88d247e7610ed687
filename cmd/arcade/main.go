// arcade plays wrap-around asteroid shooters in the terminal.
//
// Usage:
//
//	arcade list                  - List available games
//	arcade play <game>           - Play a game
//	arcade menu                  - Start menu to pick games interactively
//	arcade serve                 - Start SSH server for remote play
//	arcade leaderboard           - Show the leaderboard
//	arcade simulate <game>       - Run a game headless with the autopilot
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load game config from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error (default: warn)
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roids-arcade/internal/config"
	"github.com/vovakirdan/roids-arcade/internal/games/roids"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	err := rootCmd.Execute()
	closeLogFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Roids Arcade - Shoot rocks in your terminal",
	Long: `Roids Arcade is a terminal asteroid shooter with three rule sets:
classic Roids, Roids+ with twin turrets and enemy hunters, and the
unforgiving Enders Roids.

Available commands:
  list         - Show all available games
  play         - Play a specific game directly
  menu         - Interactive game picker menu
  serve        - Start SSH server for remote play
  leaderboard  - View the leaderboard
  simulate     - Run a game headless for reproducibility checks

Examples:
  arcade list
  arcade play roids_plus
  arcade play roids_enders --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade simulate roids --ticks 3600 --seed 42`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: configureGames,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(simulateCmd)
}

// configureGames validates the global flags and hands them to the games
// before any command creates one.
func configureGames(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}

	logger, err := newLogger(isInteractive(cmd))
	if err != nil {
		return err
	}

	appLogger = logger
	roids.SetLogger(logger)
	roids.SetConfigPath(flagConfig)
	roids.SetDifficultyPreset(flagDifficulty)
	return nil
}

// isInteractive reports whether cmd takes over the terminal.
func isInteractive(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "play", "menu", "leaderboard":
		return true
	}
	return false
}
