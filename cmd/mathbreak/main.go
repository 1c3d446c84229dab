// mathbreak is a Breakout game for the terminal where every brick hit asks
// an arithmetic question.
//
// Usage:
//
//	mathbreak                 - Play (same as "mathbreak play")
//	mathbreak play            - Play a game
//	mathbreak config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Path to a custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathbreak/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mathbreak",
	Short: "Math Breakout - Break bricks by solving arithmetic",
	Long: `Math Breakout is Breakout for the terminal. Every brick you hit pauses
the game with a small arithmetic question: answer it in time to score,
miss it and you lose a life.

Available commands:
  play     - Play a game (default)
  config   - Print the effective configuration

Examples:
  mathbreak
  mathbreak play --difficulty easy
  mathbreak --seed 42 --log-file mathbreak.log
  mathbreak config --default > my-config.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: "+config.PresetNames())
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
