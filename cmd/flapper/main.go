// flapper is a one-button side-scroller for the terminal.
//
// Usage:
//
//	flapper play             - Play in the local terminal
//	flapper serve            - Start SSH server for remote play
//	flapper sim              - Run a headless simulation and print a summary
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Load game tuning from a YAML file
//	--difficulty <preset>   - easy, normal or hard
//	--log-level <level>     - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "flapper",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapper",
	Short: "Flapper - a one-button side-scroller in your terminal",
	Long: `Flapper keeps a hero airborne between scrolling pipes.
Tap to climb, let go to fall.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation

Examples:
  flapper play
  flapper play --difficulty hard --seed 42
  flapper serve --ssh :2222
  flapper sim --frames 3600 --autopilot`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a flappy.yaml override")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset (easy, normal, hard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// loadGameConfig resolves the tuning file and applies the difficulty preset.
func loadGameConfig() (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyFlappyPreset(&cfg, preset); err != nil {
		return cfg, err
	}

	logger.Debug("config loaded", "path", flagConfig, "difficulty", preset)
	return cfg, nil
}
