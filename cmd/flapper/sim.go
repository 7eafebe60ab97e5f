package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/games/flappy"
)

var (
	flagFrames    int
	flagTapEvery  int
	flagAutopilot bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation and print a summary",
	Long: `Run the game without a terminal UI for a fixed number of frames.

Taps come either from a fixed schedule (--tap-every) or from the built-in
autopilot. Spawn and removal events are logged at debug level.

Examples:
  flapper sim --frames 600 --tap-every 20
  flapper sim --frames 3600 --autopilot --seed 7
  flapper sim --autopilot --log-level debug`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	simCmd.Flags().IntVar(&flagTapEvery, "tap-every", 0, "Tap once every N frames (0 = never)")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot decide when to tap")
	simCmd.MarkFlagsMutuallyExclusive("tap-every", "autopilot")
}

// simOptions controls a headless run.
type simOptions struct {
	Frames    int
	TapEvery  int
	Autopilot bool
	TickRate  int
	Seed      int64
}

// simSummary is the outcome of a headless run.
type simSummary struct {
	Frames   int
	Score    int
	Spawned  int
	Removed  int
	Live     int
	GameOver bool
	HeroY    float64
}

func runSim(cmd *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := simOptions{
		Frames:    flagFrames,
		TapEvery:  flagTapEvery,
		Autopilot: flagAutopilot,
		TickRate:  flagFPS,
		Seed:      flagSeed,
	}

	summary, err := simulate(cfg, opts, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printSummary(cmd.OutOrStdout(), summary)
}

// simulate runs the game headlessly. The seed is used as given so that runs
// are reproducible.
func simulate(cfg config.FlappyConfig, opts simOptions, logger *log.Logger) (simSummary, error) {
	if opts.Frames < 0 {
		return simSummary{}, errors.New("frames must not be negative")
	}
	if opts.TapEvery < 0 {
		return simSummary{}, errors.New("tap-every must not be negative")
	}

	game, err := flappy.New(cfg, logger)
	if err != nil {
		return simSummary{}, err
	}
	game.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})

	var pilot *flappy.Autopilot
	if opts.Autopilot {
		pilot = flappy.NewAutopilot(game)
	}

	var s simSummary
	in := core.NewInputFrame()
	for frame := 0; frame < opts.Frames; frame++ {
		in.Clear()
		switch {
		case pilot != nil:
			if pilot.Tap() {
				in.Set(core.ActionTap)
			}
		case opts.TapEvery > 0 && frame%opts.TapEvery == 0:
			in.Set(core.ActionTap)
		}

		res := game.Step(in)
		s.Frames++
		s.Spawned += res.Spawned
		s.Removed += res.Removed

		if res.State.Score != s.Score {
			s.Score = res.State.Score
			logger.Info("scored", "frame", frame, "score", s.Score)
		}
		if res.State.GameOver {
			s.GameOver = true
			logger.Info("game over", "frame", frame, "score", s.Score)
			break
		}
	}

	s.Live = game.Live()
	pos, _, _ := game.Hero()
	s.HeroY = pos.Y
	return s, nil
}

func printSummary(w io.Writer, s simSummary) {
	outcome := "alive"
	if s.GameOver {
		outcome = "game over"
	}
	fmt.Fprintf(w, "frames:   %d\n", s.Frames)
	fmt.Fprintf(w, "outcome:  %s\n", outcome)
	fmt.Fprintf(w, "score:    %d\n", s.Score)
	fmt.Fprintf(w, "spawned:  %d\n", s.Spawned)
	fmt.Fprintf(w, "removed:  %d\n", s.Removed)
	fmt.Fprintf(w, "live:     %d\n", s.Live)
	fmt.Fprintf(w, "hero y:   %.1f\n", s.HeroY)
}
