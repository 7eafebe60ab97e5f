package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapper/internal/config"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSimulateAutopilot(t *testing.T) {
	opts := simOptions{Frames: 170, Autopilot: true, TickRate: 60, Seed: 7}

	s, err := simulate(config.DefaultFlappyConfig(), opts, quietLogger())
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	if s.GameOver {
		t.Fatalf("autopilot crashed after %d frames", s.Frames)
	}
	if s.Frames != 170 {
		t.Errorf("Frames = %d, expected 170", s.Frames)
	}
	if s.Spawned == 0 {
		t.Error("expected at least one obstacle to spawn")
	}
	if s.Live != s.Spawned-s.Removed {
		t.Errorf("live %d != spawned %d - removed %d", s.Live, s.Spawned, s.Removed)
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	opts := simOptions{Frames: 400, Autopilot: true, TickRate: 60, Seed: 11}

	a, err := simulate(config.DefaultFlappyConfig(), opts, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	b, err := simulate(config.DefaultFlappyConfig(), opts, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same seed gave different runs:\n%+v\n%+v", a, b)
	}
}

func TestSimulateWithoutTapsWaits(t *testing.T) {
	opts := simOptions{Frames: 300, TickRate: 60, Seed: 1}

	s, err := simulate(config.DefaultFlappyConfig(), opts, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if s.GameOver || s.Spawned != 0 {
		t.Errorf("hero should wait for the first tap: %+v", s)
	}
}

func TestSimulateSingleTapFalls(t *testing.T) {
	opts := simOptions{Frames: 600, TapEvery: 10000, TickRate: 60, Seed: 1}

	s, err := simulate(config.DefaultFlappyConfig(), opts, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if !s.GameOver {
		t.Fatalf("a single tap should end on the ground: %+v", s)
	}
	if s.Frames >= 600 {
		t.Errorf("simulation should stop at game over, ran %d frames", s.Frames)
	}
}

func TestSimulateRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts simOptions
	}{
		{"negative frames", simOptions{Frames: -1}},
		{"negative tap-every", simOptions{Frames: 10, TapEvery: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := simulate(config.DefaultFlappyConfig(), tt.opts, quietLogger()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, simSummary{Frames: 55, Score: 2, Spawned: 3, Removed: 1, Live: 2, GameOver: true, HeroY: 124})

	out := buf.String()
	for _, want := range []string{"frames:   55", "outcome:  game over", "score:    2", "live:     2", "hero y:   124.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPortFromAddr(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"localhost", "localhost"},
	}
	for _, tt := range tests {
		if got := portFromAddr(tt.addr); got != tt.want {
			t.Errorf("portFromAddr(%q) = %q, expected %q", tt.addr, got, tt.want)
		}
	}
}
