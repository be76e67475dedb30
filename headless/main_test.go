package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/simukka/swarm-survivor/game"
)

func TestParseOptionsDefaults(t *testing.T) {
	o, err := parseOptions(nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if o.Sessions != 1 || o.Preset != "desktop" || o.Width != 800 || o.Height != 600 {
		t.Errorf("Unexpected defaults: %+v", o)
	}
}

func TestParseOptionsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero sessions", []string{"-sessions", "0"}},
		{"watch with lockstep", []string{"-watch", "-lockstep"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseOptions(tt.args); err == nil {
				t.Errorf("Expected error for %v", tt.args)
			}
		})
	}
}

func TestResolveTuningFromFile(t *testing.T) {
	doc := `
tiny:
  player: {size: 10, speed: 2, health: 1}
  projectile: {size: 2, speed: 4, capacity: 16}
  enemy: {base_speed: 1, min_size: 4, max_size: 8}
  fire: {max: 300ms, min: 100ms}
  spawn: {max: 1s, min: 200ms}
  ramp_window: 30s
  speed_step: 5s
  speed_increment: 0.1
  fire_poll: 0s
  stick_radius: 40
  collision_grid: false
  grid_cell: 32
`
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	tun, err := resolveTuning(options{Preset: "tiny", Tuning: path})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tun.Player.Health != 1 || tun.Projectile.Capacity != 16 {
		t.Errorf("Unexpected tuning %+v", tun)
	}

	_, err = resolveTuning(options{Preset: "missing", Tuning: path})
	if !errors.Is(err, game.ErrUnknownPreset) {
		t.Errorf("Expected ErrUnknownPreset, got %v", err)
	}
}

func TestRunSessionsLockstepIsDeterministic(t *testing.T) {
	o := options{
		Sessions: 3,
		Preset:   "desktop",
		Seed:     42,
		Width:    800,
		Height:   600,
		Lockstep: true,
		MaxTicks: 600,
	}
	tun, err := resolveTuning(o)
	if err != nil {
		t.Fatal(err)
	}

	first, err := runSessions(context.Background(), o, tun, zerolog.Nop(), nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := runSessions(context.Background(), o, tun, zerolog.Nop(), nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(first) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(first))
	}
	for i := range first {
		if first[i].Seed != second[i].Seed {
			t.Errorf("Session %d: expected same seed, got %d and %d", i, first[i].Seed, second[i].Seed)
		}
		if first[i].Stats != second[i].Stats {
			t.Errorf("Session %d: expected identical stats, got %+v and %+v", i, first[i].Stats, second[i].Stats)
		}
		if first[i].Stats.Ticks > 600 {
			t.Errorf("Session %d: expected at most 600 ticks, got %d", i, first[i].Stats.Ticks)
		}
		if first[i].ID == second[i].ID {
			t.Errorf("Session %d: expected fresh session ids per run", i)
		}
	}
	if first[0].Seed == first[1].Seed {
		t.Errorf("Expected distinct seeds per session, got %d twice", first[0].Seed)
	}
}

func TestRunSessionsStopsOnCancel(t *testing.T) {
	o := options{Sessions: 2, Preset: "desktop", Seed: 1, Width: 800, Height: 600, Lockstep: true}
	tun, err := resolveTuning(o)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := runSessions(ctx, o, tun, zerolog.Nop(), nil)
	if err != nil {
		t.Fatalf("Expected cancellation to be swallowed, got %v", err)
	}
	for i, r := range results {
		if r.Stats.Ticks != 0 {
			t.Errorf("Session %d: expected no ticks after cancel, got %d", i, r.Stats.Ticks)
		}
	}
}
