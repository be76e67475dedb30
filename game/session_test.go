package game

import (
	"errors"
	"testing"
	"time"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func desktopTuning(t *testing.T) Tuning {
	t.Helper()
	tun, err := LoadTuning("desktop")
	if err != nil {
		t.Fatalf("Expected desktop preset, got %v", err)
	}
	return tun
}

// newTestSession starts a pointer session on a frozen clock in a 200x200
// world, with the player at (100, 100).
func newTestSession(t *testing.T, tun Tuning) (*Session, *ManualClock) {
	t.Helper()
	clock := NewManualClock(testEpoch)
	s, err := Start(Config{
		Mode:     ModePointer,
		Tuning:   tun,
		Seed:     1,
		Clock:    clock,
		Viewport: FixedViewport(200, 200),
	})
	if err != nil {
		t.Fatalf("Expected session to start, got %v", err)
	}
	return s, clock
}

// quiet stops spawning and firing until the clock moves.
func quiet(s *Session, clock *ManualClock) {
	s.lastSpawn = clock.Now()
	s.lastShot = clock.Now()
	s.fireArmed = false
}

func TestStartPlacesPlayerAtCenter(t *testing.T) {
	s, _ := newTestSession(t, desktopTuning(t))
	p := s.World.Player
	if p.X != 100 || p.Y != 100 {
		t.Errorf("Expected player at (100, 100), got (%f, %f)", p.X, p.Y)
	}
	if p.Health != 3 {
		t.Errorf("Expected health 3, got %d", p.Health)
	}
	if s.State() != Running || s.IsTerminal() {
		t.Errorf("Expected RUNNING, got %s", s.State())
	}
	if len(s.World.Enemies) != 0 || s.World.Projectiles.ActiveCount != 0 {
		t.Error("Expected an empty world at start")
	}
	if s.Elapsed() != 0 {
		t.Errorf("Expected zero elapsed, got %s", s.Elapsed())
	}
}

func TestStartRejectsUnknownMode(t *testing.T) {
	_, err := Start(Config{
		Mode:     "gamepad",
		Tuning:   desktopTuning(t),
		Viewport: FixedViewport(200, 200),
	})
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Expected ErrUnknownMode, got %v", err)
	}
}

func TestStartRejectsInvalidTuning(t *testing.T) {
	tun := desktopTuning(t)
	tun.Player.Health = 0
	_, err := Start(Config{Mode: ModePointer, Tuning: tun, Viewport: FixedViewport(200, 200)})
	if !errors.Is(err, ErrInvalidTuning) {
		t.Errorf("Expected ErrInvalidTuning, got %v", err)
	}
}

func TestStartRequiresViewport(t *testing.T) {
	if _, err := Start(Config{Mode: ModePointer, Tuning: desktopTuning(t)}); err == nil {
		t.Error("Expected an error without a viewport")
	}
}

func TestSessionsHaveDistinctIDs(t *testing.T) {
	a, _ := newTestSession(t, desktopTuning(t))
	b, _ := newTestSession(t, desktopTuning(t))
	if a.ID == b.ID {
		t.Errorf("Expected distinct session ids, got %s twice", a.ID)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s, clock := newTestSession(t, desktopTuning(t))
	quiet(s, clock)
	s.World.Enemies = append(s.World.Enemies, &Enemy{X: 10, Y: 10, Size: 10})

	snap := s.Snapshot()
	snap.Enemies[0].X = 999
	if s.World.Enemies[0].X != 10 {
		t.Error("Expected snapshot mutation not to reach the world")
	}
	if snap.State != Running || snap.Health != 3 {
		t.Errorf("Unexpected snapshot %+v", snap)
	}
}

func TestStateString(t *testing.T) {
	if Running.String() != "RUNNING" || GameOver.String() != "GAME_OVER" {
		t.Errorf("Unexpected state names %s, %s", Running, GameOver)
	}
}

func TestFormatSeconds(t *testing.T) {
	if got := formatSeconds(12.345); got != "12.3" {
		t.Errorf("Expected 12.3, got %s", got)
	}
}
