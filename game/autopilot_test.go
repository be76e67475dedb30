package game

import (
	"math"
	"testing"
)

func TestAutopilot_AimsAtNearestEnemy(t *testing.T) {
	a := NewAutopilot()
	w := worldWithPlayerAt(400, 300)
	w.Enemies = []*Enemy{
		{X: 400, Y: 100, Size: 10},
		{X: 450, Y: 300, Size: 10},
	}

	sig := a.Signals(w)
	if math.Abs(sig.Aim.X-1) > 1e-9 || math.Abs(sig.Aim.Y) > 1e-9 {
		t.Errorf("Expected aim (1, 0) at the nearest enemy, got %v", sig.Aim)
	}
}

func TestAutopilot_FleesCloseEnemies(t *testing.T) {
	a := NewAutopilot()
	w := worldWithPlayerAt(400, 300)
	w.Enemies = []*Enemy{{X: 450, Y: 300, Size: 10}}

	sig := a.Signals(w)
	if sig.Move.X >= 0 {
		t.Errorf("Expected to move away (negative x), got %v", sig.Move)
	}
	if math.Abs(sig.Move.Len()-1) > 1e-9 {
		t.Errorf("Expected unit move, got length %f", sig.Move.Len())
	}
}

func TestAutopilot_IdleAtCenterWithoutEnemies(t *testing.T) {
	a := NewAutopilot()
	sig := a.Signals(worldWithPlayerAt(400, 300))
	if !sig.Move.IsZero() {
		t.Errorf("Expected no move at the centre, got %v", sig.Move)
	}
	if sig.Aim != DefaultAim {
		t.Errorf("Expected default aim, got %v", sig.Aim)
	}
}

func TestAutopilot_DriftsTowardCenter(t *testing.T) {
	a := NewAutopilot()
	sig := a.Signals(worldWithPlayerAt(50, 300))
	if sig.Move.X <= 0 {
		t.Errorf("Expected drift towards the centre, got %v", sig.Move)
	}
}

func TestAutopilot_KeepsAimWhenEnemyOnPlayer(t *testing.T) {
	a := NewAutopilot()
	w := worldWithPlayerAt(400, 300)
	w.Enemies = []*Enemy{{X: 400, Y: 250, Size: 10}}
	first := a.Signals(w)

	w.Enemies = []*Enemy{{X: 400, Y: 300, Size: 10}}
	if got := a.Signals(w); got.Aim != first.Aim {
		t.Errorf("Expected aim %v kept, got %v", first.Aim, got.Aim)
	}
}
