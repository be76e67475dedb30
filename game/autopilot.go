package game

import (
	"math"

	"github.com/simukka/swarm-survivor/common"
)

// Autopilot is a bot adapter: it aims at the nearest enemy and steers away
// from enemies inside DangerRadius while drifting back towards the centre.
type Autopilot struct {
	DangerRadius float64
	CenterPull   float64
	DeadZone     float64
	aim          common.Vec
}

// NewAutopilot creates an autopilot with default steering weights.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		DangerRadius: 160,
		CenterPull:   0.002,
		DeadZone:     1e-4,
		aim:          DefaultAim,
	}
}

// Signals implements Adapter.
func (a *Autopilot) Signals(w *World) Signals {
	player := w.Player.Pos()

	var nearest *Enemy
	nearestDist := math.MaxFloat64
	var flee common.Vec
	for _, e := range w.Enemies {
		away := player.Sub(common.Vec{X: e.X, Y: e.Y})
		d := away.Len()
		if d < nearestDist {
			nearestDist = d
			nearest = e
		}
		if d == 0 || d > a.DangerRadius {
			continue
		}
		// Closer enemies push harder.
		flee = flee.Add(away.Scale(1 / (d * d)))
	}

	if nearest != nil {
		if aim, ok := (common.Vec{X: nearest.X, Y: nearest.Y}).Sub(player).Normalize(); ok {
			a.aim = aim
		}
	}

	steer := flee
	if w.Bounds.Width > 0 && w.Bounds.Height > 0 {
		steer = steer.Add(w.Bounds.Center().Sub(player).Scale(a.CenterPull / a.DangerRadius))
	}
	if steer.Len() < a.DeadZone {
		return Signals{Aim: a.aim}
	}
	move, _ := steer.Normalize()
	return Signals{Move: move, Aim: a.aim}
}
