package game

import "time"

// Ramp is an interval that tightens linearly from Max to Min over a ramp window.
type Ramp struct {
	Max time.Duration `yaml:"max"`
	Min time.Duration `yaml:"min"`
}

// At returns the interval after elapsed session time, clamped at Min once
// the window has passed.
func (r Ramp) At(elapsed, window time.Duration) time.Duration {
	progress := 1.0
	if window > 0 && elapsed < window {
		progress = float64(elapsed) / float64(window)
	}
	if progress < 0 {
		progress = 0
	}
	d := time.Duration(float64(r.Max) - float64(r.Max-r.Min)*progress)
	if d < r.Min {
		return r.Min
	}
	return d
}

// Difficulty maps elapsed session time to fire cadence, spawn cadence and
// enemy speed. All methods are pure; elapsed is always measured from session start.
type Difficulty struct {
	Fire           Ramp
	Spawn          Ramp
	Window         time.Duration
	SpeedStep      time.Duration
	SpeedIncrement float64
}

// FireInterval is the minimum wall time between two volleys.
func (d Difficulty) FireInterval(elapsed time.Duration) time.Duration {
	return d.Fire.At(elapsed, d.Window)
}

// SpawnInterval is the minimum wall time between two enemy spawns.
func (d Difficulty) SpawnInterval(elapsed time.Duration) time.Duration {
	return d.Spawn.At(elapsed, d.Window)
}

// SpeedSteps counts the completed speed steps: floor(elapsed / SpeedStep).
func (d Difficulty) SpeedSteps(elapsed time.Duration) int {
	if d.SpeedStep <= 0 || elapsed <= 0 {
		return 0
	}
	return int(elapsed / d.SpeedStep)
}

// SpeedMultiplier scales the base enemy speed. It grows by SpeedIncrement
// every SpeedStep with no ceiling.
func (d Difficulty) SpeedMultiplier(elapsed time.Duration) float64 {
	return 1 + float64(d.SpeedSteps(elapsed))*d.SpeedIncrement
}
