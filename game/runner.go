package game

import (
	"context"
	"time"
)

// Runner drives a session outside the browser. In real-time mode a frame
// ticker and a fire-poll ticker share one select loop, so the session is
// only ever touched from the Run goroutine. In lockstep mode ticks run back
// to back and Clock (which must be the session's clock) advances by
// FrameStep per tick.
type Runner struct {
	Session *Session
	Period  time.Duration        // frame period; defaults to FrameStep
	Sink    func(Snapshot) error // optional render sink, called after every tick

	Lockstep bool
	Clock    *ManualClock // required in lockstep mode
	MaxTicks int          // stop after this many ticks; zero means unlimited
}

// Run ticks the session until GAME_OVER (nil), cancellation (ctx.Err()),
// MaxTicks (nil) or a sink error.
func (r *Runner) Run(ctx context.Context) error {
	if r.Session.IsTerminal() {
		return nil
	}
	if r.Lockstep {
		return r.runLockstep(ctx)
	}

	period := r.Period
	if period <= 0 {
		period = FrameStep
	}
	frames := time.NewTicker(period)
	defer frames.Stop()

	var poll <-chan time.Time
	if fp := r.Session.Tuning().FirePoll; fp > 0 {
		t := time.NewTicker(fp)
		defer t.Stop()
		poll = t.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-poll:
			r.Session.RequestFire()
		case <-frames.C:
			done, err := r.tick()
			if done || err != nil {
				return err
			}
		}
	}
}

func (r *Runner) runLockstep(ctx context.Context) error {
	pollTicks := 0
	if fp := r.Session.Tuning().FirePoll; fp > 0 {
		pollTicks = max(1, int(fp/FrameStep))
	}
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.Clock != nil {
			r.Clock.Advance(FrameStep)
		}
		if pollTicks > 0 && n%pollTicks == 0 {
			r.Session.RequestFire()
		}
		done, err := r.tick()
		if done || err != nil {
			return err
		}
	}
}

// tick runs one step and reports whether the run is over.
func (r *Runner) tick() (bool, error) {
	if r.Session.IsTerminal() {
		return true, nil
	}
	snap := r.Session.Step()
	if r.Sink != nil {
		if err := r.Sink(snap); err != nil {
			return true, err
		}
	}
	if snap.State == GameOver {
		return true, nil
	}
	return r.MaxTicks > 0 && snap.Stats.Ticks >= r.MaxTicks, nil
}
