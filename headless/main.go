//go:build !js
// +build !js

// Command headless runs autopilot sessions without a browser, for soak tests
// and tuning work. With -watch the first session is drawn in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/simukka/swarm-survivor/common"
	"github.com/simukka/swarm-survivor/game"
)

type options struct {
	Sessions int
	Preset   string
	Tuning   string
	Seed     uint
	Width    float64
	Height   float64
	Lockstep bool
	MaxTicks int
	Timeout  time.Duration
	Watch    bool
	Pretty   bool
	Debug    bool
}

func parseOptions(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("headless", flag.ContinueOnError)
	fs.IntVar(&o.Sessions, "sessions", 1, "Number of concurrent sessions")
	fs.StringVar(&o.Preset, "preset", "desktop", "Tuning preset name")
	fs.StringVar(&o.Tuning, "tuning", "", "YAML file with custom presets (overrides built-ins)")
	fs.UintVar(&o.Seed, "seed", 1, "Base seed; session i uses a seed derived from it")
	fs.Float64Var(&o.Width, "width", 800, "Viewport width")
	fs.Float64Var(&o.Height, "height", 600, "Viewport height")
	fs.BoolVar(&o.Lockstep, "lockstep", false, "Run ticks back to back on a simulated clock")
	fs.IntVar(&o.MaxTicks, "max-ticks", 0, "Stop each session after this many ticks (0 = until game over)")
	fs.DurationVar(&o.Timeout, "timeout", 0, "Stop all sessions after this long (0 = no limit)")
	fs.BoolVar(&o.Watch, "watch", false, "Draw the first session in the terminal")
	fs.BoolVar(&o.Pretty, "pretty", false, "Human readable log output")
	fs.BoolVar(&o.Debug, "debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.Sessions < 1 {
		return o, fmt.Errorf("-sessions must be at least 1, got %d", o.Sessions)
	}
	if o.Watch && o.Lockstep {
		return o, errors.New("-watch needs real-time ticks; drop -lockstep")
	}
	return o, nil
}

func resolveTuning(o options) (game.Tuning, error) {
	if o.Tuning == "" {
		return game.LoadTuning(o.Preset)
	}
	data, err := os.ReadFile(o.Tuning)
	if err != nil {
		return game.Tuning{}, err
	}
	presets, err := game.ParseTuning(data)
	if err != nil {
		return game.Tuning{}, err
	}
	t, ok := presets[o.Preset]
	if !ok {
		return game.Tuning{}, fmt.Errorf("%w: %q in %s", game.ErrUnknownPreset, o.Preset, o.Tuning)
	}
	return t, nil
}

// result summarizes one finished session.
type result struct {
	ID       string
	Seed     uint32
	Survived time.Duration
	State    game.State
	Stats    game.Stats
}

// lockstepEpoch is the simulated wall clock origin in lockstep mode.
var lockstepEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// runSessions runs o.Sessions sessions concurrently. watch, when set,
// receives snapshots of session 0.
func runSessions(ctx context.Context, o options, tuning game.Tuning, log zerolog.Logger, watch chan<- game.Snapshot) ([]result, error) {
	results := make([]result, o.Sessions)
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < o.Sessions; i++ {
		i := i
		g.Go(func() error {
			seed := common.SessionSeed(uint32(o.Seed), i)

			var clock game.Clock = game.SystemClock{}
			var manual *game.ManualClock
			if o.Lockstep {
				manual = game.NewManualClock(lockstepEpoch)
				clock = manual
			}

			s, err := game.Start(game.Config{
				Mode:     game.ModeAutopilot,
				Tuning:   tuning,
				Seed:     seed,
				Clock:    clock,
				Viewport: game.FixedViewport(o.Width, o.Height),
				Logger:   &log,
			})
			if err != nil {
				return err
			}

			r := &game.Runner{
				Session:  s,
				Lockstep: o.Lockstep,
				Clock:    manual,
				MaxTicks: o.MaxTicks,
			}
			if i == 0 && watch != nil {
				r.Sink = func(snap game.Snapshot) error {
					select {
					case watch <- snap:
					default: // spectator is behind; drop the frame
					}
					return nil
				}
			}

			err = r.Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			results[i] = result{
				ID:       s.ID.String(),
				Seed:     seed,
				Survived: s.Elapsed(),
				State:    s.State(),
				Stats:    s.Stats(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func newLogger(o options) zerolog.Logger {
	game.EnableDebug = o.Debug
	var log zerolog.Logger
	if o.Pretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		log = zerolog.New(os.Stdout)
	}
	level := zerolog.InfoLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}
	return log.Level(level).With().Timestamp().Logger()
}

func main() {
	o, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := newLogger(o)
	if o.Watch {
		// The terminal belongs to the spectator; keep only warnings.
		log = log.Level(zerolog.WarnLevel)
	}

	tuning, err := resolveTuning(o)
	if err != nil {
		log.Fatal().Err(err).Msg("loading tuning")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	var results []result
	if o.Watch {
		results, err = runWatched(ctx, o, tuning, log)
	} else {
		results, err = runSessions(ctx, o, tuning, log, nil)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}

	report(log.Level(zerolog.InfoLevel), results)
}

// report logs one line per session and an aggregate.
func report(log zerolog.Logger, results []result) {
	var total time.Duration
	kills := 0
	for _, r := range results {
		total += r.Survived
		kills += r.Stats.Kills
		log.Info().
			Str("session", r.ID).
			Uint32("seed", r.Seed).
			Str("state", r.State.String()).
			Float64("survived_s", r.Survived.Seconds()).
			Int("kills", r.Stats.Kills).
			Int("ticks", r.Stats.Ticks).
			Int("shots", r.Stats.ShotsFired).
			Int("spawned", r.Stats.EnemiesSpawned).
			Msg("session finished")
	}
	if len(results) == 0 {
		return
	}
	log.Info().
		Int("sessions", len(results)).
		Float64("mean_survived_s", total.Seconds()/float64(len(results))).
		Int("kills", kills).
		Msg("summary")
}
