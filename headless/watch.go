//go:build !js
// +build !js

package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/simukka/swarm-survivor/game"
)

var (
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleGameOver   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// spectator draws snapshots of one session in the terminal.
type spectator struct {
	screen tcell.Screen
	width  int
	height int
}

func newSpectator() (*spectator, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	v := &spectator{screen: screen}
	v.width, v.height = screen.Size()
	return v, nil
}

// cell maps a world position onto the terminal, leaving the top row for the HUD.
func (v *spectator) cell(x, y float64, b game.Bounds) (int, int, bool) {
	if b.Width <= 0 || b.Height <= 0 || v.height < 2 {
		return 0, 0, false
	}
	cx := int(x / b.Width * float64(v.width))
	cy := 1 + int(y/b.Height*float64(v.height-1))
	if cx < 0 || cx >= v.width || cy < 1 || cy >= v.height {
		return 0, 0, false
	}
	return cx, cy, true
}

func (v *spectator) text(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *spectator) draw(snap game.Snapshot) {
	v.screen.Clear()

	for _, p := range snap.Projectiles {
		if x, y, ok := v.cell(p.X, p.Y, snap.Bounds); ok {
			v.screen.SetContent(x, y, '·', nil, styleProjectile)
		}
	}
	for _, e := range snap.Enemies {
		if x, y, ok := v.cell(e.X, e.Y, snap.Bounds); ok {
			v.screen.SetContent(x, y, 'o', nil, styleEnemy)
		}
	}
	if x, y, ok := v.cell(snap.Player.X, snap.Player.Y, snap.Bounds); ok {
		v.screen.SetContent(x, y, '@', nil, stylePlayer)
	}

	hud := fmt.Sprintf("Health: %d  Time: %.1fs  Kills: %d  Enemies: %d  [q] quit",
		snap.Health, snap.ElapsedSeconds, snap.Stats.Kills, len(snap.Enemies))
	v.text(0, 0, hud, styleHUD)

	if snap.State == game.GameOver {
		msg := "GAME OVER"
		v.text((v.width-len(msg))/2, v.height/2, msg, styleGameOver)
	}
	v.screen.Show()
}

// handleInput returns false when the spectator should quit.
func (v *spectator) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return true
}

// run draws until the context ends or the user quits.
func (v *spectator) run(ctx context.Context, frames <-chan game.Snapshot) bool {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return true
		case ev := <-events:
			if !v.handleInput(ev) {
				return false
			}
		case snap := <-frames:
			v.draw(snap)
		}
	}
}

// runWatched runs the sessions with a terminal spectator on session 0.
// Quitting the spectator stops every session.
func runWatched(ctx context.Context, o options, tuning game.Tuning, log zerolog.Logger) ([]result, error) {
	v, err := newSpectator()
	if err != nil {
		return nil, err
	}
	defer v.screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	frames := make(chan game.Snapshot, 4)
	var results []result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		var err error
		results, err = runSessions(gctx, o, tuning, log, frames)
		return err
	})
	g.Go(func() error {
		if !v.run(gctx, frames) {
			cancel()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
