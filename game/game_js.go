//go:build js

package game

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/rs/zerolog"
)

// Game binds a Session to the browser: canvas, HUD elements, timers.
// A finished session is replaced by a fresh one on restart.
type Game struct {
	Session *Session
	Mode    Mode
	Tuning  Tuning
	Log     zerolog.Logger

	// Rendering
	Canvas *js.Object
	Ctx    *js.Object

	// HUD elements (optional)
	HealthEl *js.Object
	TimeEl   *js.Object

	// Scheduling
	AnimationFrameID int
	FireTimerID      int
	LastFrameTime    float64

	StatsOverlay *StatsOverlay
}

// NewGame creates a browser game. The session itself is created by Start.
func NewGame(canvas, ctx *js.Object, mode Mode, tuning Tuning) *Game {
	return &Game{
		Mode:         mode,
		Tuning:       tuning,
		Log:          NewLogger(ConsoleWriter{}),
		Canvas:       canvas,
		Ctx:          ctx,
		HealthEl:     elementByID("health"),
		TimeEl:       elementByID("time"),
		StatsOverlay: NewStatsOverlay(),
	}
}

// elementByID returns the element or nil when the page has none.
func elementByID(id string) *js.Object {
	el := js.Global.Get("document").Call("getElementById", id)
	if el == nil || el == js.Undefined {
		return nil
	}
	return el
}

// viewport reads the canvas size on every call, so a resize between ticks
// is seen by the next tick.
func (g *Game) viewport() Viewport {
	return ViewportFunc(func() Bounds {
		return Bounds{
			Width:  g.Canvas.Get("width").Float(),
			Height: g.Canvas.Get("height").Float(),
		}
	})
}

// ResizeCanvas matches the canvas backing store to the window.
func (g *Game) ResizeCanvas() {
	g.Canvas.Set("width", js.Global.Get("innerWidth").Int())
	g.Canvas.Set("height", js.Global.Get("innerHeight").Int())
}

// Start creates a fresh session and begins the frame and fire-poll loops.
func (g *Game) Start() error {
	g.Stop()

	seed := uint32(js.Global.Get("Date").Call("now").Int64())
	s, err := Start(Config{
		Mode:     g.Mode,
		Tuning:   g.Tuning,
		Seed:     seed,
		Clock:    SystemClock{},
		Viewport: g.viewport(),
		Logger:   &g.Log,
	})
	if err != nil {
		return err
	}
	g.Session = s

	if fp := g.Tuning.FirePoll; fp > 0 {
		g.FireTimerID = js.Global.Call("setInterval", func() {
			if g.Session.IsTerminal() {
				g.stopFirePoll()
				return
			}
			g.Session.RequestFire()
		}, fp.Milliseconds()).Int()
	}
	g.AnimationFrameID = js.Global.Call("requestAnimationFrame", g.GameLoopRAF).Int()
	return nil
}

// Stop cancels pending frames and the fire-poll timer.
func (g *Game) Stop() {
	if g.AnimationFrameID > 0 {
		js.Global.Call("cancelAnimationFrame", g.AnimationFrameID)
		g.AnimationFrameID = 0
	}
	g.stopFirePoll()
}

func (g *Game) stopFirePoll() {
	if g.FireTimerID > 0 {
		js.Global.Call("clearInterval", g.FireTimerID)
		g.FireTimerID = 0
	}
}

// IsTerminal reports whether there is no running session.
func (g *Game) IsTerminal() bool {
	return g.Session == nil || g.Session.IsTerminal()
}
