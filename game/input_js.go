//go:build js

package game

import (
	"github.com/gopherjs/gopherjs/js"
)

// KeyF10 toggles the stats overlay.
const KeyF10 = 121

// SetupInputHandlers attaches DOM listeners. Handlers look up the current
// session's adapter on every event, so they survive a restart.
func (g *Game) SetupInputHandlers() {
	document := js.Global.Get("document")
	window := js.Global

	document.Call("addEventListener", "keydown", func(event *js.Object) {
		keyCode := event.Get("keyCode").Int()
		if keyCode == KeyF10 {
			g.StatsOverlay.Toggle()
			event.Call("preventDefault")
			return
		}
		if in := g.pointerInput(); in != nil {
			in.SetKey(keyCode, true)
		}
		if IsMovementKey(keyCode) {
			event.Call("preventDefault")
		}
	})

	document.Call("addEventListener", "keyup", func(event *js.Object) {
		if in := g.pointerInput(); in != nil {
			in.SetKey(event.Get("keyCode").Int(), false)
		}
	})

	g.Canvas.Call("addEventListener", "mousemove", func(event *js.Object) {
		if in := g.pointerInput(); in != nil {
			x, y := g.canvasPoint(event)
			in.SetPointer(x, y)
		}
	})

	g.Canvas.Call("addEventListener", "click", func(event *js.Object) {
		if g.IsTerminal() {
			g.restart()
		}
	})

	g.Canvas.Call("addEventListener", "touchstart", func(event *js.Object) {
		event.Call("preventDefault")
		if g.IsTerminal() {
			g.restart()
			return
		}
		in := g.stickInput()
		if in == nil {
			return
		}
		half := g.Canvas.Get("width").Float() / 2
		g.forEachChangedTouch(event, func(id int, x, y float64) {
			if x < half {
				if !in.MoveStick.Active {
					in.MoveStick.Begin(id, x, y)
				}
			} else if !in.AimStick.Active {
				in.AimStick.Begin(id, x, y)
			}
		})
	}, map[string]bool{"passive": false})

	g.Canvas.Call("addEventListener", "touchmove", func(event *js.Object) {
		event.Call("preventDefault")
		in := g.stickInput()
		if in == nil {
			return
		}
		g.forEachChangedTouch(event, func(id int, x, y float64) {
			if s := in.StickFor(id); s != nil {
				s.Move(x, y)
			}
		})
	}, map[string]bool{"passive": false})

	touchEnd := func(event *js.Object) {
		in := g.stickInput()
		if in == nil {
			return
		}
		g.forEachChangedTouch(event, func(id int, _, _ float64) {
			if s := in.StickFor(id); s != nil {
				s.End()
			}
		})
	}
	g.Canvas.Call("addEventListener", "touchend", touchEnd)
	g.Canvas.Call("addEventListener", "touchcancel", touchEnd)

	window.Call("addEventListener", "resize", func() {
		g.ResizeCanvas()
	})

	// Held keys and sticks would otherwise stay latched after focus is lost.
	window.Call("addEventListener", "blur", func() {
		if in := g.pointerInput(); in != nil {
			in.Release()
		}
		if in := g.stickInput(); in != nil {
			in.MoveStick.End()
			in.AimStick.End()
		}
	})
}

func (g *Game) restart() {
	if err := g.Start(); err != nil {
		g.Log.Error().Err(err).Msg("restart failed")
	}
}

func (g *Game) pointerInput() *PointerInput {
	if g.Session == nil {
		return nil
	}
	in, _ := g.Session.Input().(*PointerInput)
	return in
}

func (g *Game) stickInput() *StickInput {
	if g.Session == nil {
		return nil
	}
	in, _ := g.Session.Input().(*StickInput)
	return in
}

// canvasPoint converts a mouse or touch event position to canvas coordinates.
func (g *Game) canvasPoint(event *js.Object) (float64, float64) {
	rect := g.Canvas.Call("getBoundingClientRect")
	return event.Get("clientX").Float() - rect.Get("left").Float(),
		event.Get("clientY").Float() - rect.Get("top").Float()
}

func (g *Game) forEachChangedTouch(event *js.Object, fn func(id int, x, y float64)) {
	touches := event.Get("changedTouches")
	for i := 0; i < touches.Length(); i++ {
		t := touches.Index(i)
		x, y := g.canvasPoint(t)
		fn(t.Get("identifier").Int(), x, y)
	}
}
