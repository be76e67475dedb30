//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/swarm-survivor/game"
)

func main() {
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "gameCanvas")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}
	ctx := canvas.Call("getContext", "2d")

	params := js.Global.Get("URLSearchParams").New(js.Global.Get("location").Get("search"))
	if params.Call("has", "debug").Bool() {
		game.EnableDebug = true
	}

	mode := game.ModePointer
	if isTouchDevice() {
		mode = game.ModeTouch
	}
	if q := params.Call("get", "mode"); q != nil && q != js.Undefined {
		m, err := game.ParseMode(q.String())
		if err != nil {
			panic(err)
		}
		mode = m
	}

	preset := game.PresetFor(mode)
	if q := params.Call("get", "preset"); q != nil && q != js.Undefined {
		preset = q.String()
	}
	tuning, err := game.LoadTuning(preset)
	if err != nil {
		panic(err)
	}

	g := game.NewGame(canvas, ctx, mode, tuning)
	g.ResizeCanvas()
	g.SetupInputHandlers()
	if err := g.Start(); err != nil {
		panic(err)
	}

	js.Global.Set("SwarmSurvivor", map[string]interface{}{
		"restart": func() {
			if err := g.Start(); err != nil {
				g.Log.Error().Err(err).Msg("restart failed")
			}
		},
		"isTerminal": func() bool {
			return g.IsTerminal()
		},
		"mode": func() string {
			return string(g.Mode)
		},
	})

	select {}
}

func isTouchDevice() bool {
	if js.Global.Get("ontouchstart") != js.Undefined {
		return true
	}
	return js.Global.Get("navigator").Get("maxTouchPoints").Int() > 0
}
