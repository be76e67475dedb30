//go:build js

package game

import (
	"math"

	"github.com/gopherjs/gopherjs/js"
)

func jsRequestFrame(fn func(float64)) int {
	return js.Global.Call("requestAnimationFrame", fn).Int()
}

// Render draws one snapshot onto the canvas.
func (g *Game) Render(snap Snapshot) {
	ctx := g.Ctx
	w, h := snap.Bounds.Width, snap.Bounds.Height

	ctx.Set("shadowBlur", 0)
	ctx.Set("fillStyle", Theme.BackgroundColor)
	ctx.Call("fillRect", 0, 0, w, h)

	// Projectiles
	ctx.Set("shadowBlur", Theme.DefaultShadowBlur)
	ctx.Set("shadowColor", Theme.ProjectileGlow)
	ctx.Set("fillStyle", Theme.ProjectileColor)
	for _, p := range snap.Projectiles {
		ctx.Call("fillRect", p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size)
	}

	// Enemies
	ctx.Set("shadowColor", Theme.EnemyGlow)
	ctx.Set("fillStyle", Theme.EnemyColor)
	for _, e := range snap.Enemies {
		ctx.Call("beginPath")
		ctx.Call("arc", e.X, e.Y, e.Size/2, 0, math.Pi*2)
		ctx.Call("fill")
	}

	// Player, with a short aim marker
	pl := snap.Player
	ctx.Set("shadowBlur", Theme.PlayerShadowBlur)
	ctx.Set("shadowColor", Theme.PlayerGlow)
	ctx.Set("fillStyle", Theme.PlayerColor)
	ctx.Call("fillRect", pl.X-pl.Size/2, pl.Y-pl.Size/2, pl.Size, pl.Size)
	ctx.Set("strokeStyle", Theme.PlayerColor)
	ctx.Set("lineWidth", 2)
	ctx.Call("beginPath")
	ctx.Call("moveTo", pl.X, pl.Y)
	ctx.Call("lineTo", pl.X+snap.Aim.X*pl.Size, pl.Y+snap.Aim.Y*pl.Size)
	ctx.Call("stroke")
	ctx.Set("shadowBlur", 0)

	if sticks, ok := g.Session.Input().(*StickInput); ok {
		g.renderStick(&sticks.MoveStick)
		g.renderStick(&sticks.AimStick)
	}

	g.StatsOverlay.Render(ctx, g, snap)
}

func (g *Game) renderStick(s *Stick) {
	if !s.Active {
		return
	}
	ctx := g.Ctx
	ctx.Set("fillStyle", Theme.StickBaseColor)
	ctx.Call("beginPath")
	ctx.Call("arc", s.Origin.X, s.Origin.Y, s.Radius, 0, math.Pi*2)
	ctx.Call("fill")

	knob := s.Knob()
	ctx.Set("fillStyle", Theme.StickKnobColor)
	ctx.Call("beginPath")
	ctx.Call("arc", knob.X, knob.Y, s.Radius/2, 0, math.Pi*2)
	ctx.Call("fill")
}

// RenderGameOver draws the end banner over the last frame.
func (g *Game) RenderGameOver(snap Snapshot) {
	ctx := g.Ctx
	c := snap.Bounds.Center()
	cx, cy := c.X, c.Y

	ctx.Set("fillStyle", "rgba(0, 0, 0, 0.5)")
	ctx.Call("fillRect", 0, 0, snap.Bounds.Width, snap.Bounds.Height)

	ctx.Set("textAlign", "center")
	ctx.Set("textBaseline", "middle")
	ctx.Set("shadowBlur", Theme.DefaultShadowBlur)
	ctx.Set("shadowColor", Theme.TextGlow)
	ctx.Set("font", Theme.BannerFont)
	ctx.Set("fillStyle", Theme.GameOverColor)
	ctx.Call("fillText", "GAME OVER", cx, cy-24)

	ctx.Set("font", Theme.InstructFont)
	ctx.Set("fillStyle", Theme.TextSecondaryColor)
	ctx.Call("fillText", "survived "+formatSeconds(snap.ElapsedSeconds)+"s - click to restart", cx, cy+32)

	ctx.Set("shadowBlur", 0)
	ctx.Set("textAlign", "left")
	ctx.Set("textBaseline", "alphabetic")
}
