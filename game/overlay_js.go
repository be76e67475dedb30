//go:build js

package game

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// StatsOverlay displays real-time session statistics. Toggled with F10.
type StatsOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	PanelX      int
	PanelY      int
	LineHeight  int
	PanelWidth  int
	PanelHeight int
}

// NewStatsOverlay creates a hidden overlay anchored at the top left, below the HUD.
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		PanelX:      16,
		PanelY:      48,
		LineHeight:  18,
		PanelWidth:  264,
		PanelHeight: 232,
	}
}

// Toggle toggles the stats overlay visibility
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS updates the FPS counter
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	s.FrameCount++

	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

// Render draws the hitboxes and the stats panel.
func (s *StatsOverlay) Render(ctx *js.Object, g *Game, snap Snapshot) {
	if !s.Visible {
		return
	}

	s.renderHitboxes(ctx, snap)

	ctx.Set("fillStyle", "rgba(0, 0, 0, 0.75)")
	ctx.Call("fillRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)
	ctx.Set("strokeStyle", "#00aaff")
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	ctx.Set("fillStyle", "#00aaff")
	ctx.Set("font", "bold 14px monospace")
	ctx.Set("textAlign", "left")
	ctx.Call("fillText", "SESSION STATS [F10]", s.PanelX+10, s.PanelY+20)

	ctx.Set("font", "12px monospace")
	y := s.PanelY + 48

	s.drawStatLine(ctx, "FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64), "#00ff00", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Mode", string(g.Mode), "#aaaaaa", y)
	y += s.LineHeight

	pool := g.Session.World.Projectiles
	s.drawStatLine(ctx, "Projectiles", strconv.Itoa(pool.ActiveCount)+"/"+strconv.Itoa(pool.MaxSize), "#ff8800", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Enemies", strconv.Itoa(len(snap.Enemies)), "#ff0066", y)
	y += s.LineHeight

	d := g.Session.Difficulty()
	s.drawStatLine(ctx, "Fire interval", d.FireInterval(snap.Elapsed).String(), "#8888ff", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Spawn interval", d.SpawnInterval(snap.Elapsed).String(), "#8888ff", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Speed x", strconv.FormatFloat(d.SpeedMultiplier(snap.Elapsed), 'f', 2, 64), "#8888ff", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Kills", strconv.Itoa(snap.Stats.Kills), "#ffff00", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Health", strconv.Itoa(snap.Health), s.healthColor(snap.Health, g.Tuning.Player.Health), y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Position", strconv.FormatFloat(snap.Player.X, 'f', 0, 64)+", "+strconv.FormatFloat(snap.Player.Y, 'f', 0, 64), "#aaaaaa", y)
}

// renderHitboxes outlines the collision circles.
func (s *StatsOverlay) renderHitboxes(ctx *js.Object, snap Snapshot) {
	ctx.Set("lineWidth", 1)
	ctx.Set("strokeStyle", "rgba(255, 0, 102, 0.6)")
	for _, e := range snap.Enemies {
		ctx.Call("beginPath")
		ctx.Call("arc", e.X, e.Y, e.Size/2, 0, math.Pi*2)
		ctx.Call("stroke")
	}
	ctx.Set("strokeStyle", "#00ff00")
	ctx.Call("beginPath")
	ctx.Call("arc", snap.Player.X, snap.Player.Y, snap.Player.Size/2, 0, math.Pi*2)
	ctx.Call("stroke")
}

// drawStatLine draws a single stat line with label and value
func (s *StatsOverlay) drawStatLine(ctx *js.Object, label, value, valueColor string, y int) {
	ctx.Set("fillStyle", "#cccccc")
	ctx.Call("fillText", label+":", s.PanelX+15, y)

	ctx.Set("fillStyle", valueColor)
	ctx.Set("textAlign", "right")
	ctx.Call("fillText", value, s.PanelX+s.PanelWidth-15, y)
	ctx.Set("textAlign", "left")
}

// healthColor returns a color based on the remaining share of health.
func (s *StatsOverlay) healthColor(health, maxHealth int) string {
	pct := 0
	if maxHealth > 0 {
		pct = health * 100 / maxHealth
	}
	switch {
	case pct > 75:
		return "#00ff00"
	case pct > 50:
		return "#88ff00"
	case pct > 25:
		return "#ffff00"
	default:
		return "#ff0000"
	}
}

// UpdateHUD writes health and survival time into the page HUD.
func (g *Game) UpdateHUD(snap Snapshot) {
	if g.HealthEl != nil {
		g.HealthEl.Set("textContent", "Health: "+strconv.Itoa(snap.Health))
	}
	if g.TimeEl != nil {
		g.TimeEl.Set("textContent", "Time: "+formatSeconds(snap.ElapsedSeconds)+"s")
	}
}
