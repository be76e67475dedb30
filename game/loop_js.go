//go:build js

package game

// GameLoopRAF is the requestAnimationFrame callback. It checks for GAME_OVER
// before touching anything, runs exactly one tick, draws it, and only then
// schedules the next frame.
func (g *Game) GameLoopRAF(currentTime float64) {
	g.AnimationFrameID = 0
	if g.Session == nil || g.Session.IsTerminal() {
		g.stopFirePoll()
		return
	}

	g.StatsOverlay.UpdateFPS(currentTime)
	g.LastFrameTime = currentTime

	snap := g.Session.Step()
	g.Render(snap)
	g.UpdateHUD(snap)

	if snap.State == GameOver {
		g.GameOver(snap)
		return
	}
	g.AnimationFrameID = jsRequestFrame(g.GameLoopRAF)
}

// GameOver stops the timers and leaves the final frame with a banner.
func (g *Game) GameOver(snap Snapshot) {
	g.Stop()
	g.RenderGameOver(snap)
}
