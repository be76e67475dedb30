package game

import (
	"io"

	"github.com/rs/zerolog"
)

// EnableDebug selects Debug level for loggers built by NewLogger.
var EnableDebug = false

// NewLogger builds the session logger used by the browser and headless
// front ends. Output goes to w as zerolog JSON lines.
func NewLogger(w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if EnableDebug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// logVolley logs a fired volley at debug level.
func (s *Session) logVolley(n int) {
	s.log.Debug().
		Int("projectiles", n).
		Int("active", s.World.Projectiles.ActiveCount).
		Float64("aim_x", s.aim.X).
		Float64("aim_y", s.aim.Y).
		Msg("volley")
}

// logSpawn logs a spawned enemy at debug level.
func (s *Session) logSpawn(e *Enemy) {
	s.log.Debug().
		Float64("x", e.X).
		Float64("y", e.Y).
		Float64("size", e.Size).
		Float64("speed", e.Speed).
		Int("enemies", len(s.World.Enemies)).
		Msg("enemy spawned")
}
