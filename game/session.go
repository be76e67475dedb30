package game

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/simukka/swarm-survivor/common"
)

// State is the session state machine. The only transition is
// Running -> GameOver.
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "GAME_OVER"
	}
	return "RUNNING"
}

// Config is everything a session needs before its first tick.
type Config struct {
	Mode     Mode
	Tuning   Tuning
	Seed     uint32
	Clock    Clock           // defaults to SystemClock
	Viewport Viewport        // required
	Logger   *zerolog.Logger // defaults to a no-op logger
}

// Stats are running counters for the HUD and run summaries.
type Stats struct {
	Ticks          int
	Kills          int
	ShotsFired     int
	EnemiesSpawned int
	HealthLost     int
}

// Session owns one entity store and its clocks. All mutation happens in Step
// on the caller's goroutine; a session is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	World World

	mode       Mode
	tuning     Tuning
	difficulty Difficulty
	input      Adapter
	clock      Clock
	viewport   Viewport
	rng        *common.SeededRNG
	log        zerolog.Logger
	grid       *SpatialGrid

	state     State
	elapsed   time.Duration
	lastShot  time.Time
	lastSpawn time.Time
	fireArmed bool
	aim       common.Vec
	stats     Stats

	deadEnemies []bool
}

// Start validates cfg and creates a running session. An unknown mode or an
// invalid tuning fails here, before any tick can run.
func Start(cfg Config) (*Session, error) {
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, err
	}
	input, err := NewAdapter(cfg.Mode, cfg.Tuning)
	if err != nil {
		return nil, err
	}
	if cfg.Viewport == nil {
		return nil, fmt.Errorf("start session: viewport is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}

	id := uuid.New()
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	log = log.With().Str("session", id.String()).Str("mode", string(cfg.Mode)).Logger()

	bounds := cfg.Viewport.Bounds()
	center := bounds.Center()
	s := &Session{
		ID: id,
		World: World{
			Bounds: bounds,
			Player: Player{
				X:      center.X,
				Y:      center.Y,
				Size:   cfg.Tuning.Player.Size,
				Speed:  cfg.Tuning.Player.Speed,
				Health: cfg.Tuning.Player.Health,
			},
			Enemies:     make([]*Enemy, 0, 64),
			Projectiles: NewProjectilePool(cfg.Tuning.Projectile.Capacity),
		},
		mode:       cfg.Mode,
		tuning:     cfg.Tuning,
		difficulty: cfg.Tuning.Difficulty(),
		input:      input,
		clock:      cfg.Clock,
		viewport:   cfg.Viewport,
		rng:        common.NewSeededRNG(cfg.Seed),
		log:        log,
		state:      Running,
		aim:        DefaultAim,
	}
	if cfg.Tuning.CollisionGrid {
		reach := cfg.Tuning.Enemy.MaxSize/2 + cfg.Tuning.Projectile.Size/2
		s.grid = NewSpatialGrid(bounds.Width, bounds.Height, max(cfg.Tuning.GridCell, reach))
	}

	s.log.Info().
		Uint32("seed", cfg.Seed).
		Float64("width", bounds.Width).
		Float64("height", bounds.Height).
		Int("health", s.World.Player.Health).
		Bool("collision_grid", s.grid != nil).
		Msg("session started")
	return s, nil
}

// IsTerminal reports whether the session reached GAME_OVER.
func (s *Session) IsTerminal() bool {
	return s.state == GameOver
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Mode returns the input mode chosen at start.
func (s *Session) Mode() Mode {
	return s.mode
}

// Input returns the session's input adapter; front ends type-switch on it
// to feed device events.
func (s *Session) Input() Adapter {
	return s.input
}

// Tuning returns the session configuration.
func (s *Session) Tuning() Tuning {
	return s.tuning
}

// Difficulty returns the session's difficulty curve.
func (s *Session) Difficulty() Difficulty {
	return s.difficulty
}

// Elapsed returns the simulated session time.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// Stats returns the running counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// RequestFire arms one fire evaluation for the next tick. It is what the
// fire-poll timer calls; it never touches entities.
func (s *Session) RequestFire() {
	s.fireArmed = true
}

// Body is the renderable part of an entity.
type Body struct {
	X, Y, Size float64
}

// Snapshot is the render sink payload. Slices are copies, so a snapshot can
// be handed to another goroutine.
type Snapshot struct {
	Player         Body
	Enemies        []Body
	Projectiles    []Body
	Health         int
	Elapsed        time.Duration
	ElapsedSeconds float64
	State          State
	Aim            common.Vec
	Bounds         Bounds
	Stats          Stats
}

// Snapshot captures the current world.
func (s *Session) Snapshot() Snapshot {
	w := &s.World
	snap := Snapshot{
		Player:         Body{X: w.Player.X, Y: w.Player.Y, Size: w.Player.Size},
		Enemies:        make([]Body, len(w.Enemies)),
		Projectiles:    make([]Body, w.Projectiles.ActiveCount),
		Health:         w.Player.Health,
		Elapsed:        s.elapsed,
		ElapsedSeconds: s.elapsed.Seconds(),
		State:          s.state,
		Aim:            s.aim,
		Bounds:         w.Bounds,
		Stats:          s.stats,
	}
	for i, e := range w.Enemies {
		snap.Enemies[i] = Body{X: e.X, Y: e.Y, Size: e.Size}
	}
	for i, p := range w.Projectiles.Active() {
		snap.Projectiles[i] = Body{X: p.X, Y: p.Y, Size: p.Size}
	}
	return snap
}

// formatSeconds renders a survival time with one decimal, as shown in the HUD.
func formatSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', 1, 64)
}
