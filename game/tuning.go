package game

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var presetYAML []byte

var (
	// ErrUnknownPreset is returned by LoadTuning for a name missing from the preset table.
	ErrUnknownPreset = errors.New("unknown tuning preset")
	// ErrInvalidTuning wraps every validation failure.
	ErrInvalidTuning = errors.New("invalid tuning")
)

// PlayerTuning configures the player entity.
type PlayerTuning struct {
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"` // units per tick
	Health int     `yaml:"health"`
}

// ProjectileTuning configures player projectiles.
type ProjectileTuning struct {
	Size     float64 `yaml:"size"`
	Speed    float64 `yaml:"speed"` // units per tick
	Capacity int     `yaml:"capacity"`
}

// EnemyTuning configures spawned enemies. Sizes are sampled in [MinSize, MaxSize).
type EnemyTuning struct {
	BaseSpeed float64 `yaml:"base_speed"`
	MinSize   float64 `yaml:"min_size"`
	MaxSize   float64 `yaml:"max_size"`
}

// Tuning holds every gameplay constant. The desktop and touch variants of
// the game differ only in these values.
type Tuning struct {
	Player         PlayerTuning     `yaml:"player"`
	Projectile     ProjectileTuning `yaml:"projectile"`
	Enemy          EnemyTuning      `yaml:"enemy"`
	Fire           Ramp             `yaml:"fire"`
	Spawn          Ramp             `yaml:"spawn"`
	RampWindow     time.Duration    `yaml:"ramp_window"`
	SpeedStep      time.Duration    `yaml:"speed_step"`
	SpeedIncrement float64          `yaml:"speed_increment"`

	// FirePoll is the period of the independent fire-evaluation timer.
	// Zero evaluates firing on every tick.
	FirePoll    time.Duration `yaml:"fire_poll"`
	StickRadius float64       `yaml:"stick_radius"`

	// CollisionGrid indexes projectiles in a SpatialGrid before the
	// enemy/projectile scan. Results are identical to the linear scan.
	CollisionGrid bool    `yaml:"collision_grid"`
	GridCell      float64 `yaml:"grid_cell"`
}

// Difficulty returns the difficulty curve described by t.
func (t Tuning) Difficulty() Difficulty {
	return Difficulty{
		Fire:           t.Fire,
		Spawn:          t.Spawn,
		Window:         t.RampWindow,
		SpeedStep:      t.SpeedStep,
		SpeedIncrement: t.SpeedIncrement,
	}
}

// Validate reports the first field that would make a session misbehave.
func (t Tuning) Validate() error {
	switch {
	case t.Player.Size <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidTuning)
	case t.Player.Speed < 0:
		return fmt.Errorf("%w: player speed must not be negative", ErrInvalidTuning)
	case t.Player.Health <= 0:
		return fmt.Errorf("%w: player health must be positive", ErrInvalidTuning)
	case t.Projectile.Size <= 0:
		return fmt.Errorf("%w: projectile size must be positive", ErrInvalidTuning)
	case t.Projectile.Capacity < 2:
		return fmt.Errorf("%w: projectile capacity must hold at least one volley", ErrInvalidTuning)
	case t.Enemy.MinSize <= 0 || t.Enemy.MaxSize < t.Enemy.MinSize:
		return fmt.Errorf("%w: enemy size range [%g, %g) is empty", ErrInvalidTuning, t.Enemy.MinSize, t.Enemy.MaxSize)
	case t.Enemy.BaseSpeed < 0:
		return fmt.Errorf("%w: enemy base speed must not be negative", ErrInvalidTuning)
	case t.Fire.Min < 0 || t.Fire.Max < t.Fire.Min:
		return fmt.Errorf("%w: fire ramp %s..%s", ErrInvalidTuning, t.Fire.Max, t.Fire.Min)
	case t.Spawn.Min < 0 || t.Spawn.Max < t.Spawn.Min:
		return fmt.Errorf("%w: spawn ramp %s..%s", ErrInvalidTuning, t.Spawn.Max, t.Spawn.Min)
	case t.RampWindow <= 0:
		return fmt.Errorf("%w: ramp window must be positive", ErrInvalidTuning)
	case t.SpeedStep <= 0:
		return fmt.Errorf("%w: speed step must be positive", ErrInvalidTuning)
	case t.FirePoll < 0:
		return fmt.Errorf("%w: fire poll must not be negative", ErrInvalidTuning)
	case t.StickRadius <= 0:
		return fmt.Errorf("%w: stick radius must be positive", ErrInvalidTuning)
	case t.CollisionGrid && t.GridCell <= 0:
		return fmt.Errorf("%w: grid cell must be positive", ErrInvalidTuning)
	}
	return nil
}

// ParseTuning decodes a YAML document mapping preset names to tunings.
func ParseTuning(data []byte) (map[string]Tuning, error) {
	presets := make(map[string]Tuning)
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("decode tuning: %w", err)
	}
	for name, t := range presets {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return presets, nil
}

// LoadTuning returns a built-in preset by name.
func LoadTuning(name string) (Tuning, error) {
	presets, err := ParseTuning(presetYAML)
	if err != nil {
		return Tuning{}, err
	}
	t, ok := presets[name]
	if !ok {
		return Tuning{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return t, nil
}

// PresetNames lists the built-in presets in lexical order.
func PresetNames() []string {
	presets, err := ParseTuning(presetYAML)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetFor returns the preset matching an input mode: touch play uses the
// touch variant, everything else the desktop one.
func PresetFor(mode Mode) string {
	if mode == ModeTouch {
		return "touch"
	}
	return "desktop"
}
