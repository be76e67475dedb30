package game

import (
	"errors"
	"fmt"

	"github.com/simukka/swarm-survivor/common"
)

// Mode selects the input adapter for a whole session.
type Mode string

const (
	// ModePointer moves with the keyboard and aims at the mouse pointer.
	ModePointer Mode = "pointer"
	// ModeTouch uses two virtual analog sticks: one moves, one aims.
	ModeTouch Mode = "touch"
	// ModeAutopilot drives the player with a built-in bot.
	ModeAutopilot Mode = "autopilot"
)

// ErrUnknownMode is returned for an unrecognized input mode.
var ErrUnknownMode = errors.New("unknown input mode")

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModePointer, ModeTouch, ModeAutopilot:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// DefaultAim is the aim direction before any aim input arrives.
var DefaultAim = common.Vec{X: 1, Y: 0}

// Signals are the two abstract inputs a tick consumes. Move has length at
// most one and is zero when idle. Aim always has unit length.
type Signals struct {
	Move common.Vec
	Aim  common.Vec
}

// Adapter turns raw device state into Signals. Signals is called once at the
// top of each tick; adapters may read the world but never modify it.
type Adapter interface {
	Signals(w *World) Signals
}

// NewAdapter builds the adapter for a mode.
func NewAdapter(mode Mode, t Tuning) (Adapter, error) {
	switch mode {
	case ModePointer:
		return NewPointerInput(), nil
	case ModeTouch:
		return NewStickInput(t.StickRadius), nil
	case ModeAutopilot:
		return NewAutopilot(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
}

// Canonical key codes the movement logic reads.
const (
	KeyLeft  = 37
	KeyUp    = 38
	KeyRight = 39
	KeyDown  = 40
)

// KeyMap maps alternative keys to canonical control codes.
var KeyMap = map[int]int{
	50: KeyDown,  // 2 => Down
	52: KeyLeft,  // 4 => Left
	53: KeyDown,  // 5 => Down
	54: KeyRight, // 6 => Right
	56: KeyUp,    // 8 => Up
	65: KeyLeft,  // A => Left
	68: KeyRight, // D => Right
	73: KeyUp,    // I => Up
	74: KeyLeft,  // J => Left
	75: KeyDown,  // K => Down
	76: KeyRight, // L => Right
	83: KeyDown,  // S => Down
	87: KeyUp,    // W => Up
}

// TranslateKeyCode converts alternative key codes to canonical control codes.
func TranslateKeyCode(keyCode int) int {
	if mapped, ok := KeyMap[keyCode]; ok {
		return mapped
	}
	return keyCode
}

// IsMovementKey reports whether a raw key code steers the player.
func IsMovementKey(keyCode int) bool {
	k := TranslateKeyCode(keyCode)
	return k >= KeyLeft && k <= KeyDown
}

// PointerInput is the keyboard + pointer adapter.
type PointerInput struct {
	Keys    map[int]bool
	pointer common.Vec
	hasPtr  bool
	aim     common.Vec
}

// NewPointerInput creates a pointer adapter aiming along DefaultAim.
func NewPointerInput() *PointerInput {
	return &PointerInput{
		Keys: make(map[int]bool),
		aim:  DefaultAim,
	}
}

// SetKey records a key press or release. Alternative bindings are folded
// onto the arrow keys.
func (in *PointerInput) SetKey(keyCode int, down bool) {
	in.Keys[TranslateKeyCode(keyCode)] = down
}

// SetPointer records the latest pointer position in world coordinates.
func (in *PointerInput) SetPointer(x, y float64) {
	in.pointer = common.Vec{X: x, Y: y}
	in.hasPtr = true
}

// Release clears all held keys, e.g. when the page loses focus.
func (in *PointerInput) Release() {
	for k := range in.Keys {
		in.Keys[k] = false
	}
}

// Signals implements Adapter.
func (in *PointerInput) Signals(w *World) Signals {
	var move common.Vec
	if in.Keys[KeyLeft] {
		move.X--
	}
	if in.Keys[KeyRight] {
		move.X++
	}
	if in.Keys[KeyUp] {
		move.Y--
	}
	if in.Keys[KeyDown] {
		move.Y++
	}
	move, _ = move.Normalize()

	if in.hasPtr {
		// Pointer exactly on the player keeps the previous aim.
		if aim, ok := in.pointer.Sub(w.Player.Pos()).Normalize(); ok {
			in.aim = aim
		}
	}
	return Signals{Move: move, Aim: in.aim}
}

// Stick is a virtual analog stick: a drag from an origin, clamped to Radius.
type Stick struct {
	Radius float64
	Origin common.Vec
	Drag   common.Vec
	Active bool
	ID     int // pointer/touch identifier that owns the stick
}

// Begin anchors the stick at (x, y).
func (s *Stick) Begin(id int, x, y float64) {
	s.ID = id
	s.Origin = common.Vec{X: x, Y: y}
	s.Drag = common.Vec{}
	s.Active = true
}

// Move updates the drag towards (x, y), clamped to the stick radius.
func (s *Stick) Move(x, y float64) {
	if !s.Active {
		return
	}
	s.Drag = common.Vec{X: x, Y: y}.Sub(s.Origin).ClampLen(s.Radius)
}

// End releases the stick.
func (s *Stick) End() {
	s.Active = false
	s.Drag = common.Vec{}
}

// Vector returns the deflection scaled to [0, 1]; zero when released.
func (s *Stick) Vector() common.Vec {
	if !s.Active || s.Radius <= 0 {
		return common.Vec{}
	}
	return s.Drag.Scale(1 / s.Radius)
}

// Knob returns the knob position for drawing.
func (s *Stick) Knob() common.Vec {
	return s.Origin.Add(s.Drag)
}

// StickInput is the dual virtual stick adapter.
type StickInput struct {
	MoveStick Stick
	AimStick  Stick
	aim       common.Vec
}

// NewStickInput creates a dual stick adapter with the given stick radius.
func NewStickInput(radius float64) *StickInput {
	return &StickInput{
		MoveStick: Stick{Radius: radius},
		AimStick:  Stick{Radius: radius},
		aim:       DefaultAim,
	}
}

// StickFor returns the stick owned by a touch identifier, or nil.
func (in *StickInput) StickFor(id int) *Stick {
	if in.MoveStick.Active && in.MoveStick.ID == id {
		return &in.MoveStick
	}
	if in.AimStick.Active && in.AimStick.ID == id {
		return &in.AimStick
	}
	return nil
}

// Signals implements Adapter.
func (in *StickInput) Signals(_ *World) Signals {
	if aim, ok := in.AimStick.Vector().Normalize(); ok {
		in.aim = aim
	}
	return Signals{Move: in.MoveStick.Vector(), Aim: in.aim}
}
