package game

import "github.com/simukka/swarm-survivor/common"

// Bounds is the axis-aligned world rectangle [0, Width] x [0, Height].
type Bounds struct {
	Width, Height float64
}

// Contains reports whether (x, y) lies inside the bounds, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Width && y >= 0 && y <= b.Height
}

// Center returns the middle of the bounds.
func (b Bounds) Center() common.Vec {
	return common.Vec{X: b.Width / 2, Y: b.Height / 2}
}

// Viewport supplies the current world bounds. It is read once per tick and
// may change between ticks.
type Viewport interface {
	Bounds() Bounds
}

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func() Bounds

// Bounds implements Viewport.
func (f ViewportFunc) Bounds() Bounds { return f() }

// FixedViewport returns a Viewport that never changes size.
func FixedViewport(width, height float64) Viewport {
	b := Bounds{Width: width, Height: height}
	return ViewportFunc(func() Bounds { return b })
}

// Player is the single player-controlled entity.
type Player struct {
	X, Y   float64
	Size   float64 // full extent; the collision half-extent is Size/2
	Speed  float64
	Health int
}

// GetPosition implements Collidable.
func (p *Player) GetPosition() (x, y float64) {
	return p.X, p.Y
}

// GetRadius implements Collidable.
func (p *Player) GetRadius() float64 {
	return p.Size / 2
}

// Pos returns the player position as a vector.
func (p *Player) Pos() common.Vec {
	return common.Vec{X: p.X, Y: p.Y}
}

// Enemy homes in on the player at a speed fixed when it spawned.
type Enemy struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// GetPosition implements Collidable.
func (e *Enemy) GetPosition() (x, y float64) {
	return e.X, e.Y
}

// GetRadius implements Collidable.
func (e *Enemy) GetRadius() float64 {
	return e.Size / 2
}

// World is the entity store: the player plus the live enemies and projectiles.
// It is owned by a Session and only mutated inside Session.Step.
type World struct {
	Bounds      Bounds
	Player      Player
	Enemies     []*Enemy
	Projectiles *ProjectilePool
}

// overlaps is the shared collision predicate: centre distance strictly
// below the sum of half-extents.
func overlaps(a, b Collidable) bool {
	ax, ay := a.GetPosition()
	bx, by := b.GetPosition()
	return common.Dist(ax, ay, bx, by) < a.GetRadius()+b.GetRadius()
}
