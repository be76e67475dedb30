package game

// Projectile is a player shot travelling in a straight line.
type Projectile struct {
	X, Y      float64 // Position
	XAcc      float64 // X velocity
	YAcc      float64 // Y velocity
	Size      float64
	PoolIndex int  // Index in pool for swap-and-pop
	Spent     bool // Consumed by a hit this tick, released after the collision scan
}

// GetPosition implements Collidable.
func (p *Projectile) GetPosition() (x, y float64) {
	return p.X, p.Y
}

// GetRadius implements Collidable.
func (p *Projectile) GetRadius() float64 {
	return p.Size / 2
}

// Advance moves the projectile by its velocity and reports whether it is
// still inside bounds. A projectile that was already outside before moving
// is reported out even if its velocity would carry it back in.
func (p *Projectile) Advance(b Bounds) bool {
	wasInside := b.Contains(p.X, p.Y)
	p.X += p.XAcc
	p.Y += p.YAcc
	return wasInside && b.Contains(p.X, p.Y)
}
