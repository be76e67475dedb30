package game

import "math"

// --- Spatial Hash Grid for Collision Detection ---

// Collidable is an interface for objects that can participate in spatial hashing.
type Collidable interface {
	GetPosition() (x, y float64)
	GetRadius() float64
}

// SpatialGrid is a grid-based spatial hash for efficient collision detection.
// Objects are inserted into cells based on their position, so a query only
// visits the 3x3 block of cells around a point.
type SpatialGrid struct {
	CellSize   float64
	GridWidth  int
	GridHeight int
	Cells      [][]*Projectile
}

// NewSpatialGrid creates a new spatial grid for the given world dimensions.
// cellSize must be at least the largest reach between two colliding objects,
// otherwise ForEachNearby can miss a partner two cells away.
func NewSpatialGrid(worldWidth, worldHeight, cellSize float64) *SpatialGrid {
	sg := &SpatialGrid{CellSize: cellSize}
	sg.Resize(worldWidth, worldHeight)
	return sg
}

// Resize adapts the grid to new world dimensions. Cells are reallocated only
// when the cell count changes.
func (sg *SpatialGrid) Resize(worldWidth, worldHeight float64) {
	gridWidth := int(math.Max(worldWidth, 0)/sg.CellSize) + 1
	gridHeight := int(math.Max(worldHeight, 0)/sg.CellSize) + 1
	if gridWidth == sg.GridWidth && gridHeight == sg.GridHeight {
		return
	}

	cells := make([][]*Projectile, gridWidth*gridHeight)
	for i := range cells {
		cells[i] = make([]*Projectile, 0, 4) // Pre-allocate small capacity
	}
	sg.GridWidth = gridWidth
	sg.GridHeight = gridHeight
	sg.Cells = cells
}

// cellCoords returns the clamped cell coordinates for a position.
func (sg *SpatialGrid) cellCoords(x, y float64) (int, int) {
	cx := int(math.Floor(x / sg.CellSize))
	cy := int(math.Floor(y / sg.CellSize))

	// Clamp to grid bounds
	if cx < 0 {
		cx = 0
	}
	if cx >= sg.GridWidth {
		cx = sg.GridWidth - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= sg.GridHeight {
		cy = sg.GridHeight - 1
	}
	return cx, cy
}

// Clear removes all objects from the grid. Call at the start of each frame.
func (sg *SpatialGrid) Clear() {
	for i := range sg.Cells {
		sg.Cells[i] = sg.Cells[i][:0] // Keep capacity, reset length
	}
}

// Insert adds a projectile to the grid at its current position.
func (sg *SpatialGrid) Insert(p *Projectile) {
	cx, cy := sg.cellCoords(p.X, p.Y)
	idx := cy*sg.GridWidth + cx
	sg.Cells[idx] = append(sg.Cells[idx], p)
}

// ForEachNearby calls fn for every projectile in the cell containing (x, y)
// and its 8 neighbours. Positions outside the grid query the nearest edge
// block, which is a superset of anything that can still overlap.
func (sg *SpatialGrid) ForEachNearby(x, y float64, fn func(*Projectile)) {
	cx, cy := sg.cellCoords(x, y)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			ncx := cx + dx
			ncy := cy + dy

			// Skip out-of-bounds cells
			if ncx < 0 || ncx >= sg.GridWidth || ncy < 0 || ncy >= sg.GridHeight {
				continue
			}

			for _, p := range sg.Cells[ncy*sg.GridWidth+ncx] {
				fn(p)
			}
		}
	}
}

// --- Projectile Pool ---

// ProjectilePool manages reusable projectile objects. Active projectiles
// occupy Pool[:ActiveCount].
type ProjectilePool struct {
	Pool        []*Projectile
	ActiveCount int
	MaxSize     int
}

// NewProjectilePool creates a new projectile pool with pre-allocated objects.
func NewProjectilePool(maxSize int) *ProjectilePool {
	pool := &ProjectilePool{
		Pool:    make([]*Projectile, maxSize),
		MaxSize: maxSize,
	}
	for i := 0; i < maxSize; i++ {
		pool.Pool[i] = &Projectile{PoolIndex: i}
	}
	return pool
}

// Acquire gets an available projectile from the pool, or nil when exhausted.
func (p *ProjectilePool) Acquire() *Projectile {
	if p.ActiveCount >= p.MaxSize {
		return nil
	}
	b := p.Pool[p.ActiveCount]
	b.PoolIndex = p.ActiveCount
	b.Spent = false
	p.ActiveCount++
	return b
}

// Release returns a projectile to the pool using swap-and-pop.
func (p *ProjectilePool) Release(index int) {
	if index >= p.ActiveCount || index < 0 {
		return
	}
	lastIndex := p.ActiveCount - 1
	if index != lastIndex {
		p.Pool[index], p.Pool[lastIndex] = p.Pool[lastIndex], p.Pool[index]
		p.Pool[index].PoolIndex = index
		p.Pool[lastIndex].PoolIndex = lastIndex
	}
	p.ActiveCount--
}

// ReleaseSpent releases every projectile marked Spent. Walking backwards
// keeps swap-and-pop from moving an unvisited spent projectile.
func (p *ProjectilePool) ReleaseSpent() int {
	released := 0
	for i := p.ActiveCount - 1; i >= 0; i-- {
		if p.Pool[i].Spent {
			p.Release(i)
			released++
		}
	}
	return released
}

// Clear resets the pool, marking all objects as inactive.
func (p *ProjectilePool) Clear() {
	p.ActiveCount = 0
}

// Active returns the live projectiles in enumeration order.
func (p *ProjectilePool) Active() []*Projectile {
	return p.Pool[:p.ActiveCount]
}

// ForEachReverse iterates over active objects in reverse order. fn may
// release the projectile it is given.
func (p *ProjectilePool) ForEachReverse(fn func(*Projectile, int)) {
	for i := p.ActiveCount - 1; i >= 0; i-- {
		fn(p.Pool[i], i)
	}
}
