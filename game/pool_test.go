package game

import (
	"testing"
)

// --- ProjectilePool Tests ---

func TestProjectilePool_AcquireUntilFull(t *testing.T) {
	pool := NewProjectilePool(3)
	for i := 0; i < 3; i++ {
		p := pool.Acquire()
		if p == nil {
			t.Fatalf("Expected projectile %d, got nil", i)
		}
		if p.PoolIndex != i {
			t.Errorf("Expected PoolIndex %d, got %d", i, p.PoolIndex)
		}
	}
	if p := pool.Acquire(); p != nil {
		t.Error("Expected nil from an exhausted pool")
	}
	if pool.ActiveCount != 3 {
		t.Errorf("Expected ActiveCount 3, got %d", pool.ActiveCount)
	}
}

func TestProjectilePool_ReleaseSwapsLast(t *testing.T) {
	pool := NewProjectilePool(4)
	a := pool.Acquire()
	b := pool.Acquire()
	c := pool.Acquire()
	a.X, b.X, c.X = 1, 2, 3

	pool.Release(0)

	if pool.ActiveCount != 2 {
		t.Fatalf("Expected ActiveCount 2, got %d", pool.ActiveCount)
	}
	if pool.Pool[0] != c || c.PoolIndex != 0 {
		t.Errorf("Expected last projectile moved into slot 0, got X=%f index=%d", pool.Pool[0].X, c.PoolIndex)
	}
	if pool.Pool[1] != b || b.PoolIndex != 1 {
		t.Errorf("Expected projectile b untouched in slot 1")
	}
	if a.PoolIndex != 2 {
		t.Errorf("Expected released projectile parked at index 2, got %d", a.PoolIndex)
	}
}

func TestProjectilePool_ReleaseOutOfRange(t *testing.T) {
	pool := NewProjectilePool(2)
	pool.Acquire()
	pool.Release(5)
	pool.Release(-1)
	if pool.ActiveCount != 1 {
		t.Errorf("Expected ActiveCount 1, got %d", pool.ActiveCount)
	}
}

func TestProjectilePool_ReleaseSpent(t *testing.T) {
	pool := NewProjectilePool(6)
	var all []*Projectile
	for i := 0; i < 5; i++ {
		p := pool.Acquire()
		p.X = float64(i)
		all = append(all, p)
	}
	all[0].Spent = true
	all[3].Spent = true
	all[4].Spent = true

	if n := pool.ReleaseSpent(); n != 3 {
		t.Errorf("Expected 3 released, got %d", n)
	}
	if pool.ActiveCount != 2 {
		t.Fatalf("Expected 2 active, got %d", pool.ActiveCount)
	}
	for i, p := range pool.Active() {
		if p.Spent {
			t.Errorf("Expected no spent projectile left, slot %d is spent", i)
		}
		if p.PoolIndex != i {
			t.Errorf("Expected PoolIndex %d, got %d", i, p.PoolIndex)
		}
	}
}

func TestProjectilePool_AcquireResetsSpent(t *testing.T) {
	pool := NewProjectilePool(1)
	p := pool.Acquire()
	p.Spent = true
	pool.ReleaseSpent()

	if p = pool.Acquire(); p.Spent {
		t.Error("Expected reacquired projectile to be live")
	}
}

func TestProjectilePool_ForEachReverseAllowsRelease(t *testing.T) {
	pool := NewProjectilePool(5)
	for i := 0; i < 5; i++ {
		pool.Acquire().X = float64(i)
	}
	pool.ForEachReverse(func(p *Projectile, i int) {
		if int(p.X)%2 == 0 {
			pool.Release(i)
		}
	})
	if pool.ActiveCount != 2 {
		t.Fatalf("Expected 2 odd projectiles left, got %d", pool.ActiveCount)
	}
	for _, p := range pool.Active() {
		if int(p.X)%2 == 0 {
			t.Errorf("Expected even projectile %f released", p.X)
		}
	}
}

// --- SpatialGrid Tests ---

func TestSpatialGrid_ForEachNearby(t *testing.T) {
	sg := NewSpatialGrid(400, 400, 50)
	near := &Projectile{X: 110, Y: 110}
	far := &Projectile{X: 390, Y: 390}
	sg.Insert(near)
	sg.Insert(far)

	var found []*Projectile
	sg.ForEachNearby(100, 100, func(p *Projectile) {
		found = append(found, p)
	})
	if len(found) != 1 || found[0] != near {
		t.Errorf("Expected only the near projectile, got %d results", len(found))
	}
}

func TestSpatialGrid_OutsidePointsClampToEdge(t *testing.T) {
	sg := NewSpatialGrid(400, 400, 50)
	edge := &Projectile{X: 0, Y: 200}
	sg.Insert(edge)

	count := 0
	sg.ForEachNearby(-30, 200, func(*Projectile) { count++ })
	if count != 1 {
		t.Errorf("Expected the edge projectile from an outside query, got %d", count)
	}
}

func TestSpatialGrid_ClearAndResize(t *testing.T) {
	sg := NewSpatialGrid(100, 100, 50)
	if sg.GridWidth != 3 || sg.GridHeight != 3 {
		t.Fatalf("Expected 3x3 grid, got %dx%d", sg.GridWidth, sg.GridHeight)
	}
	sg.Insert(&Projectile{X: 10, Y: 10})
	sg.Clear()

	count := 0
	sg.ForEachNearby(10, 10, func(*Projectile) { count++ })
	if count != 0 {
		t.Errorf("Expected empty grid after Clear, got %d", count)
	}

	sg.Resize(300, 100)
	if sg.GridWidth != 7 || sg.GridHeight != 3 {
		t.Errorf("Expected 7x3 grid after resize, got %dx%d", sg.GridWidth, sg.GridHeight)
	}
}

// --- Projectile Tests ---

func TestProjectileAdvance(t *testing.T) {
	b := Bounds{Width: 100, Height: 100}
	tests := []struct {
		name     string
		p        Projectile
		expected bool
	}{
		{"stays inside", Projectile{X: 50, Y: 50, XAcc: 10}, true},
		{"lands on edge", Projectile{X: 90, Y: 50, XAcc: 10}, true},
		{"leaves right", Projectile{X: 95, Y: 50, XAcc: 10}, false},
		{"starts outside moving in", Projectile{X: 0, Y: -1, YAcc: 10}, false},
		{"starts outside still", Projectile{X: 0, Y: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			if got := p.Advance(b); got != tt.expected {
				t.Errorf("Expected %v, got %v (now at %f, %f)", tt.expected, got, p.X, p.Y)
			}
		})
	}
}
