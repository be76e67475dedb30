package common

import "math"

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{v.X * k, v.Y * k}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector pointing along v.
// The second result is false for a zero-length vector, in which case
// the zero vector is returned and callers must not use it as a direction.
func (v Vec) Normalize() (Vec, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec{}, false
	}
	return Vec{v.X / l, v.Y / l}, true
}

// ClampLen shortens v to at most r, keeping its direction.
func (v Vec) ClampLen(r float64) Vec {
	l := v.Len()
	if l <= r || l == 0 {
		return v
	}
	return v.Scale(r / l)
}

// Dist returns the distance between two points.
func Dist(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Clamp limits x to [lo, hi]. When lo > hi the lower bound wins.
func Clamp(x, lo, hi float64) float64 {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}
	return x
}
