package common

import (
	"math"
	"testing"
)

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name   string
		in     Vec
		want   Vec
		wantOK bool
	}{
		{"unit x", Vec{3, 0}, Vec{1, 0}, true},
		{"3-4-5", Vec{3, 4}, Vec{0.6, 0.8}, true},
		{"zero", Vec{}, Vec{}, false},
		{"nan", Vec{math.NaN(), 1}, Vec{}, false},
		{"inf", Vec{math.Inf(1), 0}, Vec{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Normalize()
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestVecClampLen(t *testing.T) {
	v := Vec{30, 40}.ClampLen(10)
	if math.Abs(v.Len()-10) > 1e-9 {
		t.Errorf("Expected length 10, got %f", v.Len())
	}
	if math.Abs(v.X-6) > 1e-9 || math.Abs(v.Y-8) > 1e-9 {
		t.Errorf("Expected direction kept (6, 8), got %v", v)
	}

	short := Vec{1, 1}
	if got := short.ClampLen(10); got != short {
		t.Errorf("Expected short vector unchanged, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		x, lo, hi float64
		expected  float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -1, 0, 10, 0},
		{"above", 11, 0, 10, 10},
		{"inverted range keeps lower bound", 5, 8, 2, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.expected {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestDist(t *testing.T) {
	if d := Dist(100, 100, 100, 80); d != 20 {
		t.Errorf("Expected 20, got %f", d)
	}
}
