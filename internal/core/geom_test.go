package core

import (
	"math"
	"testing"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxAround(V(0, 0), V(10, 10)),
			b:        BoxAround(V(5, 5), V(10, 10)),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        BoxAround(V(0, 0), V(10, 10)),
			b:        BoxAround(V(20, 0), V(10, 10)),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        BoxAround(V(0, 0), V(10, 10)),
			b:        BoxAround(V(0, -20), V(10, 10)),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        BoxAround(V(0, 0), V(10, 10)),
			b:        BoxAround(V(10, 0), V(10, 10)),
			expected: false,
		},
		{
			name:     "contained box",
			a:        BoxAround(V(0, 0), V(20, 20)),
			b:        BoxAround(V(1, 1), V(2, 2)),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(V(10, 20), V(4, 6))
	if b.Min != V(8, 17) || b.Max != V(12, 23) {
		t.Errorf("BoxAround() = %+v, expected min (8,17) max (12,23)", b)
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Add(b); got != V(4, -2) {
		t.Errorf("Add() = %v, expected (4,-2)", got)
	}
	if got := a.Sub(b); got != V(-2, 6) {
		t.Errorf("Sub() = %v, expected (-2,6)", got)
	}
	if got := b.Scale(0.5); got != V(1.5, -2) {
		t.Errorf("Scale() = %v, expected (1.5,-2)", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{-1, -1, 3, -1},
		{3, -1, 3, 3},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampFAlwaysInRange(t *testing.T) {
	lo, hi := DegToRad(-90), DegToRad(30)
	for deg := -720.0; deg <= 720; deg += 7.5 {
		got := ClampF(DegToRad(deg), lo, hi)
		if got < lo || got > hi {
			t.Fatalf("ClampF(%v deg) = %v, outside [%v, %v]", deg, got, lo, hi)
		}
	}
}

func TestDegreeRadianConversion(t *testing.T) {
	tests := []struct {
		deg, rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{-90, -math.Pi / 2},
		{30, math.Pi / 6},
		{180, math.Pi},
	}

	for _, tc := range tests {
		if got := DegToRad(tc.deg); math.Abs(got-tc.rad) > 1e-12 {
			t.Errorf("DegToRad(%v) = %v, expected %v", tc.deg, got, tc.rad)
		}
		if got := RadToDeg(tc.rad); math.Abs(got-tc.deg) > 1e-9 {
			t.Errorf("RadToDeg(%v) = %v, expected %v", tc.rad, got, tc.deg)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
