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
			a:        Box{0, 0, 10, 10},
			b:        Box{5, 5, 15, 15},
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        Box{0, 0, 10, 10},
			b:        Box{15, 0, 25, 10},
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        Box{0, 0, 10, 10},
			b:        Box{0, 15, 10, 25},
			expected: false,
		},
		{
			name:     "touching edges count",
			a:        Box{0, 0, 10, 10},
			b:        Box{10, 0, 20, 10},
			expected: true,
		},
		{
			name:     "point box inside",
			a:        Box{0, 0, 10, 10},
			b:        BoxAround(V(3, 4), 0),
			expected: true,
		},
		{
			name:     "contained box",
			a:        Box{0, 0, 20, 20},
			b:        Box{5, 5, 6, 6},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() is not symmetric: got %v", got)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(V(10, 20), 5)
	if b.Width() != 10 || b.Height() != 10 {
		t.Errorf("BoxAround size = %vx%v, expected 10x10", b.Width(), b.Height())
	}
	if !b.ContainsPoint(V(14, 24)) {
		t.Error("ContainsPoint should include interior points")
	}
	if b.ContainsPoint(V(16, 20)) {
		t.Error("ContainsPoint should exclude exterior points")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},
		{14, 14, true},
		{12, 12, true},
		{15, 15, false},
		{9, 10, false},
		{10, 9, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
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
	if got := ClampF(12.5, 0, 10); got != 10 {
		t.Errorf("ClampF(12.5, 0, 10) = %v, expected 10", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name          string
		v, size, want float64
	}{
		{"inside", 5, 10, 5},
		{"zero", 0, 10, 0},
		{"exactly size", 10, 10, 0},
		{"just past", 10.5, 10, 0.5},
		{"negative", -1, 10, 9},
		{"far negative", -25, 10, 5},
		{"far positive", 35, 10, 5},
		{"zero size untouched", 7, 0, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.v, tc.size)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Wrap(%v, %v) = %v, expected %v", tc.v, tc.size, got, tc.want)
			}
		})
	}
}
