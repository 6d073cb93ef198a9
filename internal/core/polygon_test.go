package core

import "testing"

func square(cx, cy, half float64) []Vec2 {
	return []Vec2{
		V(cx-half, cy-half),
		V(cx+half, cy-half),
		V(cx+half, cy+half),
		V(cx-half, cy+half),
	}
}

func TestPointInPolygon(t *testing.T) {
	// Concave "L" shape
	l := []Vec2{V(0, 0), V(10, 0), V(10, 4), V(4, 4), V(4, 10), V(0, 10)}

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"inside arm", V(2, 8), true},
		{"inside corner", V(2, 2), true},
		{"in the notch", V(8, 8), false},
		{"outside", V(-1, 5), false},
		{"degenerate polygon", V(0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			poly := l
			if tc.name == "degenerate polygon" {
				poly = l[:2]
			}
			if got := PointInPolygon(tc.p, poly); got != tc.want {
				t.Errorf("PointInPolygon(%+v) = %v, expected %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestSegmentIntersection(t *testing.T) {
	p, ok := SegmentIntersection(V(0, 0), V(10, 10), V(0, 10), V(10, 0))
	if !ok || !near(p.X, 5) || !near(p.Y, 5) {
		t.Errorf("crossing segments: got %+v, %v", p, ok)
	}

	if _, ok := SegmentIntersection(V(0, 0), V(10, 0), V(0, 1), V(10, 1)); ok {
		t.Error("parallel segments should not intersect")
	}

	if _, ok := SegmentIntersection(V(0, 0), V(1, 1), V(5, 0), V(6, -1)); ok {
		t.Error("disjoint segments should not intersect")
	}
}

func TestPolygonsIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b []Vec2
		want bool
	}{
		{"overlapping", square(0, 0, 5), square(6, 6, 5), true},
		{"separate", square(0, 0, 5), square(20, 0, 5), false},
		{"fully contained", square(0, 0, 10), square(1, 1, 2), true},
		{"container second", square(1, 1, 2), square(0, 0, 10), true},
		{
			name: "crossing without contained vertices",
			a:    []Vec2{V(-10, -1), V(10, -1), V(10, 1), V(-10, 1)},
			b:    []Vec2{V(-1, -10), V(1, -10), V(1, 10), V(-1, 10)},
			want: true,
		},
		{"degenerate", square(0, 0, 5)[:2], square(0, 0, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, got := PolygonsIntersect(tc.a, tc.b); got != tc.want {
				t.Errorf("PolygonsIntersect() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestTransformAndBounds(t *testing.T) {
	shape := []Vec2{V(0, -10), V(5, 5), V(-5, 5)}
	world := Transform(nil, shape, V(100, 50), 90)

	// Nose rotated to point right
	if !near(world[0].X, 110) || !near(world[0].Y, 50) {
		t.Errorf("nose = %+v, expected (110, 50)", world[0])
	}

	b := BoundsOf(world)
	if !b.ContainsPoint(V(100, 50)) {
		t.Errorf("bounds %+v should contain the origin", b)
	}
	if BoundsOf(nil) != (Box{}) {
		t.Error("BoundsOf(nil) should be the zero box")
	}
}
