package core

import "math"

// BoundsOf returns the smallest box containing every point.
// An empty slice yields a zero box.
func BoundsOf(points []Vec2) Box {
	if len(points) == 0 {
		return Box{}
	}
	b := Box{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// Transform rotates the local shape by deg and translates it to pos.
// The result is written into dst (reused when it has capacity).
func Transform(dst, shape []Vec2, pos Vec2, deg float64) []Vec2 {
	dst = dst[:0]
	for _, p := range shape {
		dst = append(dst, p.Rotate(deg).Add(pos))
	}
	return dst
}

// PointInPolygon reports whether p lies inside poly using the even-odd rule.
// Works for concave polygons; points exactly on an edge may go either way.
func PointInPolygon(p Vec2, poly []Vec2) bool {
	inside := false
	n := len(poly)
	if n < 3 {
		return false
	}
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// SegmentIntersection returns the intersection point of segments ab and cd.
// Parallel and collinear segments report no intersection.
func SegmentIntersection(a, b, c, d Vec2) (Vec2, bool) {
	r := b.Sub(a)
	s := d.Sub(c)
	denom := r.Cross(s)
	if denom == 0 {
		return Vec2{}, false
	}
	ac := c.Sub(a)
	t := ac.Cross(s) / denom
	u := ac.Cross(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec2{}, false
	}
	return a.Add(r.Scale(t)), true
}

// PolygonsIntersect returns the first contact point between two closed polygons.
// Vertex containment is checked in both directions before edge crossings, so a
// polygon fully inside the other still reports a hit.
func PolygonsIntersect(a, b []Vec2) (Vec2, bool) {
	if len(a) < 3 || len(b) < 3 {
		return Vec2{}, false
	}
	for _, p := range a {
		if PointInPolygon(p, b) {
			return p, true
		}
	}
	for _, p := range b {
		if PointInPolygon(p, a) {
			return p, true
		}
	}
	for i := range a {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := range b {
			if p, ok := SegmentIntersection(a1, a2, b[j], b[(j+1)%len(b)]); ok {
				return p, true
			}
		}
	}
	return Vec2{}, false
}
