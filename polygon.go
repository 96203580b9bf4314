package bike

import (
	"slices"

	"github.com/setanarut/vec"
)

// Polygon is an immutable closed outline of level geometry with consistent winding.
type Polygon struct {
	Kind   PolygonKind
	Points []vec.Vec2
	BB     BB
}

// NewPolygon copies points, normalizes their winding and caches the bounding box.
func NewPolygon(kind PolygonKind, points []vec.Vec2) *Polygon {
	pts := slices.Clone(points)
	FixWinding(pts)
	return &Polygon{
		Kind:   kind,
		Points: pts,
		BB:     NewBBForPoints(pts),
	}
}

// SignedArea returns the signed area of a closed outline.
//
// The sum runs over (q.x - p.x) * (q.y + p.y), so the result is positive for
// outlines that run counter-clockwise on a y-down screen.
func SignedArea(points []vec.Vec2) float64 {
	var s float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		s += (q.X - p.X) * (q.Y + p.Y)
	}
	return s * 0.5
}

// FixWinding reverses points in place when their signed area is negative.
func FixWinding(points []vec.Vec2) {
	if SignedArea(points) < 0 {
		slices.Reverse(points)
	}
}

// Edge returns the i'th edge of the polygon. The last edge closes the outline.
func (poly *Polygon) Edge(i int) (a, b vec.Vec2) {
	return poly.Points[i], poly.Points[(i+1)%len(poly.Points)]
}

// ContainsPoint reports whether p lies inside the polygon (even-odd rule).
func (poly *Polygon) ContainsPoint(p vec.Vec2) bool {
	if !poly.BB.ContainsVect(p) {
		return false
	}
	inside := false
	n := len(poly.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly.Points[i], poly.Points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
