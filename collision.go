package bike

import (
	"github.com/setanarut/vec"
)

// CircleEdge tests a circle against the segment ab.
//
// The circle center is projected onto the segment and measured against the
// start point, the segment interior or the end point. A contact is returned only
// when the circle overlaps, with the normal pointing from the surface toward the
// center. Zero-length segments never collide.
func CircleEdge(center vec.Vec2, radius float64, a, b vec.Vec2) (Contact, bool) {
	ab := b.Sub(a)
	lengthSq := ab.LengthSq()
	if lengthSq == 0 {
		return Contact{}, false
	}
	am := center.Sub(a)
	e := ab.Dot(am)

	switch {
	case e < 0:
		return circlePoint(am, radius, ab)
	case e < lengthSq:
		n := ab.Perp().Unit()
		dist := n.Dot(am)
		if dist < 0 {
			dist = -dist
			n = n.Neg()
		}
		if dist >= radius {
			return Contact{}, false
		}
		return Contact{Normal: n, Penetration: radius - dist}, true
	default:
		return circlePoint(center.Sub(b), radius, ab)
	}
}

// circlePoint handles the end regions, where delta runs from the segment end to the center.
func circlePoint(delta vec.Vec2, radius float64, ab vec.Vec2) (Contact, bool) {
	dist := delta.Mag()
	if dist >= radius {
		return Contact{}, false
	}
	var n vec.Vec2
	if dist > magicEpsilon {
		n = delta.Scale(1 / dist)
	} else {
		n = ab.Perp().Unit()
	}
	return Contact{Normal: n, Penetration: radius - dist}, true
}

// CircleWorld tests a circle against every edge of every polygon.
//
// A hazard hit is returned immediately. Otherwise the deepest wall contact wins,
// a later contact replacing the current one when it is at least as deep.
// The cost is linear in the total edge count, with a bounding box rejection per polygon.
func CircleWorld(polys []*Polygon, center vec.Vec2, radius float64) (Contact, bool) {
	var best Contact
	found := false
	bb := NewBBForCircle(center, radius)
	for _, poly := range polys {
		if !poly.BB.Intersects(bb) {
			continue
		}
		for i := range poly.Points {
			a, b := poly.Edge(i)
			c, ok := CircleEdge(center, radius, a, b)
			if !ok {
				continue
			}
			c.Kind = poly.Kind
			if poly.Kind == Hazard {
				return c, true
			}
			if !found || c.Penetration >= best.Penetration {
				best = c
				found = true
			}
		}
	}
	return best, found
}
