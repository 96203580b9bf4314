package bike

import (
	"errors"
	"math"

	"github.com/setanarut/vec"
)

const (
	infinity     float64 = math.MaxFloat64
	magicEpsilon float64 = 1e-5
)

var (
	// ErrDegeneratePolygon is returned for level polygons with fewer than three points.
	ErrDegeneratePolygon = errors.New("bike: degenerate polygon")
	// ErrInvalidTuning is returned when a Tuning value cannot drive a stable simulation.
	ErrInvalidTuning = errors.New("bike: invalid tuning")
)

// PolygonKind tells the collision engine how to treat a polygon.
type PolygonKind uint8

const (
	// Wall polygons are solid terrain that wheels roll on.
	Wall PolygonKind = iota
	// Hazard polygons kill the bike on any overlap.
	Hazard
)

func (k PolygonKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Hazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Contact describes an overlap between a circle probe and level geometry.
type Contact struct {
	// Unit vector pointing from the surface toward the circle center.
	Normal vec.Vec2
	// How far the circle reaches into the surface.
	Penetration float64
	// Kind of the polygon that was hit.
	Kind PolygonKind
}

// Star is a pickup. A level is completed once every star is collected.
type Star struct {
	Position vec.Vec2
	Alive    bool
}
