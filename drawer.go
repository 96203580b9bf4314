package bike

import (
	"math"

	"github.com/setanarut/vec"
)

// FColor is an RGBA color with components in [0, 1].
type FColor struct {
	R, G, B, A float32
}

// RGBA8 builds an opaque FColor from 8-bit components.
func RGBA8(r, g, b uint8) FColor {
	return FColor{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

var (
	WallColor   = RGBA8(30, 100, 50)
	HazardColor = RGBA8(102, 51, 51)
	StarColor   = RGBA8(230, 200, 60)
	WheelColor  = RGBA8(130, 130, 130)
	SpringColor = RGBA8(140, 80, 70)
	FrameColor  = RGBA8(70, 60, 50)
	RiderColor  = RGBA8(130, 130, 130)
)

// Drawer is implemented by renderers. All coordinates are world coordinates.
type Drawer interface {
	DrawCircle(pos vec.Vec2, angle, radius float64, fill FColor)
	DrawSegment(a, b vec.Vec2, fill FColor)
	DrawFatSegment(a, b vec.Vec2, radius float64, fill FColor)
	DrawPolygon(verts []vec.Vec2, fill FColor)
	DrawDot(size float64, pos vec.Vec2, fill FColor)
}

// frame outline in bike coordinates, facing right
var frameVerts = []vec.Vec2{
	{X: 2, Y: -3},
	{X: 9, Y: -9},
	{X: 14, Y: -4},
	{X: 1, Y: 11},
	{X: -1, Y: 11},
	{X: -11, Y: 0},
	{X: -17, Y: -2},
	{X: -17, Y: -7},
	{X: -10, Y: -7},
}

// rider limbs in bike coordinates: body, leg, shin, foot, arm, forearm
var riderLimbs = []struct {
	a, b vec.Vec2
	w    float64
}{
	{vec.Vec2{X: -2, Y: -16}, vec.Vec2{X: -10, Y: -9}, 6},
	{vec.Vec2{X: -10, Y: -9}, vec.Vec2{X: -2, Y: -3}, 5},
	{vec.Vec2{X: -2, Y: -3}, vec.Vec2{X: -1, Y: 6}, 3.5},
	{vec.Vec2{X: -1, Y: 6}, vec.Vec2{X: 2, Y: 6}, 2.5},
	{vec.Vec2{X: -1, Y: -15}, vec.Vec2{X: 2, Y: -8}, 3.5},
	{vec.Vec2{X: 2, Y: -8}, vec.Vec2{X: 10, Y: -7}, 2.75},
}

// DrawLevel draws the level polygons and the stars still alive.
func DrawLevel(level *Level, drawer Drawer) {
	for _, poly := range level.Polygons() {
		fill := WallColor
		if poly.Kind == Hazard {
			fill = HazardColor
		}
		drawer.DrawPolygon(poly.Points, fill)
	}
	for _, star := range level.Stars() {
		if star.Alive {
			drawer.DrawDot(level.StarRadius(), star.Position, StarColor)
		}
	}
}

// DrawSnapshot draws the bike and rider, mirrored by the facing blend.
func DrawSnapshot(s Snapshot, tuning Tuning, drawer Drawer) {
	t := NewTransformScaleAngleTranslation(s.FacingBlend, 1, s.Frame.Angle, s.Frame.Position)

	for _, w := range s.Wheels {
		drawer.DrawCircle(w.Position, w.Angle, tuning.WheelRadius, WheelColor)
	}

	// the suspension limbs swap wheels while the bike turns around
	lerp := 0.5 + math.Sin(s.FacingBlend*0.5*math.Pi)*0.5
	w0 := s.Wheels[1].Position.Lerp(s.Wheels[0].Position, lerp)
	w1 := s.Wheels[0].Position.Lerp(s.Wheels[1].Position, lerp)
	drawer.DrawFatSegment(t.Apply(vec.Vec2{X: 0, Y: 9}), w0, 1.5, SpringColor)
	drawer.DrawFatSegment(t.Apply(vec.Vec2{X: 12, Y: -1}), w1, 1.5, SpringColor)

	verts := make([]vec.Vec2, len(frameVerts))
	for i, p := range frameVerts {
		verts[i] = t.Apply(p)
	}
	drawer.DrawPolygon(verts, FrameColor)

	drawer.DrawCircle(s.Head, s.Frame.Angle, tuning.HeadRadius, RiderColor)
	for _, limb := range riderLimbs {
		drawer.DrawFatSegment(t.Apply(limb.a), t.Apply(limb.b), limb.w*0.5, RiderColor)
	}
}
