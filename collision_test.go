package bike_test

import (
	"testing"

	"github.com/setanarut/bike"
	"github.com/setanarut/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(l, t, r, b float64) []vec.Vec2 {
	return []vec.Vec2{{X: l, Y: t}, {X: r, Y: t}, {X: r, Y: b}, {X: l, Y: b}}
}

func assertVec(t *testing.T, want, got vec.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y of %v", got)
}

func TestCircleEdgeRegions(t *testing.T) {
	a := vec.Vec2{X: 0, Y: 0}
	b := vec.Vec2{X: 10, Y: 0}

	tests := []struct {
		name   string
		center vec.Vec2
		radius float64
		hit    bool
		normal vec.Vec2
		pen    float64
	}{
		{"interior above", vec.Vec2{X: 5, Y: -3}, 5, true, vec.Vec2{X: 0, Y: -1}, 2},
		{"interior below", vec.Vec2{X: 5, Y: 3}, 5, true, vec.Vec2{X: 0, Y: 1}, 2},
		{"before start", vec.Vec2{X: -3, Y: -4}, 6, true, vec.Vec2{X: -0.6, Y: -0.8}, 1},
		{"after end", vec.Vec2{X: 13, Y: 4}, 6, true, vec.Vec2{X: 0.6, Y: 0.8}, 1},
		{"separated", vec.Vec2{X: 5, Y: -6}, 5, false, vec.Vec2{}, 0},
		{"touching", vec.Vec2{X: 5, Y: -5}, 5, false, vec.Vec2{}, 0},
		{"beyond end", vec.Vec2{X: 20, Y: 0}, 5, false, vec.Vec2{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := bike.CircleEdge(tt.center, tt.radius, a, b)
			require.Equal(t, tt.hit, ok)
			if !ok {
				return
			}
			assertVec(t, tt.normal, c.Normal)
			assert.InDelta(t, tt.pen, c.Penetration, 1e-9)
		})
	}
}

func TestCircleEdgeDegenerate(t *testing.T) {
	p := vec.Vec2{X: 1, Y: 1}
	_, ok := bike.CircleEdge(p, 5, p, p)
	assert.False(t, ok, "zero length edges never collide")

	// center exactly on the endpoint falls back to the edge normal
	c, ok := bike.CircleEdge(vec.Vec2{X: 0, Y: 0}, 2, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 0})
	require.True(t, ok)
	assert.InDelta(t, 1.0, c.Normal.Mag(), 1e-9)
	assert.InDelta(t, 0.0, c.Normal.X, 1e-9)
	assert.InDelta(t, 2.0, c.Penetration, 1e-9)
}

func TestCircleWorldHazardWins(t *testing.T) {
	polys := []*bike.Polygon{
		bike.NewPolygon(bike.Wall, box(-10, 0, 10, 10)),
		bike.NewPolygon(bike.Hazard, box(2.5, -10, 10, 10)),
	}
	c, ok := bike.CircleWorld(polys, vec.Vec2{X: 0, Y: -1}, 3)
	require.True(t, ok)
	assert.Equal(t, bike.Hazard, c.Kind)
	assert.InDelta(t, 0.5, c.Penetration, 1e-9)
}

func TestCircleWorldDeepestWall(t *testing.T) {
	center := vec.Vec2{X: 0, Y: -1}
	polys := []*bike.Polygon{
		bike.NewPolygon(bike.Wall, box(-10, 0, 10, 10)),
		bike.NewPolygon(bike.Wall, box(1.5, -10, 10, 10)),
	}
	c, ok := bike.CircleWorld(polys, center, 3)
	require.True(t, ok)
	assert.Equal(t, bike.Wall, c.Kind)
	assert.InDelta(t, 2.0, c.Penetration, 1e-9)
	assertVec(t, vec.Vec2{X: 0, Y: -1}, c.Normal)

	// equal depth: the later polygon wins
	polys[1] = bike.NewPolygon(bike.Wall, box(1, -10, 10, 10))
	c, ok = bike.CircleWorld(polys, center, 3)
	require.True(t, ok)
	assert.InDelta(t, 2.0, c.Penetration, 1e-9)
	assertVec(t, vec.Vec2{X: -1, Y: 0}, c.Normal)
}

func TestCircleWorldMiss(t *testing.T) {
	polys := []*bike.Polygon{bike.NewPolygon(bike.Hazard, box(-10, 0, 10, 10))}
	_, ok := bike.CircleWorld(polys, vec.Vec2{X: 0, Y: -20}, 3)
	assert.False(t, ok)
	_, ok = bike.CircleWorld(nil, vec.Vec2{}, 3)
	assert.False(t, ok)
}

func TestPolygonWinding(t *testing.T) {
	points := box(0, 0, 10, 10)
	require.InDelta(t, -100.0, bike.SignedArea(points), 1e-9)

	poly := bike.NewPolygon(bike.Wall, points)
	assert.InDelta(t, 100.0, bike.SignedArea(poly.Points), 1e-9)
	assert.Equal(t, vec.Vec2{X: 0, Y: 0}, points[0], "input is not modified")

	again := bike.NewPolygon(bike.Wall, poly.Points)
	assert.Equal(t, poly.Points, again.Points, "positive outlines are kept as is")

	assert.Equal(t, bike.NewBB(0, 0, 10, 10), poly.BB)
}

func TestPolygonContainsPoint(t *testing.T) {
	poly := bike.NewPolygon(bike.Wall, []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}})
	assert.True(t, poly.ContainsPoint(vec.Vec2{X: 2, Y: 2}))
	assert.False(t, poly.ContainsPoint(vec.Vec2{X: 8, Y: 8}))
	assert.False(t, poly.ContainsPoint(vec.Vec2{X: -1, Y: 2}))
}
