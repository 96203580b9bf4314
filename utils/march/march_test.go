package march_test

import (
	"testing"

	"github.com/setanarut/bike"
	"github.com/setanarut/bike/utils/march"
	"github.com/setanarut/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopsClosesTriangle(t *testing.T) {
	a, b, c := vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 0, Y: 10}
	var set march.SegmentSet
	set.Add(b, c)
	set.Add(a, b)
	set.Add(c, a)

	loops := set.Loops()
	require.Len(t, loops, 1)
	assert.Len(t, loops[0], 3)
}

func TestLoopsDropsOpenChains(t *testing.T) {
	var set march.SegmentSet
	set.Add(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0})
	set.Add(vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 2, Y: 1})
	assert.Empty(t, set.Loops())
}

func TestLoopsMergesCollinearPoints(t *testing.T) {
	var set march.SegmentSet
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 5}}
	for i, p := range pts {
		set.Add(p, pts[(i+1)%len(pts)])
	}
	loops := set.Loops()
	require.Len(t, loops, 1)
	assert.Len(t, loops[0], 4)
}

// block samples 1 inside the square [10, 30] x [10, 30].
func block(p vec.Vec2) float64 {
	if p.X > 10 && p.X < 30 && p.Y > 10 && p.Y < 30 {
		return 1
	}
	return 0
}

func TestMarchHardSquare(t *testing.T) {
	bb := bike.NewBB(0, 0, 40, 40)
	set := march.MarchHard(bb, 5, 5, 0.5, march.CollectSegment, block)
	require.NotEmpty(t, set.Segments)

	loops := set.Loops()
	require.Len(t, loops, 1)
	require.Len(t, loops[0], 4)
	got := bike.NewBBForPoints(loops[0])
	assert.InDelta(t, 15, got.L, 1e-9)
	assert.InDelta(t, 15, got.B, 1e-9)
	assert.InDelta(t, 25, got.R, 1e-9)
	assert.InDelta(t, 25, got.T, 1e-9)
}

func TestMarchSoftCutsCorners(t *testing.T) {
	// three by three solid samples
	wide := func(p vec.Vec2) float64 {
		if p.X > 5 && p.X < 35 && p.Y > 5 && p.Y < 35 {
			return 1
		}
		return 0
	}
	bb := bike.NewBB(0, 0, 40, 40)

	hard := march.MarchHard(bb, 5, 5, 0.5, march.CollectSegment, wide).Loops()
	require.Len(t, hard, 1)
	assert.Len(t, hard[0], 4)

	soft := march.MarchSoft(bb, 5, 5, 0.5, march.CollectSegment, wide).Loops()
	require.Len(t, soft, 1)
	assert.Len(t, soft[0], 8)
}
