package bike_test

import (
	"math"
	"testing"

	"github.com/setanarut/bike"
	"github.com/setanarut/vec"
	"github.com/stretchr/testify/assert"
)

func TestTransformMirror(t *testing.T) {
	// facing left mirrors the outline around the frame
	tr := bike.NewTransformScaleAngleTranslation(-1, 1, 0, vec.Vec2{X: 10, Y: 0})
	assertVec(t, vec.Vec2{X: 7, Y: 4}, tr.Apply(vec.Vec2{X: 3, Y: 4}))

	tr = bike.NewTransformScaleAngleTranslation(1, 1, math.Pi/2, vec.Vec2{})
	assertVec(t, vec.Vec2{X: 0, Y: 1}, tr.Apply(vec.Vec2{X: 1, Y: 0}))
}

func TestTransformInverseAndMult(t *testing.T) {
	tr := bike.NewTransformTranslate(vec.Vec2{X: 20, Y: 10}).
		Mult(bike.NewTransformScale(0.25, 0.125)).
		Mult(bike.NewTransformTranslate(vec.Vec2{X: -4, Y: -8}))

	p := vec.Vec2{X: 12, Y: 24}
	assertVec(t, vec.Vec2{X: 22, Y: 12}, tr.Apply(p))
	assertVec(t, p, tr.Inverse().Apply(tr.Apply(p)))
	assertVec(t, vec.Vec2{X: 1, Y: 1}, tr.ApplyVector(vec.Vec2{X: 4, Y: 8}))
}

func TestTransformBB(t *testing.T) {
	tr := bike.NewTransformRotate(math.Pi / 2)
	bb := tr.BB(bike.NewBB(0, 0, 4, 2))
	assert.InDelta(t, -2, bb.L, 1e-9)
	assert.InDelta(t, 0, bb.B, 1e-9)
	assert.InDelta(t, 0, bb.R, 1e-9)
	assert.InDelta(t, 4, bb.T, 1e-9)
}

func TestBBQueries(t *testing.T) {
	bb := bike.NewBBForPoints([]vec.Vec2{{X: 1, Y: 5}, {X: -3, Y: 2}, {X: 4, Y: -1}})
	assert.Equal(t, bike.NewBB(-3, -1, 4, 5), bb)
	assert.True(t, bb.ContainsVect(vec.Vec2{X: 0, Y: 0}))
	assert.False(t, bb.ContainsVect(vec.Vec2{X: 5, Y: 0}))
	assert.True(t, bb.Intersects(bike.NewBBForCircle(vec.Vec2{X: 6, Y: 0}, 2)))
	assert.False(t, bb.Intersects(bike.NewBBForCircle(vec.Vec2{X: 7, Y: 0}, 2)))

	empty := bike.NewBBForPoints(nil)
	assert.False(t, empty.Intersects(bb))
}
