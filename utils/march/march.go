package march

import (
	"github.com/setanarut/bike"
	"github.com/setanarut/vec"
)

// MarchSegFunc receives every contour segment found by the marching process.
// In most cases you want CollectSegment instead of defining your own.
type MarchSegFunc func(v0 vec.Vec2, v1 vec.Vec2, segmentData *SegmentSet)

// MarchSampleFunc gets passed every sample point of the bounding box. Use it to
// sample an image, a tile map or any other 2d matrix.
type MarchSampleFunc func(point vec.Vec2) float64

type MarchCellFunc func(
	t, a, b, c, d, x0, x1, y0, y1 float64,
	marchSegment MarchSegFunc,
	segmentData *SegmentSet,
)

// CollectSegment appends the segment to segmentData.
func CollectSegment(v0, v1 vec.Vec2, segmentData *SegmentSet) {
	segmentData.Add(v0, v1)
}

// MarchCells samples and processes a grid of cells within the specified bounding box (bb).
//
// Parameters:
//   - bb: The bounding box defining the area to be processed.
//   - xSamples: The number of samples to take along the x-axis.
//   - ySamples: The number of samples to take along the y-axis.
//   - t: The density threshold of the contour.
//   - marchSegment: A function that handles operations for a segment based on cell values.
//   - marchSample: A function that computes sample values at specific coordinates.
//   - marchCell: A function that processes individual cells based on their corner values.
func MarchCells(
	bb bike.BB,
	xSamples, ySamples int64,
	t float64,
	marchSegment MarchSegFunc,
	marchSample MarchSampleFunc,
	marchCell MarchCellFunc,
) *SegmentSet {
	var xDenom, yDenom float64
	xDenom = 1.0 / float64(xSamples-1)
	yDenom = 1.0 / float64(ySamples-1)

	buffer := make([]float64, xSamples)
	var i, j int64
	for i = 0; i < xSamples; i++ {
		buffer[i] = marchSample(vec.Vec2{X: lerp(bb.L, bb.R, float64(i)*xDenom), Y: bb.B})
	}
	segmentData := &SegmentSet{}

	for j = 0; j < ySamples-1; j++ {
		y0 := lerp(bb.B, bb.T, float64(j+0)*yDenom)
		y1 := lerp(bb.B, bb.T, float64(j+1)*yDenom)

		b := buffer[0]
		c := marchSample(vec.Vec2{X: bb.L, Y: y1})
		d := c
		buffer[0] = d

		for i = 0; i < xSamples-1; i++ {
			x0 := lerp(bb.L, bb.R, float64(i+0)*xDenom)
			x1 := lerp(bb.L, bb.R, float64(i+1)*xDenom)

			a := b
			b = buffer[i+1]
			c = d
			d = marchSample(vec.Vec2{X: x1, Y: y1})
			buffer[i+1] = d

			marchCell(t, a, b, c, d, x0, x1, y0, y1, marchSegment, segmentData)
		}
	}

	return segmentData
}

func Seg(v0, v1 vec.Vec2, marchSeg MarchSegFunc, segmentData *SegmentSet) {
	if v0 != v1 {
		marchSeg(v1, v0, segmentData)
	}
}

func Midlerp(x0, x1, s0, s1, t float64) float64 {
	return lerp(x0, x1, (t-s0)/(s1-s0))
}

func MarchCellSoft(
	t, a, b, c, d, x0, x1, y0, y1 float64,
	marchSeg MarchSegFunc,
	segData *SegmentSet,
) {
	at := 0
	bt := 0
	ct := 0
	dt := 0
	if a > t {
		at = 1
	}
	if b > t {
		bt = 1
	}
	if c > t {
		ct = 1
	}
	if d > t {
		dt = 1
	}

	switch (at)<<0 | (bt)<<1 | (ct)<<2 | (dt)<<3 {
	case 0x1:
		Seg(
			vec.Vec2{X: x0, Y: Midlerp(y0, y1, a, c, t)},
			vec.Vec2{X: Midlerp(x0, x1, a, b, t), Y: y0},
			marchSeg,
			segData,
		)
	case 0x2:
		Seg(
			vec.Vec2{X: Midlerp(x0, x1, a, b, t), Y: y0},
			vec.Vec2{X: x1, Y: Midlerp(y0, y1, b, d, t)},
			marchSeg,
			segData,
		)
	case 0x3:
		Seg(
			vec.Vec2{X: x0, Y: Midlerp(y0, y1, a, c, t)},
			vec.Vec2{X: x1, Y: Midlerp(y0, y1, b, d, t)},
			marchSeg,
			segData,
		)
	case 0x4:
		Seg(
			vec.Vec2{X: Midlerp(x0, x1, c, d, t), Y: y1},
			vec.Vec2{X: x0, Y: Midlerp(y0, y1, a, c, t)},
			marchSeg,
			segData,
		)
	case 0x5:
		Seg(
			vec.Vec2{X: Midlerp(x0, x1, c, d, t), Y: y1},
			vec.Vec2{X: Midlerp(x0, x1, a, b, t), Y: y0},
			marchSeg,
			segData,
		)
	case 0x6:
		Seg(
			vec.Vec2{X: Midlerp(x0, x1, a, b, t), Y: y0},
			vec.Vec2{X: x1, Y: Midlerp(y0, y1, b, d, t)},
			marchSeg,
			segData,
		)
		Seg(
			vec.Vec2{X: Midlerp(x0, x1, c, d, t), Y: y1},
			vec.Vec2{X: x0, Y: Midlerp(y0, y1, a, c, t)},
			marchSeg,
			segData,
		)
	case 0x7:
		Seg(
			vec.Vec2{X: Midlerp(x0, x1, c, d, t), Y: y1},
			vec.Vec2{X: x1, Y: Midlerp(y0, y1, b, d, t)},
			marchSeg,
			segData,
		)
	case 0x8:
		Seg(
			vec.Vec2{X: x1, Y: Midlerp(y0, y1, b, d, t)},
			vec.Vec2{X: Midlerp(x0, x1, c, d, t), Y: y1},
			marchSeg,
			segData,
		)
	case 0x9:
		Seg(
			vec.Vec2{X: x0, Y: Midlerp(y0, y1, a, c, t)},
			vec.Vec2{X: Midlerp(x0, x1, a, b, t), Y: y0},
			marchSeg,
			segData,
		)
		Seg(
			vec.Vec2{X: x1, Y: Midlerp(y0, y1, b, d, t)},
			vec.Vec2{X: Midlerp(x0, x1, c, d, t), Y: y1},
			marchSeg,
			segData,
		)
	case 0xA:
		Seg(
			vec.Vec2{X: Midlerp(x0, x1, a, b, t), Y: y0},
			vec.Vec2{X: Midlerp(x0, x1, c, d, t), Y: y1},
			marchSeg,
			segData,
		)
	case 0xB:
		Seg(
			vec.Vec2{X: x0, Y: Midlerp(y0, y1, a, c, t)},
			vec.Vec2{X: Midlerp(x0, x1, c, d, t), Y: y1},
			marchSeg,
			segData,
		)
	case 0xC:
		Seg(
			vec.Vec2{X: x1, Y: Midlerp(y0, y1, b, d, t)},
			vec.Vec2{X: x0, Y: Midlerp(y0, y1, a, c, t)},
			marchSeg,
			segData,
		)
	case 0xD:
		Seg(
			vec.Vec2{X: x1, Y: Midlerp(y0, y1, b, d, t)},
			vec.Vec2{X: Midlerp(x0, x1, a, b, t), Y: y0},
			marchSeg,
			segData,
		)
	case 0xE:
		Seg(
			vec.Vec2{X: Midlerp(x0, x1, a, b, t), Y: y0},
			vec.Vec2{X: x0, Y: Midlerp(y0, y1, a, c, t)},
			marchSeg,
			segData,
		)
	}
}

// MarchSoft traces an anti-aliased contour along a particular threshold. On a
// binary tile map this cuts the corners of solid regions at 45 degrees.
func MarchSoft(
	bb bike.BB,
	xSamples, ySamples int64,
	t float64,
	marchSeg MarchSegFunc,
	marchSample MarchSampleFunc,
) *SegmentSet {
	return MarchCells(bb, xSamples, ySamples, t, marchSeg, marchSample, MarchCellSoft)
}

func Segs(a, b, c vec.Vec2, marchSegment MarchSegFunc, segmentData *SegmentSet) {
	Seg(b, c, marchSegment, segmentData)
	Seg(a, b, marchSegment, segmentData)
}

func MarchCellHard(
	t, a, b, c, d, x0, x1, y0, y1 float64,
	marchSeg MarchSegFunc,
	segData *SegmentSet,
) {
	xm := lerp(x0, x1, 0.5)
	ym := lerp(y0, y1, 0.5)

	at := 0
	bt := 0
	ct := 0
	dt := 0
	if a > t {
		at = 1
	}
	if b > t {
		bt = 1
	}
	if c > t {
		ct = 1
	}
	if d > t {
		dt = 1
	}

	switch (at)<<0 | (bt)<<1 | (ct)<<2 | (dt)<<3 {
	case 0x1:
		Segs(vec.Vec2{X: x0, Y: ym}, vec.Vec2{X: xm, Y: ym}, vec.Vec2{X: xm, Y: y0}, marchSeg, segData)
	case 0x2:
		Segs(vec.Vec2{X: xm, Y: y0}, vec.Vec2{X: xm, Y: ym}, vec.Vec2{X: x1, Y: ym}, marchSeg, segData)
	case 0x3:
		Seg(vec.Vec2{X: x0, Y: ym}, vec.Vec2{X: x1, Y: ym}, marchSeg, segData)
	case 0x4:
		Segs(vec.Vec2{X: xm, Y: y1}, vec.Vec2{X: xm, Y: ym}, vec.Vec2{X: x0, Y: ym}, marchSeg, segData)
	case 0x5:
		Seg(vec.Vec2{X: xm, Y: y1}, vec.Vec2{X: xm, Y: y0}, marchSeg, segData)
	case 0x6:
		Segs(vec.Vec2{X: xm, Y: y0}, vec.Vec2{X: xm, Y: ym}, vec.Vec2{X: x0, Y: ym}, marchSeg, segData)
		Segs(vec.Vec2{X: xm, Y: y1}, vec.Vec2{X: xm, Y: ym}, vec.Vec2{X: x1, Y: ym}, marchSeg, segData)
	case 0x7:
		Segs(vec.Vec2{X: xm, Y: y1}, vec.Vec2{X: xm, Y: ym}, vec.Vec2{X: x1, Y: ym}, marchSeg, segData)
	case 0x8:
		Segs(vec.Vec2{X: x1, Y: ym}, vec.Vec2{X: xm, Y: ym}, vec.Vec2{X: xm, Y: y1}, marchSeg, segData)
	case 0x9:
		Segs(vec.Vec2{X: x1, Y: ym}, vec.Vec2{X: xm, Y: ym}, vec.Vec2{X: xm, Y: y0}, marchSeg, segData)
		Segs(vec.Vec2{X: x0, Y: ym}, vec.Vec2{X: xm, Y: ym}, vec.Vec2{X: xm, Y: y1}, marchSeg, segData)
	case 0xA:
		Seg(vec.Vec2{X: xm, Y: y0}, vec.Vec2{X: xm, Y: y1}, marchSeg, segData)
	case 0xB:
		Segs(vec.Vec2{X: x0, Y: ym}, vec.Vec2{X: xm, Y: ym}, vec.Vec2{X: xm, Y: y1}, marchSeg, segData)
	case 0xC:
		Seg(vec.Vec2{X: x1, Y: ym}, vec.Vec2{X: x0, Y: ym}, marchSeg, segData)
	case 0xD:
		Segs(vec.Vec2{X: x1, Y: ym}, vec.Vec2{X: xm, Y: ym}, vec.Vec2{X: xm, Y: y0}, marchSeg, segData)
	case 0xE:
		Segs(vec.Vec2{X: xm, Y: y0}, vec.Vec2{X: xm, Y: ym}, vec.Vec2{X: x0, Y: ym}, marchSeg, segData)
	}
}

// MarchHard traces an aliased contour along a particular threshold. On a tile
// map sampled at cell centers the contour runs along the cell borders.
func MarchHard(
	bb bike.BB,
	xSamples, ySamples int64,
	t float64,
	marchSegment MarchSegFunc,
	marchSample MarchSampleFunc,
) *SegmentSet {
	return MarchCells(bb, xSamples, ySamples, t, marchSegment, marchSample, MarchCellHard)
}

func lerp(f1, f2, t float64) float64 {
	return f1*(1.0-t) + f2*t
}
