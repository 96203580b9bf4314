package march

import (
	"math"

	"github.com/setanarut/vec"
)

// Segment is a directed contour segment.
type Segment struct {
	A, B vec.Vec2
}

// SegmentSet collects the output of a marching process.
type SegmentSet struct {
	Segments []Segment
}

// Add appends the segment ab.
func (s *SegmentSet) Add(a, b vec.Vec2) {
	s.Segments = append(s.Segments, Segment{a, b})
}

type pointKey [2]int64

func keyOf(p vec.Vec2) pointKey {
	return pointKey{int64(math.Round(p.X * 1e6)), int64(math.Round(p.Y * 1e6))}
}

// Loops stitches the segments into closed outlines and drops collinear points.
//
// Segments are followed head to tail, so contours from a padded sampling area
// always close. Chains that do not close are discarded.
func (s *SegmentSet) Loops() [][]vec.Vec2 {
	starts := make(map[pointKey][]int, len(s.Segments))
	for i, seg := range s.Segments {
		k := keyOf(seg.A)
		starts[k] = append(starts[k], i)
	}
	used := make([]bool, len(s.Segments))

	next := func(p vec.Vec2) int {
		k := keyOf(p)
		for _, i := range starts[k] {
			if !used[i] {
				return i
			}
		}
		return -1
	}

	var loops [][]vec.Vec2
	for i := range s.Segments {
		if used[i] {
			continue
		}
		used[i] = true
		first := keyOf(s.Segments[i].A)
		loop := []vec.Vec2{s.Segments[i].A}
		cur := s.Segments[i].B
		closed := false
		for {
			if keyOf(cur) == first {
				closed = true
				break
			}
			loop = append(loop, cur)
			j := next(cur)
			if j < 0 {
				break
			}
			used[j] = true
			cur = s.Segments[j].B
		}
		if !closed {
			continue
		}
		if loop = simplify(loop); len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}
	return loops
}

// simplify removes points that lie on the straight line through their neighbours.
func simplify(loop []vec.Vec2) []vec.Vec2 {
	for changed := true; changed && len(loop) >= 3; {
		changed = false
		out := loop[:0:0]
		n := len(loop)
		for i, p := range loop {
			prev := loop[(i+n-1)%n]
			nxt := loop[(i+1)%n]
			d0 := p.Sub(prev)
			d1 := nxt.Sub(p)
			if math.Abs(d0.Cross(d1)) < 1e-9 && d0.Dot(d1) > 0 {
				changed = true
				continue
			}
			out = append(out, p)
		}
		loop = out
	}
	return loop
}
