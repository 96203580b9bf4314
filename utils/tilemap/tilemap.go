// Package tilemap builds levels from ASCII maps.
//
//	#  wall
//	^  hazard
//	S  start (the bike stands on the bottom edge of the cell)
//	*  star
//
// Any other character except space and '.' is an error. Solid regions are
// outlined with marching squares, so neighbouring cells merge into one polygon.
package tilemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/setanarut/bike"
	"github.com/setanarut/bike/utils/march"
	"github.com/setanarut/vec"
)

var (
	ErrNoStart       = errors.New("tilemap: no start cell")
	ErrMultipleStart = errors.New("tilemap: more than one start cell")
)

// Map is a parsed ASCII map. It implements bike.LevelSource.
type Map struct {
	Name     string
	Rows     []string
	CellSize float64
	// Smooth cuts the corners of solid regions at 45 degrees, giving ramps.
	Smooth bool
}

// Parse reads rows from r. Blank lines at the end are dropped.
func Parse(r io.Reader, name string, cellSize float64) (*Map, error) {
	m := &Map{Name: name, CellSize: cellSize}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		m.Rows = append(m.Rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read tilemap: %w", err)
	}
	for len(m.Rows) > 0 && strings.TrimSpace(m.Rows[len(m.Rows)-1]) == "" {
		m.Rows = m.Rows[:len(m.Rows)-1]
	}
	return m, nil
}

func (m *Map) size() (w, h int) {
	for _, row := range m.Rows {
		w = max(w, len(row))
	}
	return w, len(m.Rows)
}

func (m *Map) at(x, y int) byte {
	if y < 0 || y >= len(m.Rows) || x < 0 || x >= len(m.Rows[y]) {
		return ' '
	}
	return m.Rows[y][x]
}

// LevelData implements bike.LevelSource.
func (m *Map) LevelData() (bike.LevelData, error) {
	if !(m.CellSize > 0) {
		return bike.LevelData{}, fmt.Errorf("tilemap %q: cell size must be positive", m.Name)
	}
	data := bike.LevelData{Name: m.Name}
	w, h := m.size()
	cs := m.CellSize
	starts := 0
	for y := range h {
		for x := range w {
			switch c := m.at(x, y); c {
			case '#', '^', ' ', '.':
			case 'S':
				starts++
				data.Start = vec.Vec2{X: (float64(x) + 0.5) * cs, Y: float64(y+1) * cs}
			case '*':
				data.Stars = append(data.Stars, vec.Vec2{X: (float64(x) + 0.5) * cs, Y: (float64(y) + 0.5) * cs})
			default:
				return bike.LevelData{}, fmt.Errorf("tilemap %q: unknown cell %q at %d,%d", m.Name, c, x, y)
			}
		}
	}
	switch {
	case starts == 0:
		return bike.LevelData{}, ErrNoStart
	case starts > 1:
		return bike.LevelData{}, ErrMultipleStart
	}
	data.Walls = m.trace('#')
	data.Hazards = m.trace('^')
	return data, nil
}

// trace outlines every region of cells equal to c.
//
// Samples sit on cell centers with one padding sample on each side, so every
// contour closes.
func (m *Map) trace(c byte) [][]vec.Vec2 {
	w, h := m.size()
	cs := m.CellSize
	bb := bike.NewBB(-0.5*cs, -0.5*cs, (float64(w)+0.5)*cs, (float64(h)+0.5)*cs)
	sample := func(p vec.Vec2) float64 {
		x := int(math.Floor(p.X/cs + 1e-9))
		y := int(math.Floor(p.Y/cs + 1e-9))
		if m.at(x, y) == c {
			return 1
		}
		return 0
	}
	marcher := march.MarchHard
	if m.Smooth {
		marcher = march.MarchSoft
	}
	segs := marcher(bb, int64(w+2), int64(h+2), 0.5, march.CollectSegment, sample)
	return segs.Loops()
}
