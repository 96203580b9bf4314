package bike

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/setanarut/vec"
)

// LevelData is the parsed form of a level, as produced by a LevelSource.
type LevelData struct {
	Name    string
	Walls   [][]vec.Vec2
	Hazards [][]vec.Vec2
	Start   vec.Vec2
	Stars   []vec.Vec2
}

// LevelSource produces level geometry. Implementations live in utils/tiled and utils/tilemap.
type LevelSource interface {
	LevelData() (LevelData, error)
}

// Level is the collision world of one level: static polygons plus the star pickups.
type Level struct {
	name           string
	polys          []*Polygon
	start          vec.Vec2
	stars          []Star
	starsRemaining int
	starRadius     float64
	bb             BB
}

// NewLevel builds a level from data. Walls come before hazards in the polygon
// list and every polygon is rewound to positive signed area.
func NewLevel(data LevelData, starRadius float64) (*Level, error) {
	level := &Level{
		name:       data.Name,
		start:      data.Start,
		starRadius: starRadius,
		bb:         NewBBForCircle(data.Start, 0),
	}
	add := func(kind PolygonKind, outlines [][]vec.Vec2) error {
		for i, points := range outlines {
			if len(points) < 3 {
				return fmt.Errorf("%s %d has %d points: %w", kind, i, len(points), ErrDegeneratePolygon)
			}
			poly := NewPolygon(kind, points)
			level.polys = append(level.polys, poly)
			level.bb = level.bb.Merge(poly.BB)
		}
		return nil
	}
	if err := add(Wall, data.Walls); err != nil {
		return nil, err
	}
	if err := add(Hazard, data.Hazards); err != nil {
		return nil, err
	}
	level.stars = make([]Star, len(data.Stars))
	for i, p := range data.Stars {
		level.stars[i] = Star{Position: p, Alive: true}
		level.bb = level.bb.Expand(p)
	}
	level.starsRemaining = len(level.stars)
	return level, nil
}

// LoadLevel reads data from src and builds a level.
func LoadLevel(src LevelSource, starRadius float64) (*Level, error) {
	data, err := src.LevelData()
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	return NewLevel(data, starRadius)
}

// Name returns the level name, if the source provided one.
func (level *Level) Name() string {
	return level.name
}

// Start returns the start position.
func (level *Level) Start() vec.Vec2 {
	return level.start
}

// Polygons returns the level polygons. Callers must not modify them.
func (level *Level) Polygons() []*Polygon {
	return level.polys
}

// Stars returns the star pickups. Callers must not modify them.
func (level *Level) Stars() []Star {
	return level.stars
}

// StarCount returns the total number of stars.
func (level *Level) StarCount() int {
	return len(level.stars)
}

// StarsRemaining returns the number of stars not yet collected.
func (level *Level) StarsRemaining() int {
	return level.starsRemaining
}

// StarRadius returns the pickup radius of a star.
func (level *Level) StarRadius() float64 {
	return level.starRadius
}

// BB returns the bounds of all geometry, the start point and the stars.
func (level *Level) BB() BB {
	return level.bb
}

// Query tests a circle against the level geometry.
func (level *Level) Query(center vec.Vec2, radius float64) (Contact, bool) {
	return CircleWorld(level.polys, center, radius)
}

// Pickup collects every alive star touching the circle and returns how many were collected.
func (level *Level) Pickup(center vec.Vec2, radius float64) int {
	r := radius + level.starRadius
	r2 := r * r
	collected := 0
	for i := range level.stars {
		star := &level.stars[i]
		if !star.Alive {
			continue
		}
		if star.Position.Sub(center).LengthSq() < r2 {
			star.Alive = false
			level.starsRemaining--
			collected++
		}
	}
	return collected
}

// Reset revives every star.
func (level *Level) Reset() {
	for i := range level.stars {
		level.stars[i].Alive = true
	}
	level.starsRemaining = len(level.stars)
}

// Fingerprint hashes the level geometry, start and stars.
// Two levels with the same layout share a fingerprint regardless of their name.
func (level *Level) Fingerprint() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)
	putVec := func(v vec.Vec2) {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v.Y))
	}
	putVec(level.start)
	for _, poly := range level.polys {
		buf = append(buf, byte(poly.Kind))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(poly.Points)))
		for _, p := range poly.Points {
			putVec(p)
		}
		d.Write(buf)
		buf = buf[:0]
	}
	for _, s := range level.stars {
		putVec(s.Position)
	}
	d.Write(buf)
	return d.Sum64()
}
