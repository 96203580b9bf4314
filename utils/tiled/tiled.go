// Package tiled reads levels saved by the Tiled map editor in its JSON format (.tmj).
//
// Only object layers are used. Polygons in the "walls" layer become walls,
// polygons in "hazards" or "lava" become hazards, and point objects in
// "objects" named (or typed) "start" or "star" set the start and the stars.
package tiled

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/setanarut/bike"
	"github.com/setanarut/vec"
)

var ErrNoStart = errors.New("tiled: no start object")

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Object struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Class   string  `json:"class"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Polygon []Point `json:"polygon"`
}

// kind returns the first non empty of name, type and class, lower cased.
func (o *Object) kind() string {
	for _, s := range []string{o.Name, o.Type, o.Class} {
		if s != "" {
			return strings.ToLower(s)
		}
	}
	return ""
}

// Outline returns the polygon in map coordinates.
func (o *Object) Outline() []vec.Vec2 {
	pts := make([]vec.Vec2, len(o.Polygon))
	for i, p := range o.Polygon {
		pts[i] = vec.Vec2{X: o.X + p.X, Y: o.Y + p.Y}
	}
	return pts
}

type Layer struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Objects []Object `json:"objects"`
	Layers  []Layer  `json:"layers"`
}

type Map struct {
	Layers []Layer `json:"layers"`
}

// Decode reads a Tiled map from r and converts it to level data.
func Decode(r io.Reader, name string) (bike.LevelData, error) {
	var m Map
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return bike.LevelData{}, fmt.Errorf("decode tiled map: %w", err)
	}
	return m.LevelData(name)
}

// LevelData converts the map. Group layers are walked recursively.
func (m *Map) LevelData(name string) (bike.LevelData, error) {
	data := bike.LevelData{Name: name}
	hasStart := false

	var walk func(layers []Layer)
	walk = func(layers []Layer) {
		for i := range layers {
			layer := &layers[i]
			walk(layer.Layers)
			switch strings.ToLower(layer.Name) {
			case "walls":
				for _, o := range layer.Objects {
					if len(o.Polygon) > 0 {
						data.Walls = append(data.Walls, o.Outline())
					}
				}
			case "hazards", "lava":
				for _, o := range layer.Objects {
					if len(o.Polygon) > 0 {
						data.Hazards = append(data.Hazards, o.Outline())
					}
				}
			case "objects":
				for _, o := range layer.Objects {
					switch o.kind() {
					case "start":
						data.Start = vec.Vec2{X: o.X, Y: o.Y}
						hasStart = true
					case "star":
						data.Stars = append(data.Stars, vec.Vec2{X: o.X, Y: o.Y})
					}
				}
			}
		}
	}
	walk(m.Layers)

	if !hasStart {
		return bike.LevelData{}, ErrNoStart
	}
	return data, nil
}

// Source loads a .tmj file. It implements bike.LevelSource.
type Source struct {
	Path string
}

func (s Source) LevelData() (bike.LevelData, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return bike.LevelData{}, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(s.Path), filepath.Ext(s.Path))
	return Decode(f, name)
}
