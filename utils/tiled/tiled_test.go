package tiled_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/setanarut/bike"
	"github.com/setanarut/bike/utils/tiled"
	"github.com/setanarut/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "height": 40, "width": 60, "tilewidth": 16, "tileheight": 16,
  "layers": [
    {"name": "background", "type": "imagelayer"},
    {"name": "walls", "type": "objectgroup", "objects": [
      {"id": 1, "x": 100, "y": 200, "polygon": [{"x": 0, "y": 0}, {"x": 50, "y": 0}, {"x": 50, "y": 20}, {"x": 0, "y": 20}]},
      {"id": 2, "x": 0, "y": 0, "width": 10, "height": 10}
    ]},
    {"name": "group", "type": "group", "layers": [
      {"name": "lava", "type": "objectgroup", "objects": [
        {"id": 3, "x": 300, "y": 250, "polygon": [{"x": 0, "y": 0}, {"x": 10, "y": 0}, {"x": 5, "y": 8}]}
      ]}
    ]},
    {"name": "objects", "type": "objectgroup", "objects": [
      {"id": 4, "name": "start", "x": 120, "y": 200, "point": true},
      {"id": 5, "name": "", "type": "star", "x": 140, "y": 180, "point": true},
      {"id": 6, "name": "", "class": "Star", "x": 160, "y": 180, "point": true},
      {"id": 7, "name": "sign", "x": 0, "y": 0, "point": true}
    ]}
  ]
}`

func TestDecode(t *testing.T) {
	data, err := tiled.Decode(strings.NewReader(sample), "sample")
	require.NoError(t, err)

	assert.Equal(t, "sample", data.Name)
	assert.Equal(t, vec.Vec2{X: 120, Y: 200}, data.Start)
	assert.Equal(t, []vec.Vec2{{X: 140, Y: 180}, {X: 160, Y: 180}}, data.Stars)

	require.Len(t, data.Walls, 1, "objects without a polygon are skipped")
	assert.Equal(t, []vec.Vec2{{X: 100, Y: 200}, {X: 150, Y: 200}, {X: 150, Y: 220}, {X: 100, Y: 220}}, data.Walls[0])

	require.Len(t, data.Hazards, 1, "hazards inside group layers are found")
	assert.Equal(t, vec.Vec2{X: 305, Y: 258}, data.Hazards[0][2])
}

func TestDecodeErrors(t *testing.T) {
	_, err := tiled.Decode(strings.NewReader(`{"layers": []}`), "empty")
	assert.ErrorIs(t, err, tiled.ErrNoStart)

	_, err = tiled.Decode(strings.NewReader(`{"layers": [`), "broken")
	assert.Error(t, err)
}

func TestSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level1.tmj")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	level, err := bike.LoadLevel(tiled.Source{Path: path}, 8)
	require.NoError(t, err)
	assert.Equal(t, "level1", level.Name())
	assert.Len(t, level.Polygons(), 2)
	assert.Equal(t, 2, level.StarCount())

	_, err = bike.LoadLevel(tiled.Source{Path: filepath.Join(t.TempDir(), "missing.tmj")}, 8)
	assert.Error(t, err)
}
