package tilemap_test

import (
	"strings"
	"testing"

	"github.com/setanarut/bike"
	"github.com/setanarut/bike/utils/tilemap"
	"github.com/setanarut/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ground = `
.....
.S.*.
#####
`

func parse(t *testing.T, src string) *tilemap.Map {
	t.Helper()
	m, err := tilemap.Parse(strings.NewReader(strings.TrimPrefix(src, "\n")), "ground", 10)
	require.NoError(t, err)
	return m
}

func TestParseGround(t *testing.T) {
	m := parse(t, ground)
	require.Len(t, m.Rows, 3)

	data, err := m.LevelData()
	require.NoError(t, err)
	assert.Equal(t, "ground", data.Name)
	assert.Equal(t, vec.Vec2{X: 15, Y: 20}, data.Start, "bottom center of the start cell")
	assert.Equal(t, []vec.Vec2{{X: 35, Y: 15}}, data.Stars)
	assert.Empty(t, data.Hazards)

	require.Len(t, data.Walls, 1)
	require.Len(t, data.Walls[0], 4)
	bb := bike.NewBBForPoints(data.Walls[0])
	assert.InDelta(t, 0, bb.L, 1e-9)
	assert.InDelta(t, 20, bb.B, 1e-9)
	assert.InDelta(t, 50, bb.R, 1e-9)
	assert.InDelta(t, 30, bb.T, 1e-9)
}

func TestParseHazardsAndRamps(t *testing.T) {
	m := parse(t, `
S..*.
###^^
#####
`)
	data, err := m.LevelData()
	require.NoError(t, err)
	require.Len(t, data.Hazards, 1)
	require.Len(t, data.Walls, 1)
	assert.Len(t, data.Walls[0], 6, "an L shaped wall")

	m.Smooth = true
	smooth, err := m.LevelData()
	require.NoError(t, err)
	require.Len(t, smooth.Walls, 1)
	assert.Greater(t, len(smooth.Walls[0]), 6)
}

func TestLevelFromTilemap(t *testing.T) {
	level, err := bike.LoadLevel(parse(t, ground), 8)
	require.NoError(t, err)
	assert.Equal(t, 1, level.StarCount())

	_, ok := level.Query(vec.Vec2{X: 25, Y: 17}, 4)
	assert.True(t, ok, "the wall surface is at y = 20")
}

func TestParseErrors(t *testing.T) {
	_, err := parse(t, "....\n####\n").LevelData()
	assert.ErrorIs(t, err, tilemap.ErrNoStart)

	_, err = parse(t, "S..S\n####\n").LevelData()
	assert.ErrorIs(t, err, tilemap.ErrMultipleStart)

	_, err = parse(t, "S.x.\n####\n").LevelData()
	assert.Error(t, err)

	m := parse(t, ground)
	m.CellSize = 0
	_, err = m.LevelData()
	assert.Error(t, err)
}
