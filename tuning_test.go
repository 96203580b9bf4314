package bike_test

import (
	"math"
	"strings"
	"testing"

	"github.com/setanarut/bike"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadTuningOverridesDefaults(t *testing.T) {
	tuning, err := bike.LoadTuning(strings.NewReader("gravity: 50\nmax_substeps: 0\n"))
	require.NoError(t, err)

	want := bike.DefaultTuning()
	want.Gravity = 50
	want.MaxSubsteps = 0
	assert.Equal(t, want, tuning)
}

func TestLoadTuningEmpty(t *testing.T) {
	tuning, err := bike.LoadTuning(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, bike.DefaultTuning(), tuning)
}

func TestLoadTuningErrors(t *testing.T) {
	_, err := bike.LoadTuning(strings.NewReader("gravty: 50\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = bike.LoadTuning(strings.NewReader("timestep: 0\n"))
	assert.ErrorIs(t, err, bike.ErrInvalidTuning)

	_, err = bike.LoadTuning(strings.NewReader("wheel_radius: -1\n"))
	assert.ErrorIs(t, err, bike.ErrInvalidTuning)

	_, err = bike.LoadTuning(strings.NewReader("jump_pause: -1\n"))
	assert.ErrorIs(t, err, bike.ErrInvalidTuning)
}

func TestDefaultTuningIsValid(t *testing.T) {
	assert.NoError(t, bike.DefaultTuning().Validate())
}

func TestLevelTimeFormat(t *testing.T) {
	assert.Equal(t, "01:01:23", bike.NewLevelTime(61.234).String())
	assert.Equal(t, "00:00:00", bike.NewLevelTime(0).String())
	assert.Equal(t, "--:--:--", bike.InvalidLevelTime.String())
	assert.False(t, bike.InvalidLevelTime.Valid())
	assert.InDelta(t, 61.23, bike.NewLevelTime(61.234).Seconds(), 1e-9)
	assert.Less(t, bike.NewLevelTime(10), bike.InvalidLevelTime, "any real time beats no time")
}

func TestNewLevelTimeClamps(t *testing.T) {
	assert.Equal(t, bike.LevelTime(0), bike.NewLevelTime(-3))
	assert.Equal(t, bike.LevelTime(0), bike.NewLevelTime(math.NaN()))
	assert.Equal(t, bike.InvalidLevelTime-1, bike.NewLevelTime(1e12))
	assert.Equal(t, bike.InvalidLevelTime-1, bike.NewLevelTime(math.Inf(1)))
	assert.True(t, bike.NewLevelTime(1e12).Valid(), "long runs still count as completed")
}

func TestParseLevelTime(t *testing.T) {
	lt, err := bike.ParseLevelTime("12:34:56")
	require.NoError(t, err)
	assert.Equal(t, bike.LevelTime(12*6000+34*100+56), lt)
	assert.Equal(t, "12:34:56", lt.String())

	lt, err = bike.ParseLevelTime("--:--:--")
	require.NoError(t, err)
	assert.Equal(t, bike.InvalidLevelTime, lt)

	_, err = bike.ParseLevelTime("00:60:00")
	assert.Error(t, err)
	_, err = bike.ParseLevelTime("soon")
	assert.Error(t, err)
}

func TestLevelTimeYAML(t *testing.T) {
	type doc struct {
		Best bike.LevelTime `yaml:"best"`
	}
	b, err := yaml.Marshal(doc{Best: bike.NewLevelTime(75.5)})
	require.NoError(t, err)
	assert.Contains(t, string(b), "01:15:50")

	var d doc
	require.NoError(t, yaml.Unmarshal(b, &d))
	assert.Equal(t, bike.NewLevelTime(75.5), d.Best)
}
