package injector_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/setanarut/bike"
	"github.com/setanarut/bike/internal/injector"
	"github.com/setanarut/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLevel(t *testing.T) *bike.Level {
	t.Helper()
	level, err := bike.NewLevel(bike.LevelData{
		Name:  "injected",
		Walls: [][]vec.Vec2{{{X: -100, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 10}, {X: -100, Y: 10}}},
		Stars: []vec.Vec2{{X: 0, Y: -500}},
	}, 8)
	require.NoError(t, err)
	return level
}

func TestInitializeSimulationWithoutLog(t *testing.T) {
	sim, cleanup, err := injector.InitializeSimulation(testLevel(t), bike.DefaultTuning(), "")
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, bike.Playing, sim.State())
}

func TestInitializeSimulationWritesLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bike.log")
	sim, cleanup, err := injector.InitializeSimulation(testLevel(t), bike.DefaultTuning(), path)
	require.NoError(t, err)
	sim.Reset()
	cleanup()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"attempt started"`)
	assert.Contains(t, string(b), `"level_name":"injected"`)
}

func TestInitializeSimulationRejectsTuning(t *testing.T) {
	tuning := bike.DefaultTuning()
	tuning.FrameMass = 0
	_, _, err := injector.InitializeSimulation(testLevel(t), tuning, "")
	assert.ErrorIs(t, err, bike.ErrInvalidTuning)
}

func openFiles(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("open files are not listed on this platform")
	}
	return len(entries)
}

func TestProvideLoggerCleanupClosesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bike.log")
	before := openFiles(t)
	for range 50 {
		logger, cleanup, err := injector.ProvideLogger(path)
		require.NoError(t, err)
		logger.Info("level opened")
		cleanup()
	}
	assert.Less(t, openFiles(t)-before, 5)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"level opened"`)
}
