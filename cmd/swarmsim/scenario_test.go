package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleScenario = `
map:
  cols: 3
  rows: 3
  floors: 1
  n_bins: 1
  n_bots: 1
  seed: 42
planner:
  rounds: 5
  n_threads: 1
  price_increment: 1
  duration: 1000
router:
  elevator_duration: 5
  fallback_cost: 1000
  blocking_fallback_cost: 1
  iterations: 100
requests:
  - bin_id: 0
    col: 1
    row: 1
    floor: 0
`

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadScenarioParsesAllSections(t *testing.T) {
	path := writeScenario(t, sampleScenario)

	sc, err := loadScenario(path)
	require.NoError(t, err)
	require.Equal(t, 3, sc.Map.Cols)
	require.Equal(t, int64(42), sc.Map.Seed)
	require.Equal(t, 5, sc.Planner.Rounds)
	require.Equal(t, 5.0, sc.Router.ElevatorDuration)
	require.Len(t, sc.Requests, 1)
	require.Equal(t, 1, sc.Requests[0].Col)
}

func TestLoadScenarioMissingFileReturnsError(t *testing.T) {
	_, err := loadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadScenarioInvalidYAMLReturnsError(t *testing.T) {
	path := writeScenario(t, "map: [this is not a map")
	_, err := loadScenario(path)
	require.Error(t, err)
}

func TestBuildRouterCopiesScenarioFields(t *testing.T) {
	path := writeScenario(t, sampleScenario)
	sc, err := loadScenario(path)
	require.NoError(t, err)

	r := sc.buildRouter(nil)
	require.Equal(t, 5.0, r.ElevatorDuration)
	require.Equal(t, 1000.0, r.FallbackCost)
	require.Equal(t, sc.Map, r.MapGenConfig)
	require.Equal(t, sc.Planner, r.PlannerConfig)
}
