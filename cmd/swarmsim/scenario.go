package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/swarmsim/binrouter"
	"github.com/katalvlaran/swarmsim/internal/metrics"
	"github.com/katalvlaran/swarmsim/mapgen"
	"github.com/katalvlaran/swarmsim/planner"
)

// Scenario is the YAML document a scenario file loads into — a map
// description, the router's tuning knobs, and the set of bin relocation
// requests to solve.
type Scenario struct {
	Map      mapgen.Config          `yaml:"map"`
	Planner  planner.Config         `yaml:"planner"`
	Router   RouterTuning           `yaml:"router"`
	Requests []binrouter.BinRequest `yaml:"requests"`
}

// RouterTuning holds binrouter.Router's non-planner, non-map fields.
type RouterTuning struct {
	ElevatorDuration     float64 `yaml:"elevator_duration"`
	FallbackCost         float64 `yaml:"fallback_cost"`
	BlockingFallbackCost float64 `yaml:"blocking_fallback_cost"`
	Iterations           int     `yaml:"iterations"`
}

// loadScenario reads and parses a scenario file.
func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &sc, nil
}

// buildRouter assembles the binrouter.Router this scenario describes. m may
// be nil, leaving the router uninstrumented.
func (sc *Scenario) buildRouter(m *metrics.Metrics) *binrouter.Router {
	return &binrouter.Router{
		ElevatorDuration:     sc.Router.ElevatorDuration,
		FallbackCost:         sc.Router.FallbackCost,
		BlockingFallbackCost: sc.Router.BlockingFallbackCost,
		Iterations:           sc.Router.Iterations,
		PlannerConfig:        sc.Planner,
		MapGenConfig:         sc.Map,
		Metrics:              m,
	}
}
