package planner

import (
	"github.com/katalvlaran/swarmsim/auction"
	"github.com/katalvlaran/swarmsim/pathsearch"
)

// PathPlanner owns one agent's Search and its currently committed Path.
type PathPlanner struct {
	Search *pathsearch.Search
	Path   auction.Path
}

// NewPathPlanner builds a PathPlanner for agentID, bidding in PriceIncrement
// steps and costing edges with tt (nil selects pathsearch's unit-cost
// default).
func NewPathPlanner(agentID string, priceIncrement float64, tt pathsearch.TravelTimeFunc) *PathPlanner {
	return &PathPlanner{
		Search: pathsearch.New(pathsearch.Config{
			AgentID:        agentID,
			PriceIncrement: priceIncrement,
			TravelTime:     tt,
		}),
	}
}

// Plan installs dst/duration as this agent's goal, seeds the path at the
// best of src, and runs one Iterate batch.
func (p *PathPlanner) Plan(src, dst []*auction.Node, duration float64, iterations int, fallbackCost float64) pathsearch.Error {
	if err := p.Search.SetDestinations(dst, duration); err != pathsearch.Success {
		return err
	}

	source := p.Search.SelectSource(src)
	if source.Node == nil {
		return pathsearch.ErrNoSource
	}

	p.Path = auction.Path{source}
	return p.Search.Iterate(&p.Path, iterations, fallbackCost)
}

// Replan picks a fresh source among src (via SelectSource when more than
// one candidate is offered, directly otherwise), truncates the committed
// path to start there (or resets it if the source isn't already on the
// path), and iterates again. A result worse than FallbackDiverted triggers
// one retry with a freshly reset cost-estimate cache.
//
// Invariant: on return, p.Path.Front().Node == the selected source.
func (p *PathPlanner) Replan(src []*auction.Node, iterations int, fallbackCost float64) pathsearch.Error {
	var selected *auction.Node
	switch len(src) {
	case 0:
		return pathsearch.ErrNoSource
	case 1:
		selected = src[0]
	default:
		v := p.Search.SelectSource(src)
		selected = v.Node
	}
	if selected == nil {
		return pathsearch.ErrNoSource
	}

	if idx := p.Path.IndexOf(selected); idx >= 0 {
		p.Path = p.Path[idx:]
	} else {
		p.Path = auction.Path{{Node: selected}}
	}

	err := p.Search.Iterate(&p.Path, iterations, fallbackCost)
	if err > pathsearch.FallbackDiverted {
		p.Search.ResetCostEstimates()
		err = p.Search.Iterate(&p.Path, iterations, fallbackCost)
	}
	return err
}
