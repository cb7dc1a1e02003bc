package planner

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/swarmsim/auction"
	"github.com/katalvlaran/swarmsim/internal/telemetry"
	"github.com/katalvlaran/swarmsim/pathsearch"
	"github.com/katalvlaran/swarmsim/pathsync"
)

// Request is one agent's planning configuration for a MultiPathPlanner.Plan
// call: candidate sources, the destination set, and the search knobs that
// would otherwise live on pathsearch.Config.
type Request struct {
	AgentID        string
	Src            []*auction.Node
	Dst            []*auction.Node
	Duration       float64
	Iterations     int
	FallbackCost   float64
	PriceIncrement float64
	TravelTime     pathsearch.TravelTimeFunc
}

// Result is one agent's outcome from a MultiPathPlanner.Plan call.
type Result struct {
	SearchError pathsearch.Error
	SyncError   pathsync.Error
	Path        auction.Path
}

// MultiPathPlanner runs up to Rounds rounds of replan/sync/check across all
// requests passed to Plan. NThreads < 2 (or fewer requests than NThreads)
// runs the sequential algorithm on the calling goroutine; otherwise Plan
// spawns a bounded worker pool.
type MultiPathPlanner struct {
	Rounds               int
	NThreads             int
	AllowIndefiniteBlock bool
}

// Plan runs the configured number of rounds (or until every agent is
// satisfied) and returns one Result per request, in request order, plus the
// Sync that accumulated every agent's committed path.
func (m *MultiPathPlanner) Plan(requests []Request) ([]Result, *pathsync.Sync, error) {
	n := len(requests)
	sy := pathsync.New()
	results := make([]Result, n)
	if n == 0 {
		return results, sy, nil
	}

	planners := make([]*PathPlanner, n)
	for i, req := range requests {
		planners[i] = NewPathPlanner(req.AgentID, req.PriceIncrement, req.TravelTime)
		if err := planners[i].Search.SetDestinations(req.Dst, req.Duration); err != pathsearch.Success {
			results[i].SearchError = err
			telemetry.Error("multipathplanner: setup failed", "agent", req.AgentID, "error", err)
			return results, sy, nil
		}
	}

	if m.NThreads >= 2 && n >= m.NThreads {
		m.planParallel(requests, planners, results, sy)
	} else {
		m.planSequential(requests, planners, results, sy)
	}
	return results, sy, nil
}

// planSequential implements §4.4's sequential algorithm verbatim: rounds
// count down from m.Rounds to 1, every agent replans and syncs in request
// order each round, and a fatal search or sync error aborts immediately.
func (m *MultiPathPlanner) planSequential(requests []Request, planners []*PathPlanner, results []Result, sy *pathsync.Sync) {
	n := len(requests)
	var pathIDCounter uint64

	for round := m.Rounds; round >= 1; round-- {
		for i := 0; i < n; i++ {
			searchErr := planners[i].Replan(requests[i].Src, requests[i].Iterations, requests[i].FallbackCost)
			results[i] = Result{SearchError: searchErr, Path: planners[i].Path}
			if searchErr > pathsearch.IterationsReached {
				telemetry.Warn("multipathplanner: fatal search error", "agent", requests[i].AgentID, "error", searchErr)
				return
			}

			pathIDCounter++
			syncErr := sy.UpdatePath(planners[i].Search.AgentID(), planners[i].Path, pathIDCounter)
			results[i].SyncError = syncErr
			if syncErr != pathsync.Success {
				telemetry.Warn("multipathplanner: fatal sync error", "agent", requests[i].AgentID, "error", syncErr)
				return
			}
		}

		if m.satisfactionPredicate(requests, planners, results, sy, nil) {
			telemetry.Info("multipathplanner: all agents satisfied", "round", round)
			return
		}
	}
}

// planParallel implements §4.4/§5's bounded worker pool: each worker owns
// a residue class of indices (idx, idx+nThreads, idx+2*nThreads, ...) and
// loops replan-under-shared-lock / sync-and-check-under-exclusive-lock
// until the shared countdown reaches zero. errgroup only manages goroutine
// spawn/join; the sync.RWMutex is the sole synchronization point for
// shared planner state, exactly as specified.
func (m *MultiPathPlanner) planParallel(requests []Request, planners []*PathPlanner, results []Result, sy *pathsync.Sync) {
	n := len(requests)
	nThreads := m.NThreads
	if nThreads > n {
		nThreads = n
	}

	var mu sync.RWMutex
	countdown := m.Rounds * n
	var pathIDCounter uint64

	skip := func(k int) bool {
		if len(requests[k].Dst) == 0 {
			return true
		}
		return !planners[k].Path.Trivial() && planners[k].Path.Front().Node == requests[k].Dst[0]
	}

	g := new(errgroup.Group)
	for w := 0; w < nThreads; w++ {
		idx := w
		g.Go(func() error {
			for {
				mu.RLock()
				if countdown <= 0 {
					mu.RUnlock()
					return nil
				}
				searchErr := planners[idx].Replan(requests[idx].Src, requests[idx].Iterations, requests[idx].FallbackCost)
				mu.RUnlock()

				mu.Lock()
				if countdown <= 0 {
					mu.Unlock()
					return nil
				}
				countdown--
				results[idx] = Result{SearchError: searchErr, Path: planners[idx].Path}

				if searchErr > pathsearch.IterationsReached {
					countdown = -int(searchErr)
					telemetry.Warn("multipathplanner: fatal search error", "agent", requests[idx].AgentID, "error", searchErr)
					mu.Unlock()
					return nil
				}

				pathIDCounter++
				syncErr := sy.UpdatePath(planners[idx].Search.AgentID(), planners[idx].Path, pathIDCounter)
				results[idx].SyncError = syncErr

				satisfied := m.satisfactionPredicate(requests, planners, results, sy, skip)
				if satisfied {
					countdown = 0
					mu.Unlock()
					return nil
				}
				mu.Unlock()

				idx += nThreads
				if idx >= n {
					idx %= nThreads
				}
			}
		})
	}
	_ = g.Wait() // workers never return an error; Wait only joins them
}

// satisfactionPredicate applies §4.4's satisfaction rules to every planner
// and returns whether all of them are satisfied. skipStaleFallback, when
// non-nil, suppresses the stale-fallback clause for agents it reports true
// for — the parallel algorithm's addition for agents with no destination
// or already parked at the one they were asked for.
func (m *MultiPathPlanner) satisfactionPredicate(requests []Request, planners []*PathPlanner, results []Result, sy *pathsync.Sync, skipStaleFallback func(k int) bool) bool {
	allSatisfied := true
	for k, p := range planners {
		if (skipStaleFallback == nil || !skipStaleFallback(k)) && results[k].SearchError == pathsearch.FallbackDiverted && hasStaleFallback(p) {
			p.Search.ResetCostEstimates()
			allSatisfied = false
			continue
		}

		err, _ := sy.CheckWaitStatus(p.Search.AgentID())
		results[k].SyncError = err
		satisfied := err == pathsync.Success || (err == pathsync.RemainingDurationInfinite && m.AllowIndefiniteBlock)
		if !satisfied {
			allSatisfied = false
		}
	}
	return allSatisfied
}

// hasStaleFallback reports whether any non-final visit in p's path is a
// parkable node where p itself holds the second-lowest bid — the §9
// resolution of "second entry, not first" applied to detect an agent
// holding a diverted path that is no longer its true best option.
func hasStaleFallback(p *PathPlanner) bool {
	path := p.Path
	for i := 0; i < len(path)-1; i++ {
		v := path[i]
		if !v.Node.IsParkable() {
			continue
		}
		if bid, ok := v.Node.Auction.SecondLowest(); ok && bid.Bidder == p.Search.AgentID() {
			return true
		}
	}
	return false
}
