package binrouter

import (
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/katalvlaran/swarmsim/auction"
	"github.com/katalvlaran/swarmsim/csvtrace"
	"github.com/katalvlaran/swarmsim/internal/metrics"
	"github.com/katalvlaran/swarmsim/internal/telemetry"
	"github.com/katalvlaran/swarmsim/mapgen"
	"github.com/katalvlaran/swarmsim/pathsearch"
	"github.com/katalvlaran/swarmsim/pathsync"
	"github.com/katalvlaran/swarmsim/planner"
	"github.com/katalvlaran/swarmsim/traversal"
)

// Router solves one warehouse relocation request set and traces it to CSV.
type Router struct {
	ElevatorDuration     float64
	FallbackCost         float64
	BlockingFallbackCost float64
	Iterations           int
	PlannerConfig        planner.Config
	MapGenConfig         mapgen.Config

	// Metrics, when set, receives the counters and histograms described
	// in internal/metrics. A nil Metrics disables instrumentation.
	Metrics *metrics.Metrics
}

// Solve runs the bin phase, then the chunked robot phase, writing the
// resulting trace to path. It returns nil on success or one of binrouter's
// Error values (ErrFileOpenFail when path cannot be created); an error from
// map generation or from writing a CSV row is returned as is.
func (r *Router) Solve(requests []BinRequest, path string) error {
	runID := uuid.New().String()
	log := telemetry.Named("binrouter")
	log.Info("solve starting", "run_id", runID, "requests", len(requests))

	m, err := mapgen.Generate(r.MapGenConfig)
	if err != nil {
		return err
	}

	dst := append([]*auction.Node(nil), m.Bins...)
	for _, req := range requests {
		if req.BinID < 0 || req.BinID >= len(dst) {
			log.Error("bin id out of range", "bin_id", req.BinID, "n_bins", len(dst))
			return ErrRequestBinIDOutOfRange
		}
		node := m.Graph.FindNode(auction.Point{X: float64(req.Col), Y: float64(req.Row), Z: float64(req.Floor)})
		if node == nil {
			log.Error("bin request node not found", "bin_id", req.BinID)
			return ErrRequestBinNodeNotFound
		}
		if !node.IsParkable() {
			log.Error("bin request node not parkable", "bin_id", req.BinID)
			return ErrRequestBinNodeNotParkable
		}
		dst[req.BinID] = node
	}

	f, err := os.Create(path)
	if err != nil {
		log.Error("output file open failed", "path", path, "error", err)
		return ErrFileOpenFail
	}
	defer f.Close()

	w, err := csvtrace.New(f)
	if err != nil {
		return ErrFileOpenFail
	}
	if err := w.WriteBanner("run=" + runID); err != nil {
		return err
	}

	bins := append([]*auction.Node(nil), m.Bins...)
	bots := append([]*auction.Node(nil), m.Bots...)

	binPaths, binSync, err := r.generateBinPaths(bins, dst)
	if err != nil {
		return err
	}

	if err := w.WriteEntities(0, r.entitySnapshot(m, bins, bots)); err != nil {
		return err
	}
	for i, p := range binPaths {
		if p.Trivial() {
			continue
		}
		if err := w.WritePath(0, i, strconv.Itoa(i), p, false); err != nil {
			return err
		}
	}

	agentIDs := make([]int, len(bins))
	for i := range bins {
		agentIDs[i] = i
	}
	order := traversal.Resolve(binSync, agentIDs)

	if len(order) > 0 && len(bots) == 0 {
		log.Error("robot phase needs at least one bot", "bins_to_move", len(order))
		return ErrGenerateRobotPathsFail
	}

	stage := 1
	for cur := 0; cur < len(order); stage++ {
		if err := w.WriteEntities(stage, r.entitySnapshot(m, bins, bots)); err != nil {
			return err
		}
		chunk, err := r.generateRobotPaths(m, order, &cur, bins, bots, binPaths, w, stage)
		if err != nil {
			return err
		}
		if r.Metrics != nil {
			r.Metrics.ChunkBinsMoved.Observe(float64(chunk))
		}
	}

	log.Info("solve finished", "run_id", runID, "stages", stage)
	return nil
}

// generateBinPaths runs the bin phase and returns each bin's planned path
// alongside the Sync that recorded the real graph's resulting bids — the
// Sync traversal.Resolve needs to compute the robot phase's order.
func (r *Router) generateBinPaths(bins, dst []*auction.Node) ([]auction.Path, *pathsync.Sync, error) {
	results, sy, err := r.planBinPhase(bins, dst)
	if err != nil {
		return nil, nil, err
	}

	paths := make([]auction.Path, len(bins))
	for i, res := range results {
		needsMove := len(dst) > i && dst[i] != bins[i]
		if !needsMove && res.Path.Trivial() {
			paths[i] = res.Path
			continue
		}
		if !acceptable(res, r.PlannerConfig.AllowIndefiniteBlock) {
			telemetry.Named("binrouter").Error("bin phase failed", "bin_id", i, "search_error", res.SearchError, "sync_error", res.SyncError)
			if r.Metrics != nil {
				r.Metrics.PlanFatal.WithLabelValues("bin").Inc()
			}
			return nil, nil, ErrGenerateBinPathsFail
		}
		paths[i] = res.Path
	}
	return paths, sy, nil
}

func (r *Router) planBinPhase(bins, dst []*auction.Node) ([]planner.Result, *pathsync.Sync, error) {
	requests := make([]planner.Request, len(bins))
	for i, b := range bins {
		d := []*auction.Node{b}
		if i < len(dst) && dst[i] != nil {
			d = []*auction.Node{dst[i]}
		}
		fallback := r.FallbackCost
		if len(d) == 1 && d[0] == b {
			fallback = r.BlockingFallbackCost
		}
		requests[i] = planner.Request{
			AgentID:        strconv.Itoa(i),
			Src:            []*auction.Node{b},
			Dst:            d,
			Duration:       r.PlannerConfig.Duration,
			Iterations:     r.Iterations,
			FallbackCost:   fallback,
			PriceIncrement: r.PlannerConfig.PriceIncrement,
			TravelTime:     r.customTravelTime,
		}
	}

	mpp := r.PlannerConfig.MultiPathPlanner()
	if r.Metrics != nil {
		r.Metrics.PlanRounds.Inc()
	}
	return mpp.Plan(requests)
}

// generateRobotPaths implements §4.6.2: it builds a scratch map, assigns
// up to len(bots) bins from order[*cur:] as pickup candidates, plans one
// robot Request per bot against the scratch graph, applies the results
// back onto the real bins/bots slices, and emits this chunk's CSV rows.
// It returns the number of bins moved in this chunk.
func (r *Router) generateRobotPaths(m *mapgen.Map, order []int, cur *int, bins, bots []*auction.Node, binPaths []auction.Path, w *csvtrace.Writer, stage int) (int, error) {
	log := telemetry.Named("binrouter")

	scratch, err := mapgen.Generate(r.MapGenConfig.Scratch())
	if err != nil {
		return 0, err
	}

	type delivery struct {
		binID   int
		realDst *auction.Node
	}
	destMap := make(map[*auction.Node]delivery)
	pickupCandidates := make([]*auction.Node, 0, len(bots))
	chunkBins := make([]int, 0, len(bots))

	for len(chunkBins) < len(bots) && *cur < len(order) {
		binID := order[*cur]
		*cur++
		chunkBins = append(chunkBins, binID)

		binPath := binPaths[binID]
		candidate := scratch.Graph.FindNode(binPath.Front().Node.Position)
		if candidate == nil {
			continue
		}
		pickupCandidates = append(pickupCandidates, candidate)
		destMap[candidate] = delivery{binID: binID, realDst: binPath.Back().Node}
	}

	requests := make([]planner.Request, len(bots))
	priceIncrement := r.PlannerConfig.PriceIncrement
	fallback := r.FallbackCost
	if len(pickupCandidates) < len(bots) {
		fallback /= 5
		priceIncrement *= 10
	}
	for i, bot := range bots {
		requests[i] = planner.Request{
			AgentID:        strconv.Itoa(i),
			Src:            []*auction.Node{scratch.Graph.FindNode(bot.Position)},
			Dst:            pickupCandidates,
			Duration:       r.PlannerConfig.Duration,
			Iterations:     r.Iterations,
			FallbackCost:   fallback,
			PriceIncrement: priceIncrement,
			TravelTime:     r.customTravelTime,
		}
	}

	mpp := r.PlannerConfig.MultiPathPlanner()
	if r.Metrics != nil {
		r.Metrics.PlanRounds.Inc()
	}
	results, _, err := mpp.Plan(requests)
	if err != nil {
		return 0, err
	}

	moved := 0
	for i, res := range results {
		if !acceptable(res, r.PlannerConfig.AllowIndefiniteBlock) {
			log.Error("robot phase failed", "robot_id", i, "search_error", res.SearchError, "sync_error", res.SyncError)
			if r.Metrics != nil {
				r.Metrics.PlanFatal.WithLabelValues("robot").Inc()
			}
			return moved, ErrGenerateRobotPathsFail
		}

		switch res.SearchError {
		case pathsearch.Success:
			if d, ok := destMap[res.Path.Back().Node]; ok {
				bots[i] = d.realDst
				bins[d.binID] = d.realDst
				moved++
			}
		case pathsearch.FallbackDiverted:
			if real := m.Graph.FindNode(res.Path.Back().Node.Position); real != nil {
				bots[i] = real
			}
		}

		if err := w.WritePath(stage, i, strconv.Itoa(i), res.Path, true); err != nil {
			return moved, err
		}
	}

	for _, binID := range chunkBins {
		if err := w.WritePath(stage, len(bots)+binID, strconv.Itoa(binID), binPaths[binID], false); err != nil {
			return moved, err
		}
	}

	log.Info("robot chunk planned", "stage", stage, "bins_requested", len(chunkBins), "bins_moved", moved)
	return moved, nil
}

// customTravelTime implements §4.6.1: a base adjacency or Manhattan cost
// plus an elevator_duration penalty for any hop that leaves an elevator
// node or crosses floors outside a matched elevator pair.
func (r *Router) customTravelTime(prev, cur, next *auction.Node) float64 {
	var base float64
	if prev != nil {
		base = 1.0
	} else {
		base = cur.Position.Manhattan2D(next.Position)
	}

	if cur.CustomData || !(next.CustomData || cur.Position.Z == next.Position.Z) {
		base += r.ElevatorDuration
	}
	return base
}

// entitySnapshot collects the current elevator/bin/bot positions as
// csvtrace.Entity rows. Elevator ids are stable across calls because
// m.Graph.Nodes() returns nodes in insertion order.
func (r *Router) entitySnapshot(m *mapgen.Map, bins, bots []*auction.Node) []csvtrace.Entity {
	entities := make([]csvtrace.Entity, 0, len(bins)+len(bots))
	elevatorID := 0
	for _, n := range m.Graph.Nodes() {
		if !n.CustomData {
			continue
		}
		entities = append(entities, csvtrace.Entity{Type: csvtrace.ElevatorType, ID: elevatorID, Node: n})
		elevatorID++
	}
	for i, n := range bins {
		entities = append(entities, csvtrace.Entity{Type: csvtrace.BinType, ID: i, Node: n})
	}
	for i, n := range bots {
		entities = append(entities, csvtrace.Entity{Type: csvtrace.RobotType, ID: i, Node: n})
	}
	return entities
}

// acceptable applies §4.6's "search_error > FALLBACK_DIVERTED or any
// sync_error" rule, treating RemainingDurationInfinite as tolerable only
// when the planner configuration allows indefinite blocking — the same
// leniency MultiPathPlanner itself applies in its satisfaction predicate.
func acceptable(res planner.Result, allowIndefiniteBlock bool) bool {
	if res.SearchError > pathsearch.FallbackDiverted {
		return false
	}
	switch res.SyncError {
	case pathsync.Success:
		return true
	case pathsync.RemainingDurationInfinite:
		return allowIndefiniteBlock
	default:
		return false
	}
}
