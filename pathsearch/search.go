package pathsearch

import (
	"math"

	"github.com/katalvlaran/swarmsim/auction"
)

// TravelTimeFunc computes the cost of moving from cur to next, given the
// previously visited node (nil if cur is the path's front). Implementations
// may ignore prev; BinRouter's customTravelTime uses it to detect elevator
// transitions.
type TravelTimeFunc func(prev, cur, next *auction.Node) float64

// Config configures a single agent's Search.
type Config struct {
	// AgentID identifies this search's bidder in every Auction it touches.
	AgentID string
	// PriceIncrement is added atop any existing bid when an agent must
	// outbid a rival claim to extend its path through a contested node.
	PriceIncrement float64
	// TravelTime computes the edge cost between consecutive visits.
	TravelTime TravelTimeFunc
}

// Search holds one agent's mutable search state: its destination set,
// duration cap, and a memoized cost-estimate cache invalidated by
// ResetCostEstimates.
type Search struct {
	cfg Config

	dst      map[*auction.Node]struct{}
	dstList  []*auction.Node
	duration float64

	costCache map[*auction.Node]float64
}

// New returns a Search configured per cfg. TravelTime defaults to a
// unit-cost function if cfg.TravelTime is nil.
func New(cfg Config) *Search {
	if cfg.TravelTime == nil {
		cfg.TravelTime = func(prev, cur, next *auction.Node) float64 { return 1.0 }
	}
	return &Search{cfg: cfg}
}

// AgentID returns the configured bidder identity.
func (s *Search) AgentID() string { return s.cfg.AgentID }

// SetDestinations installs the goal set and duration cap, and invalidates
// the cost-estimate cache (it is a function of the destination set).
func (s *Search) SetDestinations(dst []*auction.Node, duration float64) Error {
	if duration < 0 {
		return ErrInvalidConfig
	}

	s.dst = make(map[*auction.Node]struct{}, len(dst))
	s.dstList = make([]*auction.Node, 0, len(dst))
	for _, n := range dst {
		if n == nil {
			continue
		}
		if _, dup := s.dst[n]; dup {
			continue
		}
		s.dst[n] = struct{}{}
		s.dstList = append(s.dstList, n)
	}
	s.duration = duration
	s.costCache = nil

	return Success
}

// Destinations returns the current destination set.
func (s *Search) Destinations() []*auction.Node {
	out := make([]*auction.Node, len(s.dstList))
	copy(out, s.dstList)
	return out
}

// SelectSource picks the candidate with the lowest cost estimate to the
// destination set, breaking ties by ascending Position for determinism.
// Returns the zero Visit if candidates is empty.
func (s *Search) SelectSource(candidates []*auction.Node) auction.Visit {
	if len(candidates) == 0 {
		return auction.Visit{}
	}

	best := candidates[0]
	bestCost := s.estimate(best)
	for _, c := range candidates[1:] {
		cost := s.estimate(c)
		if cost < bestCost || (cost == bestCost && less(c.Position, best.Position)) {
			best, bestCost = c, cost
		}
	}
	return auction.Visit{Node: best, Price: 0, CostEstimate: bestCost}
}

// ResetCostEstimates invalidates the heuristic cache, forcing the next
// estimate() call to recompute it from the current destination set.
func (s *Search) ResetCostEstimates() {
	s.costCache = nil
}

// Iterate extends path by up to iterations hops toward the destination
// set, placing a bid at every newly visited node. If the destination set
// is reached, it returns Success. If the iteration budget is exhausted
// without a single hop being possible, it returns IterationsReached.
// Otherwise it truncates the path until its total price delta fits within
// fallbackCost and returns FallbackDiverted — truncation to the original
// source (cost 0) always satisfies a non-negative fallbackCost, so this
// path always succeeds.
func (s *Search) Iterate(path *auction.Path, iterations int, fallbackCost float64) Error {
	if path == nil || len(*path) == 0 {
		return ErrInvalidConfig
	}

	if len(s.dst) == 0 || s.atDestination(path.Back().Node) {
		s.holdBid(path, len(*path)-1)
		return Success
	}

	extensions := 0
	for i := 0; i < iterations; i++ {
		cur := path.Back()
		next := s.bestNeighbor(*path, cur.Node)
		if next == nil {
			break // dead end: no unvisited neighbor to extend through
		}

		var prev *auction.Node
		if len(*path) >= 2 {
			prev = (*path)[len(*path)-2].Node
		}
		tt := s.cfg.TravelTime(prev, cur.Node, next)
		price := s.bidPrice(next, cur.Price+tt)
		next.Auction.Place(s.cfg.AgentID, price)

		*path = append(*path, auction.Visit{Node: next, Price: price, CostEstimate: s.estimate(next)})
		extensions++

		if s.atDestination(next) {
			return Success
		}
	}

	if extensions == 0 && iterations <= 0 {
		return IterationsReached
	}

	s.truncateToFallback(path, fallbackCost)
	return FallbackDiverted
}

// atDestination reports whether n is one of the current destinations.
func (s *Search) atDestination(n *auction.Node) bool {
	_, ok := s.dst[n]
	return ok
}

// holdBid places (or refreshes) this agent's bid at the visit with index i,
// so the path's terminal claim stays registered even when no motion
// occurs this call.
func (s *Search) holdBid(path *auction.Path, i int) {
	if i < 0 || i >= len(*path) {
		return
	}
	v := (*path)[i]
	v.Node.Auction.Place(s.cfg.AgentID, v.Price)
}

// bidPrice computes the price this agent must offer at n to extend its
// path there: at least basePrice, and strictly above any existing rival
// bid by PriceIncrement so the new claim sorts to the top of the book.
func (s *Search) bidPrice(n *auction.Node, basePrice float64) float64 {
	bids := n.Auction.Bids()
	price := basePrice
	for _, b := range bids {
		if b.Bidder == s.cfg.AgentID {
			continue
		}
		if want := b.Price + s.cfg.PriceIncrement; want > price {
			price = want
		}
	}
	return price
}

// bestNeighbor returns the neighbor of cur with the lowest cost estimate
// that is not already present in path, or nil if none exists.
func (s *Search) bestNeighbor(path auction.Path, cur *auction.Node) *auction.Node {
	var best *auction.Node
	bestCost := math.Inf(1)
	for _, n := range cur.Edges {
		if path.IndexOf(n) >= 0 {
			continue
		}
		cost := s.estimate(n)
		if cost < bestCost || (cost == bestCost && best != nil && less(n.Position, best.Position)) {
			best, bestCost = n, cost
		}
	}
	return best
}

// truncateToFallback pops visits from the back of path until its total
// price delta (back.Price - front.Price) no longer exceeds fallbackCost.
// Popped nodes have their bid removed since the agent no longer claims
// them.
func (s *Search) truncateToFallback(path *auction.Path, fallbackCost float64) {
	for len(*path) > 1 {
		front := (*path)[0]
		back := (*path)[len(*path)-1]
		if back.Price-front.Price <= fallbackCost {
			return
		}
		back.Node.Auction.Remove(s.cfg.AgentID)
		*path = (*path)[:len(*path)-1]
	}
}

// estimate returns the cached hop-distance from n to the nearest
// destination, computing the full cache via a multi-source BFS from the
// destination set the first time it is needed after a reset.
func (s *Search) estimate(n *auction.Node) float64 {
	if len(s.dst) == 0 {
		return 0
	}
	if s.costCache == nil {
		s.costCache = bfsDistances(s.dstList)
	}
	if v, ok := s.costCache[n]; ok {
		return v
	}
	return math.Inf(1)
}

// bfsDistances computes hop distance from the nearest of sources to every
// node reachable from them.
func bfsDistances(sources []*auction.Node) map[*auction.Node]float64 {
	dist := make(map[*auction.Node]float64, len(sources))
	queue := make([]*auction.Node, 0, len(sources))
	for _, src := range sources {
		if _, seen := dist[src]; seen {
			continue
		}
		dist[src] = 0
		queue = append(queue, src)
	}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		d := dist[cur]
		for _, nb := range cur.Edges {
			if _, seen := dist[nb]; seen {
				continue
			}
			dist[nb] = d + 1
			queue = append(queue, nb)
		}
	}
	return dist
}

// less orders two positions lexicographically (x, then y, then z) for
// deterministic tie-breaking.
func less(a, b auction.Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
