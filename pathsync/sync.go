package pathsync

import (
	"sync"

	"github.com/katalvlaran/swarmsim/auction"
)

// entry is the bookkeeping Sync keeps per agent.
type entry struct {
	path   auction.Path
	pathID uint64
}

// Sync is the authoritative per-agent path registry shared by every
// participant of a planning round. Collisions themselves are detected
// through the bids already present on each auction.Node — Sync does not
// duplicate that state, it only remembers which path an agent last
// committed and at which PathID, and reconciles bids when that path changes.
type Sync struct {
	mu     sync.RWMutex
	agents map[string]*entry
}

// New returns an empty Sync.
func New() *Sync {
	return &Sync{agents: make(map[string]*entry)}
}

// ClearPaths forgets every agent's committed path. It does not touch bids
// already placed on any graph, since a fresh planning round conventionally
// pairs ClearPaths with a freshly built graph.
func (s *Sync) ClearPaths() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents = make(map[string]*entry)
}

// UpdatePath commits path as agentID's current path under newPathID. It
// reconciles bid state with the path: nodes the agent no longer visits have their
// bid removed, and every node in the new path receives (or keeps) the
// agent's bid at its visit price. newPathID must be strictly greater than
// the agent's previously recorded PathID, or PathIDStale is returned and no
// state changes.
func (s *Sync) UpdatePath(agentID string, path auction.Path, newPathID uint64) Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.agents[agentID]
	if exists && newPathID <= e.pathID {
		return PathIDStale
	}

	old := make(map[*auction.Node]struct{})
	if exists {
		for _, v := range e.path {
			old[v.Node] = struct{}{}
		}
	}
	keep := make(map[*auction.Node]struct{}, len(path))
	for _, v := range path {
		keep[v.Node] = struct{}{}
	}
	for n := range old {
		if _, still := keep[n]; !still {
			n.Auction.Remove(agentID)
		}
	}
	for _, v := range path {
		v.Node.Auction.Place(agentID, v.Price)
	}

	if !exists {
		e = &entry{}
		s.agents[agentID] = e
	}
	e.path = path.Clone()
	e.pathID = newPathID

	return Success
}

// Path returns the last path committed for agentID and whether one exists.
func (s *Sync) Path(agentID string) (auction.Path, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.agents[agentID]
	if !ok {
		return nil, 0, false
	}
	return e.path.Clone(), e.pathID, true
}

// CheckWaitStatus reports whether agentID's current path is obstructed by
// rival bids and, if so, how far the path can still be walked unobstructed.
// blockedProgress is an index into the agent's path: reaching
// len(path) means the full path is collision-free. SourceNodeOutbid is
// returned instead when a rival now holds the lowest bid at the agent's own
// source node (index 0), since no progress is even possible from there.
// RemainingDurationInfinite is returned when the agent has fully and
// unobstructedly reached the back of its path but a rival also holds a bid
// there, meaning neither side will ever vacate the node on its own.
func (s *Sync) CheckWaitStatus(agentID string) (Error, int) {
	s.mu.RLock()
	e, ok := s.agents[agentID]
	s.mu.RUnlock()
	if !ok {
		return ErrUnknownAgent, 0
	}

	path := e.path
	if len(path) == 0 {
		return Success, 0
	}

	front := path[0]
	if lowest, ok := lowestBid(front.Node); ok && lowest.Bidder != agentID {
		return SourceNodeOutbid, 0
	}

	blocked := len(path)
	for i := 1; i < len(path); i++ {
		v := path[i]
		if rivalAhead(v.Node, agentID, v.Price) {
			blocked = i
			break
		}
	}

	if blocked == len(path) {
		back := path[len(path)-1]
		if hasRival(back.Node, agentID) {
			return RemainingDurationInfinite, blocked
		}
	}

	return Success, blocked
}

// lowestBid returns n's best (lowest-priced) bid, if any.
func lowestBid(n *auction.Node) (auction.Bid, bool) {
	bids := n.Auction.Bids()
	if len(bids) == 0 {
		return auction.Bid{}, false
	}
	return bids[0], true
}

// rivalAhead reports whether n carries a bid from a different agent priced
// strictly below price — a rival with priority to occupy the node first.
func rivalAhead(n *auction.Node, agentID string, price float64) bool {
	for _, b := range n.Auction.Bids() {
		if b.Bidder != agentID && b.Price < price {
			return true
		}
	}
	return false
}

// hasRival reports whether n carries any bid from a different agent.
func hasRival(n *auction.Node, agentID string) bool {
	for _, b := range n.Auction.Bids() {
		if b.Bidder != agentID {
			return true
		}
	}
	return false
}
