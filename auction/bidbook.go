package auction

import "sync"

// Bid is a (price, bidder) pair owned by one agent at one node.
type Bid struct {
	Price  float64
	Bidder string
}

// Auction is a price-ordered bid book attached to a single Node. Bids are
// kept sorted ascending by price; at most one bid per bidder is retained,
// enforced by Place.
//
// The "second-lowest" bid (SecondLowest) skips the implicit minimum
// baseline bid and returns the next entry — this is the §9 Open Question
// resolution the stale-fallback clause in planner.MultiPathPlanner relies
// on: "second entry, not first."
type Auction struct {
	mu    sync.RWMutex
	bids  []Bid // kept sorted ascending by Price
	index map[string]int
}

func newAuction() *Auction {
	return &Auction{index: make(map[string]int)}
}

// Bids returns a copy of the bid book, ascending by price.
func (a *Auction) Bids() []Bid {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]Bid, len(a.bids))
	copy(out, a.bids)
	return out
}

// Bid returns the bid at exactly price, if one exists.
func (a *Auction) Bid(price float64) (Bid, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	i := a.search(price)
	if i < len(a.bids) && a.bids[i].Price == price {
		return a.bids[i], true
	}
	return Bid{}, false
}

// HigherBid returns the lowest-priced bid strictly greater than price, if any.
func (a *Auction) HigherBid(price float64) (Bid, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	i := a.search(price)
	for i < len(a.bids) && a.bids[i].Price <= price {
		i++
	}
	if i < len(a.bids) {
		return a.bids[i], true
	}
	return Bid{}, false
}

// SecondLowest returns the second entry in the bid book (index 1), skipping
// the implicit minimum baseline bid at index 0. Returns false if fewer than
// two bids exist.
func (a *Auction) SecondLowest() (Bid, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if len(a.bids) < 2 {
		return Bid{}, false
	}
	return a.bids[1], true
}

// BidderAt reports the bidder (if any) holding exactly price.
func (a *Auction) BidderAt(price float64) (string, bool) {
	b, ok := a.Bid(price)
	if !ok {
		return "", false
	}
	return b.Bidder, true
}

// Place inserts or replaces bidder's bid at price. Any prior bid held by
// bidder at this node is removed first, preserving the "at most one bid
// per agent" invariant.
func (a *Auction) Place(bidder string, price float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.removeLocked(bidder)
	i := a.search(price)
	a.bids = append(a.bids, Bid{})
	copy(a.bids[i+1:], a.bids[i:])
	a.bids[i] = Bid{Price: price, Bidder: bidder}
	a.reindexLocked()
}

// Remove deletes bidder's bid from this node, if present.
func (a *Auction) Remove(bidder string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.removeLocked(bidder)
}

func (a *Auction) removeLocked(bidder string) {
	i, ok := a.index[bidder]
	if !ok {
		return
	}
	a.bids = append(a.bids[:i], a.bids[i+1:]...)
	a.reindexLocked()
}

func (a *Auction) reindexLocked() {
	for k := range a.index {
		delete(a.index, k)
	}
	for i, b := range a.bids {
		a.index[b.Bidder] = i
	}
}

// search returns the insertion index for price via binary search.
func (a *Auction) search(price float64) int {
	lo, hi := 0, len(a.bids)
	for lo < hi {
		mid := (lo + hi) / 2
		if a.bids[mid].Price < price {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
