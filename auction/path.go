package auction

// Visit is one step of a Path: the node visited, the price the occupying
// agent bid there, and the search's cost estimate at the time of visit.
type Visit struct {
	Node         *Node
	Price        float64
	CostEstimate float64
}

// Path is an ordered sequence of Visits. The front is the agent's current
// source; the back is its current destination or fallback divert point. A
// Path of length < 2 means no motion is required.
type Path []Visit

// Front returns the first visit, or the zero Visit if the path is empty.
func (p Path) Front() Visit {
	if len(p) == 0 {
		return Visit{}
	}
	return p[0]
}

// Back returns the last visit, or the zero Visit if the path is empty.
func (p Path) Back() Visit {
	if len(p) == 0 {
		return Visit{}
	}
	return p[len(p)-1]
}

// Trivial reports whether this path represents no motion (length < 2).
func (p Path) Trivial() bool {
	return len(p) < 2
}

// IndexOf returns the index of the first visit at n, or -1 if n does not
// appear in the path.
func (p Path) IndexOf(n *Node) int {
	for i, v := range p {
		if v.Node == n {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}
