package auction

import (
	"errors"
	"fmt"
)

// Sentinel errors for auction primitives.
var (
	// ErrNodeExists indicates InsertNode was called for a position already occupied.
	ErrNodeExists = errors.New("auction: node already exists at this position")

	// ErrNodeNotFound indicates a lookup referenced a position with no node.
	ErrNodeNotFound = errors.New("auction: node not found")

	// ErrNotNeighbors indicates an edge was requested between non-adjacent nodes.
	ErrNotNeighbors = errors.New("auction: nodes are not adjacent")
)

// NodeState classifies whether an agent may park or merely pass through a node.
//
// States are ordered: StateDefault < StateNoParking < StateNoStopping.
// Code that branches on "state.state >= NoParking" relies on this ordering.
type NodeState int

const (
	// StateDefault allows an agent to park and stop freely.
	StateDefault NodeState = iota
	// StateNoParking allows passing through but not ending a path here.
	StateNoParking
	// StateNoStopping forbids even momentary halts (e.g. elevator cells).
	StateNoStopping
)

// String renders a NodeState for logs and error messages.
func (s NodeState) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateNoParking:
		return "no_parking"
	case StateNoStopping:
		return "no_stopping"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Point is an integer-like 3D grid position: (x, y, z) where z is the floor.
type Point struct {
	X, Y, Z float64
}

// String renders a Point as "x,y,z" for logging and vertex-ID style output.
func (p Point) String() string {
	return fmt.Sprintf("%g,%g,%g", p.X, p.Y, p.Z)
}

// Manhattan2D returns the 2D Manhattan distance between p and q, ignoring Z.
func (p Point) Manhattan2D(q Point) float64 {
	return absF(p.X-q.X) + absF(p.Y-q.Y)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Node is a position in the shared graph. Position and CustomData are fixed
// at construction; Edges are appended by Graph.Link while the graph is
// built. Auction is mutated by pathsearch.Search.Iterate and by
// pathsync.Sync.UpdatePath.
type Node struct {
	Position Point
	State    NodeState

	// CustomData marks an elevator cell: a single physical node shared
	// across every floor at its (X, Y) column.
	CustomData bool

	// Edges lists the neighbors reachable in one traversal step.
	Edges []*Node

	// Auction is this node's price-ordered bid book.
	Auction *Auction
}

// NewNode constructs a Node at pos with the given state and custom-data flag.
// Edges and bids are populated after construction by Graph.Link and the
// planning components respectively.
func NewNode(pos Point, state NodeState, customData bool) *Node {
	return &Node{
		Position:   pos,
		State:      state,
		CustomData: customData,
		Auction:    newAuction(),
	}
}

// IsParkable reports whether an agent may end a path at this node.
func (n *Node) IsParkable() bool {
	return n.State < StateNoParking
}
