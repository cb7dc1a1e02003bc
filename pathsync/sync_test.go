package pathsync_test

import (
	"testing"

	"github.com/katalvlaran/swarmsim/auction"
	"github.com/katalvlaran/swarmsim/pathsync"
	"github.com/stretchr/testify/require"
)

func chain(n int) []*auction.Node {
	nodes := make([]*auction.Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = auction.NewNode(auction.Point{X: float64(i)}, auction.StateDefault, false)
	}
	for i := 0; i < n-1; i++ {
		nodes[i].Edges = append(nodes[i].Edges, nodes[i+1])
		nodes[i+1].Edges = append(nodes[i+1].Edges, nodes[i])
	}
	return nodes
}

func pathOver(nodes []*auction.Node, prices ...float64) auction.Path {
	p := make(auction.Path, len(nodes))
	for i, n := range nodes {
		p[i] = auction.Visit{Node: n, Price: prices[i]}
	}
	return p
}

func TestUpdatePathRejectsStaleID(t *testing.T) {
	nodes := chain(2)
	s := pathsync.New()

	require.Equal(t, pathsync.Success, s.UpdatePath("a", pathOver(nodes, 0, 1), 5))
	require.Equal(t, pathsync.PathIDStale, s.UpdatePath("a", pathOver(nodes, 0, 1), 5))
	require.Equal(t, pathsync.PathIDStale, s.UpdatePath("a", pathOver(nodes, 0, 1), 4))
}

func TestUpdatePathPlacesAndClearsBids(t *testing.T) {
	nodes := chain(3)
	s := pathsync.New()

	require.Equal(t, pathsync.Success, s.UpdatePath("a", pathOver(nodes[:2], 0, 1), 1))
	_, ok := nodes[0].Auction.BidderAt(0)
	require.True(t, ok)
	_, ok = nodes[1].Auction.BidderAt(1)
	require.True(t, ok)

	// Replan drops node 1, picks up node 2 instead.
	require.Equal(t, pathsync.Success, s.UpdatePath("a", auction.Path{
		{Node: nodes[0], Price: 0},
		{Node: nodes[2], Price: 2},
	}, 2))

	_, stillBidding := nodes[1].Auction.BidderAt(1)
	require.False(t, stillBidding, "agent should release its bid on a node it no longer visits")
	_, ok = nodes[2].Auction.BidderAt(2)
	require.True(t, ok)
}

func TestCheckWaitStatusUnobstructed(t *testing.T) {
	nodes := chain(3)
	s := pathsync.New()
	require.Equal(t, pathsync.Success, s.UpdatePath("a", pathOver(nodes, 0, 1, 2), 1))

	err, blocked := s.CheckWaitStatus("a")
	require.Equal(t, pathsync.Success, err)
	require.Equal(t, 3, blocked)
}

func TestCheckWaitStatusBlockedByCheaperRival(t *testing.T) {
	nodes := chain(3)
	s := pathsync.New()
	require.Equal(t, pathsync.Success, s.UpdatePath("a", pathOver(nodes, 0, 2, 4), 1))

	// A rival claims node 1 more cheaply than agent "a" does — blocks at index 1.
	nodes[1].Auction.Place("rival", 1)

	err, blocked := s.CheckWaitStatus("a")
	require.Equal(t, pathsync.Success, err)
	require.Equal(t, 1, blocked)
}

func TestCheckWaitStatusSourceNodeOutbid(t *testing.T) {
	nodes := chain(2)
	s := pathsync.New()
	require.Equal(t, pathsync.Success, s.UpdatePath("a", pathOver(nodes, 5, 6), 1))

	nodes[0].Auction.Place("rival", 0) // undercuts the agent's own source bid

	err, blocked := s.CheckWaitStatus("a")
	require.Equal(t, pathsync.SourceNodeOutbid, err)
	require.Equal(t, 0, blocked)
}

func TestCheckWaitStatusRemainingDurationInfinite(t *testing.T) {
	nodes := chain(1)
	s := pathsync.New()
	require.Equal(t, pathsync.Success, s.UpdatePath("a", pathOver(nodes, 0), 1))

	nodes[0].Auction.Place("rival", 1) // camping alongside at the same node

	err, blocked := s.CheckWaitStatus("a")
	require.Equal(t, pathsync.RemainingDurationInfinite, err)
	require.Equal(t, 1, blocked)
}

func TestCheckWaitStatusUnknownAgent(t *testing.T) {
	s := pathsync.New()
	err, blocked := s.CheckWaitStatus("ghost")
	require.Equal(t, pathsync.ErrUnknownAgent, err)
	require.Equal(t, 0, blocked)
}

func TestClearPathsForgetsAgents(t *testing.T) {
	nodes := chain(2)
	s := pathsync.New()
	require.Equal(t, pathsync.Success, s.UpdatePath("a", pathOver(nodes, 0, 1), 1))

	s.ClearPaths()

	_, _, ok := s.Path("a")
	require.False(t, ok)
	_, _, ok = s.Path("ghost")
	require.False(t, ok)
	require.Equal(t, pathsync.Success, s.UpdatePath("a", pathOver(nodes, 0, 1), 1), "path id counter resets with the agent map")
}
