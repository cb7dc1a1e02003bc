package auction_test

import (
	"testing"

	"github.com/katalvlaran/swarmsim/auction"
	"github.com/stretchr/testify/require"
)

func TestGraphInsertAndFind(t *testing.T) {
	g := auction.NewGraph()

	n, err := g.InsertNode(auction.Point{X: 1, Y: 2, Z: 0}, auction.StateDefault, false)
	require.NoError(t, err)
	require.NotNil(t, n)

	found := g.FindNode(auction.Point{X: 1, Y: 2, Z: 0})
	require.Same(t, n, found)

	require.Nil(t, g.FindNode(auction.Point{X: 9, Y: 9, Z: 9}))
}

func TestGraphInsertNodeDuplicate(t *testing.T) {
	g := auction.NewGraph()
	pos := auction.Point{X: 0, Y: 0, Z: 0}

	_, err := g.InsertNode(pos, auction.StateDefault, false)
	require.NoError(t, err)

	_, err = g.InsertNode(pos, auction.StateDefault, false)
	require.ErrorIs(t, err, auction.ErrNodeExists)
}

func TestGraphLinkIsUndirectedAndIdempotent(t *testing.T) {
	g := auction.NewGraph()
	a, _ := g.InsertNode(auction.Point{X: 0, Y: 0, Z: 0}, auction.StateDefault, false)
	b, _ := g.InsertNode(auction.Point{X: 1, Y: 0, Z: 0}, auction.StateDefault, false)

	g.Link(a, b)
	g.Link(a, b)
	g.Link(b, a)

	require.Len(t, a.Edges, 1)
	require.Len(t, b.Edges, 1)
	require.Same(t, b, a.Edges[0])
	require.Same(t, a, b.Edges[0])
}

func TestGraphNodesReturnsAll(t *testing.T) {
	g := auction.NewGraph()
	_, _ = g.InsertNode(auction.Point{X: 0, Y: 0, Z: 0}, auction.StateDefault, false)
	_, _ = g.InsertNode(auction.Point{X: 1, Y: 0, Z: 0}, auction.StateDefault, false)

	require.Len(t, g.Nodes(), 2)
}

func TestNodeIsParkable(t *testing.T) {
	def := auction.NewNode(auction.Point{}, auction.StateDefault, false)
	noPark := auction.NewNode(auction.Point{}, auction.StateNoParking, false)
	noStop := auction.NewNode(auction.Point{}, auction.StateNoStopping, false)

	require.True(t, def.IsParkable())
	require.False(t, noPark.IsParkable())
	require.False(t, noStop.IsParkable())
}
