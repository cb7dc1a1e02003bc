package csvtrace_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/swarmsim/auction"
	"github.com/katalvlaran/swarmsim/csvtrace"
	"github.com/stretchr/testify/require"
)

func TestWriterEmitsHeaderAndCRLF(t *testing.T) {
	var buf strings.Builder
	_, err := csvtrace.New(&buf)
	require.NoError(t, err)

	require.Equal(t, "stage,type,id,x,y,z,t\r\n", buf.String())
}

func TestWriteEntitiesEmitsZeroTime(t *testing.T) {
	var buf strings.Builder
	w, err := csvtrace.New(&buf)
	require.NoError(t, err)

	bin := auction.NewNode(auction.Point{X: 1, Y: 2, Z: 0}, auction.StateDefault, false)
	require.NoError(t, w.WriteEntities(0, []csvtrace.Entity{{Type: csvtrace.BinType, ID: 5, Node: bin}}))

	require.Contains(t, buf.String(), "0,1,5,1,2,0,0\r\n")
}

func TestWritePathEncodesRankAndSign(t *testing.T) {
	var buf strings.Builder
	w, err := csvtrace.New(&buf)
	require.NoError(t, err)

	a := auction.NewNode(auction.Point{X: 0, Y: 0, Z: 0}, auction.StateDefault, false)
	a.Auction.Place("rival", 0)
	a.Auction.Place("agent", 1) // agent's own bid sorts after rival's: rank 0

	path := auction.Path{{Node: a, Price: 1}}
	require.NoError(t, w.WritePath(2, 9, "agent", path, false))

	require.Contains(t, buf.String(), "2,3,9,0,0,0,0.25\r\n")
}

func TestWritePathNegatesTimeWhenUnder(t *testing.T) {
	var buf strings.Builder
	w, err := csvtrace.New(&buf)
	require.NoError(t, err)

	a := auction.NewNode(auction.Point{X: 0, Y: 0, Z: 0}, auction.StateDefault, false)
	a.Auction.Place("agent", 0)

	path := auction.Path{{Node: a, Price: 0}}
	require.NoError(t, w.WritePath(0, 1, "agent", path, true))

	require.Contains(t, buf.String(), "0,3,1,0,0,0,-0.25\r\n")
}

func TestWritePathDuplicatesElevatorVisit(t *testing.T) {
	var buf strings.Builder
	w, err := csvtrace.New(&buf)
	require.NoError(t, err)

	below := auction.NewNode(auction.Point{X: 0, Y: 0, Z: 0}, auction.StateDefault, false)
	elevator := auction.NewNode(auction.Point{X: 0, Y: 0, Z: 0}, auction.StateNoStopping, true)
	above := auction.NewNode(auction.Point{X: 0, Y: 0, Z: 1}, auction.StateDefault, false)
	elevator.Auction.Place("agent", 1)

	path := auction.Path{
		{Node: below, Price: 0},
		{Node: elevator, Price: 1},
		{Node: above, Price: 2},
	}
	require.NoError(t, w.WritePath(0, 1, "agent", path, false))

	out := buf.String()
	require.Contains(t, out, "0,3,1,0,0,0,") // elevator row at the floor below
	require.Contains(t, out, "0,3,1,0,0,1,") // elevator row at the floor above
}

func TestWriteBannerEmitsCommentLine(t *testing.T) {
	var buf strings.Builder
	w, err := csvtrace.New(&buf)
	require.NoError(t, err)

	require.NoError(t, w.WriteBanner("run=abc123"))
	require.Contains(t, buf.String(), "# run=abc123\r\n")
}
