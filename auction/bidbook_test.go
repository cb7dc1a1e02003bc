package auction_test

import (
	"testing"

	"github.com/katalvlaran/swarmsim/auction"
	"github.com/stretchr/testify/require"
)

func TestAuctionPlaceOrdersByPrice(t *testing.T) {
	a := auction.NewNode(auction.Point{}, auction.StateDefault, false).Auction

	a.Place("bravo", 3.0)
	a.Place("alpha", 1.0)
	a.Place("charlie", 2.0)

	bids := a.Bids()
	require.Len(t, bids, 3)
	require.Equal(t, []string{"alpha", "charlie", "bravo"}, bidderNames(bids))
}

func TestAuctionPlaceReplacesOwnBid(t *testing.T) {
	a := auction.NewNode(auction.Point{}, auction.StateDefault, false).Auction

	a.Place("alpha", 1.0)
	a.Place("alpha", 5.0)

	bids := a.Bids()
	require.Len(t, bids, 1, "placing a second bid for the same bidder must replace, not append")
	require.Equal(t, 5.0, bids[0].Price)
}

func TestAuctionRemove(t *testing.T) {
	a := auction.NewNode(auction.Point{}, auction.StateDefault, false).Auction

	a.Place("alpha", 1.0)
	a.Place("bravo", 2.0)
	a.Remove("alpha")

	bids := a.Bids()
	require.Len(t, bids, 1)
	require.Equal(t, "bravo", bids[0].Bidder)
}

func TestAuctionHigherBid(t *testing.T) {
	a := auction.NewNode(auction.Point{}, auction.StateDefault, false).Auction
	a.Place("alpha", 1.0)
	a.Place("bravo", 2.0)
	a.Place("charlie", 3.0)

	higher, ok := a.HigherBid(2.0)
	require.True(t, ok)
	require.Equal(t, "charlie", higher.Bidder)

	_, ok = a.HigherBid(3.0)
	require.False(t, ok, "no bid strictly above the highest price")
}

func TestAuctionSecondLowestSkipsBaseline(t *testing.T) {
	a := auction.NewNode(auction.Point{}, auction.StateDefault, false).Auction

	_, ok := a.SecondLowest()
	require.False(t, ok, "fewer than two bids means no second-lowest")

	a.Place("alpha", 1.0)
	_, ok = a.SecondLowest()
	require.False(t, ok)

	a.Place("bravo", 2.0)
	a.Place("charlie", 3.0)
	second, ok := a.SecondLowest()
	require.True(t, ok)
	require.Equal(t, "bravo", second.Bidder, "second-lowest must skip the baseline bid at index 0")
}

func TestAuctionBidExactMatch(t *testing.T) {
	a := auction.NewNode(auction.Point{}, auction.StateDefault, false).Auction
	a.Place("alpha", 1.5)

	b, ok := a.Bid(1.5)
	require.True(t, ok)
	require.Equal(t, "alpha", b.Bidder)

	_, ok = a.Bid(9.9)
	require.False(t, ok)
}

func bidderNames(bids []auction.Bid) []string {
	names := make([]string, len(bids))
	for i, b := range bids {
		names[i] = b.Bidder
	}
	return names
}
