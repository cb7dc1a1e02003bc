package traversal

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/swarmsim/pathsync"
)

// maxVisitCount saturates visit bookkeeping at 255, matching the uint8
// counter §4.5 specifies.
const maxVisitCount = 255

// Resolve returns agentIDs in a dependency-respecting order: an id whose
// path is blocked (a rival bids lower on one of its nodes) is preceded by
// the ids holding the next-higher bid above its own at each node of its
// path, transitively. Agents needing no motion (trivial paths) are omitted.
func Resolve(sync *pathsync.Sync, agentIDs []int) []int {
	sorted := append([]int(nil), agentIDs...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	stack := make([]int, 0, 2*len(agentIDs))
	stack = append(stack, sorted...)

	visitCount := make(map[int]uint8, len(agentIDs))
	output := make([]int, 0, len(agentIDs))

	for len(stack) > 0 {
		i := stack[len(stack)-1]

		if visitCount[i] > 0 {
			stack = stack[:len(stack)-1]
		} else {
			pushDependencies(sync, i, visitCount, &stack)
		}

		path, _, _ := sync.Path(strconv.Itoa(i))
		if visitCount[i] == 1 && len(path) > 1 {
			output = append(output, i)
		}
		if visitCount[i] < maxVisitCount {
			visitCount[i]++
		}
	}

	return output
}

// pushDependencies pushes, for agent i's current path walked back-to-front,
// the bidder holding the next-higher bid above each visit's price — the
// agents i is waiting behind — provided i is actually blocked and the
// dependency has not yet had its first visit.
func pushDependencies(sync *pathsync.Sync, i int, visitCount map[int]uint8, stack *[]int) {
	path, _, ok := sync.Path(strconv.Itoa(i))
	if !ok {
		return
	}

	_, blocked := sync.CheckWaitStatus(strconv.Itoa(i))
	if blocked >= len(path) {
		return
	}

	for j := len(path) - 1; j >= 0; j-- {
		v := path[j]
		higher, hasHigher := v.Node.Auction.HigherBid(v.Price)
		if !hasHigher {
			continue
		}
		d, err := strconv.Atoi(higher.Bidder)
		if err != nil {
			continue
		}
		if visitCount[d] == 0 {
			*stack = append(*stack, d)
		}
	}
}
