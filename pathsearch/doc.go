// Package pathsearch implements the single-agent, auction-aware path
// search that swarmsim's planning layer drives once per replan.
//
// A Search owns a destination set, a duration cap, and a memoized
// cost-estimate cache over auction.Node. Iterate extends a Path one hop
// at a time, choosing the neighbor with the lowest cached cost estimate
// to the destination set, placing a bid at each visited node so other
// agents can discover the claim through the node's Auction. When the
// iteration budget or the graph topology prevents reaching a destination,
// Iterate diverts: it truncates the path until its total price delta fits
// within the caller's fallback_cost, so the agent always has a path it
// can legally hold even under contention.
//
// Errors form a total order so callers can threshold-compare them:
//
//	Success < FallbackDiverted < IterationsReached < (fatal errors)
//
// Any error above FallbackDiverted signals the caller (planner.PathPlanner)
// to invalidate its cost cache and retry; any error above IterationsReached
// is fatal and aborts the owning MultiPathPlanner round loop.
package pathsearch
