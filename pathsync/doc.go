// Package pathsync stores the latest committed Path per agent and answers
// the two questions swarmsim's coordinator needs every round: "did my last
// replan actually win?" and "what is blocking me?"
//
// Sync owns the authoritative mapping from agent id to {Path, PathID}.
// UpdatePath commits bid state: it reconciles
// a node's Auction book so that the new path's visits carry exactly the
// caller's bid and nothing stale remains from the agent's previous path.
// PathID increases monotonically per agent; a caller racing against a
// fresher update receives PathIDStale.
//
// CheckWaitStatus walks an agent's current path in order and asks, at each
// node, "does a lower-priced rival bid block me here?" The first blocking
// node becomes BlockedProgress; reaching the end of the path unblocked
// means the agent has full, collision-free progress to its goal.
package pathsync
