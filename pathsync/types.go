package pathsync

import "fmt"

// Error reports the outcome of a Sync operation. Unlike pathsearch.Error,
// callers compare these by equality, not by threshold — see
// planner.MultiPathPlanner's satisfaction predicate.
type Error int

const (
	// Success indicates the operation completed with no contention the
	// caller must react to.
	Success Error = iota
	// RemainingDurationInfinite indicates the agent's path is valid and
	// parked at its goal, but another agent also wants that node
	// indefinitely — a stable "camping" standoff rather than a true block.
	RemainingDurationInfinite
	// SourceNodeOutbid indicates a different agent now holds the lowest
	// bid at the agent's own source node; the caller must pick a new
	// source before replanning further.
	SourceNodeOutbid
	// PathIDStale indicates UpdatePath was called with a path_id that is
	// not strictly greater than the last one recorded for this agent.
	PathIDStale
	// ErrUnknownAgent indicates CheckWaitStatus was asked about an agent
	// with no path on record; a structural caller error.
	ErrUnknownAgent
)

// String renders an Error for logs and test failure messages.
func (e Error) String() string {
	switch e {
	case Success:
		return "success"
	case RemainingDurationInfinite:
		return "remaining_duration_infinite"
	case SourceNodeOutbid:
		return "source_node_outbid"
	case PathIDStale:
		return "path_id_stale"
	case ErrUnknownAgent:
		return "unknown_agent"
	default:
		return fmt.Sprintf("error(%d)", int(e))
	}
}

// Error implements the error interface.
func (e Error) Error() string {
	return "pathsync: " + e.String()
}
