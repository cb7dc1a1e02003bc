// Package planner turns pathsearch.Search and pathsync.Sync into the
// round-based coordination protocol swarmsim's agents run every tick.
//
// PathPlanner wraps a single agent's Search and its currently committed
// Path, exposing Plan (first-time destination setup) and Replan (pick a
// fresh source, truncate the stale prefix, iterate again).
//
// MultiPathPlanner drives N PathPlanners through up to Rounds rounds of
// replan → sync → check, either on one goroutine (the sequential
// algorithm) or across a bounded worker pool (the parallel algorithm, built
// on golang.org/x/sync/errgroup for goroutine lifecycle around a
// sync.RWMutex-guarded countdown). Both algorithms apply the same
// satisfaction predicate to decide when every agent has either reached its
// goal or is blocked in an acceptable way.
package planner
