// Package traversal orders blocked bin moves by dependency using the final
// Sync from the bin-path planning phase.
//
// Resolve runs an iterative, explicit-stack DFS with a two-visit scheme: an
// agent id is pushed once to discover its dependencies (when its path is
// blocked, the rivals holding the next-higher bid on each node along its
// path) and a second time, on pop, to
// emit it — by then every dependency it pushed has already been resolved
// and emitted (or was already on the stack and will be). Agents whose path
// needs no motion are filtered from the output.
package traversal
