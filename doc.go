// Package swarmsim is an auction-based warehouse bin-relocation solver.
//
// A fleet of mobile robots must move a set of storage bins, on a
// multi-floor grid connected by elevators, to their requested positions.
// Each agent bids for the paths it wants against a shared graph; a
// planner runs repeated search/sync rounds until every agent is
// satisfied, stuck, or out of budget; and the result is traced to a CSV
// file describing every entity's position at every stage.
//
// Subpackages:
//
//	auction/    — the shared graph: nodes, bids, and the auction rules a
//	              path must win before it can be reserved
//	pathsearch/ — single-agent path search against the live bid-book
//	pathsync/   — commits a winning search result, detecting stale bids
//	              and blocked agents
//	planner/    — sequential and concurrent round-robin scheduling over
//	              many agents' searches
//	traversal/  — orders a set of already-planned moves by their bid
//	              dependencies
//	mapgen/     — generates the grid, elevators, bins, and robots a
//	              scenario solves over
//	csvtrace/   — writes the entity/path trace CSV wire format
//	binrouter/  — the two-phase (bins, then robots) solver built from
//	              the packages above
//
// cmd/swarmsim is the CLI entry point: it loads a YAML scenario, builds a
// binrouter.Router, and solves it.
package swarmsim
