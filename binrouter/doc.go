// Package binrouter implements the warehouse's two-phase bin routing
// solve: bins first plan a direct route to their requested destination
// (or stay put), then the traversal order those bin paths imply is walked
// in chunks, each chunk handing up to one bin per robot to a fresh
// robot-phase MultiPathPlanner run against a scratch, bid-free copy of the
// same map. The full run is traced to a CSV file via csvtrace.
package binrouter
