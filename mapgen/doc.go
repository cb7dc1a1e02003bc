// Package mapgen builds the warehouse topology swarmsim plans over: a 3D
// grid of floors, each wired as a 2D orthogonal grid, with designated
// elevator columns sharing one physical auction.Node across every floor.
//
// Generate is deterministic for a fixed Config.Seed: vertex and edge
// emission follow row-major order per floor (grounded on
// builder.Grid's fixed "r,c" traversal), and bin/bot sampling draws from a
// seeded math/rand.Rand the same way builder.WithSeed feeds RandomSparse.
//
// A "scratch" map (NBins=0, NBots=0) builds the same topology with no bids
// and no sampled entities — binrouter's robot phase uses one per chunk so
// robot-phase planning never touches the bin phase's bid state.
package mapgen
