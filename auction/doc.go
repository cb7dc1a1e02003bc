// Package auction defines the shared Graph, Node, and Auction primitives
// that every planning component in swarmsim reads and mutates.
//
// A Node is an immutable position in 3D space with an adjacency list, a
// parking state, an elevator marker, and an Auction: a price-ordered bid
// book that coordinates priority between competing agents. Agents never
// reference each other directly; they place Bids on Nodes and other
// agents discover them by walking the bid book.
//
// Ownership:
//
//   - Graph owns its Nodes for the lifetime of a solve call.
//   - Nodes are read-only except for their Auction, which is mutated by
//     pathsearch.Search.Iterate (bids placed and withdrawn while a path is
//     extended) and by pathsync.Sync.UpdatePath (bids reconciled when a
//     path is committed).
//
// Concurrency: Graph topology (nodes, edges) is never mutated after
// construction and is safe for concurrent readers. Each Node's Auction
// carries its own sync.RWMutex guarding its bid book against concurrent
// readers and writers.
package auction
