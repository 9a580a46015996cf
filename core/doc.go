// Package core provides the attributed-graph handle that every other
// tempograph package builds on: a mutable, insertion-ordered multigraph
// with arbitrary key/value attributes on nodes and edges.
//
// What:
//
//   - Graph wraps one attributed graph (directed or undirected, simple or
//     multi-edge) with node/edge enumeration in insertion order.
//   - EdgeSubgraph produces snapshot views or independent copies restricted
//     to a chosen edge subset.
//   - Collapse / Promote normalize parallel-edge multiplicity when moving
//     between multigraph and simple-graph worlds.
//
// Why:
//
//   - Insertion order is significant: rank-based slicing and event
//     reconstruction both depend on the order edges were added.
//   - Views share attribute storage with their parent, so a whole snapshot
//     sequence over a large graph costs O(selected edges), not O(V+E) each.
//
// Mutability:
//
//   - A Graph created by New, Clone, or EdgeSubgraph(..., false) owns its
//     storage and may be mutated freely.
//   - A view (EdgeSubgraph(..., true)) shares Edge structs and node
//     attribute maps with its parent; every structural mutator rejects it
//     with ErrViewImmutable. Mutating the parent while holding a view is
//     the caller's responsibility.
//
// Errors:
//
//   - ErrEmptyNodeID: node ID is the empty string.
//   - ErrNodeNotFound: operation referenced a missing node.
//   - ErrEdgeNotFound: operation referenced a missing edge.
//   - ErrParallelNotAllowed: never returned by AddEdge (simple graphs
//     overwrite in place); reserved for callers that must reject duplicates.
//   - ErrViewImmutable: structural mutation attempted on a view.
package core
