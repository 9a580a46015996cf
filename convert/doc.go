// Package convert translates between the four canonical temporal-graph
// representations: snapshot sequence, static (flattened) graph, event
// stream, and unified (unrolled) single graph.
//
// What:
//
//   - ToStatic / FromStatic   — union of all snapshots ⇄ one-snapshot container.
//   - ToSnapshots / FromSnapshots — container ⇄ plain graph sequence, with
//     multigraph auto-detection on the way back in.
//   - ToEvents / FromEvents   — container ⇄ ordered Event sequence in three
//     encodings (stream points, signed deltas, duration spans).
//   - ToUnified / FromUnified — container ⇄ single graph of (node, time)
//     proxies with optional coupling edges.
//
// Lossiness:
//
//   - ToStatic merges dynamic node attributes (last-observed wins) and, on
//     simple graphs, repeated edge attributes (last-write-wins).
//   - Events drop node isolates and parallel multiplicity beyond presence.
//   - FromEvents on a pure stream (no removals) propagates every edge from
//     its first appearance to the end of the sequence — an edge that is
//     never closed is open everywhere after it appears.
//
// These are documented contracts; none of them is signaled as an error.
//
// Errors:
//
//   - ErrBadEventFormat, ErrBadCopyPolicy, ErrBadDelta: invalid configuration.
//   - ErrUnmatchedRemoval: a removal event with nothing open to remove.
//   - ErrNegativeSpan: a span event with a negative duration.
//   - ErrBadSign: a delta event whose sign is neither +1 nor -1.
//   - ErrBadProxyID: FromUnified met a node without a "_<time>" suffix.
package convert
