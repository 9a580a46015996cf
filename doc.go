// Package tempograph is a convenience layer for graphs that change over
// time: slice a static graph into temporal snapshots, move freely between
// the canonical temporal representations, and hand the result to whatever
// analysis stack you already use.
//
// 🚀 What is tempograph?
//
//	A small, focused library that brings together:
//		• Core primitives: attributed graphs, simple or multi, directed or not
//		• Containers: an ordered, labeled sequence of type-consistent snapshots
//		• Slicing: bin a graph into snapshots by edge order or any numeric
//		  attribute — distinct values, equal-width intervals, quantiles, ranks
//		• Conversion: snapshots ⇄ static graph ⇄ event stream ⇄ unified
//		  (time-unrolled) graph
//		• Normalization: collapse parallel edges into weighted simple edges
//		• Interop: gonum adapters and a YAML serialization of containers
//
// ✨ Why choose tempograph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit contracts – every lossy conversion documents what it drops
//   - Cheap by default – slices are views; copies only when you ask
//   - Extensible – register your own export adapters for custom targets
//
// Under the hood, everything is organized under six subpackages:
//
//	core/     — the Graph type: nodes, edges, attributes, subgraph views
//	temporal/ — the snapshot container and its aggregate accessors
//	slice/    — the Slicer: binning policies over edges or endpoints
//	convert/  — static, event-stream, and unified representation converters
//	export/   — adapter registry + the built-in gonum target
//	graphio/  — YAML read/write of containers
//
// Quick ASCII example:
//
//	t=0      t=1       t=2
//	A───B    A───B     B
//	         │         │
//	         C         C───D
//
//	three snapshots of one evolving graph: slice them out of a single
//	attributed graph, or replay them as an event stream.
//
// Analysis itself (centrality, paths, communities) is deliberately out of
// scope — export to gonum and run it there.
//
//	go get github.com/katalvlaran/tempograph
package tempograph
