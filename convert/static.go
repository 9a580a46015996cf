// Package convert: snapshot-sequence ⇄ static (flattened) graph.
package convert

import (
	"github.com/katalvlaran/tempograph/core"
	"github.com/katalvlaran/tempograph/temporal"
)

// ToStatic flattens a container into a single graph: the union of all
// snapshot nodes (temporal-node identity, nodes are never duplicated) and
// all snapshot edges. On a simple graph, a (source, target) pair appearing
// in several snapshots keeps the attributes of the latest snapshot
// (last-write-wins); on a multigraph every occurrence becomes a parallel
// edge. Node attributes are merged per key with later snapshots winning —
// dynamic node attributes cannot survive flattening, which is the one
// documented lossy step of this direction.
//
// The result is an independent owned graph. Complexity: O(ΣV + ΣE).
func ToStatic(tg *temporal.Graph) *core.Graph {
	var opts []core.Option
	if tg.Directed() {
		opts = append(opts, core.WithDirected())
	}
	if tg.Multigraph() {
		opts = append(opts, core.WithParallelEdges())
	}
	out := core.New(opts...)

	for _, s := range tg.Snapshots() {
		for _, id := range s.Nodes() {
			// AddNode is idempotent; attribute merge is last-observed-wins.
			_ = out.AddNode(id)
			attrs, err := s.NodeAttrs(id)
			if err != nil {
				continue
			}
			for k, v := range attrs {
				_ = out.SetNodeAttr(id, k, v)
			}
		}
		for _, e := range s.Edges() {
			_, _ = out.AddEdge(e.From, e.To, e.Attrs.Clone())
		}
	}

	return out
}

// FromStatic wraps a single graph in a one-snapshot container labeled "0".
// The snapshot aliases the input graph; Clone the input first when an
// independent container is needed.
func FromStatic(g *core.Graph) *temporal.Graph {
	var opts []temporal.Option
	if g.Directed() {
		opts = append(opts, temporal.WithDirected())
	}
	if g.Multigraph() {
		opts = append(opts, temporal.WithParallelEdges())
	}
	tg := temporal.New(opts...)
	_ = tg.Append(g, "0")

	return tg
}
