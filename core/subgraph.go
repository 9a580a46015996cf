// Package core: clones, views, and edge-induced subgraphs.
//
// A view shares Edge structs and node attribute maps with its parent and is
// structurally immutable; an owned copy duplicates everything and may be
// mutated freely. Clone of a view yields an owned copy.
package core

// Clone returns an independent deep copy of the graph: configuration,
// nodes, attribute maps, edges, and index. The copy is never a view.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := New(g.sameOptions()...)
	out.nodeOrder = make([]string, len(g.nodeOrder))
	copy(out.nodeOrder, g.nodeOrder)
	for id, a := range g.nodes {
		out.nodes[id] = a.Clone()
	}
	out.edges = make([]*Edge, len(g.edges))
	for i, e := range g.edges {
		out.edges[i] = &Edge{From: e.From, To: e.To, Attrs: e.Attrs.Clone()}
	}
	out.rebuildEdgeIndex()

	return out
}

// CloneEmpty returns a new mutable Graph with identical configuration and
// no nodes or edges. Complexity: O(1).
func (g *Graph) CloneEmpty() *Graph {
	return New(g.sameOptions()...)
}

// EdgeSubgraph returns a graph restricted to the edges at the given
// sequence indices (kept in the order given) plus their endpoints, in
// first-appearance order. Out-of-range indices are skipped.
//
// With asView true, the result shares Edge structs and node attribute maps
// with g and rejects structural mutation (ErrViewImmutable); with asView
// false, the result is an independent owned copy.
// Complexity: O(len(indices)).
func (g *Graph) EdgeSubgraph(indices []int, asView bool) *Graph {
	out := New(g.sameOptions()...)
	out.view = asView

	add := func(id string) {
		if _, ok := out.nodes[id]; ok {
			return
		}
		if asView {
			out.nodes[id] = g.nodes[id]
		} else {
			out.nodes[id] = g.nodes[id].Clone()
		}
		out.nodeOrder = append(out.nodeOrder, id)
	}

	for _, i := range indices {
		if i < 0 || i >= len(g.edges) {
			continue
		}
		e := g.edges[i]
		add(e.From)
		add(e.To)
		if asView {
			out.edges = append(out.edges, e)
		} else {
			out.edges = append(out.edges, &Edge{From: e.From, To: e.To, Attrs: e.Attrs.Clone()})
		}
	}
	out.rebuildEdgeIndex()

	return out
}

// NodeSubgraph returns a graph induced by the given node IDs: those nodes
// plus every edge whose endpoints are both kept. Unknown IDs are skipped.
// View semantics match EdgeSubgraph. Complexity: O(V + E).
func (g *Graph) NodeSubgraph(ids []string, asView bool) *Graph {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := g.nodes[id]; ok {
			keep[id] = struct{}{}
		}
	}
	indices := make([]int, 0, len(g.edges))
	for i, e := range g.edges {
		if _, okF := keep[e.From]; !okF {
			continue
		}
		if _, okT := keep[e.To]; !okT {
			continue
		}
		indices = append(indices, i)
	}
	out := g.EdgeSubgraph(indices, asView)

	// Re-attach kept nodes that have no incident edge, preserving the
	// parent's insertion order.
	for _, id := range g.nodeOrder {
		if _, ok := keep[id]; !ok {
			continue
		}
		if _, ok := out.nodes[id]; ok {
			continue
		}
		if asView {
			out.nodes[id] = g.nodes[id]
		} else {
			out.nodes[id] = g.nodes[id].Clone()
		}
		out.nodeOrder = append(out.nodeOrder, id)
	}

	return out
}
