// Package core: parallel-edge multiplicity normalization.
package core

// WeightAttr is the attribute key Collapse writes the multiplicity into.
const WeightAttr = "weight"

// Collapse converts a multigraph into a simple graph by merging every group
// of parallel edges between one node pair into a single edge. The merged
// edge takes the attributes of the group's last (highest insertion order)
// edge, with WeightAttr set to the number of edges merged. Merged edges are
// ordered by the first appearance of their pair.
//
// This is irreversible: Promote after Collapse does not restore the
// original parallel structure. Collapse of a graph that is already simple
// returns a plain clone, so applying Collapse twice equals applying it once.
// Complexity: O(V + E).
func Collapse(g *Graph) *Graph {
	if !g.Multigraph() {
		return g.Clone()
	}

	out := New()
	out.directed = g.directed
	out.nodeOrder = make([]string, len(g.nodeOrder))
	copy(out.nodeOrder, g.nodeOrder)
	for id, a := range g.nodes {
		out.nodes[id] = a.Clone()
	}

	type group struct {
		last  *Edge
		count int
	}
	order := make([]pair, 0, len(g.edges))
	groups := make(map[pair]*group, len(g.edges))
	for _, e := range g.edges {
		k := g.key(e.From, e.To)
		grp, ok := groups[k]
		if !ok {
			grp = &group{}
			groups[k] = grp
			order = append(order, k)
		}
		grp.last = e
		grp.count++
	}

	for _, k := range order {
		grp := groups[k]
		attrs := grp.last.Attrs.Clone()
		attrs[WeightAttr] = grp.count
		i := len(out.edges)
		out.edges = append(out.edges, &Edge{From: grp.last.From, To: grp.last.To, Attrs: attrs})
		out.edgeIndex[out.key(grp.last.From, grp.last.To)] = append(out.edgeIndex[out.key(grp.last.From, grp.last.To)], i)
	}

	return out
}

// Promote converts a simple graph into a multigraph. This is a type-only
// promotion: no previously collapsed parallel structure is restored.
// Complexity: O(V + E).
func Promote(g *Graph) *Graph {
	out := g.Clone()
	out.allowParallel = true

	return out
}
