// Package core: edge management on the Graph type.
//
// Edges live in one insertion-ordered sequence; the edgeIndex maps each
// canonical (from, to) pair to the indices of its occurrences so HasEdge
// and overwrite-on-duplicate stay O(1).
package core

// AddEdge appends an edge from 'from' to 'to' carrying the given attributes
// and returns its index in the edge sequence. Missing endpoints are added
// automatically. On a simple graph, adding an existing pair does not append:
// the stored edge's attributes are replaced in place (last-write-wins) and
// its original index is returned.
// Returns ErrEmptyNodeID or ErrViewImmutable. Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, attrs Attrs) (int, error) {
	if from == "" || to == "" {
		return 0, ErrEmptyNodeID
	}
	if g.view {
		return 0, ErrViewImmutable
	}
	if attrs == nil {
		attrs = make(Attrs)
	}
	if err := g.AddNode(from); err != nil {
		return 0, err
	}
	if err := g.AddNode(to); err != nil {
		return 0, err
	}

	k := g.key(from, to)
	if !g.allowParallel {
		if idxs := g.edgeIndex[k]; len(idxs) > 0 {
			i := idxs[0]
			g.edges[i].Attrs = attrs

			return i, nil
		}
	}

	i := len(g.edges)
	g.edges = append(g.edges, &Edge{From: from, To: to, Attrs: attrs})
	g.edgeIndex[k] = append(g.edgeIndex[k], i)

	return i, nil
}

// HasEdge reports whether at least one edge between from and to exists
// (in either orientation for undirected graphs). Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	return len(g.edgeIndex[g.key(from, to)]) > 0
}

// EdgeAt returns the edge stored at the given sequence index.
func (g *Graph) EdgeAt(i int) (*Edge, error) {
	if i < 0 || i >= len(g.edges) {
		return nil, ErrEdgeNotFound
	}

	return g.edges[i], nil
}

// EdgesBetween returns the sequence indices of every edge between from and
// to, in insertion order. Empty when no such edge exists. Complexity: O(k).
func (g *Graph) EdgesBetween(from, to string) []int {
	idxs := g.edgeIndex[g.key(from, to)]
	out := make([]int, len(idxs))
	copy(out, idxs)

	return out
}

// RemoveEdge deletes the most recently added edge between from and to.
// Returns ErrEdgeNotFound or ErrViewImmutable.
// Complexity: O(E) (the index is rebuilt after compaction).
func (g *Graph) RemoveEdge(from, to string) error {
	if g.view {
		return ErrViewImmutable
	}
	idxs := g.edgeIndex[g.key(from, to)]
	if len(idxs) == 0 {
		return ErrEdgeNotFound
	}

	return g.RemoveEdgeAt(idxs[len(idxs)-1])
}

// RemoveEdgeAt deletes the edge at the given sequence index. Later edges
// shift down by one. Returns ErrEdgeNotFound or ErrViewImmutable.
// Complexity: O(E).
func (g *Graph) RemoveEdgeAt(i int) error {
	if g.view {
		return ErrViewImmutable
	}
	if i < 0 || i >= len(g.edges) {
		return ErrEdgeNotFound
	}
	g.edges = append(g.edges[:i], g.edges[i+1:]...)
	g.rebuildEdgeIndex()

	return nil
}

// Edges returns the edge sequence in insertion order. The slice is a copy;
// the *Edge values are the live structs. Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Size returns the number of edges. Complexity: O(1).
func (g *Graph) Size() int { return len(g.edges) }

// rebuildEdgeIndex recomputes edgeIndex from the edge sequence.
func (g *Graph) rebuildEdgeIndex() {
	g.edgeIndex = make(map[pair][]int, len(g.edges))
	for i, e := range g.edges {
		k := g.key(e.From, e.To)
		g.edgeIndex[k] = append(g.edgeIndex[k], i)
	}
}
