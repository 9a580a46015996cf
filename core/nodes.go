// Package core: node management on the Graph type.
package core

// AddNode inserts a node with an empty attribute map.
// Idempotent: re-adding an existing node is a no-op and keeps its attributes.
// Returns ErrEmptyNodeID or ErrViewImmutable. Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if g.view {
		return ErrViewImmutable
	}
	if _, exists := g.nodes[id]; exists {
		return nil
	}
	g.nodes[id] = make(Attrs)
	g.nodeOrder = append(g.nodeOrder, id)

	return nil
}

// HasNode reports whether a node with the given ID exists. Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// NodeAttrs returns the live attribute map of a node. Mutating the returned
// map mutates the graph (and, for views, the parent graph).
func (g *Graph) NodeAttrs(id string) (Attrs, error) {
	a, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return a, nil
}

// PutNode inserts a node adopting the given attribute map as-is (shared,
// not copied). The map of an existing node is replaced wholesale. A nil
// map is replaced by an empty one.
// Returns ErrEmptyNodeID or ErrViewImmutable. Complexity: O(1) amortized.
func (g *Graph) PutNode(id string, attrs Attrs) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if g.view {
		return ErrViewImmutable
	}
	if attrs == nil {
		attrs = make(Attrs)
	}
	if _, exists := g.nodes[id]; !exists {
		g.nodeOrder = append(g.nodeOrder, id)
	}
	g.nodes[id] = attrs

	return nil
}

// SetNodeAttr sets one attribute on an existing node.
// Returns ErrNodeNotFound; views are allowed to set attributes only on
// owned copies, so ErrViewImmutable applies here too.
func (g *Graph) SetNodeAttr(id, key string, value any) error {
	if g.view {
		return ErrViewImmutable
	}
	a, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	a[key] = value

	return nil
}

// RemoveNode deletes the node and every incident edge.
// Returns ErrEmptyNodeID, ErrNodeNotFound, or ErrViewImmutable.
// Complexity: O(V + E) (the edge sequence and index are rebuilt).
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if g.view {
		return ErrViewImmutable
	}
	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
	g.rebuildEdgeIndex()

	delete(g.nodes, id)
	for i, n := range g.nodeOrder {
		if n == id {
			g.nodeOrder = append(g.nodeOrder[:i], g.nodeOrder[i+1:]...)
			break
		}
	}

	return nil
}

// Nodes returns all node IDs in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// Order returns the number of nodes. Complexity: O(1).
func (g *Graph) Order() int { return len(g.nodes) }

// Degree returns the number of edge endpoints incident to id
// (self-loops count twice). Returns ErrNodeNotFound. Complexity: O(E).
func (g *Graph) Degree(id string) (int, error) {
	if _, ok := g.nodes[id]; !ok {
		return 0, ErrNodeNotFound
	}
	deg := 0
	for _, e := range g.edges {
		if e.From == id {
			deg++
		}
		if e.To == id {
			deg++
		}
	}

	return deg, nil
}
