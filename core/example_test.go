package core_test

import (
	"fmt"

	"github.com/katalvlaran/tempograph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Directed multigraph with a temporal attribute on each edge:
	g := core.New(core.WithDirected(), core.WithParallelEdges())
	g.AddEdge("a", "b", core.Attrs{"t": 0})
	g.AddEdge("c", "b", core.Attrs{"t": 1})
	g.AddEdge("c", "b", core.Attrs{"t": 1}) // parallel occurrence

	fmt.Println("order:", g.Order(), "size:", g.Size())
	fmt.Println("b→a exists?", g.HasEdge("b", "a"))

	// 2) Collapse parallel edges into weights:
	s := core.Collapse(g)
	e, _ := s.EdgeAt(1)
	fmt.Println("c→b weight:", e.Attrs[core.WeightAttr])

	// Output:
	// order: 3 size: 3
	// b→a exists? false
	// c→b weight: 2
}

// ExampleGraph_edgeSubgraph shows view-based snapshots sharing storage.
func ExampleGraph_edgeSubgraph() {
	g := core.New()
	g.AddEdge("a", "b", core.Attrs{"t": 0})
	g.AddEdge("b", "c", core.Attrs{"t": 1})

	view := g.EdgeSubgraph([]int{0}, true)
	fmt.Println("view:", view.Order(), "nodes,", view.Size(), "edge")
	_, err := view.AddEdge("x", "y", nil)
	fmt.Println("mutating a view:", err)

	// Output:
	// view: 2 nodes, 1 edge
	// mutating a view: core: graph view is immutable
}
