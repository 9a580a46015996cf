// Package export: built-in adapter targeting gonum graphs.
package export

import (
	"errors"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/tempograph/core"
)

// GonumFormat is the registry name of the built-in gonum adapter.
const GonumFormat = "gonum"

// ErrSelfLoop indicates an edge gonum's builders cannot represent.
var ErrSelfLoop = errors.New("export: gonum target does not support self-loops")

// Node is the gonum node the adapter emits: a stable int64 ID assigned by
// node insertion order, keeping the original string identity on Name.
type Node struct {
	id   int64
	Name string
}

// ID implements graph.Node.
func (n Node) ID() int64 { return n.id }

func init() {
	// The built-in target is registered at package load; further formats
	// are added by callers through Register.
	_ = Register(GonumFormat, ToGonum)
}

// ToGonum converts a graph into the matching gonum type:
// simple.(Un)DirectedGraph for simple graphs, multi.(Un)DirectedGraph for
// multigraphs. The concrete return type follows the input's flags.
// Returns ErrSelfLoop for loops, which gonum's builders reject.
func ToGonum(g *core.Graph) (any, error) {
	ids := make(map[string]Node, g.Order())
	var nodes []Node
	for i, name := range g.Nodes() {
		n := Node{id: int64(i), Name: name}
		ids[name] = n
		nodes = append(nodes, n)
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			return nil, ErrSelfLoop
		}
	}

	switch {
	case g.Directed() && g.Multigraph():
		dst := multi.NewDirectedGraph()
		addNodes(dst, nodes)
		for _, e := range g.Edges() {
			dst.SetLine(dst.NewLine(ids[e.From], ids[e.To]))
		}

		return dst, nil
	case g.Directed():
		dst := simple.NewDirectedGraph()
		addNodes(dst, nodes)
		for _, e := range g.Edges() {
			dst.SetEdge(simple.Edge{F: ids[e.From], T: ids[e.To]})
		}

		return dst, nil
	case g.Multigraph():
		dst := multi.NewUndirectedGraph()
		addNodes(dst, nodes)
		for _, e := range g.Edges() {
			dst.SetLine(dst.NewLine(ids[e.From], ids[e.To]))
		}

		return dst, nil
	default:
		dst := simple.NewUndirectedGraph()
		addNodes(dst, nodes)
		for _, e := range g.Edges() {
			dst.SetEdge(simple.Edge{F: ids[e.From], T: ids[e.To]})
		}

		return dst, nil
	}
}

// addNodes seeds a gonum builder with every node up front so isolates
// survive the conversion.
func addNodes(dst interface{ AddNode(graph.Node) }, nodes []Node) {
	for _, n := range nodes {
		dst.AddNode(n)
	}
}
