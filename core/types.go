// Package core: central Graph, Edge, and Attrs types plus sentinel errors
// and the New constructor with its functional options.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrParallelNotAllowed indicates a parallel edge was rejected on a simple graph.
	ErrParallelNotAllowed = errors.New("core: parallel edges not allowed")

	// ErrViewImmutable indicates a structural mutation was attempted on a view.
	// Views share storage with their parent; only owned copies are mutable.
	ErrViewImmutable = errors.New("core: graph view is immutable")
)

// Attrs stores arbitrary key/value data attached to a node or an edge.
// Attribute maps are shared, not copied, by views; Clone deep-copies them.
type Attrs map[string]any

// Clone returns an independent shallow copy of the attribute map.
// Values are not deep-copied; attribute values are treated as immutable.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Edge is one connection between two nodes. Edges have no standalone ID:
// identity is the edge's position in the graph's insertion sequence, which
// is significant for rank-based binning and event reconstruction.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Attrs stores the edge's attributes (e.g. its temporal value).
	Attrs Attrs
}

// Option configures a Graph before creation.
type Option func(g *Graph)

// WithDirected makes every edge one-way From→To.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// WithParallelEdges permits parallel edges between the same node pair
// (a multigraph). Without it, re-adding an existing pair overwrites the
// stored attributes of that edge (last-write-wins).
func WithParallelEdges() Option {
	return func(g *Graph) { g.allowParallel = true }
}

// pair is the canonical (from, to) key used by the edge index.
// Undirected graphs normalize the pair so (b, a) and (a, b) collide.
type pair [2]string

// Graph is a mutable attributed graph: nodes with attribute maps and an
// insertion-ordered edge sequence. Zero value is not usable; construct
// with New, Clone, or EdgeSubgraph.
type Graph struct {
	directed      bool
	allowParallel bool

	// view marks a graph whose Edge structs and node attribute maps are
	// shared with a parent. Views reject structural mutation.
	view bool

	nodeOrder []string         // node IDs in insertion order
	nodes     map[string]Attrs // node ID → attributes

	edges     []*Edge        // insertion-ordered edge sequence
	edgeIndex map[pair][]int // canonical pair → indices into edges
}

// New creates an empty Graph. By default the graph is undirected and
// simple (no parallel edges). Complexity: O(1).
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes:     make(map[string]Attrs),
		edgeIndex: make(map[pair][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowParallel }

// IsView reports whether this graph shares storage with a parent graph.
func (g *Graph) IsView() bool { return g.view }

// key returns the canonical index key for a (from, to) pair, normalizing
// the order for undirected graphs.
func (g *Graph) key(from, to string) pair {
	if !g.directed && to < from {
		return pair{to, from}
	}

	return pair{from, to}
}

// sameOptions returns the Option set reproducing g's configuration.
func (g *Graph) sameOptions() []Option {
	opts := make([]Option, 0, 2)
	if g.directed {
		opts = append(opts, WithDirected())
	}
	if g.allowParallel {
		opts = append(opts, WithParallelEdges())
	}

	return opts
}
