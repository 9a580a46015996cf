// Package temporal: the snapshot container type, its constructor, and
// snapshot list management.
package temporal

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/tempograph/core"
)

// Sentinel errors for container operations.
var (
	// ErrMixedDirectedness indicates a snapshot whose directedness conflicts
	// with the container's declared type.
	ErrMixedDirectedness = errors.New("temporal: mixed directed and undirected snapshots")

	// ErrMixedMultiplicity indicates a snapshot whose parallel-edge capability
	// conflicts with the container's declared type.
	ErrMixedMultiplicity = errors.New("temporal: mixed multigraph and simple snapshots")

	// ErrDuplicateName indicates a snapshot label that is already in use.
	ErrDuplicateName = errors.New("temporal: duplicate snapshot name")

	// ErrSnapshotIndex indicates a snapshot index out of range.
	ErrSnapshotIndex = errors.New("temporal: snapshot index out of range")

	// ErrSnapshotName indicates no snapshot carries the requested label.
	ErrSnapshotName = errors.New("temporal: snapshot name not found")
)

// Option configures a container before creation.
type Option func(tg *Graph)

// WithDirected declares the container (and every snapshot) directed.
func WithDirected() Option {
	return func(tg *Graph) { tg.directed = true }
}

// WithParallelEdges declares the container (and every snapshot) a multigraph.
func WithParallelEdges() Option {
	return func(tg *Graph) { tg.allowParallel = true }
}

// Graph is an ordered sequence of snapshot graphs with parallel labels.
// All snapshots share the container's directedness and multiplicity.
type Graph struct {
	directed      bool
	allowParallel bool

	snapshots []*core.Graph
	names     []string
	nameIndex map[string]int
}

// New creates an empty container. By default it is undirected and simple.
// Complexity: O(1).
func New(opts ...Option) *Graph {
	tg := &Graph{nameIndex: make(map[string]int)}
	for _, opt := range opts {
		opt(tg)
	}

	return tg
}

// Directed reports whether snapshots are directed.
func (tg *Graph) Directed() bool { return tg.directed }

// Multigraph reports whether snapshots permit parallel edges.
func (tg *Graph) Multigraph() bool { return tg.allowParallel }

// Append adds a snapshot under the given label. An empty label defaults to
// the snapshot's index. Fails fast on type inconsistency or a duplicate
// label; on failure the container is unchanged. Complexity: O(1).
func (tg *Graph) Append(snapshot *core.Graph, name string) error {
	if snapshot.Directed() != tg.directed {
		return ErrMixedDirectedness
	}
	if snapshot.Multigraph() != tg.allowParallel {
		return ErrMixedMultiplicity
	}
	if name == "" {
		name = strconv.Itoa(len(tg.snapshots))
	}
	if _, taken := tg.nameIndex[name]; taken {
		return ErrDuplicateName
	}
	tg.nameIndex[name] = len(tg.snapshots)
	tg.snapshots = append(tg.snapshots, snapshot)
	tg.names = append(tg.names, name)

	return nil
}

// Len returns the number of snapshots. Complexity: O(1).
func (tg *Graph) Len() int { return len(tg.snapshots) }

// Snapshots returns the snapshot list in order. The slice is a copy; the
// graphs are the live snapshots. Complexity: O(T).
func (tg *Graph) Snapshots() []*core.Graph {
	out := make([]*core.Graph, len(tg.snapshots))
	copy(out, tg.snapshots)

	return out
}

// Names returns the snapshot labels in order. Complexity: O(T).
func (tg *Graph) Names() []string {
	out := make([]string, len(tg.names))
	copy(out, tg.names)

	return out
}

// SnapshotAt returns the snapshot at index i.
func (tg *Graph) SnapshotAt(i int) (*core.Graph, error) {
	if i < 0 || i >= len(tg.snapshots) {
		return nil, ErrSnapshotIndex
	}

	return tg.snapshots[i], nil
}

// SnapshotByName returns the snapshot labeled name.
func (tg *Graph) SnapshotByName(name string) (*core.Graph, error) {
	i, ok := tg.nameIndex[name]
	if !ok {
		return nil, ErrSnapshotName
	}

	return tg.snapshots[i], nil
}
