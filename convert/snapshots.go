// Package convert: container ⇄ plain snapshot sequence.
package convert

import (
	"github.com/katalvlaran/tempograph/core"
	"github.com/katalvlaran/tempograph/temporal"
)

// SnapshotsOption configures FromSnapshots.
type SnapshotsOption func(c *snapshotsConfig)

type snapshotsConfig struct {
	multigraph    bool
	multigraphSet bool
}

// WithMultigraph overrides multigraph auto-detection: the container type is
// forced to the given value instead of being inferred from the input.
func WithMultigraph(multi bool) SnapshotsOption {
	return func(c *snapshotsConfig) {
		c.multigraph = multi
		c.multigraphSet = true
	}
}

// ToSnapshots returns the container's snapshot sequence in order. With
// asCopy false the live snapshots are returned (aliasing the container);
// with asCopy true each snapshot is an independent clone.
func ToSnapshots(tg *temporal.Graph, asCopy bool) []*core.Graph {
	out := tg.Snapshots()
	if asCopy {
		for i, s := range out {
			out[i] = s.Clone()
		}
	}

	return out
}

// FromSnapshots builds a container from a graph sequence. Directedness is
// taken from the first graph and must be uniform; a mix fails fast with
// temporal.ErrMixedDirectedness. Unless WithMultigraph overrides it, the
// container becomes a multigraph only if some input snapshot holds a
// duplicate (source, target) pair within itself. Snapshots whose declared
// multiplicity differs from the chosen container type are re-typed; their
// attribute maps are shared, not copied. Complexity: O(ΣV + ΣE).
func FromSnapshots(gs []*core.Graph, opts ...SnapshotsOption) (*temporal.Graph, error) {
	var cfg snapshotsConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(gs) == 0 {
		return temporal.New(), nil
	}

	directed := gs[0].Directed()
	for _, g := range gs[1:] {
		if g.Directed() != directed {
			return nil, temporal.ErrMixedDirectedness
		}
	}

	multi := cfg.multigraph
	if !cfg.multigraphSet {
		multi = false
		for _, g := range gs {
			if hasParallelPair(g) {
				multi = true
				break
			}
		}
	}

	var tgOpts []temporal.Option
	if directed {
		tgOpts = append(tgOpts, temporal.WithDirected())
	}
	if multi {
		tgOpts = append(tgOpts, temporal.WithParallelEdges())
	}
	tg := temporal.New(tgOpts...)

	for _, g := range gs {
		if g.Multigraph() != multi {
			g = retype(g, directed, multi)
		}
		if err := tg.Append(g, ""); err != nil {
			return nil, err
		}
	}

	return tg, nil
}

// hasParallelPair reports whether g holds two edges between one node pair.
func hasParallelPair(g *core.Graph) bool {
	for _, e := range g.Edges() {
		if len(g.EdgesBetween(e.From, e.To)) > 1 {
			return true
		}
	}

	return false
}

// retype rebuilds g under the given type flags. Attribute maps are shared
// with the input. Collapsing a true multigraph with retype would silently
// drop parallel edges, so callers must only demote duplicate-free graphs.
func retype(g *core.Graph, directed, multi bool) *core.Graph {
	var opts []core.Option
	if directed {
		opts = append(opts, core.WithDirected())
	}
	if multi {
		opts = append(opts, core.WithParallelEdges())
	}
	out := core.New(opts...)
	for _, id := range g.Nodes() {
		attrs, err := g.NodeAttrs(id)
		if err != nil {
			continue
		}
		_ = out.PutNode(id, attrs)
	}
	for _, e := range g.Edges() {
		_, _ = out.AddEdge(e.From, e.To, e.Attrs)
	}

	return out
}
