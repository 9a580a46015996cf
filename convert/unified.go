// Package convert: container ⇄ unified (unrolled) single graph.
//
// The unified form replaces every (node, snapshot) occurrence with one
// proxy node "<node>_<t>" and optionally threads coupling edges between
// time-adjacent proxies of the same node. Node IDs containing underscores
// are fine as long as the text after the last underscore of a proxy parses
// as its time index — FromUnified splits on the last underscore only.
package convert

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/tempograph/core"
	"github.com/katalvlaran/tempograph/temporal"
)

// proxySep joins a node ID with its snapshot index in proxy-node IDs.
const proxySep = "_"

// proxyID formats the unified-graph node ID for node n at step t.
func proxyID(n string, t int) string {
	return n + proxySep + strconv.Itoa(t)
}

// splitProxyID recovers (node, time) from a proxy ID.
func splitProxyID(id string) (string, int, error) {
	i := strings.LastIndex(id, proxySep)
	if i <= 0 || i == len(id)-1 {
		return "", 0, ErrBadProxyID
	}
	t, err := strconv.Atoi(id[i+1:])
	if err != nil || t < 0 {
		return "", 0, ErrBadProxyID
	}

	return id[:i], t, nil
}

// ToUnified unrolls a container into one graph of proxy nodes.
//
// Proxy creation follows opts.NodeCopies (present steps only, persisted
// across gaps, or every step). Structural edges reproduce each snapshot's
// edges between same-step proxies; coupling edges connect (n, t) to
// (n, t+opts.Delta) whenever both proxies exist. opts.PruneIsolated then
// drops proxies left without any incident edge — note that pruning can
// remove a node's last proxy, which breaks the strip-and-deduplicate
// round trip for that node.
//
// The result is an independent owned graph carrying the container's
// directedness and multiplicity. Complexity: O(T·V + ΣE).
func ToUnified(tg *temporal.Graph, opts UnifiedOptions) (*core.Graph, error) {
	if opts.NodeCopies != CopyFill && opts.NodeCopies != CopyPersist && opts.NodeCopies != CopyAll {
		return nil, ErrBadCopyPolicy
	}
	if opts.Delta < 1 {
		return nil, ErrBadDelta
	}

	var gOpts []core.Option
	if tg.Directed() {
		gOpts = append(gOpts, core.WithDirected())
	}
	if tg.Multigraph() {
		gOpts = append(gOpts, core.WithParallelEdges())
	}
	out := core.New(gOpts...)

	snapshots := tg.Snapshots()
	steps := len(snapshots)

	// present[n] = ascending steps at which node n occurs.
	present := make(map[string][]int)
	for t, s := range snapshots {
		for _, id := range s.Nodes() {
			present[id] = append(present[id], t)
		}
	}

	// Proxy steps per node under the chosen policy.
	proxySteps := func(occurrences []int) []int {
		switch opts.NodeCopies {
		case CopyPersist:
			first, last := occurrences[0], occurrences[len(occurrences)-1]
			span := make([]int, 0, last-first+1)
			for t := first; t <= last; t++ {
				span = append(span, t)
			}

			return span
		case CopyAll:
			all := make([]int, steps)
			for t := range all {
				all[t] = t
			}

			return all
		default:
			return occurrences
		}
	}

	for _, n := range tg.TemporalNodes() {
		for _, t := range proxySteps(present[n]) {
			pid := proxyID(n, t)
			var attrs core.Attrs
			if opts.ProxyAttrs && t < steps {
				if a, err := snapshots[t].NodeAttrs(n); err == nil {
					attrs = a.Clone()
				}
			}
			if err := out.PutNode(pid, attrs); err != nil {
				return nil, err
			}
		}
	}

	// Structural edges, snapshot by snapshot.
	for t, s := range snapshots {
		for _, e := range s.Edges() {
			if _, err := out.AddEdge(proxyID(e.From, t), proxyID(e.To, t), e.Attrs.Clone()); err != nil {
				return nil, err
			}
		}
	}

	// Coupling edges between delta-separated proxies of the same node.
	if opts.AddCouplings {
		for _, n := range tg.TemporalNodes() {
			for _, t := range proxySteps(present[n]) {
				next := proxyID(n, t+opts.Delta)
				if !out.HasNode(next) {
					continue
				}
				if _, err := out.AddEdge(proxyID(n, t), next, nil); err != nil {
					return nil, err
				}
			}
		}
	}

	if opts.PruneIsolated {
		for _, id := range out.Nodes() {
			deg, err := out.Degree(id)
			if err == nil && deg == 0 {
				_ = out.RemoveNode(id)
			}
		}
	}

	return out, nil
}

// FromUnified rebuilds a container from a unified graph: proxies are
// grouped by time suffix, the suffix is stripped to recover node identity,
// and coupling edges — any edge whose endpoints live at different steps —
// are discarded. Nodes whose IDs do not parse as proxies fail fast with
// ErrBadProxyID. Complexity: O(V + E + T).
func FromUnified(g *core.Graph) (*temporal.Graph, error) {
	type proxy struct {
		node string
		time int
	}
	parsed := make(map[string]proxy, g.Order())
	timeSet := make(map[int]struct{})
	for _, id := range g.Nodes() {
		n, t, err := splitProxyID(id)
		if err != nil {
			return nil, err
		}
		parsed[id] = proxy{node: n, time: t}
		timeSet[t] = struct{}{}
	}

	times := make([]int, 0, len(timeSet))
	for t := range timeSet {
		times = append(times, t)
	}
	sort.Ints(times)

	var gOpts []core.Option
	var tgOpts []temporal.Option
	if g.Directed() {
		gOpts = append(gOpts, core.WithDirected())
		tgOpts = append(tgOpts, temporal.WithDirected())
	}
	if g.Multigraph() {
		gOpts = append(gOpts, core.WithParallelEdges())
		tgOpts = append(tgOpts, temporal.WithParallelEdges())
	}
	tg := temporal.New(tgOpts...)

	byTime := make(map[int]*core.Graph, len(times))
	for _, t := range times {
		byTime[t] = core.New(gOpts...)
	}

	for _, id := range g.Nodes() {
		p := parsed[id]
		var attrs core.Attrs
		if a, err := g.NodeAttrs(id); err == nil {
			attrs = a.Clone()
		}
		if err := byTime[p.time].PutNode(p.node, attrs); err != nil {
			return nil, err
		}
	}

	for _, e := range g.Edges() {
		pf, pt := parsed[e.From], parsed[e.To]
		if pf.time != pt.time {
			continue // coupling edge (or otherwise unrepresentable)
		}
		if _, err := byTime[pf.time].AddEdge(pf.node, pt.node, e.Attrs.Clone()); err != nil {
			return nil, err
		}
	}

	for _, t := range times {
		if err := tg.Append(byTime[t], strconv.Itoa(t)); err != nil {
			return nil, err
		}
	}

	return tg, nil
}
