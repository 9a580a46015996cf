// Package convert: container ⇄ event stream.
//
// Events operate on temporal-edge identity: parallel occurrences of a pair
// within one snapshot collapse to a single presence bit, and node isolates
// (no incident edge anywhere) are not representable and get dropped. Both
// losses are part of the contract, not faults.
package convert

import (
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/tempograph/core"
	"github.com/katalvlaran/tempograph/temporal"
)

// presenceRun is one maximal stretch of consecutive snapshots in which an
// edge is present: indices [start, end] inclusive.
type presenceRun struct {
	start, end int
}

// pairPresence records where one temporal edge lives across the sequence.
type pairPresence struct {
	from, to string
	runs     []presenceRun
}

// ToEvents encodes a container as an ordered event sequence.
//
//   - FormatStream: one Point per presence run of each edge (an edge that
//     disappears and reappears yields one event per run); with
//     opts.FirstOnly only the first-ever run is reported.
//   - FormatDelta: a Delta(+1) at each run start and a Delta(-1) at the
//     first snapshot after the run ends. Runs reaching the final snapshot
//     stay open unless opts.CloseAtEnd asks for a trailing -1 at Len().
//   - FormatSpan: one Span per run whose Duration is the number of further
//     snapshots the run persists (0.0 for a single-snapshot run).
//
// Events are ordered by time; edges at the same time keep their
// first-appearance order. Complexity: O(ΣE + events).
func ToEvents(tg *temporal.Graph, opts EventOptions) ([]Event, error) {
	if opts.Format != FormatStream && opts.Format != FormatDelta && opts.Format != FormatSpan {
		return nil, ErrBadEventFormat
	}

	presence := collectPresence(tg)
	steps := tg.Len()

	var events []Event
	for _, p := range presence {
		for ri, run := range p.runs {
			switch opts.Format {
			case FormatStream:
				if opts.FirstOnly && ri > 0 {
					continue
				}
				events = append(events, Point(p.from, p.to, run.start))
			case FormatDelta:
				events = append(events, Delta(p.from, p.to, run.start, +1))
				if run.end+1 < steps {
					events = append(events, Delta(p.from, p.to, run.end+1, -1))
				} else if opts.CloseAtEnd {
					events = append(events, Delta(p.from, p.to, steps, -1))
				}
			case FormatSpan:
				events = append(events, Span(p.from, p.to, run.start, float64(run.end-run.start)))
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Time < events[j].Time })

	return events, nil
}

// collectPresence builds the per-pair presence runs of a container, in
// first-appearance order of the pairs.
func collectPresence(tg *temporal.Graph) []*pairPresence {
	index := make(map[[2]string]*pairPresence)
	var order []*pairPresence
	directed := tg.Directed()

	for t, s := range tg.Snapshots() {
		for _, e := range s.Edges() {
			k := [2]string{e.From, e.To}
			if !directed && k[1] < k[0] {
				k[0], k[1] = k[1], k[0]
			}
			p, ok := index[k]
			if !ok {
				p = &pairPresence{from: e.From, to: e.To}
				index[k] = p
				order = append(order, p)
			}
			if n := len(p.runs); n > 0 && p.runs[n-1].end >= t {
				continue // parallel occurrence within this snapshot
			} else if n > 0 && p.runs[n-1].end == t-1 {
				p.runs[n-1].end = t // run continues
			} else {
				p.runs = append(p.runs, presenceRun{start: t, end: t})
			}
		}
	}

	return order
}

// openEdge tracks one currently-open pair during event replay.
type openEdge struct {
	from, to string
	count    int // open multiplicity (parallel additions)
	closeAt  int // scheduled close time for spans; -1 when none
}

// FromEvents replays an event sequence into a container with one snapshot
// per integer time in [min, max] over all event times (span closings
// included). An addition opens the edge at its time and propagates it
// forward through every later snapshot until a matching removal; an edge
// that is never removed persists to the end of the sequence. A removal
// with nothing open fails fast with ErrUnmatchedRemoval; a delta whose
// sign is neither +1 nor -1 fails fast with ErrBadSign.
//
// Addition multiplicity accumulates: on a multigraph container, two
// additions without a removal mean two parallel edges per snapshot.
// Complexity: O(events·log(events) + T·open).
func FromEvents(events []Event, directed, multigraph bool) (*temporal.Graph, error) {
	var tgOpts []temporal.Option
	if directed {
		tgOpts = append(tgOpts, temporal.WithDirected())
	}
	if multigraph {
		tgOpts = append(tgOpts, temporal.WithParallelEdges())
	}
	tg := temporal.New(tgOpts...)
	if len(events) == 0 {
		return tg, nil
	}

	minT, maxT := events[0].Time, events[0].Time
	for _, ev := range events {
		if ev.Kind == KindSpan && ev.Duration < 0 {
			return nil, ErrNegativeSpan
		}
		if ev.Kind == KindDelta && ev.Sign != 1 && ev.Sign != -1 {
			return nil, ErrBadSign
		}
		if ev.Time < minT {
			minT = ev.Time
		}
		last := ev.Time
		if ev.Kind == KindSpan {
			last = ev.Time + int(math.Floor(ev.Duration))
		}
		if last > maxT {
			maxT = last
		}
	}

	// Per-time buckets keep replay independent of input ordering.
	buckets := make(map[int][]Event, len(events))
	for _, ev := range events {
		buckets[ev.Time] = append(buckets[ev.Time], ev)
	}

	pairKey := func(u, v string) [2]string {
		if !directed && v < u {
			return [2]string{v, u}
		}

		return [2]string{u, v}
	}

	open := make(map[[2]string]*openEdge)
	var openOrder [][2]string // insertion order of currently-open pairs

	openOne := func(ev Event, closeAt int) {
		k := pairKey(ev.Source, ev.Target)
		oe, ok := open[k]
		if !ok {
			oe = &openEdge{from: ev.Source, to: ev.Target, closeAt: -1}
			open[k] = oe
			openOrder = append(openOrder, k)
		}
		oe.count++
		if closeAt >= 0 && closeAt > oe.closeAt {
			oe.closeAt = closeAt
		}
	}
	closeOne := func(u, v string) error {
		k := pairKey(u, v)
		oe, ok := open[k]
		if !ok || oe.count == 0 {
			return ErrUnmatchedRemoval
		}
		oe.count--
		if oe.count == 0 {
			delete(open, k)
			for i, ok2 := range openOrder {
				if ok2 == k {
					openOrder = append(openOrder[:i], openOrder[i+1:]...)
					break
				}
			}
		}

		return nil
	}

	var graphOpts []core.Option
	if directed {
		graphOpts = append(graphOpts, core.WithDirected())
	}
	if multigraph {
		graphOpts = append(graphOpts, core.WithParallelEdges())
	}

	for t := minT; t <= maxT; t++ {
		// Expire spans scheduled to close before this step.
		for _, k := range append([][2]string(nil), openOrder...) {
			oe := open[k]
			if oe.closeAt >= 0 && oe.closeAt < t {
				for oe.count > 0 {
					if err := closeOne(oe.from, oe.to); err != nil {
						return nil, err
					}
				}
			}
		}
		// Removals first: a -1 at time t means absent at t.
		for _, ev := range buckets[t] {
			if ev.Kind == KindDelta && ev.Sign < 0 {
				if err := closeOne(ev.Source, ev.Target); err != nil {
					return nil, err
				}
			}
		}
		for _, ev := range buckets[t] {
			switch ev.Kind {
			case KindPoint:
				openOne(ev, -1)
			case KindDelta:
				if ev.Sign > 0 {
					openOne(ev, -1)
				}
			case KindSpan:
				openOne(ev, t+int(math.Floor(ev.Duration)))
			}
		}

		s := core.New(graphOpts...)
		for _, k := range openOrder {
			oe := open[k]
			n := oe.count
			if !multigraph {
				n = 1
			}
			for i := 0; i < n; i++ {
				if _, err := s.AddEdge(oe.from, oe.to, nil); err != nil {
					return nil, err
				}
			}
		}
		if err := tg.Append(s, strconv.Itoa(t)); err != nil {
			return nil, err
		}
	}

	return tg, nil
}
