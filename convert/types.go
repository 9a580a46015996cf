// Package convert: shared types, options, and sentinel errors for the
// representation converters.
package convert

import "errors"

// Sentinel errors for conversion operations.
var (
	// ErrBadEventFormat indicates an unknown EventFormat value.
	ErrBadEventFormat = errors.New("convert: unknown event format")

	// ErrUnmatchedRemoval indicates a removal event for an edge that was
	// not open at that time. Deletions must follow a corresponding addition.
	ErrUnmatchedRemoval = errors.New("convert: removal event without a matching addition")

	// ErrNegativeSpan indicates a span event with a negative duration.
	ErrNegativeSpan = errors.New("convert: span event with negative duration")

	// ErrBadSign indicates a delta event whose sign is neither +1 nor -1.
	ErrBadSign = errors.New("convert: delta event sign must be +1 or -1")

	// ErrBadCopyPolicy indicates an unknown CopyPolicy value.
	ErrBadCopyPolicy = errors.New("convert: unknown proxy-node copy policy")

	// ErrBadDelta indicates a coupling stride below one.
	ErrBadDelta = errors.New("convert: coupling stride must be at least 1")

	// ErrBadProxyID indicates a node ID that does not carry a parseable
	// "_<time>" suffix when rebuilding a container from a unified graph.
	ErrBadProxyID = errors.New("convert: node ID is not a proxy ID")
)

// EventKind tags the variant an Event carries. The three forms correspond
// to the three temporal event encodings: a bare observation, a signed
// presence transition, and an observation with an explicit duration.
type EventKind int

const (
	// KindPoint is a 3-tuple observation (source, target, time).
	KindPoint EventKind = iota

	// KindDelta is a 4-tuple transition (source, target, time, ±1).
	KindDelta

	// KindSpan is an observation with a persistence duration
	// (source, target, time, duration).
	KindSpan
)

// Event is one temporal-edge event. Kind selects which extra field is
// meaningful: Sign for KindDelta, Duration for KindSpan, neither for
// KindPoint.
type Event struct {
	Source string
	Target string
	Time   int
	Kind   EventKind

	// Sign is +1 for an appearance and -1 for a disappearance (KindDelta).
	Sign int

	// Duration is the number of further snapshots the edge persists after
	// Time (KindSpan). 0.0 means present at Time only.
	Duration float64
}

// Point builds a 3-tuple observation event.
func Point(source, target string, time int) Event {
	return Event{Source: source, Target: target, Time: time, Kind: KindPoint}
}

// Delta builds a signed transition event.
func Delta(source, target string, time, sign int) Event {
	return Event{Source: source, Target: target, Time: time, Kind: KindDelta, Sign: sign}
}

// Span builds a duration event.
func Span(source, target string, time int, duration float64) Event {
	return Event{Source: source, Target: target, Time: time, Kind: KindSpan, Duration: duration}
}

// EventFormat selects the encoding ToEvents emits.
type EventFormat int

const (
	// FormatStream emits one KindPoint event per presence run of each edge.
	FormatStream EventFormat = iota

	// FormatDelta emits paired KindDelta events at every presence transition.
	FormatDelta

	// FormatSpan emits one KindSpan event per presence run, carrying how
	// long the run persisted.
	FormatSpan
)

// EventOptions configures ToEvents.
//
//   - Format     — which encoding to emit (default FormatStream).
//   - FirstOnly  — FormatStream only: emit a single event at the first-ever
//     occurrence of each edge instead of one per presence run. Both
//     interpretations are in active use; the per-run form is the default.
//   - CloseAtEnd — FormatDelta only: for edges still present in the last
//     snapshot, emit a trailing -1 at time Len() to close every interval.
type EventOptions struct {
	Format     EventFormat
	FirstOnly  bool
	CloseAtEnd bool
}

// DefaultEventOptions returns the default ToEvents configuration:
// per-run stream events, no trailing closures.
func DefaultEventOptions() EventOptions {
	return EventOptions{Format: FormatStream}
}

// CopyPolicy controls which time steps receive a proxy node for a node
// that is not present at every step of the sequence.
type CopyPolicy int

const (
	// CopyFill creates a proxy only at steps where the node is present.
	CopyFill CopyPolicy = iota

	// CopyPersist carries the node from its first appearance through its
	// last, bridging gaps in between.
	CopyPersist

	// CopyAll creates a proxy at every snapshot index regardless of presence.
	CopyAll
)

// UnifiedOptions configures ToUnified.
//
//   - AddCouplings  — connect (n, t) to (n, t+Delta) when both proxies exist.
//   - NodeCopies    — proxy-creation policy for intermittent nodes.
//   - ProxyAttrs    — copy the node's snapshot attributes onto its proxies.
//   - PruneIsolated — drop proxies left without any incident edge after
//     coupling construction.
//   - Delta         — coupling stride in snapshot indices (≥ 1).
type UnifiedOptions struct {
	AddCouplings  bool
	NodeCopies    CopyPolicy
	ProxyAttrs    bool
	PruneIsolated bool
	Delta         int
}

// DefaultUnifiedOptions returns the default ToUnified configuration:
// couplings on, fill-policy proxies with attributes, stride 1, no pruning.
func DefaultUnifiedOptions() UnifiedOptions {
	return UnifiedOptions{
		AddCouplings: true,
		NodeCopies:   CopyFill,
		ProxyAttrs:   true,
		Delta:        1,
	}
}
