// Package slice: options, enums, and sentinel errors for snapshot slicing.
package slice

import "errors"

// Sentinel errors for slicing configuration and inputs. All validation
// happens at the entry of Slice; no container is built before it passes.
var (
	// ErrBadBins indicates a negative bin count, or a policy (quantile or
	// rank-first or cumulative) invoked without a positive bin count.
	ErrBadBins = errors.New("slice: invalid bin count")

	// ErrBadLevel indicates an unknown Level value.
	ErrBadLevel = errors.New("slice: unknown attribute level")

	// ErrBadEndpoint indicates an unknown Endpoint value.
	ErrBadEndpoint = errors.New("slice: unknown node endpoint")

	// ErrBadAxis indicates an unknown Axis value.
	ErrBadAxis = errors.New("slice: unknown axis")

	// ErrConflictingPolicies indicates quantile and rank-first binning were
	// requested together.
	ErrConflictingPolicies = errors.New("slice: qcut and rank-first are mutually exclusive")

	// ErrMissingAttr indicates an element without the temporal attribute.
	ErrMissingAttr = errors.New("slice: temporal attribute missing")

	// ErrNonNumericAttr indicates a temporal attribute value that cannot be
	// ordered numerically.
	ErrNonNumericAttr = errors.New("slice: temporal attribute is not numeric")
)

// Level selects whether a concept applies to edges or to nodes.
type Level int

const (
	// LevelEdge reads the temporal value from the edge's own attributes
	// (and, for cumulative binning, caps bins by running edge count).
	LevelEdge Level = iota

	// LevelNode derives an edge's temporal value from one of its endpoints
	// (and, for cumulative binning, caps bins by running node count).
	LevelNode
)

// Endpoint selects which endpoint carries an edge's temporal value when
// slicing at node level.
type Endpoint int

const (
	// EndpointSource uses the edge's source node.
	EndpointSource Endpoint = iota

	// EndpointTarget uses the edge's target node.
	EndpointTarget
)

// Axis selects what a bin boundary is measured in.
type Axis int

const (
	// AxisValue bins by temporal attribute value.
	AxisValue Axis = iota

	// AxisCumulative bins by running element count: each snapshot holds as
	// many consecutive elements as the per-bin cap allows.
	AxisCumulative
)

// Options configures one Slice call.
//
//   - Attr       — name of the attribute carrying the temporal value; empty
//     means insertion rank (every element gets a synthetic increasing index).
//   - AttrLevel  — LevelEdge (default) reads the edge's attribute; LevelNode
//     reads the attribute of the endpoint chosen by NodeLevel.
//   - NodeLevel  — which endpoint carries the value under LevelNode.
//   - Bins       — target snapshot count; 0 means one snapshot per distinct
//     temporal value. When the distinct-value count is smaller than Bins the
//     result degrades to the maximum achievable count, never an error.
//   - QCut       — quantile binning instead of equal width: bins end up with
//     as close to total/Bins elements as value discreteness allows; a group
//     of identical values is never split, the boundary extends the earlier bin.
//   - RankFirst  — bin by order of appearance instead of value, guaranteeing
//     Bins groups of as-equal-as-possible cardinality.
//   - Axis       — AxisValue (default) or AxisCumulative.
//   - CountLevel — the unit AxisCumulative caps by (edges or distinct nodes).
//   - AsView     — snapshots share the parent's attribute storage (default);
//     false forces independent copies.
type Options struct {
	Attr       string
	AttrLevel  Level
	NodeLevel  Endpoint
	Bins       int
	QCut       bool
	RankFirst  bool
	Axis       Axis
	CountLevel Level
	AsView     bool
}

// DefaultOptions returns the default slicing configuration: edge-level
// attribute, source endpoint, one bin per distinct value, value axis,
// view snapshots.
func DefaultOptions() Options {
	return Options{AsView: true}
}

// validate rejects inconsistent configurations up front.
func (o Options) validate() error {
	if o.Bins < 0 {
		return ErrBadBins
	}
	if o.AttrLevel != LevelEdge && o.AttrLevel != LevelNode {
		return ErrBadLevel
	}
	if o.CountLevel != LevelEdge && o.CountLevel != LevelNode {
		return ErrBadLevel
	}
	if o.NodeLevel != EndpointSource && o.NodeLevel != EndpointTarget {
		return ErrBadEndpoint
	}
	if o.Axis != AxisValue && o.Axis != AxisCumulative {
		return ErrBadAxis
	}
	if o.QCut && o.RankFirst {
		return ErrConflictingPolicies
	}
	if o.QCut && o.Bins < 1 {
		return ErrBadBins
	}
	if o.RankFirst && o.Bins < 1 {
		return ErrBadBins
	}
	if o.Axis == AxisCumulative && o.Bins < 1 {
		return ErrBadBins
	}

	return nil
}
