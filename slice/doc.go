// Package slice partitions an attributed graph into an ordered sequence of
// snapshot graphs — the slicing half of the temporal-graph engine.
//
// What:
//
//   - Slice bins a graph's edges by a temporal value and returns one
//     snapshot per bin, labeled with the bin's value, interval, or rank range.
//   - The temporal value comes from an edge attribute, a node attribute of
//     either endpoint, or the element's insertion rank when no attribute is
//     named.
//   - Binning policies: one bin per distinct value (default), equal-width
//     intervals, quantile cuts (QCut), rank-first equal-cardinality groups,
//     and cumulative count capping (AxisCumulative).
//   - SliceTemporal flattens an existing container first, so a sequence can
//     be re-sliced under a different policy.
//
// Guarantees:
//
//   - Edge-level slicing conserves edges: per-snapshot sizes sum to the
//     input size; nothing is lost or duplicated.
//   - Unsatisfiable bin counts degrade to the maximum achievable number of
//     non-empty bins; empty bins are never fabricated.
//   - Snapshots are views over the parent graph by default (AsView); pass
//     AsView false for independent copies.
//
// Errors:
//
//   - ErrBadBins, ErrBadLevel, ErrBadEndpoint, ErrBadAxis,
//     ErrConflictingPolicies: invalid configuration, rejected before any
//     work happens.
//   - ErrMissingAttr, ErrNonNumericAttr: an element lacks the temporal
//     attribute or carries a non-numeric value.
package slice
