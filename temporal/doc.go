// Package temporal provides the ordered-sequence-of-snapshots abstraction:
// one attributed graph per time step, plus aggregate queries across steps.
//
// What:
//
//   - Graph owns an ordered snapshot list with a parallel list of labels
//     (one per snapshot: a bin interval, a rank range, or a time value).
//   - A temporal node is a node ID considered identical across snapshots;
//     a temporal edge is a (source, target) pair, identity-shared across
//     snapshots, independent of the time steps it appears in.
//   - Per-snapshot counts (Order, Size), deduplicated counts over the union
//     (TemporalOrder, TemporalSize), and summed counts including duplicates
//     (TotalOrder, TotalSize).
//
// Invariant: directedness and multiplicity are uniform across all
// snapshots and consistent with the container's declared type; Append
// fails fast on a mismatch.
//
// Errors:
//
//   - ErrMixedDirectedness: snapshot directedness differs from container's.
//   - ErrMixedMultiplicity: snapshot multiplicity differs from container's.
//   - ErrDuplicateName: snapshot label already used in this container.
//   - ErrSnapshotIndex: snapshot index out of range.
//   - ErrSnapshotName: no snapshot carries the requested label.
package temporal
