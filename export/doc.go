// Package export bridges tempograph graphs into third-party graph
// ecosystems through a flat format-name → adapter-function registry.
//
// What:
//
//   - Register associates a name with an Adapter; Convert, ConvertTemporal,
//     and ConvertStatic look the adapter up and apply it to one graph, to
//     every snapshot, or to the flattened union.
//   - A gonum adapter ships built in under the name "gonum", producing the
//     simple/multi, directed/undirected gonum type matching the input.
//
// Why a registry: adding a target format is one Register call in the
// caller's code; the converters never change. Adapters receive the graph
// as-is and own the mapping into their ecosystem's identity space (gonum,
// for example, numbers nodes by insertion order and keeps the string ID
// on the emitted Node value).
//
// Errors:
//
//   - ErrUnknownFormat: Convert with an unregistered name.
//   - ErrBadAdapter: Register with an empty name or nil function.
//   - ErrSelfLoop: the gonum target met a loop its builders reject.
package export
