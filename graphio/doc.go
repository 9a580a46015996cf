// Package graphio reads and writes temporal-graph containers as YAML
// documents.
//
// What:
//
//   - Write / Read         — encode a container to an io.Writer, decode from
//     an io.Reader.
//   - WriteFile / ReadFile — the same against a named file.
//
// Format:
//
// A document is a direct transcription of the container: the two type flags
// (directed, multigraph), then one block per snapshot with its label, node
// list, and edge list, both in insertion order:
//
//	directed: true
//	multigraph: false
//	snapshots:
//	  - name: "0"
//	    nodes:
//	      - id: a
//	      - id: b
//	        attrs: {team: blue}
//	    edges:
//	      - from: a
//	        to: b
//	        attrs: {weight: 2}
//
// Round-trip contract: snapshot count, snapshot labels, node sets, and edge
// sets are preserved exactly. Attribute values come back as whatever YAML
// decodes them to (strings, ints, floats, bools, nested maps), so attribute
// fidelity is format-dependent and not guaranteed for arbitrary Go values.
//
// Errors: decode and I/O failures are wrapped with a "graphio:" prefix;
// structural failures surface the underlying core or temporal sentinel
// (errors.Is works through the wrap).
package graphio
