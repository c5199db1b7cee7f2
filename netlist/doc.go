// Package netlist models a single-output combinational Boolean network as a
// directed acyclic graph of 2-input gates, the input form consumed by the
// labeling, covering and recovery passes in this module.
//
// # What & Why
//
// A Network is an arena of Nodes addressed by dense integer IDs:
//
//   - Input nodes: the primary inputs, fan-in arity 0.
//   - Gate nodes: exactly two ordered fan-ins and a 4-bit truth table (Func)
//     over them, so NOT/buffer behavior folds into the gate function instead
//     of existing as extra nodes.
//   - One Output node: consumes the single signal the network computes.
//
// Adjacency is stored as index slices, never pointers, so later passes can
// reference nodes by value, share the arena across goroutines read-only, and
// never worry about ownership cycles between fan-in and fan-out links.
//
// Build validates the description up front: bad references, duplicate or
// empty names and dangling logic surface ErrMalformedNode; any cycle in the
// fan-in relation surfaces ErrCycleDetected. A Network that Build returns is
// immutable and safe for concurrent readers.
//
// # Capabilities
//
//   - TopoOrder / Levels: leaf-first topological order and longest-path level
//     groups (the wave schedule for parallel labeling).
//   - Cone: the transitive fan-in set of a node.
//   - Eval: evaluate the network for one input assignment.
//   - Truth: a 2^n-row bit vector used for LUT truth tables downstream.
//
// Complexity:
//
//   - Build: O(V + E) time and memory, including validation.
//   - TopoOrder/Levels/Inputs: O(V) per call (fresh copies).
//   - Cone: O(V + E) worst case. Eval: O(V).
package netlist
