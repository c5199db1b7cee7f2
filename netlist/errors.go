package netlist

import "errors"

// ErrMalformedNode is returned by Build when the description violates the
// structural node invariants: duplicate or empty names, references to
// undefined nodes, a missing output designation, or a non-output node with
// no fan-out. Branch with errors.Is; the wrapped message names the node.
var ErrMalformedNode = errors.New("netlist: malformed node")

// ErrCycleDetected is returned by Build when the fan-in relation contains a
// cycle, making the description non-combinational.
var ErrCycleDetected = errors.New("netlist: combinational cycle detected")

// ErrBadAssignment is returned by Eval when the assignment length does not
// match the number of primary inputs.
var ErrBadAssignment = errors.New("netlist: assignment length mismatch")
