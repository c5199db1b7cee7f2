package netlist

import "fmt"

// ID addresses a node inside a Network's arena. IDs are dense, start at 0,
// and are assigned in construction order: primary inputs first (in
// declaration order), then gates (in declaration order), then the single
// Output node. An ID is only meaningful together with the Network that
// issued it.
type ID int

// Kind classifies a node.
type Kind uint8

const (
	// KindInput marks a primary input: fan-in arity 0, label 0.
	KindInput Kind = iota
	// KindGate marks a 2-input gate with a Func truth table.
	KindGate
	// KindOutput marks the single primary output: arity 1, never mapped.
	KindOutput
)

// String returns a short human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindGate:
		return "gate"
	case KindOutput:
		return "output"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Func encodes a 2-input Boolean function as a 4-bit truth table.
// Row index r = a + 2b, where a is the value of fan-in 0 and b the value of
// fan-in 1; bit r of the Func is the gate output for that row. The same
// LSB-first row convention is used by Truth for K-input LUTs.
type Func uint8

// Common 2-input functions. The asymmetric conjunctions carry the inverter
// that a 2-input-gate network cannot express as a separate node.
const (
	FuncFalse   Func = 0x0 // constant 0
	FuncNor     Func = 0x1 // NOT(a) AND NOT(b)
	FuncAndNotB Func = 0x2 // a AND NOT(b)
	FuncNotB    Func = 0x3 // NOT(b), ignores a
	FuncAndNotA Func = 0x4 // NOT(a) AND b
	FuncNotA    Func = 0x5 // NOT(a), ignores b
	FuncXor     Func = 0x6 // a XOR b
	FuncNand    Func = 0x7 // NOT(a AND b)
	FuncAnd     Func = 0x8 // a AND b
	FuncXnor    Func = 0x9 // NOT(a XOR b)
	FuncPassA   Func = 0xA // a, ignores b
	FuncOrNotB  Func = 0xB // a OR NOT(b)
	FuncPassB   Func = 0xC // b, ignores a
	FuncOrNotA  Func = 0xD // NOT(a) OR b
	FuncOr      Func = 0xE // a OR b
	FuncTrue    Func = 0xF // constant 1
)

// Eval applies the function to one row of input values.
func (f Func) Eval(a, b bool) bool {
	r := 0
	if a {
		r |= 1
	}
	if b {
		r |= 2
	}
	return f&(1<<r) != 0
}

// String renders the truth table LSB-first, e.g. FuncAnd is "1000".
func (f Func) String() string {
	buf := [4]byte{'0', '0', '0', '0'}
	for r := 0; r < 4; r++ {
		if f&(1<<r) != 0 {
			buf[3-r] = '1'
		}
	}
	return string(buf[:])
}

// Node is one arena entry. Nodes are immutable once Build returns; Fanout is
// derived from the gate list during construction and is informational, not
// authoritative.
type Node struct {
	Name   string
	Kind   Kind
	Fn     Func // meaningful for KindGate only
	Fanin  []ID // len 2 for gates, 1 for the output, 0 for inputs
	Fanout []ID
}

// GateDef describes one gate in an external network description. The fixed
// two-element fan-in array makes the arity invariant unrepresentable to
// violate through this API; textual front ends check it before building.
type GateDef struct {
	Name  string
	Fn    Func
	Fanin [2]string
}

// Def is the external description Build consumes: primary input names, the
// gate list (any order, forward references allowed), and the name of the
// node whose value the network outputs. Name labels the model in
// serialized forms and defaults to "net" when empty.
type Def struct {
	Name   string
	Inputs []string
	Gates  []GateDef
	Output string
}
