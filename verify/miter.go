package verify

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/lutmap/cover"
	"github.com/katalvlaran/lutmap/netlist"
)

// Equivalent proves or refutes equivalence with a SAT miter: both circuits
// are encoded over shared input literals and the solver searches for an
// assignment where the outputs differ. On refutation the counterexample
// assignment is returned in the network's input order.
func Equivalent(n *netlist.Network, m *cover.Mapping) (bool, []bool, error) {
	if n == nil {
		return false, nil, ErrNilNetwork
	}
	if m == nil {
		return false, nil, ErrNilMapping
	}
	if n.NumInputs() != m.Network().NumInputs() {
		return false, nil, fmt.Errorf("%w: network has %d, mapping has %d",
			ErrInputMismatch, n.NumInputs(), m.Network().NumInputs())
	}

	c := logic.NewC()
	ins := make([]z.Lit, n.NumInputs())
	for i := range ins {
		ins[i] = c.Lit()
	}
	miter := c.Xor(networkLit(c, n, ins), mappingLit(c, m, ins))

	sat := gini.New()
	c.ToCnf(sat)
	sat.Assume(miter)
	switch verdict := sat.Solve(); verdict {
	case -1:
		return true, nil, nil
	case 1:
		cex := make([]bool, len(ins))
		for i, lit := range ins {
			cex[i] = sat.Value(lit)
		}
		return false, cex, nil
	default:
		return false, nil, fmt.Errorf("verify: unexpected solver verdict %d", verdict)
	}
}

// networkLit encodes the gate network bottom-up and returns its output
// literal.
func networkLit(c *logic.C, n *netlist.Network, ins []z.Lit) z.Lit {
	val := make([]z.Lit, n.Len())
	for i, id := range n.Inputs() {
		val[id] = ins[i]
	}
	for _, id := range n.TopoOrder() {
		switch n.Kind(id) {
		case netlist.KindGate:
			f := n.Fanin(id)
			val[id] = funcLit(c, n.Fn(id), val[f[0]], val[f[1]])
		case netlist.KindOutput:
			val[id] = val[n.Fanin(id)[0]]
		}
	}
	return val[n.Output()]
}

// mappingLit encodes the LUT cells and returns the driver literal. Cells
// are level-sorted, so every pin literal exists before its reader.
func mappingLit(c *logic.C, m *cover.Mapping, ins []z.Lit) z.Lit {
	n := m.Network()
	val := make([]z.Lit, n.Len())
	for i, id := range n.Inputs() {
		val[id] = ins[i]
	}
	for _, cell := range m.Cells() {
		pins := make([]z.Lit, len(cell.Inputs))
		for i, in := range cell.Inputs {
			pins[i] = val[in]
		}
		val[cell.Root] = truthLit(c, cell.Truth, pins)
	}
	return val[n.Driver()]
}

// funcLit encodes one 2-input gate. The low four bits of fn fully define
// the function, matching Func.Eval.
func funcLit(c *logic.C, fn netlist.Func, a, b z.Lit) z.Lit {
	switch fn & 0xF {
	case netlist.FuncFalse:
		return c.F
	case netlist.FuncNor:
		return c.Or(a, b).Not()
	case netlist.FuncAndNotB:
		return c.And(a, b.Not())
	case netlist.FuncNotB:
		return b.Not()
	case netlist.FuncAndNotA:
		return c.And(a.Not(), b)
	case netlist.FuncNotA:
		return a.Not()
	case netlist.FuncXor:
		return c.Xor(a, b)
	case netlist.FuncNand:
		return c.And(a, b).Not()
	case netlist.FuncAnd:
		return c.And(a, b)
	case netlist.FuncXnor:
		return c.Xor(a, b).Not()
	case netlist.FuncPassA:
		return a
	case netlist.FuncOrNotB:
		return c.Or(a, b.Not())
	case netlist.FuncPassB:
		return b
	case netlist.FuncOrNotA:
		return c.Or(a.Not(), b)
	case netlist.FuncOr:
		return c.Or(a, b)
	default:
		return c.T // FuncTrue
	}
}

// truthLit encodes a LUT table as an OR over its ON-set minterms, pin i in
// bit position i.
func truthLit(c *logic.C, t netlist.Truth, pins []z.Lit) z.Lit {
	out := c.F
	for r := 0; r < t.Rows(); r++ {
		if !t.Get(r) {
			continue
		}
		minterm := c.T
		for i, pin := range pins {
			if r>>i&1 == 1 {
				minterm = c.And(minterm, pin)
			} else {
				minterm = c.And(minterm, pin.Not())
			}
		}
		out = c.Or(out, minterm)
	}
	return out
}
