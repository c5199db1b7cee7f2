package netlist

import "fmt"

// Eval computes the network's output for one input assignment. assign is
// indexed by input declaration order (the order Inputs returns).
//
// Returns ErrBadAssignment when len(assign) != NumInputs().
//
// Complexity: O(V) time, O(V) scratch memory.
func (n *Network) Eval(assign []bool) (bool, error) {
	if len(assign) != len(n.inputs) {
		return false, fmt.Errorf("netlist: got %d values for %d inputs: %w",
			len(assign), len(n.inputs), ErrBadAssignment)
	}
	values := make([]bool, len(n.nodes))
	for pos, id := range n.inputs {
		values[id] = assign[pos]
	}
	for _, id := range n.order {
		node := &n.nodes[id]
		switch node.Kind {
		case KindGate:
			values[id] = node.Fn.Eval(values[node.Fanin[0]], values[node.Fanin[1]])
		case KindOutput:
			values[id] = values[node.Fanin[0]]
		}
	}
	return values[n.out], nil
}

// TruthTable exhaustively evaluates the network into a Truth over its
// primary inputs, in declaration order. Intended for small networks; panics
// via NewTruth when the input count exceeds the representable width.
func (n *Network) TruthTable() Truth {
	t := NewTruth(len(n.inputs))
	assign := make([]bool, len(n.inputs))
	for r := 0; r < t.Rows(); r++ {
		for i := range assign {
			assign[i] = r&(1<<i) != 0
		}
		v, _ := n.Eval(assign)
		t.Set(r, v)
	}
	return t
}
