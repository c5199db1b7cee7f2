package netlist

import "fmt"

// Visitation states for the iterative depth-first sort.
const (
	white = iota // unvisited
	gray         // on the current path
	black        // fully explored
)

// sortTopological produces a leaf-first topological order (every node after
// all of its fan-ins) or ErrCycleDetected. The walk descends fan-in edges
// with an explicit frame stack, never native recursion, so network depth is
// bounded only by memory.
func (n *Network) sortTopological() ([]ID, error) {
	type frame struct {
		id   ID
		next int // index of the next fan-in to descend into
	}
	state := make([]uint8, len(n.nodes))
	order := make([]ID, 0, len(n.nodes))
	stack := make([]frame, 0, 16)

	// Driving the walk from every node in arena order keeps the result
	// deterministic and covers the whole arena in one pass.
	for root := 0; root < len(n.nodes); root++ {
		if state[root] != white {
			continue
		}
		stack = append(stack, frame{id: ID(root)})
		state[root] = gray
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			fanin := n.nodes[top.id].Fanin
			if top.next < len(fanin) {
				src := fanin[top.next]
				top.next++
				switch state[src] {
				case white:
					state[src] = gray
					stack = append(stack, frame{id: src})
				case gray:
					// A gray fan-in is an ancestor of the current path.
					return nil, fmt.Errorf("netlist: cycle through %q: %w",
						n.nodes[src].Name, ErrCycleDetected)
				}
				continue
			}
			// All fan-ins emitted; the node itself may follow them.
			state[top.id] = black
			order = append(order, top.id)
			stack = stack[:len(stack)-1]
		}
	}
	return order, nil
}

// buildLevels groups nodes by longest-path depth: level 0 holds the primary
// inputs, level l holds the gates whose deepest fan-in chain has l gates.
// The output node is omitted; it adopts its driver's level implicitly.
// Must run after sortTopological.
func (n *Network) buildLevels() [][]ID {
	depth := make([]int, len(n.nodes))
	maxDepth := 0
	for _, id := range n.order {
		node := &n.nodes[id]
		if node.Kind == KindInput {
			depth[id] = 0
			continue
		}
		d := 0
		for _, src := range node.Fanin {
			if depth[src] > d {
				d = depth[src]
			}
		}
		if node.Kind == KindGate {
			d++
		}
		depth[id] = d
		if d > maxDepth {
			maxDepth = d
		}
	}
	levels := make([][]ID, maxDepth+1)
	for _, id := range n.order {
		if n.nodes[id].Kind == KindOutput {
			continue
		}
		levels[depth[id]] = append(levels[depth[id]], id)
	}
	return levels
}

// TopoOrder returns the leaf-first topological order (fresh slice): every
// node appears after all of its fan-ins; the output node is last.
func (n *Network) TopoOrder() []ID {
	out := make([]ID, len(n.order))
	copy(out, n.order)
	return out
}

// Levels returns nodes grouped by longest-path depth (fresh outer slice,
// shared inner slices; read-only). Levels()[0] is the primary inputs; each
// later group only depends on earlier groups, which is what makes the
// groups usable as parallel labeling waves.
func (n *Network) Levels() [][]ID {
	out := make([][]ID, len(n.levels))
	copy(out, n.levels)
	return out
}

// GateDepth returns the longest gate chain from any input to the output, the
// pre-mapping depth of the network. Zero when the output is driven directly
// by a primary input.
func (n *Network) GateDepth() int { return len(n.levels) - 1 }
