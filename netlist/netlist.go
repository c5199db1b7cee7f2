package netlist

import "fmt"

// Network is an immutable arena of nodes plus derived indexes. Construct it
// with Build; the zero value is not usable. All read methods are safe for
// concurrent use once Build has returned.
type Network struct {
	name   string
	nodes  []Node
	byName map[string]ID
	inputs []ID
	out    ID
	order  []ID   // leaf-first topological order, output node last
	levels [][]ID // levels[0] = inputs, levels[l] = gates at longest-path depth l
}

// Build constructs and validates a Network from an external description.
//
// Returns ErrMalformedNode for duplicate/empty names, references to
// undefined nodes, a missing or unknown output, or a non-output node with no
// fan-out; returns ErrCycleDetected when the fan-in relation is cyclic.
// The error message carries the offending node name; branch with errors.Is.
//
// Complexity: O(V + E) time and memory.
func Build(def Def) (*Network, error) {
	// 1. A network computes a function of at least one input.
	if len(def.Inputs) == 0 {
		return nil, fmt.Errorf("netlist: no primary inputs declared: %w", ErrMalformedNode)
	}
	if def.Output == "" {
		return nil, fmt.Errorf("netlist: no output designated: %w", ErrMalformedNode)
	}

	name := def.Name
	if name == "" {
		name = "net"
	}
	n := &Network{
		name:   name,
		nodes:  make([]Node, 0, len(def.Inputs)+len(def.Gates)+1),
		byName: make(map[string]ID, len(def.Inputs)+len(def.Gates)),
	}

	// 2. Register every name before resolving references, so the gate list
	//    may appear in any order.
	declare := func(nodeName string, kind Kind) (ID, error) {
		if nodeName == "" {
			return 0, fmt.Errorf("netlist: empty %s name: %w", kind, ErrMalformedNode)
		}
		if prev, dup := n.byName[nodeName]; dup {
			return 0, fmt.Errorf("netlist: duplicate name %q (%s and %s): %w",
				nodeName, n.nodes[prev].Kind, kind, ErrMalformedNode)
		}
		id := ID(len(n.nodes))
		n.byName[nodeName] = id
		n.nodes = append(n.nodes, Node{Name: nodeName, Kind: kind})
		return id, nil
	}
	for _, in := range def.Inputs {
		id, err := declare(in, KindInput)
		if err != nil {
			return nil, err
		}
		n.inputs = append(n.inputs, id)
	}
	for _, g := range def.Gates {
		if _, err := declare(g.Name, KindGate); err != nil {
			return nil, err
		}
	}

	// 3. Resolve gate fan-ins against the registered names.
	for _, g := range def.Gates {
		id := n.byName[g.Name]
		node := &n.nodes[id]
		node.Fn = g.Fn
		node.Fanin = make([]ID, 2)
		for fi, ref := range g.Fanin {
			src, ok := n.byName[ref]
			if !ok {
				return nil, fmt.Errorf("netlist: gate %q: fan-in %q is not defined: %w",
					g.Name, ref, ErrMalformedNode)
			}
			node.Fanin[fi] = src
		}
	}

	// 4. Append the output node, driven by the designated signal.
	driver, ok := n.byName[def.Output]
	if !ok {
		return nil, fmt.Errorf("netlist: output %q is not defined: %w", def.Output, ErrMalformedNode)
	}
	n.out = ID(len(n.nodes))
	n.nodes = append(n.nodes, Node{Name: def.Output, Kind: KindOutput, Fanin: []ID{driver}})

	// 5. Derive fan-out lists from the fan-in lists.
	for id := range n.nodes {
		for _, src := range n.nodes[id].Fanin {
			n.nodes[src].Fanout = append(n.nodes[src].Fanout, ID(id))
		}
	}

	// 6. Every node except the output must drive something; dead logic is a
	//    description error, not something to map around.
	for id := range n.nodes {
		if ID(id) != n.out && len(n.nodes[id].Fanout) == 0 {
			return nil, fmt.Errorf("netlist: node %q drives nothing: %w",
				n.nodes[id].Name, ErrMalformedNode)
		}
	}

	// 7. Topological order; rejects cycles.
	order, err := n.sortTopological()
	if err != nil {
		return nil, err
	}
	n.order = order

	// 8. Longest-path levels over the final order.
	n.levels = n.buildLevels()

	return n, nil
}

// Name returns the model name carried from the description.
func (n *Network) Name() string { return n.name }

// Len returns the total node count, including inputs and the output node.
func (n *Network) Len() int { return len(n.nodes) }

// Node returns a copy of the node record. The Fanin/Fanout slice headers
// alias the arena; treat them as read-only. id must be in range.
func (n *Network) Node(id ID) Node { return n.nodes[id] }

// NodeName returns the name of id.
func (n *Network) NodeName(id ID) string { return n.nodes[id].Name }

// Kind returns the kind of id.
func (n *Network) Kind(id ID) Kind { return n.nodes[id].Kind }

// Fn returns the gate function of id (meaningful for KindGate).
func (n *Network) Fn(id ID) Func { return n.nodes[id].Fn }

// Fanin returns the ordered fan-in list of id. Shared slice; read-only.
func (n *Network) Fanin(id ID) []ID { return n.nodes[id].Fanin }

// Fanout returns the derived fan-out list of id. Shared slice; read-only.
func (n *Network) Fanout(id ID) []ID { return n.nodes[id].Fanout }

// Lookup resolves a node name to its ID.
func (n *Network) Lookup(name string) (ID, bool) {
	id, ok := n.byName[name]
	return id, ok
}

// Inputs returns the primary input IDs in declaration order (fresh slice).
func (n *Network) Inputs() []ID {
	out := make([]ID, len(n.inputs))
	copy(out, n.inputs)
	return out
}

// NumInputs returns the primary input count.
func (n *Network) NumInputs() int { return len(n.inputs) }

// Output returns the ID of the output node.
func (n *Network) Output() ID { return n.out }

// Driver returns the ID of the node feeding the output.
func (n *Network) Driver() ID { return n.nodes[n.out].Fanin[0] }

// Def reconstructs the external description: inputs and gates in
// construction order. Build(n.Def()) yields an equivalent network with
// identical IDs, which is what the serialization round-trip tests rely on.
func (n *Network) Def() Def {
	d := Def{Name: n.name, Output: n.nodes[n.out].Name}
	d.Inputs = make([]string, 0, len(n.inputs))
	for _, id := range n.inputs {
		d.Inputs = append(d.Inputs, n.nodes[id].Name)
	}
	for id := range n.nodes {
		nd := &n.nodes[id]
		if nd.Kind != KindGate {
			continue
		}
		d.Gates = append(d.Gates, GateDef{
			Name:  nd.Name,
			Fn:    nd.Fn,
			Fanin: [2]string{n.nodes[nd.Fanin[0]].Name, n.nodes[nd.Fanin[1]].Name},
		})
	}
	return d
}

// Cone returns the transitive fan-in set of v, including v itself, as an
// ascending ID list. Iterative; safe for arbitrarily deep networks.
func (n *Network) Cone(v ID) []ID {
	seen := make([]bool, len(n.nodes))
	stack := make([]ID, 0, 16)
	stack = append(stack, v)
	seen[v] = true
	count := 0
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, src := range n.nodes[u].Fanin {
			if !seen[src] {
				seen[src] = true
				stack = append(stack, src)
			}
		}
	}
	cone := make([]ID, 0, count)
	for id := range seen {
		if seen[id] {
			cone = append(cone, ID(id))
		}
	}
	return cone
}
