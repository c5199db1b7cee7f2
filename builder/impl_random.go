// SPDX-License-Identifier: MIT
// Package: lutmap/builder
//
// impl_random.go — seeded random DAG generator.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lutmap/netlist"
)

// gatePalette lists the functions drawn for random gates. Constant and
// single-literal functions are excluded so every gate depends on both
// fan-ins.
var gatePalette = [...]netlist.Func{
	netlist.FuncAnd, netlist.FuncOr, netlist.FuncXor, netlist.FuncNand,
	netlist.FuncNor, netlist.FuncXnor, netlist.FuncAndNotB, netlist.FuncOrNotA,
}

// RandomDAG generates a random network with the given gate and input
// counts. Connectivity is structural, not probabilistic: each of the first
// gates consumes one primary input, every later gate chains to its
// predecessor, and the last gate drives the output, so no signal dangles
// for any seed. Requires an RNG (WithSeed or WithRand); equal seeds
// produce identical networks. inputs must be at least 1 and gates at
// least inputs.
// Complexity: O(gates) time and space.
func RandomDAG(gates, inputs int, opts ...Option) (*netlist.Network, error) {
	cfg := newBuilderConfig(opts...)
	if inputs < 1 || gates < inputs {
		return nil, fmt.Errorf("RandomDAG: gates=%d inputs=%d: %w", gates, inputs, ErrBadShape)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("RandomDAG: %w", ErrNeedRand)
	}

	def := netlist.Def{Name: fmt.Sprintf("%srand%d", cfg.prefix, gates)}
	names := make([]string, 0, inputs+gates) // signals usable as fan-ins
	for i := 0; i < inputs; i++ {
		name := fmt.Sprintf("%sx%d", cfg.prefix, i)
		def.Inputs = append(def.Inputs, name)
		names = append(names, name)
	}

	for j := 1; j <= gates; j++ {
		var fanin [2]string
		switch {
		case j == 1:
			fanin[0] = names[0]
			fanin[1] = names[cfg.rng.Intn(inputs)]
		case j <= inputs:
			fanin[0] = names[j-1]          // consume input x_{j-1}
			fanin[1] = names[len(names)-1] // chain to the previous gate
		default:
			fanin[0] = names[len(names)-1] // chain to the previous gate
			fanin[1] = names[cfg.rng.Intn(len(names))]
		}
		name := fmt.Sprintf("%sg%d", cfg.prefix, j)
		def.Gates = append(def.Gates, netlist.GateDef{
			Name:  name,
			Fn:    gatePalette[cfg.rng.Intn(len(gatePalette))],
			Fanin: fanin,
		})
		names = append(names, name)
	}

	def.Output = names[len(names)-1]
	return netlist.Build(def)
}
