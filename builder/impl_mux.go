// SPDX-License-Identifier: MIT
// Package: lutmap/builder
//
// impl_mux.go — ways:1 multiplexer generator.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lutmap/netlist"
)

// Mux generates a ways:1 multiplexer over two-input gates. ways must be a
// power of two and at least 2. Inputs are the select lines s0..s{b-1}
// (s0 least significant) followed by the data lines d0..d{ways-1}; the
// output equals the data line addressed by the select value.
//
// Shape: one select conjunction chain plus one data AND per data line,
// then a balanced OR reduction. Mux(4) has 11 gates.
// Complexity: O(ways * b) gates for b select bits.
func Mux(ways int, opts ...Option) (*netlist.Network, error) {
	cfg := newBuilderConfig(opts...)
	bits := 0
	for w := 1; w < ways; w <<= 1 {
		bits++
	}
	if ways < 2 || 1<<bits != ways {
		return nil, fmt.Errorf("Mux: ways=%d is not a power of two >= 2: %w", ways, ErrBadShape)
	}

	def := netlist.Def{Name: fmt.Sprintf("%smux%d", cfg.prefix, ways)}
	for j := 0; j < bits; j++ {
		def.Inputs = append(def.Inputs, fmt.Sprintf("%ss%d", cfg.prefix, j))
	}
	for i := 0; i < ways; i++ {
		def.Inputs = append(def.Inputs, fmt.Sprintf("%sd%d", cfg.prefix, i))
	}

	// One path term per data line: the select conjunction for value i,
	// ANDed with d_i. Polarities fold into the gate functions, so no
	// explicit inverter gates appear.
	terms := make([]string, 0, ways)
	for i := 0; i < ways; i++ {
		var acc string
		if bits == 1 {
			// A single select line folds straight into the data AND.
			acc = def.Inputs[0]
		} else {
			acc = fmt.Sprintf("%ssel%d", cfg.prefix, i)
			def.Gates = append(def.Gates, netlist.GateDef{
				Name:  acc,
				Fn:    pairConj(i&1 != 0, i&2 != 0),
				Fanin: [2]string{def.Inputs[0], def.Inputs[1]},
			})
			for j := 2; j < bits; j++ {
				next := fmt.Sprintf("%ssel%d_%d", cfg.prefix, i, j)
				fn := netlist.FuncAnd
				if i&(1<<j) == 0 {
					fn = netlist.FuncAndNotB
				}
				def.Gates = append(def.Gates, netlist.GateDef{
					Name:  next,
					Fn:    fn,
					Fanin: [2]string{acc, def.Inputs[j]},
				})
				acc = next
			}
		}

		term := fmt.Sprintf("%sp%d", cfg.prefix, i)
		fn := netlist.FuncAnd
		if bits == 1 && i == 0 {
			fn = netlist.FuncAndNotA // NOT(s0) AND d0
		}
		def.Gates = append(def.Gates, netlist.GateDef{
			Name:  term,
			Fn:    fn,
			Fanin: [2]string{acc, def.Inputs[bits+i]},
		})
		terms = append(terms, term)
	}

	def.Output = orReduce(&def, cfg.prefix, terms)
	return netlist.Build(def)
}

// pairConj returns the two-input function for (±a AND ±b) with the given
// literal polarities.
func pairConj(aPos, bPos bool) netlist.Func {
	switch {
	case aPos && bPos:
		return netlist.FuncAnd
	case aPos:
		return netlist.FuncAndNotB
	case bPos:
		return netlist.FuncAndNotA
	default:
		return netlist.FuncNor
	}
}

// orReduce appends a balanced OR tree over terms to def and returns the
// root signal name. A lone trailing term is carried up unchanged.
func orReduce(def *netlist.Def, prefix string, terms []string) string {
	for level := 0; len(terms) > 1; level++ {
		next := make([]string, 0, (len(terms)+1)/2)
		for i := 0; i+1 < len(terms); i += 2 {
			name := fmt.Sprintf("%sor%d_%d", prefix, level, i/2)
			def.Gates = append(def.Gates, netlist.GateDef{
				Name:  name,
				Fn:    netlist.FuncOr,
				Fanin: [2]string{terms[i], terms[i+1]},
			})
			next = append(next, name)
		}
		if len(terms)%2 == 1 {
			next = append(next, terms[len(terms)-1])
		}
		terms = next
	}
	return terms[0]
}
