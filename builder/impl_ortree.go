// SPDX-License-Identifier: MIT
// Package: lutmap/builder
//
// impl_ortree.go — balanced OR reduction tree generator.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lutmap/netlist"
)

// OrTree generates a balanced OR reduction over width inputs x0..x{w-1}.
// width must be at least 2. The output is true when any input is true and
// the gate depth is ceil(log2(width)).
// Complexity: O(width) gates.
func OrTree(width int, opts ...Option) (*netlist.Network, error) {
	cfg := newBuilderConfig(opts...)
	if width < 2 {
		return nil, fmt.Errorf("OrTree: width=%d: %w", width, ErrBadShape)
	}

	def := netlist.Def{Name: fmt.Sprintf("%sor%d", cfg.prefix, width)}
	terms := make([]string, width)
	for i := range terms {
		terms[i] = fmt.Sprintf("%sx%d", cfg.prefix, i)
	}
	def.Inputs = append(def.Inputs, terms...)
	def.Output = orReduce(&def, cfg.prefix, terms)
	return netlist.Build(def)
}
