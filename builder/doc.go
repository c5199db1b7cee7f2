// SPDX-License-Identifier: MIT

// Package builder generates deterministic Boolean networks for tests,
// benchmarks, and examples: multiplexers, OR reduction trees, and seeded
// random DAGs.
//
// Every generator returns a fully built *netlist.Network with a single
// output; equal parameters, options, and seeds always produce identical
// networks. Size parameters are validated with sentinel errors
// (ErrBadShape, ErrNeedRand). Only option constructors panic, and only on
// programmer error such as WithRand(nil).
package builder
