// Package lutmap is an in-memory technology mapper for LUT-based FPGAs:
// it rewrites combinational networks of 2-input gates into K-input LUT
// circuits of provably minimum depth, then trims area without touching
// that depth.
//
// 🚀 What is lutmap?
//
//	A small, deterministic mapping toolkit that brings together:
//		• Network model: immutable 2-input gate DAGs with truth tables
//		• Labeling: minimum LUT depth per node via max-flow min-cut
//		• Covering: LUT emission straight from the label cuts
//		• Recovery: area-flow optimization that never degrades depth
//		• Interchange: a strict BLIF-subset reader and writer
//		• Verification: exhaustive replay and a SAT miter
//
// ✨ Why choose lutmap?
//
//   - Provable depth – the output label is a lower bound and every
//     emitted cover meets it exactly
//   - Deterministic – bit-identical results for any worker count
//   - Scriptable – the lutmap CLI generates, maps, verifies and reports
//     straight from the shell
//
// Under the hood, everything is organized under focused subpackages:
//
//	netlist/  — the immutable network arena: nodes, truth tables, levels
//	label/    — the minimum-depth labeling engine
//	cover/    — LUT emission and depth-preserving area recovery
//	flowmap/  — the one-call label → emit → recover pipeline
//	blif/     — BLIF-subset text interchange
//	verify/   — exhaustive and SAT-based equivalence checking
//	builder/  — deterministic benchmark network generators
//	cmd/      — the lutmap command line tool
//
// Quick ASCII example:
//
//	a   b   c   d
//	 \ /     \ /
//	and1    and2
//	   \    /
//	    xor1    or1(and1,c)
//	       \    /
//	        out
//
//	maps onto two 3-input LUTs: one computes and1, the other absorbs
//	and2, xor1 and or1 behind the cut {c, d, and1}.
//
//	go get github.com/katalvlaran/lutmap
package lutmap
