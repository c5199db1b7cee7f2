// Package cover turns labeling results into LUT netlists and shrinks them
// without losing depth.
//
// Emit walks backward from the network output through the cuts chosen by
// the label package, creating one LUT cell per visited gate. Each cell
// carries the truth table of the logic cluster between its cut and its
// root, so the mapping is a standalone circuit: Mapping.Eval runs it
// without consulting the original gates. The emitted depth always equals
// the optimal depth reported by labeling.
//
// Recover is the area phase. It enumerates bounded cut families per gate,
// scores candidates by area flow under the current cover's reference
// counts and slack, rebuilds the cover, and accepts the rebuild only when
// it uses strictly fewer LUTs at a depth no worse than the current one.
// Passes repeat until no accepted rebuild remains (or Options.MaxPasses
// caps them), so the LUT count decreases monotonically and the final
// mapping is a fixed point: recovering an already recovered mapping
// changes nothing. A mapping that cannot be improved is returned as is,
// never degraded.
package cover
