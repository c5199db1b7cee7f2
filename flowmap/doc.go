// Package flowmap wires the complete technology-mapping pipeline into a
// single call.
//
// Map runs three stages over an immutable netlist.Network:
//
//  1. label.Compute assigns every node its minimum feasible LUT level.
//  2. cover.Emit materializes the depth-optimal LUT cover.
//  3. cover.Recover trims area without giving up the optimal depth
//     (skippable via Options.DisableRecovery).
//
// The package adds no algorithm of its own; it exists so callers and the
// lutmap CLI can hold one Options struct instead of three. Stage errors
// surface unchanged and remain matchable with errors.Is.
package flowmap
