// Package verify checks that a LUT mapping computes the same function as
// the gate network it was derived from.
//
// Two independent methods are provided. Exhaustive replays every input
// assignment through both circuits and is exact up to a width guard.
// Equivalent builds a SAT miter (go-air/gini): both circuits share input
// literals, their outputs feed an XOR, and the solver searches for an
// assignment that sets the XOR. Unsatisfiable means equivalent; a model is
// returned as a counterexample otherwise.
//
// Both methods compare inputs positionally, so a network read back from a
// serialized mapping can be checked against the original as long as the
// input order is preserved.
package verify
