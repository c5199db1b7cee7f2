// SPDX-License-Identifier: MIT
// Package: lutmap/builder
//
// errors.go — sentinel errors for the generator package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; generators attach context via %w.
//   - Generators never panic at runtime; validation panics are confined
//     to the option constructors (WithX...).

package builder

import "errors"

// ErrBadShape indicates a size parameter outside the generator's domain:
// a mux width that is not a power of two, an OR tree narrower than two
// inputs, or a random DAG with fewer gates than inputs.
// Usage: if errors.Is(err, ErrBadShape) { /* fix the size */ }.
var ErrBadShape = errors.New("builder: invalid shape parameter")

// ErrNeedRand indicates that a stochastic generator was called without an
// RNG in the resolved configuration.
// Usage: if errors.Is(err, ErrNeedRand) { /* add WithSeed or WithRand */ }.
var ErrNeedRand = errors.New("builder: rng is required")
