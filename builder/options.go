// SPDX-License-Identifier: MIT
// Package: lutmap/builder
//
// options.go — functional options for the generator package.
//
// Contract (strict):
//   - Options are functional (type Option func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic and return sentinel errors.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   - Prefer WithSeed for reproducible stochastic generators (RandomDAG).
//   - WithNamePrefix keeps signal names collision-free when generated
//     blocks are merged into one description by hand.

package builder

import "math/rand"

// Option customizes a generator by mutating the builderConfig before
// construction begins.
type Option func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithNamePrefix prepends prefix to every generated signal name. Empty
// means no prefix, not an error.
// Complexity: O(1) time, O(1) space.
func WithNamePrefix(prefix string) Option {
	return func(c *builderConfig) {
		c.prefix = prefix
	}
}
