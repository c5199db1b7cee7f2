// SPDX-License-Identifier: MIT
// Package: lutmap/builder
//
// config.go — resolved configuration shared by all generators.

package builder

import "math/rand"

// builderConfig is the immutable result of applying functional options.
// The zero value is valid: no prefix, no RNG.
type builderConfig struct {
	rng    *rand.Rand // optional RNG; required by stochastic generators
	prefix string     // prepended to every signal name
}

// newBuilderConfig resolves opts into a config. A nil option is a
// programmer error and panics.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt == nil {
			panic("builder: nil option")
		}
		opt(&cfg)
	}
	return cfg
}
