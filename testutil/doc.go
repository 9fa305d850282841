// Package testutil provides testing utilities for textspan.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG plus generators for random
// tokenizations, token spans, and tensor blocks.
//
//	rng := testutil.NewRNG(seed)
//	tokens := testutil.RandomTokens(rng, 100)
//	block := rng.UniformBlock(64, 16)
package testutil
