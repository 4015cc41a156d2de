// Package testutil provides testing utilities for floatquant.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded random number generator with fill helpers tuned for
// codec sweeps:
//
//	rng := testutil.NewRNG(seed)
//	vals := make([]float32, 4096)
//	rng.FillUniformRange(vals, -65504, 65504) // uniform values
//	rng.FillLogUniform(vals, -14, 15)         // exponent-spread values
//
// Uniform fills concentrate values in the top binades of the range;
// log-uniform fills spread values evenly across exponents, which is what
// exercises a float codec's boundary corrections.
package testutil
