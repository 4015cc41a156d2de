// Package floatquant provides lossy and lossless float32 quantization codecs.
//
// All codecs are pure, stateless bit-level transforms: a float32 goes in, a
// fixed-width integer code comes out, and the paired decompressor recovers
// the quantized float. There is no I/O, no shared mutable state, and no
// error path on the codec hot paths — every 32-bit input pattern is legal.
//
// Three codecs are provided:
//
//   - Half-precision: fixed IEEE-754 binary32 ↔ binary16 conversion
//     (CompressHalf / DecompressHalf).
//   - Generic quantizer: configurable precision (0-23 mantissa bits),
//     custom [min, max] clamping range, an epsilon dead-zone, and an
//     optional asymmetric negative range (Quantizer).
//   - Compact-18: a fixed [sign:1][exponent:5][mantissa:12] format packed
//     into the low 18 bits of a uint32 (Compress18 / Decompress18).
//
// # Codec Comparison
//
//	| Codec          | Code width     | Range           | Special values        |
//	|----------------|----------------|-----------------|-----------------------|
//	| Half-precision | 16 bits        | ±65504          | ±Inf, NaN, ±0, subnorm|
//	| Quantizer      | 32-(23-p) bits | [min, max]      | dead-zone → 0         |
//	| Compact-18     | 18 bits        | exp 2^-15..2^15 | none (exponent wraps) |
//
// # Generic Quantizer
//
// The quantizer captures its configuration once at construction and is
// immutable afterwards:
//
//	q, err := floatquant.NewQuantizer(-65504, 6.103515625e-05, 65504, 12)
//	if err != nil { ... }
//
//	code := q.Compress(-724.99) // packed into q.Bits() bits
//	back := q.Decompress(code)  // within one quantization step of Clamp(-724.99)
//
// Packed codes are contiguous: the integer gaps that would otherwise exist
// between the epsilon dead-zone and the smallest representable magnitude
// (and symmetrically for the negative range) are closed at compression time,
// so every reachable code maps to a legal quantized float.
//
// With precision 23 the quantizer is lossless: instead of truncating
// mantissa bits it flips the sign bit, which linearizes the unsigned
// integer ordering of IEEE-754 bit patterns across the zero crossing.
//
// # Concurrency
//
// Every function and method in this package is safe for concurrent use
// without synchronization. Calls read only their inputs and, for the
// quantizer, its immutable configuration.
package floatquant
