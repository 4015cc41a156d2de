package floatquant

import "math"

// Compact-18 packs a float32 into the low 18 bits of a uint32 as
// [sign:1][exponent:5][mantissa:12]. The exponent field stores the biased
// binary32 exponent minus compact18Bias, covering 2^-15 through 2^16.
//
// There is no Inf/NaN/subnormal handling: exponents outside the 5-bit
// window wrap silently, so callers must keep magnitudes in range.
const compact18Bias = 0x70

// Compress18 packs value into an 18-bit code, truncating the mantissa to
// its top 12 bits.
func Compress18(value float32) uint32 {
	n := math.Float32bits(value)

	t := (n & 0x7FF800) >> 11
	t |= ((n&0x7F800000)>>23 - compact18Bias) << 12
	t |= (n & 0x80000000) >> 14

	return t
}

// Decompress18 expands an 18-bit code back to a float32. The 12 mantissa
// bits return to their binary32 position with the truncated low bits zero.
func Decompress18(value uint32) float32 {
	t := (value & 0xFFF) << 11
	t |= ((value&0x1F000)>>12 + compact18Bias) << 23
	t |= (value & 0x20000) << 14

	return math.Float32frombits(t)
}
