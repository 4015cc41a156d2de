package floatquant

import "math"

// Well-known binary16 bit patterns.
//
// Format: [sign:1][exponent:5][mantissa:10], exponent bias 15.
const (
	HalfZero      uint16 = 0x0000 // +0.0
	HalfNegZero   uint16 = 0x8000 // -0.0
	HalfOne       uint16 = 0x3C00 // 1.0
	HalfInf       uint16 = 0x7C00 // +Inf
	HalfNegInf    uint16 = 0xFC00 // -Inf
	HalfNaN       uint16 = 0x7E00 // canonical quiet NaN
	HalfMax       uint16 = 0x7BFF // 65504, largest finite value
	HalfMinNormal uint16 = 0x0400 // 2^-14, smallest normal value
)

const (
	halfShift     = 13 // mantissa width difference: 23 - 10
	halfSignShift = 16
)

// Binary32 thresholds and their down-shifted binary16 counterparts. The
// deltas close the exponent-bias hole between the subnormal band and the
// normal band (minDelta) and between the max normal and infinity (maxDelta).
const (
	f32Inf     int32  = 0x7F800000 // binary32 +Inf
	halfMaxF32 int32  = 0x477FE000 // max binary16 normal, as binary32 bits
	halfMinF32 int32  = 0x38800000 // min binary16 normal, as binary32 bits
	f32SignBit uint32 = 0x80000000

	halfNaNF32  int32 = (f32Inf>>halfShift + 1) << halfShift // minimum binary16 NaN, as binary32 bits
	halfInfCode int32 = f32Inf >> halfShift
	halfMaxCode int32 = halfMaxF32 >> halfShift
	halfMinCode int32 = halfMinF32 >> halfShift

	subMaxCode  int32 = 0x003FF // max binary32 subnormal, down-shifted
	normMinCode int32 = 0x00400 // min binary32 normal, down-shifted

	maxDelta = halfInfCode - halfMaxCode - 1
	minDelta = halfMinCode - subMaxCode - 1

	subScaleUp   uint32 = 0x52000000 // (1 << 23) / halfMinF32, as float32 bits
	subScaleDown uint32 = 0x33800000 // halfMinF32 / (1 << (23 - halfShift)), as float32 bits
)

// CompressHalf converts a float32 to its IEEE-754 binary16 bit pattern.
//
// Out-of-range magnitudes map to ±Inf, NaN inputs collapse to a canonical
// NaN encoding (payloads are not preserved), signed zeros are kept, and
// values below the binary16 normal range are converted to subnormals.
func CompressHalf(value float32) uint16 {
	ui := math.Float32bits(value)
	sign := ui & f32SignBit
	ui ^= sign

	si := int32(ui)
	if si < halfMinF32 {
		// Renormalize subnormal results by scaling the magnitude up so the
		// integer truncation lands on the right subnormal code. The product
		// stays below 1<<23, keeping the float→int32 conversion in range.
		si = int32(math.Float32frombits(subScaleUp) * math.Float32frombits(ui))
	}
	if si > halfMaxF32 && si < f32Inf {
		si = f32Inf
	}
	if si > f32Inf && si < halfNaNF32 {
		si = halfNaNF32
	}

	si = int32(uint32(si) >> halfShift)
	if si > halfMaxCode {
		si -= maxDelta
	}
	if si > subMaxCode {
		si -= minDelta
	}

	return uint16(uint32(si) | sign>>halfSignShift)
}

// DecompressHalf expands a binary16 bit pattern to the exact float32 it
// represents. Subnormal binary16 values are promoted correctly and every
// binary16 NaN pattern yields a float32 NaN.
func DecompressHalf(value uint16) float32 {
	si := int32(value)
	sign := si & int32(HalfNegZero)
	si ^= sign

	if si > subMaxCode {
		si += minDelta
	}
	if si > halfMaxCode {
		si += maxDelta
	}

	// Subnormal codes decode as code * 2^-24 instead of a bit expansion.
	sub := math.Float32frombits(subScaleDown) * float32(si)
	isSub := si < normMinCode

	si <<= halfShift
	if isSub {
		si = int32(math.Float32bits(sub))
	}
	si |= sign << halfSignShift

	return math.Float32frombits(uint32(si))
}
