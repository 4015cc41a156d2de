package floatquant

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	quantSignBit int32 = -1 << 31      // binary32 sign bit
	quantAbsMask int32 = ^quantSignBit // magnitude bits
)

// Quantizer compresses float32 values from a bounded range into a dense
// integer code of 32-(23-precision) bits.
//
// Values are clamped to [min, max], magnitudes below epsilon collapse to
// zero, and the surviving bit pattern is truncated to the configured
// mantissa precision. The resulting integer space is renormalized so codes
// are contiguous: no code is wasted on float bit patterns that clamping and
// the dead-zone make unreachable.
//
// All derived constants are computed once in NewQuantizer; a Quantizer is
// immutable and safe for concurrent use.
type Quantizer struct {
	fMin int32 // min as binary32 bits
	fEps int32 // epsilon as binary32 bits
	fMax int32 // max as binary32 bits

	cMax   int32 // largest positive code before renormalization
	cZero  int32 // code of the zero / dead-zone bucket
	pDelta int32 // gap between the dead-zone and the smallest positive code
	nDelta int32 // gap between the positive band and the negative band

	shift     uint // 23 - precision
	negatives bool
	lossless  bool
}

// NewQuantizer creates a quantizer for the given range and precision.
//
// The configuration must satisfy min <= 0 < epsilon < max and
// 0 <= precision <= 23. precision is the number of retained mantissa bits;
// precision 23 selects the lossless mode.
//
// Validation happens only here. The codec methods accept any input and
// never alter their bit-level results based on configuration validity.
func NewQuantizer(min, epsilon, max float32, precision int) (*Quantizer, error) {
	if precision < 0 || precision > 23 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPrecision, precision)
	}
	if !(min <= 0) || !(epsilon > 0) || !(epsilon < max) {
		return nil, fmt.Errorf("%w: got min=%v epsilon=%v max=%v", ErrInvalidRange, min, epsilon, max)
	}

	q := &Quantizer{
		fMin:  int32(math.Float32bits(min)),
		fEps:  int32(math.Float32bits(epsilon)),
		fMax:  int32(math.Float32bits(max)),
		shift: uint(23 - precision),
	}
	q.negatives = q.fMin < 0
	q.lossless = q.shift == 0

	// The deltas measure the unreachable span between adjacent code bands.
	// Subtracting them at compression time makes the packed space contiguous;
	// two's-complement wraparound in the lossless case is intentional.
	var pEps, nEps int32
	if q.lossless {
		nEps = q.fEps
		pEps = q.fEps ^ quantSignBit
		q.cMax = q.fMax ^ quantSignBit
		q.cZero = quantSignBit
	} else {
		nEps = int32(uint32(q.fEps^quantSignBit) >> q.shift)
		pEps = int32(uint32(q.fEps) >> q.shift)
		q.cMax = int32(uint32(q.fMax) >> q.shift)
		q.cZero = 0
	}
	q.pDelta = pEps - q.cZero - 1
	q.nDelta = nEps - q.cMax - 1

	return q, nil
}

// Clamp restricts value to the configured range and zeroes magnitudes below
// epsilon. Values already inside the range are returned unchanged.
//
// Comparisons operate on the raw bit patterns: a positive NaN pattern sorts
// above max and clamps to max, and when negatives are not configured
// negative inputs outside the dead-zone pass through unbounded.
func (q *Quantizer) Clamp(value float32) float32 {
	si := int32(math.Float32bits(value))

	max := q.fMax
	if q.negatives && si < 0 {
		max = q.fMin
	}
	if si > max {
		si = max
	}
	if si&quantAbsMask < q.fEps {
		si = 0
	}

	return math.Float32frombits(uint32(si))
}

// Compress clamps value and packs it into a code of Bits() bits.
//
// In lossy mode the clamped bit pattern is truncated by 23-precision bits;
// in lossless mode the sign bit is flipped instead, which makes the unsigned
// code ordering monotonic across the zero crossing. The code bands are then
// renormalized into a contiguous integer space.
func (q *Quantizer) Compress(value float32) uint32 {
	si := int32(math.Float32bits(q.Clamp(value)))

	if q.lossless {
		si ^= quantSignBit
	} else {
		si = int32(uint32(si) >> q.shift)
	}

	if q.negatives && si > q.cMax {
		si -= q.nDelta
	}
	if si > q.cZero {
		si -= q.pDelta
	}

	if q.lossless {
		si ^= quantSignBit
	}

	return uint32(si)
}

// Decompress recovers the quantized float32 from a code produced by
// Compress. It is the exact inverse of the integer-space renormalization
// followed by the mantissa re-expansion (or sign un-flip in lossless mode).
func (q *Quantizer) Decompress(value uint32) float32 {
	si := int32(value)

	if q.lossless {
		si ^= quantSignBit
	}

	if si > q.cZero {
		si += q.pDelta
	}
	if q.negatives && si > q.cMax {
		si += q.nDelta
	}

	if q.lossless {
		si ^= quantSignBit
	} else {
		si <<= q.shift
	}

	return math.Float32frombits(uint32(si))
}

// Min returns the configured lower bound.
func (q *Quantizer) Min() float32 {
	return math.Float32frombits(uint32(q.fMin))
}

// Max returns the configured upper bound.
func (q *Quantizer) Max() float32 {
	return math.Float32frombits(uint32(q.fMax))
}

// Epsilon returns the configured dead-zone threshold.
func (q *Quantizer) Epsilon() float32 {
	return math.Float32frombits(uint32(q.fEps))
}

// Precision returns the number of retained mantissa bits.
func (q *Quantizer) Precision() int {
	return 23 - int(q.shift)
}

// Bits returns the packed code width in bits.
func (q *Quantizer) Bits() int {
	return 32 - int(q.shift)
}

// Lossless reports whether the quantizer preserves clamped values exactly.
func (q *Quantizer) Lossless() bool {
	return q.lossless
}

// Negatives reports whether negative values are representable (min < 0).
func (q *Quantizer) Negatives() bool {
	return q.negatives
}

// CompressionRatio returns the storage ratio of float32 to the packed code
// width, assuming codes are bit-packed.
func (q *Quantizer) CompressionRatio() float64 {
	return 32.0 / float64(q.Bits())
}

const quantizerBinaryLen = 13

// MarshalBinary implements encoding.BinaryMarshaler.
// Format (little-endian): [min:float32][epsilon:float32][max:float32][precision:uint8]
func (q *Quantizer) MarshalBinary() ([]byte, error) {
	b := make([]byte, quantizerBinaryLen)
	binary.LittleEndian.PutUint32(b[0:4], uint32(q.fMin))
	binary.LittleEndian.PutUint32(b[4:8], uint32(q.fEps))
	binary.LittleEndian.PutUint32(b[8:12], uint32(q.fMax))
	b[12] = uint8(q.Precision())
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The decoded
// configuration goes through the same validation as NewQuantizer.
func (q *Quantizer) UnmarshalBinary(data []byte) error {
	if len(data) != quantizerBinaryLen {
		return fmt.Errorf("invalid quantizer binary length: %d", len(data))
	}

	dec, err := NewQuantizer(
		math.Float32frombits(binary.LittleEndian.Uint32(data[0:4])),
		math.Float32frombits(binary.LittleEndian.Uint32(data[4:8])),
		math.Float32frombits(binary.LittleEndian.Uint32(data[8:12])),
		int(data[12]),
	)
	if err != nil {
		return err
	}

	*q = *dec
	return nil
}
