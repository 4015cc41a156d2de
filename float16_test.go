package floatquant

import (
	"math"
	"testing"
)

func TestCompressHalf_Table(t *testing.T) {
	negZero := math.Float32frombits(0x80000000)

	tests := []struct {
		name  string
		value float32
		want  uint16
	}{
		{"zero", 0, HalfZero},
		{"negative zero", negZero, HalfNegZero},
		{"one", 1, HalfOne},
		{"negative one", -1, 0xBC00},
		{"half", 0.5, 0x3800},
		{"two", 2, 0x4000},
		{"max finite", 65504, HalfMax},
		{"negative max finite", -65504, 0xFBFF},
		{"min normal", 6.103515625e-05, HalfMinNormal},
		{"min subnormal", float32(math.Ldexp(1, -24)), 0x0001},
		{"max subnormal", float32(math.Ldexp(1023, -24)), 0x03FF},
		{"positive infinity", float32(math.Inf(1)), HalfInf},
		{"negative infinity", float32(math.Inf(-1)), HalfNegInf},
		{"overflow 65520", 65520, HalfInf},
		{"overflow negative 65520", -65520, HalfNegInf},
		{"overflow large", 1e9, HalfInf},
		{"underflow tiny", float32(math.Ldexp(1, -30)), HalfZero},
	}

	for _, tt := range tests {
		if got := CompressHalf(tt.value); got != tt.want {
			t.Errorf("%s: CompressHalf(%g) = %#04x, want %#04x", tt.name, tt.value, got, tt.want)
		}
	}
}

func TestCompressHalf_NaN(t *testing.T) {
	quiet := math.Float32frombits(0x7FC00000)
	if got := CompressHalf(quiet); got != HalfNaN {
		t.Errorf("CompressHalf(quiet NaN) = %#04x, want %#04x", got, HalfNaN)
	}

	// Any NaN payload must stay a NaN after compression.
	payloads := []uint32{0x7F800001, 0x7FFFFFFF, 0xFFC00001}
	for _, bits := range payloads {
		got := CompressHalf(math.Float32frombits(bits))
		if got&0x7C00 != 0x7C00 || got&0x03FF == 0 {
			t.Errorf("CompressHalf(NaN %#08x) = %#04x, not a binary16 NaN", bits, got)
		}
	}
}

func TestDecompressHalf_Table(t *testing.T) {
	tests := []struct {
		name  string
		value uint16
		want  float32
	}{
		{"zero", HalfZero, 0},
		{"one", HalfOne, 1},
		{"negative one", 0xBC00, -1},
		{"half", 0x3800, 0.5},
		{"max finite", HalfMax, 65504},
		{"min normal", HalfMinNormal, 6.103515625e-05},
		{"min subnormal", 0x0001, float32(math.Ldexp(1, -24))},
		{"max subnormal", 0x03FF, float32(math.Ldexp(1023, -24))},
		{"mid subnormal", 0x0200, float32(math.Ldexp(512, -24))},
	}

	for _, tt := range tests {
		if got := DecompressHalf(tt.value); got != tt.want {
			t.Errorf("%s: DecompressHalf(%#04x) = %g, want %g", tt.name, tt.value, got, tt.want)
		}
	}
}

func TestDecompressHalf_SpecialValues(t *testing.T) {
	if v := DecompressHalf(HalfNegZero); v != 0 || !math.Signbit(float64(v)) {
		t.Errorf("DecompressHalf(0x8000) = %g, want -0", v)
	}
	if v := DecompressHalf(HalfInf); !math.IsInf(float64(v), 1) {
		t.Errorf("DecompressHalf(0x7C00) = %g, want +Inf", v)
	}
	if v := DecompressHalf(HalfNegInf); !math.IsInf(float64(v), -1) {
		t.Errorf("DecompressHalf(0xFC00) = %g, want -Inf", v)
	}

	// Every binary16 NaN pattern expands to a float32 NaN.
	for _, h := range []uint16{HalfNaN, 0x7C01, 0x7FFF, 0xFE00, 0xFFFF} {
		if v := DecompressHalf(h); !math.IsNaN(float64(v)) {
			t.Errorf("DecompressHalf(%#04x) = %g, want NaN", h, v)
		}
	}
}

// Decompressing any of the 65536 binary16 patterns and compressing the
// result must reproduce the pattern exactly, NaN payloads included.
func TestHalf_ExhaustiveInvolution(t *testing.T) {
	for h := 0; h <= 0xFFFF; h++ {
		if got := CompressHalf(DecompressHalf(uint16(h))); got != uint16(h) {
			t.Fatalf("CompressHalf(DecompressHalf(%#04x)) = %#04x", h, got)
		}
	}
}

func TestHalf_RoundTripExact(t *testing.T) {
	// Values exactly representable in binary16 survive a round trip bit-for-bit.
	exact := []float32{0, 1, -1, 0.25, 0.09375, 2048, -333.25, 65504, 6.103515625e-05}
	for _, x := range exact {
		if got := DecompressHalf(CompressHalf(x)); got != x {
			t.Errorf("round trip changed %g to %g", x, got)
		}
	}
}
