package half

import (
	"math"
	"testing"
)

func TestKnownBitPatterns(t *testing.T) {
	tests := []struct {
		name string
		f    float32
		want Half
	}{
		{"zero", 0, Zero},
		{"negative zero", float32(math.Copysign(0, -1)), NegZero},
		{"one", 1, One},
		{"negative one", -1, NegOne},
		{"half", 0.5, 0x3800},
		{"two", 2, 0x4000},
		{"max finite", 65504, Max},
		{"smallest normal", 1.0 / 16384, MinNormal},
		{"smallest subnormal", float32(math.Ldexp(1, -24)), Smallest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromFloat32(tt.f); got != tt.want {
				t.Errorf("FromFloat32(%g) = 0x%04X, want 0x%04X", tt.f, uint16(got), uint16(tt.want))
			}
			if back := tt.want.Float32(); back != tt.f {
				t.Errorf("Half(0x%04X).Float32() = %g, want %g", uint16(tt.want), back, tt.f)
			}
		})
	}
}

func TestSpecialValues(t *testing.T) {
	if got := FromFloat32(float32(math.Inf(1))); got != Inf {
		t.Errorf("FromFloat32(+Inf) = 0x%04X, want 0x%04X", uint16(got), uint16(Inf))
	}
	if got := FromFloat32(float32(math.Inf(-1))); got != NegInf {
		t.Errorf("FromFloat32(-Inf) = 0x%04X, want 0x%04X", uint16(got), uint16(NegInf))
	}
	if got := FromFloat32(float32(math.NaN())); !got.IsNaN() {
		t.Errorf("FromFloat32(NaN) = 0x%04X, want a NaN pattern", uint16(got))
	}
	if !Inf.IsInf() || !NegInf.IsInf() {
		t.Error("IsInf() should report both infinities")
	}
	if Inf.IsNaN() || One.IsNaN() {
		t.Error("IsNaN() misreports non-NaN values")
	}
	if NaN.IsInf() {
		t.Error("IsInf() misreports NaN")
	}
	if f := Inf.Float32(); !math.IsInf(float64(f), 1) {
		t.Errorf("Inf.Float32() = %g, want +Inf", f)
	}
	if f := NaN.Float32(); f == f {
		t.Errorf("NaN.Float32() = %g, want NaN", f)
	}
}

func TestOverflowBecomesInfinity(t *testing.T) {
	if got := FromFloat32(65536); got != Inf {
		t.Errorf("FromFloat32(65536) = 0x%04X, want infinity", uint16(got))
	}
	if got := FromFloat32(-1e10); got != NegInf {
		t.Errorf("FromFloat32(-1e10) = 0x%04X, want negative infinity", uint16(got))
	}
}

func TestTinyValuesFlushToZero(t *testing.T) {
	tiny := float32(math.Ldexp(1, -26))
	if got := FromFloat32(tiny); got != Zero {
		t.Errorf("FromFloat32(2^-26) = 0x%04X, want zero", uint16(got))
	}
	if got := FromFloat32(-tiny); got != NegZero {
		t.Errorf("FromFloat32(-2^-26) = 0x%04X, want negative zero", uint16(got))
	}
}

func TestRoundToNearestEven(t *testing.T) {
	// 1 + 2^-11 sits exactly between 1.0 and the next half; ties go to
	// the even mantissa, which is 1.0 here.
	between := float32(1 + math.Ldexp(1, -11))
	if got := FromFloat32(between); got != One {
		t.Errorf("FromFloat32(1+2^-11) = 0x%04X, want 0x%04X (tie to even)", uint16(got), uint16(One))
	}
	// Slightly above the tie rounds up.
	above := float32(1 + math.Ldexp(1, -11) + math.Ldexp(1, -20))
	if got := FromFloat32(above); got != One+1 {
		t.Errorf("FromFloat32(just above tie) = 0x%04X, want 0x%04X", uint16(got), uint16(One+1))
	}
}

func TestEveryHalfSurvivesTheRoundTrip(t *testing.T) {
	// Float32 widening is exact, so narrowing back must reproduce every
	// bit pattern. NaNs keep their sign and NaN-ness, not their payload.
	for bits := 0; bits <= 0xFFFF; bits++ {
		h := Half(bits)
		back := FromFloat32(h.Float32())
		if h.IsNaN() {
			if !back.IsNaN() {
				t.Fatalf("NaN 0x%04X round-tripped to non-NaN 0x%04X", bits, uint16(back))
			}
			continue
		}
		if back != h {
			t.Fatalf("0x%04X round-tripped to 0x%04X", bits, uint16(back))
		}
	}
}

func TestNormalizedByte(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		h := FromNormalizedByte(uint8(v))
		if got := h.NormalizedByte(); got != uint8(v) {
			t.Errorf("NormalizedByte round trip of %d = %d", v, got)
		}
	}
	if got := NaN.NormalizedByte(); got != 0 {
		t.Errorf("NaN.NormalizedByte() = %d, want 0", got)
	}
	if got := Inf.NormalizedByte(); got != 255 {
		t.Errorf("Inf.NormalizedByte() = %d, want 255", got)
	}
	if got := NegOne.NormalizedByte(); got != 0 {
		t.Errorf("NegOne.NormalizedByte() = %d, want 0", got)
	}
}
