// Package half implements the IEEE 754 binary16 floating-point format
// used by pixel formats with 16-bit float channels.
//
// Half is a storage type: arithmetic happens in float32 after widening,
// and results narrow back with round-to-nearest-even. The full value
// range converts exactly in both directions, including subnormals,
// infinities and NaN.
package half

import "math"

// Half is an IEEE 754 half-precision value: 1 sign bit, 5 exponent bits
// (bias 15), 10 mantissa bits.
type Half uint16

// Named bit patterns.
const (
	Zero      Half = 0x0000
	NegZero   Half = 0x8000
	One       Half = 0x3C00
	NegOne    Half = 0xBC00
	Max       Half = 0x7BFF // 65504, largest finite value
	MinNormal Half = 0x0400 // 2^-14, smallest normal value
	Smallest  Half = 0x0001 // 2^-24, smallest subnormal value
	Inf       Half = 0x7C00
	NegInf    Half = 0xFC00
	NaN       Half = 0x7E00 // canonical quiet NaN
)

// FromFloat32 returns the half nearest to f, rounding ties to even.
// Values beyond the finite range become infinities; NaN stays NaN.
func FromFloat32(f float32) Half {
	bits := math.Float32bits(f)
	sign := uint16(bits >> 16 & 0x8000)
	rawExp := int(bits>>23) & 0xFF
	mant := bits & 0x7FFFFF

	if rawExp == 0xFF {
		if mant != 0 {
			return Half(sign | 0x7E00 | uint16(mant>>13))
		}
		return Half(sign | 0x7C00)
	}

	exp := rawExp - 127 + 15
	switch {
	case exp >= 31:
		return Half(sign | 0x7C00)
	case exp <= 0:
		if exp < -10 {
			// Too small for even a subnormal, flush to signed zero.
			return Half(sign)
		}
		// Subnormal result: shift the implicit leading 1 into the
		// mantissa, then round. A carry out of rounding lands in the
		// exponent bits and correctly produces the smallest normal.
		mant = (mant | 0x800000) >> uint(1-exp)
		if mant&0x1000 != 0 && mant&0x2FFF != 0 {
			mant += 0x2000
		}
		return Half(sign | uint16(mant>>13))
	}

	// Normal result. Bit 12 is the rounding bit, bits 0..11 the sticky
	// bits and bit 13 the parity of the kept mantissa.
	if mant&0x1000 != 0 && mant&0x2FFF != 0 {
		mant += 0x2000
		if mant&0x800000 != 0 {
			mant = 0
			exp++
			if exp >= 31 {
				return Half(sign | 0x7C00)
			}
		}
	}
	return Half(sign | uint16(exp)<<10 | uint16(mant>>13))
}

// Float32 widens the half to float32. The conversion is exact.
func (h Half) Float32() float32 {
	sign := uint32(h) >> 15
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF

	switch {
	case exp == 0:
		if mant == 0 {
			return math.Float32frombits(sign << 31)
		}
		// Subnormal: float32's exponent range can represent it as a
		// normal value, so shift until the leading 1 surfaces.
		exp = 127 - 15 + 1
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		mant &= 0x3FF
		return math.Float32frombits(sign<<31 | exp<<23 | mant<<13)
	case exp == 0x1F:
		if mant == 0 {
			return math.Float32frombits(sign<<31 | 0x7F800000)
		}
		return math.Float32frombits(sign<<31 | 0x7FC00000 | mant<<13)
	default:
		return math.Float32frombits(sign<<31 | (exp+127-15)<<23 | mant<<13)
	}
}

// FromNormalizedByte returns the half nearest to value/255.
func FromNormalizedByte(value uint8) Half {
	return FromFloat32(float32(value) / 255)
}

// NormalizedByte maps the half onto an unsigned byte, treating it as a
// [0,1] normalized channel: NaN and values at or below zero give 0,
// values at or above one give 255, everything between rounds to the
// nearest of the 256 steps. Inverse of FromNormalizedByte for all
// byte values.
func (h Half) NormalizedByte() uint8 {
	f := h.Float32()
	if !(f > 0) {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

// IsNaN reports whether h is any NaN pattern.
func (h Half) IsNaN() bool {
	return h&0x7C00 == 0x7C00 && h&0x3FF != 0
}

// IsInf reports whether h is positive or negative infinity.
func (h Half) IsInf() bool {
	return h&0x7FFF == 0x7C00
}
