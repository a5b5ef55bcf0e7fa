// Package bitadjust converts color channel values between bit widths and
// numeric encodings. Widening replicates bit patterns so that a channel's
// maximum always maps to the wider maximum; narrowing rounds to the
// nearest representable value. Sign and float conversions follow the
// conventions shared by GPU norm formats: unsigned values normalize over
// [0,1], signed values over [-1,1] with a symmetric integer range.
package bitadjust

import "golang.org/x/exp/constraints"

// Mask returns a value with the low bits set.
func Mask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

// Widen stretches an unsigned channel value from one bit width to a
// larger one by replicating its bit pattern downward. Replication keeps
// zero at zero and the maximum at the maximum, and stays within one step
// of the ideal v*(2^to-1)/(2^from-1) everywhere in between (it is exact
// whenever from divides to).
//
// T must be wide enough to hold "to" bits.
func Widen[T constraints.Unsigned](v T, from, to int) T {
	v &= T(Mask(from))
	out := v << (to - from)
	for filled := from; filled < to; filled *= 2 {
		out |= out >> filled
	}
	return out
}

// Narrow reduces an unsigned channel value from one bit width to a
// smaller one, rounding to the nearest representable value. Zero and the
// maximum are preserved exactly.
func Narrow[T constraints.Unsigned](v T, from, to int) T {
	fromMax := Mask(from)
	toMax := Mask(to)
	scaled := uint64(v&T(fromMax))*toMax + fromMax/2
	return T(scaled / fromMax)
}

// Adjust converts an unsigned channel value between arbitrary bit widths,
// widening or narrowing as needed.
func Adjust[T constraints.Unsigned](v T, from, to int) T {
	switch {
	case from < to:
		return Widen(v, from, to)
	case from > to:
		return Narrow(v, from, to)
	default:
		return v & T(Mask(from))
	}
}

// FlipSign translates a channel value between its unsigned and two's
// complement signed encodings of the same width by inverting the sign
// bit. The map is its own inverse: the signed minimum exchanges with
// unsigned zero, and the unsigned value one past the midpoint exchanges
// with signed zero.
func FlipSign[T constraints.Unsigned](v T, bits int) T {
	return (v ^ (T(1) << (bits - 1))) & T(Mask(bits))
}

// Normalize maps an unsigned channel value onto [0,1], dividing by the
// channel's maximum. Channels wider than float32's 24-bit mantissa are
// pre-shifted so the division happens on bits the mantissa can hold.
func Normalize(v uint32, bits int) float32 {
	mask := Mask(bits)
	value := uint64(v) & mask
	if bits > 24 {
		shift := bits - 24
		value >>= shift
		mask >>= shift
	}
	return float32(value) / float32(mask)
}

// Denormalize maps a [0,1] float onto an unsigned channel of the given
// width: values outside [0,1] clamp, in-range values scale by the
// channel maximum and truncate toward zero.
func Denormalize(f float32, bits int) uint32 {
	if !(f > 0) { // also catches NaN
		return 0
	}
	if f > 1 {
		f = 1
	}
	m := Mask(bits)
	return uint32(uint64(float64(f)*float64(m)) & m)
}

// NormalizeSigned maps a two's complement channel value of the given
// width onto [-1,1]. The scale is the symmetric positive maximum
// 2^(bits-1)-1, so both -max and +max reach exactly -1 and 1; the one
// extra negative value clamps to -1.
func NormalizeSigned(v uint32, bits int) float32 {
	mask := uint32(Mask(bits))
	v &= mask
	signBit := uint32(1) << (bits - 1)
	var s int64
	if v&signBit != 0 {
		s = int64(v) - int64(signBit)*2
	} else {
		s = int64(v)
	}
	f := float32(s) / float32(mask>>1)
	if f < -1 {
		return -1
	}
	return f
}

// DenormalizeSigned maps a [-1,1] float onto the two's complement bit
// pattern of a signed channel of the given width: values outside the
// range clamp, in-range values scale by 2^(bits-1)-1 and truncate
// toward zero. The returned pattern occupies the low bits.
func DenormalizeSigned(f float32, bits int) uint32 {
	switch {
	case f != f: // NaN
		return 0
	case f < -1:
		f = -1
	case f > 1:
		f = 1
	}
	limit := float64(Mask(bits) >> 1)
	s := int64(float64(f) * limit)
	return uint32(s) & uint32(Mask(bits))
}
