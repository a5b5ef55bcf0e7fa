package convert

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/half"
	"github.com/gogpu/pix/internal/bitadjust"
)

// channelLayout locates one channel inside a pixel.
type channelLayout struct {
	present bool
	shift   int
	bits    int
}

// layout caches everything a conversion kernel needs about one format.
// Slots follow pix's channel order: red, green, blue, alpha.
type layout struct {
	bytes   int
	float   bool
	signed  bool
	channel [4]channelLayout
}

const alphaSlot = 3

func layoutOf(f pix.Format) layout {
	l := layout{
		bytes:  f.BytesPerBlock(),
		float:  f.IsFloat(),
		signed: f.IsSigned() && !f.IsFloat(),
	}
	if shift, ok := f.LowestRedBitIndex(); ok {
		bits, _ := f.RedBits()
		l.channel[0] = channelLayout{present: true, shift: shift, bits: bits}
	}
	if shift, ok := f.LowestGreenBitIndex(); ok {
		bits, _ := f.GreenBits()
		l.channel[1] = channelLayout{present: true, shift: shift, bits: bits}
	}
	if shift, ok := f.LowestBlueBitIndex(); ok {
		bits, _ := f.BlueBits()
		l.channel[2] = channelLayout{present: true, shift: shift, bits: bits}
	}
	if shift, ok := f.LowestAlphaBitIndex(); ok {
		bits, _ := f.AlphaBits()
		l.channel[alphaSlot] = channelLayout{present: true, shift: shift, bits: bits}
	}
	return l
}

// makeConverter builds the row converter for one format pair. Integer
// pixels travel through a 64-bit word (the widest integer format is
// 64 bits per pixel); float pixels are handled channel-wise since their
// channels always sit on byte boundaries.
func makeConverter(source, target pix.Format) RowConverter {
	if source == target {
		return makeCopy(source.BytesPerBlock())
	}
	s, d := layoutOf(source), layoutOf(target)
	switch {
	case s.float && d.float:
		return makeFloatToFloat(s, d)
	case s.float:
		return makeFloatToInt(s, d)
	case d.float:
		return makeIntToFloat(s, d)
	default:
		return makeIntToInt(s, d)
	}
}

func makeCopy(bytesPerPixel int) RowConverter {
	return func(src, dst []byte, pixelCount int) {
		copy(dst[:pixelCount*bytesPerPixel], src[:pixelCount*bytesPerPixel])
	}
}

func makeIntToInt(s, d layout) RowConverter {
	sb, db := s.bytes, d.bytes
	return func(src, dst []byte, pixelCount int) {
		for i := 0; i < pixelCount; i++ {
			w := readWord(src[i*sb:], sb)
			var out uint64
			for c, t := range d.channel {
				if !t.present {
					continue
				}
				f := s.channel[c]
				switch {
				case f.present:
					v := (w >> f.shift) & bitadjust.Mask(f.bits)
					if s.signed {
						v = bitadjust.FlipSign(v, f.bits)
					}
					v = bitadjust.Adjust(v, f.bits, t.bits)
					if d.signed {
						v = bitadjust.FlipSign(v, t.bits)
					}
					out |= v << t.shift
				case c == alphaSlot:
					out |= opaqueBits(t.bits, d.signed) << t.shift
				}
			}
			writeWord(dst[i*db:], db, out)
		}
	}
}

func makeIntToFloat(s, d layout) RowConverter {
	sb, db := s.bytes, d.bytes
	return func(src, dst []byte, pixelCount int) {
		for i := 0; i < pixelCount; i++ {
			w := readWord(src[i*sb:], sb)
			out := dst[i*db:]
			for c, t := range d.channel {
				if !t.present {
					continue
				}
				f := s.channel[c]
				var value float32
				switch {
				case f.present:
					v := uint32((w >> f.shift) & bitadjust.Mask(f.bits))
					if s.signed {
						value = bitadjust.NormalizeSigned(v, f.bits)
					} else {
						value = bitadjust.Normalize(v, f.bits)
					}
				case c == alphaSlot:
					value = 1
				}
				writeFloatChannel(out, t.shift/8, t.bits, value)
			}
		}
	}
}

func makeFloatToInt(s, d layout) RowConverter {
	sb, db := s.bytes, d.bytes
	return func(src, dst []byte, pixelCount int) {
		for i := 0; i < pixelCount; i++ {
			in := src[i*sb:]
			var out uint64
			for c, t := range d.channel {
				if !t.present {
					continue
				}
				f := s.channel[c]
				switch {
				case f.present:
					value := readFloatChannel(in, f.shift/8, f.bits)
					var v uint64
					if d.signed {
						v = uint64(bitadjust.DenormalizeSigned(value, t.bits))
					} else {
						v = uint64(bitadjust.Denormalize(value, t.bits))
					}
					out |= v << t.shift
				case c == alphaSlot:
					out |= opaqueBits(t.bits, d.signed) << t.shift
				}
			}
			writeWord(dst[i*db:], db, out)
		}
	}
}

func makeFloatToFloat(s, d layout) RowConverter {
	sb, db := s.bytes, d.bytes
	return func(src, dst []byte, pixelCount int) {
		for i := 0; i < pixelCount; i++ {
			in := src[i*sb:]
			out := dst[i*db:]
			for c, t := range d.channel {
				if !t.present {
					continue
				}
				f := s.channel[c]
				var value float32
				switch {
				case f.present:
					value = readFloatChannel(in, f.shift/8, f.bits)
				case c == alphaSlot:
					value = 1
				}
				writeFloatChannel(out, t.shift/8, t.bits, value)
			}
		}
	}
}

// opaqueBits returns the channel encoding of fully opaque alpha: all
// ones for unsigned channels, the positive maximum for signed ones.
func opaqueBits(bits int, signed bool) uint64 {
	if signed {
		return bitadjust.Mask(bits) >> 1
	}
	return bitadjust.Mask(bits)
}

// readWord loads one little-endian pixel of the given byte size. Only
// the pixel's own bytes are touched.
func readWord(b []byte, size int) uint64 {
	switch size {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 3:
		return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	case 6:
		return uint64(binary.LittleEndian.Uint32(b)) |
			uint64(binary.LittleEndian.Uint16(b[4:]))<<32
	default:
		return binary.LittleEndian.Uint64(b)
	}
}

// writeWord stores one little-endian pixel of the given byte size.
func writeWord(b []byte, size int, w uint64) {
	switch size {
	case 1:
		b[0] = byte(w)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(w))
	case 3:
		b[0], b[1], b[2] = byte(w), byte(w>>8), byte(w>>16)
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(w))
	case 6:
		binary.LittleEndian.PutUint32(b, uint32(w))
		binary.LittleEndian.PutUint16(b[4:], uint16(w>>32))
	default:
		binary.LittleEndian.PutUint64(b, w)
	}
}

// readFloatChannel loads the float channel starting at byte off.
func readFloatChannel(p []byte, off, bits int) float32 {
	if bits == 16 {
		return half.Half(binary.LittleEndian.Uint16(p[off:])).Float32()
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(p[off:]))
}

// writeFloatChannel stores a float channel starting at byte off,
// narrowing to half precision when the channel is 16 bits wide.
func writeFloatChannel(p []byte, off, bits int, f float32) {
	if bits == 16 {
		binary.LittleEndian.PutUint16(p[off:], uint16(half.FromFloat32(f)))
	} else {
		binary.LittleEndian.PutUint32(p[off:], math.Float32bits(f))
	}
}
