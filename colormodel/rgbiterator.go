package colormodel

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/convert"
)

// RgbIterator walks a bitmap's pixels as normalized RGB colors,
// regardless of the underlying pixel format. Each read decodes the
// current pixel through the conversion registry, each write encodes an
// RGB color back into the pixel's own format, so filters and drawing
// code can run against any described format without format switches.
//
// The per-pixel conversion carries real cost; format-specific code is
// the faster choice for hot paths. Position and traversal come from
// the embedded PixelIterator.
type RgbIterator struct {
	*pix.PixelIterator
	decode  convert.RowConverter
	encode  convert.RowConverter
	scratch [16]byte
}

// NewRgbIterator returns an RGB iterator positioned on pixel (0,0) of
// the described memory. The memory's format must be a described one or
// pix.ErrUnsupportedFormat is returned.
func NewRgbIterator(mem pix.BitmapMemory) (*RgbIterator, error) {
	decode, err := convert.GetRowConverter(mem.Format, pix.FormatR32G32B32A32FloatNative32)
	if err != nil {
		return nil, err
	}
	encode, err := convert.GetRowConverter(pix.FormatR32G32B32A32FloatNative32, mem.Format)
	if err != nil {
		return nil, err
	}
	return &RgbIterator{
		PixelIterator: pix.NewPixelIterator(mem),
		decode:        decode,
		encode:        encode,
	}, nil
}

// Color reads the current pixel as a normalized RGB color. Unsigned
// channels land in [0,1], signed ones in [-1,1]; a missing alpha
// channel reads as opaque.
func (it *RgbIterator) Color() RGB {
	it.decode(it.Bytes(), it.scratch[:], 1)
	return RGB{
		R:     math.Float32frombits(binary.LittleEndian.Uint32(it.scratch[0:4])),
		G:     math.Float32frombits(binary.LittleEndian.Uint32(it.scratch[4:8])),
		B:     math.Float32frombits(binary.LittleEndian.Uint32(it.scratch[8:12])),
		Alpha: math.Float32frombits(binary.LittleEndian.Uint32(it.scratch[12:16])),
	}
}

// SetColor writes an RGB color into the current pixel, encoding it in
// the memory's pixel format. Channels the format does not carry are
// dropped; values outside the format's range clamp.
func (it *RgbIterator) SetColor(c RGB) {
	binary.LittleEndian.PutUint32(it.scratch[0:4], math.Float32bits(c.R))
	binary.LittleEndian.PutUint32(it.scratch[4:8], math.Float32bits(c.G))
	binary.LittleEndian.PutUint32(it.scratch[8:12], math.Float32bits(c.B))
	binary.LittleEndian.PutUint32(it.scratch[12:16], math.Float32bits(c.Alpha))
	it.encode(it.scratch[:], it.Bytes(), 1)
}
