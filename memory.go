package pix

import "fmt"

// BitmapMemory describes a raster image in caller-visible terms: its
// dimensions, row spacing, pixel format and raw bytes. It carries no
// ownership information; the Bitmap that produced it (or the caller, for
// wrapped memory) controls how long the bytes stay valid.
type BitmapMemory struct {
	// Width and Height are the image dimensions in pixels.
	Width  int
	Height int

	// Stride is the byte distance between the starts of adjacent rows,
	// at least Format.RequiredBytes(Width). Bytes past a row's pixels
	// are padding and not part of the image.
	Stride int

	// Format identifies how Pixels encodes each pixel.
	Format Format

	// Pixels holds the raw bytes. Row y begins at Pixels[y*Stride].
	Pixels []byte
}

// Row returns the pixel bytes of row y, excluding stride padding.
func (m BitmapMemory) Row(y int) []byte {
	start := y * m.Stride
	return m.Pixels[start : start+m.Format.RequiredBytes(m.Width)]
}

// validate checks that the description is internally consistent and that
// Pixels is large enough to hold it.
func (m *BitmapMemory) validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("pix: %dx%d: %w", m.Width, m.Height, ErrInvalidDimensions)
	}
	if !m.Format.IsValid() {
		return fmt.Errorf("pix: format 0x%08X: %w", uint32(m.Format), ErrUnsupportedFormat)
	}
	rowBytes := m.Format.RequiredBytes(m.Width)
	if m.Stride < rowBytes {
		return fmt.Errorf("pix: stride %d below row size %d: %w", m.Stride, rowBytes, ErrInvalidStride)
	}
	span, ok := mulInt(m.Height-1, m.Stride)
	if !ok || span > maxInt-rowBytes {
		return fmt.Errorf("pix: %dx%d stride %d: %w", m.Width, m.Height, m.Stride, ErrOutOfMemory)
	}
	if need := span + rowBytes; len(m.Pixels) < need {
		return fmt.Errorf("pix: have %d bytes, need %d: %w", len(m.Pixels), need, ErrDataTooSmall)
	}
	return nil
}

const maxInt = int(^uint(0) >> 1)

// mulInt multiplies two non-negative ints, reporting overflow.
func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// nextMultiple rounds value up to the next multiple of factor.
func nextMultiple(value, factor int) int {
	remainder := value % factor
	if remainder == 0 {
		return value
	}
	return value + factor - remainder
}
