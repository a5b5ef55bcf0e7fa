package pix

import "fmt"

// PixelIterator walks the pixels of a BitmapMemory in row-major order,
// honoring the stride so padding bytes are never touched. It is the
// building block for per-pixel algorithms that do not want to redo
// offset math: codecs filling rows from a decoder, or color-model code
// reading one pixel at a time.
//
// The iterator starts on the first pixel. Next and Skip advance it;
// once it steps past the last pixel it stays exhausted until MoveTo
// repositions it.
type PixelIterator struct {
	mem       BitmapMemory
	pixelSize int
	x, y      int
	done      bool
}

// NewPixelIterator returns an iterator positioned on pixel (0,0) of the
// described memory.
func NewPixelIterator(mem BitmapMemory) *PixelIterator {
	return &PixelIterator{mem: mem, pixelSize: mem.Format.BytesPerBlock()}
}

// At returns the current pixel position.
func (it *PixelIterator) At() (x, y int) { return it.x, it.y }

// Done reports whether the iterator has stepped past the last pixel.
func (it *PixelIterator) Done() bool { return it.done }

// Index returns the byte offset of the current pixel within the memory's
// Pixels slice.
func (it *PixelIterator) Index() int {
	return it.y*it.mem.Stride + it.x*it.pixelSize
}

// Bytes returns the current pixel's bytes. The slice aliases the
// underlying memory; writing through it writes the pixel.
func (it *PixelIterator) Bytes() []byte {
	i := it.Index()
	return it.mem.Pixels[i : i+it.pixelSize : i+it.pixelSize]
}

// Next advances to the following pixel, wrapping to the next row at the
// end of each one. It reports whether the new position is still inside
// the image.
func (it *PixelIterator) Next() bool {
	if it.done {
		return false
	}
	it.x++
	if it.x >= it.mem.Width {
		it.x = 0
		it.y++
		if it.y >= it.mem.Height {
			it.x, it.y = it.mem.Width-1, it.mem.Height-1
			it.done = true
			return false
		}
	}
	return true
}

// Skip advances by the given number of pixels in row-major order, as if
// calling Next that many times. It reports whether the iterator is
// still inside the image.
func (it *PixelIterator) Skip(pixels int) bool {
	if it.done || pixels < 0 {
		return !it.done
	}
	flat := it.y*it.mem.Width + it.x + pixels
	if flat >= it.mem.Width*it.mem.Height {
		it.x, it.y = it.mem.Width-1, it.mem.Height-1
		it.done = true
		return false
	}
	it.x, it.y = flat%it.mem.Width, flat/it.mem.Width
	return true
}

// SkipRows moves the given number of rows down, keeping the current
// column. It reports whether the iterator is still inside the image.
func (it *PixelIterator) SkipRows(rows int) bool {
	if it.done || rows < 0 {
		return !it.done
	}
	if it.y+rows >= it.mem.Height {
		it.y = it.mem.Height - 1
		it.done = true
		return false
	}
	it.y += rows
	return true
}

// MoveTo repositions the iterator on pixel (x, y), clearing any
// exhausted state. Positions outside the image report ErrOutOfBounds
// and leave the iterator unchanged.
func (it *PixelIterator) MoveTo(x, y int) error {
	if x < 0 || y < 0 || x >= it.mem.Width || y >= it.mem.Height {
		return fmt.Errorf("pix: iterator move to (%d,%d) of %dx%d: %w",
			x, y, it.mem.Width, it.mem.Height, ErrOutOfBounds)
	}
	it.x, it.y = x, y
	it.done = false
	return nil
}
