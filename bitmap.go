package pix

import (
	"fmt"
	"sync/atomic"
)

// sharedBuffer is the backing store shared by a bitmap and any views
// derived from it. owners counts the bitmaps currently attached; the
// pixel bytes stay reachable until the last one releases or is collected.
type sharedBuffer struct {
	owners atomic.Int32
	data   []byte
}

func newSharedBuffer(size int) *sharedBuffer {
	buf := &sharedBuffer{data: make([]byte, size)}
	buf.owners.Store(1)
	return buf
}

// Bitmap is a two-dimensional pixel surface in one of the described
// formats. Bitmaps hand out views into their pixels and share backing
// buffers by reference counting, so cropping and aliasing never copy.
//
// Pass bitmaps by pointer. A single Bitmap is not safe for concurrent
// mutation, but distinct bitmaps sharing one buffer may be used from
// different goroutines as long as their pixel regions do not overlap.
type Bitmap struct {
	buf    *sharedBuffer
	offset int
	width  int
	height int
	stride int
	format Format
}

// NewBitmap allocates a bitmap of the given dimensions with a tight,
// freshly zeroed pixel buffer.
func NewBitmap(width, height int, format Format) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pix: new bitmap %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("pix: new bitmap: format 0x%08X: %w", uint32(format), ErrUnsupportedFormat)
	}
	blockW, blockH := format.BlockSize()
	if width > (maxInt-7)/format.BitsPerPixel() {
		return nil, fmt.Errorf("pix: new bitmap %dx%d: %w", width, height, ErrOutOfMemory)
	}
	stride := format.RequiredBytes(nextMultiple(width, blockW))
	size, ok := mulInt(stride, nextMultiple(height, blockH))
	if !ok {
		return nil, fmt.Errorf("pix: new bitmap %dx%d: %w", width, height, ErrOutOfMemory)
	}
	return &Bitmap{
		buf:    newSharedBuffer(size),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// NewBitmapFromMemory wraps caller-owned pixel memory in a bitmap
// without copying. The caller keeps ownership of the bytes and must keep
// them valid for the bitmap's lifetime; the bitmap writes through to
// them. Clone or Autonomize breaks the tie when independent pixels are
// needed.
func NewBitmapFromMemory(mem BitmapMemory) (*Bitmap, error) {
	if err := mem.validate(); err != nil {
		return nil, err
	}
	buf := &sharedBuffer{data: mem.Pixels}
	buf.owners.Store(1)
	return &Bitmap{
		buf:    buf,
		width:  mem.Width,
		height: mem.Height,
		stride: mem.Stride,
		format: mem.Format,
	}, nil
}

// Width returns the bitmap's width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap's height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Stride returns the byte distance between the starts of adjacent rows.
func (b *Bitmap) Stride() int { return b.stride }

// Format returns the bitmap's pixel format.
func (b *Bitmap) Format() Format { return b.format }

// Access returns the bitmap's memory description for direct pixel work.
// The Pixels slice aliases the backing store: writes through it are seen
// by every bitmap sharing that store. After Release the zero value is
// returned.
func (b *Bitmap) Access() BitmapMemory {
	if b.buf == nil {
		return BitmapMemory{}
	}
	end := b.offset + (b.height-1)*b.stride + b.format.RequiredBytes(b.width)
	return BitmapMemory{
		Width:  b.width,
		Height: b.height,
		Stride: b.stride,
		Format: b.format,
		Pixels: b.buf.data[b.offset:end:end],
	}
}

// Clone returns a deep copy of the visible region in a new, tightly
// strided, exclusively owned buffer.
func (b *Bitmap) Clone() (*Bitmap, error) {
	if b.buf == nil {
		return nil, fmt.Errorf("pix: clone: %w", ErrReleased)
	}
	clone, err := NewBitmap(b.width, b.height, b.format)
	if err != nil {
		return nil, err
	}
	copyRows(clone.Access(), b.Access())
	return clone, nil
}

// View returns a bitmap exposing the sub-region of b starting at pixel
// (x, y) with the given dimensions. The view shares b's backing store
// and inherits its stride; writes through either are visible to both.
// Releasing b afterwards leaves the view's pixels valid.
func (b *Bitmap) View(x, y, width, height int) (*Bitmap, error) {
	if b.buf == nil {
		return nil, fmt.Errorf("pix: view: %w", ErrReleased)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pix: view %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if x < 0 || y < 0 || x > b.width-width || y > b.height-height {
		return nil, fmt.Errorf("pix: view %dx%d at (%d,%d) of %dx%d: %w",
			width, height, x, y, b.width, b.height, ErrOutOfBounds)
	}
	b.buf.owners.Add(1)
	return &Bitmap{
		buf:    b.buf,
		offset: b.offset + y*b.stride + b.format.RequiredBytes(x),
		width:  width,
		height: height,
		stride: b.stride,
		format: b.format,
	}, nil
}

// Autonomize ensures the bitmap is the sole owner of its pixels. When
// the backing store is shared, the visible region is copied into a fresh
// tightly strided buffer and the old store's owner count drops by one.
// A bitmap that already owns its store exclusively is left untouched.
func (b *Bitmap) Autonomize() error {
	if b.buf == nil {
		return fmt.Errorf("pix: autonomize: %w", ErrReleased)
	}
	if b.buf.owners.Load() == 1 {
		return nil
	}
	fresh, err := NewBitmap(b.width, b.height, b.format)
	if err != nil {
		return fmt.Errorf("pix: autonomize: %w", err)
	}
	copyRows(fresh.Access(), b.Access())
	b.buf.owners.Add(-1)
	b.buf = fresh.buf
	b.offset = 0
	b.stride = fresh.stride
	Logger().Debug("pix: autonomized shared pixel buffer",
		"width", b.width, "height", b.height, "format", b.format.String())
	return nil
}

// ReinterpretFormat relabels the pixel bytes as newFormat without
// touching them. Only formats with identical bits per pixel can relabel
// each other; anything else would change row sizes underneath the
// existing buffer.
func (b *Bitmap) ReinterpretFormat(newFormat Format) error {
	if b.buf == nil {
		return fmt.Errorf("pix: reinterpret: %w", ErrReleased)
	}
	if !newFormat.IsValid() {
		return fmt.Errorf("pix: reinterpret to 0x%08X: %w", uint32(newFormat), ErrUnsupportedFormat)
	}
	if newFormat.BitsPerPixel() != b.format.BitsPerPixel() {
		return fmt.Errorf("pix: reinterpret %v (%d bpp) as %v (%d bpp): %w",
			b.format, b.format.BitsPerPixel(), newFormat, newFormat.BitsPerPixel(), ErrFormatMismatch)
	}
	b.format = newFormat
	return nil
}

// Release detaches the bitmap from its backing store, decrementing the
// store's owner count. Pixels of a shared store stay valid for the
// remaining owners. Release is idempotent; most operations on a released
// bitmap report ErrReleased.
//
// Calling Release is optional: an unreferenced bitmap is collected like
// any other value. It exists for deterministic hand-off of large buffers
// and for making sharing observable to Autonomize.
func (b *Bitmap) Release() {
	if b.buf == nil {
		return
	}
	b.buf.owners.Add(-1)
	b.buf = nil
}

// ownerCount reports how many bitmaps currently share the backing store.
func (b *Bitmap) ownerCount() int32 {
	if b.buf == nil {
		return 0
	}
	return b.buf.owners.Load()
}

// copyRows copies the pixel rows of src into dst. Both must agree in
// width, height and format; strides may differ.
func copyRows(dst, src BitmapMemory) {
	rowBytes := src.Format.RequiredBytes(src.Width)
	for y := 0; y < src.Height; y++ {
		copy(dst.Pixels[y*dst.Stride:y*dst.Stride+rowBytes],
			src.Pixels[y*src.Stride:y*src.Stride+rowBytes])
	}
}
