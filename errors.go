package pix

import "errors"

// Package errors. All are matchable with errors.Is; operations that add
// context wrap these sentinels with fmt.Errorf.
var (
	// ErrSizeMismatch is returned when two bitmaps that must agree in
	// width and height do not.
	ErrSizeMismatch = errors.New("pix: bitmap dimensions do not match")

	// ErrFormatMismatch is returned when a format change would alter
	// the number of bits per pixel.
	ErrFormatMismatch = errors.New("pix: pixel formats are not compatible")

	// ErrUnsupportedFormat is returned when an id names no described
	// pixel format.
	ErrUnsupportedFormat = errors.New("pix: unsupported pixel format")

	// ErrOutOfMemory is returned when the byte size of a requested
	// pixel buffer cannot be represented or allocated.
	ErrOutOfMemory = errors.New("pix: pixel buffer too large")

	// ErrInvalidDimensions is returned when a width or height is not
	// positive.
	ErrInvalidDimensions = errors.New("pix: invalid dimensions")

	// ErrInvalidStride is returned when a stride is smaller than one
	// row of pixels requires.
	ErrInvalidStride = errors.New("pix: invalid stride")

	// ErrDataTooSmall is returned when a caller-supplied pixel buffer
	// cannot hold the image it claims to describe.
	ErrDataTooSmall = errors.New("pix: pixel data too small")

	// ErrOutOfBounds is returned when a requested region reaches outside
	// the bitmap.
	ErrOutOfBounds = errors.New("pix: region out of bounds")

	// ErrReleased is returned when a bitmap is used after Release.
	ErrReleased = errors.New("pix: bitmap already released")
)
