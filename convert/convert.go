// Package convert translates pixel data between the formats described by
// package pix.
//
// Conversion works channel by channel: each channel present in both
// formats is extracted, adjusted to the target's bit width and encoding,
// and inserted at the target's position. Channels the target has but the
// source lacks become zero, except alpha, which fills fully opaque so
// opaque images stay opaque. Widening replicates bit patterns (the
// source maximum reaches the target maximum exactly), narrowing rounds
// to nearest, and float channels normalize over [0,1] for unsigned and
// [-1,1] for signed integer data.
//
// Every pair of described formats has a converter. The set is built once
// at package load from the formats' channel descriptions, so formats
// added to pix become convertible without code here changing.
package convert

import (
	"fmt"

	"github.com/gogpu/pix"
)

// RowConverter copies pixelCount pixels from src to dst, translating
// between the two pixel formats it was built for. Slices must hold at
// least pixelCount pixels in the respective format's size; regions must
// not overlap.
type RowConverter func(src, dst []byte, pixelCount int)

type pair struct {
	src, dst pix.Format
}

var registry map[pair]RowConverter

func init() {
	formats := pix.Formats()
	registry = make(map[pair]RowConverter, len(formats)*len(formats))
	for _, s := range formats {
		for _, d := range formats {
			registry[pair{s, d}] = makeConverter(s, d)
		}
	}
}

// GetRowConverter returns the converter translating rows of source
// pixels into target pixels. Both formats must be described; an unknown
// id on either side reports pix.ErrUnsupportedFormat.
func GetRowConverter(source, target pix.Format) (RowConverter, error) {
	conv, ok := registry[pair{source, target}]
	if !ok {
		return nil, fmt.Errorf("convert: %v to %v: %w", source, target, pix.ErrUnsupportedFormat)
	}
	return conv, nil
}

// Convert translates the pixels of src into dst, honoring both strides.
// The bitmaps must agree in width and height; their formats may be any
// described pair. Converting a bitmap into an equally formatted one
// copies the pixels unchanged.
func Convert(dst, src *pix.Bitmap) error {
	if dst.Width() != src.Width() || dst.Height() != src.Height() {
		return fmt.Errorf("convert: %dx%d into %dx%d: %w",
			src.Width(), src.Height(), dst.Width(), dst.Height(), pix.ErrSizeMismatch)
	}
	conv, err := GetRowConverter(src.Format(), dst.Format())
	if err != nil {
		return err
	}
	srcMem := src.Access()
	dstMem := dst.Access()
	if srcMem.Pixels == nil || dstMem.Pixels == nil {
		return fmt.Errorf("convert: %w", pix.ErrReleased)
	}
	for y := 0; y < srcMem.Height; y++ {
		conv(srcMem.Row(y), dstMem.Row(y), srcMem.Width)
	}
	return nil
}

// ConvertTo returns a new bitmap holding src's image in the target
// format.
func ConvertTo(src *pix.Bitmap, target pix.Format) (*pix.Bitmap, error) {
	dst, err := pix.NewBitmap(src.Width(), src.Height(), target)
	if err != nil {
		return nil, err
	}
	if err := Convert(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}
