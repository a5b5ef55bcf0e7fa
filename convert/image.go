package convert

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/pix"
)

// FromImage wraps or copies a standard library image into a bitmap.
//
// Images whose memory layout matches a pixel format exactly (NRGBA,
// Gray, Alpha) are wrapped without copying: the bitmap borrows the
// image's Pix slice and writes through to it, like
// pix.NewBitmapFromMemory. 16-bit images (NRGBA64, Gray16) store their
// channels big-endian and are copied with a byte swap. Everything else
// goes through the generic color.Color path into an RGBA bitmap.
func FromImage(img image.Image) (*pix.Bitmap, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.NRGBA:
		return wrapPix(src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y):],
			w, h, src.Stride, pix.FormatR8G8B8A8Unsigned)
	case *image.Gray:
		return wrapPix(src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y):],
			w, h, src.Stride, pix.FormatR8Unsigned)
	case *image.Alpha:
		return wrapPix(src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y):],
			w, h, src.Stride, pix.FormatA8Unsigned)
	case *image.NRGBA64:
		return swapPix(src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y):],
			w, h, src.Stride, pix.FormatR16G16B16A16UnsignedNative16)
	case *image.Gray16:
		return swapPix(src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y):],
			w, h, src.Stride, pix.FormatR16UnsignedNative16)
	}

	dst, err := pix.NewBitmap(w, h, pix.FormatR8G8B8A8Unsigned)
	if err != nil {
		return nil, err
	}
	mem := dst.Access()
	for y := 0; y < h; y++ {
		row := mem.Row(y)
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}
	return dst, nil
}

// ToImage converts a bitmap into a standard library image that loses no
// channel detail: 8-bit unsigned formats become Gray, Alpha or NRGBA
// depending on their channels, everything wider or signed or floating
// point becomes NRGBA64 (Gray16 when only red is present). Float values
// outside [0,1] clamp.
func ToImage(src *pix.Bitmap) (image.Image, error) {
	f := src.Format()
	wide := f.IsSigned() || f.WidestChannelBits() > 8
	onlyRed := f.HasRed() && !f.HasGreen() && !f.HasBlue() && !f.HasAlpha()

	switch {
	case wide && onlyRed:
		inter, err := ConvertTo(src, pix.FormatR16UnsignedNative16)
		if err != nil {
			return nil, err
		}
		img := image.NewGray16(image.Rect(0, 0, src.Width(), src.Height()))
		swapRows(img.Pix, img.Stride, inter.Access())
		return img, nil
	case wide:
		return ToNRGBA64(src)
	case onlyRed:
		inter, err := ConvertTo(src, pix.FormatR8Unsigned)
		if err != nil {
			return nil, err
		}
		mem := inter.Access()
		return &image.Gray{Pix: mem.Pixels, Stride: mem.Stride,
			Rect: image.Rect(0, 0, mem.Width, mem.Height)}, nil
	case f.HasAlpha() && !f.HasRed() && !f.HasGreen() && !f.HasBlue():
		inter, err := ConvertTo(src, pix.FormatA8Unsigned)
		if err != nil {
			return nil, err
		}
		mem := inter.Access()
		return &image.Alpha{Pix: mem.Pixels, Stride: mem.Stride,
			Rect: image.Rect(0, 0, mem.Width, mem.Height)}, nil
	default:
		return ToNRGBA(src)
	}
}

// ToNRGBA converts a bitmap into a non-premultiplied 8-bit RGBA image.
// The image owns fresh memory and does not alias the bitmap.
func ToNRGBA(src *pix.Bitmap) (*image.NRGBA, error) {
	inter, err := ConvertTo(src, pix.FormatR8G8B8A8Unsigned)
	if err != nil {
		return nil, err
	}
	mem := inter.Access()
	return &image.NRGBA{
		Pix:    mem.Pixels,
		Stride: mem.Stride,
		Rect:   image.Rect(0, 0, mem.Width, mem.Height),
	}, nil
}

// ToNRGBA64 converts a bitmap into a non-premultiplied 16-bit RGBA
// image. The image owns fresh memory and does not alias the bitmap.
func ToNRGBA64(src *pix.Bitmap) (*image.NRGBA64, error) {
	inter, err := ConvertTo(src, pix.FormatR16G16B16A16UnsignedNative16)
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA64(image.Rect(0, 0, src.Width(), src.Height()))
	swapRows(img.Pix, img.Stride, inter.Access())
	return img, nil
}

// wrapPix borrows an image's pixel bytes as a bitmap, trimming the
// slice to the described region.
func wrapPix(data []byte, w, h, stride int, format pix.Format) (*pix.Bitmap, error) {
	need := (h-1)*stride + format.RequiredBytes(w)
	if len(data) < need {
		return nil, fmt.Errorf("convert: image pixels hold %d bytes, need %d: %w",
			len(data), need, pix.ErrDataTooSmall)
	}
	return pix.NewBitmapFromMemory(pix.BitmapMemory{
		Width:  w,
		Height: h,
		Stride: stride,
		Format: format,
		Pixels: data[:need:need],
	})
}

// swapPix copies big-endian 16-bit image bytes into a fresh bitmap with
// little-endian channels.
func swapPix(data []byte, w, h, stride int, format pix.Format) (*pix.Bitmap, error) {
	dst, err := pix.NewBitmap(w, h, format)
	if err != nil {
		return nil, err
	}
	mem := dst.Access()
	rowBytes := format.RequiredBytes(w)
	for y := 0; y < h; y++ {
		swap16(mem.Row(y), data[y*stride:y*stride+rowBytes])
	}
	return dst, nil
}

// swapRows copies a bitmap's rows of little-endian 16-bit channels into
// big-endian image bytes.
func swapRows(pixels []byte, stride int, mem pix.BitmapMemory) {
	rowBytes := mem.Format.RequiredBytes(mem.Width)
	for y := 0; y < mem.Height; y++ {
		swap16(pixels[y*stride:y*stride+rowBytes], mem.Row(y))
	}
}

// swap16 copies src to dst, exchanging the bytes of each 16-bit value.
func swap16(dst, src []byte) {
	for i := 0; i+1 < len(src); i += 2 {
		dst[i], dst[i+1] = src[i+1], src[i]
	}
}
