// Package scale resizes bitmaps.
//
// The resampling numerics come from golang.org/x/image/draw. Bitmaps
// are first normalized into an intermediate format the resampler can
// consume without losing channel detail, picked from the source and
// target formats: 8-bit channels resample as 8-bit RGBA, anything wider
// as 16-bit RGBA. Signed integer channels enter the 16-bit intermediate
// through the lossless sign-offset map and come back unharmed.
// Floating-point channels quantize to 16 bits for the resampling pass,
// values outside [0,1] clamp; x/image/draw has no float image type to
// carry them exactly.
package scale

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/convert"
)

// Method selects the resampling filter used to interpolate between
// source pixels.
type Method int

const (
	// Nearest picks the closest source pixel. Fast, hard edges.
	Nearest Method = iota

	// Bilinear blends the four closest source pixels. Soft results,
	// tends to blur on strong downscaling.
	Bilinear

	// CatmullRom interpolates with a Catmull-Rom spline. The slowest
	// of the three and the usual choice for quality.
	CatmullRom
)

// String returns the method's name.
func (m Method) String() string {
	switch m {
	case Nearest:
		return "Nearest"
	case Bilinear:
		return "Bilinear"
	case CatmullRom:
		return "CatmullRom"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

func (m Method) scaler() (draw.Scaler, error) {
	switch m {
	case Nearest:
		return draw.NearestNeighbor, nil
	case Bilinear:
		return draw.BiLinear, nil
	case CatmullRom:
		return draw.CatmullRom, nil
	default:
		return nil, fmt.Errorf("scale: unknown resampling method %d: %w", int(m), pix.ErrUnsupportedFormat)
	}
}

// Rescale returns a new bitmap holding src resampled to the given
// dimensions, in src's pixel format.
func Rescale(src *pix.Bitmap, width, height int, method Method) (*pix.Bitmap, error) {
	dst, err := pix.NewBitmap(width, height, src.Format())
	if err != nil {
		return nil, err
	}
	if err := RescaleInto(dst, src, method); err != nil {
		return nil, err
	}
	return dst, nil
}

// RescaleInto resamples src into dst, which keeps its dimensions and
// format. Source and target formats may differ; the pixels convert
// through the resampling intermediate.
func RescaleInto(dst, src *pix.Bitmap, method Method) error {
	scaler, err := method.scaler()
	if err != nil {
		return err
	}

	// 8-bit unsigned data resamples without detail loss in 8-bit;
	// everything else needs the 16-bit intermediate.
	wide := src.Format().IsSigned() || dst.Format().IsSigned() ||
		src.Format().WidestChannelBits() > 8 || dst.Format().WidestChannelBits() > 8

	var srcImg image.Image
	var dstImg draw.Image
	if wide {
		img, err := convert.ToNRGBA64(src)
		if err != nil {
			return err
		}
		srcImg = img
		dstImg = image.NewNRGBA64(image.Rect(0, 0, dst.Width(), dst.Height()))
	} else {
		img, err := convert.ToNRGBA(src)
		if err != nil {
			return err
		}
		srcImg = img
		dstImg = image.NewNRGBA(image.Rect(0, 0, dst.Width(), dst.Height()))
	}
	pix.Logger().Debug("scale: resampling",
		"from", fmt.Sprintf("%dx%d", src.Width(), src.Height()),
		"to", fmt.Sprintf("%dx%d", dst.Width(), dst.Height()),
		"method", method.String(), "wide", wide)

	scaler.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)

	resampled, err := convert.FromImage(dstImg)
	if err != nil {
		return err
	}
	return convert.Convert(dst, resampled)
}
