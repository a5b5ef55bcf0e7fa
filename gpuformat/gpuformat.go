// Package gpuformat maps pixel formats onto WebGPU texture formats.
//
// The mapping is a pure table: only formats whose memory layout matches
// a WebGPU texture format bit for bit appear in it, so pixel buffers can
// move between the two worlds without conversion. Device handling,
// texture creation and uploads are out of scope; callers pass the
// returned enumerant to whatever GPU layer they use.
package gpuformat

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/pix"
)

// textureFormats pairs each pixel format with the WebGPU texture format
// of identical memory layout. Only core-spec texture formats appear;
// 16-bit normalized formats are feature-gated in WebGPU and stay
// unmapped.
var textureFormats = map[pix.Format]gputypes.TextureFormat{
	pix.FormatR8Unsigned:                  gputypes.TextureFormatR8Unorm,
	pix.FormatR8G8Unsigned:                gputypes.TextureFormatRG8Unorm,
	pix.FormatR8G8B8A8Unsigned:            gputypes.TextureFormatRGBA8Unorm,
	pix.FormatR8G8B8A8Signed:              gputypes.TextureFormatRGBA8Snorm,
	pix.FormatB8G8R8A8Unsigned:            gputypes.TextureFormatBGRA8Unorm,
	pix.FormatR16FloatNative16:            gputypes.TextureFormatR16Float,
	pix.FormatR16G16FloatNative16:         gputypes.TextureFormatRG16Float,
	pix.FormatR16G16B16A16FloatNative16:   gputypes.TextureFormatRGBA16Float,
	pix.FormatR32FloatNative32:            gputypes.TextureFormatR32Float,
	pix.FormatR32G32B32A32FloatNative32:   gputypes.TextureFormatRGBA32Float,
	pix.FormatA2B10G10R10UnsignedNative32: gputypes.TextureFormatRGB10A2Unorm,
}

// pixelFormats is the inverse of textureFormats. Both directions are
// unique because only exact layout matches are listed.
var pixelFormats = make(map[gputypes.TextureFormat]pix.Format, len(textureFormats))

func init() {
	for pf, tf := range textureFormats {
		pixelFormats[tf] = pf
	}
}

// TextureFormat returns the WebGPU texture format whose memory layout
// equals f's, or pix.ErrUnsupportedFormat when no core texture format
// matches.
func TextureFormat(f pix.Format) (gputypes.TextureFormat, error) {
	tf, ok := textureFormats[f]
	if !ok {
		return gputypes.TextureFormatUndefined,
			fmt.Errorf("gpuformat: %v has no WebGPU equivalent: %w", f, pix.ErrUnsupportedFormat)
	}
	return tf, nil
}

// PixelFormat returns the pixel format whose memory layout equals the
// given WebGPU texture format's, or pix.ErrUnsupportedFormat when the
// texture format is depth, stencil, compressed or otherwise unmapped.
func PixelFormat(tf gputypes.TextureFormat) (pix.Format, error) {
	f, ok := pixelFormats[tf]
	if !ok {
		return 0, fmt.Errorf("gpuformat: texture format %d has no pixel format equivalent: %w",
			tf, pix.ErrUnsupportedFormat)
	}
	return f, nil
}

// Supported returns every pixel format that maps onto a WebGPU texture
// format, in pix's enumeration order.
func Supported() []pix.Format {
	var out []pix.Format
	for _, f := range pix.Formats() {
		if _, ok := textureFormats[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
