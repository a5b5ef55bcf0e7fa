package gpuformat

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/pix"
)

func TestTextureFormat(t *testing.T) {
	tests := []struct {
		format pix.Format
		want   gputypes.TextureFormat
	}{
		{pix.FormatR8Unsigned, gputypes.TextureFormatR8Unorm},
		{pix.FormatR8G8B8A8Unsigned, gputypes.TextureFormatRGBA8Unorm},
		{pix.FormatB8G8R8A8Unsigned, gputypes.TextureFormatBGRA8Unorm},
		{pix.FormatR16G16B16A16FloatNative16, gputypes.TextureFormatRGBA16Float},
		{pix.FormatR32G32B32A32FloatNative32, gputypes.TextureFormatRGBA32Float},
		{pix.FormatA2B10G10R10UnsignedNative32, gputypes.TextureFormatRGB10A2Unorm},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got, err := TextureFormat(tt.format)
			if err != nil {
				t.Fatalf("TextureFormat() = %v", err)
			}
			if got != tt.want {
				t.Errorf("TextureFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextureFormatUnsupported(t *testing.T) {
	// Formats without a bit-exact WebGPU layout must not map.
	for _, f := range []pix.Format{
		pix.FormatR8G8B8Unsigned, // 24-bit, no WebGPU equivalent
		pix.FormatR5G6B5UnsignedNative16,
		pix.FormatA8B8G8R8Unsigned,
		pix.Format(0xBAD),
	} {
		if _, err := TextureFormat(f); !errors.Is(err, pix.ErrUnsupportedFormat) {
			t.Errorf("TextureFormat(%v) err = %v, want ErrUnsupportedFormat", f, err)
		}
	}
}

func TestPixelFormatInvertsTextureFormat(t *testing.T) {
	for _, f := range Supported() {
		tf, err := TextureFormat(f)
		if err != nil {
			t.Fatalf("TextureFormat(%v) = %v", f, err)
		}
		back, err := PixelFormat(tf)
		if err != nil {
			t.Fatalf("PixelFormat(%v) = %v", tf, err)
		}
		if back != f {
			t.Errorf("round trip of %v = %v", f, back)
		}
	}
}

func TestPixelFormatUnsupported(t *testing.T) {
	if _, err := PixelFormat(gputypes.TextureFormatUndefined); !errors.Is(err, pix.ErrUnsupportedFormat) {
		t.Errorf("PixelFormat(Undefined) err = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := PixelFormat(gputypes.TextureFormatDepth24PlusStencil8); !errors.Is(err, pix.ErrUnsupportedFormat) {
		t.Errorf("PixelFormat(depth/stencil) err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSupportedListsMappedFormatsOnly(t *testing.T) {
	supported := Supported()
	if len(supported) != len(textureFormats) {
		t.Errorf("Supported() lists %d formats, table has %d", len(supported), len(textureFormats))
	}
	for _, f := range supported {
		if _, ok := textureFormats[f]; !ok {
			t.Errorf("Supported() lists unmapped format %v", f)
		}
	}
}
