package convert

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/pix"
)

func TestFromImageWrapsNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44})

	bmp, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage() = %v", err)
	}
	if bmp.Width() != 3 || bmp.Height() != 2 || bmp.Format() != pix.FormatR8G8B8A8Unsigned {
		t.Fatalf("FromImage() geometry = %dx%d %v", bmp.Width(), bmp.Height(), bmp.Format())
	}
	row := bmp.Access().Row(1)
	if row[4] != 0x11 || row[5] != 0x22 || row[6] != 0x33 || row[7] != 0x44 {
		t.Errorf("pixel (1,1) = %X, want 11223344", row[4:8])
	}

	// The bitmap borrows the image's pixels; writes go both ways.
	row[0] = 0xEE
	if img.Pix[img.PixOffset(0, 1)] != 0xEE {
		t.Error("write through the bitmap did not reach the image")
	}
}

func TestFromImageWrapsSubImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	img.SetGray(2, 2, color.Gray{Y: 0x99})

	sub := img.SubImage(image.Rect(1, 1, 4, 4)).(*image.Gray)
	bmp, err := FromImage(sub)
	if err != nil {
		t.Fatalf("FromImage(sub) = %v", err)
	}
	if bmp.Width() != 3 || bmp.Height() != 3 {
		t.Fatalf("FromImage(sub) geometry = %dx%d, want 3x3", bmp.Width(), bmp.Height())
	}
	if bmp.Stride() != img.Stride {
		t.Errorf("stride = %d, want parent stride %d", bmp.Stride(), img.Stride)
	}
	if got := bmp.Access().Row(1)[1]; got != 0x99 {
		t.Errorf("pixel (1,1) = 0x%02X, want 0x99", got)
	}
}

func TestFromImageSwapsNRGBA64(t *testing.T) {
	img := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	img.SetNRGBA64(0, 0, color.NRGBA64{R: 0x1234, G: 0x5678, B: 0x9ABC, A: 0xFFFF})

	bmp, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage() = %v", err)
	}
	if bmp.Format() != pix.FormatR16G16B16A16UnsignedNative16 {
		t.Fatalf("format = %v", bmp.Format())
	}
	row := bmp.Access().Row(0)
	want := []byte{0x34, 0x12, 0x78, 0x56, 0xBC, 0x9A, 0xFF, 0xFF}
	for i, b := range want {
		if row[i] != b {
			t.Errorf("byte %d = 0x%02X, want 0x%02X", i, row[i], b)
		}
	}
}

func TestFromImageGenericPath(t *testing.T) {
	// image.RGBA stores premultiplied alpha and takes the generic path.
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 0x80, G: 0x00, B: 0x00, A: 0x80})

	bmp, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage() = %v", err)
	}
	row := bmp.Access().Row(0)
	if row[3] != 0x80 {
		t.Errorf("alpha = 0x%02X, want 0x80", row[3])
	}
	if row[0] != 0xFF {
		t.Errorf("red = 0x%02X, want unpremultiplied 0xFF", row[0])
	}
}

func TestToImageChoosesRepresentation(t *testing.T) {
	tests := []struct {
		format pix.Format
		want   string
	}{
		{pix.FormatR8Unsigned, "*image.Gray"},
		{pix.FormatA8Unsigned, "*image.Alpha"},
		{pix.FormatR8G8B8A8Unsigned, "*image.NRGBA"},
		{pix.FormatB8G8R8Unsigned, "*image.NRGBA"},
		{pix.FormatR16UnsignedNative16, "*image.Gray16"},
		{pix.FormatR32FloatNative32, "*image.Gray16"},
		{pix.FormatR16G16B16A16UnsignedNative16, "*image.NRGBA64"},
		{pix.FormatA16B16G16R16FloatNative16, "*image.NRGBA64"},
		{pix.FormatR8G8B8A8Signed, "*image.NRGBA64"},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			bmp, err := pix.NewBitmap(2, 2, tt.format)
			if err != nil {
				t.Fatalf("NewBitmap() = %v", err)
			}
			img, err := ToImage(bmp)
			if err != nil {
				t.Fatalf("ToImage() = %v", err)
			}
			if got := typeName(img); got != tt.want {
				t.Errorf("ToImage() returned %s, want %s", got, tt.want)
			}
		})
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *image.Gray:
		return "*image.Gray"
	case *image.Gray16:
		return "*image.Gray16"
	case *image.Alpha:
		return "*image.Alpha"
	case *image.NRGBA:
		return "*image.NRGBA"
	case *image.NRGBA64:
		return "*image.NRGBA64"
	default:
		return "unknown"
	}
}

func TestToImagePixelValues(t *testing.T) {
	bmp, err := pix.NewBitmap(2, 1, pix.FormatB8G8R8A8Unsigned)
	if err != nil {
		t.Fatalf("NewBitmap() = %v", err)
	}
	copy(bmp.Access().Row(0), []byte{
		0x33, 0x22, 0x11, 0xFF, // BGRA: red 0x11 green 0x22 blue 0x33
		0x00, 0x00, 0xFF, 0x80,
	})

	img, err := ToImage(bmp)
	if err != nil {
		t.Fatalf("ToImage() = %v", err)
	}
	nrgba := img.(*image.NRGBA)
	if got := nrgba.NRGBAAt(0, 0); got != (color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}) {
		t.Errorf("pixel (0,0) = %+v", got)
	}
	if got := nrgba.NRGBAAt(1, 0); got != (color.NRGBA{R: 0xFF, A: 0x80}) {
		t.Errorf("pixel (1,0) = %+v", got)
	}
}

func TestImageRoundTrip(t *testing.T) {
	src, err := pix.NewBitmap(3, 3, pix.FormatR8G8B8A8Unsigned)
	if err != nil {
		t.Fatalf("NewBitmap() = %v", err)
	}
	mem := src.Access()
	for i := range mem.Pixels {
		mem.Pixels[i] = byte(i * 5)
	}

	img, err := ToImage(src)
	if err != nil {
		t.Fatalf("ToImage() = %v", err)
	}
	back, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage() = %v", err)
	}
	backMem := back.Access()
	for y := 0; y < 3; y++ {
		srcRow, backRow := mem.Row(y), backMem.Row(y)
		for i := range srcRow {
			if srcRow[i] != backRow[i] {
				t.Fatalf("row %d byte %d = 0x%02X, want 0x%02X", y, i, backRow[i], srcRow[i])
			}
		}
	}
}
