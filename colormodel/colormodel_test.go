package colormodel

import (
	"math"
	"testing"
)

const tolerance = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) < tolerance
}

func TestHsvFromRgbPrimaries(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSV
	}{
		{"red", RGB{R: 1, Alpha: 1}, HSV{Hue: RedHue, Saturation: 1, Value: 1, Alpha: 1}},
		{"yellow", RGB{R: 1, G: 1, Alpha: 1}, HSV{Hue: YellowHue, Saturation: 1, Value: 1, Alpha: 1}},
		{"green", RGB{G: 1, Alpha: 1}, HSV{Hue: GreenHue, Saturation: 1, Value: 1, Alpha: 1}},
		{"cyan", RGB{G: 1, B: 1, Alpha: 1}, HSV{Hue: CyanHue, Saturation: 1, Value: 1, Alpha: 1}},
		{"blue", RGB{B: 1, Alpha: 1}, HSV{Hue: BlueHue, Saturation: 1, Value: 1, Alpha: 1}},
		{"magenta", RGB{R: 1, B: 1, Alpha: 1}, HSV{Hue: MagentaHue, Saturation: 1, Value: 1, Alpha: 1}},
		{"white", RGB{R: 1, G: 1, B: 1, Alpha: 1}, HSV{Value: 1, Alpha: 1}},
		{"black", RGB{Alpha: 1}, HSV{Alpha: 1}},
		{"mid gray", RGB{R: 0.5, G: 0.5, B: 0.5, Alpha: 1}, HSV{Value: 0.5, Alpha: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HsvFromRgb(tt.in)
			if !near(got.Hue, tt.want.Hue) || !near(got.Saturation, tt.want.Saturation) ||
				!near(got.Value, tt.want.Value) || !near(got.Alpha, tt.want.Alpha) {
				t.Errorf("HsvFromRgb(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHslFromRgbAnchors(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSL
	}{
		{"red", RGB{R: 1, Alpha: 1}, HSL{Hue: RedHue, Saturation: 1, Lightness: 0.5, Alpha: 1}},
		{"green", RGB{G: 1, Alpha: 1}, HSL{Hue: GreenHue, Saturation: 1, Lightness: 0.5, Alpha: 1}},
		{"blue", RGB{B: 1, Alpha: 1}, HSL{Hue: BlueHue, Saturation: 1, Lightness: 0.5, Alpha: 1}},
		{"white", RGB{R: 1, G: 1, B: 1, Alpha: 1}, HSL{Lightness: 1, Alpha: 1}},
		{"black", RGB{Alpha: 1}, HSL{Alpha: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HslFromRgb(tt.in)
			if !near(got.Hue, tt.want.Hue) || !near(got.Saturation, tt.want.Saturation) ||
				!near(got.Lightness, tt.want.Lightness) || !near(got.Alpha, tt.want.Alpha) {
				t.Errorf("HslFromRgb(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func testColors() []RGB {
	// A spread of saturated, muted, dark and near-gray colors.
	return []RGB{
		{R: 1, Alpha: 1},
		{G: 1, Alpha: 1},
		{B: 1, Alpha: 1},
		{R: 1, G: 1, Alpha: 1},
		{R: 0.8, G: 0.3, B: 0.1, Alpha: 1},
		{R: 0.2, G: 0.9, B: 0.6, Alpha: 0.5},
		{R: 0.05, G: 0.02, B: 0.11, Alpha: 1},
		{R: 0.5, G: 0.49, B: 0.51, Alpha: 1},
		{R: 0.33, G: 0.66, B: 0.99, Alpha: 0.25},
		{R: 0.71, G: 0.71, B: 0.03, Alpha: 1},
	}
}

func TestRgbHsvRoundTrip(t *testing.T) {
	for _, c := range testColors() {
		got := RgbFromHsv(HsvFromRgb(c))
		if !near(got.R, c.R) || !near(got.G, c.G) || !near(got.B, c.B) || !near(got.Alpha, c.Alpha) {
			t.Errorf("RGB->HSV->RGB of %+v = %+v", c, got)
		}
	}
}

func TestRgbHslRoundTrip(t *testing.T) {
	for _, c := range testColors() {
		got := RgbFromHsl(HslFromRgb(c))
		if !near(got.R, c.R) || !near(got.G, c.G) || !near(got.B, c.B) || !near(got.Alpha, c.Alpha) {
			t.Errorf("RGB->HSL->RGB of %+v = %+v", c, got)
		}
	}
}

func TestHsvHslRoundTrip(t *testing.T) {
	// Through both brightness models and back to RGB.
	for _, c := range testColors() {
		hsv := HsvFromRgb(c)
		hsl := HslFromHsv(hsv)
		back := HsvFromHsl(hsl)
		if !near(back.Hue, hsv.Hue) || !near(back.Saturation, hsv.Saturation) || !near(back.Value, hsv.Value) {
			t.Errorf("HSV->HSL->HSV of %+v = %+v, want %+v", c, back, hsv)
		}
		got := RgbFromHsl(hsl)
		if !near(got.R, c.R) || !near(got.G, c.G) || !near(got.B, c.B) {
			t.Errorf("RGB->HSV->HSL->RGB of %+v = %+v", c, got)
		}
	}
}

func TestHueWrapsWholeTurns(t *testing.T) {
	base := RgbFromHsv(HSV{Hue: GreenHue, Saturation: 1, Value: 1, Alpha: 1})
	shifted := RgbFromHsv(HSV{Hue: GreenHue + 4*math.Pi, Saturation: 1, Value: 1, Alpha: 1})
	negative := RgbFromHsv(HSV{Hue: GreenHue - 2*math.Pi, Saturation: 1, Value: 1, Alpha: 1})
	for _, got := range []RGB{shifted, negative} {
		if !near(got.R, base.R) || !near(got.G, base.G) || !near(got.B, base.B) {
			t.Errorf("hue outside one turn converted to %+v, want %+v", got, base)
		}
	}
}

func TestRgbYuvRoundTrip(t *testing.T) {
	for _, system := range []System{Bt470, Bt709, Bt2020} {
		for _, c := range testColors() {
			got := RgbFromYuv(YuvFromRgb(c, system), system)
			if !near(got.R, c.R) || !near(got.G, c.G) || !near(got.B, c.B) || !near(got.Alpha, c.Alpha) {
				t.Errorf("system %d: RGB->YUV->RGB of %+v = %+v", system, c, got)
			}
		}
	}
}

func TestYuvAnchors(t *testing.T) {
	for _, system := range []System{Bt470, Bt709, Bt2020} {
		// White is pure luminance; black is the origin.
		white := YuvFromRgb(RGB{R: 1, G: 1, B: 1, Alpha: 1}, system)
		if !near(white.Y, 1) || !near(white.U, 0) || !near(white.V, 0) {
			t.Errorf("system %d: white = %+v, want Y=1 U=0 V=0", system, white)
		}
		black := YuvFromRgb(RGB{Alpha: 1}, system)
		if !near(black.Y, 0) || !near(black.U, 0) || !near(black.V, 0) {
			t.Errorf("system %d: black = %+v, want origin", system, black)
		}
		// Chroma extremes: blue maximizes U, red maximizes V.
		blue := YuvFromRgb(RGB{B: 1, Alpha: 1}, system)
		if !near(blue.U, 0.5) {
			t.Errorf("system %d: blue U = %g, want 0.5", system, blue.U)
		}
		red := YuvFromRgb(RGB{R: 1, Alpha: 1}, system)
		if !near(red.V, 0.5) {
			t.Errorf("system %d: red V = %g, want 0.5", system, red.V)
		}
	}
}
