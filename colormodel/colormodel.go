// Package colormodel converts colors between the RGB, HSV, HSL and YUV
// color models.
//
// All models use normalized float32 channels and carry alpha through
// unchanged. Hue is an angle in radians; saturation, value, lightness
// and luminance live in [0,1]; the U and V chroma coordinates live in
// [-0.5,0.5]. The model conversions are pure value math on single
// colors; RgbIterator bridges them to bitmaps by reading and writing
// any pixel format's pixels as RGB colors.
package colormodel

import "math"

// RGB is a color as normalized red, green and blue channels.
type RGB struct {
	R, G, B float32

	// Alpha is the color's opacity, 0 transparent to 1 opaque.
	Alpha float32
}

// HSV is a color as hue, saturation and value (brightness).
type HSV struct {
	// Hue is the color's angle on the color wheel in radians,
	// 0 red, 2pi/3 green, 4pi/3 blue.
	Hue        float32
	Saturation float32
	Value      float32
	Alpha      float32
}

// HSL is a color as hue, saturation and lightness. It shares HSV's hue
// wheel but blends into white above 0.5 lightness instead of saturating
// at full brightness.
type HSL struct {
	Hue        float32
	Saturation float32
	Lightness  float32
	Alpha      float32
}

// YUV is a color as luminance plus a 2D chroma coordinate. Y lives in
// [0,1], U and V in [-0.5,0.5]. The mapping between chroma and RGB
// depends on the System used to convert.
type YUV struct {
	Y, U, V float32
	Alpha   float32
}

// Hue angles of the primary and secondary colors in radians.
const (
	RedHue     = 0
	YellowHue  = math.Pi / 3
	GreenHue   = 2 * math.Pi / 3
	CyanHue    = math.Pi
	BlueHue    = 4 * math.Pi / 3
	MagentaHue = 5 * math.Pi / 3
)

// System selects the color rectangle spanned by the U and V axes.
type System int

const (
	// Bt470 is the SDTV system used by analog PAL and NTSC.
	Bt470 System = iota

	// Bt709 is the HDTV system, the most common choice for digital
	// video and the default most conversion code assumes.
	Bt709

	// Bt2020 is the UHDTV system covering a far larger color volume.
	Bt2020
)

// luminanceWeights returns the red and blue luminance coefficients of
// the system; green carries the remainder to one.
func (s System) luminanceWeights() (kr, kb float32) {
	switch s {
	case Bt470:
		return 0.299, 0.114
	case Bt2020:
		return 0.2627, 0.0593
	default:
		return 0.2126, 0.0722
	}
}

const epsilon = 1.1920929e-7

// HsvFromRgb converts a color to hue, saturation and value. Gray colors
// have zero saturation and report zero hue.
func HsvFromRgb(c RGB) HSV {
	max, min := maxMin3(c.R, c.G, c.B)
	out := HSV{Value: max, Alpha: c.Alpha}
	delta := max - min
	if delta < epsilon {
		return out
	}
	out.Saturation = delta / max
	out.Hue = hueSextant(c, max, delta) * YellowHue
	return out
}

// RgbFromHsv converts hue, saturation and value back to RGB. Any hue
// angle is accepted; it wraps into one full turn first.
func RgbFromHsv(c HSV) RGB {
	sextant, fraction := splitHue(c.Hue)
	v, s := c.Value, c.Saturation
	out := RGB{Alpha: c.Alpha}
	switch sextant {
	case 0:
		out.R = v
		out.G = v * (1 - s*(1-fraction))
		out.B = v * (1 - s)
	case 1:
		out.R = v * (1 - s*fraction)
		out.G = v
		out.B = v * (1 - s)
	case 2:
		out.R = v * (1 - s)
		out.G = v
		out.B = v * (1 - s*(1-fraction))
	case 3:
		out.R = v * (1 - s)
		out.G = v * (1 - s*fraction)
		out.B = v
	case 4:
		out.R = v * (1 - s*(1-fraction))
		out.G = v * (1 - s)
		out.B = v
	default:
		out.R = v
		out.G = v * (1 - s)
		out.B = v * (1 - s*fraction)
	}
	return out
}

// HslFromRgb converts a color to hue, saturation and lightness. Gray
// colors have zero saturation and report zero hue.
func HslFromRgb(c RGB) HSL {
	max, min := maxMin3(c.R, c.G, c.B)
	out := HSL{Lightness: (max + min) / 2, Alpha: c.Alpha}
	delta := max - min
	if delta < epsilon {
		return out
	}
	out.Saturation = delta / (1 - abs32(2*out.Lightness-1))
	out.Hue = hueSextant(c, max, delta) * YellowHue
	return out
}

// RgbFromHsl converts hue, saturation and lightness back to RGB. Any
// hue angle is accepted; it wraps into one full turn first.
func RgbFromHsl(c HSL) RGB {
	sextant, fraction := splitHue(c.Hue)

	// The primary channel strength peaks at 0.5 lightness; toward 0 it
	// fades to black, toward 1 it blends into white.
	primary := (1 - abs32(2*c.Lightness-1)) * c.Saturation

	out := RGB{Alpha: c.Alpha}
	switch sextant {
	case 0:
		out.R, out.G, out.B = primary, fraction*primary, 0
	case 1:
		out.R, out.G, out.B = (1-fraction)*primary, primary, 0
	case 2:
		out.R, out.G, out.B = 0, primary, fraction*primary
	case 3:
		out.R, out.G, out.B = 0, (1-fraction)*primary, primary
	case 4:
		out.R, out.G, out.B = fraction*primary, 0, primary
	default:
		out.R, out.G, out.B = primary, 0, (1-fraction)*primary
	}

	adjustment := c.Lightness - primary/2
	out.R += adjustment
	out.G += adjustment
	out.B += adjustment
	return out
}

// HslFromHsv reinterprets an HSV color in the HSL model. The hue wheel
// is shared, so only saturation and the brightness axis change.
func HslFromHsv(c HSV) HSL {
	out := HSL{Hue: c.Hue, Alpha: c.Alpha}

	adjustment := (2 - c.Saturation) * c.Value
	out.Lightness = adjustment / 2

	if adjustment >= 1 {
		adjustment = 2 - adjustment
	}
	if adjustment >= epsilon {
		out.Saturation = c.Saturation * c.Value / adjustment
	}
	return out
}

// HsvFromHsl reinterprets an HSL color in the HSV model.
func HsvFromHsl(c HSL) HSV {
	out := HSV{Hue: c.Hue, Alpha: c.Alpha}

	adjustment := c.Saturation
	if c.Lightness < 0.5 {
		adjustment *= c.Lightness
	} else {
		adjustment *= 1 - c.Lightness
	}

	if quotient := c.Lightness + adjustment; quotient >= epsilon {
		out.Saturation = 2 * adjustment / quotient
	}
	out.Value = adjustment + c.Lightness
	return out
}

// YuvFromRgb converts a color to luminance and chroma under the given
// system's luminance weights.
func YuvFromRgb(c RGB, system System) YUV {
	kr, kb := system.luminanceWeights()
	y := kr*c.R + (1-kr-kb)*c.G + kb*c.B
	return YUV{
		Y:     y,
		U:     (c.B - y) / (2 * (1 - kb)),
		V:     (c.R - y) / (2 * (1 - kr)),
		Alpha: c.Alpha,
	}
}

// RgbFromYuv converts luminance and chroma back to RGB. Exact inverse
// of YuvFromRgb under the same system.
func RgbFromYuv(c YUV, system System) RGB {
	kr, kb := system.luminanceWeights()
	kg := 1 - kr - kb
	r := c.Y + 2*(1-kr)*c.V
	b := c.Y + 2*(1-kb)*c.U
	return RGB{
		R:     r,
		G:     (c.Y - kr*r - kb*b) / kg,
		B:     b,
		Alpha: c.Alpha,
	}
}

// hueSextant returns the hue of c in sixths of a turn, in [0,6), given
// the precomputed channel maximum and max-min delta.
func hueSextant(c RGB, max, delta float32) float32 {
	var sextant float32
	switch max {
	case c.R:
		sextant = (c.G - c.B) / delta
	case c.G:
		sextant = (c.B-c.R)/delta + 2
	default:
		sextant = (c.R-c.G)/delta + 4
	}
	if sextant < 0 {
		sextant += 6
	}
	return sextant
}

// splitHue wraps a hue angle into one turn and splits it into the color
// wheel sextant (0..5) and the fractional position inside it.
func splitHue(hue float32) (sextant int, fraction float32) {
	turns := float64(hue) / (2 * math.Pi)
	turns -= math.Floor(turns)
	scaled := turns * 6
	sextant = int(scaled)
	if sextant > 5 {
		sextant = 5
	}
	return sextant, float32(scaled - float64(sextant))
}

func maxMin3(a, b, c float32) (max, min float32) {
	max, min = a, a
	if b > max {
		max = b
	} else if b < min {
		min = b
	}
	if c > max {
		max = c
	} else if c < min {
		min = c
	}
	return max, min
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
