// Package colorlab provides sRGB/CIELAB conversion and perceptual color
// difference metrics for thread color matching.
package colorlab

import (
	"fmt"
	"math"
	"strings"
)

// RGB represents an sRGB color with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// LAB represents a CIE L*a*b* color relative to the D65 reference white.
type LAB struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// D65 reference white in XYZ, scaled so Y=100.
const (
	refX = 95.047
	refY = 100.0
	refZ = 108.883
)

// RGBToLab converts an sRGB color to CIE L*a*b* (D65).
func RGBToLab(c RGB) LAB {
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)

	// Linear RGB to XYZ (sRGB matrix, D65)
	x := (r*0.4124564 + g*0.3575761 + b*0.1804375) * 100.0
	y := (r*0.2126729 + g*0.7151522 + b*0.0721750) * 100.0
	z := (r*0.0193339 + g*0.1191920 + b*0.9503041) * 100.0

	fx := labForward(x / refX)
	fy := labForward(y / refY)
	fz := labForward(z / refZ)

	return LAB{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// LabToRGB converts a CIE L*a*b* color (D65) back to sRGB. Out-of-gamut
// channels are clamped.
func LabToRGB(c LAB) RGB {
	fy := (c.L + 16.0) / 116.0
	fx := fy + c.A/500.0
	fz := fy - c.B/200.0

	x := labInverse(fx) * refX
	y := labInverse(fy) * refY
	z := labInverse(fz) * refZ

	x /= 100.0
	y /= 100.0
	z /= 100.0

	// XYZ to linear RGB (inverse sRGB matrix)
	r := x*3.2404542 + y*-1.5371385 + z*-0.4985314
	g := x*-0.9692660 + y*1.8760108 + z*0.0415560
	b := x*0.0556434 + y*-0.2040259 + z*1.0572252

	return RGB{
		R: clampChannel(linearToSrgb(r)),
		G: clampChannel(linearToSrgb(g)),
		B: clampChannel(linearToSrgb(b)),
	}
}

// srgbToLinear applies the piecewise sRGB gamma expansion.
func srgbToLinear(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

// linearToSrgb applies the piecewise sRGB gamma compression.
func linearToSrgb(c float64) float64 {
	if c > 0.0031308 {
		return 1.055*math.Pow(c, 1.0/2.4) - 0.055
	}
	return c * 12.92
}

// labForward is the CIE f function applied to normalized XYZ channels.
func labForward(t float64) float64 {
	const epsilon = 0.008856 // (6/29)^3
	if t > epsilon {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// labInverse inverts labForward.
func labInverse(t float64) float64 {
	const kappa = 0.206897 // 6/29
	if t > kappa {
		return t * t * t
	}
	return (t - 16.0/116.0) / 7.787
}

func clampChannel(c float64) uint8 {
	v := math.Round(c * 255.0)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// HexToRGB parses a case-insensitive "#RRGGBB" string. The leading '#' is
// optional.
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", hex)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return RGB{}, fmt.Errorf("invalid hex color %q", hex)
		}
		channels[i] = hi<<4 | lo
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// RGBToHex formats a color as "#RRGGBB" with uppercase digits.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
