// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package brush

import (
	"math"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
	"golang.org/x/image/colornames"
)

// Color is a color with four float32 channels, stored in linear sRGB
// with unpremultiplied alpha. Channels are never clamped; callers may
// use values outside [0, 1], for example for wide-gamut rendering.
//
// The zero value is fully transparent black. Use [Black] for opaque
// black.
type Color struct {
	Red   float32
	Green float32
	Blue  float32
	Alpha float32
}

// RGB8 converts 8-bit, gamma-encoded sRGB channels to a Color with
// full opacity.
func RGB8(r, g, b uint8) Color {
	return Color{
		Red:   srgb8ToLinear(r),
		Green: srgb8ToLinear(g),
		Blue:  srgb8ToLinear(b),
		Alpha: 1,
	}
}

// RGBA8 converts 8-bit, gamma-encoded sRGB channels and a linear
// 8-bit alpha to a Color.
func RGBA8(r, g, b, a uint8) Color {
	c := RGB8(r, g, b)
	c.Alpha = float32(a) / 255
	return c
}

// ColorFromArray converts a [4]float32 in R, G, B, A channel order to
// a Color. The channels are copied verbatim and are assumed to already
// be linear.
func ColorFromArray(v [4]float32) Color {
	return Color{Red: v[0], Green: v[1], Blue: v[2], Alpha: v[3]}
}

// Array returns the channels in R, G, B, A order.
func (c Color) Array() [4]float32 {
	return [4]float32{c.Red, c.Green, c.Blue, c.Alpha}
}

// WithAlphaFactor returns the color with its alpha multiplied by
// alpha. The other channels are unchanged.
func (c Color) WithAlphaFactor(alpha float32) Color {
	c.Alpha *= alpha
	return c
}

// Premultiply returns the color with the red, green, and blue channels
// multiplied by the alpha channel.
func (c Color) Premultiply() Color {
	return Color{
		Red:   c.Red * c.Alpha,
		Green: c.Green * c.Alpha,
		Blue:  c.Blue * c.Alpha,
		Alpha: c.Alpha,
	}
}

// Lerp linearly interpolates between c and other, independently per
// channel, including alpha. The colors are interpolated as-is, without
// premultiplying first.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		Red:   lerp(c.Red, other.Red, t),
		Green: lerp(c.Green, other.Green, t),
		Blue:  lerp(c.Blue, other.Blue, t),
		Alpha: lerp(c.Alpha, other.Alpha, t),
	}
}

// Equal reports whether the two colors have bit-identical channels.
// Unlike ==, this distinguishes 0 from -0 and treats a NaN as equal to
// itself when the payloads match. See the package documentation for
// why equality is defined this way.
func (c Color) Equal(o Color) bool {
	return math.Float32bits(c.Red) == math.Float32bits(o.Red) &&
		math.Float32bits(c.Green) == math.Float32bits(o.Green) &&
		math.Float32bits(c.Blue) == math.Float32bits(o.Blue) &&
		math.Float32bits(c.Alpha) == math.Float32bits(o.Alpha)
}

// PremulUint32 returns the color as premultiplied, gamma-encoded
// 8-bit channels packed into a uint32 in RGBA order, with red in the
// most significant byte. This is the format used by draw encodings and
// gradient ramps.
func (c Color) PremulUint32() uint32 {
	p := c.Premultiply()
	return uint32(linearToSRGB8(p.Red))<<24 |
		uint32(linearToSRGB8(p.Green))<<16 |
		uint32(linearToSRGB8(p.Blue))<<8 |
		uint32(unitToUint8(p.Alpha))
}

// ParseColor parses a color from a string. It accepts CSS-style
// hexadecimal colors of the forms #RGB, #RGBA, #RRGGBB, and #RRGGBBAA,
// with an optional leading '#', as well as the lowercase SVG color
// names, such as "cornflowerblue". The second return value reports
// whether the string could be parsed.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHexColor(hex)
	}
	if s == "transparent" {
		return Transparent, true
	}
	if c, ok := colornames.Map[s]; ok {
		return RGBA8(c.R, c.G, c.B, c.A), true
	}
	return parseHexColor(s)
}

func parseHexColor(s string) (Color, bool) {
	var digits [8]byte
	switch len(s) {
	case 3:
		digits = [8]byte{s[0], s[0], s[1], s[1], s[2], s[2], 'f', 'f'}
	case 4:
		digits = [8]byte{s[0], s[0], s[1], s[1], s[2], s[2], s[3], s[3]}
	case 6:
		digits = [8]byte{s[0], s[1], s[2], s[3], s[4], s[5], 'f', 'f'}
	case 8:
		digits = [8]byte{s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]}
	default:
		return Color{}, false
	}
	var v [8]uint8
	for i, d := range digits {
		h, ok := hexDigit(d)
		if !ok {
			return Color{}, false
		}
		v[i] = h
	}
	return RGBA8(v[0]<<4|v[1], v[2]<<4|v[3], v[4]<<4|v[5], v[6]<<4|v[7]), true
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

func lerp[T constraints.Float](a, b, t T) T {
	return a*(1-t) + b*t
}

// srgb8ToLinear applies the sRGB EOTF to a gamma-encoded 8-bit
// channel.
func srgb8ToLinear(v uint8) float32 {
	c := float32(v) / 255
	if c <= 0.04045 {
		return c / 12.92
	}
	return math32.Pow((c+0.055)/1.055, 2.4)
}

// linearToSRGB8 applies the inverse sRGB EOTF and quantizes to 8 bits,
// clamping to [0, 255].
func linearToSRGB8(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	var c float32
	if v <= 0.0031308 {
		c = v * 12.92
	} else {
		c = 1.055*math32.Pow(v, 1/2.4) - 0.055
	}
	if c >= 1 {
		return 255
	}
	return uint8(c*255 + 0.5)
}

func unitToUint8(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
