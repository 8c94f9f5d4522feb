// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package brush

import (
	"encoding/binary"
	"math"
	"slices"

	"honnef.co/go/curve"
	"honnef.co/go/safeish"
)

// ColorStop is the offset and color of a transition point in a
// gradient.
type ColorStop struct {
	// Offset of the stop along the gradient parameter, nominally in
	// [0, 1].
	Offset float32
	// Color at the offset.
	Color Color
}

// WithAlphaFactor returns the stop with the color's alpha multiplied
// by alpha.
func (cs ColorStop) WithAlphaFactor(alpha float32) ColorStop {
	return ColorStop{
		Offset: cs.Offset,
		Color:  cs.Color.WithAlphaFactor(alpha),
	}
}

// Equal reports whether the two stops have bit-identical offsets and
// colors. See [Color.Equal].
func (cs ColorStop) Equal(o ColorStop) bool {
	return math.Float32bits(cs.Offset) == math.Float32bits(o.Offset) &&
		cs.Color.Equal(o.Color)
}

// Less reports whether cs is ordered before o by offset. Stops with
// NaN offsets are incomparable; Less returns false for them in either
// argument position.
func (cs ColorStop) Less(o ColorStop) bool {
	return cs.Offset < o.Offset
}

// ColorStops is a sequence of color stops, in paint order along the
// gradient parameter. The sequence is stored exactly as supplied: this
// package neither sorts stops by offset nor validates that offsets lie
// in [0, 1]. Callers that need sorted stops have to sort them
// themselves.
type ColorStops []ColorStop

func (stops ColorStops) Clone() ColorStops {
	return slices.Clone(stops)
}

// Equal reports element-wise, bit-exact equality. See
// [ColorStop.Equal].
func (stops ColorStops) Equal(o ColorStops) bool {
	return slices.EqualFunc(stops, o, ColorStop.Equal)
}

// AppendKey appends a byte key to dst that encodes the stop sequence.
// Two sequences produce the same key iff they are [ColorStops.Equal].
func (stops ColorStops) AppendKey(dst []byte) []byte {
	// The length prefix keeps differently split sequences with the
	// same concatenation from colliding.
	dst = binary.LittleEndian.AppendUint64(dst, uint64(len(stops)))
	if len(stops) > 0 {
		dst = append(dst, safeish.SliceCast[[]byte]([]ColorStop(stops))...)
	}
	return dst
}

func (stops ColorStops) AppendStops(dst ColorStops) ColorStops {
	return append(dst, stops...)
}

// Colors is a sequence of colors without explicit offsets. As a
// [StopsSource] it synthesizes stops with offsets evenly distributed
// over [0, 1]; a single color yields one stop at offset 0.
type Colors []Color

func (colors Colors) AppendStops(dst ColorStops) ColorStops {
	denom := max(len(colors)-1, 1)
	for i, c := range colors {
		dst = append(dst, ColorStop{
			Offset: float32(i) / float32(denom),
			Color:  c,
		})
	}
	return dst
}

// StopsSource is an ordered collection of values that can be turned
// into color stops. [ColorStops] and [Colors] implement it.
type StopsSource interface {
	// AppendStops appends the stops represented by the source to dst
	// and returns the extended slice.
	AppendStops(dst ColorStops) ColorStops
}

// GradientKind describes the geometry of a gradient. It is implemented
// by [LinearGradient], [RadialGradient], and [SweepGradient].
type GradientKind interface {
	isGradientKind()
	appendKey(dst []byte) []byte
	equal(o GradientKind) bool
}

// LinearGradient transitions between colors along the line from Start
// to End.
type LinearGradient struct {
	Start curve.Point
	End   curve.Point
}

// RadialGradient transitions between colors radiating between two
// circles. The circles don't have to be concentric or have equal
// radii, which allows for conical gradients.
type RadialGradient struct {
	StartCenter curve.Point
	StartRadius float32
	EndCenter   curve.Point
	EndRadius   float32
}

// SweepGradient transitions between colors rotating around a center
// point. Angles are in radians, measured counter-clockwise from the
// x-axis, and may exceed a full turn.
type SweepGradient struct {
	Center     curve.Point
	StartAngle float32
	EndAngle   float32
}

func (LinearGradient) isGradientKind() {}
func (RadialGradient) isGradientKind() {}
func (SweepGradient) isGradientKind()  {}

func (k LinearGradient) appendKey(dst []byte) []byte {
	dst = append(dst, 1)
	dst = appendPointBits(dst, k.Start)
	dst = appendPointBits(dst, k.End)
	return dst
}

func (k RadialGradient) appendKey(dst []byte) []byte {
	dst = append(dst, 2)
	dst = appendPointBits(dst, k.StartCenter)
	dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(k.StartRadius))
	dst = appendPointBits(dst, k.EndCenter)
	dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(k.EndRadius))
	return dst
}

func (k SweepGradient) appendKey(dst []byte) []byte {
	dst = append(dst, 3)
	dst = appendPointBits(dst, k.Center)
	dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(k.StartAngle))
	dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(k.EndAngle))
	return dst
}

func (k LinearGradient) equal(o GradientKind) bool {
	other, isLinear := o.(LinearGradient)
	if !isLinear {
		return false
	}
	return pointBitsEqual(k.Start, other.Start) &&
		pointBitsEqual(k.End, other.End)
}

func (k RadialGradient) equal(o GradientKind) bool {
	other, isRadial := o.(RadialGradient)
	if !isRadial {
		return false
	}
	return pointBitsEqual(k.StartCenter, other.StartCenter) &&
		math.Float32bits(k.StartRadius) == math.Float32bits(other.StartRadius) &&
		pointBitsEqual(k.EndCenter, other.EndCenter) &&
		math.Float32bits(k.EndRadius) == math.Float32bits(other.EndRadius)
}

func (k SweepGradient) equal(o GradientKind) bool {
	other, isSweep := o.(SweepGradient)
	if !isSweep {
		return false
	}
	return pointBitsEqual(k.Center, other.Center) &&
		math.Float32bits(k.StartAngle) == math.Float32bits(other.StartAngle) &&
		math.Float32bits(k.EndAngle) == math.Float32bits(other.EndAngle)
}

func appendPointBits(dst []byte, p curve.Point) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(p.X))
	dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(p.Y))
	return dst
}

func pointBitsEqual(a, b curve.Point) bool {
	return math.Float64bits(a.X) == math.Float64bits(b.X) &&
		math.Float64bits(a.Y) == math.Float64bits(b.Y)
}

// Gradient is a transition between two or more colors, described by a
// geometry, an extend mode, and a sequence of color stops.
//
// Gradients with zero or one stop are degenerate but legal; renderers
// treat a single stop as a solid fill at that stop's color.
type Gradient struct {
	Kind   GradientKind
	Extend Extend
	Stops  ColorStops
}

// NewLinearGradient returns a linear gradient between the two points,
// with Pad extend and no stops.
func NewLinearGradient(start, end curve.Point) Gradient {
	return Gradient{
		Kind: LinearGradient{Start: start, End: end},
	}
}

// NewRadialGradient returns a radial gradient for a center point and
// radius, with Pad extend and no stops. It is the two-point radial
// gradient with both centers at center, a start radius of zero, and an
// end radius of radius.
func NewRadialGradient(center curve.Point, radius float32) Gradient {
	return Gradient{
		Kind: RadialGradient{
			StartCenter: center,
			EndCenter:   center,
			EndRadius:   radius,
		},
	}
}

// NewTwoPointRadialGradient returns a radial gradient between two
// circles, with Pad extend and no stops.
func NewTwoPointRadialGradient(
	startCenter curve.Point,
	startRadius float32,
	endCenter curve.Point,
	endRadius float32,
) Gradient {
	return Gradient{
		Kind: RadialGradient{
			StartCenter: startCenter,
			StartRadius: startRadius,
			EndCenter:   endCenter,
			EndRadius:   endRadius,
		},
	}
}

// NewSweepGradient returns a sweep gradient around a center point
// between two angles, with Pad extend and no stops.
func NewSweepGradient(center curve.Point, startAngle, endAngle float32) Gradient {
	return Gradient{
		Kind: SweepGradient{
			Center:     center,
			StartAngle: startAngle,
			EndAngle:   endAngle,
		},
	}
}

// WithExtend returns the gradient with the extend mode replaced.
func (g Gradient) WithExtend(mode Extend) Gradient {
	g.Extend = mode
	return g
}

// WithStops returns the gradient with the stop collection replaced by
// the stops drained from src. The previous stops are not reused, so
// gradients sharing them are unaffected.
func (g Gradient) WithStops(src StopsSource) Gradient {
	if src == nil {
		g.Stops = nil
	} else {
		g.Stops = src.AppendStops(nil)
	}
	return g
}

// Equal reports structural equality: the kinds, extend modes, and stop
// sequences all have to match, with floats compared by bit pattern.
func (g Gradient) Equal(o Gradient) bool {
	if g.Extend != o.Extend || !g.Stops.Equal(o.Stops) {
		return false
	}
	if g.Kind == nil || o.Kind == nil {
		return g.Kind == nil && o.Kind == nil
	}
	return g.Kind.equal(o.Kind)
}

// Clone returns a copy of the gradient that doesn't share its stops
// with g.
func (g Gradient) Clone() Gradient {
	g.Stops = g.Stops.Clone()
	return g
}

// AppendKey appends a byte key to dst that encodes the gradient. Two
// gradients produce the same key iff they are [Gradient.Equal], which
// makes the key suitable for deduplication maps, via string
// conversion.
func (g Gradient) AppendKey(dst []byte) []byte {
	dst = append(dst, byte(g.Extend))
	if g.Kind == nil {
		dst = append(dst, 0)
	} else {
		dst = g.Kind.appendKey(dst)
	}
	return g.Stops.AppendKey(dst)
}

// Sample evaluates the color of the stop ramp at parameter t, after
// mapping t through the gradient's extend mode. Stops are assumed to
// be sorted by offset. With zero stops Sample returns the zero Color;
// with one stop it returns that stop's color.
func (g Gradient) Sample(t float32) Color {
	stops := g.Stops
	switch len(stops) {
	case 0:
		return Color{}
	case 1:
		return stops[0].Color
	}
	t = foldExtend(g.Extend, t)
	lastU, lastC := stops[0].Offset, stops[0].Color
	thisU, thisC := lastU, lastC
	for _, s := range stops[1:] {
		if t <= thisU {
			break
		}
		lastU, lastC = thisU, thisC
		thisU, thisC = s.Offset, s.Color
	}
	if t <= lastU {
		return lastC
	}
	if t >= thisU {
		return thisC
	}
	return lastC.Lerp(thisC, (t-lastU)/(thisU-lastU))
}
