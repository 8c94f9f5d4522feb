// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package brush provides the types that describe paint sources for 2D
// vector renderers: colors, gradients, images, and the brushes that
// unify them.
//
// # Colors
//
// [Color] stores four float32 channels in linear light, without
// premultiplied alpha. Colors convert to and from 8-bit sRGB (see
// [RGB8] and [RGBA8]), interpolate (see [Color.Lerp]), premultiply
// (see [Color.Premultiply]), and parse from CSS-style hex strings and
// SVG color names (see [ParseColor]). Channel values are not clamped
// anywhere; values outside [0, 1] pass through all operations
// unchanged.
//
// # Gradients
//
// [Gradient] pairs a geometry ([GradientKind]) with an [Extend] mode
// and a sequence of color stops. Three geometries are supported:
// [LinearGradient], [RadialGradient] (two-circle, which subsumes
// conical gradients), and [SweepGradient]. Stops are stored in the
// order they are supplied; this package neither sorts nor validates
// them.
//
// # Brushes
//
// [Brush] is the union of solid colors, gradients, and images.
// [BrushRef] is its borrowing counterpart for call sites that want to
// accept any brush-like value without copying gradient stops; call
// [BrushRef.ToOwned] when ownership is actually needed.
//
// # Cache keys
//
// Renderers deduplicate gradients and brushes, so equality of stops
// and gradients is defined over the bit patterns of their floats
// rather than IEEE comparison: distinct NaN payloads compare unequal,
// and 0 and -0 compare unequal. [Gradient.AppendKey] produces a byte
// key with the same equivalence, suitable for map keys. [RampCache]
// uses these keys to deduplicate sampled gradient ramps.
package brush
