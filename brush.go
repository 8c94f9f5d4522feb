package brush

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Extend defines how a paint source is extended when the gradient
// parameter, or the sampled image, leaves its defined range.
type Extend int

const (
	// Pad clamps to the nearest endpoint.
	Pad Extend = iota
	// Repeat wraps the parameter modulo 1.
	Repeat
	// Reflect mirrors the parameter with period 2.
	Reflect
)

// foldExtend maps a parameter back into [0, 1] according to the extend
// mode.
func foldExtend[T constraints.Float](mode Extend, t T) T {
	switch mode {
	case Repeat:
		return t - T(math.Floor(float64(t)))
	case Reflect:
		t -= 2 * T(math.Floor(float64(t)/2))
		if t > 1 {
			t = 2 - t
		}
		return t
	default:
		return min(max(t, 0), 1)
	}
}

// Brush describes the color content of a filled or stroked shape. It
// is implemented by [SolidBrush], [GradientBrush], and [ImageBrush].
//
// See [BrushRef] for accepting brushes without taking ownership of
// their payloads.
type Brush interface {
	isBrush()

	// WithAlphaFactor returns the brush with the alpha of every leaf
	// color multiplied by alpha. A factor of 1 returns the brush
	// unchanged, without copying any stops.
	WithAlphaFactor(alpha float32) Brush

	// Ref returns a reference to the brush. The reference shares the
	// gradient or image payload with the brush.
	Ref() BrushRef
}

type SolidBrush struct {
	Color Color
}

type GradientBrush struct {
	Gradient Gradient
}

type ImageBrush struct {
	Image Image
}

func (SolidBrush) isBrush()    {}
func (GradientBrush) isBrush() {}
func (ImageBrush) isBrush()    {}

func (b SolidBrush) WithAlphaFactor(alpha float32) Brush {
	if alpha == 1 {
		return b
	}
	b.Color = b.Color.WithAlphaFactor(alpha)
	return b
}

func (b GradientBrush) WithAlphaFactor(alpha float32) Brush {
	if alpha == 1 {
		return b
	}
	stops := make(ColorStops, len(b.Gradient.Stops))
	for i, s := range b.Gradient.Stops {
		stops[i] = s.WithAlphaFactor(alpha)
	}
	b.Gradient.Stops = stops
	return b
}

func (b ImageBrush) WithAlphaFactor(alpha float32) Brush {
	if alpha == 1 {
		return b
	}
	b.Image = b.Image.WithAlphaFactor(alpha)
	return b
}

func (b SolidBrush) Ref() BrushRef    { return SolidBrushRef{Color: b.Color} }
func (b GradientBrush) Ref() BrushRef { return GradientBrushRef{Gradient: &b.Gradient} }
func (b ImageBrush) Ref() BrushRef    { return ImageBrushRef{Image: &b.Image} }

// BrushRef is a non-owning counterpart to [Brush]. Functions that
// accept a BrushRef can be handed a solid color, a borrowed gradient,
// or a borrowed image without copying gradient stops. It is
// implemented by [SolidBrushRef], [GradientBrushRef], and
// [ImageBrushRef].
type BrushRef interface {
	isBrushRef()

	// ToOwned converts the reference to an owned [Brush], cloning the
	// gradient or image payload if necessary.
	ToOwned() Brush
}

type SolidBrushRef struct {
	Color Color
}

type GradientBrushRef struct {
	Gradient *Gradient
}

type ImageBrushRef struct {
	Image *Image
}

func (SolidBrushRef) isBrushRef()    {}
func (GradientBrushRef) isBrushRef() {}
func (ImageBrushRef) isBrushRef()    {}

func (r SolidBrushRef) ToOwned() Brush {
	return SolidBrush{Color: r.Color}
}

func (r GradientBrushRef) ToOwned() Brush {
	return GradientBrush{Gradient: r.Gradient.Clone()}
}

func (r ImageBrushRef) ToOwned() Brush {
	return ImageBrush{Image: *r.Image}
}
