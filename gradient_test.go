package brush

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"honnef.co/go/curve"
)

func TestGradientConstructors(t *testing.T) {
	start := curve.Point{X: 0, Y: 0}
	end := curve.Point{X: 100, Y: 0}

	g := NewLinearGradient(start, end)
	assert.Equal(t, LinearGradient{Start: start, End: end}, g.Kind)
	assert.Equal(t, Pad, g.Extend)
	assert.Empty(t, g.Stops)

	g = NewRadialGradient(end, 50)
	assert.Equal(t, RadialGradient{
		StartCenter: end,
		StartRadius: 0,
		EndCenter:   end,
		EndRadius:   50,
	}, g.Kind)

	g = NewTwoPointRadialGradient(start, 10, end, 20)
	assert.Equal(t, RadialGradient{
		StartCenter: start,
		StartRadius: 10,
		EndCenter:   end,
		EndRadius:   20,
	}, g.Kind)

	g = NewSweepGradient(start, 0, float32(4*math.Pi))
	assert.Equal(t, SweepGradient{
		Center:     start,
		StartAngle: 0,
		EndAngle:   float32(4 * math.Pi),
	}, g.Kind)
}

func TestWithStopsColors(t *testing.T) {
	g := NewLinearGradient(curve.Point{}, curve.Point{X: 1}).
		WithStops(Colors{Red, Green, Blue})
	assert.Equal(t, ColorStops{
		{Offset: 0, Color: Red},
		{Offset: 0.5, Color: Green},
		{Offset: 1, Color: Blue},
	}, g.Stops)

	g = g.WithStops(Colors{Red})
	assert.Equal(t, ColorStops{{Offset: 0, Color: Red}}, g.Stops)

	g = g.WithStops(Colors{})
	assert.Empty(t, g.Stops)
}

func TestWithStopsVerbatim(t *testing.T) {
	// out of order on purpose; stops are copied as-is
	stops := ColorStops{
		{Offset: 1, Color: Red},
		{Offset: 0, Color: Blue},
	}
	g := NewLinearGradient(curve.Point{}, curve.Point{X: 1}).WithStops(stops)
	assert.Equal(t, stops, g.Stops)

	// replacing the stops must not mutate what a copy of the gradient
	// already refers to
	g2 := g.WithStops(Colors{Green})
	assert.Equal(t, stops, g.Stops)
	assert.Equal(t, ColorStops{{Offset: 0, Color: Green}}, g2.Stops)
}

func TestColorStopEqual(t *testing.T) {
	a := ColorStop{Offset: 0.5, Color: Red}
	b := ColorStop{0.5, Red}
	assert.True(t, a.Equal(b))

	nan := math.Float32frombits(0x7fc00000)
	assert.True(t, ColorStop{Offset: nan}.Equal(ColorStop{Offset: nan}))
	assert.False(t, ColorStop{Offset: nan}.Equal(ColorStop{Offset: math.Float32frombits(0x7fc00001)}))

	negZero := float32(math.Copysign(0, -1))
	assert.False(t, ColorStop{Offset: 0}.Equal(ColorStop{Offset: negZero}))
}

func TestColorStopLess(t *testing.T) {
	a := ColorStop{Offset: 0.25}
	b := ColorStop{Offset: 0.75}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))

	nan := ColorStop{Offset: float32(math.NaN())}
	assert.False(t, nan.Less(a))
	assert.False(t, a.Less(nan))
}

func TestGradientEqual(t *testing.T) {
	mk := func() Gradient {
		return NewLinearGradient(curve.Point{}, curve.Point{X: 100}).
			WithStops(Colors{Red, Blue})
	}
	assert.True(t, mk().Equal(mk()))
	assert.False(t, mk().Equal(mk().WithExtend(Repeat)))
	assert.False(t, mk().Equal(mk().WithStops(Colors{Red, Green})))
	assert.False(t, mk().Equal(NewLinearGradient(curve.Point{}, curve.Point{X: 101}).
		WithStops(Colors{Red, Blue})))
	assert.False(t, mk().Equal(NewRadialGradient(curve.Point{}, 100).
		WithStops(Colors{Red, Blue})))
	assert.False(t, mk().Equal(Gradient{}))
	assert.True(t, Gradient{}.Equal(Gradient{}))
}

func TestGradientAppendKey(t *testing.T) {
	gradients := []Gradient{
		{},
		NewLinearGradient(curve.Point{}, curve.Point{X: 100}),
		NewLinearGradient(curve.Point{}, curve.Point{X: 100}).WithExtend(Reflect),
		NewLinearGradient(curve.Point{}, curve.Point{X: 100}).WithStops(Colors{Red, Blue}),
		NewRadialGradient(curve.Point{}, 100),
		NewSweepGradient(curve.Point{}, 0, 1),
		NewSweepGradient(curve.Point{}, 0, 1).WithStops(Colors{Red}),
	}
	for i, a := range gradients {
		for j, b := range gradients {
			sameKey := string(a.AppendKey(nil)) == string(b.AppendKey(nil))
			assert.Equal(t, i == j, sameKey, "gradients %d and %d", i, j)
			assert.Equal(t, i == j, a.Equal(b), "gradients %d and %d", i, j)
		}
	}
}

func TestGradientSample(t *testing.T) {
	g := NewLinearGradient(curve.Point{}, curve.Point{X: 1}).
		WithStops(ColorStops{
			{Offset: 0, Color: Color{Red: 1, Alpha: 1}},
			{Offset: 1, Color: Color{Blue: 1, Alpha: 0}},
		})

	assert.Equal(t, Color{Red: 1, Alpha: 1}, g.Sample(0))
	assert.Equal(t, Color{Blue: 1, Alpha: 0}, g.Sample(1))
	assert.Equal(t, Color{Red: 0.5, Blue: 0.5, Alpha: 0.5}, g.Sample(0.5))

	// Pad clamps
	assert.Equal(t, Color{Blue: 1, Alpha: 0}, g.Sample(2))
	assert.Equal(t, Color{Red: 1, Alpha: 1}, g.Sample(-1))

	// Repeat wraps
	rep := g.WithExtend(Repeat)
	assert.Equal(t, rep.Sample(0.25), rep.Sample(1.25))

	// Reflect mirrors
	ref := g.WithExtend(Reflect)
	assert.Equal(t, ref.Sample(0.5), ref.Sample(1.5))
	assert.Equal(t, ref.Sample(0.25), ref.Sample(1.75))

	assert.Equal(t, Color{}, Gradient{}.Sample(0.5))
	one := Gradient{Stops: ColorStops{{Offset: 0.25, Color: Red}}}
	assert.Equal(t, Red, one.Sample(0.9))
}

func TestGradientSampleInteriorRange(t *testing.T) {
	// stops not spanning all of [0, 1]
	g := Gradient{
		Stops: ColorStops{
			{Offset: 0.25, Color: Color{Red: 1, Alpha: 1}},
			{Offset: 0.75, Color: Color{Green: 1, Alpha: 1}},
		},
	}
	assert.Equal(t, Color{Red: 1, Alpha: 1}, g.Sample(0))
	assert.Equal(t, Color{Red: 1, Alpha: 1}, g.Sample(0.25))
	assert.Equal(t, Color{Green: 1, Alpha: 1}, g.Sample(0.75))
	assert.Equal(t, Color{Green: 1, Alpha: 1}, g.Sample(1))
	assert.Equal(t, Color{Red: 0.5, Green: 0.5, Alpha: 1}, g.Sample(0.5))
}

func TestGradientClone(t *testing.T) {
	g := NewLinearGradient(curve.Point{}, curve.Point{X: 1}).
		WithStops(Colors{Red, Blue})
	c := g.Clone()
	assert.True(t, g.Equal(c))
	c.Stops[0].Offset = 0.5
	assert.Equal(t, float32(0), g.Stops[0].Offset)
}
