package brush

// Mix defines the color mixing function of a [BlendMode]. The zero
// value is normal blending.
type Mix uint8

const (
	// No blending; the source color is selected.
	MixNormal Mix = 0
	// Source multiplied with destination.
	MixMultiply Mix = 1
	// Complements multiplied, then complemented.
	MixScreen Mix = 2
	// Multiply or screen, depending on the backdrop.
	MixOverlay Mix = 3
	// The darker of the two colors.
	MixDarken Mix = 4
	// The lighter of the two colors.
	MixLighten Mix = 5
	// Brightens the backdrop to reflect the source.
	MixColorDodge Mix = 6
	// Darkens the backdrop to reflect the source.
	MixColorBurn Mix = 7
	// Multiply or screen, depending on the source.
	MixHardLight Mix = 8
	// Darken or lighten, depending on the source.
	MixSoftLight Mix = 9
	// Absolute difference of the two colors.
	MixDifference Mix = 10
	// Like difference, but lower in contrast.
	MixExclusion Mix = 11
	// Hue of the source with saturation and luminosity of the
	// backdrop.
	MixHue Mix = 12
	// Saturation of the source with hue and luminosity of the
	// backdrop.
	MixSaturation Mix = 13
	// Hue and saturation of the source with luminosity of the
	// backdrop.
	MixColor Mix = 14
	// Luminosity of the source with hue and saturation of the
	// backdrop.
	MixLuminosity Mix = 15
	// Like normal, but always rendered as an isolated group.
	MixClip Mix = 128
)

// Compose defines the layer composition function of a [BlendMode].
// The zero value is source-over composition.
type Compose uint8

const (
	ComposeSrcOver     Compose = 0
	ComposeCopy        Compose = 1
	ComposeDest        Compose = 2
	ComposeClear       Compose = 3
	ComposeDestOver    Compose = 4
	ComposeSrcIn       Compose = 5
	ComposeDestIn      Compose = 6
	ComposeSrcOut      Compose = 7
	ComposeDestOut     Compose = 8
	ComposeSrcAtop     Compose = 9
	ComposeDestAtop    Compose = 10
	ComposeXor         Compose = 11
	ComposePlus        Compose = 12
	ComposePlusLighter Compose = 13
)

// BlendMode is the combination of a color mixing function and a layer
// composition function. The zero value is normal, source-over
// blending.
type BlendMode struct {
	Mix     Mix
	Compose Compose
}
