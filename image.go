// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package brush

// Format describes the pixel layout of an [Image]'s data.
type Format int

const (
	// FormatRGBA8 is 8-bit channels in R, G, B, A order.
	FormatRGBA8 Format = iota
	// FormatBGRA8 is 8-bit channels in B, G, R, A order.
	FormatBGRA8
)

// SizeInBytes returns the required buffer size for an image of the
// given dimensions in this format.
func (f Format) SizeInBytes(width, height uint32) uint32 {
	return width * height * 4
}

// Image is an owned, shareable image resource: an opaque pixel buffer
// plus the metadata needed to interpret it. The pixel data is never
// inspected or modified by this package.
type Image struct {
	// Data contains the pixels, in the layout described by Format.
	Data   Blob
	Format Format
	Width  uint32
	Height uint32
	// Extend defines how the image repeats beyond its bounds.
	Extend Extend
	// Alpha is a multiplier applied to the image during rendering.
	Alpha float32
}

// NewImage returns an image with full alpha and Pad extend.
func NewImage(data Blob, format Format, width, height uint32) Image {
	return Image{
		Data:   data,
		Format: format,
		Width:  width,
		Height: height,
		Alpha:  1,
	}
}

// WithExtend returns the image with the extend mode replaced.
func (im Image) WithExtend(mode Extend) Image {
	im.Extend = mode
	return im
}

// WithAlphaFactor returns the image with its alpha multiplied by
// alpha.
func (im Image) WithAlphaFactor(alpha float32) Image {
	im.Alpha *= alpha
	return im
}
