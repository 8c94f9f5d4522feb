// Copyright 2022 the Peniko Authors
// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package brush

import "honnef.co/go/curve"

// Fill describes the rule used to determine which regions of a path
// are inside it.
type Fill int

const (
	NonZero Fill = iota
	EvenOdd
)

// Style describes how a shape's outline turns into a painted region:
// either a fill rule or a stroke. It is implemented by [Fill] and
// [StrokeStyle].
type Style interface {
	isStyle()
}

// StrokeStyle paints a shape by stroking its outline.
type StrokeStyle struct {
	Stroke curve.Stroke
}

func (Fill) isStyle()        {}
func (StrokeStyle) isStyle() {}
