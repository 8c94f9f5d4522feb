// Copyright 2022 the Vello Authors
// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package brush

import (
	"strings"

	"honnef.co/go/safeish"
)

const rampSamples = 512
const rampRetained = 64

// Ramps is an atlas of sampled gradient ramps, rampSamples premultiplied
// packed-RGBA texels per row, one row per ramp.
type Ramps struct {
	Data   []uint32
	Width  uint32
	Height uint32
}

type rampCacheEntry struct {
	id    uint32
	epoch uint64
}

// RampCache deduplicates sampled gradient ramps across frames. Ramps
// are keyed by the bit pattern of their stop sequence, so two stop
// sequences share a ramp iff they are [ColorStops.Equal]. A bounded
// number of ramps is retained across epochs; slots of ramps that
// haven't been used for two epochs get reused.
//
// A RampCache is not safe for concurrent use.
type RampCache struct {
	epoch   uint64
	mapping map[string]*rampCacheEntry
	data    []uint32

	// reused across calls to Add for building the map key
	key []byte
}

func NewRampCache() *RampCache {
	return &RampCache{
		mapping: make(map[string]*rampCacheEntry),
	}
}

// Maintain starts a new epoch and evicts entries beyond the retained
// set.
func (rc *RampCache) Maintain() {
	rc.epoch++
	if len(rc.mapping) > rampRetained {
		for k, v := range rc.mapping {
			if v.id >= rampRetained {
				delete(rc.mapping, k)
			}
		}
		rc.data = rc.data[:rampRetained*rampSamples]
	}
}

// Add returns the ramp ID for the stop sequence, sampling a new ramp
// if no bit-identical sequence is cached. The ID indexes a row of
// [RampCache.Ramps].
func (rc *RampCache) Add(stops ColorStops) uint32 {
	key := stops.AppendKey(rc.key[:0])
	rc.key = key[:0]

	keyStr := safeish.Cast[string](key)
	if entry, ok := rc.mapping[keyStr]; ok {
		entry.epoch = rc.epoch
		return entry.id
	} else if len(rc.mapping) < rampRetained {
		id := uint32(len(rc.data) / rampSamples)
		rc.data = append(rc.data, makeRamp(stops)...)
		// Copy the key so it no longer aliases rc.key
		rc.mapping[strings.Clone(keyStr)] = &rampCacheEntry{id, rc.epoch}
		return id
	} else {
		for k, entry := range rc.mapping {
			if entry.epoch+2 < rc.epoch {
				id := entry.id
				delete(rc.mapping, k)
				start := int(id) * rampSamples
				copy(rc.data[start:start+rampSamples], makeRamp(stops))
				rc.mapping[strings.Clone(keyStr)] = &rampCacheEntry{id, rc.epoch}
				return id
			}
		}
		id := uint32(len(rc.data) / rampSamples)
		rc.data = append(rc.data, makeRamp(stops)...)
		return id
	}
}

func (rc *RampCache) Ramps() Ramps {
	return Ramps{
		Data:   rc.data,
		Width:  rampSamples,
		Height: uint32(len(rc.data) / rampSamples),
	}
}

func makeRamp(stops ColorStops) []uint32 {
	out := make([]uint32, rampSamples)
	if len(stops) == 0 {
		// all transparent
		return out
	}
	lastU := float64(0)
	lastC := stops[0].Color
	thisU := lastU
	thisC := lastC
	j := 0
	for i := range rampSamples {
		u := float64(i) / (rampSamples - 1)
		for u > thisU {
			lastU = thisU
			lastC = thisC
			if j+1 < len(stops) {
				s := stops[j+1]
				thisU = float64(s.Offset)
				thisC = s.Color
				j++
			} else {
				break
			}
		}
		du := thisU - lastU
		var c Color
		if du < 1e-9 {
			c = thisC
		} else {
			c = lastC.Lerp(thisC, float32((u-lastU)/du))
		}
		out[i] = c.PremulUint32()
	}
	return out
}
