// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compass

import "cogentcore.org/roomview/enums"

// Directions are the eight compass directions used in the readout.
// Only the four cardinal directions are exact; the others cover the
// whole open range between their neighbors.
type Directions int32

const (
	// NoDirection is used for degree values outside of [0, 360).
	NoDirection Directions = iota
	N
	NE
	E
	SE
	S
	SW
	W
	NW
)

var directionNames = []string{"", "N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Directions) String() string { return enums.String("Directions", directionNames, d) }

// MarshalText implements [encoding.TextMarshaler].
func (d Directions) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Directions) UnmarshalText(text []byte) error {
	return enums.SetString("compass.Directions", directionNames, d, string(text))
}

// DirectionOf returns the compass direction for the given whole degree:
// exactly 0, 90, 180 and 270 are N, E, S and W, the open intervals between
// them are NE, SE, SW and NW, and anything outside [0, 360) is [NoDirection].
func DirectionOf(degree int) Directions {
	switch {
	case degree == 0:
		return N
	case degree == 90:
		return E
	case degree == 180:
		return S
	case degree == 270:
		return W
	case degree > 0 && degree < 90:
		return NE
	case degree > 90 && degree < 180:
		return SE
	case degree > 180 && degree < 270:
		return SW
	case degree > 270 && degree < 360:
		return NW
	}
	return NoDirection
}
