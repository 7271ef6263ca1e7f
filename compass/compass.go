// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compass computes the compass bearing of the camera
// around the room, as shown by the compass needle and readout.
//
// The bearing is measured in the horizontal X-Z plane. A camera on
// the +Z axis (in front of the room, looking in) reads 0° N,
// -X reads 90° E, -Z reads 180° S and +X reads 270° W.
package compass

import (
	"fmt"

	"cogentcore.org/roomview/math32"
)

// Angle returns the bearing angle in radians in [0, 2π) of the
// horizontal position (x, z). It panics if x or z is not finite.
func Angle(x, z float32) float32 {
	if !math32.IsFinite(x) || !math32.IsFinite(z) {
		panic(fmt.Sprintf("programmer error: compass position (%g, %g) is not finite", x, z))
	}
	a := math32.Atan2(z, x) - math32.Pi/2
	if a < 0 {
		a += math32.TwoPi
	}
	return a
}

// Degrees returns the bearing of (x, z) rounded to whole degrees in
// [0, 360). A value that rounds up to 360 wraps to 0, so the result
// moves continuously except across the 359 to 0 seam. It is used to
// drive the rotation of the compass needle.
func Degrees(x, z float32) int {
	deg := int(math32.Round(math32.RadToDeg(Angle(x, z))))
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// Bearing returns the [Reading] for the horizontal position (x, z).
func Bearing(x, z float32) Reading {
	return NewReading(Degrees(x, z))
}

// Label returns the readout string for the horizontal position (x, z),
// for example "0° N" or "135° SE".
func Label(x, z float32) string {
	return Bearing(x, z).String()
}

// Relative returns the [Reading] of the given camera position
// around the given center; only the X and Z components are used.
func Relative(cam, center math32.Vector3) Reading {
	return Bearing(cam.X-center.X, cam.Z-center.Z)
}

// Reading is a bearing in whole degrees with its compass direction.
type Reading struct {

	// Degree is the bearing in whole degrees.
	Degree int `json:"degree" yaml:"degree"`

	// Direction is the compass direction of Degree,
	// or [NoDirection] if Degree is out of range.
	Direction Directions `json:"direction" yaml:"direction"`
}

// NewReading returns the [Reading] for the given whole degree value.
func NewReading(degree int) Reading {
	return Reading{Degree: degree, Direction: DirectionOf(degree)}
}

// String returns the readout text: the degree with a degree sign
// and the direction, or just the number when there is no direction.
func (r Reading) String() string {
	if r.Direction == NoDirection {
		return fmt.Sprint(r.Degree)
	}
	return fmt.Sprintf("%d° %s", r.Degree, r.Direction)
}
