// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/roomview/math32"

// Pose contains the position, scale and orientation of a [Solid],
// relative to the scene origin.
type Pose struct {

	// Pos is the position of the center of the solid.
	Pos math32.Vector3

	// Scale is the scale along each axis.
	Scale math32.Vector3

	// Rotation is the Euler rotation about the X, Y and Z axes, in radians.
	Rotation math32.Vector3
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
}

// Rotate adds the given Euler angles to the rotation,
// keeping each angle within [0, 2π).
func (ps *Pose) Rotate(delta math32.Vector3) {
	ps.Rotation.X = math32.WrapAngle(ps.Rotation.X + delta.X)
	ps.Rotation.Y = math32.WrapAngle(ps.Rotation.Y + delta.Y)
	ps.Rotation.Z = math32.WrapAngle(ps.Rotation.Z + delta.Z)
}
