// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package room defines the rectangular room volume that the
// viewer scene, its wireframe grid, and its compass are built around.
package room

import (
	"fmt"

	"cogentcore.org/roomview/math32"
)

// Room is the immutable bounding volume of the viewer scene,
// in scene units, centered on Center. The floor is at
// Center.Y - Height/2.
type Room struct {

	// Width is the extent along the X axis.
	Width float32 `default:"5"`

	// Height is the extent along the Y axis.
	Height float32 `default:"2.6"`

	// Depth is the extent along the Z axis.
	Depth float32 `default:"5"`

	// Center is the center point of the room.
	Center math32.Vector3
}

// New returns a new [Room] centered at the origin with the given
// dimensions, returning an error if they are not valid.
func New(width, height, depth float32) (Room, error) {
	rm := Room{Width: width, Height: height, Depth: depth}
	return rm, rm.Validate()
}

// Validate returns an error if any dimension is negative or not finite,
// or if the center is not finite. Zero dimensions are valid and produce
// degenerate geometry.
func (rm Room) Validate() error {
	dims := []struct {
		name string
		v    float32
	}{{"width", rm.Width}, {"height", rm.Height}, {"depth", rm.Depth}}
	for _, d := range dims {
		if !math32.IsFinite(d.v) {
			return fmt.Errorf("room: %s %g is not finite", d.name, d.v)
		}
		if d.v < 0 {
			return fmt.Errorf("room: %s %g is negative", d.name, d.v)
		}
	}
	if !rm.Center.IsFinite() {
		return fmt.Errorf("room: center %v is not finite", rm.Center)
	}
	return nil
}

// Size returns the dimensions as a vector.
func (rm Room) Size() math32.Vector3 {
	return math32.Vec3(rm.Width, rm.Height, rm.Depth)
}

// Bounds returns the bounding box of the room.
func (rm Room) Bounds() math32.Box3 {
	return math32.B3FromCenterSize(rm.Center, rm.Size())
}

// Floor returns the Y coordinate of the floor.
func (rm Room) Floor() float32 {
	return rm.Center.Y - rm.Height/2
}

// Contains returns whether the given point is inside the room
// (including its surfaces).
func (rm Room) Contains(p math32.Vector3) bool {
	return rm.Bounds().ContainsPoint(p)
}

// DefaultCameraPos returns the camera position used when none is
// configured: slightly above the center, backed off along +Z
// in proportion to the size of the front wall.
func (rm Room) DefaultCameraPos() math32.Vector3 {
	return rm.Center.Add(math32.Vec3(0, 2, rm.Width*rm.Height/1.4))
}

func (rm Room) String() string {
	return fmt.Sprintf("%gx%gx%g at %v", rm.Width, rm.Height, rm.Depth, rm.Center)
}
