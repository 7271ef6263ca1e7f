// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene describes the 3D room scene shown by the viewer: the
// room itself, its wireframe grid, an optional skybox, a text label,
// the animated decorative cubes, lights and camera. The description
// is independent of any renderer; it is sent to the browser, which
// builds the actual geometry, and it is advanced one frame at a time
// by [Scene.Tick] with the live camera position.
package scene

import (
	"errors"
	"fmt"
	"slices"

	"cogentcore.org/roomview/colors"
	"cogentcore.org/roomview/compass"
	"cogentcore.org/roomview/math32"
	"cogentcore.org/roomview/room"
)

// Scene is the overall scene description.
type Scene struct {

	// Name is the name of the scene.
	Name string

	// Room is the room the scene is built around.
	Room room.Room

	// Background is the background color.
	Background colors.Color

	// Camera determines the view onto the scene.
	Camera Camera

	// Lights are all lights used in the scene.
	Lights []Light

	// Meshes hold all the mesh shapes, referenced by name from Solids.
	Meshes []*Mesh

	// Textures hold all the textures, referenced by name from Materials.
	Textures []*Texture

	// Solids are the drawable elements, in drawing order.
	Solids []*Solid

	// Frame is the number of frames that have been ticked.
	Frame uint64
}

// NewScene creates a new empty Scene around the given room.
func NewScene(name string, rm room.Room) *Scene {
	sc := &Scene{Name: name, Room: rm}
	sc.Defaults()
	return sc
}

// Defaults sets default scene params (camera, background).
func (sc *Scene) Defaults() {
	sc.Camera.Defaults()
	sc.Background = colors.Blue
}

// Validate checks the room, the camera and every solid.
func (sc *Scene) Validate() error {
	var errs []error
	if err := sc.Room.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := sc.Camera.Validate(); err != nil {
		errs = append(errs, err)
	}
	names := map[string]bool{}
	for _, sld := range sc.Solids {
		if names[sld.Name] {
			errs = append(errs, fmt.Errorf("scene: duplicate solid name %q", sld.Name))
		}
		names[sld.Name] = true
		if err := sld.Validate(sc); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Bearing returns the compass reading of the current camera
// position around the room center.
func (sc *Scene) Bearing() compass.Reading {
	return compass.Relative(sc.Camera.Pos, sc.Room.Center)
}

// Clone returns a copy of the scene whose camera, solids and frame
// counter can be advanced independently. Meshes and textures are
// treated as immutable and are shared.
func (sc *Scene) Clone() *Scene {
	ns := *sc
	ns.Lights = slices.Clone(sc.Lights)
	ns.Meshes = slices.Clone(sc.Meshes)
	ns.Textures = slices.Clone(sc.Textures)
	ns.Solids = make([]*Solid, len(sc.Solids))
	for i, sld := range sc.Solids {
		cs := *sld
		cs.Materials = slices.Clone(sld.Materials)
		ns.Solids[i] = &cs
	}
	return &ns
}

// Animated returns the solids that rotate on each frame.
func (sc *Scene) Animated() []*Solid {
	var res []*Solid
	for _, sld := range sc.Solids {
		if sld.IsAnimated() {
			res = append(res, sld)
		}
	}
	return res
}

// SetCameraPos sets the camera position, as reported by the
// renderer's orbit controls. Non-finite positions are rejected.
func (sc *Scene) SetCameraPos(pos math32.Vector3) error {
	if !pos.IsFinite() {
		return fmt.Errorf("scene: camera position %v is not finite", pos)
	}
	sc.Camera.Pos = pos
	return nil
}
