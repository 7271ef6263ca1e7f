// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/roomview/math32"
)

// SolidState is the per-frame state of an animated solid.
type SolidState struct {
	Name     string
	Rotation math32.Vector3
}

// FrameState is the result of one [Scene.Tick]: everything the renderer
// and the debug panel need to update for the frame.
type FrameState struct {

	// Frame is the number of the frame, starting at 1.
	Frame uint64

	// Camera is the camera position the frame was computed for.
	Camera math32.Vector3

	// Degree is the compass bearing in whole degrees,
	// used to rotate the compass needle.
	Degree int

	// Label is the compass readout text.
	Label string

	// Solids are the new rotations of the animated solids.
	Solids []SolidState
}

// Tick advances the scene by one frame with the given camera position:
// every animated solid is rotated by its spin and the compass bearing
// is recomputed around the room center. It is called by the host once
// per animation frame; the scene does no scheduling of its own.
func (sc *Scene) Tick(camPos math32.Vector3) (FrameState, error) {
	if err := sc.SetCameraPos(camPos); err != nil {
		return FrameState{}, err
	}
	sc.Frame++
	fs := FrameState{Frame: sc.Frame, Camera: camPos}
	for _, sld := range sc.Solids {
		if !sld.IsAnimated() {
			continue
		}
		sld.Pose.Rotate(sld.Spin)
		fs.Solids = append(fs.Solids, SolidState{Name: sld.Name, Rotation: sld.Pose.Rotation})
	}
	rd := sc.Bearing()
	fs.Degree = rd.Degree
	fs.Label = rd.String()
	return fs, nil
}
