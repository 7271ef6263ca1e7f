// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/roomview/math32"
)

// Camera defines the properties of the perspective camera.
// Its position is driven from outside by the orbit controls
// of the renderer, and reported back on every frame.
type Camera struct {

	// Pos is the position of the camera.
	Pos math32.Vector3

	// Target is where the camera is pointing; orbiting is around it.
	Target math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width/height).
	Aspect float32

	// Near is the near clipping plane distance.
	Near float32

	// Far is the far clipping plane distance.
	Far float32
}

// Defaults sets the default camera parameters: looking at the
// origin from 0,0,10.
func (cm *Camera) Defaults() {
	cm.FOV = 35
	cm.Aspect = 1.5
	cm.Near = .1
	cm.Far = 1000
	cm.Pos.Set(0, 0, 10)
	cm.Target = math32.Vector3{}
}

// SetAspect sets the aspect ratio from the given viewport size in pixels,
// as when the window is resized. Non-positive sizes are ignored.
func (cm *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	cm.Aspect = float32(width) / float32(height)
}

// Distance returns the distance from the camera to its target.
func (cm *Camera) Distance() float32 {
	return cm.Pos.Sub(cm.Target).Length()
}

// Validate returns an error if the projection parameters are unusable.
func (cm *Camera) Validate() error {
	switch {
	case !(cm.FOV > 0 && cm.FOV < 180):
		return fmt.Errorf("camera: FOV %g must be in (0, 180)", cm.FOV)
	case !(cm.Near > 0):
		return fmt.Errorf("camera: Near %g must be positive", cm.Near)
	case !(cm.Far > cm.Near):
		return fmt.Errorf("camera: Far %g must be beyond Near %g", cm.Far, cm.Near)
	case !(cm.Aspect > 0):
		return fmt.Errorf("camera: Aspect %g must be positive", cm.Aspect)
	case !cm.Pos.IsFinite():
		return fmt.Errorf("camera: position %v is not finite", cm.Pos)
	}
	return nil
}
