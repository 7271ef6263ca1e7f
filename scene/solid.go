// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/roomview/math32"
)

// Solid represents an individual 3D solid element.
// It has its own spatial transform and material properties,
// and points to a mesh by name.
type Solid struct {

	// Name is the unique name of the solid.
	Name string

	// Mesh is the name of the mesh shape used for rendering this solid;
	// all meshes are collected on the Scene.
	Mesh string

	// Materials are the surface materials: either one for the whole solid,
	// or one per face of a [Box] in the order right, left, top, bottom,
	// front, back.
	Materials []Material

	// Pose is the position, scale and rotation.
	Pose Pose

	// Spin is the rotation added to the pose on every frame, in radians.
	Spin math32.Vector3 `json:",omitempty" yaml:",omitempty"`

	// Visible is whether the solid is drawn.
	Visible bool
}

// NumBoxFaces is the number of faces of a box mesh.
const NumBoxFaces = 6

// NewSolid adds a new visible solid using the given mesh
// and material to the scene.
func NewSolid(sc *Scene, name, mesh string, mats ...Material) *Solid {
	sld := &Solid{Name: name, Mesh: mesh, Materials: mats, Visible: true}
	sld.Pose.Defaults()
	sc.Solids = append(sc.Solids, sld)
	return sld
}

// SetPos sets the [Pose.Pos] position of the solid
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.Pos.Set(x, y, z)
	return sld
}

// IsAnimated returns whether the solid rotates on each frame.
func (sld *Solid) IsAnimated() bool {
	return sld.Spin != (math32.Vector3{})
}

// Validate checks that the solid has a valid mesh, a valid number of
// materials and that any textures it uses exist.
func (sld *Solid) Validate(sc *Scene) error {
	if sld.Mesh == "" {
		return fmt.Errorf("scene.Solid: %s Mesh name is empty", sld.Name)
	}
	ms, err := sc.MeshByNameTry(sld.Mesh)
	if err != nil {
		return fmt.Errorf("scene.Solid: %s: %w", sld.Name, err)
	}
	switch n := len(sld.Materials); {
	case n == 0:
		return fmt.Errorf("scene.Solid: %s has no materials", sld.Name)
	case n > 1 && (ms.Shape != Box || n != NumBoxFaces):
		return fmt.Errorf("scene.Solid: %s has %d materials; need 1, or %d for a box", sld.Name, n, NumBoxFaces)
	}
	for _, mt := range sld.Materials {
		if mt.Texture == "" {
			continue
		}
		if _, err := sc.TextureByName(mt.Texture); err != nil {
			return fmt.Errorf("scene.Solid: %s: %w", sld.Name, err)
		}
	}
	return nil
}

// SolidByName returns the solid with the given name, or nil if not found.
func (sc *Scene) SolidByName(name string) *Solid {
	for _, sld := range sc.Solids {
		if sld.Name == name {
			return sld
		}
	}
	return nil
}
