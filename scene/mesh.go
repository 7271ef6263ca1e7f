// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/roomview/grid"
	"cogentcore.org/roomview/math32"
)

// Mesh describes the shape used for rendering a [Solid].
// Meshes are linked to solids by name, so the name matters,
// and the renderer builds the actual vertex data from the shape.
type Mesh struct {

	// Name is the name of the mesh.
	Name string

	// Shape is the kind of shape.
	Shape Shapes

	// Size is the size of a [Box] along each axis.
	Size math32.Vector3 `json:",omitempty" yaml:",omitempty"`

	// Lines are the polylines of a [LineSet].
	Lines []grid.Line `json:",omitempty" yaml:",omitempty"`

	// Text is the [TextShape] text.
	Text *TextParams `json:",omitempty" yaml:",omitempty"`
}

// TextParams are the parameters of extruded 3D text.
type TextParams struct {

	// Text is the string to extrude.
	Text string

	// Font is the font face name, resolved by the renderer.
	Font string

	// Size is the height of the glyphs in scene units.
	Size float32

	// Depth is the extrusion depth in scene units.
	Depth float32

	// Bevel is whether the glyph edges are bevelled.
	Bevel bool
}

// BBox returns the bounding box of the mesh around its own origin.
func (ms *Mesh) BBox() math32.Box3 {
	switch ms.Shape {
	case Box:
		return math32.B3FromCenterSize(math32.Vector3{}, ms.Size)
	case LineSet:
		return grid.Bounds(ms.Lines)
	}
	return math32.B3Empty()
}

// SetMesh sets / updates the given mesh, updating any existing
// mesh of the same name.
// See NewX for convenience methods to add specific shapes.
func (sc *Scene) SetMesh(ms *Mesh) {
	for i, em := range sc.Meshes {
		if em.Name == ms.Name {
			sc.Meshes[i] = ms
			return
		}
	}
	sc.Meshes = append(sc.Meshes, ms)
}

// MeshByName looks for mesh by name, returning nil if not found.
func (sc *Scene) MeshByName(name string) *Mesh {
	ms, _ := sc.MeshByNameTry(name)
	return ms
}

// MeshByNameTry looks for mesh by name, returning error if not found.
func (sc *Scene) MeshByNameTry(name string) (*Mesh, error) {
	for _, ms := range sc.Meshes {
		if ms.Name == name {
			return ms, nil
		}
	}
	return nil, fmt.Errorf("Mesh named: %v not found in Scene: %v", name, sc.Name)
}

// MeshList returns a list of available meshes.
func (sc *Scene) MeshList() []string {
	names := make([]string, len(sc.Meshes))
	for i, ms := range sc.Meshes {
		names[i] = ms.Name
	}
	return names
}

// NewBox adds a Box mesh to the given scene, with given name and size.
func NewBox(sc *Scene, name string, width, height, depth float32) *Mesh {
	ms := &Mesh{Name: name, Shape: Box, Size: math32.Vec3(width, height, depth)}
	sc.SetMesh(ms)
	return ms
}

// NewLineSet adds a LineSet mesh with the given lines to the given scene.
func NewLineSet(sc *Scene, name string, lines []grid.Line) *Mesh {
	ms := &Mesh{Name: name, Shape: LineSet, Lines: lines}
	sc.SetMesh(ms)
	return ms
}

// NewText adds an extruded text mesh to the given scene.
func NewText(sc *Scene, name string, tp TextParams) *Mesh {
	ms := &Mesh{Name: name, Shape: TextShape, Text: &tp}
	sc.SetMesh(ms)
	return ms
}
