// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/roomview/colors"
	"cogentcore.org/roomview/math32"
)

// Tiling are the texture tiling parameters
type Tiling struct {

	// how often to repeat the texture in each direction
	Repeat math32.Vector2

	// offset for when to start the texure in each direction
	Off math32.Vector2
}

// Defaults sets default tiling params if not yet initialized
func (tl *Tiling) Defaults() {
	if tl.Repeat == (math32.Vector2{}) {
		tl.Repeat.Set(1, 1)
	}
}

// Material describes the surface of a [Solid] or one face of it.
// Textures are stored on the Scene and referenced by name;
// a material with no texture uses its Color.
type Material struct {

	// Color is the main color of the surface.
	Color colors.Color

	// Emissive is the color that the surface emits independent of any lighting.
	Emissive colors.Color

	// Opacity is the overall opacity, in [0, 1].
	Opacity float32

	// Side is which side of the surface is drawn.
	Side Sides

	// FlatShading uses one normal per face.
	FlatShading bool

	// Texture is the name of the texture, if any.
	Texture string `json:",omitempty" yaml:",omitempty"`

	// Tiling is the texture tiling parameters: repeat and offset.
	Tiling Tiling
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Color = colors.FromRGB(128, 128, 128)
	mt.Opacity = 1
	mt.Tiling.Defaults()
}

// IsTransparent returns whether the material needs blending.
func (mt *Material) IsTransparent() bool {
	return mt.Opacity < 1 || mt.Color.A < 255
}

// ColorMaterial returns a flat color material.
func ColorMaterial(clr colors.Color, side Sides) Material {
	mt := Material{}
	mt.Defaults()
	mt.Color = clr
	mt.Side = side
	return mt
}

// TextureMaterial returns a textured material with the given tiling repeat.
func TextureMaterial(texture string, repeat math32.Vector2, opacity float32, side Sides) Material {
	mt := Material{}
	mt.Defaults()
	mt.Color = colors.White
	mt.Texture = texture
	mt.Tiling.Repeat = repeat
	mt.Opacity = opacity
	mt.Side = side
	return mt
}
