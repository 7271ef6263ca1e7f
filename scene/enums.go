// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/roomview/enums"

// Sides are the sides of a surface that are drawn.
type Sides int32

const (
	// FrontSide draws the outward-facing side.
	FrontSide Sides = iota

	// BackSide draws the inward-facing side, as for
	// the walls of a room seen from inside.
	BackSide

	// DoubleSide draws both sides.
	DoubleSide
)

var sideNames = []string{"Front", "Back", "Double"}

func (s Sides) String() string               { return enums.String("Sides", sideNames, s) }
func (s Sides) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *Sides) UnmarshalText(b []byte) error {
	return enums.SetString("scene.Sides", sideNames, s, string(b))
}

// LightTypes are the kinds of [Light].
type LightTypes int32

const (
	// AmbientLight lights all surfaces uniformly.
	AmbientLight LightTypes = iota

	// HemisphereLight blends from a sky color above
	// to a ground color below.
	HemisphereLight

	// DirectionalLight shines from Pos toward the origin
	// with no attenuation, like the sun.
	DirectionalLight

	// PointLight shines in all directions from Pos.
	PointLight
)

var lightNames = []string{"Ambient", "Hemisphere", "Directional", "Point"}

func (lt LightTypes) String() string               { return enums.String("LightTypes", lightNames, lt) }
func (lt LightTypes) MarshalText() ([]byte, error) { return []byte(lt.String()), nil }
func (lt *LightTypes) UnmarshalText(b []byte) error {
	return enums.SetString("scene.LightTypes", lightNames, lt, string(b))
}

// Shapes are the kinds of [Mesh].
type Shapes int32

const (
	// Box is a cuboid of the mesh Size.
	Box Shapes = iota

	// LineSet is a set of polylines, drawn unlit.
	LineSet

	// TextShape is extruded 3D text.
	TextShape
)

var shapeNames = []string{"Box", "LineSet", "Text"}

func (s Shapes) String() string               { return enums.String("Shapes", shapeNames, s) }
func (s Shapes) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *Shapes) UnmarshalText(b []byte) error {
	return enums.SetString("scene.Shapes", shapeNames, s, string(b))
}

// RoomStyles are the ways the room walls are surfaced.
type RoomStyles int32

const (
	// Textured uses the wall, roof and floor textures.
	Textured RoomStyles = iota

	// Colored uses flat colors per face.
	Colored

	// TexturedColored layers the translucent textured room
	// over the colored one.
	TexturedColored
)

var roomStyleNames = []string{"Textured", "Colored", "TexturedColored"}

func (rs RoomStyles) String() string { return enums.String("RoomStyles", roomStyleNames, rs) }
func (rs RoomStyles) MarshalText() ([]byte, error) {
	return []byte(rs.String()), nil
}
func (rs *RoomStyles) UnmarshalText(b []byte) error {
	return enums.SetString("scene.RoomStyles", roomStyleNames, rs, string(b))
}
