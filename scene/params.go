// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/roomview/base/errors"
	"cogentcore.org/roomview/base/reflectx"
	"cogentcore.org/roomview/colors"
	"cogentcore.org/roomview/math32"
	"cogentcore.org/roomview/room"
)

// Params are the parameters that [Build] turns into a [Scene].
// Field defaults are given by `default:` tags; see [DefaultParams].
type Params struct {

	// Name is the name of the scene.
	Name string `default:"room"`

	// Room is the room size and center.
	Room room.Room

	// Style is how the room walls are surfaced.
	Style RoomStyles `default:"TexturedColored"`

	// Background is the background color.
	Background colors.Color `default:"#0000ff"`

	// Camera are the camera parameters.
	Camera CameraParams

	// Lights are the lighting parameters.
	Lights LightParams

	// Textures are the room texture files.
	Textures TextureParams

	// Grid are the wireframe grid parameters.
	Grid GridParams

	// Skybox are the skybox parameters.
	Skybox SkyboxParams

	// Label are the text label parameters.
	Label LabelParams

	// Cubes are the decorative animated cubes.
	Cubes []CubeParams
}

// CameraParams are the camera projection and start position.
type CameraParams struct {
	FOV    float32 `default:"35"`
	Aspect float32 `default:"1.5"`
	Near   float32 `default:"0.1"`
	Far    float32 `default:"1000"`

	// Pos is the start position; if nil it is computed from the room size.
	Pos *math32.Vector3
}

// LightParams select and parameterize the scene lights.
type LightParams struct {
	Hemisphere          bool         `default:"true"`
	Sky                 colors.Color `default:"#ddeeff"`
	Ground              colors.Color `default:"#200020"`
	HemisphereIntensity float32      `default:"6"`

	Directional          bool         `default:"true"`
	DirectionalColor     colors.Color `default:"#ffffff"`
	DirectionalIntensity float32      `default:"2"`

	// Points adds three white point lights around the room.
	Points         bool    `default:"false"`
	PointIntensity float32 `default:"1"`
}

// TextureParams name the room texture files, relative to Dir.
type TextureParams struct {

	// Dir is the directory containing the texture files.
	Dir string `default:"resources/images"`

	Wall  string `default:"wall.png"`
	Roof  string `default:"roof.png"`
	Floor string `default:"floor.png"`

	// Opacity is the opacity of the textured room surfaces.
	Opacity float32 `default:"0.9"`
}

// GridParams are the wireframe grid parameters.
type GridParams struct {
	On      bool         `default:"true"`
	Spacing float32      `default:"1"`
	Color   colors.Color `default:"#ffffff"`
	Opacity float32      `default:"0.5"`
}

// SkyboxParams are the skybox parameters. The six face textures are
// named px, nx, py, ny, pz and nz with the given extension, in Dir
// under the texture directory.
type SkyboxParams struct {
	On   bool    `default:"false"`
	Dir  string  `default:"skybox"`
	Ext  string  `default:".png"`
	Size float32 `default:"500"`
}

// LabelParams are the parameters of the extruded text label.
type LabelParams struct {
	On    bool         `default:"true"`
	Text  string       `default:"Room"`
	Font  string       `default:"helvetiker"`
	Size  float32      `default:"0.25"`
	Depth float32      `default:"0.05"`
	Bevel bool         `default:"false"`
	Color colors.Color `default:"#ffffff"`

	// Pos is the label position; if nil it is placed
	// just above the back wall.
	Pos *math32.Vector3
}

// CubeParams describe one decorative cube.
type CubeParams struct {
	Name    string
	Texture string
	Color   colors.Color
	Size    float32
	Pos     math32.Vector3

	// Spin is the rotation per frame in radians.
	Spin math32.Vector3
}

// DefaultParams returns the params with all defaults applied.
func DefaultParams() Params {
	p := Params{}
	p.Defaults()
	return p
}

// Defaults sets all fields from their `default:` tags, and sets the
// default cubes if none are set.
func (p *Params) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(p))
	if p.Cubes == nil {
		p.Cubes = DefaultCubes()
	}
}

// DefaultCubes returns the two spinning textured cubes either side of
// the room center.
func DefaultCubes() []CubeParams {
	clr := colors.MustFromHex("#156289")
	return []CubeParams{
		{Name: "magnus", Texture: "magnus.png", Color: clr, Size: 1, Pos: math32.Vec3(-1, 0, 0), Spin: math32.Vec3(-0.005, -0.008, 0)},
		{Name: "erlend", Texture: "erlend.png", Color: clr, Size: 1, Pos: math32.Vec3(1, 0, 0), Spin: math32.Vec3(-0.008, -0.005, 0)},
	}
}
