// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/roomview/colors"
	"cogentcore.org/roomview/math32"
)

// Light is a light that illuminates the scene.
// Lights are stored on the [Scene] and accessed by name.
type Light struct {

	// Name is the name of the light.
	Name string

	// Type is the kind of light.
	Type LightTypes

	// On is whether the light is turned on.
	On bool

	// Color is the color of the light at full intensity;
	// for a hemisphere light it is the sky color.
	Color colors.Color

	// Ground is the ground color of a hemisphere light.
	Ground colors.Color

	// Intensity multiplies the color.
	Intensity float32

	// Pos is the position of directional, point and hemisphere lights.
	Pos math32.Vector3
}

// AddLight adds the given light, replacing any existing light of the same name.
func (sc *Scene) AddLight(lt Light) {
	for i := range sc.Lights {
		if sc.Lights[i].Name == lt.Name {
			sc.Lights[i] = lt
			return
		}
	}
	sc.Lights = append(sc.Lights, lt)
}

// LightByName returns the light with the given name, or false if not found.
func (sc *Scene) LightByName(name string) (Light, bool) {
	for _, lt := range sc.Lights {
		if lt.Name == name {
			return lt, true
		}
	}
	return Light{}, false
}

// NewHemisphereLight adds a hemisphere light with the given sky and ground colors.
func NewHemisphereLight(sc *Scene, name string, sky, ground colors.Color, intensity float32) {
	sc.AddLight(Light{Name: name, Type: HemisphereLight, On: true, Color: sky, Ground: ground, Intensity: intensity})
}

// NewDirLight adds a directional light at the given position, shining toward the origin.
func NewDirLight(sc *Scene, name string, clr colors.Color, intensity float32, pos math32.Vector3) {
	sc.AddLight(Light{Name: name, Type: DirectionalLight, On: true, Color: clr, Intensity: intensity, Pos: pos})
}

// NewPointLight adds a point light at the given position.
func NewPointLight(sc *Scene, name string, clr colors.Color, intensity float32, pos math32.Vector3) {
	sc.AddLight(Light{Name: name, Type: PointLight, On: true, Color: clr, Intensity: intensity, Pos: pos})
}
