// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"cogentcore.org/roomview/base/fsx"
	"cogentcore.org/roomview/colors"
	"cogentcore.org/roomview/grid"
	"cogentcore.org/roomview/math32"
)

// Names of the solids and meshes made by [Build].
const (
	RoomMesh       = "room"
	RoomTextured   = "room-texture"
	RoomColored    = "room-color"
	GridName       = "grid"
	SkyboxName     = "skybox"
	LabelName      = "label"
	CubeMeshPrefix = "cube-"
)

// SkyboxFaces are the skybox face names, in box face order.
var SkyboxFaces = [NumBoxFaces]string{"px", "nx", "py", "ny", "pz", "nz"}

// Room face colors, in box face order: right, left, top, bottom, front, back.
var roomFaceColors = [NumBoxFaces]string{"#838587", "#838587", "#989a9b", "#757777", "#757777", "#757777"}

// Build makes a new [Scene] from the given params. Texture files are
// sniffed on fsys, which defaults to the params texture directory when nil.
// Textures that are missing or not images are logged and replaced by plain
// colors, so a scene can always be built from valid params.
func Build(p Params, fsys fs.FS) (*Scene, error) {
	if err := p.Room.Validate(); err != nil {
		return nil, err
	}
	if p.Grid.On {
		if err := grid.Check(p.Room, p.Grid.Spacing); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}
	if fsys == nil {
		fsys = os.DirFS(p.Textures.Dir)
	}
	rm := p.Room
	sc := NewScene(p.Name, rm)
	sc.Background = p.Background

	cm := &sc.Camera
	cm.FOV = p.Camera.FOV
	cm.Aspect = p.Camera.Aspect
	cm.Near = p.Camera.Near
	cm.Far = p.Camera.Far
	cm.Target = rm.Center
	if p.Camera.Pos != nil {
		cm.Pos = *p.Camera.Pos
	} else {
		cm.Pos = rm.DefaultCameraPos()
	}

	buildLights(sc, p.Lights)
	buildRoom(sc, p, fsys)
	if p.Grid.On {
		gm := ColorMaterial(p.Grid.Color, DoubleSide)
		gm.Opacity = p.Grid.Opacity
		NewLineSet(sc, GridName, grid.Build(rm, p.Grid.Spacing))
		NewSolid(sc, GridName, GridName, gm)
	}
	if p.Skybox.On {
		buildSkybox(sc, p.Skybox, fsys)
	}
	if p.Label.On {
		buildLabel(sc, p.Label)
	}
	for _, cp := range p.Cubes {
		buildCube(sc, cp, fsys)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("scene built", "name", sc.Name, "room", rm.String(), "solids", len(sc.Solids), "textures", len(sc.Textures))
	return sc, nil
}

func buildLights(sc *Scene, lp LightParams) {
	if lp.Hemisphere {
		NewHemisphereLight(sc, "hemisphere", lp.Sky, lp.Ground, lp.HemisphereIntensity)
	}
	if lp.Directional {
		NewDirLight(sc, "directional", lp.DirectionalColor, lp.DirectionalIntensity, math32.Vec3(0, 1, 1))
	}
	if lp.Points {
		NewPointLight(sc, "point0", colors.White, lp.PointIntensity, math32.Vec3(0, 20, 20))
		NewPointLight(sc, "point1", colors.White, lp.PointIntensity, math32.Vec3(90, 200, 100))
		NewPointLight(sc, "point2", colors.White, lp.PointIntensity, math32.Vec3(-90, -200, -100))
	}
}

func buildRoom(sc *Scene, p Params, fsys fs.FS) {
	rm := p.Room
	NewBox(sc, RoomMesh, rm.Width, rm.Height, rm.Depth)
	textured := p.Style == Textured || p.Style == TexturedColored
	colored := p.Style == Colored || p.Style == TexturedColored
	if textured {
		tp := p.Textures
		wall := NewTextureFile(sc, fsys, "wall", tp.Wall)
		roof := NewTextureFile(sc, fsys, "roof", tp.Roof)
		floor := NewTextureFile(sc, fsys, "floor", tp.Floor)
		if wall != nil && roof != nil && floor != nil {
			one := math32.Vec2(1, 1)
			wm := TextureMaterial(wall.Name, one, tp.Opacity, BackSide)
			rmat := TextureMaterial(roof.Name, math32.Vec2(1, 0), tp.Opacity, BackSide)
			fm := TextureMaterial(floor.Name, one, tp.Opacity, BackSide)
			NewSolid(sc, RoomTextured, RoomMesh, wm, wm, rmat, fm, wm, wm).SetPos(rm.Center.X, rm.Center.Y, rm.Center.Z)
		} else {
			slog.Warn("scene: room textures unavailable, using colored room")
			colored = true
		}
	}
	if colored {
		mats := make([]Material, NumBoxFaces)
		for i, hex := range roomFaceColors {
			mats[i] = ColorMaterial(colors.MustFromHex(hex), BackSide)
		}
		NewSolid(sc, RoomColored, RoomMesh, mats...).SetPos(rm.Center.X, rm.Center.Y, rm.Center.Z)
	}
}

func buildSkybox(sc *Scene, sp SkyboxParams, fsys fs.FS) {
	files := make([]string, NumBoxFaces)
	for i, face := range SkyboxFaces {
		files[i] = path.Join(sp.Dir, face+sp.Ext)
	}
	if missing, err := fsx.AllExistFS(fsys, files...); missing != "" {
		slog.Warn("scene: skybox face missing, skipping skybox", "file", missing, "err", err)
		return
	}
	mats := make([]Material, NumBoxFaces)
	for i, face := range SkyboxFaces {
		name := SkyboxName + "-" + face
		tx := NewTextureFile(sc, fsys, name, files[i])
		if tx == nil {
			slog.Warn("scene: skybox face unreadable, skipping skybox", "face", face)
			return
		}
		mats[i] = TextureMaterial(tx.Name, math32.Vec2(1, 1), 1, BackSide)
	}
	NewBox(sc, SkyboxName, sp.Size, sp.Size, sp.Size)
	NewSolid(sc, SkyboxName, SkyboxName, mats...).SetPos(sc.Room.Center.X, sc.Room.Center.Y, sc.Room.Center.Z)
}

func buildLabel(sc *Scene, lp LabelParams) {
	NewText(sc, LabelName, TextParams{Text: lp.Text, Font: lp.Font, Size: lp.Size, Depth: lp.Depth, Bevel: lp.Bevel})
	mt := ColorMaterial(lp.Color, FrontSide)
	mt.FlatShading = true
	sld := NewSolid(sc, LabelName, LabelName, mt)
	if lp.Pos != nil {
		sld.Pose.Pos = *lp.Pos
		return
	}
	rm := sc.Room
	sld.SetPos(rm.Center.X, rm.Floor()+rm.Height+lp.Size, rm.Center.Z-rm.Depth/2)
}

func buildCube(sc *Scene, cp CubeParams, fsys fs.FS) {
	size := cp.Size
	if size <= 0 {
		size = 1
	}
	mesh := CubeMeshPrefix + cp.Name
	NewBox(sc, mesh, size, size, size)
	var mt Material
	if cp.Texture != "" {
		if tx := NewTextureFile(sc, fsys, cp.Name, cp.Texture); tx != nil {
			mt = TextureMaterial(tx.Name, math32.Vec2(1, 1), 1, FrontSide)
		}
	}
	if mt.Texture == "" {
		clr := cp.Color
		if clr == (colors.Color{}) {
			clr = colors.White
		}
		mt = ColorMaterial(clr, FrontSide)
	}
	mt.FlatShading = true
	sld := NewSolid(sc, cp.Name, mesh, mt)
	sld.Pose.Pos = cp.Pos
	sld.Spin = cp.Spin
}
