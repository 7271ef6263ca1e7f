// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"cogentcore.org/roomview/base/iox/imagex"
)

// Texture is an image file used to color the surface of a [Material].
// Textures are connected to materials by name.
type Texture struct {

	// Name is the name of the texture.
	Name string

	// File is the file path of the image, relative to the
	// texture directory served to the renderer.
	File string

	// Info is the sniffed image information.
	Info imagex.Info
}

// NewTextureFile sniffs the given file on the given filesystem and, if it
// is a valid image, adds it as a texture with the given name. Otherwise it
// logs a warning and returns nil, so that callers can fall back to a
// plain color material.
func NewTextureFile(sc *Scene, fsys fs.FS, name, filename string) *Texture {
	info, err := imagex.Probe(fsys, path.Clean(filename))
	if err != nil {
		slog.Warn("scene.NewTextureFile: texture unavailable, using color", "texture", name, "file", filename, "error", err)
		return nil
	}
	tx := &Texture{Name: name, File: filename, Info: info}
	sc.SetTexture(tx)
	return tx
}

// SetTexture adds given texture to texture collection,
// replacing any existing texture of the same name.
func (sc *Scene) SetTexture(tx *Texture) {
	for i, et := range sc.Textures {
		if et.Name == tx.Name {
			sc.Textures[i] = tx
			return
		}
	}
	sc.Textures = append(sc.Textures, tx)
}

// TextureByName looks for texture by name, returning error if not found.
func (sc *Scene) TextureByName(name string) (*Texture, error) {
	for _, tx := range sc.Textures {
		if tx.Name == name {
			return tx, nil
		}
	}
	return nil, fmt.Errorf("Texture named: %v not found in Scene: %v", name, sc.Name)
}
