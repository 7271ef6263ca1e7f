// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides image file inspection for the scene
// textures: content sniffing, format detection and dimensions.
package imagex

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"strings"

	"cogentcore.org/roomview/enums"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the supported image decoding formats
type Formats int32

// The supported image formats
const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

var formatNames = []string{"none", "png", "jpeg", "gif", "tiff", "bmp", "webp"}

func (f Formats) String() string { return enums.String("Formats", formatNames, f) }

// MarshalText implements [encoding.TextMarshaler].
func (f Formats) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Formats) UnmarshalText(text []byte) error {
	return enums.SetString("imagex.Formats", formatNames, f, string(text))
}

// ErrNotImage is returned by [Probe] for files whose content is not
// a supported image format.
var ErrNotImage = errors.New("imagex: not a supported image")

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// Info describes an image file without holding its pixels.
type Info struct {

	// File is the file name the info was read from.
	File string `json:"file" yaml:"file"`

	// Format is the format detected from the file content.
	Format Formats `json:"format" yaml:"format"`

	// MIME is the detected MIME type.
	MIME string `json:"mime" yaml:"mime"`

	// Width and Height are the pixel dimensions.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// headerSize is the number of bytes filetype needs to match any image type.
const headerSize = 261

// Probe inspects the given file on the given filesystem, sniffing its
// content type and decoding only its header for the dimensions.
// It returns an error wrapping [ErrNotImage] if the content is not
// a supported image, regardless of the file extension.
func Probe(fsys fs.FS, filename string) (Info, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return Info{}, err
	}
	defer file.Close()
	info, err := Read(file)
	info.File = filename
	if err != nil {
		return info, fmt.Errorf("imagex.Probe: %s: %w", filename, err)
	}
	return info, nil
}

// Read sniffs and decodes the image header from the given reader.
func Read(r io.Reader) (Info, error) {
	head := make([]byte, headerSize)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Info{}, err
	}
	head = head[:n]
	if !filetype.IsImage(head) {
		return Info{}, ErrNotImage
	}
	kind, err := filetype.Match(head)
	if err != nil {
		return Info{}, err
	}
	f, err := ExtToFormat(kind.Extension)
	if err != nil {
		return Info{MIME: kind.MIME.Value}, fmt.Errorf("%w: %s", ErrNotImage, kind.MIME.Value)
	}
	cfg, _, err := image.DecodeConfig(io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		return Info{Format: f, MIME: kind.MIME.Value}, err
	}
	return Info{Format: f, MIME: kind.MIME.Value, Width: cfg.Width, Height: cfg.Height}, nil
}
