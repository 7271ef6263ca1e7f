// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the hex color type used by scene
// descriptions and configuration files.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Color is an [color.RGBA] that is encoded as a hex string
// (for example "#156289") in text formats such as TOML, YAML and JSON.
type Color struct {
	color.RGBA
}

// FromRGB returns a new opaque [Color] from the given components.
func FromRGB(r, g, b uint8) Color {
	return Color{color.RGBA{r, g, b, 255}}
}

// FromHex parses the given hex color string
// and returns the resulting color. It returns any
// resulting error; see [MustFromHex] for a
// version that does not return an error.
func FromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return Color{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return Color{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return Color{color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}}, nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic("colors.MustFromHex: " + err.Error())
	}
	return c
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string, omitting the alpha component when the color is opaque.
func (c Color) AsHex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) String() string {
	return c.AsHex()
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.AsHex()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	nc, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*c = nc
	return nil
}

// Standard colors used by the viewer.
var (
	White = FromRGB(255, 255, 255)
	Black = FromRGB(0, 0, 0)
	Blue  = FromRGB(0, 0, 255)
)
