// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid builds the wireframe grid drawn over the inside
// surfaces of a [room.Room]: lines across the floor and up the
// side walls, lines across the floor and up the back and front
// walls, and horizontal loops around all four walls.
package grid

import (
	"fmt"
	"math"

	"cogentcore.org/roomview/enums"
	"cogentcore.org/roomview/math32"
	"cogentcore.org/roomview/room"
)

// Families are the three families of grid lines.
type Families int32

const (
	// Width lines run front to back, one per step along the width,
	// rising up the front and back walls.
	Width Families = iota

	// Depth lines run left to right, one per step along the depth,
	// rising up the left and right walls.
	Depth

	// Height lines are closed loops around the four walls,
	// one per step up the height.
	Height
)

var familyNames = []string{"Width", "Depth", "Height"}

func (f Families) String() string { return enums.String("Families", familyNames, f) }

// MarshalText implements [encoding.TextMarshaler].
func (f Families) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Families) UnmarshalText(text []byte) error {
	return enums.SetString("grid.Families", familyNames, f, string(text))
}

// Polyline is an ordered sequence of connected points.
type Polyline []math32.Vector3

// IsClosed returns whether the first and last points are equal.
func (pl Polyline) IsClosed() bool {
	return len(pl) > 1 && pl[0] == pl[len(pl)-1]
}

// Line is one grid polyline, tagged with the family it belongs to.
type Line struct {
	Family Families
	Points Polyline
}

// Build returns the grid lines for the given room, spaced the given
// distance apart starting from the negative-extent edge of each axis.
// The result is ordered: all [Width] lines, then [Depth], then [Height],
// each in increasing offset.
//
// The width family uses an inclusive bound (offsets up to and including
// ceil(width)), while the depth and height families use an exclusive bound,
// so a room with integer dimensions gets width+1, depth and height lines.
//
// Build panics if [Check] returns an error for the room and spacing.
func Build(rm room.Room, spacing float32) []Line {
	mustValid(rm, spacing)
	nw, nd, nh := Counts(rm, spacing)
	lines := make([]Line, 0, nw+nd+nh)

	x0 := rm.Center.X - rm.Width/2
	x1 := rm.Center.X + rm.Width/2
	y0 := rm.Floor()
	y1 := y0 + rm.Height
	zn := rm.Center.Z + rm.Depth/2
	zf := rm.Center.Z - rm.Depth/2

	for k := range nw {
		x := x0 + float32(k)*spacing
		lines = append(lines, Line{Width, Polyline{
			math32.Vec3(x, y1, zn),
			math32.Vec3(x, y0, zn),
			math32.Vec3(x, y0, zf),
			math32.Vec3(x, y1, zf),
		}})
	}
	for k := range nd {
		z := zn - float32(k)*spacing
		lines = append(lines, Line{Depth, Polyline{
			math32.Vec3(x0, y1, z),
			math32.Vec3(x0, y0, z),
			math32.Vec3(x1, y0, z),
			math32.Vec3(x1, y1, z),
		}})
	}
	for k := range nh {
		y := y0 + float32(k)*spacing
		lines = append(lines, Line{Height, Polyline{
			math32.Vec3(x0, y, zn),
			math32.Vec3(x1, y, zn),
			math32.Vec3(x1, y, zf),
			math32.Vec3(x0, y, zf),
			math32.Vec3(x0, y, zn),
		}})
	}
	return lines
}

// MaxLines is the most lines a grid may have over all three families.
const MaxLines = 100000

// countTol is the relative tolerance of the step counts, so that a float32
// spacing such as 0.3 still divides 15 into exactly 50 steps.
const countTol = 1e-6

// Counts returns the number of lines [Build] produces in each family.
// It panics under the same conditions as [Build].
func Counts(rm room.Room, spacing float32) (width, depth, height int) {
	mustValid(rm, spacing)
	w, d, h := familySizes(rm, spacing)
	return int(w), int(d), int(h)
}

// Check returns an error if a grid cannot be built for the given room
// and spacing: the spacing must be positive and finite, the room valid,
// and the grid at most [MaxLines] lines.
func Check(rm room.Room, spacing float32) error {
	if !(spacing > 0) || math32.IsInf(spacing, 0) {
		return fmt.Errorf("grid: spacing must be positive and finite, not %g", spacing)
	}
	if err := rm.Validate(); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	w, d, h := familySizes(rm, spacing)
	if n := w + d + h; n > MaxLines {
		return fmt.Errorf("grid: spacing %g in a %s room gives %.0f lines, more than %d", spacing, rm.String(), n, MaxLines)
	}
	return nil
}

// familySizes returns the family line counts in closed form. The
// counts are float64 so that a huge count can be checked before
// converting it to int.
func familySizes(rm room.Room, spacing float32) (width, depth, height float64) {
	s := float64(spacing)
	upTo := func(limit float32) float64 {
		return math.Floor(float64(limit)/s*(1+countTol)) + 1
	}
	below := func(limit float32) float64 {
		return math.Ceil(float64(limit) / s * (1 - countTol))
	}
	return upTo(math32.Ceil(rm.Width)), below(math32.Ceil(rm.Depth)), below(math32.Ceil(rm.Height))
}

func mustValid(rm room.Room, spacing float32) {
	if err := Check(rm, spacing); err != nil {
		panic("programmer error: " + err.Error())
	}
}

// Family returns the lines of the given family, in order.
func Family(lines []Line, f Families) []Line {
	var res []Line
	for _, ln := range lines {
		if ln.Family == f {
			res = append(res, ln)
		}
	}
	return res
}

// Segments flattens the given lines into pairs of points, one pair
// per straight segment, for renderers that draw independent segments
// rather than connected polylines.
func Segments(lines []Line) [][2]math32.Vector3 {
	n := 0
	for _, ln := range lines {
		n += max(len(ln.Points)-1, 0)
	}
	segs := make([][2]math32.Vector3, 0, n)
	for _, ln := range lines {
		for i := 1; i < len(ln.Points); i++ {
			segs = append(segs, [2]math32.Vector3{ln.Points[i-1], ln.Points[i]})
		}
	}
	return segs
}

// Bounds returns the bounding box of all points in the given lines,
// which is empty if there are none.
func Bounds(lines []Line) math32.Box3 {
	bb := math32.B3Empty()
	for _, ln := range lines {
		bb.ExpandByPoints(ln.Points)
	}
	return bb
}
