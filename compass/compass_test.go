// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compass

import (
	"encoding/json"
	"testing"

	"cogentcore.org/roomview/base/tolassert"
	"cogentcore.org/roomview/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		x, z float32
		want string
	}{
		{0, 1, "0° N"},
		{0, 7, "0° N"},
		{-1, 0, "90° E"},
		{0, -1, "180° S"},
		{1, 0, "270° W"},
		{-1, 1, "45° NE"},
		{-1, -1, "135° SE"},
		{1, -1, "225° SW"},
		{1, 1, "315° NW"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.x, tt.z), "Label(%g, %g)", tt.x, tt.z)
	}
}

func TestAngle(t *testing.T) {
	tolassert.EqualTol(t, 0, Angle(0, 1), 1e-6)
	tolassert.EqualTol(t, math32.Pi, Angle(0, -1), 1e-5)
	tolassert.EqualTol(t, 3*math32.Pi/2, Angle(1, 0), 1e-5)
	for _, p := range [][2]float32{{3, 4}, {-3, 4}, {-3, -4}, {3, -4}, {1e-9, 1}} {
		a := Angle(p[0], p[1])
		assert.GreaterOrEqual(t, a, float32(0))
		assert.Less(t, a, float32(math32.TwoPi))
	}
}

func TestDegreesWrap(t *testing.T) {
	// just clockwise of north rounds up to 360, which wraps to north
	x := math32.Sin(math32.DegToRad(0.2))
	z := math32.Cos(math32.DegToRad(0.2))
	assert.Equal(t, 0, Degrees(x, z))
	assert.Equal(t, "0° N", Label(x, z))
	assert.Equal(t, 360, int(math32.Round(math32.RadToDeg(Angle(x, z)))))
}

func TestDegreesContinuous(t *testing.T) {
	prev := Degrees(0, 1)
	for i := 1; i <= 3600; i++ {
		rad := math32.DegToRad(float32(i) / 10)
		// walk the bearing around by tenths of a degree
		d := Degrees(-math32.Sin(rad), math32.Cos(rad))
		diff := d - prev
		if prev == 359 && d == 0 {
			diff = 1
		}
		assert.True(t, diff == 0 || diff == 1, "step %d: %d -> %d", i, prev, d)
		prev = d
	}
}

func TestDirectionOf(t *testing.T) {
	assert.Equal(t, N, DirectionOf(0))
	assert.Equal(t, NE, DirectionOf(1))
	assert.Equal(t, NE, DirectionOf(89))
	assert.Equal(t, E, DirectionOf(90))
	assert.Equal(t, SE, DirectionOf(91))
	assert.Equal(t, S, DirectionOf(180))
	assert.Equal(t, SW, DirectionOf(269))
	assert.Equal(t, W, DirectionOf(270))
	assert.Equal(t, NW, DirectionOf(359))
	assert.Equal(t, NoDirection, DirectionOf(360))
	assert.Equal(t, NoDirection, DirectionOf(-1))
}

func TestReadingString(t *testing.T) {
	assert.Equal(t, "360", NewReading(360).String())
	assert.Equal(t, "12° NE", NewReading(12).String())
}

func TestRelative(t *testing.T) {
	center := math32.Vec3(10, 0, 10)
	assert.Equal(t, Reading{0, N}, Relative(math32.Vec3(10, 5, 17), center))
	assert.Equal(t, Reading{270, W}, Relative(math32.Vec3(12, 5, 10), center))
}

func TestReadingJSON(t *testing.T) {
	b, err := json.Marshal(NewReading(135))
	require.NoError(t, err)
	assert.JSONEq(t, `{"degree":135,"direction":"SE"}`, string(b))

	var r Reading
	require.NoError(t, json.Unmarshal(b, &r))
	assert.Equal(t, Reading{135, SE}, r)
	assert.Error(t, json.Unmarshal([]byte(`{"direction":"Q"}`), &r))
}

func TestNonFinitePanics(t *testing.T) {
	assert.Panics(t, func() { Angle(math32.Infinity, 0) })
	assert.Panics(t, func() { Degrees(0, float32(-math32.Infinity)) })
}
