// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"math"
	"testing"

	"cogentcore.org/roomview/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-6)

func TestWrapAngle(t *testing.T) {
	tolassert.EqualTol(t, 0, WrapAngle(0), standardTol)
	tolassert.EqualTol(t, Pi, WrapAngle(-Pi), 1e-5)
	tolassert.EqualTol(t, 3*Pi/2, WrapAngle(-Pi/2), 1e-5)
	tolassert.EqualTol(t, Pi/2, WrapAngle(TwoPi+Pi/2), 1e-5)
}

func TestDegRad(t *testing.T) {
	tolassert.EqualTol(t, 180, RadToDeg(Pi), 1e-4)
	tolassert.EqualTol(t, Pi/2, DegToRad(90), standardTol)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1))
	assert.False(t, IsFinite(Infinity))
	assert.False(t, IsFinite(float32(math.NaN())))
	assert.True(t, Vec3(1, 2, 3).IsFinite())
	assert.False(t, Vec3(1, Infinity, 3).IsFinite())
}

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoints([]Vector3{Vec3(-1, 0, 2), Vec3(3, -2, 1)})
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vec3(-1, -2, 1), b.Min)
	assert.Equal(t, Vec3(3, 0, 2), b.Max)
	assert.Equal(t, Vec3(1, -1, 1.5), b.Center())
	assert.Equal(t, Vec3(4, 2, 1), b.Size())
	assert.True(t, b.ContainsPoint(Vec3(0, -1, 1.5)))
	assert.False(t, b.ContainsPoint(Vec3(0, 1, 1.5)))

	c := B3FromCenterSize(Vec3(0, 0, 0), Vec3(5, 2.5, 3))
	assert.Equal(t, Vec3(-2.5, -1.25, -1.5), c.Min)
	assert.Equal(t, Vec3(2.5, 1.25, 1.5), c.Max)
}
