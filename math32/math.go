// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and math package
// for the 3D room geometry.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Mathematical constants.
const (
	Pi = math.Pi

	// TwoPi is a full turn in radians.
	TwoPi = 2 * math.Pi
)

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Atan2 returns the arc tangent of y/x, using the signs of the two
// to determine the quadrant of the return value.
func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return math32.Round(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Mod returns the floating-point remainder of x/y.
func Mod(x, y float32) float32 {
	return math32.Mod(x, y)
}

// IsInf reports whether f is an infinity, according to sign.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// IsNaN reports whether f is an IEEE 754 “not-a-number” value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float32) bool {
	return !IsNaN(x) && !IsInf(x, 0)
}

// WrapAngle returns the given angle in radians normalized into [0, 2π).
func WrapAngle(rad float32) float32 {
	rad = Mod(rad, TwoPi)
	if rad < 0 {
		rad += TwoPi
	}
	return rad
}
