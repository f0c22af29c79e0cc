// seehuhn.de/go/sketch - a 2D drawing library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package sketch implements an immediate-mode 2D drawing model built around
// a stack of affine transformation matrices.
//
// Callers build a coordinate frame by mutating a [MatrixStack]
// (push/pop/translate/rotate), and then issue draw calls through a [Canvas].
// The canvas transforms all user-space coordinates through the top-of-stack
// matrix (the "current transformation matrix", CTM) and forwards the
// resulting device-space pixel coordinates to a [Device] for rasterisation.
package sketch

import "math"

// Map linearly maps value from the range [origMin, origMax] to the range
// [newMin, newMax]. Values outside the original range are extrapolated.
func Map(value, origMin, origMax, newMin, newMax float64) float64 {
	return (value-origMin)*(newMax-newMin)/(origMax-origMin) + newMin
}

// Clamp restricts value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Dist returns the Euclidean distance between the points (x1, y1) and
// (x2, y2).
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
