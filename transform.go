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

package sketch

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Transform maps the user-space point p to device space using the matrix m.
// The point is extended to the homogeneous coordinates (x, y, 1) and
// multiplied by the 3×3 matrix represented by m. Since m is affine, the
// homogeneous coordinate of the result is always 1 and no perspective
// division is required.
func Transform(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// DevicePixel narrows a device-space coordinate to an integer pixel index.
// Coordinates are rounded to the nearest integer, with halves rounding away
// from zero.
func DevicePixel(x float64) int {
	return int(math.Round(x))
}
