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

import "image/color"

// Device is the rasterisation backend used by a [Canvas]. All coordinates
// are device-space pixel indices; the canvas performs the user-space to
// device-space conversion before calling into the device.
//
// Draw methods report failures of the underlying surface (for example an
// invalid colour or a destroyed render target). Such errors are passed back
// to the caller unchanged and are never retried: repeating a rasterisation
// call with identical arguments cannot succeed.
type Device interface {
	// DrawLine draws a straight line from (x0, y0) to (x1, y1).
	DrawLine(x0, y0, x1, y1 int, col color.Color) error

	// FillCircle draws a filled circle with the given center and radius.
	FillCircle(cx, cy, r int, col color.Color) error

	// Clear fills the whole surface with the given colour.
	Clear(col color.Color)
}
