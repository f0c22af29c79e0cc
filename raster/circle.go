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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Circle returns a closed path approximating the circle with the given
// centre and radius, built from four cubic Bézier segments. The maximum
// radial error is about 0.00027 * radius.
func Circle(center vec.Vec2, radius float64) *path.Data {
	// control point offset for a quarter circle
	const k = 0.5522847498

	cx, cy := center.X, center.Y
	r := radius
	kr := k * r

	p := &path.Data{}
	p.Cmds = append(p.Cmds,
		path.CmdMoveTo,
		path.CmdCubeTo,
		path.CmdCubeTo,
		path.CmdCubeTo,
		path.CmdCubeTo,
		path.CmdClose,
	)
	p.Coords = append(p.Coords,
		vec.Vec2{X: cx + r, Y: cy},

		vec.Vec2{X: cx + r, Y: cy + kr},
		vec.Vec2{X: cx + kr, Y: cy + r},
		vec.Vec2{X: cx, Y: cy + r},

		vec.Vec2{X: cx - kr, Y: cy + r},
		vec.Vec2{X: cx - r, Y: cy + kr},
		vec.Vec2{X: cx - r, Y: cy},

		vec.Vec2{X: cx - r, Y: cy - kr},
		vec.Vec2{X: cx - kr, Y: cy - r},
		vec.Vec2{X: cx, Y: cy - r},

		vec.Vec2{X: cx + kr, Y: cy - r},
		vec.Vec2{X: cx + r, Y: cy - kr},
		vec.Vec2{X: cx + r, Y: cy},
	)
	return p
}
