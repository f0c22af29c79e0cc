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
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokeLine strokes the line segment from a to b using Width and Cap, and
// calls emit for the resulting coverage rows. Coordinates are in user space.
//
// A zero-length segment leaves a mark only for round and square caps: a
// filled circle or an axis-aligned square of diameter Width, matching the
// usual stroking conventions.
func (r *Rasterizer) StrokeLine(a, b vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	d := r.Width / 2
	if d <= 0 {
		return
	}

	r.outline = r.outline[:0]

	ab := b.Sub(a)
	length := ab.Length()
	if length < zeroLengthThreshold {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addArc(a, d, vec.Vec2{X: 0, Y: 1}, 2*math.Pi, true)
		case graphics.LineCapSquare:
			r.addSquare(a, vec.Vec2{X: 1, Y: 0}, d)
		}
	} else {
		t := ab.Mul(1 / length)        // unit tangent a -> b
		n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal, left of t

		// Outline runs counter-clockwise: left side, cap at b,
		// right side, cap at a.
		r.outline = append(r.outline, a.Add(n.Mul(d)), b.Add(n.Mul(d)))
		r.addCap(b, t, d)
		r.outline = append(r.outline, b.Sub(n.Mul(d)), a.Sub(n.Mul(d)))
		r.addCap(a, t.Mul(-1), d)
	}

	if len(r.outline) < 3 {
		return
	}
	r.fillOutline(emit)
}

// addCap appends cap geometry for an endpoint to the outline. P is the
// endpoint, T is the unit tangent pointing outward (away from the segment),
// d is the half-width. On entry the outline ends at P + N*d where
// N = perp(T); the cap must connect to P - N*d.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		N := vec.Vec2{X: -T.Y, Y: T.X}
		r.addArc(P, d, N, -math.Pi, false)

	case graphics.LineCapSquare:
		N := vec.Vec2{X: -T.Y, Y: T.X}
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))

	default: // butt: the sides connect directly
	}
}

// addArc appends a polygonal approximation of a circular arc to the
// outline. The arc is centred at P with radius d, starts in direction
// startDir (a unit vector), and sweeps by the signed angle sweep
// (positive is counter-clockwise). If includeStart is true the start
// point P + startDir*d is appended as well.
//
// The number of segments is chosen so that the sagitta error in device
// space stays below Flatness.
func (r *Rasterizer) addArc(P vec.Vec2, d float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	// device-space radius estimate for the step size
	devRadius := max(r.transformLinear(vec.Vec2{X: d, Y: 0}).Length(),
		r.transformLinear(vec.Vec2{X: 0, Y: d}).Length())

	var angleStep float64
	if devRadius > r.Flatness {
		angleStep = 2 * math.Acos(1-r.Flatness/devRadius)
	} else {
		angleStep = math.Pi / 2
	}
	n := int(math.Ceil(math.Abs(sweep) / angleStep))
	if n < 1 {
		n = 1
	}

	base := math.Atan2(startDir.Y, startDir.X)
	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		phi := base + sweep*float64(i)/float64(n)
		r.outline = append(r.outline, vec.Vec2{
			X: P.X + d*math.Cos(phi),
			Y: P.Y + d*math.Sin(phi),
		})
	}
}

// addSquare appends an axis-aligned square cap for a degenerate (point)
// segment: the square of side 2d centred at P, oriented along T and its
// normal.
func (r *Rasterizer) addSquare(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	Td := T.Mul(d)
	Nd := N.Mul(d)
	r.outline = append(r.outline,
		P.Add(Td).Add(Nd),
		P.Sub(Td).Add(Nd),
		P.Sub(Td).Sub(Nd),
		P.Add(Td).Sub(Nd),
	)
}

// fillOutline fills the closed polygon in r.outline using the nonzero
// winding rule.
func (r *Rasterizer) fillOutline(emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true

	poly := r.outline
	for j := 1; j < len(poly); j++ {
		r.addEdge(poly[j-1], poly[j])
	}
	r.addEdge(poly[len(poly)-1], poly[0])

	xMin, xMax, yMin, yMax, ok := r.clampBBox()
	if !ok {
		return
	}
	r.fillEdges(xMin, xMax, yMin, yMax, fillNonZero, emit)
}
