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
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Canvas draws primitives onto a [Device], transforming all user-space
// coordinates through the top of a [MatrixStack] first. A Canvas holds an
// explicit stack handle rather than reaching for process-wide state; to
// share one coordinate frame between several goroutines, share the Canvas
// (or its stack) between them.
type Canvas struct {
	dev   Device
	stack *MatrixStack
}

// New returns a Canvas drawing to dev, with a fresh matrix stack holding a
// single identity matrix.
func New(dev Device) *Canvas {
	return NewWithStack(dev, NewMatrixStack())
}

// NewWithStack returns a Canvas drawing to dev which uses the given matrix
// stack. Several canvases may share one stack.
func NewWithStack(dev Device, stack *MatrixStack) *Canvas {
	return &Canvas{
		dev:   dev,
		stack: stack,
	}
}

// Stack returns the matrix stack used by the canvas.
func (c *Canvas) Stack() *MatrixStack {
	return c.stack
}

// Reset restores the matrix stack to a single identity matrix.
func (c *Canvas) Reset() {
	c.stack.Reset()
}

// Push saves the current transformation frame.
func (c *Canvas) Push() {
	c.stack.Push()
}

// Pop restores the transformation frame saved by the matching [Canvas.Push].
// Popping the base frame returns [ErrStackUnderflow].
func (c *Canvas) Pop() error {
	return c.stack.Pop()
}

// Translate moves the origin of the current coordinate frame by (dx, dy).
func (c *Canvas) Translate(dx, dy float64) {
	c.stack.Translate(dx, dy)
}

// Rotate rotates the current coordinate frame about its origin by the given
// angle in radians.
func (c *Canvas) Rotate(radians float64) {
	c.stack.Rotate(radians)
}

// Background fills the whole surface with the given colour. The fill covers
// the complete device area and is not affected by the current
// transformation.
func (c *Canvas) Background(col color.Color) {
	c.dev.Clear(col)
}

// DrawLine draws a line between the user-space points p0 and p1. Both
// endpoints are transformed through the CTM and rounded to device pixels
// before the device is called. Device errors are returned unchanged.
func (c *Canvas) DrawLine(p0, p1 vec.Vec2, col color.Color) error {
	m := c.stack.CTM()
	q0 := Transform(m, p0)
	q1 := Transform(m, p1)
	return c.dev.DrawLine(
		DevicePixel(q0.X), DevicePixel(q0.Y),
		DevicePixel(q1.X), DevicePixel(q1.Y),
		col)
}

// FillCircle draws a filled circle around the user-space point center. The
// center is transformed through the CTM; the radius is rounded to device
// pixels but not otherwise transformed, so the circle keeps its size under
// translation and rotation. (Scaling transforms, which this package does
// not construct, would leave the radius unchanged as well; this is a known
// limitation of the model.)
func (c *Canvas) FillCircle(center vec.Vec2, radius float64, col color.Color) error {
	q := Transform(c.stack.CTM(), center)
	return c.dev.FillCircle(
		DevicePixel(q.X), DevicePixel(q.Y), DevicePixel(radius), col)
}
