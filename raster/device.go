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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Errors returned by ImageDevice drawing operations.
var (
	ErrNilColor       = errors.New("nil colour")
	ErrNegativeRadius = errors.New("negative radius")
)

// ImageDevice renders drawing operations into an in-memory RGBA image
// using anti-aliased coverage rasterisation. It implements the Device
// interface of package seehuhn.de/go/sketch.
//
// Coordinates passed to the drawing methods are device pixels. Shapes
// are clipped to the image bounds.
//
// An ImageDevice is not safe for concurrent use.
type ImageDevice struct {
	img *image.RGBA
	ras *Rasterizer
}

// NewImageDevice returns an ImageDevice rendering into a new RGBA image
// of the given size. The image starts fully transparent.
func NewImageDevice(width, height int) *ImageDevice {
	clip := rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(width),
		URy: float64(height),
	}
	return &ImageDevice{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: New(clip),
	}
}

// Image returns the underlying image. The returned image shares memory
// with the device; drawing operations after the call modify it.
func (d *ImageDevice) Image() *image.RGBA {
	return d.img
}

// SetLineWidth sets the stroke width, in pixels, used by DrawLine.
// Widths below one pixel are raised to one pixel.
func (d *ImageDevice) SetLineWidth(w float64) {
	if w < 1 {
		w = 1
	}
	d.ras.Width = w
}

// SetLineCap sets the cap style used by DrawLine.
func (d *ImageDevice) SetLineCap(style graphics.LineCapStyle) {
	d.ras.Cap = style
}

// Clear fills the whole image with the given colour, replacing any
// previous content.
func (d *ImageDevice) Clear(col color.Color) {
	if col == nil {
		return
	}
	draw.Draw(d.img, d.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawLine strokes a line segment from (x0, y0) to (x1, y1).
func (d *ImageDevice) DrawLine(x0, y0, x1, y1 int, col color.Color) error {
	if col == nil {
		return fmt.Errorf("draw line: %w", ErrNilColor)
	}
	a := vec.Vec2{X: float64(x0), Y: float64(y0)}
	b := vec.Vec2{X: float64(x1), Y: float64(y1)}
	d.ras.StrokeLine(a, b, d.blender(col))
	return nil
}

// FillCircle fills the circle with centre (cx, cy) and radius r.
// A radius of zero draws nothing; a negative radius is an error.
func (d *ImageDevice) FillCircle(cx, cy, r int, col color.Color) error {
	if col == nil {
		return fmt.Errorf("fill circle: %w", ErrNilColor)
	}
	if r < 0 {
		return fmt.Errorf("fill circle: %w (r=%d)", ErrNegativeRadius, r)
	}
	if r == 0 {
		return nil
	}
	center := vec.Vec2{X: float64(cx), Y: float64(cy)}
	d.ras.FillNonZero(Circle(center, float64(r)), d.blender(col))
	return nil
}

// blender returns a coverage callback that composites the given colour
// over the image using the source-over operator, scaled by coverage.
func (d *ImageDevice) blender(col color.Color) func(y, xMin int, coverage []float32) {
	sr, sg, sb, sa := col.RGBA() // 16-bit, alpha-premultiplied

	return func(y, xMin int, coverage []float32) {
		pix := d.img.Pix
		off := d.img.PixOffset(xMin, y)
		for i, c := range coverage {
			ma := uint32(c*65535 + 0.5)
			if ma == 0 {
				continue
			}
			if ma > 65535 {
				ma = 65535
			}
			o := off + 4*i
			a := sa * ma / 65535
			inv := 65535 - a

			dr := uint32(pix[o+0]) * 0x101
			dg := uint32(pix[o+1]) * 0x101
			db := uint32(pix[o+2]) * 0x101
			da := uint32(pix[o+3]) * 0x101

			pix[o+0] = uint8((sr*ma/65535 + dr*inv/65535) >> 8)
			pix[o+1] = uint8((sg*ma/65535 + dg*inv/65535) >> 8)
			pix[o+2] = uint8((sb*ma/65535 + db*inv/65535) >> 8)
			pix[o+3] = uint8((a + da*inv/65535) >> 8)
		}
	}
}
