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

// Package display shows sketches in a desktop window.
//
// The package wraps the Ebitengine game loop: the caller provides a frame
// function which is called once per tick with a ready-to-use canvas, and
// the resulting image is copied to the window.
package display

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/raster"
)

// ErrInit is returned by Run for invalid window parameters.
var ErrInit = errors.New("invalid window parameters")

// Stop can be returned from a frame function to close the window.
// Run then returns nil.
var Stop = ebiten.Termination

// Run opens a window of the given size and calls frame once per tick,
// 60 times per second, until the window is closed or frame returns an
// error. The canvas passed to frame keeps its transformation stack and
// pixel content between calls.
//
// Run must be called from the main goroutine and does not return until
// the window is closed. A frame error other than [Stop] is returned
// unchanged; window system failures are wrapped.
func Run(title string, width, height int, frame func(*sketch.Canvas) error) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("display: %w: %dx%d", ErrInit, width, height)
	}
	if frame == nil {
		return fmt.Errorf("display: %w: nil frame function", ErrInit)
	}

	dev := raster.NewImageDevice(width, height)
	g := &game{
		dev:    dev,
		canvas: sketch.New(dev),
		frame:  frame,
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil {
		if g.frameErr != nil {
			return g.frameErr
		}
		return fmt.Errorf("display: run window: %w", err)
	}
	return nil
}

// game adapts a frame function to the ebiten.Game interface.
type game struct {
	dev    *raster.ImageDevice
	canvas *sketch.Canvas
	frame  func(*sketch.Canvas) error

	buf      *ebiten.Image // window-sized copy of the device image
	frameErr error
}

func (g *game) Update() error {
	err := g.frame(g.canvas)
	if err != nil && !errors.Is(err, Stop) {
		g.frameErr = err
	}
	return err
}

func (g *game) Draw(screen *ebiten.Image) {
	img := g.dev.Image()
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	if g.buf == nil {
		g.buf = ebiten.NewImage(w, h)
	}
	g.buf.WritePixels(img.Pix)
	screen.DrawImage(g.buf, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	img := g.dev.Image()
	return img.Rect.Dx(), img.Rect.Dy()
}
