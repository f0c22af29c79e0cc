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
	"errors"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// deviceOp records one drawing call received by recordingDevice.
type deviceOp struct {
	kind string // "line", "circle", "clear"
	args []int
	col  color.Color
}

// recordingDevice is a Device which records all calls. If err is set,
// drawing operations return it without recording.
type recordingDevice struct {
	ops []deviceOp
	err error
}

func (d *recordingDevice) DrawLine(x0, y0, x1, y1 int, col color.Color) error {
	if d.err != nil {
		return d.err
	}
	d.ops = append(d.ops, deviceOp{kind: "line", args: []int{x0, y0, x1, y1}, col: col})
	return nil
}

func (d *recordingDevice) FillCircle(cx, cy, r int, col color.Color) error {
	if d.err != nil {
		return d.err
	}
	d.ops = append(d.ops, deviceOp{kind: "circle", args: []int{cx, cy, r}, col: col})
	return nil
}

func (d *recordingDevice) Clear(col color.Color) {
	d.ops = append(d.ops, deviceOp{kind: "clear", col: col})
}

func lastOp(t *testing.T, d *recordingDevice, kind string) deviceOp {
	t.Helper()
	if len(d.ops) == 0 {
		t.Fatal("no device calls recorded")
	}
	op := d.ops[len(d.ops)-1]
	if op.kind != kind {
		t.Fatalf("last device call is %q, want %q", op.kind, kind)
	}
	return op
}

func TestCanvasDrawLine(t *testing.T) {
	dev := &recordingDevice{}
	c := New(dev)

	c.Reset()
	c.Translate(100, 50)
	err := c.DrawLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, color.White)
	if err != nil {
		t.Fatalf("DrawLine: %v", err)
	}

	op := lastOp(t, dev, "line")
	want := []int{100, 50, 110, 50}
	for i, w := range want {
		if op.args[i] != w {
			t.Errorf("device line args = %v, want %v", op.args, want)
			break
		}
	}
}

func TestCanvasNestedFrames(t *testing.T) {
	dev := &recordingDevice{}
	c := New(dev)

	c.Translate(10, 0)
	c.Push()
	c.Rotate(math.Pi / 2)
	if err := c.FillCircle(vec.Vec2{X: 1, Y: 0}, 2, color.White); err != nil {
		t.Fatalf("FillCircle: %v", err)
	}
	if err := c.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}

	op := lastOp(t, dev, "circle")
	if op.args[0] != 10 || op.args[1] != 1 {
		t.Errorf("circle centre = (%d, %d), want (10, 1)", op.args[0], op.args[1])
	}
	if op.args[2] != 2 {
		t.Errorf("circle radius = %d, want 2", op.args[2])
	}
}

// The circle radius is not scaled by the current transformation; only the
// centre point is mapped to device space.
func TestCanvasRadiusUnscaled(t *testing.T) {
	dev := &recordingDevice{}
	c := New(dev)

	c.Rotate(0.3)
	c.Translate(5, 7)
	if err := c.FillCircle(vec.Vec2{}, 12.4, color.White); err != nil {
		t.Fatalf("FillCircle: %v", err)
	}

	op := lastOp(t, dev, "circle")
	if op.args[2] != 12 {
		t.Errorf("circle radius = %d, want 12", op.args[2])
	}
}

func TestCanvasRounding(t *testing.T) {
	tests := []struct {
		dx, dy float64
		wantX  int
		wantY  int
	}{
		{0.4, 0.5, 0, 1},
		{1.6, 2.4, 2, 2},
		{-0.4, -0.5, 0, -1},
		{-1.5, -2.6, -2, -3},
	}
	for _, tc := range tests {
		dev := &recordingDevice{}
		c := New(dev)
		c.Translate(tc.dx, tc.dy)
		if err := c.DrawLine(vec.Vec2{}, vec.Vec2{}, color.White); err != nil {
			t.Fatalf("DrawLine: %v", err)
		}
		op := lastOp(t, dev, "line")
		if op.args[0] != tc.wantX || op.args[1] != tc.wantY {
			t.Errorf("translate(%g, %g): device point = (%d, %d), want (%d, %d)",
				tc.dx, tc.dy, op.args[0], op.args[1], tc.wantX, tc.wantY)
		}
	}
}

func TestCanvasErrorPropagation(t *testing.T) {
	devErr := errors.New("out of memory")
	dev := &recordingDevice{err: devErr}
	c := New(dev)

	err := c.DrawLine(vec.Vec2{}, vec.Vec2{X: 1}, color.White)
	if !errors.Is(err, devErr) {
		t.Errorf("DrawLine err = %v, want %v", err, devErr)
	}
	err = c.FillCircle(vec.Vec2{}, 1, color.White)
	if !errors.Is(err, devErr) {
		t.Errorf("FillCircle err = %v, want %v", err, devErr)
	}
	if len(dev.ops) != 0 {
		t.Errorf("device recorded %d calls after errors, want 0", len(dev.ops))
	}
}

func TestCanvasBackground(t *testing.T) {
	dev := &recordingDevice{}
	c := New(dev)

	c.Background(color.Black)
	op := lastOp(t, dev, "clear")
	if op.col != color.Black {
		t.Errorf("clear colour = %v, want black", op.col)
	}
}

func TestCanvasSharedStack(t *testing.T) {
	stack := NewMatrixStack()
	stack.Translate(7, 0)

	dev := &recordingDevice{}
	c := NewWithStack(dev, stack)
	if err := c.DrawLine(vec.Vec2{}, vec.Vec2{}, color.White); err != nil {
		t.Fatalf("DrawLine: %v", err)
	}

	op := lastOp(t, dev, "line")
	if op.args[0] != 7 {
		t.Errorf("device x = %d, want 7", op.args[0])
	}
	if c.Stack() != stack {
		t.Error("Stack() does not return the injected stack")
	}
}
