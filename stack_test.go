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
	"math"
	"sync"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func TestNewMatrixStack(t *testing.T) {
	s := NewMatrixStack()
	if d := s.Depth(); d != 1 {
		t.Errorf("depth = %d, want 1", d)
	}
	if ctm := s.CTM(); ctm != matrix.Identity {
		t.Errorf("CTM = %v, want identity", ctm)
	}
}

func TestPushPop(t *testing.T) {
	s := NewMatrixStack()
	s.Translate(3, 4)
	before := s.CTM()

	s.Push()
	if d := s.Depth(); d != 2 {
		t.Fatalf("depth after push = %d, want 2", d)
	}
	if ctm := s.CTM(); ctm != before {
		t.Errorf("push changed CTM: got %v, want %v", ctm, before)
	}

	s.Rotate(1.2)
	s.Translate(-7, 2)
	if err := s.Pop(); err != nil {
		t.Fatalf("pop: %v", err)
	}
	if ctm := s.CTM(); ctm != before {
		t.Errorf("CTM after pop = %v, want %v", ctm, before)
	}
	if d := s.Depth(); d != 1 {
		t.Errorf("depth after pop = %d, want 1", d)
	}
}

func TestPopUnderflow(t *testing.T) {
	s := NewMatrixStack()
	s.Translate(5, 5)
	want := s.CTM()

	for i := range 3 {
		err := s.Pop()
		if !errors.Is(err, ErrStackUnderflow) {
			t.Fatalf("pop %d: err = %v, want ErrStackUnderflow", i, err)
		}
		if d := s.Depth(); d != 1 {
			t.Fatalf("pop %d: depth = %d, want 1", i, d)
		}
		if ctm := s.CTM(); ctm != want {
			t.Fatalf("pop %d: base frame changed: got %v, want %v", i, ctm, want)
		}
	}
}

func TestReset(t *testing.T) {
	s := NewMatrixStack()
	s.Translate(10, 20)
	s.Push()
	s.Rotate(0.5)
	s.Push()

	s.Reset()
	if d := s.Depth(); d != 1 {
		t.Errorf("depth after reset = %d, want 1", d)
	}
	if ctm := s.CTM(); ctm != matrix.Identity {
		t.Errorf("CTM after reset = %v, want identity", ctm)
	}
}

// TestCompositionOrder checks that transformations compose in the local
// frame: a rotation after a translation spins around the translated
// origin, not the device origin.
func TestCompositionOrder(t *testing.T) {
	s := NewMatrixStack()
	s.Translate(10, 0)
	s.Rotate(math.Pi / 2)

	got := Transform(s.CTM(), vec.Vec2{X: 1, Y: 0})
	want := vec.Vec2{X: 10, Y: 1}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("transformed point = %v, want %v", got, want)
	}
}

func TestRotateAboutOrigin(t *testing.T) {
	s := NewMatrixStack()
	s.Rotate(math.Pi / 2)

	got := Transform(s.CTM(), vec.Vec2{X: 1, Y: 0})
	want := vec.Vec2{X: 0, Y: 1}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("transformed point = %v, want %v", got, want)
	}
}

func TestConcurrentReads(t *testing.T) {
	s := NewMatrixStack()
	s.Translate(3, 4)
	s.Rotate(0.7)
	want := s.CTM()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				if ctm := s.CTM(); ctm != want {
					t.Errorf("CTM = %v, want %v", ctm, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestConcurrentMutation(t *testing.T) {
	s := NewMatrixStack()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for j := range 500 {
				switch (seed + j) % 5 {
				case 0:
					s.Push()
				case 1:
					_ = s.Pop() // underflow errors are expected here
				case 2:
					s.Translate(1, -1)
				case 3:
					s.Rotate(0.01)
				case 4:
					_ = s.CTM()
				}
			}
		}(i)
	}
	wg.Wait()

	if d := s.Depth(); d < 1 {
		t.Errorf("depth = %d, want at least 1", d)
	}
}
