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
	"sync"

	"seehuhn.de/go/geom/matrix"
)

// ErrStackUnderflow is returned by [MatrixStack.Pop] when only the base
// frame is left on the stack.
var ErrStackUnderflow = errors.New("pop on base transformation frame")

// MatrixStack is a stack of affine transformation matrices. The top entry
// is the current transformation matrix (CTM); draw operations use it to map
// user-space coordinates to device-space coordinates.
//
// The stack is never empty: it is created with a single identity matrix,
// and the base entry cannot be removed. Matrices are stored in the
// [matrix.Matrix] form [a b c d e f], which represents the 3×3 homogeneous
// matrix with last column (0, 0, 1)ᵀ; the affine invariant thus holds by
// construction for every entry.
//
// A MatrixStack may be shared between goroutines. Mutating operations
// (Reset, Push, Pop, Translate, Rotate) take exclusive access; CTM and
// Depth allow concurrent readers. Each individual operation is atomic, but
// a sequence such as Push/Rotate/Pop is not: callers which interleave such
// sequences from several goroutines must coordinate externally.
type MatrixStack struct {
	mu    sync.RWMutex
	stack []matrix.Matrix
}

// NewMatrixStack returns a stack holding a single identity matrix.
func NewMatrixStack() *MatrixStack {
	s := &MatrixStack{
		stack: make([]matrix.Matrix, 1, 8),
	}
	s.stack[0] = matrix.Identity
	return s
}

// Reset discards all pushed frames and restores the stack to a single
// identity matrix.
func (s *MatrixStack) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack = s.stack[:1]
	s.stack[0] = matrix.Identity
}

// Push duplicates the current top matrix, so that subsequent changes can be
// undone with [MatrixStack.Pop]. The stack grows without bound; depth is
// controlled by the caller.
func (s *MatrixStack) Push() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack = append(s.stack, s.stack[len(s.stack)-1])
}

// Pop removes the top matrix, restoring the CTM saved by the matching
// [MatrixStack.Push]. If only the base frame is left, the stack is
// unchanged and ErrStackUnderflow is returned.
func (s *MatrixStack) Pop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.stack) == 1 {
		return ErrStackUnderflow
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// Translate moves the origin of the current coordinate frame by (dx, dy),
// measured in the frame itself. Successive Translate and Rotate calls
// compose in the order issued, as in other immediate-mode 2D APIs.
func (s *MatrixStack) Translate(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := len(s.stack) - 1
	s.stack[k] = matrix.Translate(dx, dy).Mul(s.stack[k])
}

// Rotate rotates the current coordinate frame about its origin by the given
// angle in radians. Positive angles rotate counter-clockwise in the y-up
// user coordinate system; on a y-down raster device this appears clockwise.
func (s *MatrixStack) Rotate(radians float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := len(s.stack) - 1
	s.stack[k] = matrix.Rotate(radians).Mul(s.stack[k])
}

// CTM returns a copy of the current top matrix. The copy is internally
// consistent even while other goroutines mutate the stack.
func (s *MatrixStack) CTM() matrix.Matrix {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stack[len(s.stack)-1]
}

// Depth returns the number of matrices currently on the stack.
// The result is at least 1.
func (s *MatrixStack) Depth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stack)
}
