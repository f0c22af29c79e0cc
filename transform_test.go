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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		name string
		m    matrix.Matrix
		p    vec.Vec2
		want vec.Vec2
	}{
		{
			name: "identity",
			m:    matrix.Identity,
			p:    vec.Vec2{X: 3, Y: -4},
			want: vec.Vec2{X: 3, Y: -4},
		},
		{
			name: "translate",
			m:    matrix.Translate(100, 50),
			p:    vec.Vec2{X: 10, Y: 0},
			want: vec.Vec2{X: 110, Y: 50},
		},
		{
			name: "rotate90",
			m:    matrix.RotateDeg(90),
			p:    vec.Vec2{X: 1, Y: 0},
			want: vec.Vec2{X: 0, Y: 1},
		},
		{
			name: "scale",
			m:    matrix.Scale(2, 3),
			p:    vec.Vec2{X: 1, Y: 1},
			want: vec.Vec2{X: 2, Y: 3},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Transform(tc.m, tc.p)
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Transform(%v, %v) = %v, want %v", tc.m, tc.p, got, tc.want)
			}
		})
	}
}

// DevicePixel rounds to the nearest integer, halves away from zero.
func TestDevicePixel(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{0.6, 1},
		{1.49, 1},
		{2.5, 3},
		{-0.4, 0},
		{-0.5, -1},
		{-0.6, -1},
		{-2.5, -3},
		{110, 110},
	}
	for _, tc := range tests {
		if got := DevicePixel(tc.x); got != tc.want {
			t.Errorf("DevicePixel(%g) = %d, want %d", tc.x, got, tc.want)
		}
	}
}
