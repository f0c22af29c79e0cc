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

import "time"

// Timer is an interval gate for pacing frames. It is not used by the
// drawing code itself; callers poll it in their render loop and draw only
// when Tick reports true.
//
// A Timer is not safe for concurrent use.
type Timer struct {
	interval time.Duration
	last     time.Time

	now func() time.Time // overridable for tests
}

// NewTimer returns a Timer which fires once per interval, measured on the
// monotonic clock starting now.
func NewTimer(interval time.Duration) *Timer {
	t := &Timer{
		interval: interval,
		now:      time.Now,
	}
	t.last = t.now()
	return t
}

// Tick reports whether the interval has elapsed since the last time Tick
// returned true (or since the timer was created). When it returns true,
// the reference point is moved to the current time.
func (t *Timer) Tick() bool {
	now := t.now()
	if now.Sub(t.last) >= t.interval {
		t.last = now
		return true
	}
	return false
}
