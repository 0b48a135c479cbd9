// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package timer implements the two 8 bit countdown timers of the CHIP-8
// machine. The timers decrement at a fixed rate, independent of the rate
// at which instructions execute. The package does not measure time itself;
// whoever owns the machine calls Tick() on the 60Hz schedule.
package timer

import "fmt"

// TickRate is the rate, in ticks per second, at which Tick() is expected
// to be called.
const TickRate = 60

// Timer is the pair of countdown timers. The delay timer is general
// purpose; the sound timer drives the tone signal for as long as it is
// non-zero.
type Timer struct {
	delay uint8
	sound uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{}
}

func (tmr Timer) String() string {
	return fmt.Sprintf("DT=%#02x ST=%#02x", tmr.delay, tmr.sound)
}

// Tick decrements both timers by one. A timer at zero stays at zero; there
// is no underflow.
func (tmr *Timer) Tick() {
	if tmr.delay > 0 {
		tmr.delay--
	}
	if tmr.sound > 0 {
		tmr.sound--
	}
}

// SetDelay loads the delay timer.
func (tmr *Timer) SetDelay(val uint8) {
	tmr.delay = val
}

// SetSound loads the sound timer.
func (tmr *Timer) SetSound(val uint8) {
	tmr.sound = val
}

// Delay returns the current value of the delay timer.
func (tmr *Timer) Delay() uint8 {
	return tmr.delay
}

// SoundActive returns true for as long as the sound timer is non-zero. It
// is the only signal the external audio sink receives.
func (tmr *Timer) SoundActive() bool {
	return tmr.sound > 0
}

// Reset zeroes both timers.
func (tmr *Timer) Reset() {
	tmr.delay = 0
	tmr.sound = 0
}
