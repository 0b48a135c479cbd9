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

// Package keypad implements the sixteen key input state of the CHIP-8
// machine. The package also holds the wait-for-key latch used by the
// FX0A instruction: the wait is an explicit state rather than a blocking
// call so that the machine remains responsive while a key is pending.
package keypad

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal errors raised by the keypad package.
const (
	InvalidKey = "keypad: invalid key (%#02x)"
)

// NumKeys is the number of keys on the keypad. Valid keys are 0x0 to 0xf.
const NumKeys = 16

// Keypad is the input state of the machine. External input collaborators
// write key transitions in with Set(); the CPU reads with IsDown().
type Keypad struct {
	keys [NumKeys]bool

	// state of the wait-for-key latch. target is the register the pressed
	// key will be written to once the wait resolves
	waiting  bool
	target   uint8
	resolved bool
	key      uint8
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

func (kpd Keypad) String() string {
	s := strings.Builder{}
	for k, down := range kpd.keys {
		if down {
			s.WriteString(fmt.Sprintf("%X", k))
		} else {
			s.WriteString(".")
		}
	}
	if kpd.waiting {
		s.WriteString(fmt.Sprintf(" (waiting for V%X)", kpd.target))
	}
	return s.String()
}

// Set the state of a single key. A down transition while a wait is pending
// resolves the wait.
func (kpd *Keypad) Set(key uint8, down bool) error {
	if key >= NumKeys {
		return curated.Errorf(InvalidKey, key)
	}

	if down && !kpd.keys[key] && kpd.waiting && !kpd.resolved {
		kpd.resolved = true
		kpd.key = key
	}
	kpd.keys[key] = down

	return nil
}

// IsDown returns the state of a single key.
func (kpd *Keypad) IsDown(key uint8) (bool, error) {
	if key >= NumKeys {
		return false, curated.Errorf(InvalidKey, key)
	}
	return kpd.keys[key], nil
}

// BeginWait arms the wait-for-key latch. The target argument is the
// register the resolving key will be written to.
func (kpd *Keypad) BeginWait(target uint8) {
	kpd.waiting = true
	kpd.target = target
	kpd.resolved = false
}

// Waiting returns true while a wait is pending.
func (kpd *Keypad) Waiting() bool {
	return kpd.waiting
}

// Resolve returns the target register and the resolving key once a key has
// gone down during a wait. The ok return value is false while the wait is
// still pending. A successful Resolve() clears the latch.
func (kpd *Keypad) Resolve() (target uint8, key uint8, ok bool) {
	if !kpd.waiting || !kpd.resolved {
		return 0, 0, false
	}
	kpd.waiting = false
	kpd.resolved = false
	return kpd.target, kpd.key, true
}

// Reset returns every key to the up position and clears any pending wait.
func (kpd *Keypad) Reset() {
	for k := range kpd.keys {
		kpd.keys[k] = false
	}
	kpd.waiting = false
	kpd.resolved = false
}
