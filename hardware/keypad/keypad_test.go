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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestSetAndQuery(t *testing.T) {
	kpd := keypad.NewKeypad()

	down, err := kpd.IsDown(0x5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, down, false)

	test.ExpectSuccess(t, kpd.Set(0x5, true))
	down, err = kpd.IsDown(0x5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, down, true)

	test.ExpectSuccess(t, kpd.Set(0x5, false))
	down, err = kpd.IsDown(0x5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, down, false)
}

func TestInvalidKey(t *testing.T) {
	kpd := keypad.NewKeypad()

	err := kpd.Set(keypad.NumKeys, true)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, keypad.InvalidKey))

	_, err = kpd.IsDown(0xff)
	test.ExpectSuccess(t, curated.Is(err, keypad.InvalidKey))
}

func TestWaitResolution(t *testing.T) {
	kpd := keypad.NewKeypad()

	kpd.BeginWait(0xa)
	test.ExpectEquality(t, kpd.Waiting(), true)

	// nothing resolves until a key goes down
	_, _, ok := kpd.Resolve()
	test.ExpectEquality(t, ok, false)

	// a key release is not a resolution
	test.ExpectSuccess(t, kpd.Set(0x5, false))
	_, _, ok = kpd.Resolve()
	test.ExpectEquality(t, ok, false)

	test.ExpectSuccess(t, kpd.Set(0x5, true))
	target, key, ok := kpd.Resolve()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, target, 0x0a)
	test.ExpectEquality(t, key, 0x05)

	// the latch clears on resolution
	test.ExpectEquality(t, kpd.Waiting(), false)
	_, _, ok = kpd.Resolve()
	test.ExpectEquality(t, ok, false)
}

func TestWaitRequiresTransition(t *testing.T) {
	kpd := keypad.NewKeypad()

	// a key that is already down when the wait begins does not resolve it.
	// the key must transition from up to down
	test.ExpectSuccess(t, kpd.Set(0x5, true))
	kpd.BeginWait(0x0)

	test.ExpectSuccess(t, kpd.Set(0x5, true))
	_, _, ok := kpd.Resolve()
	test.ExpectEquality(t, ok, false)

	test.ExpectSuccess(t, kpd.Set(0x5, false))
	test.ExpectSuccess(t, kpd.Set(0x5, true))
	_, key, ok := kpd.Resolve()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, key, 0x05)
}
