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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestDecodeClassification(t *testing.T) {
	classifications := []struct {
		opcode   uint16
		operator instructions.Operator
	}{
		{0x0123, instructions.Sys},
		{0x00e0, instructions.Clear},
		{0x00ee, instructions.Return},
		{0x1abc, instructions.Jump},
		{0x2abc, instructions.Call},
		{0x3a02, instructions.SkipEqualValue},
		{0x4a02, instructions.SkipNotEqualValue},
		{0x5ab0, instructions.SkipEqualRegister},
		{0x6a02, instructions.LoadValue},
		{0x7a02, instructions.AddValue},
		{0x8ab0, instructions.Load},
		{0x8ab1, instructions.Or},
		{0x8ab2, instructions.And},
		{0x8ab3, instructions.Xor},
		{0x8ab4, instructions.Add},
		{0x8ab5, instructions.Subtract},
		{0x8ab6, instructions.ShiftRight},
		{0x8ab7, instructions.SubtractReverse},
		{0x8abe, instructions.ShiftLeft},
		{0x9ab0, instructions.SkipNotEqualRegister},
		{0xaabc, instructions.LoadIndex},
		{0xbabc, instructions.JumpOffset},
		{0xca7f, instructions.Random},
		{0xdab5, instructions.Draw},
		{0xea9e, instructions.SkipKeyDown},
		{0xeaa1, instructions.SkipKeyUp},
		{0xfa07, instructions.LoadFromDelay},
		{0xfa0a, instructions.WaitKey},
		{0xfa15, instructions.LoadDelay},
		{0xfa18, instructions.LoadSound},
		{0xfa1e, instructions.AddIndex},
		{0xfa29, instructions.LoadGlyph},
		{0xfa33, instructions.StoreDigits},
		{0xfa55, instructions.StoreRegisters},
		{0xfa65, instructions.LoadRegisters},
	}

	// one classification for each of the 35 operations
	test.ExpectEquality(t, len(classifications), 35)

	for _, c := range classifications {
		ins, err := instructions.Decode(c.opcode)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, ins.Defn.Operator, c.operator)
		test.ExpectEquality(t, ins.Opcode, c.opcode)
	}
}

func TestDecodeOperands(t *testing.T) {
	ins, err := instructions.Decode(0xdab5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ins.X, 0x0a)
	test.ExpectEquality(t, ins.Y, 0x0b)
	test.ExpectEquality(t, ins.N, 0x05)
	test.ExpectEquality(t, ins.NN, 0xb5)
	test.ExpectEquality(t, ins.NNN, 0x0ab5)
}

func TestDecodeUnknown(t *testing.T) {
	unknown := []uint16{
		0x5ab1, // trailing nibble of 5xy_ must be 0
		0x8ab8, // no such arithmetic variant
		0x8abf,
		0x9ab1, // trailing nibble of 9xy_ must be 0
		0xea00,
		0xeaff,
		0xfa00,
		0xfaff,
	}

	for _, opcode := range unknown {
		_, err := instructions.Decode(opcode)
		test.ExpectFailure(t, err)
		test.ExpectSuccess(t, curated.Is(err, instructions.UnknownOpcode))
	}
}
