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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal errors raised by the instructions package.
const (
	UnknownOpcode = "instructions: unknown opcode (%#04x)"
)

// Instruction is a fully decoded opcode. The operand fields are always
// populated from the corresponding bits of the opcode, whether or not the
// operation uses them.
type Instruction struct {
	Defn   Definition
	Opcode uint16

	// register operands. the x register appears in the second nibble of the
	// opcode, the y register in the third
	X uint8
	Y uint8

	// the immediate operands. NNN is the low 12 bits, NN the low byte and N
	// the low nibble
	NNN uint16
	NN  uint8
	N   uint8
}

func (ins Instruction) String() string {
	switch ins.Defn.Operator {
	case Clear, Return:
		return ins.Defn.Mnemonic
	case Sys, Jump, Call, LoadIndex:
		return fmt.Sprintf("%s %#03x", ins.Defn.Mnemonic, ins.NNN)
	case JumpOffset:
		return fmt.Sprintf("%s V0, %#03x", ins.Defn.Mnemonic, ins.NNN)
	case SkipEqualValue, SkipNotEqualValue, LoadValue, AddValue, Random:
		return fmt.Sprintf("%s V%X, %#02x", ins.Defn.Mnemonic, ins.X, ins.NN)
	case Draw:
		return fmt.Sprintf("%s V%X, V%X, %d", ins.Defn.Mnemonic, ins.X, ins.Y, ins.N)
	case SkipEqualRegister, SkipNotEqualRegister, Load, Or, And, Xor, Add, Subtract, SubtractReverse:
		return fmt.Sprintf("%s V%X, V%X", ins.Defn.Mnemonic, ins.X, ins.Y)
	}
	return fmt.Sprintf("%s V%X", ins.Defn.Mnemonic, ins.X)
}

// Decode classifies a 16 bit opcode into exactly one of the 35 operations
// of the instruction set. Returns an error matching UnknownOpcode,
// carrying the raw opcode, if the nibble pattern matches nothing.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode >> 8 & 0x0f),
		Y:      uint8(opcode >> 4 & 0x0f),
		NNN:    opcode & 0x0fff,
		NN:     uint8(opcode & 0x00ff),
		N:      uint8(opcode & 0x000f),
	}

	var operator Operator

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			operator = Clear
		case 0x00ee:
			operator = Return
		default:
			// any other 0nnn word is a machine code routine call on the
			// original COSMAC hardware
			operator = Sys
		}
	case 0x1:
		operator = Jump
	case 0x2:
		operator = Call
	case 0x3:
		operator = SkipEqualValue
	case 0x4:
		operator = SkipNotEqualValue
	case 0x5:
		if ins.N != 0x0 {
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
		operator = SkipEqualRegister
	case 0x6:
		operator = LoadValue
	case 0x7:
		operator = AddValue
	case 0x8:
		switch ins.N {
		case 0x0:
			operator = Load
		case 0x1:
			operator = Or
		case 0x2:
			operator = And
		case 0x3:
			operator = Xor
		case 0x4:
			operator = Add
		case 0x5:
			operator = Subtract
		case 0x6:
			operator = ShiftRight
		case 0x7:
			operator = SubtractReverse
		case 0xe:
			operator = ShiftLeft
		default:
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
	case 0x9:
		if ins.N != 0x0 {
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
		operator = SkipNotEqualRegister
	case 0xa:
		operator = LoadIndex
	case 0xb:
		operator = JumpOffset
	case 0xc:
		operator = Random
	case 0xd:
		operator = Draw
	case 0xe:
		switch ins.NN {
		case 0x9e:
			operator = SkipKeyDown
		case 0xa1:
			operator = SkipKeyUp
		default:
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
	case 0xf:
		switch ins.NN {
		case 0x07:
			operator = LoadFromDelay
		case 0x0a:
			operator = WaitKey
		case 0x15:
			operator = LoadDelay
		case 0x18:
			operator = LoadSound
		case 0x1e:
			operator = AddIndex
		case 0x29:
			operator = LoadGlyph
		case 0x33:
			operator = StoreDigits
		case 0x55:
			operator = StoreRegisters
		case 0x65:
			operator = LoadRegisters
		default:
			return Instruction{}, curated.Errorf(UnknownOpcode, opcode)
		}
	}

	ins.Defn = definitions[operator]

	return ins, nil
}
