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

// Package instructions defines the 35 operations of the CHIP-8 instruction
// set and the decoding of a 16 bit opcode into one of them.
//
// An opcode is classified by its most significant nibble. For the ambiguous
// top nibbles (0x0, 0x8, 0xe and 0xf) the trailing nibble or byte completes
// the classification. The result of Decode() is an Instruction value: the
// operation tag together with every operand field the opcode can carry. It
// is the CPU's job to act on the tag; this package knows nothing about the
// rest of the machine.
package instructions

// Operator is the tag for one of the 35 operations in the CHIP-8
// instruction set.
type Operator int

// List of all operators.
const (
	Sys Operator = iota // 0nnn
	Clear
	Return
	Jump
	Call
	SkipEqualValue
	SkipNotEqualValue
	SkipEqualRegister
	LoadValue
	AddValue
	Load
	Or
	And
	Xor
	Add
	Subtract
	ShiftRight
	SubtractReverse // 8xy7
	ShiftLeft
	SkipNotEqualRegister
	LoadIndex
	JumpOffset // bnnn
	Random
	Draw
	SkipKeyDown
	SkipKeyUp
	LoadFromDelay
	WaitKey
	LoadDelay
	LoadSound
	AddIndex
	LoadGlyph
	StoreDigits // fx33, binary coded decimal
	StoreRegisters
	LoadRegisters
)

// Definition describes one operation in the instruction set.
type Definition struct {
	Operator Operator
	Mnemonic string
}

// the table of all operation definitions, indexed by Operator.
var definitions = []Definition{
	Sys:                  {Sys, "SYS"},
	Clear:                {Clear, "CLS"},
	Return:               {Return, "RET"},
	Jump:                 {Jump, "JP"},
	Call:                 {Call, "CALL"},
	SkipEqualValue:       {SkipEqualValue, "SE"},
	SkipNotEqualValue:    {SkipNotEqualValue, "SNE"},
	SkipEqualRegister:    {SkipEqualRegister, "SE"},
	LoadValue:            {LoadValue, "LD"},
	AddValue:             {AddValue, "ADD"},
	Load:                 {Load, "LD"},
	Or:                   {Or, "OR"},
	And:                  {And, "AND"},
	Xor:                  {Xor, "XOR"},
	Add:                  {Add, "ADD"},
	Subtract:             {Subtract, "SUB"},
	ShiftRight:           {ShiftRight, "SHR"},
	SubtractReverse:      {SubtractReverse, "SUBN"},
	ShiftLeft:            {ShiftLeft, "SHL"},
	SkipNotEqualRegister: {SkipNotEqualRegister, "SNE"},
	LoadIndex:            {LoadIndex, "LD"},
	JumpOffset:           {JumpOffset, "JP"},
	Random:               {Random, "RND"},
	Draw:                 {Draw, "DRW"},
	SkipKeyDown:          {SkipKeyDown, "SKP"},
	SkipKeyUp:            {SkipKeyUp, "SKNP"},
	LoadFromDelay:        {LoadFromDelay, "LD"},
	WaitKey:              {WaitKey, "LD"},
	LoadDelay:            {LoadDelay, "LD"},
	LoadSound:            {LoadSound, "LD"},
	AddIndex:             {AddIndex, "ADD"},
	LoadGlyph:            {LoadGlyph, "LD"},
	StoreDigits:          {StoreDigits, "LD"},
	StoreRegisters:       {StoreRegisters, "LD"},
	LoadRegisters:        {LoadRegisters, "LD"},
}

// GetDefinition returns the Definition for the specified Operator.
func GetDefinition(operator Operator) Definition {
	return definitions[operator]
}
