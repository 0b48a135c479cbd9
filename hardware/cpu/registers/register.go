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

package registers

import "fmt"

// Register is an 8 bit register. The zero value is ready to use.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for the Register
// type.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the identifying string given to the register on creation.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns true if the unsigned sum overflowed the
// register. This is the value of the carry flag for the ADD instruction.
func (r *Register) Add(val uint8) bool {
	v := r.value
	r.value += val
	return r.value < v
}

// Subtract value from register. The return value is true if no borrow was
// required; which is how the CHIP-8 borrow flag is defined.
func (r *Register) Subtract(val uint8) bool {
	noBorrow := r.value >= val
	r.value -= val
	return noBorrow
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// ORA value with register.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// EOR value with register.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// ShiftRight one bit. Returns the state of the bit that was shifted out.
func (r *Register) ShiftRight() bool {
	v := r.value&0x01 == 0x01
	r.value >>= 1
	return v
}

// ShiftLeft one bit. Returns the state of the bit that was shifted out.
func (r *Register) ShiftLeft() bool {
	v := r.value&0x80 == 0x80
	r.value <<= 1
	return v
}
