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

// Package memory implements the flat 4096 byte address space of the CHIP-8
// machine. All access is bounds checked. The font table is written to the
// interpreter area on every Load().
package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
)

// Sentinal errors raised by the memory package.
const (
	OutOfBounds      = "memory: address out of bounds (%#04x)"
	CapacityExceeded = "memory: ROM too large (%d bytes, %d bytes available)"
)

// Memory is the flat address space of the CHIP-8 machine.
type Memory struct {
	ram []uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{
		ram: make([]uint8, memorymap.Memtop),
	}
	mem.Reset()
	return mem
}

// Reset zeroes the entire address space and rewrites the font table.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	copy(mem.ram[memorymap.OriginFont:], font[:])
}

// Load resets the address space and copies the ROM into place, starting at
// memorymap.OriginROM. Returns an error matching CapacityExceeded if the
// ROM will not fit.
func (mem *Memory) Load(rom []byte) error {
	if len(rom) > memorymap.Memtop-memorymap.OriginROM {
		return curated.Errorf(CapacityExceeded, len(rom), memorymap.Memtop-memorymap.OriginROM)
	}

	mem.Reset()
	copy(mem.ram[memorymap.OriginROM:], rom)

	return nil
}

// ReadByte returns the byte at the specified address.
func (mem *Memory) ReadByte(address uint16) (uint8, error) {
	if int(address) >= len(mem.ram) {
		return 0, curated.Errorf(OutOfBounds, address)
	}
	return mem.ram[address], nil
}

// WriteByte writes a byte to the specified address. There are no side
// effects beyond the target byte.
func (mem *Memory) WriteByte(address uint16, data uint8) error {
	if int(address) >= len(mem.ram) {
		return curated.Errorf(OutOfBounds, address)
	}
	mem.ram[address] = data
	return nil
}

// ReadWord returns the big-endian 16bit word at the specified address. This
// is how opcodes are fetched from memory.
func (mem *Memory) ReadWord(address uint16) (uint16, error) {
	if int(address)+1 >= len(mem.ram) {
		return 0, curated.Errorf(OutOfBounds, address)
	}
	return uint16(mem.ram[address])<<8 | uint16(mem.ram[address+1]), nil
}

// GlyphAddress returns the address of the font glyph for the specified
// hexadecimal digit. Only the lower nibble of the digit is considered.
func (mem *Memory) GlyphAddress(digit uint8) uint16 {
	return memorymap.OriginFont + uint16(digit&0x0f)*memorymap.GlyphSize
}

func (mem Memory) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	for y := 0; y < len(mem.ram)/16; y++ {
		s.WriteString(fmt.Sprintf("%03x- |", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.ram[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}
