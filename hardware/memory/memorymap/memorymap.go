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

// Package memorymap gathers the constants that describe the CHIP-8 address
// space. The interpreter area below OriginROM is never executed; the only
// meaningful content in that area is the font table.
package memorymap

// Memtop is the size of the CHIP-8 address space in bytes. Valid addresses
// are in the range 0 to Memtop-1.
const Memtop = 4096

// OriginROM is the address at which ROM data is loaded. It is also the
// address loaded into the program counter on reset.
const OriginROM = 0x0200

// OriginFont is the address at which the built-in font table is written.
const OriginFont = 0x0050

// GlyphSize is the number of bytes in a single font glyph. There are
// sixteen glyphs, one for each hexadecimal digit.
const GlyphSize = 5
