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

// Package hardware assembles the components of the CHIP-8 machine: memory,
// CPU, timers, keypad and display buffer. The Chip8 type is the single
// owner of all of them for the lifetime of an attached ROM.
//
// Two schedules drive the machine and they are deliberately separate:
// instruction cycles through StepCycle(), at whatever rate the external
// driver chooses, and timer decrements through TickTimers(), at a fixed
// 60Hz. Nothing in this package touches the wall clock.
package hardware
