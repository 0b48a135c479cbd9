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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/test"
)

// a CPU and the components it executes against, with the supplied program
// loaded and ready to run.
type harness struct {
	mc  *cpu.CPU
	mem *memory.Memory
	tmr *timer.Timer
	kpd *keypad.Keypad
	vid *video.Video
}

func newHarness(t *testing.T, program ...uint16) *harness {
	t.Helper()

	rom := make([]byte, 0, len(program)*2)
	for _, opcode := range program {
		rom = append(rom, uint8(opcode>>8), uint8(opcode))
	}

	h := &harness{
		mem: memory.NewMemory(),
		tmr: timer.NewTimer(),
		kpd: keypad.NewKeypad(),
		vid: video.NewVideo(),
	}
	if err := h.mem.Load(rom); err != nil {
		t.Fatal(err)
	}
	h.mc = cpu.NewCPU(h.mem, h.tmr, h.kpd, h.vid)

	return h
}

// step the program n instructions, failing the test on any error.
func (h *harness) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := h.mc.ExecuteInstruction(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestLoadAndAddImmediate(t *testing.T) {
	h := newHarness(t, 0x6a02, 0x7a03)

	h.step(t, 2)
	test.ExpectEquality(t, h.mc.V[0xa].Value(), 5)

	// PC has advanced by two instructions
	test.ExpectEquality(t, h.mc.PC.Address(), memorymap.OriginROM+4)

	// add-immediate does not touch the flag register
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 0)
}

func TestAddImmediateFlagUnaffected(t *testing.T) {
	// even an overflowing add-immediate leaves VF alone
	h := newHarness(t, 0x6aff, 0x6f01, 0x7a02)

	h.step(t, 3)
	test.ExpectEquality(t, h.mc.V[0xa].Value(), 1)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 1)
}

func TestAddCarry(t *testing.T) {
	// 200 + 100 overflows: result wraps, carry set
	h := newHarness(t, 0x60c8, 0x6164, 0x8014)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.V[0].Value(), 44)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 1)

	// 200 + 55 does not overflow: carry clear
	h = newHarness(t, 0x60c8, 0x6137, 0x8014)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.V[0].Value(), 255)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 0)
}

func TestSubtractBorrow(t *testing.T) {
	// 10 - 5: no borrow required, flag set
	h := newHarness(t, 0x600a, 0x6105, 0x8015)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.V[0].Value(), 5)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 1)

	// 5 - 10: borrow required, flag clear, result wraps
	h = newHarness(t, 0x6005, 0x610a, 0x8015)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.V[0].Value(), 251)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 0)
}

func TestSubtractReverse(t *testing.T) {
	// VX = VY - VX. 10 - 5: no borrow, flag set
	h := newHarness(t, 0x6005, 0x610a, 0x8017)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.V[0].Value(), 5)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 1)

	// 5 - 10: borrow, flag clear
	h = newHarness(t, 0x600a, 0x6105, 0x8017)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.V[0].Value(), 251)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 0)
}

func TestBitwise(t *testing.T) {
	h := newHarness(t, 0x600f, 0x61f0, 0x8011)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0xff)

	h = newHarness(t, 0x600f, 0x613c, 0x8012)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x0c)

	h = newHarness(t, 0x60ff, 0x610f, 0x8013)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0xf0)
}

func TestShifts(t *testing.T) {
	// shift right emits the least significant bit into VF
	h := newHarness(t, 0x6003, 0x8006)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.V[0].Value(), 1)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 1)

	h = newHarness(t, 0x6002, 0x8006)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.V[0].Value(), 1)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 0)

	// shift left emits the most significant bit into VF
	h = newHarness(t, 0x60c0, 0x800e)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x80)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 1)

	h = newHarness(t, 0x6040, 0x800e)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x80)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 0)
}

func TestSkips(t *testing.T) {
	// 3xnn skips when equal
	h := newHarness(t, 0x6005, 0x3005)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.PC.Address(), memorymap.OriginROM+6)

	// and doesn't when not equal
	h = newHarness(t, 0x6005, 0x3006)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.PC.Address(), memorymap.OriginROM+4)

	// 4xnn is the complement
	h = newHarness(t, 0x6005, 0x4006)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.PC.Address(), memorymap.OriginROM+6)

	// 5xy0 compares registers
	h = newHarness(t, 0x6005, 0x6105, 0x5010)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.PC.Address(), memorymap.OriginROM+8)

	// 9xy0 is the complement
	h = newHarness(t, 0x6005, 0x6106, 0x9010)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.PC.Address(), memorymap.OriginROM+8)
}

func TestJumpAndCall(t *testing.T) {
	h := newHarness(t, 0x1300)
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x300)

	// call pushes the return address, ret pops it
	h = newHarness(t, 0x2206, 0x0000, 0x0000, 0x00ee)
	h.step(t, 1)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x206)
	test.ExpectEquality(t, h.mc.Stack.Depth(), 1)

	h.step(t, 1)
	test.ExpectEquality(t, h.mc.PC.Address(), memorymap.OriginROM+2)
	test.ExpectEquality(t, h.mc.Stack.Depth(), 0)
}

func TestJumpOffset(t *testing.T) {
	h := newHarness(t, 0x6005, 0xb300)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.PC.Address(), 0x305)
}

func TestReturnOnEmptyStack(t *testing.T) {
	h := newHarness(t, 0x00ee)
	err := h.mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, registers.StackUnderflow))
}

func TestIndexOperations(t *testing.T) {
	h := newHarness(t, 0xa123, 0x6005, 0xf01e)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.Index.Address(), 0x128)
}

func TestGlyphAddress(t *testing.T) {
	h := newHarness(t, 0x600a, 0xf029)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.Index.Address(), h.mem.GlyphAddress(0xa))
}

func TestStoreDigits(t *testing.T) {
	// BCD of 254 at the index register
	h := newHarness(t, 0x60fe, 0xa400, 0xf033)
	h.step(t, 3)

	for i, expected := range []uint8{2, 5, 4} {
		v, err := h.mem.ReadByte(0x400 + uint16(i))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, expected)
	}

	// the index register is unchanged
	test.ExpectEquality(t, h.mc.Index.Address(), 0x400)
}

func TestStoreAndLoadRegisters(t *testing.T) {
	h := newHarness(t, 0x600a, 0x610b, 0x620c, 0xa400, 0xf255)
	h.step(t, 5)

	for i, expected := range []uint8{0x0a, 0x0b, 0x0c} {
		v, err := h.mem.ReadByte(0x400 + uint16(i))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, expected)
	}

	// the index register is unchanged by the dump
	test.ExpectEquality(t, h.mc.Index.Address(), 0x400)

	// load the same values back into a fresh register file
	h = newHarness(t, 0xa400, 0xf265)
	h.mem.WriteByte(0x400, 0x0a)
	h.mem.WriteByte(0x401, 0x0b)
	h.mem.WriteByte(0x402, 0x0c)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.V[0].Value(), 0x0a)
	test.ExpectEquality(t, h.mc.V[1].Value(), 0x0b)
	test.ExpectEquality(t, h.mc.V[2].Value(), 0x0c)
	test.ExpectEquality(t, h.mc.V[3].Value(), 0x00)
}

func TestRandomMask(t *testing.T) {
	h := newHarness(t, 0xc00f, 0xc10f, 0xc20f)
	h.mc.SetRandSeed(1)
	h.step(t, 3)

	// whatever the random byte, bits outside of the mask are never set
	test.ExpectEquality(t, h.mc.V[0].Value()&0xf0, 0)
	test.ExpectEquality(t, h.mc.V[1].Value()&0xf0, 0)
	test.ExpectEquality(t, h.mc.V[2].Value()&0xf0, 0)
}

func TestTimerInstructions(t *testing.T) {
	h := newHarness(t, 0x603c, 0xf015, 0xf018, 0x6100, 0xf107)
	h.step(t, 5)

	test.ExpectEquality(t, h.tmr.Delay(), 0x3c)
	test.ExpectEquality(t, h.tmr.SoundActive(), true)
	test.ExpectEquality(t, h.mc.V[1].Value(), 0x3c)
}

func TestDrawCollisionFlag(t *testing.T) {
	// draw the zero glyph twice at the same position. the second draw
	// erases the first and reports the collision in VF
	h := newHarness(t, 0x6000, 0xf029, 0xd005, 0xd005)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 0)

	h.step(t, 1)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 1)
	test.ExpectEquality(t, h.vid.Pixel(0, 0), false)
}

func TestSkipOnKey(t *testing.T) {
	h := newHarness(t, 0x6005, 0xe09e)
	h.kpd.Set(0x5, true)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.PC.Address(), memorymap.OriginROM+6)

	h = newHarness(t, 0x6005, 0xe09e)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.PC.Address(), memorymap.OriginROM+4)

	h = newHarness(t, 0x6005, 0xe0a1)
	h.step(t, 2)
	test.ExpectEquality(t, h.mc.PC.Address(), memorymap.OriginROM+6)
}

func TestWaitKeyArmsLatch(t *testing.T) {
	h := newHarness(t, 0xfa0a)
	h.step(t, 1)
	test.ExpectEquality(t, h.kpd.Waiting(), true)
}

func TestUnknownOpcode(t *testing.T) {
	h := newHarness(t, 0x8008)
	err := h.mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, instructions.UnknownOpcode))

	// the program counter did not advance past the bad opcode
	test.ExpectEquality(t, h.mc.PC.Address(), memorymap.OriginROM)
}

func TestFetchOutOfBounds(t *testing.T) {
	h := newHarness(t, 0x1fff)
	h.step(t, 1)

	// the program counter now points at the last byte of the address
	// space. fetching a word from there is out of bounds
	err := h.mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, memory.OutOfBounds))
}

func TestFlagRegisterIsFlagTarget(t *testing.T) {
	// when VF is the destination of an arithmetic operation the flag
	// result overwrites the arithmetic result
	h := newHarness(t, 0x6fc8, 0x60c8, 0x8f04)
	h.step(t, 3)
	test.ExpectEquality(t, h.mc.V[0xf].Value(), 1)
}
