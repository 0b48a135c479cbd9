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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/test"
)

func romFromWords(words ...uint16) []byte {
	rom := make([]byte, 0, len(words)*2)
	for _, w := range words {
		rom = append(rom, uint8(w>>8), uint8(w))
	}
	return rom
}

func TestIdleMachine(t *testing.T) {
	ch8 := hardware.NewChip8()
	test.ExpectEquality(t, ch8.State(), hardware.Idle)

	err := ch8.StepCycle()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.NoROM))
}

func TestClearScreenScenario(t *testing.T) {
	ch8 := hardware.NewChip8()
	test.ExpectSuccess(t, ch8.AttachROM(romFromWords(0x00e0)))
	test.ExpectEquality(t, ch8.State(), hardware.Running)

	test.ExpectSuccess(t, ch8.StepCycle())
	test.ExpectEquality(t, ch8.CPU.PC.Address(), 0x202)

	for _, row := range ch8.Frame() {
		for _, pixel := range row {
			if pixel {
				t.Fatalf("display not cleared")
			}
		}
	}
}

func TestLoadAddScenario(t *testing.T) {
	ch8 := hardware.NewChip8()
	test.ExpectSuccess(t, ch8.AttachROM(romFromWords(0x6a02, 0x7a03)))

	test.ExpectSuccess(t, ch8.StepCycle())
	test.ExpectSuccess(t, ch8.StepCycle())

	test.ExpectEquality(t, ch8.CPU.V[0xa].Value(), 5)
	test.ExpectEquality(t, ch8.CPU.PC.Address(), memorymap.OriginROM+4)
	test.ExpectEquality(t, ch8.CPU.V[0xf].Value(), 0)
}

func TestWaitKeyScenario(t *testing.T) {
	ch8 := hardware.NewChip8()
	test.ExpectSuccess(t, ch8.AttachROM(romFromWords(0xf30a, 0x6001)))

	// executing the wait instruction suspends the machine
	test.ExpectSuccess(t, ch8.StepCycle())
	test.ExpectEquality(t, ch8.State(), hardware.WaitingForKey)

	// the program counter does not advance while waiting, however many
	// cycles pass
	pc := ch8.CPU.PC.Address()
	for i := 0; i < 10; i++ {
		test.ExpectSuccess(t, ch8.StepCycle())
	}
	test.ExpectEquality(t, ch8.CPU.PC.Address(), pc)
	test.ExpectEquality(t, ch8.State(), hardware.WaitingForKey)

	// timers still tick while waiting
	ch8.Timer.SetDelay(2)
	ch8.TickTimers()
	test.ExpectEquality(t, ch8.Timer.Delay(), 1)

	// a key down resumes the machine and the key id lands in the target
	// register
	test.ExpectSuccess(t, ch8.SetKey(5, true))
	test.ExpectSuccess(t, ch8.StepCycle())
	test.ExpectEquality(t, ch8.State(), hardware.Running)
	test.ExpectEquality(t, ch8.CPU.V[3].Value(), 5)

	// execution continues with the following instruction
	test.ExpectSuccess(t, ch8.StepCycle())
	test.ExpectEquality(t, ch8.CPU.V[0].Value(), 1)
}

func TestStackOverflowHalts(t *testing.T) {
	ch8 := hardware.NewChip8()

	// seventeen calls, each to the address of the next, with no returns
	words := make([]uint16, 17)
	for i := range words {
		words[i] = uint16(0x2000 | (memorymap.OriginROM + (i+1)*2))
	}
	test.ExpectSuccess(t, ch8.AttachROM(romFromWords(words...)))

	// sixteen calls fill the stack
	for i := 0; i < 16; i++ {
		test.ExpectSuccess(t, ch8.StepCycle())
	}

	// the seventeenth faults and halts the machine
	err := ch8.StepCycle()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, registers.StackOverflow))
	test.ExpectEquality(t, ch8.State(), hardware.Halted)

	// halted is terminal. subsequent cycles return the halt condition
	err = ch8.StepCycle()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.MachineHalted))

	// attaching a new ROM is the only recovery path
	test.ExpectSuccess(t, ch8.AttachROM(romFromWords(0x00e0)))
	test.ExpectEquality(t, ch8.State(), hardware.Running)
	test.ExpectSuccess(t, ch8.StepCycle())
}

func TestResetBetweenROMs(t *testing.T) {
	ch8 := hardware.NewChip8()

	test.ExpectSuccess(t, ch8.AttachROM(romFromWords(0x6aff, 0xa123, 0x63c8, 0xf315)))
	test.ExpectSuccess(t, ch8.RunForCycles(4))
	test.ExpectEquality(t, ch8.CPU.V[0xa].Value(), 0xff)

	// nothing of the first ROM's state survives the second attach
	test.ExpectSuccess(t, ch8.AttachROM(romFromWords(0x00e0)))
	test.ExpectEquality(t, ch8.CPU.V[0xa].Value(), 0)
	test.ExpectEquality(t, ch8.CPU.Index.Address(), 0)
	test.ExpectEquality(t, ch8.CPU.PC.Address(), memorymap.OriginROM)
	test.ExpectEquality(t, ch8.Timer.Delay(), 0)
}

func TestOversizeROM(t *testing.T) {
	ch8 := hardware.NewChip8()

	rom := make([]byte, memorymap.Memtop-memorymap.OriginROM+1)
	err := ch8.AttachROM(rom)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, memory.CapacityExceeded))

	// the machine is left as it was
	test.ExpectEquality(t, ch8.State(), hardware.Idle)
}

func TestRunContinueCheck(t *testing.T) {
	ch8 := hardware.NewChip8()

	// an infinite loop: jump to self
	test.ExpectSuccess(t, ch8.AttachROM(romFromWords(0x1200)))

	cycles := 0
	err := ch8.Run(func() (bool, error) {
		cycles++
		return cycles < 100, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 100)
}
