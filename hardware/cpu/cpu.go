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

package cpu

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
)

// Sentinal errors raised by the cpu package.
const (
	// register ids arrive masked from the decoder so an out of range id
	// should be unreachable. it is checked anyway
	InvalidRegister = "cpu: invalid register (V%X)"
)

// errors returned by ExecuteInstruction() are wrapped with this pattern,
// adding the address of the failing instruction
const executionError = "cpu: %v: at %#04x"

// NumRegisters is the number of general purpose data registers.
const NumRegisters = 16

// the flag register, VF. carry, borrow and collision results are written
// here and it must not be relied on as a general purpose register
const flagRegister = 0xf

// CPU implements the fetch/decode/execute cycle of the CHIP-8 machine.
// Register logic is implemented by the types in the registers sub-package;
// classification of opcodes by the instructions sub-package.
type CPU struct {
	PC    registers.ProgramCounter
	Index registers.ProgramCounter
	V     [NumRegisters]registers.Register
	Stack registers.Stack

	mem *memory.Memory
	tmr *timer.Timer
	kpd *keypad.Keypad
	vid *video.Video

	rnd *rand.Rand

	// information about the last instruction to have executed. the address
	// field is only valid once ExecuteInstruction() has been called
	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU type. All
// four components the instruction set can touch are required.
func NewCPU(mem *memory.Memory, tmr *timer.Timer, kpd *keypad.Keypad, vid *video.Video) *CPU {
	mc := &CPU{
		mem: mem,
		tmr: tmr,
		kpd: kpd,
		vid: vid,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}
	mc.Stack = registers.NewStack()
	mc.Reset()

	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%s I=%s %s\n", mc.PC, mc.Index, mc.Stack))
	for i := range mc.V {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(mc.V[i].String())
	}
	return s.String()
}

// Reset the CPU to its ROM load state: program counter at the ROM origin,
// index register, data registers and call stack cleared.
func (mc *CPU) Reset() {
	mc.PC = registers.NewProgramCounter(memorymap.OriginROM)
	mc.Index = registers.NewProgramCounter(0)
	for i := range mc.V {
		mc.V[i].Load(0)
	}
	mc.Stack.Reset()
	mc.LastResult = Result{}
}

// SetRandSeed replaces the source used by the RND instruction with a
// deterministic one. Tests use this; normal operation never needs it.
func (mc *CPU) SetRandSeed(seed int64) {
	mc.rnd = rand.New(rand.NewSource(seed))
}

// setFlag writes a boolean result into the flag register, VF.
func (mc *CPU) setFlag(set bool) {
	if set {
		mc.V[flagRegister].Load(1)
	} else {
		mc.V[flagRegister].Load(0)
	}
}

// skip the next instruction.
func (mc *CPU) skip() {
	mc.PC.Add(2)
}

// ExecuteInstruction fetches the opcode at the program counter, decodes it
// and executes it to completion. The program counter is advanced past the
// opcode before execution; flow control operations then overwrite it.
//
// Any error is wrapped with the address of the failing instruction. The
// underlying condition can be recovered with curated.Has(); for example
// curated.Has(err, instructions.UnknownOpcode).
func (mc *CPU) ExecuteInstruction() error {
	pc := mc.PC.Address()

	opcode, err := mc.mem.ReadWord(pc)
	if err != nil {
		return curated.Errorf(executionError, err, pc)
	}

	ins, err := instructions.Decode(opcode)
	if err != nil {
		return curated.Errorf(executionError, err, pc)
	}

	// decoded register ids are masked nibbles so this should be impossible
	if int(ins.X) >= NumRegisters || int(ins.Y) >= NumRegisters {
		return curated.Errorf(executionError, curated.Errorf(InvalidRegister, ins.X), pc)
	}

	mc.PC.Add(2)
	mc.LastResult = Result{Address: pc, Instruction: ins}

	switch ins.Defn.Operator {
	case instructions.Sys:
		// a machine code routine call on the original COSMAC VIP. there is
		// no machine code to run so the operation is a no-op

	case instructions.Clear:
		mc.vid.Clear()

	case instructions.Return:
		address, err := mc.Stack.Pop()
		if err != nil {
			return curated.Errorf(executionError, err, pc)
		}
		mc.PC.Load(address)

	case instructions.Jump:
		mc.PC.Load(ins.NNN)

	case instructions.Call:
		// the return address is the instruction after the CALL
		if err := mc.Stack.Push(mc.PC.Address()); err != nil {
			return curated.Errorf(executionError, err, pc)
		}
		mc.PC.Load(ins.NNN)

	case instructions.SkipEqualValue:
		if mc.V[ins.X].Value() == ins.NN {
			mc.skip()
		}

	case instructions.SkipNotEqualValue:
		if mc.V[ins.X].Value() != ins.NN {
			mc.skip()
		}

	case instructions.SkipEqualRegister:
		if mc.V[ins.X].Value() == mc.V[ins.Y].Value() {
			mc.skip()
		}

	case instructions.LoadValue:
		mc.V[ins.X].Load(ins.NN)

	case instructions.AddValue:
		// the immediate form of ADD does not touch the flag register
		mc.V[ins.X].Add(ins.NN)

	case instructions.Load:
		mc.V[ins.X].Load(mc.V[ins.Y].Value())

	case instructions.Or:
		mc.V[ins.X].ORA(mc.V[ins.Y].Value())

	case instructions.And:
		mc.V[ins.X].AND(mc.V[ins.Y].Value())

	case instructions.Xor:
		mc.V[ins.X].EOR(mc.V[ins.Y].Value())

	case instructions.Add:
		carry := mc.V[ins.X].Add(mc.V[ins.Y].Value())
		mc.setFlag(carry)

	case instructions.Subtract:
		noBorrow := mc.V[ins.X].Subtract(mc.V[ins.Y].Value())
		mc.setFlag(noBorrow)

	case instructions.ShiftRight:
		out := mc.V[ins.X].ShiftRight()
		mc.setFlag(out)

	case instructions.SubtractReverse:
		// VX = VY - VX. the flag is set if no borrow was required
		x := mc.V[ins.X].Value()
		y := mc.V[ins.Y].Value()
		mc.V[ins.X].Load(y - x)
		mc.setFlag(y >= x)

	case instructions.ShiftLeft:
		out := mc.V[ins.X].ShiftLeft()
		mc.setFlag(out)

	case instructions.SkipNotEqualRegister:
		if mc.V[ins.X].Value() != mc.V[ins.Y].Value() {
			mc.skip()
		}

	case instructions.LoadIndex:
		mc.Index.Load(ins.NNN)

	case instructions.JumpOffset:
		mc.PC.Load(ins.NNN + uint16(mc.V[0].Value()))

	case instructions.Random:
		mc.V[ins.X].Load(uint8(mc.rnd.Intn(256)) & ins.NN)

	case instructions.Draw:
		sprite := make([]uint8, ins.N)
		for i := range sprite {
			b, err := mc.mem.ReadByte(mc.Index.Address() + uint16(i))
			if err != nil {
				return curated.Errorf(executionError, err, pc)
			}
			sprite[i] = b
		}
		collision := mc.vid.DrawSprite(mc.V[ins.X].Value(), mc.V[ins.Y].Value(), sprite)
		mc.setFlag(collision)

	case instructions.SkipKeyDown:
		// only the lower nibble of the register value is a key
		down, err := mc.kpd.IsDown(mc.V[ins.X].Value() & 0x0f)
		if err != nil {
			return curated.Errorf(executionError, err, pc)
		}
		if down {
			mc.skip()
		}

	case instructions.SkipKeyUp:
		down, err := mc.kpd.IsDown(mc.V[ins.X].Value() & 0x0f)
		if err != nil {
			return curated.Errorf(executionError, err, pc)
		}
		if !down {
			mc.skip()
		}

	case instructions.LoadFromDelay:
		mc.V[ins.X].Load(mc.tmr.Delay())

	case instructions.WaitKey:
		// the wait is not a blocking call. the machine sees the armed latch
		// and stops calling ExecuteInstruction() until a key goes down
		mc.kpd.BeginWait(ins.X)

	case instructions.LoadDelay:
		mc.tmr.SetDelay(mc.V[ins.X].Value())

	case instructions.LoadSound:
		mc.tmr.SetSound(mc.V[ins.X].Value())

	case instructions.AddIndex:
		mc.Index.Add(uint16(mc.V[ins.X].Value()))

	case instructions.LoadGlyph:
		mc.Index.Load(mc.mem.GlyphAddress(mc.V[ins.X].Value()))

	case instructions.StoreDigits:
		v := mc.V[ins.X].Value()
		digits := []uint8{v / 100, (v / 10) % 10, v % 10}
		for i, d := range digits {
			if err := mc.mem.WriteByte(mc.Index.Address()+uint16(i), d); err != nil {
				return curated.Errorf(executionError, err, pc)
			}
		}

	case instructions.StoreRegisters:
		// the index register itself is left unchanged
		for i := 0; i <= int(ins.X); i++ {
			if err := mc.mem.WriteByte(mc.Index.Address()+uint16(i), mc.V[i].Value()); err != nil {
				return curated.Errorf(executionError, err, pc)
			}
		}

	case instructions.LoadRegisters:
		for i := 0; i <= int(ins.X); i++ {
			b, err := mc.mem.ReadByte(mc.Index.Address() + uint16(i))
			if err != nil {
				return curated.Errorf(executionError, err, pc)
			}
			mc.V[i].Load(b)
		}
	}

	return nil
}
