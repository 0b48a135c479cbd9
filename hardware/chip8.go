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

package hardware

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal errors raised by the hardware package.
const (
	// StepCycle() called before any ROM has been attached
	NoROM = "chip8: no ROM attached"

	// StepCycle() called after a fatal error has halted the machine. the
	// original fault is carried in the chain
	MachineHalted = "chip8: halted: %v"
)

// State describes what the machine is doing. State transitions are the
// machine's own business; external callers observe the state through the
// State() function.
type State int

// List of valid State values.
const (
	// no ROM loaded. AttachROM() is the only way out of this state
	Idle State = iota

	// normal fetch/decode/execute
	Running

	// a key-wait instruction is pending. instruction execution is
	// suspended but timers still tick
	WaitingForKey

	// a fatal error has been encountered. terminal until a new AttachROM()
	Halted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case WaitingForKey:
		return "waiting for key"
	case Halted:
		return "halted"
	}
	panic("unknown machine state")
}

// Chip8 is the main container for the emulated components of the machine.
// The machine is the single owner of all mutable state; external
// collaborators reach the components only through the copy-in/copy-out
// functions (SetKey, Frame, SoundActive) and the timing entry points
// (StepCycle, TickTimers).
type Chip8 struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Timer  *timer.Timer
	Keypad *keypad.Keypad
	Video  *video.Video

	state State

	// the error that halted the machine. valid only in the Halted state
	haltErr error
}

// NewChip8 creates a new machine with every component in its power-on
// state. No ROM is attached; the machine is Idle.
func NewChip8() *Chip8 {
	ch8 := &Chip8{
		Mem:    memory.NewMemory(),
		Timer:  timer.NewTimer(),
		Keypad: keypad.NewKeypad(),
		Video:  video.NewVideo(),
	}
	ch8.CPU = cpu.NewCPU(ch8.Mem, ch8.Timer, ch8.Keypad, ch8.Video)
	return ch8
}

// AttachROM loads a ROM into the machine and resets every component. No
// state carries over from a previously attached ROM. On success the
// machine is Running.
//
// A ROM that does not fit the address space returns an error matching
// memory.CapacityExceeded and the machine is left as it was.
func (ch8 *Chip8) AttachROM(rom []byte) error {
	if err := ch8.Mem.Load(rom); err != nil {
		return curated.Errorf("chip8: %v", err)
	}

	ch8.CPU.Reset()
	ch8.Timer.Reset()
	ch8.Keypad.Reset()
	ch8.Video.Reset()
	ch8.state = Running
	ch8.haltErr = nil

	logger.Logf("chip8", "ROM attached (%d bytes)", len(rom))

	return nil
}

// State returns what the machine is currently doing.
func (ch8 *Chip8) State() State {
	return ch8.state
}

// SetKey writes one key transition into the machine. This is the only
// inward-facing mutation an input collaborator is permitted.
func (ch8 *Chip8) SetKey(key uint8, down bool) error {
	return ch8.Keypad.Set(key, down)
}

// Frame returns a copy of the current display buffer for an external
// renderer.
func (ch8 *Chip8) Frame() [][]bool {
	return ch8.Video.Snapshot()
}

// SoundActive returns whether the external audio sink should be sounding
// a tone.
func (ch8 *Chip8) SoundActive() bool {
	return ch8.Timer.SoundActive()
}

// TickTimers decrements the two countdown timers. The external driver
// calls this on the fixed 60Hz schedule, independently of StepCycle().
// Timers tick in every state, including WaitingForKey.
func (ch8 *Chip8) TickTimers() {
	ch8.Timer.Tick()
}

// StepCycle executes one instruction cycle. In the WaitingForKey state no
// instruction executes; the cycle is spent checking whether a key has
// resolved the wait. The function returns immediately in that case so the
// caller is never blocked.
//
// A fatal error (unknown opcode, out of bounds access, stack fault)
// transitions the machine to Halted and is returned with the failing
// address and opcode in the chain. Once halted, every subsequent call
// returns an error matching MachineHalted until a new ROM is attached.
func (ch8 *Chip8) StepCycle() error {
	switch ch8.state {
	case Idle:
		return curated.Errorf(NoROM)

	case Halted:
		return curated.Errorf(MachineHalted, ch8.haltErr)

	case WaitingForKey:
		if target, key, ok := ch8.Keypad.Resolve(); ok {
			ch8.CPU.V[target].Load(key)
			ch8.state = Running
		}
		return nil
	}

	if err := ch8.CPU.ExecuteInstruction(); err != nil {
		ch8.state = Halted
		ch8.haltErr = err
		logger.Logf("chip8", "halted: %v", err)
		return curated.Errorf("chip8: %v", err)
	}

	if ch8.Keypad.Waiting() {
		ch8.state = WaitingForKey
	}

	return nil
}
