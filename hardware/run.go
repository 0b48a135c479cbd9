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

// Run the machine for as long as continueCheck() says to. The check is
// called between cycles, never mid-instruction, so stopping always leaves
// the machine in a consistent state.
//
// The machine itself runs as quickly as possible. Pacing of the
// instruction schedule and of the 60Hz timer schedule is the caller's
// responsibility; the playmode package shows how the two schedules are
// multiplexed onto one loop.
func (ch8 *Chip8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cont := true
	for cont {
		if err := ch8.StepCycle(); err != nil {
			return err
		}

		var err error
		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles runs the machine for the specified number of instruction
// cycles with no pacing at all. Useful for performance measurement and
// tests.
func (ch8 *Chip8) RunForCycles(numCycles int) error {
	for i := 0; i < numCycles; i++ {
		if err := ch8.StepCycle(); err != nil {
			return err
		}
	}
	return nil
}
