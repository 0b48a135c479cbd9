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

// Package performance contains helper functions relating to performance.
//
// Check() runs the machine flat out for a fixed duration of time, without
// a front-end, and reports the number of instruction cycles executed. It
// will optionally generate profiling information.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/romloader"
)

// Check is a very rough and ready calculation of the emulator's
// performance. cyclesPerSecond is the pace the machine would run at in
// play mode; it decides how often the timers tick relative to the
// instruction schedule and is the baseline for the reported percentage.
func Check(output io.Writer, profile bool, romFile string, cyclesPerSecond int, runTime string) error {
	machine := hardware.NewChip8()

	cl := romloader.NewLoader(romFile)
	err := cl.Load()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = machine.AttachROM(cl.Data)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// parse supplied duration
	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// in play mode the timers tick on their own schedule. here the machine
	// runs flat out so the tick is interleaved every few cycles, keeping
	// the ratio the two schedules would have at the requested pace
	cyclesPerTick := cyclesPerSecond / timer.TickRate
	if cyclesPerTick < 1 {
		cyclesPerTick = 1
	}

	numCycles := 0

	err = runProfiler(profile, "cpu.profile", func() error {
		// setup trigger that expires when duration has elapsed
		timesUp := make(chan bool)

		go func() {
			time.AfterFunc(duration, func() {
				timesUp <- true
			})
		}()

		return machine.Run(func() (bool, error) {
			numCycles++
			if numCycles%cyclesPerTick == 0 {
				machine.TickTimers()
			}

			// a machine waiting on the keypad will never resume without a
			// front-end so there is nothing left to measure
			if machine.State() == hardware.WaitingForKey {
				return false, nil
			}

			select {
			case <-timesUp:
				return false, nil
			default:
				return true, nil
			}
		})
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	rate := float64(numCycles) / duration.Seconds()
	pct := 100 * rate / float64(cyclesPerSecond)
	output.Write([]byte(fmt.Sprintf("%.0f cycles/sec (%d cycles in %.2f seconds) %.0f%% of requested pace\n",
		rate, numCycles, duration.Seconds(), pct)))

	return memProfile(profile, "mem.profile")
}
