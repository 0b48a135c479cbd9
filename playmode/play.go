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

// Package playmode is the normal mode of operation: the machine running at
// a wall-clock pace attached to a front-end, without any debugging
// features.
//
// instruction cycles and timer ticks run on independent schedules. the
// timer schedule is fixed at sixty ticks per second; the instruction
// schedule defaults to several hundred cycles per second and is
// adjustable. the display is rendered and the beeper updated on the timer
// schedule.
//
// the front-end is created by the caller; its Service() function is
// expected to be driven from the main thread elsewhere.
package playmode

import (
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// DefaultCyclesPerSecond is a reasonable pace for most ROMs.
const DefaultCyclesPerSecond = 700

// if the pacing loop stalls for longer than this (window dragged, machine
// suspended) we resynchronise rather than run a burst of catch-up cycles
const maxStall = 250 * time.Millisecond

type playmode struct {
	machine *hardware.Chip8
	scr     gui.GUI

	events  chan gui.Event
	intChan chan os.Signal

	cyclesPerSecond int

	// optional recording of the beeper output
	wav *wavwriter.WavWriter
}

// Play sets the emulation running.
func Play(scr gui.GUI, cartload romloader.Loader, cyclesPerSecond int, wavFile string) error {
	if cyclesPerSecond <= 0 {
		cyclesPerSecond = DefaultCyclesPerSecond
	}

	pl := &playmode{
		machine:         hardware.NewChip8(),
		scr:             scr,
		cyclesPerSecond: cyclesPerSecond,
	}

	err := cartload.Load()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = pl.machine.AttachROM(cartload.Data)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// connect gui
	pl.events = make(chan gui.Event, 2)
	pl.scr.SetEventChannel(pl.events)

	if wavFile != "" {
		pl.wav = wavwriter.New(wavFile)
		defer func() {
			err := pl.wav.End()
			if err != nil {
				os.Stderr.WriteString(err.Error() + "\n")
			}
		}()
	}

	// we need to make sure deferred functions run even when ctrl-c is
	// pressed. redirect interrupt signal to an os.Signal channel
	pl.intChan = make(chan os.Signal, 1)
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	return pl.run()
}

// run is the pacing loop. the two schedules keep independent deadlines
// against the wall clock so neither drifts because of the other.
func (pl *playmode) run() error {
	cycleDur := time.Second / time.Duration(pl.cyclesPerSecond)
	tickDur := time.Second / timer.TickRate

	now := time.Now()
	nextCycle := now.Add(cycleDur)
	nextTick := now.Add(tickDur)

	for {
		quit, err := pl.eventHandler()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		now = time.Now()

		if now.Sub(nextCycle) > maxStall {
			nextCycle = now
			nextTick = now
		}

		if !now.Before(nextTick) {
			nextTick = nextTick.Add(tickDur)

			pl.machine.TickTimers()

			sound := pl.machine.SoundActive()
			pl.scr.SetTone(sound)
			if pl.wav != nil {
				pl.wav.SetTone(sound)
			}

			err := pl.scr.Render(pl.machine.Frame())
			if err != nil {
				return curated.Errorf("playmode: %v", err)
			}
		}

		if !now.Before(nextCycle) {
			nextCycle = nextCycle.Add(cycleDur)

			err := pl.machine.StepCycle()
			if err != nil {
				return curated.Errorf("playmode: %v", err)
			}
		}

		// sleep until something is due
		now = time.Now()
		sleep := nextCycle.Sub(now)
		if d := nextTick.Sub(now); d < sleep {
			sleep = d
		}
		if sleep > 0 {
			time.Sleep(sleep)
		}
	}
}

func (pl *playmode) eventHandler() (bool, error) {
	select {
	case <-pl.intChan:
		return true, nil

	case ev := <-pl.events:
		switch ev := ev.(type) {
		case gui.EventQuit:
			return true, nil
		case gui.EventKeyboard:
			return pl.keyboardEventHandler(ev)
		}

	default:
	}

	return false, nil
}
