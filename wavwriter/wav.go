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

// Package wavwriter allows writing of the beeper output to disk as a WAV
// file. Note that audio data is buffered in memory in its entirety, and
// written to disk on program end. It is therefore probably only suitable
// for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/logger"
)

const sampleFreq = 44100

// frequency of the recorded tone in Hz
const toneFreq = 440

// number of samples appended for every timer tick
const samplesPerTick = sampleFreq / timer.TickRate

// WavWriter records the state of the beeper, one batch of samples per
// timer tick.
type WavWriter struct {
	filename string
	buffer   []int

	// phase of the square wave, retained between ticks so the tone is
	// continuous
	phase int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) *WavWriter {
	return &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, sampleFreq),
	}
}

// SetTone appends one timer tick's worth of samples. on indicates whether
// the tone was audible during the tick.
func (aw *WavWriter) SetTone(on bool) {
	const amplitude = 96

	halfPeriod := sampleFreq / toneFreq / 2

	for i := 0; i < samplesPerTick; i++ {
		v := 128
		if on && (aw.phase/halfPeriod)%2 == 0 {
			v += amplitude
		}
		aw.buffer = append(aw.buffer, v)
		aw.phase++
	}
}

// End writes the buffered samples to disk.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, sampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "audio written to %s (%d samples)", aw.filename, len(aw.buffer))

	return nil
}
