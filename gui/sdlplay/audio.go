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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"
)

const sampleFreq = 22050

// frequency of the beeper tone in Hz
const toneFreq = 440

// the amount of audio queued whenever the tone is audible. a small number
// of periods is enough; set() is called at the timer tick rate so the queue
// is topped up long before it drains
const queueThreshold = sampleFreq / 10

// tone is the monotone beeper. the original machines had a single fixed
// pitch buzzer so all we need is a square wave that can be turned on and
// off.
type tone struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// one full second of square wave, precomputed
	wave []uint8

	playing bool
}

func newTone() (*tone, error) {
	snd := &tone{}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	snd.spec = actualSpec

	// low amplitude or the beep is unpleasant
	const amplitude = 24

	snd.wave = make([]uint8, sampleFreq)
	halfPeriod := sampleFreq / toneFreq / 2
	for i := range snd.wave {
		if (i/halfPeriod)%2 == 0 {
			snd.wave[i] = snd.spec.Silence + amplitude
		} else {
			snd.wave[i] = snd.spec.Silence
		}
	}

	return snd, nil
}

// set turns the tone on or off. called whenever the sound timer changes
// state, which is at most once per timer tick.
func (snd *tone) set(on bool) {
	if on {
		if sdl.GetQueuedAudioSize(snd.id) < queueThreshold {
			_ = sdl.QueueAudio(snd.id, snd.wave)
		}
		if !snd.playing {
			sdl.PauseAudioDevice(snd.id, false)
			snd.playing = true
		}
	} else if snd.playing {
		sdl.PauseAudioDevice(snd.id, true)
		sdl.ClearQueuedAudio(snd.id)
		snd.playing = false
	}
}

func (snd *tone) destroy() {
	sdl.CloseAudioDevice(snd.id)
}
