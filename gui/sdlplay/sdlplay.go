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
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/video"

	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal errors raised by the sdlplay package.
const (
	SDL = "sdlplay: %v"
)

// the display buffer is tiny so each cell is rendered as a block of
// pixelScale * pixelScale screen pixels by default. can be overridden with
// the scale argument to NewSdlPlay()
const pixelScale = 10

const pixelDepth = 4

// SdlPlay is an SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	// connects the SDL event loop with the parent process
	events chan gui.Event

	// all audio is handled by the tone type
	tone *tone

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// to the renderer
	pixels []byte
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		pixels: make([]byte, video.Width*video.Height*pixelDepth),
	}

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	if scale <= 0 {
		scale = 1.0
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	w := int32(float32(video.Width*pixelScale) * scale)
	h := int32(float32(video.Height*pixelScale) * scale)

	scr.window, err = sdl.CreateWindow("Gopher8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// texture is the same size as the display buffer. the renderer scales
	// it to fit the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.tone, err = newTone()
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *SdlPlay) SetEventChannel(events chan gui.Event) {
	scr.events = events
}

// Render implements the gui.GUI interface.
func (scr *SdlPlay) Render(pixels [][]bool) error {
	i := 0
	for _, row := range pixels {
		for _, on := range row {
			var c byte
			if on {
				c = 255
			}
			scr.pixels[i] = c
			scr.pixels[i+1] = c
			scr.pixels[i+2] = c
			i += pixelDepth
		}
	}

	err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth)
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	scr.renderer.Present()

	return nil
}

// SetTone implements the gui.GUI interface.
func (scr *SdlPlay) SetTone(on bool) {
	scr.tone.set(on)
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() {
	// do not check for events if no event channel has been set
	if scr.events == nil {
		return
	}

	// loop until there are no more events to retrieve. servicing just one
	// event per call is not enough, queued events would take one call or
	// longer to resolve
	empty := false
	for !empty {
		// check for SDL events, timing out straight away if there's nothing
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.events <- gui.EventQuit{}

		case *sdl.KeyboardEvent:
			if ev.Repeat == 0 {
				switch ev.Type {
				case sdl.KEYDOWN:
					scr.events <- gui.EventKeyboard{
						Key:  sdl.GetKeyName(ev.Keysym.Sym),
						Down: true}
				case sdl.KEYUP:
					scr.events <- gui.EventKeyboard{
						Key:  sdl.GetKeyName(ev.Keysym.Sym),
						Down: false}
				}
			}

		case nil:
			// a nil value means WaitEventTimeout has timed out and we can
			// say that the event queue is empty
			empty = true
		}
	}
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	scr.tone.destroy()

	err := scr.texture.Destroy()
	if err != nil {
		fmt.Fprintln(output, err)
	}

	err = scr.renderer.Destroy()
	if err != nil {
		fmt.Fprintln(output, err)
	}

	err = scr.window.Destroy()
	if err != nil {
		fmt.Fprintln(output, err)
	}

	sdl.Quit()
}
