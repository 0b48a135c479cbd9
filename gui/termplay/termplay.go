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

// Package termplay is a front-end for a posix terminal. the display buffer
// is drawn with unicode half-block characters so a full frame fits in
// 64x16 character cells.
//
// terminals report key presses but not key releases so a press is
// considered to be held for a short period and a release is synthesised
// when that period expires.
package termplay

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/video"

	"github.com/pkg/term/termios"
)

// Sentinal errors raised by the termplay package.
const (
	Terminal = "termplay: %v"
)

// how long a key press is considered to be held before a release is
// synthesised
const keyHold = 100 * time.Millisecond

// TermPlay is a terminal implementation of the gui.GUI interface.
type TermPlay struct {
	events chan gui.Event

	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	// keys we have reported as down and when each was last seen
	held map[string]time.Time

	toneOn bool
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type.
func NewTermPlay() (*TermPlay, error) {
	scr := &TermPlay{
		input:  os.Stdin,
		output: os.Stdout,
		held:   make(map[string]time.Time),
	}

	err := termios.Tcgetattr(scr.input.Fd(), &scr.canAttr)
	if err != nil {
		return nil, curated.Errorf(Terminal, err)
	}

	scr.rawAttr = scr.canAttr
	termios.Cfmakecbreak(&scr.rawAttr)

	// non-blocking reads. a read with no data waiting returns immediately
	// with zero bytes
	scr.rawAttr.Cc[unix.VMIN] = 0
	scr.rawAttr.Cc[unix.VTIME] = 0

	err = termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.rawAttr)
	if err != nil {
		return nil, curated.Errorf(Terminal, err)
	}

	// hide cursor and clear screen
	fmt.Fprint(scr.output, "\033[?25l\033[2J")

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *TermPlay) SetEventChannel(events chan gui.Event) {
	scr.events = events
}

// Render implements the gui.GUI interface.
func (scr *TermPlay) Render(pixels [][]bool) error {
	s := strings.Builder{}

	// home cursor rather than clearing, to avoid flicker
	s.WriteString("\033[H")

	// two display rows per character cell
	for y := 0; y < video.Height; y += 2 {
		for x := 0; x < video.Width; x++ {
			top := pixels[y][x]
			bot := pixels[y+1][x]
			switch {
			case top && bot:
				s.WriteString("█")
			case top:
				s.WriteString("▀")
			case bot:
				s.WriteString("▄")
			default:
				s.WriteString(" ")
			}
		}
		s.WriteString("\r\n")
	}

	_, err := scr.output.WriteString(s.String())
	if err != nil {
		return curated.Errorf(Terminal, err)
	}

	return nil
}

// SetTone implements the gui.GUI interface. the best a terminal can do is
// ring the bell on the leading edge of the tone.
func (scr *TermPlay) SetTone(on bool) {
	if on && !scr.toneOn {
		fmt.Fprint(scr.output, "\a")
	}
	scr.toneOn = on
}

// Service implements the gui.GUI interface.
func (scr *TermPlay) Service() {
	if scr.events == nil {
		return
	}

	buf := make([]byte, 8)
	n, _ := scr.input.Read(buf)

	now := time.Now()

	for _, b := range buf[:n] {
		// ctrl-c and escape both end the emulation
		if b == 0x03 || b == 0x1b {
			scr.events <- gui.EventQuit{}
			continue
		}

		key := strings.ToUpper(string(rune(b)))
		if _, ok := scr.held[key]; !ok {
			scr.events <- gui.EventKeyboard{Key: key, Down: true}
		}
		scr.held[key] = now
	}

	// synthesise key releases
	for key, seen := range scr.held {
		if now.Sub(seen) > keyHold {
			scr.events <- gui.EventKeyboard{Key: key, Down: false}
			delete(scr.held, key)
		}
	}
}

// Destroy implements the gui.GUI interface.
func (scr *TermPlay) Destroy(output io.Writer) {
	// restore cursor and canonical mode
	fmt.Fprint(scr.output, "\033[?25h\033[2J\033[H")

	err := termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.canAttr)
	if err != nil {
		fmt.Fprintln(output, err)
	}
}
