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

// Package video implements the 64x32 monochrome display buffer of the
// CHIP-8 machine. The buffer is mutated only by the clear and draw
// instructions; external renderers see the pixel grid through the
// Snapshot() function and never mutate it.
package video

import "strings"

// Width and Height of the display buffer in pixels.
const (
	Width  = 64
	Height = 32
)

// Video is the display buffer.
type Video struct {
	pixels [Height][Width]bool
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// an ASCII rendering of the pixel grid. useful in test failure output
func (vid Video) String() string {
	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if vid.pixels[y][x] {
				s.WriteString("#")
			} else {
				s.WriteString(".")
			}
		}
		s.WriteString("\n")
	}
	return s.String()
}

// Clear sets every pixel to off.
func (vid *Video) Clear() {
	for y := range vid.pixels {
		for x := range vid.pixels[y] {
			vid.pixels[y][x] = false
		}
	}
}

// DrawSprite XORs the sprite into the pixel grid. The sprite is eight
// pixels wide and one row per byte of the sprite argument, most
// significant bit leftmost. The start coordinate wraps into the grid and
// so do any pixels that extend past the edges.
//
// The return value is the collision flag: true if any pixel was flipped
// from on to off.
func (vid *Video) DrawSprite(x uint8, y uint8, sprite []uint8) bool {
	collision := false

	for row, bits := range sprite {
		py := (int(y) + row) % Height
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % Width
			if vid.pixels[py][px] {
				collision = true
			}
			vid.pixels[py][px] = !vid.pixels[py][px]
		}
	}

	return collision
}

// Pixel returns the state of a single pixel. Coordinates wrap into the
// grid in the same way as DrawSprite().
func (vid *Video) Pixel(x int, y int) bool {
	return vid.pixels[y%Height][x%Width]
}

// Snapshot returns a copy of the current pixel state. The copy is the
// renderer's to keep; later drawing does not affect it.
func (vid *Video) Snapshot() [][]bool {
	frame := make([][]bool, Height)
	for y := range frame {
		frame[y] = make([]bool, Width)
		copy(frame[y], vid.pixels[y][:])
	}
	return frame
}

// Reset is an alias of Clear. It exists so the machine can treat every
// component uniformly on a new ROM load.
func (vid *Video) Reset() {
	vid.Clear()
}
