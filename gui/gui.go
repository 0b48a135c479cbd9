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

package gui

import "io"

// GUI defines the operations that can be performed on a user interface.
type GUI interface {
	// SetEventChannel registers the channel over which user interaction is
	// reported. Events are not sent until a channel has been registered.
	SetEventChannel(chan Event)

	// Render the display buffer. The slice is indexed by row and then by
	// column; a true value is a lit pixel.
	Render(pixels [][]bool) error

	// SetTone turns the monotone beeper on or off.
	SetTone(on bool)

	// Service pending user input.
	//
	// MUST ONLY be called from the main thread.
	Service()

	// Destroy the GUI and release any resources it holds. Errors are
	// written to the io.Writer rather than returned because Destroy is
	// called on the way out of the program.
	Destroy(io.Writer)
}
