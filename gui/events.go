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

// Events are the things that happen in the gui, as a result of user
// interaction, and sent over a registered event channel.
type Event interface{}

// EventQuit is sent when the user closes the window or otherwise asks for
// the emulation to end.
type EventQuit struct{}

// EventKeyboard is the data that accompanies keyboard events. Key is the
// name of the key, not the CHIP-8 key value; translation to the keypad is
// the responsibility of whoever receives the event.
type EventKeyboard struct {
	Key  string
	Down bool
}
