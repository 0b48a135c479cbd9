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

// Package curated is the error mechanism used throughout the emulator.
// It is a drop-in replacement for errors created with fmt.Errorf() with the
// addition that errors can be compared against the pattern used to create
// them.
//
// Packages that raise errors that a caller might reasonably want to act on
// export the pattern as a const string. For example, the memory package
// exports the OutOfBounds pattern. A caller can then check the returned
// error with:
//
//	if curated.Is(err, memory.OutOfBounds) {
//		...
//	}
//
// The Has() function works similarly but will walk the chain of wrapped
// errors looking for the pattern.
package curated
