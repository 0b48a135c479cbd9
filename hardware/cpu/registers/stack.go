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

package registers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal errors raised by the Stack type.
const (
	StackOverflow  = "stack: overflow (maximum %d entries)"
	StackUnderflow = "stack: underflow"
)

// MaxStackDepth is the maximum number of return addresses that can be on
// the call stack at one time.
const MaxStackDepth = 16

// Stack is the call stack of return addresses. A Push() beyond
// MaxStackDepth or a Pop() of an empty stack is an error, never a silent
// wraparound.
type Stack struct {
	entries []uint16
}

// NewStack is the preferred method of initialisation for the Stack type.
func NewStack() Stack {
	return Stack{
		entries: make([]uint16, 0, MaxStackDepth),
	}
}

func (stk Stack) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("SP=%d [", len(stk.entries)))
	for i, e := range stk.entries {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%#04x", e))
	}
	s.WriteString("]")
	return s.String()
}

// Depth returns the number of entries currently on the stack.
func (stk Stack) Depth() int {
	return len(stk.entries)
}

// Push a return address onto the stack.
func (stk *Stack) Push(address uint16) error {
	if len(stk.entries) >= MaxStackDepth {
		return curated.Errorf(StackOverflow, MaxStackDepth)
	}
	stk.entries = append(stk.entries, address)
	return nil
}

// Pop the most recently pushed return address from the stack.
func (stk *Stack) Pop() (uint16, error) {
	if len(stk.entries) == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	address := stk.entries[len(stk.entries)-1]
	stk.entries = stk.entries[:len(stk.entries)-1]
	return address, nil
}

// Reset empties the stack.
func (stk *Stack) Reset() {
	stk.entries = stk.entries[:0]
}
