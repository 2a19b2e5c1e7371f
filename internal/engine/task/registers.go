// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/pita/internal/common/type/term"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
)

// The registers type holds the state of pita's stack-based abstract machine.
// The code and scope registers describe what is being reduced; the result
// register holds the most recent value in weak head normal form.
type registers struct {
	*stack
	code   term.T
	depth  int
	result value.I
	scope  value.Scope
}

// Completed returns true if there are no operations left to perform.
func (m *registers) Completed() bool {
	return m.stack == done
}

// Depth returns the number of operations on the stack.
func (m *registers) Depth() int {
	return m.depth
}

// Op returns the abstract machine's current operation.
func (m *registers) Op() Op {
	return m.stack.op
}

// PushOp pushes a new operation onto the stack.
func (m *registers) PushOp(s Op) Op {
	m.stack = &stack{m.stack, s}
	m.depth++

	return s
}

// PreviousOp pops the current operation and returns the previous operation.
func (m *registers) PreviousOp() Op {
	m.RemoveOp()

	return m.Op()
}

// RemoveOp pops the current operation off the stack.
func (m *registers) RemoveOp() {
	if m.stack == done {
		panic("stack underflow")
	}

	m.stack = m.stack.stack
	m.depth--
}

// ReplaceOp replaces the operation at the top of the stack.
func (m *registers) ReplaceOp(s Op) Op {
	m.RemoveOp()

	return m.PushOp(s)
}

// Return sets the result to v and resumes the previous operation.
func (m *registers) Return(v value.I) Op {
	m.result = v

	return m.PreviousOp()
}

// The stack type is a machine's execution stack. Continuation frames
// waiting for a value sit below the operation currently being performed.
type stack struct {
	*stack
	op Op
}

//nolint:gochecknoglobals
var (
	done = &stack{}
)

func init() { //nolint:gochecknoinits
	done.stack = done
}
