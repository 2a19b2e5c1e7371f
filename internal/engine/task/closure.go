// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/term"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
)

// The apply type is a frame waiting for the function at a callsite.
// The argument is suspended, never evaluated, before it is passed.
type apply struct {
	arg   term.T
	scope value.Scope
}

func (f *apply) Perform(t *T) Op {
	switch fn := t.result.(type) {
	case *value.Lambda:
		t.scope = fn.Scope.Extend(fn.Param.Name(), t.suspend(f.arg, f.scope))
		t.code = fn.Body

		return t.ReplaceOp(Action(reduce))

	case *value.Builtin:
		b := fn.With(t.suspend(f.arg, f.scope))
		if !b.Saturated() {
			return t.Return(b)
		}

		return t.ReplaceOp(&strict{builtin: b, args: make([]value.I, len(b.Args))})

	case *value.Ctor:
		if fn.Full() {
			panic(fault.Newf(fault.InvalidCallsite,
				"constructor %s takes %d fields", fn.Tag, fn.Arity))
		}

		return t.Return(fn.With(t.suspend(f.arg, f.scope)))
	}

	panic(fault.Newf(fault.InvalidCallsite,
		"cannot apply %s to %s", value.Format(t.result, t.arena.Memo), f.arg))
}

func (f *apply) String() string {
	return "apply " + f.arg.String()
}

// The update type is a frame that writes a forced value into a memo cell.
type update struct {
	ref value.Ref
}

func (f *update) Perform(t *T) Op {
	t.arena.Fill(f.ref, t.result)

	return t.PreviousOp()
}

func (f *update) String() string {
	return "update"
}
