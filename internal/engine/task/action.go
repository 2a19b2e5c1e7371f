// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/samber/lo"

	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/term"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
)

// Action performs a single step of the machine and returns the next operation.
type Action func(*T) Op

// Perform is required for an action to be an operation.
func (a Action) Perform(t *T) Op {
	return a(t)
}

// Actions.

// force reduces the value in the result register to weak head normal form.
// Forced thunks resume with their memo. An unforced thunk is replaced by an
// update frame that fills the memo cell once its code has been reduced.
//
// Result: the result register holds a value in weak head normal form.
// Requires: the value to force is in the result register.
func force(t *T) Op {
	th, ok := t.result.(value.Thunk)
	if !ok {
		return t.PreviousOp()
	}

	if v, ok := t.arena.Memo(th.Ref); ok {
		return t.Return(v)
	}

	code, scope, err := t.arena.Begin(th.Ref)
	if err != nil {
		panic(err)
	}

	t.ReplaceOp(&update{ref: th.Ref})

	t.code = code
	t.scope = scope

	return t.PushOp(Action(reduce))
}

// reduce performs one reduction step on the code register.
//
// Result: the result register holds the value of code in weak head normal form.
// Requires: code and scope registers are set.
func reduce(t *T) Op {
	switch c := t.code.(type) {
	case *term.Literal:
		return t.Return(value.FromLiteral(c))

	case *term.Ident:
		v, ok := t.scope.Lookup(c.Name.Name())
		if !ok {
			panic(fault.Unresolved(c.Name.Name()))
		}

		if !value.IsWHNF(v) {
			t.result = v

			return t.ReplaceOp(Action(force))
		}

		return t.Return(v)

	case *term.Lambda:
		return t.Return(&value.Lambda{Param: c.Param, Body: c.Body, Scope: t.scope})

	case *term.Let:
		t.scope = t.scope.Extend(c.Name.Name(), t.suspend(c.Value, t.scope))
		t.code = c.Body

		return t.Op()

	case *term.Match:
		t.ReplaceOp(&branch{arms: c.Arms, scope: t.scope})
		t.code = c.Subject

		return t.PushOp(Action(reduce))

	case *term.Callsite:
		t.ReplaceOp(&apply{arg: c.Argument, scope: t.scope})
		t.code = c.Function

		return t.PushOp(Action(reduce))

	case *term.Tuple:
		scope := t.scope

		return t.Return(&value.Tuple{
			Fields: lo.Map(c.Items, func(item term.T, _ int) value.I {
				return t.suspend(item, scope)
			}),
		})

	case *term.Ctor:
		return t.Return(t.ctor(c.Name.Name()))
	}

	panic("cannot reduce " + codeString(t.code))
}
