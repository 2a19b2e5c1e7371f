// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/term"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
	"github.com/michaelmacinnis/pita/internal/engine/match"
)

// The branch type is a frame waiting for the subject of a match. Arms are
// tried in order. When the matcher needs a field forced the frame stays on
// the stack and the same arm is tried again once the field has a value.
type branch struct {
	arms     []term.Arm
	mismatch string
	next     int
	scope    value.Scope
	subject  value.I
}

func (f *branch) Perform(t *T) Op {
	if f.subject == nil {
		f.subject = t.result
	}

	for ; f.next < len(f.arms); f.next++ {
		arm := f.arms[f.next]

		r := match.Pattern(arm.Pred, f.subject, f.scope, t.arena)

		switch r.Outcome {
		case match.Matched:
			t.scope = r.Scope
			t.code = arm.Body

			return t.ReplaceOp(Action(reduce))

		case match.NeedsForce:
			t.result = value.Thunk{Ref: r.Ref}

			return t.PushOp(Action(force))

		case match.Mismatch:
			if f.mismatch == "" {
				f.mismatch = r.Detail
			}

		case match.Failed:
		}
	}

	subject := value.Format(f.subject, t.arena.Memo)

	if f.mismatch != "" {
		panic(fault.Newf(fault.MatchTypeError, "%s: %s", subject, f.mismatch))
	}

	panic(fault.Newf(fault.NoMatch, "no arm matches %s", subject))
}

func (f *branch) String() string {
	return "branch"
}
