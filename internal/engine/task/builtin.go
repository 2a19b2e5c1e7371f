// Released under an MIT license. See LICENSE.

package task

import (
	"errors"

	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
)

// The strict type is a frame that forces each argument of a saturated
// builtin, left to right, and then calls it.
type strict struct {
	builtin *value.Builtin
	args    []value.I
	next    int
}

func (f *strict) Perform(t *T) Op {
	if f.next > 0 {
		f.args[f.next-1] = t.result
	}

	if f.next < len(f.args) {
		t.result = f.builtin.Args[f.next]
		f.next++

		return t.PushOp(Action(force))
	}

	v, err := f.builtin.Fn(f.args)
	if err != nil {
		var flt *fault.T
		if !errors.As(err, &flt) {
			flt = fault.Newf(fault.InvalidCallsite, "%s: %v", f.builtin.Label, err)
		}

		panic(flt)
	}

	t.result = v

	return t.ReplaceOp(Action(force))
}

func (f *strict) String() string {
	return "strict " + f.builtin.Label
}
