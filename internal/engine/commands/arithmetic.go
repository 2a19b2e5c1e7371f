// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
	"github.com/michaelmacinnis/pita/internal/common/validate"
)

func arithmetic(label string, op func(a, b int64) int64) value.Func {
	return func(args []value.I) (value.I, error) {
		if err := validate.Fixed(label, args, 2); err != nil {
			return nil, err
		}

		v, err := validate.Ints(label, args)
		if err != nil {
			return nil, err
		}

		return value.Int(op(v[0], v[1])), nil
	}
}

func negate(args []value.I) (value.I, error) {
	if err := validate.Fixed("negate", args, 1); err != nil {
		return nil, err
	}

	n, err := validate.Int("negate", args, 0)
	if err != nil {
		return nil, err
	}

	return value.Int(-n), nil
}

// quotient is like arithmetic but rejects a zero divisor.
func quotient(label string, op func(a, b int64) int64) value.Func {
	checked := arithmetic(label, op)

	return func(args []value.I) (value.I, error) {
		if len(args) == 2 && args[1] == value.Int(0) {
			return nil, fault.Newf(fault.InvalidCallsite, "%s: division by zero", label)
		}

		return checked(args)
	}
}
