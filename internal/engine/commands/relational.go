// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
	"github.com/michaelmacinnis/pita/internal/common/validate"
)

// compare orders two integers or two strings and reports the outcome as
// True or False.
func compare(label string, accept func(c int) bool) value.Func {
	return func(args []value.I) (value.I, error) {
		if err := validate.Fixed(label, args, 2); err != nil {
			return nil, err
		}

		c, err := order(label, args[0], args[1])
		if err != nil {
			return nil, err
		}

		return value.Bool(accept(c)), nil
	}
}

func order(label string, a, b value.I) (int, error) {
	switch a := a.(type) {
	case value.Int:
		if b, ok := b.(value.Int); ok {
			switch {
			case a < b:
				return -1, nil
			case a > b:
				return 1, nil
			}

			return 0, nil
		}
	case value.Str:
		if b, ok := b.(value.Str); ok {
			return strings.Compare(string(a), string(b)), nil
		}
	}

	return 0, fault.Newf(fault.InvalidCallsite,
		"%s requires two integers or two strings, passed %s and %s", label, a.Name(), b.Name())
}
