// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to builtins.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
)

// Fixed returns an error unless exactly n arguments were passed.
func Fixed(label string, args []value.I, n int) error {
	if len(args) != n {
		s := Count(n, "argument", "s")

		return fault.Newf(fault.InvalidCallsite, "%s expected %s, passed %d", label, s, len(args))
	}

	return nil
}

// Int returns the i-th argument as an integer.
func Int(label string, args []value.I, i int) (int64, error) {
	n, ok := args[i].(value.Int)
	if !ok {
		return 0, mismatch(label, "integer", args[i], i)
	}

	return int64(n), nil
}

// Ints returns every argument as an integer.
func Ints(label string, args []value.I) ([]int64, error) {
	ns := make([]int64, len(args))

	for i := range args {
		n, err := Int(label, args, i)
		if err != nil {
			return nil, err
		}

		ns[i] = n
	}

	return ns, nil
}

// Str returns the i-th argument as a string.
func Str(label string, args []value.I, i int) (string, error) {
	s, ok := args[i].(value.Str)
	if !ok {
		return "", mismatch(label, "string", args[i], i)
	}

	return string(s), nil
}

// Count returns n and label, pluralized with p if n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

func mismatch(label, expected string, actual value.I, i int) error {
	return fault.Newf(fault.InvalidCallsite,
		"%s requires %s arguments, argument %d is a %s", label, expected, i+1, actual.Name())
}
