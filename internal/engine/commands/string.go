// Released under an MIT license. See LICENSE.

package commands

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
	"github.com/michaelmacinnis/pita/internal/common/validate"
)

func concat(args []value.I) (value.I, error) {
	if err := validate.Fixed("++", args, 2); err != nil {
		return nil, err
	}

	a, err := validate.Str("++", args, 0)
	if err != nil {
		return nil, err
	}

	b, err := validate.Str("++", args, 1)
	if err != nil {
		return nil, err
	}

	return value.Str(a + b), nil
}

func length(args []value.I) (value.I, error) {
	s, err := unary("length", args)
	if err != nil {
		return nil, err
	}

	return value.Int(utf8.RuneCountInString(s)), nil
}

func lower(args []value.I) (value.I, error) {
	s, err := unary("lower", args)
	if err != nil {
		return nil, err
	}

	return value.Str(strings.ToLower(s)), nil
}

func show(args []value.I) (value.I, error) {
	if err := validate.Fixed("show", args, 1); err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case value.Int:
		return value.Str(strconv.FormatInt(int64(v), 10)), nil
	case value.Str:
		return value.Str(strconv.Quote(string(v))), nil
	case value.Unit:
		return value.Str("()"), nil
	}

	return nil, fault.Newf(fault.InvalidCallsite, "show cannot print a %s", args[0].Name())
}

func upper(args []value.I) (value.I, error) {
	s, err := unary("upper", args)
	if err != nil {
		return nil, err
	}

	return value.Str(strings.ToUpper(s)), nil
}

func unary(label string, args []value.I) (string, error) {
	if err := validate.Fixed(label, args, 1); err != nil {
		return "", err
	}

	return validate.Str(label, args, 0)
}
