// Released under an MIT license. See LICENSE.

package commands

import (
	"log/slog"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
	"github.com/michaelmacinnis/pita/internal/common/validate"
)

// glob reports whether a string matches a shell pattern.
func glob(args []value.I) (value.I, error) {
	if err := validate.Fixed("glob", args, 2); err != nil {
		return nil, err
	}

	pattern, err := validate.Str("glob", args, 0)
	if err != nil {
		return nil, err
	}

	s, err := validate.Str("glob", args, 1)
	if err != nil {
		return nil, err
	}

	ok, err := adapted.Match(pattern, s)
	if err != nil {
		return nil, fault.Newf(fault.InvalidCallsite, "glob: %v", err)
	}

	return value.Bool(ok), nil
}

func trace(logger *slog.Logger) value.Func {
	return func(args []value.I) (value.I, error) {
		if err := validate.Fixed("trace", args, 2); err != nil {
			return nil, err
		}

		msg, err := validate.Str("trace", args, 0)
		if err != nil {
			return nil, err
		}

		if logger != nil {
			logger.Info(msg, "value", value.Format(args[1], nil))
		}

		return args[1], nil
	}
}
