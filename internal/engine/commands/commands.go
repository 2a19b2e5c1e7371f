// Released under an MIT license. See LICENSE.

// Package commands provides pita's native builtins.
//
// Builtins are strict. Arguments are collected lazily as a builtin is
// applied, then forced left to right once all of them are present.
package commands

import (
	"log/slog"

	"github.com/michaelmacinnis/pita/internal/common/type/value"
)

// Builtins returns a fresh table of builtins. The trace builtin writes to
// logger.
func Builtins(logger *slog.Logger) map[string]*value.Builtin {
	table := map[string]*value.Builtin{}

	add := func(label string, arity int, fn value.Func) {
		table[label] = value.NewBuiltin(label, arity, fn)
	}

	// Arithmetic.
	add("+", 2, arithmetic("+", func(a, b int64) int64 { return a + b }))
	add("-", 2, arithmetic("-", func(a, b int64) int64 { return a - b }))
	add("*", 2, arithmetic("*", func(a, b int64) int64 { return a * b }))
	add("/", 2, quotient("/", func(a, b int64) int64 { return a / b }))
	add("%", 2, quotient("%", func(a, b int64) int64 { return a % b }))
	add("negate", 1, negate)

	// Relational.
	add("==", 2, compare("==", func(c int) bool { return c == 0 }))
	add("!=", 2, compare("!=", func(c int) bool { return c != 0 }))
	add("<", 2, compare("<", func(c int) bool { return c < 0 }))
	add("<=", 2, compare("<=", func(c int) bool { return c <= 0 }))
	add(">", 2, compare(">", func(c int) bool { return c > 0 }))
	add(">=", 2, compare(">=", func(c int) bool { return c >= 0 }))

	// Strings.
	add("++", 2, concat)
	add("glob", 2, glob)
	add("length", 1, length)
	add("lower", 1, lower)
	add("show", 1, show)
	add("upper", 1, upper)

	// Core.
	add("trace", 2, trace(logger))

	return table
}

// Constructors returns the arity of constructors that builtins produce or
// that the prelude relies on. Any other constructor accepts any number of
// fields.
func Constructors() map[string]int {
	return map[string]int{
		"Cons":  2,
		"False": 0,
		"Nil":   0,
		"True":  0,
	}
}
