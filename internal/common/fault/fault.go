// Released under an MIT license. See LICENSE.

// Package fault provides pita's runtime error type.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a fault.
type Kind int

// Fault kinds.
const (
	UnresolvedSymbol Kind = iota
	InvalidDecl
	InvalidCallsite
	NoMatch
	MatchTypeError
	Loop
	Syntax
)

// String returns the kind's description as used in error messages.
func (k Kind) String() string {
	switch k {
	case UnresolvedSymbol:
		return "unresolved symbol"
	case InvalidDecl:
		return "invalid declaration"
	case InvalidCallsite:
		return "invalid callsite"
	case NoMatch:
		return "no match"
	case MatchTypeError:
		return "match type error"
	case Loop:
		return "loop"
	case Syntax:
		return "syntax error"
	}

	return "unknown"
}

// T (fault) is fatal to the evaluation in flight.
type T struct {
	Kind   Kind
	Detail string
	Cause  error
}

type fault = T

// New creates a fault of kind k.
func New(k Kind, detail string) *fault {
	return &fault{Kind: k, Detail: detail}
}

// Newf creates a fault of kind k with a formatted detail message.
func Newf(k Kind, format string, args ...interface{}) *fault {
	return New(k, fmt.Sprintf(format, args...))
}

// Unresolved creates an UnresolvedSymbol fault for name.
func Unresolved(name string) *fault {
	return New(UnresolvedSymbol, name)
}

func (f *fault) Error() string {
	if f.Kind == Syntax {
		return "pita: " + f.Kind.String() + ": " + f.Detail
	}

	return "pita runtime error: " + f.Kind.String() + ": " + f.Detail
}

// Unwrap returns the error that caused f, if any.
func (f *fault) Unwrap() error {
	return f.Cause
}

// Is returns true if err is, or wraps, a fault of kind k.
func Is(err error, k Kind) bool {
	var f *fault
	if errors.As(err, &f) {
		return f.Kind == k
	}

	return false
}
