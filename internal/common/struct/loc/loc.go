// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track where identifiers and terms
// were read from.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Char int    // Character position (column).
	Line int    // Line number (row).
	Name string // Label for the source of this token.
}

type loc = T

// Unknown returns the location used for compiled-in names.
func Unknown() T {
	return T{Name: "<unknown>"}
}

func (l loc) String() string {
	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
