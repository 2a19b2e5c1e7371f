// Released under an MIT license. See LICENSE.

// Package id provides pita's validated identifier type.
package id

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/michaelmacinnis/pita/internal/common/struct/loc"
)

// Keywords can never be used as ordinary identifiers.
//
//nolint:gochecknoglobals
var Keywords = []string{
	"<-", "->", ":", ";", "=", "do", "else", "if", "let", "match", "then",
}

var (
	ErrCtor  = errors.New("constructor id must start with an uppercase letter")
	ErrIdent = errors.New("id must start with an alphabetic letter or valid punctuation")
)

// T (id) is a name and the location where it was read.
type T struct {
	name   string
	source loc.T
}

type id = T

// New creates an ordinary identifier.
func New(name string, source loc.T) (*id, error) {
	if !IsValid(name) {
		return nil, &Error{err: ErrIdent, name: name, source: source}
	}

	return &id{name: name, source: source}, nil
}

// NewCtor creates a constructor identifier.
func NewCtor(name string, source loc.T) (*id, error) {
	if !IsCtor(name) {
		return nil, &Error{err: ErrCtor, name: name, source: source}
	}

	return &id{name: name, source: source}, nil
}

// Gensym returns the n-th synthesized parameter name. The lexer never
// produces a single token of this form so it can't capture a user name.
func Gensym(n int) *id {
	return &id{name: "%" + strconv.Itoa(n), source: loc.Unknown()}
}

// Internal creates an identifier for a compiled-in name. It panics if name
// is not valid.
func Internal(name string) *id {
	if !IsValid(name) && !IsCtor(name) {
		panic("invalid internal id: " + name)
	}

	return &id{name: name, source: loc.Unknown()}
}

// IsCtor returns true if name can be used as a constructor identifier.
func IsCtor(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)

	return unicode.IsUpper(r)
}

// IsValid returns true if name can be used as an ordinary identifier.
func IsValid(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return false
	}

	if !unicode.IsLetter(r) && r != '_' && !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
		return false
	}

	return !lo.Contains(Keywords, name)
}

// Name returns the identifier's name.
func (i *id) Name() string {
	return i.name
}

// Source returns the location where the identifier was read.
func (i *id) Source() loc.T {
	return i.source
}

func (i *id) String() string {
	return i.name
}

// Error is returned when a name is not a valid identifier.
type Error struct {
	err    error
	name   string
	source loc.T
}

func (e *Error) Error() string {
	return e.source.String() + ": error: " + e.err.Error() + ": '" + e.name + "'"
}

func (e *Error) Unwrap() error {
	return e.err
}
