// Released under an MIT license. See LICENSE.

// Package reader turns pita source text into declarations and expressions.
package reader

import (
	"errors"

	"github.com/michaelmacinnis/pita/internal/common/struct/token"
	"github.com/michaelmacinnis/pita/internal/common/type/term"
	"github.com/michaelmacinnis/pita/internal/reader/lexer"
	"github.com/michaelmacinnis/pita/internal/reader/parser"
)

// Parse reads the declarations in text. Name is used in error locations.
func Parse(name, text string) ([]term.Decl, error) {
	return parser.New(scanner(name, text)).Parse()
}

// ParseExpr reads a single expression from text.
func ParseExpr(name, text string) (term.T, error) {
	return parser.New(scanner(name, text)).Expr()
}

// Incomplete returns true if err was caused by text ending too early.
func Incomplete(err error) bool {
	return errors.Is(err, parser.ErrIncomplete)
}

func scanner(name, text string) func() *token.T {
	l := lexer.New(name)

	l.Scan(text)

	return l.Token
}
