// Released under an MIT license. See LICENSE.

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/michaelmacinnis/pita/internal/common/type/term"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
	"github.com/michaelmacinnis/pita/internal/reader"
)

// Evaluator is the interface for things that evaluate parsed input.
type Evaluator interface {
	Eval(decls []term.Decl, expr term.T) (value.I, error)
	Format(v value.I) string
	Normalize(v value.I) (value.I, error)
}

// Session accumulates declarations and evaluates expressions against them.
// Input that ends part way through a declaration or expression is held
// until the next line completes it.
type Session struct {
	decls   []term.Decl
	deep    bool
	eval    Evaluator
	out     io.Writer
	pending string
}

// NewSession creates a session that writes results to out.
func NewSession(e Evaluator, out io.Writer, deep bool) *Session {
	return &Session{eval: e, out: out, deep: deep}
}

// Feed passes a line of input to the session.
func (s *Session) Feed(line string) {
	text := s.pending + line + "\n"
	if strings.TrimSpace(text) == "" {
		return
	}

	s.pending = ""

	expr, exprErr := reader.ParseExpr("<stdin>", text)
	if exprErr == nil {
		s.evaluate(expr)

		return
	}

	decls, err := reader.Parse("<stdin>", text)
	if err == nil {
		s.declare(decls)

		return
	}

	if reader.Incomplete(err) || reader.Incomplete(exprErr) {
		s.pending = text

		return
	}

	fmt.Fprintln(s.out, err)
}

// Pending returns true if the session is waiting for more input.
func (s *Session) Pending() bool {
	return s.pending != ""
}

// Reset discards any incomplete input.
func (s *Session) Reset() {
	s.pending = ""
}

// declare replaces any earlier declarations with the same names as decls.
// The new declarations are only kept if they link.
func (s *Session) declare(decls []term.Decl) {
	names := lo.Map(decls, func(d term.Decl, _ int) string {
		return d.Name.Name()
	})

	kept := lo.Filter(s.decls, func(d term.Decl, _ int) bool {
		return !lo.Contains(names, d.Name.Name())
	})

	next := append(kept, decls...)

	if _, err := s.eval.Eval(next, term.Unit()); err != nil {
		fmt.Fprintln(s.out, err)

		return
	}

	s.decls = next
}

func (s *Session) evaluate(expr term.T) {
	v, err := s.eval.Eval(s.decls, expr)
	if err == nil && s.deep {
		v, err = s.eval.Normalize(v)
	}

	if err != nil {
		fmt.Fprintln(s.out, err)

		return
	}

	fmt.Fprintln(s.out, s.eval.Format(v))
}
