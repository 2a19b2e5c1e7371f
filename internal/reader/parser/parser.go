// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the pita language.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/struct/loc"
	"github.com/michaelmacinnis/pita/internal/common/struct/token"
	"github.com/michaelmacinnis/pita/internal/common/type/id"
	"github.com/michaelmacinnis/pita/internal/common/type/term"
)

// ErrIncomplete is the cause of a syntax error at the end of the input.
var ErrIncomplete = errors.New("unexpected end of input")

// T holds the state of the parser.
type T struct {
	ahead []*token.T      // Lookahead buffer.
	item  func() *token.T // Function to call to get another token.
	last  loc.T           // Location of the most recently consumed token.
}

// New creates a new parser that reads tokens by calling item.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Parse consumes tokens until there are no more and returns the
// declarations read, in order.
func (p *T) Parse() (decls []term.Decl, err error) {
	defer p.recover(&err)

	for p.peek() != nil {
		decls = append(decls, p.decl())
	}

	return decls, nil
}

// Expr consumes tokens until there are no more and returns the single
// expression read. A trailing ';' is allowed.
func (p *T) Expr() (e term.T, err error) {
	defer p.recover(&err)

	e = p.expr()

	if p.peek().Is(';') {
		p.consume()
	}

	if t := p.peek(); t != nil {
		p.unexpected(t)
	}

	return e, nil
}

type syntaxError struct {
	*fault.T
}

func (p *T) consume() *token.T {
	t := p.peek()
	if t == nil {
		panic("nothing to consume")
	}

	p.ahead = p.ahead[1:]
	p.last = t.Source()

	return t
}

func (p *T) expect(cs ...token.Class) *token.T {
	t := p.peek()
	if t.Is(cs...) {
		return p.consume()
	}

	e := lo.Map(cs, func(c token.Class, _ int) string {
		return describe(c)
	})

	p.fail(t, "expected "+strings.Join(e, " or "))

	return nil
}

func (p *T) fail(t *token.T, msg string) {
	if t == nil {
		panic(syntaxError{&fault.T{
			Kind:   fault.Syntax,
			Detail: p.last.String() + ": " + msg + ", " + ErrIncomplete.Error(),
			Cause:  ErrIncomplete,
		}})
	}

	if t.Is(token.Error) {
		msg = t.Value()
	} else {
		msg += ", found " + strconv.Quote(t.Value())
	}

	panic(syntaxError{fault.New(fault.Syntax, t.Source().String()+": "+msg)})
}

// lookahead returns the n-th token ahead, starting at 0, or nil.
func (p *T) lookahead(n int) *token.T {
	for len(p.ahead) <= n {
		t := p.item()
		if t == nil {
			return nil
		}

		p.ahead = append(p.ahead, t)
	}

	return p.ahead[n]
}

func (p *T) peek() *token.T {
	return p.lookahead(0)
}

func (p *T) recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	s, ok := r.(syntaxError)
	if !ok {
		panic(r)
	}

	*err = s.T
}

func (p *T) unexpected(t *token.T) {
	p.fail(t, "unexpected token")
}

// Declarations.

func (p *T) decl() term.Decl {
	name := p.head()

	var patterns []term.Predicate
	for !p.peek().Is(token.Bind) {
		patterns = append(patterns, p.apat())
	}

	p.expect(token.Bind)

	body := p.expr()

	p.expect(';')

	return term.Decl{Name: name, Patterns: patterns, Body: body}
}

func (p *T) head() *id.T {
	t := p.peek()

	switch {
	case t.Is(token.Ident):
		return p.ident(p.consume())
	case t.Is('(') && p.lookahead(1).Is(token.Operator) && p.lookahead(2).Is(')'):
		p.consume()
		name := p.ident(p.consume())
		p.consume()

		return name
	}

	p.fail(t, "expected a declaration")

	return nil
}

// Expressions.

func (p *T) expr() term.T {
	t := p.peek()

	switch {
	case t.Is(token.Ident) && p.lambda():
		return p.abstraction()
	case t.IsKeyword("let"):
		return p.let()
	case t.IsKeyword("match"):
		return p.match()
	case t.IsKeyword("if"):
		return p.conditional()
	case t.IsKeyword("do"):
		return p.block()
	}

	return p.infix(0)
}

// lambda returns true if the tokens ahead are IDENT+ '->'.
func (p *T) lambda() bool {
	n := 0
	for p.lookahead(n).Is(token.Ident) {
		n++
	}

	return n > 0 && p.lookahead(n).Is(token.Arrow)
}

func (p *T) abstraction() term.T {
	var params []*id.T
	for p.peek().Is(token.Ident) {
		params = append(params, p.ident(p.consume()))
	}

	p.expect(token.Arrow)

	return term.Curry(params, p.expr())
}

func (p *T) let() term.T {
	p.consume()

	name := p.ident(p.expect(token.Ident))

	p.expect(token.Bind)

	v := p.expr()

	p.expect(':')

	return &term.Let{Name: name, Value: v, Body: p.expr()}
}

func (p *T) match() term.T {
	p.consume()

	subject := p.expr()

	p.expect('{')

	var arms []term.Arm

	for {
		pred := p.pat()

		p.expect(token.Arrow)

		arms = append(arms, term.Arm{Pred: pred, Body: p.expr()})

		if p.expect(';', '}').Is('}') {
			break
		}

		if p.peek().Is('}') {
			p.consume()

			break
		}
	}

	return &term.Match{Subject: subject, Arms: arms}
}

func (p *T) conditional() term.T {
	p.consume()

	cond := p.expr()

	if t := p.peek(); !t.IsKeyword("then") {
		p.fail(t, "expected then")
	}

	p.consume()

	yes := p.expr()

	if t := p.peek(); !t.IsKeyword("else") {
		p.fail(t, "expected else")
	}

	p.consume()

	no := p.expr()

	return &term.Match{Subject: cond, Arms: []term.Arm{
		{Pred: &term.CtorPred{Name: id.Internal("True")}, Body: yes},
		{Pred: &term.CtorPred{Name: id.Internal("False")}, Body: no},
	}}
}

// A statement is a single line of a do block.
type statement struct {
	first *token.T
	let   bool
	name  *id.T // Bound by x <- e or let x = e.
	value term.T
}

// block reads a do block and rewrites it as nested calls to >>=. Each
// x <- e becomes ((>>=) e (x -> rest)) and each let x = e becomes a let
// over the rest of the block. The block must end with an expression.
func (p *T) block() term.T {
	p.consume()

	p.expect('{')

	var stmts []statement

	for {
		stmts = append(stmts, p.statement())

		if p.expect(';', '}').Is('}') {
			break
		}

		if p.peek().Is('}') {
			p.consume()

			break
		}
	}

	last := stmts[len(stmts)-1]
	if last.name != nil {
		p.fail(last.first, "do block must end with an expression")
	}

	bind := &term.Ident{Name: id.Internal(">>=")}
	body := last.value

	for i := len(stmts) - 2; i >= 0; i-- {
		s := stmts[i]

		switch {
		case s.name == nil:
			p.fail(s.first, "expression before the end of a do block")
		case s.let:
			body = &term.Let{Name: s.name, Value: s.value, Body: body}
		default:
			body = term.Apply(bind, s.value, &term.Lambda{Param: s.name, Body: body})
		}
	}

	return body
}

func (p *T) statement() statement {
	t := p.peek()

	switch {
	case t.Is(token.Ident) && p.lookahead(1).IsKeyword("<-"):
		name := p.ident(p.consume())
		p.consume()

		return statement{first: t, name: name, value: p.expr()}
	case t.IsKeyword("let"):
		p.consume()

		name := p.ident(p.expect(token.Ident))

		p.expect(token.Bind)

		v := p.expr()

		if p.peek().Is(':') {
			p.consume()

			return statement{first: t, value: &term.Let{Name: name, Value: v, Body: p.expr()}}
		}

		return statement{first: t, let: true, name: name, value: v}
	}

	return statement{first: t, value: p.expr()}
}

func (p *T) infix(min int) term.T {
	lhs := p.application()

	for {
		t := p.peek()
		if !t.Is(token.Operator) {
			return lhs
		}

		prec := precedence(t.Value())
		if prec < min {
			return lhs
		}

		op := p.ident(p.consume())
		rhs := p.infix(prec + 1)

		lhs = term.Apply(&term.Ident{Name: op}, lhs, rhs)
	}
}

func (p *T) application() term.T {
	f := p.atom()

	for p.peek().Is(token.Int, token.String, token.Ident, token.Ctor, '(') {
		f = &term.Callsite{Function: f, Argument: p.atom()}
	}

	return f
}

func (p *T) atom() term.T {
	t := p.peek()

	switch {
	case t.Is(token.Int):
		return term.Int(p.integer(p.consume(), false))
	case t.Is(token.String):
		return term.Str(p.str(p.consume()))
	case t.Is(token.Ident):
		return &term.Ident{Name: p.ident(p.consume())}
	case t.Is(token.Ctor):
		return &term.Ctor{Name: p.ctor(p.consume())}
	case t.Is(token.Operator) && t.Value() == "-" && p.lookahead(1).Is(token.Int):
		p.consume()

		return term.Int(p.integer(p.consume(), true))
	case t.Is('('):
		return p.parenthesized()
	}

	p.unexpected(t)

	return nil
}

func (p *T) parenthesized() term.T {
	p.consume()

	if p.peek().Is(')') {
		p.consume()

		return term.Unit()
	}

	if p.peek().Is(token.Operator) && p.lookahead(1).Is(')') {
		op := p.ident(p.consume())
		p.consume()

		return &term.Ident{Name: op}
	}

	items := []term.T{p.expr()}
	for p.peek().Is(',') {
		p.consume()

		items = append(items, p.expr())
	}

	p.expect(')')

	if len(items) == 1 {
		return items[0]
	}

	return &term.Tuple{Items: items}
}

// Patterns.

func (p *T) pat() term.Predicate {
	if !p.peek().Is(token.Ctor) {
		return p.apat()
	}

	name := p.ctor(p.consume())

	var items []term.Predicate
	for p.peek().Is(token.Ident, token.Int, token.Ctor, token.Operator, '_', '(') {
		items = append(items, p.apat())
	}

	return &term.CtorPred{Name: name, Items: items}
}

func (p *T) apat() term.Predicate {
	t := p.peek()

	switch {
	case t.Is(token.Ident):
		return &term.Irrefutable{Name: p.ident(p.consume())}
	case t.Is('_'):
		p.consume()

		return &term.Irrefutable{Name: id.Internal("_")}
	case t.Is(token.Int):
		return &term.IntPred{N: p.integer(p.consume(), false)}
	case t.Is(token.Operator) && t.Value() == "-" && p.lookahead(1).Is(token.Int):
		p.consume()

		return &term.IntPred{N: p.integer(p.consume(), true)}
	case t.Is(token.Ctor):
		return &term.CtorPred{Name: p.ctor(p.consume())}
	case t.Is('('):
		p.consume()

		items := []term.Predicate{p.pat()}
		for p.peek().Is(',') {
			p.consume()

			items = append(items, p.pat())
		}

		p.expect(')')

		if len(items) == 1 {
			return items[0]
		}

		return &term.TuplePred{Items: items}
	}

	p.fail(t, "expected a pattern")

	return nil
}

// Tokens to terms.

func (p *T) ctor(t *token.T) *id.T {
	i, err := id.NewCtor(t.Value(), t.Source())
	if err != nil {
		p.fail(t, err.Error())
	}

	return i
}

func (p *T) ident(t *token.T) *id.T {
	i, err := id.New(t.Value(), t.Source())
	if err != nil {
		p.fail(t, err.Error())
	}

	return i
}

func (p *T) integer(t *token.T, negative bool) int64 {
	s := t.Value()
	if negative {
		s = "-" + s
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		p.fail(t, "invalid integer")
	}

	return n
}

func (p *T) str(t *token.T) string {
	s, err := strconv.Unquote(t.Value())
	if err != nil {
		p.fail(t, fmt.Sprintf("invalid string: %v", err))
	}

	return s
}

// Helper functions.

func describe(c token.Class) string {
	switch c {
	case token.Arrow:
		return "'->'"
	case token.Bind:
		return "'='"
	case token.Ident:
		return "an identifier"
	}

	return c.String()
}

func precedence(op string) int {
	switch op {
	case "||":
		return 2
	case "&&":
		return 3
	case "==", "!=", "<", "<=", ">", ">=":
		return 4
	case "++":
		return 5
	case "+", "-":
		return 6
	case "*", "/", "%":
		return 7
	}

	return 9
}
