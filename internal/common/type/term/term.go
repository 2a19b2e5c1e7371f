// Released under an MIT license. See LICENSE.

// Package term defines pita's surface terms, predicates, and declarations.
// Terms are immutable once built and are shared by reference.
package term

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/michaelmacinnis/pita/internal/common/type/id"
)

// T (term) is the interface satisfied by every surface term.
type T interface {
	String() string

	term()
}

// LiteralKind distinguishes the literal forms.
type LiteralKind int

// Literal kinds.
const (
	IntLiteral LiteralKind = iota
	StrLiteral
	UnitLiteral
)

// Literal is an integer, string, or unit constant.
type Literal struct {
	Kind LiteralKind
	Int  int64
	Str  string
}

// Ident is a reference to a bound name.
type Ident struct {
	Name *id.T
}

// Lambda is a single parameter function.
type Lambda struct {
	Param *id.T
	Body  T
}

// Let binds Name to a suspended Value while evaluating Body.
type Let struct {
	Name  *id.T
	Value T
	Body  T
}

// Arm is a single predicate and the term evaluated when it matches.
type Arm struct {
	Pred Predicate
	Body T
}

// Match tries each arm, in order, against the subject.
type Match struct {
	Subject T
	Arms    []Arm
}

// Callsite applies Function to a single Argument.
type Callsite struct {
	Function T
	Argument T
}

// Tuple constructs a tuple from its items.
type Tuple struct {
	Items []T
}

// Ctor is a reference to a data constructor.
type Ctor struct {
	Name *id.T
}

// Int creates an integer literal.
func Int(n int64) *Literal {
	return &Literal{Kind: IntLiteral, Int: n}
}

// Str creates a string literal.
func Str(s string) *Literal {
	return &Literal{Kind: StrLiteral, Str: s}
}

// Unit creates the unit literal.
func Unit() *Literal {
	return &Literal{Kind: UnitLiteral}
}

// Apply builds a curried chain of callsites.
func Apply(f T, args ...T) T {
	for _, a := range args {
		f = &Callsite{Function: f, Argument: a}
	}

	return f
}

// Curry builds a lambda chain over params.
func Curry(params []*id.T, body T) T {
	for i := len(params) - 1; i >= 0; i-- {
		body = &Lambda{Param: params[i], Body: body}
	}

	return body
}

func (l *Literal) String() string {
	switch l.Kind {
	case IntLiteral:
		if l.Int < 0 {
			return "(" + strconv.FormatInt(l.Int, 10) + ")"
		}

		return strconv.FormatInt(l.Int, 10)
	case StrLiteral:
		return strconv.Quote(l.Str)
	case UnitLiteral:
		return "()"
	}

	return "<literal>"
}

func (i *Ident) String() string {
	if id.IsValid(i.Name.Name()) && !isWord(i.Name.Name()) {
		return "(" + i.Name.Name() + ")"
	}

	return i.Name.Name()
}

func (l *Lambda) String() string {
	return "(" + l.Param.Name() + " -> " + l.Body.String() + ")"
}

func (l *Let) String() string {
	return "(let " + l.Name.Name() + " = " + l.Value.String() + " : " + l.Body.String() + ")"
}

func (m *Match) String() string {
	arms := lo.Map(m.Arms, func(a Arm, _ int) string {
		return a.Pred.String() + " -> " + a.Body.String()
	})

	return "(match " + m.Subject.String() + " { " + strings.Join(arms, "; ") + " })"
}

func (c *Callsite) String() string {
	return "(" + c.Function.String() + " " + c.Argument.String() + ")"
}

func (t *Tuple) String() string {
	return "(" + strings.Join(lo.Map(t.Items, func(i T, _ int) string {
		return i.String()
	}), ", ") + ")"
}

func (c *Ctor) String() string {
	return c.Name.Name()
}

func (*Literal) term()  {}
func (*Ident) term()    {}
func (*Lambda) term()   {}
func (*Let) term()      {}
func (*Match) term()    {}
func (*Callsite) term() {}
func (*Tuple) term()    {}
func (*Ctor) term()     {}

func isWord(s string) bool {
	for _, r := range s {
		return r == '_' || r == '%' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r > 0x7f
	}

	return false
}
