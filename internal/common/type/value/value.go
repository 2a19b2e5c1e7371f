// Released under an MIT license. See LICENSE.

// Package value defines pita's runtime values.
//
// Values form a closed set. Every consumer switches over the concrete types
// listed here; nothing outside this package can add to them. A value is in
// weak head normal form unless it is a Thunk. Fields inside tuples and
// constructor instances may still be thunks.
package value

import (
	"github.com/michaelmacinnis/pita/internal/common/type/id"
	"github.com/michaelmacinnis/pita/internal/common/type/term"
)

// I (value) is the interface satisfied by every runtime value.
type I interface {
	Name() string

	value()
}

// Scope is the interface for environments captured by closures and thunks.
type Scope interface {
	Extend(k string, v I) Scope
	Lookup(k string) (I, bool)
}

// Ref is the stable index of a thunk record.
type Ref int

// Open is the arity of a constructor that accepts any number of fields.
const Open = -1

// Int is an integer literal.
type Int int64

// Str is a string literal.
type Str string

// Unit is the empty literal.
type Unit struct{}

// Lambda is a closure over the scope where it was created.
type Lambda struct {
	Param *id.T
	Body  term.T
	Scope Scope
}

// Ctor is a constructor instance. Fields accumulate as it is applied.
type Ctor struct {
	Tag    string
	Arity  int
	Fields []I
}

// Tuple is a tuple instance.
type Tuple struct {
	Fields []I
}

// Thunk is a suspended computation. Every copy of a Thunk with the same Ref
// shares one memo cell.
type Thunk struct {
	Ref Ref
}

// Func is the native function contract for builtins.
type Func func(args []I) (I, error)

// Builtin is a strict native function. Args holds the arguments supplied so
// far; the function is called once Arity arguments are present.
type Builtin struct {
	Arity int
	Args  []I
	Fn    Func
	Label string
}

// FromLiteral converts a literal term to its value.
func FromLiteral(l *term.Literal) I {
	switch l.Kind {
	case term.IntLiteral:
		return Int(l.Int)
	case term.StrLiteral:
		return Str(l.Str)
	case term.UnitLiteral:
		return Unit{}
	}

	panic("unknown literal kind")
}

// NewBuiltin creates a builtin that expects arity arguments.
func NewBuiltin(label string, arity int, fn Func) *Builtin {
	return &Builtin{Arity: arity, Fn: fn, Label: label}
}

// NewCtor creates a constructor instance with no fields.
func NewCtor(name string, arity int) *Ctor {
	return &Ctor{Tag: name, Arity: arity}
}

// Bool returns the nullary True or False constructor.
func Bool(b bool) *Ctor {
	if b {
		return NewCtor("True", 0)
	}

	return NewCtor("False", 0)
}

// IsWHNF returns true if v is not a thunk.
func IsWHNF(v I) bool {
	_, ok := v.(Thunk)

	return !ok
}

// Methods specific to builtin.

// Saturated returns true if the builtin has all of its arguments.
func (b *Builtin) Saturated() bool {
	return len(b.Args) >= b.Arity
}

// With returns a copy of b with the argument a appended.
func (b *Builtin) With(a I) *Builtin {
	args := make([]I, len(b.Args), len(b.Args)+1)
	copy(args, b.Args)

	return &Builtin{Arity: b.Arity, Args: append(args, a), Fn: b.Fn, Label: b.Label}
}

// Methods specific to ctor.

// Full returns true if no more fields can be attached.
func (c *Ctor) Full() bool {
	return c.Arity != Open && len(c.Fields) >= c.Arity
}

// With returns a copy of c with the field f appended.
func (c *Ctor) With(f I) *Ctor {
	fields := make([]I, len(c.Fields), len(c.Fields)+1)
	copy(fields, c.Fields)

	return &Ctor{Tag: c.Tag, Arity: c.Arity, Fields: append(fields, f)}
}

// Name returns the type name of the value.
func (Int) Name() string      { return "integer" }
func (Str) Name() string      { return "string" }
func (Unit) Name() string     { return "unit" }
func (*Lambda) Name() string  { return "lambda" }
func (*Ctor) Name() string    { return "constructor" }
func (*Tuple) Name() string   { return "tuple" }
func (Thunk) Name() string    { return "thunk" }
func (*Builtin) Name() string { return "builtin" }

func (Int) value()      {}
func (Str) value()      {}
func (Unit) value()     {}
func (*Lambda) value()  {}
func (*Ctor) value()    {}
func (*Tuple) value()   {}
func (Thunk) value()    {}
func (*Builtin) value() {}
