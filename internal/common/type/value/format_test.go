// Released under an MIT license. See LICENSE.

package value

import (
	"testing"

	"github.com/michaelmacinnis/pita/internal/common/type/id"
)

func TestFormat(t *testing.T) {
	memo := map[Ref]I{1: Int(2)}
	resolve := func(r Ref) (I, bool) {
		v, ok := memo[r]

		return v, ok
	}

	cons := NewCtor("Cons", 2)
	memo[2] = cons.With(Int(1)).With(Thunk{Ref: 2})

	list := cons.With(Int(1)).With(cons.With(Thunk{Ref: 1}).With(Thunk{Ref: 0}))

	tests := []struct {
		value    I
		expected string
	}{
		{Int(-3), "-3"},
		{Str("tea\n"), `"tea\n"`},
		{Unit{}, "()"},
		{Bool(true), "True"},
		{&Lambda{Param: id.Internal("x")}, "<lambda x>"},
		{NewBuiltin("+", 2, nil), "<builtin +>"},
		{NewBuiltin("+", 2, nil).With(Int(1)), "<builtin + 1/2>"},
		{&Tuple{Fields: []I{Int(1), Thunk{Ref: 0}}}, "(1, _)"},
		{list, "Cons 1 (Cons 2 _)"},
		{cons.With(Int(-1)).With(NewCtor("Nil", 0)), "Cons (-1) Nil"},
		{Thunk{Ref: 2}, "Cons 1 ..."},
		{cons.With(Int(0)).With(Thunk{Ref: 2}), "Cons 0 (Cons 1 ...)"},
	}

	for _, tt := range tests {
		if s := Format(tt.value, resolve); s != tt.expected {
			t.Fatalf("expected %s, got %s", tt.expected, s)
		}
	}
}

func TestAccumulatorsCopy(t *testing.T) {
	c := NewCtor("Pair", Open)
	a := c.With(Int(1))
	b := c.With(Int(2))

	if len(c.Fields) != 0 || a.Fields[0] != Int(1) || b.Fields[0] != Int(2) {
		t.Fatalf("expected With to leave its receiver unchanged")
	}

	if a.Full() {
		t.Fatalf("expected open constructor to accept more fields")
	}

	if !Bool(false).Full() {
		t.Fatalf("expected False to be full")
	}
}
