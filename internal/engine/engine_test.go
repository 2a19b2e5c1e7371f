// Released under an MIT license. See LICENSE.

package engine_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/id"
	"github.com/michaelmacinnis/pita/internal/common/type/term"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
	"github.com/michaelmacinnis/pita/internal/engine"
	"github.com/michaelmacinnis/pita/internal/reader"
)

type program struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Expect string `yaml:"expect"`
	Deep   bool   `yaml:"deep"`
	Fault  string `yaml:"fault"`
}

func load(t *testing.T) []program {
	t.Helper()

	b, err := os.ReadFile("testdata/programs.yaml")
	if err != nil {
		t.Fatalf("reading corpus: %v", err)
	}

	d := yaml.NewDecoder(bytes.NewReader(b))
	d.KnownFields(true)

	var programs []program
	if err := d.Decode(&programs); err != nil {
		t.Fatalf("decoding corpus: %v", err)
	}

	return programs
}

func run(e *engine.T, p program) (string, error) {
	decls, err := reader.Parse(p.Name, p.Source)
	if err != nil {
		return "", err
	}

	v, err := e.Run(decls)
	if err != nil {
		return "", err
	}

	if p.Deep {
		if v, err = e.Normalize(v); err != nil {
			return "", err
		}
	}

	return e.Format(v), nil
}

func TestPrograms(t *testing.T) {
	for _, p := range load(t) {
		p := p

		t.Run(p.Name, func(t *testing.T) {
			s, err := run(engine.New(), p)

			if p.Fault != "" {
				var f *fault.T
				if !errors.As(err, &f) || f.Kind.String() != p.Fault {
					t.Fatalf("expected %s fault, got %v", p.Fault, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if s != p.Expect {
				t.Fatalf("expected %s, got %s", p.Expect, s)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	e := engine.New()

	for _, p := range load(t) {
		first, err1 := run(e, p)
		second, err2 := run(e, p)

		if first != second || (err1 == nil) != (err2 == nil) {
			t.Fatalf("%s: runs differ: %q (%v) and %q (%v)", p.Name, first, err1, second, err2)
		}

		if err1 != nil && err1.Error() != err2.Error() {
			t.Fatalf("%s: errors differ: %v and %v", p.Name, err1, err2)
		}
	}
}

func TestSharing(t *testing.T) {
	calls := 0

	e := engine.New(engine.WithBuiltins(map[string]*value.Builtin{
		"count": value.NewBuiltin("count", 1, func(args []value.I) (value.I, error) {
			calls++

			return args[0], nil
		}),
	}))

	decls, err := reader.Parse("sharing", `
		double x = x + x;
		main = double (count 21);
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := e.Run(decls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v != value.Int(42) {
		t.Fatalf("expected 42, got %s", e.Format(v))
	}

	if calls != 1 {
		t.Fatalf("expected argument to be evaluated once, evaluated %d times", calls)
	}
}

func TestEval(t *testing.T) {
	e := engine.New()

	decls, err := reader.Parse("eval", "square x = x * x;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expr, err := reader.ParseExpr("eval", "square 7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := e.Eval(decls, expr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s := e.Format(v); s != "49" {
		t.Fatalf("expected 49, got %s", s)
	}
}

func TestWithoutPrelude(t *testing.T) {
	e := engine.New(engine.WithoutPrelude())

	decls, err := reader.Parse("bare", "main = id 1;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := e.Run(decls); !fault.Is(err, fault.UnresolvedSymbol) {
		t.Fatalf("expected unresolved symbol, got %v", err)
	}
}

func TestPreload(t *testing.T) {
	lib, err := reader.Parse("lib", "answer = 42;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decls, err := reader.Parse("main", "main = answer;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := engine.New(engine.WithPreload(lib))

	v, err := e.Run(decls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v != value.Int(42) {
		t.Fatalf("expected 42, got %s", e.Format(v))
	}
}

// 100,000 nested curried applications built without the reader.
func TestStackSafety(t *testing.T) {
	const depth = 100000

	plus := &term.Ident{Name: id.Internal("+")}

	body := term.T(term.Int(0))
	for i := 0; i < depth; i++ {
		body = term.Apply(plus, body, term.Int(1))
	}

	decls := []term.Decl{{Name: id.Internal("main"), Body: body}}

	e := engine.New(engine.WithoutPrelude())

	v, err := e.Run(decls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v != value.Int(depth) {
		t.Fatalf("expected %d, got %s", depth, e.Format(v))
	}
}
