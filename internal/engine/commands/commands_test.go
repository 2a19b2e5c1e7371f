// Released under an MIT license. See LICENSE.

package commands_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
	"github.com/michaelmacinnis/pita/internal/engine/commands"
)

func call(t *testing.T, label string, args ...value.I) (value.I, error) {
	t.Helper()

	b, ok := commands.Builtins(nil)[label]
	if !ok {
		t.Fatalf("no builtin named %s", label)
	}

	if b.Arity != len(args) {
		t.Fatalf("%s expects %d arguments, test passed %d", label, b.Arity, len(args))
	}

	return b.Fn(args)
}

func TestBuiltins(t *testing.T) {
	tests := []struct {
		label    string
		args     []value.I
		expected string
	}{
		{"+", []value.I{value.Int(2), value.Int(3)}, "5"},
		{"-", []value.I{value.Int(2), value.Int(3)}, "-1"},
		{"*", []value.I{value.Int(6), value.Int(7)}, "42"},
		{"/", []value.I{value.Int(7), value.Int(2)}, "3"},
		{"%", []value.I{value.Int(7), value.Int(2)}, "1"},
		{"negate", []value.I{value.Int(7)}, "-7"},
		{"==", []value.I{value.Int(1), value.Int(1)}, "True"},
		{"!=", []value.I{value.Int(1), value.Int(1)}, "False"},
		{"<", []value.I{value.Str("a"), value.Str("b")}, "True"},
		{"<=", []value.I{value.Int(2), value.Int(1)}, "False"},
		{">", []value.I{value.Int(2), value.Int(1)}, "True"},
		{">=", []value.I{value.Str("a"), value.Str("a")}, "True"},
		{"++", []value.I{value.Str("tea "), value.Str("is ready")}, `"tea is ready"`},
		{"length", []value.I{value.Str("héllo")}, "5"},
		{"lower", []value.I{value.Str("PITA")}, `"pita"`},
		{"upper", []value.I{value.Str("pita")}, `"PITA"`},
		{"show", []value.I{value.Int(42)}, `"42"`},
		{"show", []value.I{value.Unit{}}, `"()"`},
		{"glob", []value.I{value.Str("*.go"), value.Str("main.go")}, "True"},
		{"glob", []value.I{value.Str("*.go"), value.Str("main.c")}, "False"},
	}

	for _, tt := range tests {
		v, err := call(t, tt.label, tt.args...)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.label, err)
		}

		if s := value.Format(v, nil); s != tt.expected {
			t.Fatalf("%s: expected %s, got %s", tt.label, tt.expected, s)
		}
	}
}

func TestInvalidCallsite(t *testing.T) {
	tests := []struct {
		label string
		args  []value.I
	}{
		{"+", []value.I{value.Int(1), value.Str("1")}},
		{"/", []value.I{value.Int(1), value.Int(0)}},
		{"%", []value.I{value.Int(1), value.Int(0)}},
		{"==", []value.I{value.Int(1), value.Str("1")}},
		{"++", []value.I{value.Str("a"), value.Int(1)}},
		{"show", []value.I{value.Bool(true)}},
	}

	for _, tt := range tests {
		_, err := call(t, tt.label, tt.args...)
		if !fault.Is(err, fault.InvalidCallsite) {
			t.Fatalf("%s: expected invalid callsite, got %v", tt.label, err)
		}
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))

	v, err := commands.Builtins(logger)["trace"].Fn([]value.I{value.Str("here"), value.Int(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v != value.Int(1) {
		t.Fatalf("expected trace to return its second argument, got %v", v)
	}

	if !strings.Contains(buf.String(), "msg=here") {
		t.Fatalf("expected trace message in log, got %q", buf.String())
	}
}
