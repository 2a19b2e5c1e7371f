// Released under an MIT license. See LICENSE.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/michaelmacinnis/pita/internal/system/options"
)

func execute(t *testing.T, opts *options.T, stdin string) (string, string, int) {
	t.Helper()

	var stdout, stderr strings.Builder

	code := run(opts, strings.NewReader(stdin), &stdout, &stderr)

	return stdout.String(), stderr.String(), code
}

func script(t *testing.T, source string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prog.pita")
	if err := os.WriteFile(path, []byte(source), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return path
}

func TestScript(t *testing.T) {
	opts := &options.T{Settings: options.Defaults()}
	opts.Script = script(t, "add a b = a + b;\nmain = add 2 3;\n")

	out, _, code := execute(t, opts, "")
	if code != 0 || out != "5\n" {
		t.Fatalf("expected 5, got %q (exit %d)", out, code)
	}
}

func TestStdin(t *testing.T) {
	opts := &options.T{Settings: options.Defaults()}

	out, _, code := execute(t, opts, "main = (1, 2);")
	if code != 0 || out != "(1, 2)\n" {
		t.Fatalf("expected (1, 2), got %q (exit %d)", out, code)
	}
}

func TestExpression(t *testing.T) {
	opts := &options.T{Settings: options.Defaults()}
	opts.Expr = "square 9"
	opts.Script = script(t, "square x = x * x;\n")

	out, _, code := execute(t, opts, "")
	if code != 0 || out != "81\n" {
		t.Fatalf("expected 81, got %q (exit %d)", out, code)
	}
}

func TestDeep(t *testing.T) {
	opts := &options.T{Settings: options.Defaults()}
	opts.Deep = true
	opts.Expr = "take 2 (iterate (x -> x + 1) 5)"

	out, _, code := execute(t, opts, "")
	if code != 0 || out != "Cons 5 (Cons 6 Nil)\n" {
		t.Fatalf("expected a fully forced list, got %q (exit %d)", out, code)
	}
}

func TestPreload(t *testing.T) {
	opts := &options.T{Settings: options.Defaults()}
	opts.Preload = []string{script(t, "answer = 42;\n")}

	out, _, code := execute(t, opts, "main = answer;")
	if code != 0 || out != "42\n" {
		t.Fatalf("expected 42, got %q (exit %d)", out, code)
	}
}

func TestFailure(t *testing.T) {
	opts := &options.T{Settings: options.Defaults()}

	_, errs, code := execute(t, opts, "add a b = a + b;")
	if code != 1 || !strings.Contains(errs, "unresolved symbol: main") {
		t.Fatalf("expected missing main, got %q (exit %d)", errs, code)
	}
}
