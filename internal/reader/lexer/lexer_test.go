// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/michaelmacinnis/pita/internal/common/struct/loc"
	"github.com/michaelmacinnis/pita/internal/common/struct/token"
)

func TestDeclaration(t *testing.T) {
	h := setup(t, "Declaration")

	h.scan("add a b = a + b;",
		h.token(token.Ident, "add", 1),
		h.token(token.Ident, "a", 5),
		h.token(token.Ident, "b", 7),
		h.token(token.Bind, "=", 9),
		h.token(token.Ident, "a", 11),
		h.token(token.Operator, "+", 13),
		h.token(token.Ident, "b", 15),
		h.token(';', ";", 16),
		nil,
	)
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("# Nothing to see.\nmain = 1;\n",
		h.line(2),
		h.token(token.Ident, "main", 1),
		h.token(token.Bind, "=", 6),
		h.token(token.Int, "1", 8),
		h.token(';', ";", 9),
		nil,
	)
}

func TestKeywords(t *testing.T) {
	h := setup(t, "Keywords")

	h.scan("let x = 1 : if x then Yes else No",
		h.token(token.Keyword, "let", 1),
		h.token(token.Ident, "x", 5),
		h.token(token.Bind, "=", 7),
		h.token(token.Int, "1", 9),
		h.token(':', ":", 11),
		h.token(token.Keyword, "if", 13),
		h.token(token.Ident, "x", 16),
		h.token(token.Keyword, "then", 18),
		h.token(token.Ctor, "Yes", 23),
		h.token(token.Keyword, "else", 27),
		h.token(token.Ctor, "No", 32),
		nil,
	)
}

func TestMatch(t *testing.T) {
	h := setup(t, "Match")

	h.scan("match (x, _) { (0, _) -> -1 }",
		h.token(token.Keyword, "match", 1),
		h.token('(', "(", 7),
		h.token(token.Ident, "x", 8),
		h.token(',', ",", 9),
		h.token('_', "_", 11),
		h.token(')', ")", 12),
		h.token('{', "{", 14),
		h.token('(', "(", 16),
		h.token(token.Int, "0", 17),
		h.token(',', ",", 18),
		h.token('_', "_", 20),
		h.token(')', ")", 21),
		h.token(token.Arrow, "->", 23),
		h.token(token.Operator, "-", 26),
		h.token(token.Int, "1", 27),
		h.token('}', "}", 29),
		nil,
	)
}

func TestOperators(t *testing.T) {
	h := setup(t, "Operators")

	for _, op := range []string{
		"!=", "%", "&&", "*", "++", "-", "/", "<", "<=", "==", ">", ">=", "||",
	} {
		h.scan("(" + op + ")",
			h.token('(', "(", 1),
			h.token(token.Operator, op, 2),
			h.token(')', ")", 2+len(op)),
			nil,
		)
	}
}

func TestString(t *testing.T) {
	h := setup(t, "String")

	h.scan(`"tea is \"ready\""`,
		h.token(token.String, `"tea is \"ready\""`, 1),
		nil,
	)
}

func TestUnterminatedString(t *testing.T) {
	h := setup(t, "UnterminatedString")

	h.scan(`"tea is`,
		h.token(token.Error, "unterminated string", 1),
		nil,
	)
}

type harness struct {
	label  string
	lexer  *T
	source loc.T
	t      *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{label: label, t: t}
}

// line moves expected token locations to the start of line n.
func (h *harness) line(n int) *token.T {
	h.source.Line = n

	return skip
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.t.Helper()

	h.lexer = New(h.label)
	h.lexer.Scan(s)

	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == e:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}

	h.source = loc.T{}
}

func (h *harness) token(c token.Class, s string, char int) *token.T {
	line := h.source.Line
	if line == 0 {
		line = 1
	}

	return token.New(c, s, loc.T{Char: char, Line: line, Name: h.label})
}

var skip = &token.T{} //nolint:gochecknoglobals
