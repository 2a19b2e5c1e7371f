// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the pita language.
//
// The pita lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/michaelmacinnis/pita/internal/common/struct/loc"
	"github.com/michaelmacinnis/pita/internal/common/struct/token"
	"github.com/michaelmacinnis/pita/internal/common/type/id"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	state action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

// Characters that can appear in an operator.
const operators = "!$%&*+-./:<=>?@\\^|~"

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens <- token.New(c, v, l.source)
	l.skip()
}

func (l *T) fail(msg string) action {
	l.tokens <- token.New(token.Error, msg, l.source)

	return nil
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func scanInt(l *T) action {
	for {
		r, w := l.peek()
		if !isDigit(r) {
			l.emit(token.Int, l.Text())

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanOperator(l *T) action {
	for {
		r, w := l.peek()
		if r == eof || !strings.ContainsRune(operators, rune(r)) {
			break
		}

		l.accept(r, w)
	}

	s := l.Text()

	switch s {
	case "->":
		l.emit(token.Arrow, s)
	case "=":
		l.emit(token.Bind, s)
	case ":":
		l.emit(':', s)
	default:
		if lo.Contains(id.Keywords, s) {
			l.emit(token.Keyword, s)
		} else {
			l.emit(token.Operator, s)
		}
	}

	return skipWhitespace
}

func scanString(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof, '\n':
			return l.fail("unterminated string")
		case '"':
			l.emit(token.String, l.Text())

			return skipWhitespace
		case '\\':
			if e := l.next(); e == eof || e == '\n' {
				return l.fail("unterminated string")
			}
		}
	}
}

func scanWord(l *T) action {
	for {
		r, w := l.peek()
		if r == eof || !isWord(r) {
			break
		}

		l.accept(r, w)
	}

	s := l.Text()

	switch {
	case s == "_":
		l.emit('_', s)
	case lo.Contains(id.Keywords, s):
		l.emit(token.Keyword, s)
	case id.IsCtor(s):
		l.emit(token.Ctor, s)
	default:
		l.emit(token.Ident, s)
	}

	return skipWhitespace
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			l.accept(r, w)
			l.skip()

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n', '\t', '\r', ' ':
			l.accept(r, w)
			l.skip()

			continue
		case '#':
			return skipComment
		case '(', ')', ',', ';', '{', '}':
			l.accept(r, w)
			l.emit(r, l.Text())

			return skipWhitespace
		case '"':
			l.accept(r, w)

			return scanString
		}

		switch {
		case isDigit(r):
			return scanInt
		case isWord(r):
			return scanWord
		case strings.ContainsRune(operators, rune(r)):
			return scanOperator
		}

		l.accept(r, w)

		return l.fail("unexpected character " + l.Text())
	}
}

// Helper functions.

func isDigit(r token.Class) bool {
	return r >= '0' && r <= '9'
}

func isWord(r token.Class) bool {
	c := rune(r)

	return c == '_' || c == '\'' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
