// Released under an MIT license. See LICENSE.

// Package match provides pita's structural pattern matcher.
//
// The matcher never evaluates anything itself. When it needs to inspect the
// shape of a field that is still an unforced thunk it stops and reports the
// thunk so that the evaluator can force it and then try again. Forced thunks
// are read from their memo cells, so a retried match picks up where the
// previous attempt stopped.
package match

import (
	"fmt"
	"strconv"

	"github.com/michaelmacinnis/pita/internal/common/type/term"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
)

// Outcome is the result of matching a single predicate.
type Outcome int

// Outcomes.
const (
	Matched Outcome = iota
	Failed
	Mismatch
	NeedsForce
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Failed:
		return "failed"
	case Mismatch:
		return "mismatch"
	case NeedsForce:
		return "needs force"
	}

	return "unknown"
}

// Memo provides access to the memo cells of forced thunks.
type Memo interface {
	Memo(r value.Ref) (value.I, bool)
}

// Result describes the outcome of a match attempt.
type Result struct {
	Outcome

	Detail string      // Why a mismatch occurred.
	Ref    value.Ref   // The thunk to force, for NeedsForce.
	Scope  value.Scope // The extended scope, for Matched.
}

// Pattern matches the predicate p against v. On success the returned scope
// is s extended with the predicate's bindings. On any other outcome no
// bindings are retained.
func Pattern(p term.Predicate, v value.I, s value.Scope, m Memo) Result {
	work := []item{{p, v}}

	for len(work) > 0 {
		i := work[len(work)-1]
		work = work[:len(work)-1]

		if irrefutable, ok := i.pred.(*term.Irrefutable); ok {
			if name := irrefutable.Name.Name(); name != "_" {
				s = s.Extend(name, i.value)
			}

			continue
		}

		w := i.value
		if t, ok := w.(value.Thunk); ok {
			memo, forced := m.Memo(t.Ref)
			if !forced {
				return Result{Outcome: NeedsForce, Ref: t.Ref}
			}

			w = memo
		}

		var r Result

		work, r = step(work, i.pred, w)
		if r.Outcome != Matched {
			return r
		}
	}

	return Result{Outcome: Matched, Scope: s}
}

type item struct {
	pred  term.Predicate
	value value.I
}

// step checks the shape of w against p and queues any sub-predicates so
// that they are matched left to right.
func step(work []item, p term.Predicate, w value.I) ([]item, Result) {
	switch p := p.(type) {
	case *term.IntPred:
		n, ok := w.(value.Int)
		if !ok {
			return work, mismatch("expected integer %s, got %s", p.String(), w)
		}

		if int64(n) != p.N {
			return work, Result{Outcome: Failed}
		}
	case *term.TuplePred:
		t, ok := w.(*value.Tuple)
		if !ok {
			return work, mismatch("expected tuple %s, got %s", p.String(), w)
		}

		if len(t.Fields) != len(p.Items) {
			return work, mismatch("expected tuple %s, got %s", p.String(), w)
		}

		work = push(work, p.Items, t.Fields)
	case *term.CtorPred:
		c, ok := w.(*value.Ctor)
		if !ok {
			return work, mismatch("expected constructor %s, got %s", p.String(), w)
		}

		if c.Tag != p.Name.Name() {
			return work, Result{Outcome: Failed}
		}

		if len(c.Fields) != len(p.Items) {
			return work, mismatch("expected constructor %s, got %s", p.String(), w)
		}

		work = push(work, p.Items, c.Fields)
	case *term.Irrefutable:
	}

	return work, Result{Outcome: Matched}
}

func mismatch(format, pattern string, w value.I) Result {
	return Result{Outcome: Mismatch, Detail: fmt.Sprintf(format, pattern, describe(w))}
}

func describe(w value.I) string {
	switch w := w.(type) {
	case *value.Tuple:
		return "tuple of " + strconv.Itoa(len(w.Fields))
	case *value.Ctor:
		return "constructor " + w.Tag + "/" + strconv.Itoa(len(w.Fields))
	case value.Int:
		return "integer " + strconv.FormatInt(int64(w), 10)
	}

	return w.Name()
}

func push(work []item, ps []term.Predicate, vs []value.I) []item {
	for j := len(ps) - 1; j >= 0; j-- {
		work = append(work, item{ps[j], vs[j]})
	}

	return work
}
