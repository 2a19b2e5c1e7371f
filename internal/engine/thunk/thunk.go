// Released under an MIT license. See LICENSE.

// Package thunk provides the arena of suspended computations used for
// call-by-need evaluation.
//
// Every thunk is a record addressed by a stable index. A value.Thunk only
// carries the index, so every copy of it shares the same memo cell.
package thunk

import (
	"fmt"

	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/term"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
)

// State is a thunk's position in its Unforced -> Forcing -> Forced life.
type State int

// Thunk states.
const (
	Unforced State = iota
	Forcing
	Forced
)

func (s State) String() string {
	switch s {
	case Unforced:
		return "unforced"
	case Forcing:
		return "forcing"
	case Forced:
		return "forced"
	}

	return "unknown"
}

// Record is a suspended term, the scope it was captured in, and its memo.
type Record struct {
	Code  term.T
	Scope value.Scope
	State State
	Memo  value.I
}

// Arena holds every thunk created during a run.
type Arena struct {
	records []Record
}

// New creates an empty arena.
func New() *Arena {
	return &Arena{}
}

// Suspend creates an unforced thunk over code captured in scope.
func (a *Arena) Suspend(code term.T, scope value.Scope) value.Thunk {
	a.records = append(a.records, Record{Code: code, Scope: scope})

	return value.Thunk{Ref: value.Ref(len(a.records) - 1)}
}

// Forced creates a thunk whose memo cell is already filled with v.
func (a *Arena) Forced(v value.I) value.Thunk {
	a.records = append(a.records, Record{State: Forced, Memo: v})

	return value.Thunk{Ref: value.Ref(len(a.records) - 1)}
}

// Begin marks the thunk r as being forced and returns its code and scope.
// Forcing a thunk that is already being forced is a fault.
func (a *Arena) Begin(r value.Ref) (term.T, value.Scope, error) {
	rec := a.get(r)

	switch rec.State {
	case Unforced:
		rec.State = Forcing

		return rec.Code, rec.Scope, nil
	case Forcing:
		return nil, nil, fault.Newf(fault.Loop, "thunk %d (%s) depends on its own value", r, rec.Code)
	case Forced:
	}

	panic(fmt.Sprintf("thunk %d has already been forced", r))
}

// Abandon returns a thunk that was being forced to the unforced state.
// It is used when an evaluation is aborted part way through.
func (a *Arena) Abandon(r value.Ref) {
	rec := a.get(r)
	if rec.State == Forcing {
		rec.State = Unforced
	}
}

// Fill writes the value v into the memo cell of r. Each cell is written
// once; the code and scope are released afterwards.
func (a *Arena) Fill(r value.Ref, v value.I) {
	rec := a.get(r)
	if rec.State != Forcing {
		panic(fmt.Sprintf("thunk %d filled while %s", r, rec.State))
	}

	if !value.IsWHNF(v) {
		panic(fmt.Sprintf("thunk %d filled with a thunk", r))
	}

	rec.Code = nil
	rec.Memo = v
	rec.Scope = nil
	rec.State = Forced
}

// Len returns the number of thunks created so far.
func (a *Arena) Len() int {
	return len(a.records)
}

// Memo returns the memoized value of r, if r has been forced.
func (a *Arena) Memo(r value.Ref) (value.I, bool) {
	rec := a.get(r)
	if rec.State != Forced {
		return nil, false
	}

	return rec.Memo, true
}

// State returns the current state of r.
func (a *Arena) State(r value.Ref) State {
	return a.get(r).State
}

func (a *Arena) get(r value.Ref) *Record {
	if r < 0 || int(r) >= len(a.records) {
		panic(fmt.Sprintf("invalid thunk reference %d", r))
	}

	return &a.records[r]
}
