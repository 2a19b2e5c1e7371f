// Released under an MIT license. See LICENSE.

// Package task provides the machinery used to evaluate pita terms.
//
// A task is a trampolined abstract machine. Every operation performs one
// bounded step and returns the next operation to perform. Continuations are
// kept in an explicit stack of frames so that the depth of the Go stack never
// depends on the program being evaluated.
package task

import (
	"context"
	"log/slog"

	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/term"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
	"github.com/michaelmacinnis/pita/internal/engine/thunk"
)

// T (task) encapsulates a single evaluation machine.
type T struct {
	*registers

	arena   *thunk.Arena
	arities map[string]int
	err     error
	logger  *slog.Logger
	steps   int
}

type task = T

// New creates a new task that allocates thunks in arena. The arities map
// gives the fixed arity of known constructors; all others are open.
func New(arena *thunk.Arena, arities map[string]int, logger *slog.Logger) *task {
	if logger == nil {
		logger = slog.New(discard{})
	}

	return &task{
		registers: &registers{stack: done},
		arena:     arena,
		arities:   arities,
		logger:    logger,
	}
}

// Arena returns the thunk arena used by t.
func (t *task) Arena() *thunk.Arena {
	return t.arena
}

// Eval reduces code in scope to weak head normal form.
func (t *task) Eval(code term.T, scope value.Scope) (value.I, error) {
	t.idle()

	t.code = code
	t.scope = scope
	t.PushOp(Action(reduce))

	return t.Run()
}

// Force reduces v to weak head normal form. Values that are not thunks are
// returned as is.
func (t *task) Force(v value.I) (value.I, error) {
	if value.IsWHNF(v) {
		return v, nil
	}

	t.idle()

	t.result = v
	t.PushOp(Action(force))

	return t.Run()
}

// Run steps through a task's operations until they are exhausted.
func (t *task) Run() (value.I, error) {
	s := t.Op()
	for s != nil {
		s = t.Step(s)
	}

	v, err := t.result, t.err

	t.logger.Debug("run", "steps", t.Steps(), "thunks", t.arena.Len())

	t.code = nil
	t.err = nil
	t.result = nil
	t.scope = nil

	if err != nil {
		return nil, err
	}

	return v, nil
}

// Step performs a single action and determines the next action.
func (t *task) Step(s Op) (op Op) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		f, ok := r.(*fault.T)
		if !ok {
			panic(r)
		}

		t.abort(f)

		op = nil
	}()

	t.steps++

	if t.logger.Enabled(context.Background(), slog.LevelDebug) {
		t.logger.Debug("step",
			"op", opString(s),
			"depth", t.Depth(),
			"code", codeString(t.code),
		)
	}

	return s.Perform(t)
}

// Steps returns the number of steps performed since t was created.
func (t *task) Steps() int {
	return t.steps
}

// abort unwinds the stack after a fault. Any thunk that was being forced
// is returned to the unforced state.
func (t *task) abort(f *fault.T) {
	for p := t.stack; p != done; p = p.stack {
		if u, ok := p.op.(*update); ok {
			t.arena.Abandon(u.ref)
		}
	}

	t.stack = done
	t.depth = 0
	t.err = f

	t.logger.Debug("abort", "fault", f.Kind.String(), "detail", f.Detail)
}

func (t *task) ctor(name string) *value.Ctor {
	if n, ok := t.arities[name]; ok {
		return value.NewCtor(name, n)
	}

	return value.NewCtor(name, value.Open)
}

func (t *task) idle() {
	if !t.Completed() {
		panic("task is already running")
	}
}

// suspend defers the evaluation of code in scope. Literals and bound
// identifiers are already values so no thunk is allocated for them.
func (t *task) suspend(code term.T, scope value.Scope) value.I {
	switch c := code.(type) {
	case *term.Literal:
		return value.FromLiteral(c)
	case *term.Ident:
		if v, ok := scope.Lookup(c.Name.Name()); ok {
			return v
		}
	}

	return t.arena.Suspend(code, scope)
}

func codeString(c term.T) string {
	if c == nil {
		return "<nil>"
	}

	return c.String()
}

type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }
