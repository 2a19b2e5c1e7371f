// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed pita code.
package engine

import (
	"log/slog"

	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/env"
	"github.com/michaelmacinnis/pita/internal/common/type/term"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
	"github.com/michaelmacinnis/pita/internal/engine/boot"
	"github.com/michaelmacinnis/pita/internal/engine/commands"
	"github.com/michaelmacinnis/pita/internal/engine/link"
	"github.com/michaelmacinnis/pita/internal/engine/task"
	"github.com/michaelmacinnis/pita/internal/engine/thunk"
	"github.com/michaelmacinnis/pita/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating pita code.
//
// Each call to Run or Eval links a fresh global scope and thunk arena.
// Values returned by the most recent call can be passed to Normalize and
// Format until the next call.
type T struct {
	arities  map[string]int
	arena    *thunk.Arena
	builtins map[string]*value.Builtin
	logger   *slog.Logger
	preload  [][]term.Decl
	prelude  bool
	task     *task.T
}

type engine = T

// Option configures an engine.
type Option func(*engine)

// WithBuiltins adds builtins, replacing any with the same name.
func WithBuiltins(bs map[string]*value.Builtin) Option {
	return func(e *engine) {
		for k, b := range bs {
			e.builtins[k] = b
		}
	}
}

// WithLogger sets the logger used for tracing and the trace builtin.
func WithLogger(l *slog.Logger) Option {
	return func(e *engine) {
		e.logger = l
	}
}

// WithPreload links decls after the prelude and before every program.
func WithPreload(decls []term.Decl) Option {
	return func(e *engine) {
		e.preload = append(e.preload, decls)
	}
}

// WithoutPrelude stops the prelude from being linked.
func WithoutPrelude() Option {
	return func(e *engine) {
		e.prelude = false
	}
}

// New creates a new engine.
func New(opts ...Option) *engine {
	e := &engine{
		arities:  commands.Constructors(),
		builtins: map[string]*value.Builtin{},
		logger:   slog.Default(),
		prelude:  true,
	}

	for _, opt := range opts {
		opt(e)
	}

	for k, b := range commands.Builtins(e.logger) {
		if _, ok := e.builtins[k]; !ok {
			e.builtins[k] = b
		}
	}

	if e.prelude {
		decls, err := reader.Parse(boot.Name, boot.Script())
		if err != nil {
			panic(err.Error())
		}

		e.preload = append([][]term.Decl{decls}, e.preload...)
	}

	return e
}

// Eval links decls and reduces expr, in the resulting global scope, to
// weak head normal form.
func (e *engine) Eval(decls []term.Decl, expr term.T) (value.I, error) {
	scope, err := e.link(decls)
	if err != nil {
		return nil, err
	}

	return e.task.Eval(expr, scope)
}

// Format returns a printable representation of v. Fields that have been
// forced are shown as their values.
func (e *engine) Format(v value.I) string {
	if e.arena == nil {
		return value.Format(v, nil)
	}

	return value.Format(v, e.arena.Memo)
}

// Normalize forces every field nested inside v. Forced values are written
// to memo cells, so Format shows the fully evaluated value afterwards.
// Each thunk is visited once, so cyclic structures are fine, but
// normalizing an infinite structure does not terminate.
func (e *engine) Normalize(v value.I) (value.I, error) {
	root, err := e.force(v)
	if err != nil {
		return nil, err
	}

	seen := map[value.Ref]bool{}
	if th, ok := v.(value.Thunk); ok {
		seen[th.Ref] = true
	}

	work := []value.I{root}

	for len(work) > 0 {
		w := work[len(work)-1]
		work = work[:len(work)-1]

		var fields []value.I

		switch w := w.(type) {
		case *value.Ctor:
			fields = w.Fields
		case *value.Tuple:
			fields = w.Fields
		}

		for i := len(fields) - 1; i >= 0; i-- {
			if th, ok := fields[i].(value.Thunk); ok {
				if seen[th.Ref] {
					continue
				}

				seen[th.Ref] = true
			}

			f, err := e.force(fields[i])
			if err != nil {
				return nil, err
			}

			work = append(work, f)
		}
	}

	return root, nil
}

// Run links decls and evaluates the global main to weak head normal form.
func (e *engine) Run(decls []term.Decl) (value.I, error) {
	scope, err := e.link(decls)
	if err != nil {
		return nil, err
	}

	v, ok := scope.Lookup(link.Entry)
	if !ok {
		return nil, fault.Unresolved(link.Entry)
	}

	return e.task.Force(v)
}

func (e *engine) force(v value.I) (value.I, error) {
	if value.IsWHNF(v) {
		return v, nil
	}

	if e.task == nil {
		panic("forcing a thunk before anything has been linked")
	}

	return e.task.Force(v)
}

func (e *engine) link(decls []term.Decl) (value.Scope, error) {
	globals := env.NewGlobals()

	for k, b := range e.builtins {
		if err := globals.Bind(k, b); err != nil {
			return nil, err
		}
	}

	e.arena = thunk.New()
	e.task = task.New(e.arena, e.arities, e.logger)

	groups := append(append([][]term.Decl{}, e.preload...), decls)

	if err := link.Program(globals, e.arena, groups...); err != nil {
		return nil, err
	}

	globals.Seal()

	e.logger.Debug("linked", "globals", len(globals.Names()))

	return env.New(globals), nil
}
