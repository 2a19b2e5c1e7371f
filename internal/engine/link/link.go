// Released under an MIT license. See LICENSE.

// Package link turns pita declarations into global bindings.
//
// Clauses with the same name are merged into a single value. A name with no
// parameters becomes a thunk over its body. A name with N parameters becomes
// a chain of N lambdas over synthesized parameters whose body matches the
// tuple of those parameters against each clause's patterns in source order.
package link

import (
	"github.com/samber/lo"

	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/env"
	"github.com/michaelmacinnis/pita/internal/common/type/id"
	"github.com/michaelmacinnis/pita/internal/common/type/term"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
	"github.com/michaelmacinnis/pita/internal/engine/thunk"
)

// Entry is the name of the global evaluated by a program.
const Entry = "main"

// Group is the clauses of a single name in source order.
type Group struct {
	Name    *id.T
	Arity   int
	Clauses []*term.Decl
}

// Groups collects decls by name in order of first appearance. Every clause
// of a name must have the same number of patterns.
func Groups(decls []term.Decl) ([]*Group, error) {
	var groups []*Group

	byName := map[string]*Group{}

	for i := range decls {
		d := &decls[i]
		name := d.Name.Name()

		g, ok := byName[name]
		if !ok {
			g = &Group{Name: d.Name, Arity: len(d.Patterns)}
			byName[name] = g
			groups = append(groups, g)
		}

		if len(d.Patterns) != g.Arity {
			return nil, fault.Newf(fault.InvalidDecl,
				"%s: %s has %d parameters, earlier clause at %s has %d",
				d.Name.Source(), name, len(d.Patterns), g.Name.Source(), g.Arity)
		}

		if g.Arity == 0 && len(g.Clauses) > 0 {
			return nil, fault.Newf(fault.InvalidDecl,
				"%s: %s is already defined at %s", d.Name.Source(), name, g.Name.Source())
		}

		g.Clauses = append(g.Clauses, d)
	}

	return groups, nil
}

// Link binds every name declared in decls in globals. All checks complete
// before anything is bound.
func Link(decls []term.Decl, globals *env.Globals, arena *thunk.Arena) error {
	if globals.Sealed() {
		return fault.New(fault.InvalidDecl, "global scope is already sealed")
	}

	groups, err := Groups(decls)
	if err != nil {
		return err
	}

	scope := env.New(globals)

	for _, g := range groups {
		if err := globals.Bind(g.Name.Name(), g.value(scope, arena)); err != nil {
			return err
		}
	}

	return nil
}

// Program links each group of declarations in turn. A name bound by a later
// group replaces the binding from an earlier group; clauses from different
// groups are never merged.
func Program(globals *env.Globals, arena *thunk.Arena, groups ...[]term.Decl) error {
	for _, decls := range groups {
		if _, err := Groups(decls); err != nil {
			return err
		}
	}

	for _, decls := range groups {
		if err := Link(decls, globals, arena); err != nil {
			return err
		}
	}

	return nil
}

// Term returns the term that the group's clauses are merged into.
func (g *Group) Term() term.T {
	if g.Arity == 0 {
		return g.Clauses[0].Body
	}

	params := make([]*id.T, g.Arity)
	for i := range params {
		params[i] = id.Gensym(i)
	}

	return term.Curry(params, g.match(params))
}

func (g *Group) match(params []*id.T) term.T {
	subject := &term.Tuple{
		Items: lo.Map(params, func(p *id.T, _ int) term.T {
			return &term.Ident{Name: p}
		}),
	}

	arms := lo.Map(g.Clauses, func(d *term.Decl, _ int) term.Arm {
		return term.Arm{Pred: &term.TuplePred{Items: d.Patterns}, Body: d.Body}
	})

	return &term.Match{Subject: subject, Arms: arms}
}

func (g *Group) value(scope value.Scope, arena *thunk.Arena) value.I {
	t := g.Term()

	if l, ok := t.(*term.Lambda); ok {
		return &value.Lambda{Param: l.Param, Body: l.Body, Scope: scope}
	}

	return arena.Suspend(t, scope)
}
