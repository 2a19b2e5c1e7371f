// Released under an MIT license. See LICENSE.

// Package env provides pita's two-tier lexical environment.
//
// The global scope is built once by the linker and sealed. Local bindings
// live in a persistent hash array mapped trie so that extending a scope
// never disturbs anyone else holding the original.
package env

import (
	"errors"
	"hash/fnv"
	"sort"

	"github.com/raviqqe/hamt"

	"github.com/michaelmacinnis/pita/internal/common/type/value"
)

// ErrSealed is returned when binding a global after linking has completed.
var ErrSealed = errors.New("global scope is sealed")

// Globals is the single shared global scope.
type Globals struct {
	bindings map[string]value.I
	sealed   bool
}

// NewGlobals creates an empty, unsealed, global scope.
func NewGlobals() *Globals {
	return &Globals{bindings: map[string]value.I{}}
}

// Bind associates the name k with the value v. It fails once g is sealed.
func (g *Globals) Bind(k string, v value.I) error {
	if g.sealed {
		return ErrSealed
	}

	g.bindings[k] = v

	return nil
}

// Names returns the sorted list of global names.
func (g *Globals) Names() []string {
	names := make([]string, 0, len(g.bindings))
	for k := range g.bindings {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Seal prevents any further global bindings.
func (g *Globals) Seal() {
	g.sealed = true
}

// Sealed returns true if g has been sealed.
func (g *Globals) Sealed() bool {
	return g.sealed
}

// T (env) is a persistent local scope in front of the global scope.
type T struct {
	globals *Globals
	locals  hamt.Map
}

type env = T

// New creates a scope with no local bindings.
func New(g *Globals) *env {
	return &env{globals: g, locals: hamt.NewMap()}
}

// Extend returns a new scope where k is bound to v. The scope e is unchanged.
func (e *env) Extend(k string, v value.I) value.Scope {
	return &env{globals: e.globals, locals: e.locals.Insert(key(k), v)}
}

// Lookup retrieves the value bound to k, looking in local scope first.
func (e *env) Lookup(k string) (value.I, bool) {
	if v := e.locals.Find(key(k)); v != nil {
		return v.(value.I), true
	}

	v, ok := e.globals.bindings[k]

	return v, ok
}

// Size returns the number of local bindings.
func (e *env) Size() int {
	return e.locals.Size()
}

// The key type is a local name that can be stored in a hamt.Map.
type key string

func (k key) Equal(e hamt.Entry) bool {
	o, ok := e.(key)

	return ok && o == k
}

func (k key) Hash() uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(k))

	return h.Sum32()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a scope.
	_ = value.Scope(&t)
}
