// Released under an MIT license. See LICENSE.

package term

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/michaelmacinnis/pita/internal/common/type/id"
)

// Predicate is a pattern used to test and destructure a forced value.
type Predicate interface {
	String() string

	predicate()
}

// Irrefutable always matches and binds Name to the unevaluated value.
type Irrefutable struct {
	Name *id.T
}

// IntPred matches an integer equal to N.
type IntPred struct {
	N int64
}

// TuplePred matches a tuple with the same number of items.
type TuplePred struct {
	Items []Predicate
}

// CtorPred matches a constructor instance named Name.
type CtorPred struct {
	Name  *id.T
	Items []Predicate
}

// Decl is a single clause of a global definition.
type Decl struct {
	Name     *id.T
	Patterns []Predicate
	Body     T
}

func (i *Irrefutable) String() string {
	return i.Name.Name()
}

func (i *IntPred) String() string {
	return strconv.FormatInt(i.N, 10)
}

func (t *TuplePred) String() string {
	return "(" + strings.Join(predicateStrings(t.Items), ", ") + ")"
}

func (c *CtorPred) String() string {
	if len(c.Items) == 0 {
		return c.Name.Name()
	}

	return "(" + c.Name.Name() + " " + strings.Join(predicateStrings(c.Items), " ") + ")"
}

func (d *Decl) String() string {
	s := d.Name.Name()
	if !isWord(s) {
		s = "(" + s + ")"
	}

	for _, p := range d.Patterns {
		s += " " + p.String()
	}

	return s + " = " + d.Body.String() + ";"
}

func (*Irrefutable) predicate() {}
func (*IntPred) predicate()     {}
func (*TuplePred) predicate()   {}
func (*CtorPred) predicate()    {}

func predicateStrings(ps []Predicate) []string {
	return lo.Map(ps, func(p Predicate, _ int) string {
		return p.String()
	})
}
