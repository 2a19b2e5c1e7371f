// Released under an MIT license. See LICENSE.

package value

import (
	"strconv"
	"strings"
)

// Resolver returns the memoized value for a thunk, if it has been forced.
type Resolver func(r Ref) (I, bool)

// Format returns a printable representation of v. Forced thunks are shown
// as their memoized value, unforced thunks as "_". A forced thunk that
// contains itself is shown as "..." where it repeats.
func Format(v I, resolve Resolver) string {
	p := &printer{resolve: resolve, active: map[Ref]bool{}}

	p.format(v, false)

	return p.String()
}

type printer struct {
	strings.Builder

	active  map[Ref]bool // Thunks being printed.
	resolve Resolver
}

func (p *printer) format(v I, nested bool) {
	b := &p.Builder

	switch v := v.(type) {
	case Int:
		if nested && v < 0 {
			b.WriteString("(" + strconv.FormatInt(int64(v), 10) + ")")

			return
		}

		b.WriteString(strconv.FormatInt(int64(v), 10))
	case Str:
		b.WriteString(strconv.Quote(string(v)))
	case Unit:
		b.WriteString("()")
	case *Lambda:
		b.WriteString("<lambda " + v.Param.Name() + ">")
	case *Builtin:
		b.WriteString("<builtin " + v.Label)
		if len(v.Args) > 0 {
			b.WriteString(" " + strconv.Itoa(len(v.Args)) + "/" + strconv.Itoa(v.Arity))
		}
		b.WriteString(">")
	case *Tuple:
		b.WriteString("(")
		for i, f := range v.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			p.format(f, false)
		}
		b.WriteString(")")
	case *Ctor:
		if len(v.Fields) == 0 {
			b.WriteString(v.Tag)

			return
		}

		if nested {
			b.WriteString("(")
		}

		b.WriteString(v.Tag)

		for _, f := range v.Fields {
			b.WriteString(" ")
			p.format(f, true)
		}

		if nested {
			b.WriteString(")")
		}
	case Thunk:
		if p.active[v.Ref] {
			b.WriteString("...")

			return
		}

		if p.resolve != nil {
			if m, ok := p.resolve(v.Ref); ok {
				p.active[v.Ref] = true
				p.format(m, nested)
				delete(p.active, v.Ref)

				return
			}
		}

		b.WriteString("_")
	default:
		b.WriteString("<" + v.Name() + ">")
	}
}
