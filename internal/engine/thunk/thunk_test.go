// Released under an MIT license. See LICENSE.

package thunk

import (
	"testing"

	"github.com/michaelmacinnis/pita/internal/common/fault"
	"github.com/michaelmacinnis/pita/internal/common/type/term"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
)

func TestLifecycle(t *testing.T) {
	a := New()

	th := a.Suspend(term.Int(1), nil)

	if s := a.State(th.Ref); s != Unforced {
		t.Fatalf("expected unforced, got %s", s)
	}

	code, _, err := a.Begin(th.Ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if code.String() != "1" {
		t.Fatalf("expected code 1, got %s", code)
	}

	if _, _, err := a.Begin(th.Ref); !fault.Is(err, fault.Loop) {
		t.Fatalf("expected loop, got %v", err)
	}

	a.Fill(th.Ref, value.Int(1))

	v, ok := a.Memo(th.Ref)
	if !ok || v != value.Int(1) {
		t.Fatalf("expected memo 1, got %v", v)
	}

	if s := a.State(th.Ref); s != Forced {
		t.Fatalf("expected forced, got %s", s)
	}
}

func TestAbandon(t *testing.T) {
	a := New()

	th := a.Suspend(term.Int(1), nil)

	if _, _, err := a.Begin(th.Ref); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a.Abandon(th.Ref)

	if s := a.State(th.Ref); s != Unforced {
		t.Fatalf("expected unforced, got %s", s)
	}
}

func TestFillTwicePanics(t *testing.T) {
	a := New()

	th := a.Forced(value.Int(1))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a second fill to panic")
		}
	}()

	a.Fill(th.Ref, value.Int(2))
}

func TestFillWithThunkPanics(t *testing.T) {
	a := New()

	th := a.Suspend(term.Int(1), nil)
	other := a.Suspend(term.Int(2), nil)

	_, _, _ = a.Begin(th.Ref)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected filling with a thunk to panic")
		}
	}()

	a.Fill(th.Ref, other)
}
