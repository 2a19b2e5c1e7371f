// Released under an MIT license. See LICENSE.

package options

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArguments(t *testing.T) {
	tests := []struct {
		argv     []string
		terminal bool
		check    func(o *T) bool
	}{
		{[]string{"prog.pita"}, true, func(o *T) bool {
			return o.Script == "prog.pita" && !o.Interactive && o.UsePrelude()
		}},
		{[]string{"-e", "1 + 2"}, true, func(o *T) bool {
			return o.Expr == "1 + 2" && o.Script == "" && !o.Interactive
		}},
		{[]string{"-e", "main", "prog.pita"}, false, func(o *T) bool {
			return o.Expr == "main" && o.Script == "prog.pita"
		}},
		{[]string{}, true, func(o *T) bool {
			return o.Interactive
		}},
		{[]string{}, false, func(o *T) bool {
			return !o.Interactive
		}},
		{[]string{"-i"}, false, func(o *T) bool {
			return o.Interactive
		}},
		{[]string{"--deep", "--trace", "--no-prelude", "prog.pita"}, false, func(o *T) bool {
			return o.Deep && o.Trace && !o.UsePrelude()
		}},
		{[]string{"-h"}, false, func(o *T) bool {
			return o.Help
		}},
		{[]string{"-v"}, false, func(o *T) bool {
			return o.Version
		}},
	}

	for _, tt := range tests {
		o, err := parse(tt.argv, tt.terminal)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.argv, err)
		}

		if !tt.check(o) {
			t.Fatalf("%v: unexpected options %+v", tt.argv, o)
		}
	}
}

func TestSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pita.yaml")

	err := os.WriteFile(path, []byte(strings.Join([]string{
		"prompt: 'λ '",
		"deep: true",
		"prelude: false",
		"preload:",
		"  - lib.pita",
	}, "\n")), 0o600)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o, err := parse([]string{"--config", path, "prog.pita"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.Prompt != "λ " || !o.Deep || o.UsePrelude() || len(o.Preload) != 1 || o.Preload[0] != "lib.pita" {
		t.Fatalf("unexpected settings %+v", o.Settings)
	}

	if o.History == "" && Defaults().History != "" {
		t.Fatalf("expected unset fields to keep their defaults")
	}
}

func TestUnknownSetting(t *testing.T) {
	s := Defaults()

	err := Load(strings.NewReader("colour: blue\n"), &s)
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("expected invalid settings, got %v", err)
	}
}

func TestEmptySettings(t *testing.T) {
	s := Defaults()

	if err := Load(strings.NewReader(""), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Prompt != Defaults().Prompt {
		t.Fatalf("expected defaults to be kept, got %+v", s)
	}
}
