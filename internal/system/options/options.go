// Released under an MIT license. See LICENSE.

// Package options reads pita's command-line options and settings file.
package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/michaelmacinnis/pita/internal/system/history"
)

// Version is pita's version.
const Version = "pita 0.1.0"

//nolint:gochecknoglobals
var usage = `pita

Usage:
  pita [options] SCRIPT
  pita [options] -e EXPR [SCRIPT]
  pita [options] [-i]
  pita -h
  pita -v

Arguments:
  SCRIPT  Path to a pita program. The program's main is evaluated.

Options:
  -c, --config=FILE   Read settings from FILE.
  -d, --deep          Force the whole result before printing it.
  -e, --eval=EXPR     Evaluate EXPR using the declarations in SCRIPT.
  -i, --interactive   Start an interactive session.
  -n, --no-prelude    Do not link the prelude.
  -t, --trace         Log each evaluation step to stderr.
  -h, --help          Display this help.
  -v, --version       Print pita version.

If pita's stdin is a TTY, and pita was invoked with no script or expression,
an interactive session is started. Otherwise, with no script, the program is
read from stdin.
`

// ErrConfig is the cause of any failure to read the settings file.
var ErrConfig = errors.New("invalid settings")

// Settings can be read from a YAML file.
type Settings struct {
	Deep    bool     `yaml:"deep"`
	History string   `yaml:"history"`
	Prelude *bool    `yaml:"prelude"`
	Preload []string `yaml:"preload"`
	Prompt  string   `yaml:"prompt"`
	Trace   bool     `yaml:"trace"`
}

// T (options) holds the result of combining settings and arguments.
type T struct {
	Settings

	Expr        string
	Help        bool
	Interactive bool
	Script      string
	Version     bool
}

type options = T

// Defaults returns pita's default settings.
func Defaults() Settings {
	return Settings{
		History: history.Path(),
		Prompt:  "pita> ",
	}
}

// Parse reads the arguments in argv, not including the program name.
func Parse(argv []string) (*options, error) {
	fd := os.Stdin.Fd()

	return parse(argv, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// Usage returns pita's usage message.
func Usage() string {
	return usage
}

// Load reads settings from the YAML in r, on top of s. Unknown fields are
// an error.
func Load(r io.Reader, s *Settings) error {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	err := d.Decode(s)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return nil
}

// UsePrelude returns true unless the prelude has been disabled.
func (s *Settings) UsePrelude() bool {
	return s.Prelude == nil || *s.Prelude
}

func parse(argv []string, terminal bool) (*options, error) {
	p := &docopt.Parser{
		HelpHandler:   docopt.NoHelpHandler,
		SkipHelpFlags: true,
	}

	opts, err := p.ParseArgs(usage, argv, "")
	if err != nil {
		return nil, fmt.Errorf("%w\n\n%s", err, usage)
	}

	o := &options{Settings: Defaults()}

	o.Help, _ = opts.Bool("--help")
	o.Version, _ = opts.Bool("--version")

	if o.Help || o.Version {
		return o, nil
	}

	if path, _ := opts.String("--config"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfig, err)
		}

		if err := Load(bytes.NewReader(b), &o.Settings); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	o.Expr, _ = opts.String("--eval")
	o.Script, _ = opts.String("SCRIPT")

	if deep, _ := opts.Bool("--deep"); deep {
		o.Deep = true
	}

	if trace, _ := opts.Bool("--trace"); trace {
		o.Trace = true
	}

	if off, _ := opts.Bool("--no-prelude"); off {
		o.Prelude = new(bool)
	}

	o.Interactive, _ = opts.Bool("--interactive")
	if o.Script == "" && o.Expr == "" && terminal {
		o.Interactive = true
	}

	return o, nil
}
