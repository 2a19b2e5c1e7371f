// Released under an MIT license. See LICENSE.

/*
Pita is a small, lazy, untyped functional language.

A program is a list of declarations. Functions are defined by one or more
clauses that match their arguments against patterns:

	# Clauses are tried in order.
	fact 0 = 1;
	fact n = n * fact (n - 1);

	main = fact 10;

Running a program evaluates main and prints the result. Arguments are only
evaluated when needed and then only once.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/michaelmacinnis/pita/internal/common/type/term"
	"github.com/michaelmacinnis/pita/internal/common/type/value"
	"github.com/michaelmacinnis/pita/internal/engine"
	"github.com/michaelmacinnis/pita/internal/reader"
	"github.com/michaelmacinnis/pita/internal/system/options"
	"github.com/michaelmacinnis/pita/internal/ui"
)

func main() {
	opts, err := options.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	os.Exit(run(opts, os.Stdin, os.Stdout, os.Stderr))
}

func run(opts *options.T, stdin io.Reader, stdout, stderr io.Writer) int {
	switch {
	case opts.Help:
		fmt.Fprint(stdout, options.Usage())

		return 0
	case opts.Version:
		fmt.Fprintln(stdout, options.Version)

		return 0
	}

	level := slog.LevelInfo
	if opts.Trace {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	e, err := configure(opts, logger)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	if opts.Interactive {
		err = ui.Run(e, ui.Options{
			Deep:    opts.Deep,
			History: opts.History,
			Logger:  logger,
			Output:  stdout,
			Prompt:  opts.Prompt,
		})
		if err != nil {
			fmt.Fprintln(stderr, err)

			return 1
		}

		return 0
	}

	v, err := evaluate(e, opts, stdin)
	if err == nil && opts.Deep {
		v, err = e.Normalize(v)
	}

	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	fmt.Fprintln(stdout, e.Format(v))

	return 0
}

func configure(opts *options.T, logger *slog.Logger) (*engine.T, error) {
	eopts := []engine.Option{engine.WithLogger(logger)}

	if !opts.UsePrelude() {
		eopts = append(eopts, engine.WithoutPrelude())
	}

	for _, path := range opts.Preload {
		decls, err := load(path, nil)
		if err != nil {
			return nil, err
		}

		eopts = append(eopts, engine.WithPreload(decls))
	}

	return engine.New(eopts...), nil
}

func evaluate(e *engine.T, opts *options.T, stdin io.Reader) (value.I, error) {
	var decls []term.Decl

	if opts.Script != "" || opts.Expr == "" {
		var err error

		decls, err = load(opts.Script, stdin)
		if err != nil {
			return nil, err
		}
	}

	if opts.Expr == "" {
		return e.Run(decls)
	}

	expr, err := reader.ParseExpr("-e", opts.Expr)
	if err != nil {
		return nil, err
	}

	return e.Eval(decls, expr)
}

// load reads declarations from path, or from stdin if path is empty.
func load(path string, stdin io.Reader) ([]term.Decl, error) {
	var (
		b    []byte
		err  error
		name = path
	)

	if path == "" {
		name = "<stdin>"
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("pita: %w", err)
	}

	return reader.Parse(name, string(b))
}
