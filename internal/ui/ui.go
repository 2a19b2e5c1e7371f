// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for pita.
package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/pita/internal/system/history"
)

// Options controls an interactive session.
type Options struct {
	Deep    bool
	History string
	Logger  *slog.Logger
	Output  io.Writer
	Prompt  string
}

// Run reads lines from the terminal and passes them to a session until
// the user ends input.
func Run(e Evaluator, opts Options) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetMultiLineMode(true)

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if opts.History != "" {
		if err := history.Load(opts.History, cli.ReadHistory); err != nil {
			logger.Warn("cannot load history", "error", err)
		}
	}

	s := NewSession(e, opts.Output, opts.Deep)

	for {
		prompt := opts.Prompt
		if s.Pending() {
			prompt = continuation(prompt)
		}

		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
			cli.AppendHistory(line)
			s.Feed(line)

			continue
		case errors.Is(err, liner.ErrPromptAborted):
			s.Reset()

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(opts.Output)
		default:
			return err
		}

		break
	}

	if opts.History != "" {
		if err := history.Save(opts.History, cli.WriteHistory); err != nil {
			logger.Warn("cannot save history", "error", err)
		}
	}

	return nil
}

func continuation(prompt string) string {
	b := []rune(prompt)
	for i, r := range b {
		if r != ' ' {
			b[i] = '.'
		}
	}

	return string(b)
}
