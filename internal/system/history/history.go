// Released under an MIT license. See LICENSE.

// Package history keeps the interactive session's history between runs.
//
// The history file is locked while it is read or written so that
// concurrent sessions do not interleave their writes.
package history

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Path returns the default location of the history file.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".pita_history")
}

// Load calls read with the contents of the history file at path.
// A missing file is not an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	defer f.Close()

	if err := lock(f, false); err != nil {
		return fmt.Errorf("history: %w", err)
	}

	defer unlock(f) //nolint:errcheck

	_, err = read(f)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	return nil
}

// Save replaces the contents of the history file at path with whatever
// write produces.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	if err := lock(f, true); err != nil {
		f.Close()

		return fmt.Errorf("history: %w", err)
	}

	err = f.Truncate(0)
	if err == nil {
		_, err = write(f)
	}

	_ = unlock(f)

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	return nil
}
