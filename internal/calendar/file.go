package calendar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extension is appended to file names that lack it
const Extension = ".ics"

// ErrIO is the sentinel wrapped by every IOError.
var ErrIO = errors.New("calendar file")

// IOError reports a failure to place the document on disk
type IOError struct {
	Path string
	Op   string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", ErrIO, e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// WriteFile writes content to dir/name, appending .ics when name lacks it,
// and returns the absolute path of the written file.
func WriteFile(dir, name, content string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", &IOError{Path: dir, Op: "expand", Err: err}
		}
		dir = filepath.Join(home, dir[2:])
	}
	if !strings.EqualFold(filepath.Ext(name), Extension) {
		name += Extension
	}

	path, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return "", &IOError{Path: name, Op: "resolve", Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", &IOError{Path: filepath.Dir(path), Op: "mkdir", Err: err}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", &IOError{Path: path, Op: "open", Err: err}
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close() // nolint:errcheck
		return "", &IOError{Path: path, Op: "write", Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &IOError{Path: path, Op: "close", Err: err}
	}

	return path, nil
}
