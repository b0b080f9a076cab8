package gen

import (
	"fmt"
	"os"
)

// Appender is an append-only line writer. The file handle stays open for
// the process lifetime; this process is the only writer, so append mode is
// the whole locking discipline.
type Appender struct {
	path string
	f    *os.File
}

// NewAppender opens (or creates) the file at path in append mode.
func NewAppender(path string) (*Appender, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Appender{path: path, f: f}, nil
}

// Append writes one line (a trailing newline is added).
func (a *Appender) Append(line string) error {
	if _, err := fmt.Fprintln(a.f, line); err != nil {
		return fmt.Errorf("appending to %s: %w", a.path, err)
	}
	return nil
}

// Path returns the file path this Appender writes to.
func (a *Appender) Path() string {
	return a.path
}

// Close closes the underlying file.
func (a *Appender) Close() error {
	return a.f.Close()
}
