// Package glintio centralizes the streams and terminal capabilities used by
// glint's boundary printers and the pretty-help theme. The core resolver
// never writes; only Run / RunAndExit go through an IOManager.
package glintio

import (
	"io"
	"os"
)

// IOManager holds the streams and the color policy for an application
type IOManager struct {
	in  io.Reader
	out io.Writer
	err io.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio
func New() *IOManager {
	return &IOManager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *IOManager) WithIn(r io.Reader) *IOManager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w io.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w io.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *IOManager) ColorAuto() *IOManager { m.noColor = false; m.forceColor = false; return m }

// In returns the input reader
func (m *IOManager) In() io.Reader { return m.in }

// Out returns the standard output writer
func (m *IOManager) Out() io.Writer { return m.out }

// Err returns the standard error writer
func (m *IOManager) Err() io.Writer { return m.err }

// ColorEnabled reports whether styled output should be emitted. Forced
// settings win; otherwise NO_COLOR, a dumb terminal, or a redirected stdout
// disable color.
func (m *IOManager) ColorEnabled() bool {
	if m.forceColor {
		return true
	}
	if m.noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	if f, ok := m.out.(*os.File); ok {
		info, err := f.Stat()
		if err != nil {
			return false
		}
		return info.Mode()&os.ModeCharDevice != 0
	}
	return false
}
