// Copyright 2024 The Yatay Authors. All rights reserved.
// This file is part of yatay and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package diagnostics implements the shared error reporter threaded through
// the scanner, parser, and interpreter (spec §3, §6.3, §7): the "Diagnostics
// sink" owned by the driver.
package diagnostics

import (
	"fmt"
	"io"
	"os"
)

// Sink collects and formats diagnostics and tracks the two monotonic flags
// spec §3 calls the "Diagnostics state".
type Sink struct {
	// Writer receives formatted diagnostic lines. Defaults to os.Stderr.
	Writer io.Writer

	hadStaticError  bool
	hadRuntimeError bool
}

// NewSink returns a Sink writing to os.Stderr, ready for one run.
func NewSink() *Sink {
	return &Sink{Writer: os.Stderr}
}

// HadStaticError reports whether a scan or parse error was reported since
// the last Reset.
func (s *Sink) HadStaticError() bool { return s.hadStaticError }

// HadRuntimeError reports whether a runtime error was reported since the
// last Reset.
func (s *Sink) HadRuntimeError() bool { return s.hadRuntimeError }

// Reset clears both flags, as required between independent runs (spec §3).
func (s *Sink) Reset() {
	s.hadStaticError = false
	s.hadRuntimeError = false
}

func (s *Sink) writer() io.Writer {
	if s.Writer != nil {
		return s.Writer
	}
	return os.Stderr
}

// ScanError reports a scanning error at the given line (spec §4.1, §7).
// Scanning continues; only the flag is set.
func (s *Sink) ScanError(line int, message string) {
	s.hadStaticError = true
	fmt.Fprintf(s.writer(), "[Línea %d] Error: %s\n", line, message)
}

// ParseError reports a parse error located at a token. location is either
// "el final" (for an EOF token) or the token's lexeme in quotes, per spec
// §4.2/§6.3.
func (s *Sink) ParseError(line int, location, message string) {
	s.hadStaticError = true
	fmt.Fprintf(s.writer(), "[Línea %d] Error en %s: %s\n", line, location, message)
}

// RuntimeError reports a runtime error at the offending token's line (spec
// §4.3, §7). Execution halts; only the flag is set here, the caller stops
// the interpreter loop.
func (s *Sink) RuntimeError(line int, message string) {
	s.hadRuntimeError = true
	fmt.Fprintf(s.writer(), "[Línea %d] Error: %s\n", line, message)
}
