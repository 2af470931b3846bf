// Copyright 2024 The Yatay Authors. All rights reserved.
// This file is part of yatay and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package diagnostics

import (
	"bytes"
	"os"
	"testing"
)

func TestScanErrorSetsStaticFlagAndFormats(t *testing.T) {
	var buf bytes.Buffer
	sink := &Sink{Writer: &buf}

	sink.ScanError(3, "unrecognized character '@'")

	if !sink.HadStaticError() {
		t.Error("HadStaticError() = false, want true")
	}
	if sink.HadRuntimeError() {
		t.Error("HadRuntimeError() = true, want false")
	}
	want := "[Línea 3] Error: unrecognized character '@'\n"
	if got := buf.String(); got != want {
		t.Errorf("ScanError output = %q, want %q", got, want)
	}
}

func TestParseErrorFormatsLocation(t *testing.T) {
	var buf bytes.Buffer
	sink := &Sink{Writer: &buf}

	sink.ParseError(5, `"y"`, "expected '.' after expression")

	want := `[Línea 5] Error en "y": expected '.' after expression` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("ParseError output = %q, want %q", got, want)
	}
	if !sink.HadStaticError() {
		t.Error("HadStaticError() = false, want true")
	}
}

func TestRuntimeErrorSetsRuntimeFlagOnly(t *testing.T) {
	var buf bytes.Buffer
	sink := &Sink{Writer: &buf}

	sink.RuntimeError(7, "divisor must be nonzero")

	if sink.HadStaticError() {
		t.Error("HadStaticError() = true, want false")
	}
	if !sink.HadRuntimeError() {
		t.Error("HadRuntimeError() = false, want true")
	}
	want := "[Línea 7] Error: divisor must be nonzero\n"
	if got := buf.String(); got != want {
		t.Errorf("RuntimeError output = %q, want %q", got, want)
	}
}

func TestResetClearsBothFlags(t *testing.T) {
	var buf bytes.Buffer
	sink := &Sink{Writer: &buf}

	sink.ScanError(1, "x")
	sink.RuntimeError(2, "y")
	sink.Reset()

	if sink.HadStaticError() || sink.HadRuntimeError() {
		t.Error("Reset() did not clear both flags")
	}
}

func TestNewSinkDefaultsToStderr(t *testing.T) {
	sink := NewSink()
	if sink.Writer != os.Stderr {
		t.Fatalf("NewSink(): Writer = %v, want os.Stderr", sink.Writer)
	}
	if sink.HadStaticError() || sink.HadRuntimeError() {
		t.Error("NewSink(): flags should start false")
	}
}
