// Copyright 2024 The Yatay Authors. All rights reserved.
// This file is part of yatay and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"yatay/internal/diagnostics"
	"yatay/internal/parser"
	"yatay/internal/scanner"
	"yatay/internal/value"
)

func value10() value.Value { return value.Num(10) }

// run scans, parses, and interprets src against a fresh Interpreter, with
// tracing off and both output streams captured so tests can inspect them
// independently.
func run(t *testing.T, src string) (out, errs string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	sink := &diagnostics.Sink{Writer: &errBuf}

	toks := scanner.New(src, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	if sink.HadStaticError() {
		return outBuf.String(), errBuf.String()
	}

	in := New(sink)
	in.Out = &outBuf
	in.Trace = false
	in.Interpret(stmts)
	return outBuf.String(), errBuf.String()
}

func TestArithmeticPrecedenceEndToEnd(t *testing.T) {
	// Scenario 1 from spec §8: 1 + 2 * 3 evaluates to 7.
	var outBuf, errBuf bytes.Buffer
	sink := &diagnostics.Sink{Writer: &errBuf}
	toks := scanner.New("1 + 2 * 3.", sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	in := New(sink)
	in.Out = &outBuf
	in.Interpret(stmts)
	if sink.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %s", errBuf.String())
	}
	if !strings.Contains(outBuf.String(), "evaluada como [ 7 ]") {
		t.Errorf("trace output = %q, want it to contain %q", outBuf.String(), "evaluada como [ 7 ]")
	}
}

func TestVariableDeclarationAndUseEndToEnd(t *testing.T) {
	// Scenario 3 from spec §8: definir x <= 10. x + 1. evaluates to 11.
	var outBuf, errBuf bytes.Buffer
	sink := &diagnostics.Sink{Writer: &errBuf}
	toks := scanner.New("definir x <= 10. x + 1.", sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	in := New(sink)
	in.Out = &outBuf
	in.Interpret(stmts)
	if sink.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %s", errBuf.String())
	}
	if !strings.Contains(outBuf.String(), "evaluada como [ 11 ]") {
		t.Errorf("trace output = %q, want it to contain %q", outBuf.String(), "evaluada como [ 11 ]")
	}
}

func TestRedefinitionIsARuntimeError(t *testing.T) {
	// Scenario 4 from spec §8.
	_, errs := run(t, "definir x <= 1. definir x <= 2.")
	if !strings.Contains(errs, "already defined") {
		t.Errorf("error output = %q, want it to mention %q", errs, "already defined")
	}
}

func TestUndefinedVariableIsARuntimeError(t *testing.T) {
	_, errs := run(t, "x + 1.")
	if !strings.Contains(errs, "not defined in this context") {
		t.Errorf("error output = %q, want it to mention %q", errs, "not defined in this context")
	}
}

func TestDivisionByZeroIsARuntimeError(t *testing.T) {
	// Scenario 5 from spec §8.
	_, errs := run(t, "1 / 0.")
	if !strings.Contains(errs, "divisor must be nonzero") {
		t.Errorf("error output = %q, want it to mention %q", errs, "divisor must be nonzero")
	}
}

func TestDoubleSlashIsFloatingPointRemainder(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	sink := &diagnostics.Sink{Writer: &errBuf}
	toks := scanner.New("7,5 // 2.", sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	in := New(sink)
	in.Out = &outBuf
	in.Interpret(stmts)
	if sink.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %s", errBuf.String())
	}
	if !strings.Contains(outBuf.String(), "evaluada como [ 1.5 ]") {
		t.Errorf("trace output = %q, want it to contain %q", outBuf.String(), "evaluada como [ 1.5 ]")
	}
}

func TestPlusRequiresMatchingOperandKinds(t *testing.T) {
	_, errs := run(t, `1 + "texto".`)
	if !strings.Contains(errs, "numbers or both be text") {
		t.Errorf("error output = %q, want it to mention the mixed-operand message", errs)
	}
}

func TestPlusAcceptsTextConcatenation(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	sink := &diagnostics.Sink{Writer: &errBuf}
	toks := scanner.New(`"hola " + "mundo".`, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	in := New(sink)
	in.Out = &outBuf
	in.Interpret(stmts)
	if sink.HadRuntimeError() {
		t.Fatalf("unexpected runtime error: %s", errBuf.String())
	}
	if !strings.Contains(outBuf.String(), `evaluada como [ "hola mundo" ]`) {
		t.Errorf("trace output = %q, want concatenated text", outBuf.String())
	}
}

func TestComparisonRequiresNumbers(t *testing.T) {
	_, errs := run(t, `"a" < "b".`)
	if !strings.Contains(errs, "operands must be numbers") {
		t.Errorf("error output = %q, want it to mention %q", errs, "operands must be numbers")
	}
}

func TestNoOperatorNegatesTruthiness(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	sink := &diagnostics.Sink{Writer: &errBuf}
	toks := scanner.New("no falso.", sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	in := New(sink)
	in.Out = &outBuf
	in.Interpret(stmts)
	if !strings.Contains(outBuf.String(), "evaluada como [ verdadero ]") {
		t.Errorf("trace output = %q, want %q", outBuf.String(), "evaluada como [ verdadero ]")
	}
}

func TestTraceFlagSuppressesOutput(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	sink := &diagnostics.Sink{Writer: &errBuf}
	toks := scanner.New("1 + 1.", sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	in := New(sink)
	in.Out = &outBuf
	in.Trace = false
	in.Interpret(stmts)
	if outBuf.Len() != 0 {
		t.Errorf("output = %q, want empty with Trace disabled", outBuf.String())
	}
}

func TestEnvironmentDefineSetGet(t *testing.T) {
	env := NewEnvironment()
	if err := env.Define("x", value10()); err != nil {
		t.Fatalf("Define: unexpected error: %v", err)
	}
	if err := env.Define("x", value10()); err == nil {
		t.Fatal("Define: expected error redefining 'x'")
	}
	if _, err := env.Get("x"); err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if _, err := env.Get("y"); err == nil {
		t.Fatal("Get: expected error for undefined 'y'")
	}
	if err := env.Set("x", value10()); err != nil {
		t.Fatalf("Set: unexpected error: %v", err)
	}
	if err := env.Set("y", value10()); err == nil {
		t.Fatal("Set: expected error for undefined 'y'")
	}
}
