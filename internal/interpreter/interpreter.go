// Copyright 2024 The Yatay Authors. All rights reserved.
// This file is part of yatay and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package interpreter implements the tree-walking interpreter described in
// spec §4.3: it evaluates a program's statements in order against a single
// Environment (spec §4.4), producing output and possibly a runtime error.
package interpreter

import (
	"fmt"
	"io"
	"math"
	"os"

	"yatay/internal/ast"
	"yatay/internal/diagnostics"
	"yatay/internal/token"
	"yatay/internal/value"
)

// runtimeError is the single unwinding signal used to abort the remaining
// statements of a program on a runtime error (spec §7: "propagate through
// the evaluation stack as a single unwinding signal caught once at
// interpret's entry"), mirroring cue/parser's panic/recover bail-out
// adapted to the interpreter's evaluation stack instead of the parser's
// token stream.
type runtimeError struct {
	line    int
	message string
}

func (e *runtimeError) Error() string { return e.message }

func fail(line int, format string, args ...any) {
	panic(&runtimeError{line: line, message: fmt.Sprintf(format, args...)})
}

// Interpreter walks a program's statements against a single Environment.
type Interpreter struct {
	env  *Environment
	sink *diagnostics.Sink

	// Out receives the observable line-based output (spec §1). Defaults to
	// os.Stdout.
	Out io.Writer

	// Trace controls whether ExpressionStatement evaluation emits the
	// "Expresión [ ... ] evaluada como [ ... ]." debug line (spec §4.3,
	// §9 Open Questions — "surface it as a configurable switch"). Default
	// true, matching the behavior observed in the source.
	Trace bool
}

// New returns an Interpreter with a fresh Environment (spec §3: "a fresh
// environment is created per interpreter instance").
func New(sink *diagnostics.Sink) *Interpreter {
	return &Interpreter{
		env:   NewEnvironment(),
		sink:  sink,
		Out:   os.Stdout,
		Trace: true,
	}
}

// Interpret evaluates stmts in order. A runtime error aborts the remaining
// statements; it is reported to the diagnostics sink exactly once and
// Interpret returns cleanly (spec §4.3, §7).
func (in *Interpreter) Interpret(stmts []ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(*runtimeError)
			if !ok {
				panic(r)
			}
			in.sink.RuntimeError(rerr.line, rerr.message)
		}
	}()

	for _, stmt := range stmts {
		in.execute(stmt)
	}
}

func (in *Interpreter) execute(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		v := in.evaluate(s.Expression)
		if in.Trace {
			fmt.Fprintf(in.Out, "Expresión [ %s ] evaluada como [ %s ].\n", printExpr(s.Expression), v.String())
		}

	case *ast.VariableDeclaration:
		v := value.Nil
		if s.Initializer != nil {
			v = in.evaluate(s.Initializer)
		}
		if err := in.env.Define(s.Name.Lexeme, v); err != nil {
			fail(s.Name.Line, "%s", err.Error())
		}

	default:
		panic(fmt.Sprintf("interpreter: unhandled statement type %T", stmt))
	}
}

func (in *Interpreter) evaluate(expr ast.Expr) value.Value {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e)

	case *ast.Grouping:
		return in.evaluate(e.Inner)

	case *ast.VariableAccess:
		v, err := in.env.Get(e.Name.Lexeme)
		if err != nil {
			fail(e.Name.Line, "%s", err.Error())
		}
		return v

	case *ast.Unary:
		return in.evaluateUnary(e)

	case *ast.Binary:
		return in.evaluateBinary(e)
	}

	panic(fmt.Sprintf("interpreter: unhandled expression type %T", expr))
}

func literalValue(lit *ast.Literal) value.Value {
	switch lit.Kind {
	case token.KeywordVerdadero:
		return value.Bool(true)
	case token.KeywordFalso:
		return value.Bool(false)
	case token.Number:
		return value.Num(lit.Value.(float64))
	case token.String:
		return value.Str(lit.Value.(string))
	}
	return value.Nil
}

func (in *Interpreter) evaluateUnary(e *ast.Unary) value.Value {
	operand := in.evaluate(e.Operand)

	switch e.Operator.Kind {
	case token.Minus:
		if !operand.IsNumber() {
			fail(e.Operator.Line, "operand must be a number")
		}
		return value.Num(-operand.AsNumber())

	case token.KeywordNo:
		return value.Bool(!operand.Truthy())
	}

	panic(fmt.Sprintf("interpreter: unhandled unary operator %v", e.Operator.Kind))
}

func (in *Interpreter) evaluateBinary(e *ast.Binary) value.Value {
	left := in.evaluate(e.Left)
	right := in.evaluate(e.Right)
	line := e.Operator.Line

	switch e.Operator.Kind {
	case token.Equal:
		return value.Bool(left.Equal(right))
	case token.Unequal:
		return value.Bool(!left.Equal(right))

	case token.Less:
		return value.Bool(mustNumber(left, right, line) && left.AsNumber() < right.AsNumber())
	case token.LessOrEqual:
		return value.Bool(mustNumber(left, right, line) && left.AsNumber() <= right.AsNumber())
	case token.Greater:
		return value.Bool(mustNumber(left, right, line) && left.AsNumber() > right.AsNumber())
	case token.GreaterOrEqual:
		return value.Bool(mustNumber(left, right, line) && left.AsNumber() >= right.AsNumber())

	case token.Plus:
		switch {
		case left.IsNumber() && right.IsNumber():
			return value.Num(left.AsNumber() + right.AsNumber())
		case left.IsText() && right.IsText():
			return value.Str(left.AsText() + right.AsText())
		default:
			fail(line, "operands must both be numbers or both be text")
		}

	case token.Minus:
		requireNumbers(left, right, line)
		return value.Num(left.AsNumber() - right.AsNumber())

	case token.Asterisk:
		requireNumbers(left, right, line)
		return value.Num(left.AsNumber() * right.AsNumber())

	case token.Slash:
		requireNumbers(left, right, line)
		if right.AsNumber() == 0 {
			fail(line, "divisor must be nonzero")
		}
		return value.Num(left.AsNumber() / right.AsNumber())

	case token.DoubleSlash:
		// Grammatically labeled integer division; implemented as remainder
		// to match observable behavior (spec §4.3, §9 Open Questions).
		requireNumbers(left, right, line)
		return value.Num(math.Mod(left.AsNumber(), right.AsNumber()))
	}

	panic(fmt.Sprintf("interpreter: unhandled binary operator %v", e.Operator.Kind))
}

// requireNumbers aborts evaluation unless both operands are numbers.
func requireNumbers(left, right value.Value, line int) {
	if !left.IsNumber() || !right.IsNumber() {
		fail(line, "operands must be numbers")
	}
}

// mustNumber is requireNumbers spelled as a predicate, for use inline in
// the comparison cases above; it still aborts evaluation on failure.
func mustNumber(left, right value.Value, line int) bool {
	requireNumbers(left, right, line)
	return true
}
