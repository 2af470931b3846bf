// Copyright 2024 The Yatay Authors. All rights reserved.
// This file is part of yatay and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package ast defines the expression and statement node variants produced
// by the parser (spec §3) and walked by the interpreter.
package ast

import "yatay/internal/token"

// Expr is implemented by every expression node variant.
type Expr interface {
	aExpr()
}

// Stmt is implemented by every statement node variant.
type Stmt interface {
	aStmt()
}

type expr struct{}

func (expr) aExpr() {}

type stmt struct{}

func (stmt) aStmt() {}

// Literal holds one already-resolved value: a number, a string, or one of
// the boolean keywords.
type Literal struct {
	Value token.Literal // bool (for the boolean keywords), float64, or string
	Kind  token.Kind    // token.Number, token.String, token.KeywordVerdadero, or token.KeywordFalso
	expr
}

// Grouping is a parenthesized expression: "(" expression ")".
type Grouping struct {
	Inner Expr
	expr
}

// Unary is a prefix operator applied to one operand: "-" or "no".
type Unary struct {
	Operator token.Token
	Operand  Expr
	expr
}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
	expr
}

// VariableAccess reads the value bound to an identifier.
type VariableAccess struct {
	Name token.Token
	expr
}

// ExpressionStatement evaluates an expression for its side effect (the
// trace line emitted by the interpreter; spec §4.3).
type ExpressionStatement struct {
	Expression Expr
	stmt
}

// VariableDeclaration introduces a new binding in the current environment.
// Initializer is nil when the declaration has no "<=" initializer, in which
// case the bound value is value.Nil (spec §4.3).
type VariableDeclaration struct {
	Name        token.Token
	Initializer Expr // nil means no initializer
	stmt
}
