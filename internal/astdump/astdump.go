// Copyright 2024 The Yatay Authors. All rights reserved.
// This file is part of yatay and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package astdump turns a parsed program into a plain, comparable tree so
// tests can check parser output by shape instead of by pointer identity or
// line number, the way cue/parser's tests diff ast.Node values with
// go-cmp rather than asserting on formatted source.
package astdump

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"yatay/internal/ast"
	"yatay/internal/token"
)

// Node is a position-free rendering of one ast.Expr or ast.Stmt. Two Nodes
// compare equal under cmp.Diff iff the underlying trees have the same
// shape, operators, and literal values — line numbers and token identity
// are deliberately left out.
type Node struct {
	Kind     string
	Lexeme   string // operator lexeme, identifier name; empty for literals
	Literal  token.Literal
	Children []Node
}

// Stmts renders a whole program for golden comparison.
func Stmts(stmts []ast.Stmt) []Node {
	nodes := make([]Node, len(stmts))
	for i, s := range stmts {
		nodes[i] = Stmt(s)
	}
	return nodes
}

// Stmt renders a single statement node.
func Stmt(s ast.Stmt) Node {
	switch x := s.(type) {
	case *ast.ExpressionStatement:
		return Node{Kind: "ExpressionStatement", Children: []Node{Expr(x.Expression)}}

	case *ast.VariableDeclaration:
		n := Node{Kind: "VariableDeclaration", Lexeme: x.Name.Lexeme}
		if x.Initializer != nil {
			n.Children = []Node{Expr(x.Initializer)}
		}
		return n

	default:
		return Node{Kind: fmt.Sprintf("<unknown stmt %T>", s)}
	}
}

// Expr renders a single expression node.
func Expr(e ast.Expr) Node {
	switch x := e.(type) {
	case *ast.Literal:
		return Node{Kind: "Literal", Literal: x.Value}

	case *ast.Grouping:
		return Node{Kind: "Grouping", Children: []Node{Expr(x.Inner)}}

	case *ast.Unary:
		return Node{Kind: "Unary", Lexeme: x.Operator.Lexeme, Children: []Node{Expr(x.Operand)}}

	case *ast.Binary:
		return Node{
			Kind:     "Binary",
			Lexeme:   x.Operator.Lexeme,
			Children: []Node{Expr(x.Left), Expr(x.Right)},
		}

	case *ast.VariableAccess:
		return Node{Kind: "VariableAccess", Lexeme: x.Name.Lexeme}

	default:
		return Node{Kind: fmt.Sprintf("<unknown expr %T>", e)}
	}
}

// Diff reports the structural difference between two statement slices, or
// "" if they describe the same tree. It is a thin wrapper over cmp.Diff so
// callers don't need to import go-cmp themselves just to compare programs.
func Diff(want, got []ast.Stmt) string {
	return cmp.Diff(Stmts(want), Stmts(got))
}
