// Copyright 2024 The Yatay Authors. All rights reserved.
// This file is part of yatay and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package interpreter

import (
	"fmt"

	"yatay/internal/ast"
	"yatay/internal/token"
)

// printExpr renders an expression node in source-like form for the
// "Expresión [ ... ] evaluada como [ ... ]." trace line (spec §4.3). It is
// a plain recursive switch rather than a visitor, matching the pack's
// preference for an exhaustive match table over virtual dispatch for a
// closed set of node variants (spec §9).
func printExpr(e ast.Expr) string {
	switch x := e.(type) {
	case *ast.Literal:
		return literalValue(x).String()

	case *ast.Grouping:
		return "(" + printExpr(x.Inner) + ")"

	case *ast.Unary:
		if x.Operator.Kind == token.KeywordNo {
			return x.Operator.Lexeme + " " + printExpr(x.Operand)
		}
		return x.Operator.Lexeme + printExpr(x.Operand)

	case *ast.Binary:
		return printExpr(x.Left) + " " + x.Operator.Lexeme + " " + printExpr(x.Right)

	case *ast.VariableAccess:
		return x.Name.Lexeme
	}
	return fmt.Sprintf("<%T>", e)
}
