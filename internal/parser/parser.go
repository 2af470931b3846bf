// Copyright 2024 The Yatay Authors. All rights reserved.
// This file is part of yatay and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package parser implements the recursive-descent parser described in spec
// §4.2: it consumes a token sequence and produces an ordered sequence of
// statement nodes, or reports parse errors with panic-mode recovery.
package parser

import (
	"yatay/internal/ast"
	"yatay/internal/diagnostics"
	"yatay/internal/token"
)

// parseError is the sentinel panic value used to unwind out of a partially
// parsed declaration and into synchronize(), mirroring cue/parser's
// panicking/recover bail-out (see DESIGN.md).
type parseError struct{}

// Parser turns a token sequence into a sequence of statement nodes.
type Parser struct {
	sink   *diagnostics.Sink
	tokens []token.Token
	cur    int
}

// New prepares a Parser over tokens, reporting errors to sink.
func New(tokens []token.Token, sink *diagnostics.Sink) *Parser {
	return &Parser{sink: sink, tokens: tokens}
}

// Parse runs the parser to completion (spec §4.2 "program"). A declaration
// that fails to parse is dropped; parsing resumes at the next likely
// statement boundary.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// declaration := varDecl | statement
func (p *Parser) declaration() (stmt ast.Stmt) {
	start := p.cur
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			// A declaration that failed on its very first token must still
			// consume it, or the next declaration would fail on it again.
			if p.cur == start {
				p.advance()
			}
			p.synchronize()
			stmt = nil
		}
	}()

	if p.match(token.KeywordDefinir) {
		return p.varDeclaration()
	}
	return p.statement()
}

// varDecl := "definir" IDENT ("<=" expression)? "."
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "expected a variable name")

	var init ast.Expr
	if p.match(token.Assign) {
		init = p.expression()
	}

	p.consume(token.Dot, "expected '.' after variable declaration")
	return &ast.VariableDeclaration{Name: name, Initializer: init}
}

// statement := expression "."
func (p *Parser) statement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Dot, "expected '.' after statement")
	return &ast.ExpressionStatement{Expression: expr}
}

// expression := comparison
func (p *Parser) expression() ast.Expr {
	return p.comparison()
}

// comparison := term ( ("=" | "><" | "<" | "=<" | ">" | ">=") term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Equal, token.Unequal, token.Less, token.LessOrEqual, token.Greater, token.GreaterOrEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// term := factor ( ("+" | "-") factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// factor := unary ( ("*" | "/" | "//") unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Asterisk, token.Slash, token.DoubleSlash) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// unary := ("-" | "no") unary | primary
func (p *Parser) unary() ast.Expr {
	if p.match(token.Minus, token.KeywordNo) {
		op := p.previous()
		operand := p.unary()
		return &ast.Unary{Operator: op, Operand: operand}
	}
	return p.primary()
}

// primary := "verdadero" | "falso" | NUMBER | STRING
//          | IDENT | "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.KeywordVerdadero):
		return &ast.Literal{Value: true, Kind: token.KeywordVerdadero}
	case p.match(token.KeywordFalso):
		return &ast.Literal{Value: false, Kind: token.KeywordFalso}
	case p.match(token.Number):
		t := p.previous()
		return &ast.Literal{Value: t.Literal, Kind: token.Number}
	case p.match(token.String):
		t := p.previous()
		return &ast.Literal{Value: t.Literal, Kind: token.String}
	case p.match(token.Identifier):
		return &ast.VariableAccess{Name: p.previous()}
	case p.match(token.OpeningParenthesis):
		expr := p.expression()
		p.consume(token.ClosingParenthesis, "expected ')' after expression")
		return &ast.Grouping{Inner: expr}
	}

	panic(p.errorAt(p.peek(), "expected an expression"))
}

// ---- token stream helpers ----

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.cur++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool { return p.peek().Kind == token.EndOfFile }

func (p *Parser) peek() token.Token { return p.tokens[p.cur] }

func (p *Parser) previous() token.Token { return p.tokens[p.cur-1] }

// consume requires the current token to have kind, or raises a parse error.
// The parser never silently accepts a substitute (spec §4.2).
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt reports a parse error at tok through the diagnostics sink and
// returns the sentinel panic value to unwind to declaration()'s recover.
func (p *Parser) errorAt(tok token.Token, message string) parseError {
	location := "\"" + tok.Lexeme + "\""
	if tok.Kind == token.EndOfFile {
		location = "el final"
	}
	p.sink.ParseError(tok.Line, location, message)
	return parseError{}
}

// synchronize discards tokens until either the previously consumed token
// was '.' or the current token is one of the statement-starter keywords
// (spec §4.2).
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.previous().Kind == token.Dot {
			return
		}
		if token.StatementStarters[p.peek().Kind] {
			return
		}
		p.advance()
	}
}
