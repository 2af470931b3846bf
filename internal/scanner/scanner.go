// Copyright 2024 The Yatay Authors. All rights reserved.
// This file is part of yatay and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package scanner implements the lexical scanner for Yatay source text
// (spec §4.1): it turns a UTF-8 source string into an ordered sequence of
// tokens terminated by a single EndOfFile token.
package scanner

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"yatay/internal/diagnostics"
	"yatay/internal/token"
)

// maxExactInteger is the largest magnitude an IEEE-754 double can represent
// without losing integer precision (2^53), the bound spec §4.1 calls "the
// inclusive range of exact integer representation in double precision".
const maxExactInteger = 1 << 53

// Scanner turns source text into tokens. It is not safe for concurrent use
// and is meant to be used once per source string (spec §5).
type Scanner struct {
	sink   *diagnostics.Sink
	src    []rune
	start  int // rune index of the first character of the current token
	cur    int // rune index of the next character to consume
	line   int // 1-based
	tokens []token.Token
}

// New prepares a Scanner over source, reporting errors to sink.
func New(source string, sink *diagnostics.Sink) *Scanner {
	return &Scanner{
		sink: sink,
		src:  []rune(source),
		line: 1,
	}
}

// ScanTokens runs the scanner to completion and returns every token,
// terminated by exactly one EndOfFile token (spec §8 invariant).
func (s *Scanner) ScanTokens() []token.Token {
	for !s.atEnd() {
		s.start = s.cur
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.New(token.EndOfFile, "", s.line))
	return s.tokens
}

func (s *Scanner) atEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) advance() rune {
	r := s.src[s.cur]
	s.cur++
	return r
}

func (s *Scanner) peek() rune {
	if s.atEnd() {
		return 0
	}
	return s.src[s.cur]
}

func (s *Scanner) peekNext() rune {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

// match consumes the next character and reports true if it equals want.
func (s *Scanner) match(want rune) bool {
	if s.atEnd() || s.src[s.cur] != want {
		return false
	}
	s.cur++
	return true
}

func (s *Scanner) lexeme() string { return string(s.src[s.start:s.cur]) }

func (s *Scanner) add(kind token.Kind) {
	s.tokens = append(s.tokens, token.New(kind, s.lexeme(), s.line))
}

func (s *Scanner) addLiteral(kind token.Kind, literal token.Literal) {
	s.tokens = append(s.tokens, token.NewLiteral(kind, s.lexeme(), literal, s.line))
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.add(token.OpeningParenthesis)
	case ')':
		s.add(token.ClosingParenthesis)
	case '[':
		s.add(token.OpeningSquareBracket)
	case ']':
		s.add(token.ClosingSquareBracket)
	case '{':
		s.add(token.OpeningCurlyBrace)
	case '}':
		s.add(token.ClosingCurlyBrace)
	case '.':
		s.add(token.Dot)
	case ',':
		s.add(token.Comma)
	case ';':
		s.add(token.Semicolon)
	case '#':
		s.add(token.Hash)
	case '+':
		s.add(token.Plus)
	case '-':
		s.add(token.Minus)
	case '*':
		s.add(token.Asterisk)

	case '/':
		if s.match('/') {
			s.add(token.DoubleSlash)
		} else {
			s.add(token.Slash)
		}

	case ':':
		if s.match(':') {
			s.lineComment()
		} else {
			s.add(token.Colon)
		}

	case '=':
		if s.match('<') {
			s.add(token.LessOrEqual)
		} else {
			s.add(token.Equal)
		}

	case '>':
		switch {
		case s.match('<'):
			s.add(token.Unequal)
		case s.match('='):
			s.add(token.GreaterOrEqual)
		default:
			s.add(token.Greater)
		}

	case '<':
		if s.match('=') {
			s.add(token.Assign)
		} else {
			s.add(token.Less)
		}

	case ' ', '\r', '\t':
		// skip

	case '\n':
		s.line++

	case '"':
		s.scanString()

	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isIdentStart(c):
			s.scanIdentifier()
		default:
			s.sink.ScanError(s.line, "unrecognized character '"+string(c)+"'")
		}
	}
}

// lineComment discards characters up to (but not including) the next
// newline or end of source, after the opening "::" has been consumed.
func (s *Scanner) lineComment() {
	for s.peek() != '\n' && !s.atEnd() {
		s.advance()
	}
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.atEnd() && s.peek() != '\n' {
		s.advance()
	}

	if s.atEnd() || s.peek() == '\n' {
		s.sink.ScanError(s.line, "closing quotation mark not found")
		return
	}

	// the substring between the quotes, excluding them
	value := string(s.src[s.start+1 : s.cur])
	s.advance() // the closing '"'
	s.addLiteral(token.String, value)
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isIdentStart(c rune) bool {
	if c == '_' {
		return true
	}
	lower := unicode.ToLower(c)
	if lower >= 'a' && lower <= 'z' {
		return true
	}
	switch lower {
	case 'á', 'é', 'í', 'ó', 'ú', 'ü', 'ñ':
		return true
	}
	return false
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}

func (s *Scanner) scanIdentifier() {
	for isIdentPart(s.peek()) {
		s.advance()
	}
	lit := s.lexeme()
	s.add(token.Lookup(lit))
}

// scanNumber consumes a number literal per spec §4.1: an integer part of
// digits optionally underscore-separated, and an optional ',' fractional
// part of the same shape. It reports, but does not abort on, malformed
// separators; a malformed literal simply produces no Number token, mirroring
// the string-literal failure discipline in this scanner.
func (s *Scanner) scanNumber() {
	// scanToken already consumed the leading digit before dispatching here.
	ok := s.digitRun(true)

	if s.peek() == ',' && (isDigit(s.peekNext()) || s.peekNext() == '_') {
		s.advance() // ','
		if !s.digitRun(false) {
			ok = false
		}
	}

	lit := s.lexeme()
	if !ok {
		return
	}

	normalized := strings.ReplaceAll(strings.ReplaceAll(lit, "_", ""), ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		s.sink.ScanError(s.line, "malformed number literal")
		return
	}

	if math.Abs(value) > maxExactInteger {
		s.sink.ScanError(s.line, "magnitude too large to represent in memory")
		return
	}

	s.addLiteral(token.Number, value)
}

// digitRun consumes a run of digits possibly separated by single
// underscores. leadingDigitConsumed is true for the integer part, whose
// first digit the caller (scanToken) already consumed before recognizing
// this as a number at all. It validates the underscore-placement rules and
// returns whether the run was well-formed.
func (s *Scanner) digitRun(leadingDigitConsumed bool) bool {
	ok := true
	sawDigit := leadingDigitConsumed
	lastWasUnderscore := false

	for {
		c := s.peek()
		switch {
		case isDigit(c):
			s.advance()
			sawDigit = true
			lastWasUnderscore = false
		case c == '_':
			if lastWasUnderscore {
				s.sink.ScanError(s.line, "no two consecutive underscores")
				ok = false
			}
			if !sawDigit {
				s.sink.ScanError(s.line, "underscore must separate digits")
				ok = false
			}
			s.advance()
			lastWasUnderscore = true
		default:
			if lastWasUnderscore {
				s.sink.ScanError(s.line, "trailing underscore in number literal")
				ok = false
			}
			return ok
		}
	}
}
