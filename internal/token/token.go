// Copyright 2024 The Yatay Authors. All rights reserved.
// This file is part of yatay and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package token defines the lexical token kinds produced by the scanner and
// consumed by the parser.
package token

import "strconv"

// Kind identifies the lexical class of a Token.
type Kind uint8

const (
	_ Kind = iota

	OpeningParenthesis    // (
	ClosingParenthesis    // )
	OpeningSquareBracket  // [
	ClosingSquareBracket  // ]
	OpeningCurlyBrace     // {
	ClosingCurlyBrace     // }
	Dot                   // .
	Comma                 // ,
	Colon                 // :
	Semicolon             // ;
	Assign                // <=
	Plus                  // +
	Minus                 // -
	Asterisk              // *
	Slash                 // /
	DoubleSlash           // //
	Equal                 // =
	Unequal               // ><
	Less                  // <
	LessOrEqual           // =<
	Greater               // >
	GreaterOrEqual        // >=
	Hash                  // #

	Identifier
	String
	Number

	keywordBeg
	KeywordY        // y
	KeywordO        // o
	KeywordNo       // no
	KeywordDefinir  // definir
	KeywordClase    // clase
	KeywordInstancia // instancia
	KeywordBase     // base
	KeywordVerdadero // verdadero
	KeywordFalso    // falso
	KeywordSi       // si
	KeywordSino     // sino
	KeywordRepetir  // repetir
	KeywordMientras // mientras
	KeywordDevolver // devolver
	keywordEnd

	EndOfFile
)

var names = map[Kind]string{
	OpeningParenthesis:   "(",
	ClosingParenthesis:   ")",
	OpeningSquareBracket: "[",
	ClosingSquareBracket: "]",
	OpeningCurlyBrace:    "{",
	ClosingCurlyBrace:    "}",
	Dot:                  ".",
	Comma:                ",",
	Colon:                ":",
	Semicolon:            ";",
	Assign:               "<=",
	Plus:                 "+",
	Minus:                "-",
	Asterisk:             "*",
	Slash:                "/",
	DoubleSlash:          "//",
	Equal:                "=",
	Unequal:              "><",
	Less:                 "<",
	LessOrEqual:          "=<",
	Greater:              ">",
	GreaterOrEqual:       ">=",
	Hash:                 "#",

	Identifier: "identifier",
	String:     "string",
	Number:     "number",

	KeywordY:         "y",
	KeywordO:         "o",
	KeywordNo:        "no",
	KeywordDefinir:   "definir",
	KeywordClase:     "clase",
	KeywordInstancia: "instancia",
	KeywordBase:      "base",
	KeywordVerdadero: "verdadero",
	KeywordFalso:     "falso",
	KeywordSi:        "si",
	KeywordSino:      "sino",
	KeywordRepetir:   "repetir",
	KeywordMientras:  "mientras",
	KeywordDevolver:  "devolver",

	EndOfFile: "end of file",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsKeyword reports whether k is one of the reserved Spanish keywords.
func (k Kind) IsKeyword() bool { return k > keywordBeg && k < keywordEnd }

// keywords maps the exact source spelling to its keyword Kind. Lookup is
// case-sensitive; the scanner lower-cases nothing, matching spec behavior
// where identifiers and keywords are compared on the raw lexeme.
var keywords = map[string]Kind{
	"y":         KeywordY,
	"o":         KeywordO,
	"no":        KeywordNo,
	"definir":   KeywordDefinir,
	"clase":     KeywordClase,
	"instancia": KeywordInstancia,
	"base":      KeywordBase,
	"verdadero": KeywordVerdadero,
	"falso":     KeywordFalso,
	"si":        KeywordSi,
	"sino":      KeywordSino,
	"repetir":   KeywordRepetir,
	"mientras":  KeywordMientras,
	"devolver":  KeywordDevolver,
}

// Lookup reports the keyword Kind for lit, or Identifier if lit is not a
// reserved word.
func Lookup(lit string) Kind {
	if k, ok := keywords[lit]; ok {
		return k
	}
	return Identifier
}

// StatementStarters is the set of keywords synchronize() treats as a likely
// beginning of the next declaration after a parse error (spec §4.2).
var StatementStarters = map[Kind]bool{
	KeywordClase:    true,
	KeywordDefinir:  true,
	KeywordDevolver: true,
	KeywordMientras: true,
	KeywordRepetir:  true,
	KeywordSi:       true,
}

// Literal is the value a token of kind String or Number carries, or nil for
// every other kind (spec §3: "literal (one of: absent, text string, number)").
type Literal any

// Token is a single immutable lexical atom (spec §3).
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal Literal
	Line    int
}

// New builds a Token for kinds that carry no literal value.
func New(kind Kind, lexeme string, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// NewLiteral builds a Token that carries a literal (String or Number).
func NewLiteral(kind Kind, lexeme string, literal Literal, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: line}
}
