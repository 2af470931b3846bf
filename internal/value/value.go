// Copyright 2024 The Yatay Authors. All rights reserved.
// This file is part of yatay and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package value implements Yatay's dynamic value domain (spec §3): exactly
// four variants — boolean, number, text, and absent — with no implicit
// coercion between them.
package value

import (
	"strconv"
	"strings"
)

// Kind identifies which of the four variants a Value holds.
type Kind uint8

const (
	Absent Kind = iota
	Boolean
	Number
	Text
)

// Value is an immutable member of the dynamic value domain. The zero Value
// is Absent.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
}

// Nil is the singular "absent" value (spec §3, GLOSSARY).
var Nil = Value{kind: Absent}

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{kind: Boolean, b: b} }

// Num constructs a number Value.
func Num(n float64) Value { return Value{kind: Number, n: n} }

// Str constructs a text Value.
func Str(s string) Value { return Value{kind: Text, s: s} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsAbsent() bool { return v.kind == Absent }
func (v Value) IsBool() bool   { return v.kind == Boolean }
func (v Value) IsNumber() bool { return v.kind == Number }
func (v Value) IsText() bool   { return v.kind == Text }

// AsBool returns the underlying boolean. It does not check the variant and
// returns false if v is not Boolean; callers check IsBool first, the same
// discipline the interpreter applies before every unchecked accessor in
// this package.
func (v Value) AsBool() bool { return v.b }

// AsNumber returns the underlying float64, or 0 if v is not Number. See
// AsBool for the checking discipline.
func (v Value) AsNumber() float64 { return v.n }

// AsText returns the underlying string, or "" if v is not Text. See AsBool
// for the checking discipline.
func (v Value) AsText() string { return v.s }

// Truthy implements spec §4.3's truthiness rule: absent is false, booleans
// use their own value, every other value is true.
func (v Value) Truthy() bool {
	switch v.kind {
	case Absent:
		return false
	case Boolean:
		return v.b
	default:
		return true
	}
}

// Equal implements spec §3's "equality is by variant-then-content" rule.
// Values of different Kind are never equal, matching the `=`/`><` operators'
// "cross-type comparisons are not an error, they return false/true" contract
// (spec §4.3).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Absent:
		return true
	case Boolean:
		return v.b == other.b
	case Number:
		return v.n == other.n
	case Text:
		return v.s == other.s
	}
	return false
}

// String renders v for the interpreter's trace output (spec §4.3, "Pretty-
// printing of values").
func (v Value) String() string {
	switch v.kind {
	case Absent:
		return ""
	case Boolean:
		if v.b {
			return "verdadero"
		}
		return "falso"
	case Number:
		return formatNumber(v.n)
	case Text:
		return `"` + v.s + `"`
	}
	return ""
}

// formatNumber renders n in fixed-point decimal with '.' as the separator,
// no trailing zeros, and no grouping, at up to 21 significant digits (spec
// §4.3).
func formatNumber(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
