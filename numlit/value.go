// Copyright 2020-2026 The Cocktail Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package numlit

import (
	"math/big"
	"strings"

	"github.com/TuringQ-Infra/cocktail-lang/charclass"
	"github.com/TuringQ-Infra/cocktail-lang/report"
	"github.com/TuringQ-Infra/cocktail-lang/source"
)

// Tag identifies which variant of [Value] is populated.
type Tag byte

const (
	// Unrecoverable means validation failed fatally; no payload.
	Unrecoverable Tag = iota
	// IntegerTag means Value.Integer is populated.
	IntegerTag
	// RealTag means Value.Radix, Value.Mantissa and Value.Exponent are
	// populated.
	RealTag
)

// Value is the computed value of a numeric literal: a tagged union of
// Integer, Real, and Unrecoverable, per spec.
//
// For Real, the literal's value equals Mantissa × Radix^Exponent, with
// Radix normalized to 2 for hexadecimal literals and 10 otherwise.
type Value struct {
	Tag Tag

	Integer *big.Int // Tag == IntegerTag

	Radix    byte     // Tag == RealTag; 2 or 10
	Mantissa *big.Int // Tag == RealTag
	Exponent *big.Int // Tag == RealTag
}

// validator holds the state needed to check and then compute the value of a
// single [Lexeme]. It mirrors the original lexer's Parser: a single pass
// that classifies the lexeme into int/fractional/exponent parts up front,
// then runs a short-circuiting chain of checks over them.
type validator struct {
	lexeme Lexeme
	sink   report.Sink

	radix byte // 2, 10, or 16

	intPart, fractPart, exponentPart string
	exponentPartOffset               int
	exponentIsNegative               bool
}

func newValidator(l Lexeme, sink report.Sink) *validator {
	v := &validator{lexeme: l, sink: sink, radix: 10}

	intPart := l.Text
	if l.RadixPoint < len(l.Text) {
		intPart = l.Text[:l.RadixPoint]
	}
	switch {
	case strings.HasPrefix(intPart, "0x"):
		v.radix = 16
		intPart = intPart[2:]
	case strings.HasPrefix(intPart, "0b"):
		v.radix = 2
		intPart = intPart[2:]
	}
	v.intPart = intPart

	if l.RadixPoint < len(l.Text) {
		fractEnd := l.Exponent
		if fractEnd > len(l.Text) {
			fractEnd = len(l.Text)
		}
		v.fractPart = l.Text[l.RadixPoint+1 : fractEnd]
	}

	v.exponentPartOffset = l.Exponent + 1
	if l.Exponent < len(l.Text) {
		rest := l.Text[l.Exponent+1:]
		switch {
		case strings.HasPrefix(rest, "+"):
			rest = rest[1:]
			v.exponentPartOffset++
		case strings.HasPrefix(rest, "-"):
			v.exponentIsNegative = true
			rest = rest[1:]
			v.exponentPartOffset++
		}
		v.exponentPart = rest
	}

	return v
}

// check runs the full validation chain. Each stage only runs if the
// previous one succeeded, matching the short-circuiting && chain in the
// original lexer: a fatal failure in an earlier stage suppresses checks
// that would otherwise run on now-meaningless later parts of the literal.
// Non-fatal diagnostics (irregular separators) do not short-circuit.
func (v *validator) check() bool {
	return v.checkLeadingZero() && v.checkIntPart() &&
		v.checkFractionalPart() && v.checkExponentPart()
}

func (v *validator) checkLeadingZero() bool {
	if v.radix == 10 && strings.HasPrefix(v.intPart, "0") && v.intPart != "0" {
		v.sink.Emit(KindUnknownBaseSpecifier, source.At(v.lexeme.at(0)))
		return false
	}
	return true
}

func (v *validator) checkIntPart() bool {
	ok, _ := v.checkDigitSequence(v.intPart, v.lexeme.RadixPoint-len(v.intPart), v.radix, true)
	return ok
}

func (v *validator) checkFractionalPart() bool {
	if v.lexeme.IsInteger() {
		return true
	}
	if v.radix == 2 {
		v.sink.Emit(KindBinaryRealLiteral, source.At(v.lexeme.at(v.lexeme.RadixPoint)))
		// A binary real literal is fatal regardless of whether its fractional
		// digits are individually well-formed.
		v.checkDigitSequence(v.fractPart, v.lexeme.RadixPoint+1, v.radix, false)
		return false
	}
	ok, _ := v.checkDigitSequence(v.fractPart, v.lexeme.RadixPoint+1, v.radix, false)
	return ok
}

func (v *validator) checkExponentPart() bool {
	if v.lexeme.Exponent == len(v.lexeme.Text) {
		return true
	}

	expected := byte('e')
	if v.radix != 10 {
		expected = 'p'
	}
	if v.lexeme.Text[v.lexeme.Exponent] != expected {
		v.sink.Emit(KindWrongRealLiteralExponent, source.At(v.lexeme.at(v.lexeme.Exponent)), string(expected))
		return false
	}

	ok, _ := v.checkDigitSequence(v.exponentPart, v.exponentPartOffset, 10, true)
	return ok
}

// checkDigitSequence validates text as a digit sequence in the given radix,
// optionally allowing '_' digit separators. base is the absolute source
// offset of text[0], used to position diagnostics. It returns whether the
// sequence is valid and whether it contains any separators.
func (v *validator) checkDigitSequence(text string, base int, radix byte, allowSeparators bool) (ok, hasSeparators bool) {
	numSeparators := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		if isValidDigit(c, radix) {
			continue
		}

		if c == '_' {
			if !allowSeparators || i == 0 || text[i-1] == '_' || i+1 == len(text) {
				v.sink.Emit(KindInvalidDigitSeparator, source.At(v.lexeme.at(base+i)))
			}
			numSeparators++
			continue
		}

		v.sink.Emit(KindInvalidDigit, source.At(v.lexeme.at(base+i)), string(c), radixName(radix))
		return false, false
	}

	if numSeparators == len(text) {
		v.sink.Emit(KindEmptyDigitSequence, source.At(v.lexeme.at(base)))
		return false, false
	}

	if numSeparators > 0 {
		v.checkSeparatorPlacement(text, base, radix, numSeparators)
	}

	return true, numSeparators != 0
}

// checkSeparatorPlacement enforces the stride rule: for radix 10, '_' must
// appear every 4 characters from the right (3 digits + the separator); for
// radix 16, every 5 (4 digits + the separator). Radix 2 has no placement
// constraint. Violations are a recoverable warning.
func (v *validator) checkSeparatorPlacement(text string, base int, radix byte, numSeparators int) {
	if radix == 2 {
		return
	}

	stride := 4
	if radix == 16 {
		stride = 5
	}

	irregular := func() {
		v.sink.Emit(KindIrregularDigitSeparators, source.At(v.lexeme.at(base)), radixName(radix), strideDigits(radix))
	}

	remaining := numSeparators
	pos := len(text)
	for pos >= stride {
		pos -= stride
		if text[pos] != '_' {
			irregular()
			return
		}
		remaining--
	}

	if remaining != 0 {
		irregular()
	}
}

func isValidDigit(c byte, radix byte) bool {
	switch radix {
	case 2:
		return charclass.IsBinaryDigit(c)
	case 16:
		return charclass.IsUpperHexDigit(c)
	default:
		return charclass.IsDecimalDigit(c)
	}
}

func radixName(radix byte) string {
	switch radix {
	case 2:
		return "binary"
	case 16:
		return "hexadecimal"
	default:
		return "decimal"
	}
}

func strideDigits(radix byte) string {
	if radix == 16 {
		return "4"
	}
	return "3"
}

func stripSeparators(text string) string {
	if !strings.ContainsRune(text, '_') {
		return text
	}
	return strings.ReplaceAll(text, "_", "")
}

// Compute validates lexeme and, on success, computes its value. Every
// diagnostic encountered along the way is additive: fatal diagnostics cause
// Compute to return an Unrecoverable value, but the sink still receives
// every diagnostic emitted before the fatal one.
func Compute(lexeme Lexeme, sink report.Sink) Value {
	v := newValidator(lexeme, sink)
	if !v.check() {
		return Value{Tag: Unrecoverable}
	}

	if lexeme.IsInteger() {
		digits := stripSeparators(v.intPart)
		n := new(big.Int)
		n.SetString(digits, int(v.radix))
		return Value{Tag: IntegerTag, Integer: n}
	}

	mantissaDigits := stripSeparators(v.intPart) + stripSeparators(v.fractPart)
	mantissa := new(big.Int)
	mantissa.SetString(mantissaDigits, int(v.radix))

	exponent := new(big.Int)
	if v.exponentPart != "" {
		exponent.SetString(stripSeparators(v.exponentPart), 10)
		if v.exponentIsNegative {
			exponent.Neg(exponent)
		}
	}

	excess := int64(len(v.fractPart))
	if v.radix == 16 {
		excess *= 4
	}
	exponent.Sub(exponent, big.NewInt(excess))

	resultRadix := byte(10)
	if v.radix == 16 {
		resultRadix = 2
	}

	return Value{
		Tag:      RealTag,
		Radix:    resultRadix,
		Mantissa: mantissa,
		Exponent: exponent,
	}
}
