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

// Package numlit recognizes, validates, and computes the value of numeric
// literals: binary, decimal, and hexadecimal integers and reals, with
// digit-separator support.
package numlit

import (
	"github.com/TuringQ-Infra/cocktail-lang/charclass"
)

// Lexeme is a view over the source span recognized as a numeric literal.
//
// RadixPoint and Exponent are offsets within Text: the position of '.' and
// of the exponent marker letter, respectively, or len(Text) if either is
// absent. A Lexeme is immutable once returned from Recognize.
type Lexeme struct {
	Text string
	// Offset is the absolute byte offset of Text[0] in the buffer it was
	// recognized from, used only to position diagnostics.
	Offset int

	RadixPoint int
	Exponent   int
}

// IsInteger reports whether this lexeme has no radix point, i.e. it denotes
// an integer rather than a real.
func (l Lexeme) IsInteger() bool {
	return l.RadixPoint == len(l.Text)
}

// at returns the absolute source position of the byte at relative offset i
// within l.Text.
func (l Lexeme) at(i int) int {
	return l.Offset + i
}

// Recognize extracts the longest prefix of text matching the numeric-literal
// grammar; offset is the absolute position of text[0], recorded in the
// returned Lexeme only to position diagnostics:
//
//	digit (alnum | '_' | '.' once | exponent-sign once)*
//
// text must begin with a decimal digit; if it does not, Recognize reports
// false. Recognize never fails on malformed input: it returns the longest
// lexeme it can find, leaving classification of that lexeme as well-formed
// or not to [Compute].
func Recognize(text string, offset int) (Lexeme, bool) {
	if text == "" || !charclass.IsDecimalDigit(text[0]) {
		return Lexeme{}, false
	}

	var (
		seenPlusMinus       bool
		seenRadixPoint      bool
		seenPotentialExp    bool
		radixPoint, exp, in int
	)

	n := len(text)
	for in = 1; in != n; in++ {
		c := text[in]
		switch {
		case charclass.IsAlnum(c) || c == '_':
			if charclass.IsLower(c) && seenRadixPoint && !seenPlusMinus {
				exp = in
				seenPotentialExp = true
			}
			continue

		case c == '.' && in+1 != n && charclass.IsAlnum(text[in+1]) && !seenRadixPoint:
			radixPoint = in
			seenRadixPoint = true
			continue

		case (c == '+' || c == '-') && seenPotentialExp && exp == in-1 &&
			in+1 != n && charclass.IsAlnum(text[in+1]):
			seenPlusMinus = true
			continue
		}
		break
	}

	if !seenRadixPoint {
		radixPoint = in
	}
	if !seenPotentialExp {
		exp = in
	}

	return Lexeme{
		Text:       text[:in],
		Offset:     offset,
		RadixPoint: radixPoint,
		Exponent:   exp,
	}, true
}
