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

// Package charclass defines the small set of ASCII character predicates the
// literal analyzers need.
//
// These are deliberately not general Unicode classifiers: the language's
// literal grammar only ever needs to distinguish a handful of ASCII
// character classes (see spec Non-goals: "Unicode identifier classification
// beyond what the literal analyzers require").
package charclass

// IsDecimalDigit reports whether r is one of '0'-'9'.
func IsDecimalDigit(r byte) bool {
	return r >= '0' && r <= '9'
}

// IsBinaryDigit reports whether r is '0' or '1'.
func IsBinaryDigit(r byte) bool {
	return r == '0' || r == '1'
}

// IsUpperHexDigit reports whether r is a valid hex digit using only
// uppercase letters for A-F, per the language's requirement that hex digits
// above 9 be written uppercase.
func IsUpperHexDigit(r byte) bool {
	return IsDecimalDigit(r) || (r >= 'A' && r <= 'F')
}

// IsAlpha reports whether r is an ASCII letter.
func IsAlpha(r byte) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsLower reports whether r is an ASCII lowercase letter.
func IsLower(r byte) bool {
	return r >= 'a' && r <= 'z'
}

// IsAlnum reports whether r is an ASCII letter or decimal digit.
func IsAlnum(r byte) bool {
	return IsAlpha(r) || IsDecimalDigit(r)
}

// IsSpace reports whether r is plain ASCII whitespace (space, tab, newline,
// carriage return, form feed, vertical tab).
func IsSpace(r byte) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

// IsHorizontalWhitespace reports whether r is whitespace that can appear
// within a single line: space and tab, but not line breaks.
func IsHorizontalWhitespace(r byte) bool {
	return r == ' ' || r == '\t'
}
