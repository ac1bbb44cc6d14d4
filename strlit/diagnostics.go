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

package strlit

import "github.com/TuringQ-Infra/cocktail-lang/report"

// Stable, externally-tested short-names for string-literal diagnostics.
const (
	ShortInvalidString = "syntax-invalid-string"
)

var (
	// KindContentBeforeStringTerminator fires when a multi-line string's
	// final line has non-whitespace content before the closing `"""`, other
	// than the indentation shared by every line.
	KindContentBeforeStringTerminator = report.Kind{
		Name: ShortInvalidString, Level: report.Error,
		Format: "only whitespace is permitted before the closing `\"\"\"` of a multi-line string",
	}

	// KindMismatchedIndentInString fires when a content line of a multi-line
	// string does not begin with the indentation established by the closing
	// line.
	KindMismatchedIndentInString = report.Kind{
		Name: ShortInvalidString, Level: report.Error,
		Format: "indentation does not match the indentation of the closing `\"\"\"`",
	}

	// KindInvalidHorizontalWhitespaceInString fires on a horizontal
	// whitespace character other than a plain space appearing in string
	// content.
	KindInvalidHorizontalWhitespaceInString = report.Kind{
		Name: ShortInvalidString, Level: report.Error,
		Format: "only plain spaces are permitted as whitespace in a string literal",
	}

	// KindDecimalEscapeSequence fires on `\0` immediately followed by a
	// decimal digit, which would be ambiguous with an intended multi-digit
	// escape this language does not have.
	KindDecimalEscapeSequence = report.Kind{
		Name: ShortInvalidString, Level: report.Error,
		Format: "decimal digit follows `\\0` escape sequence",
	}

	// KindHexadecimalEscapeMissingDigits fires when `\x` is not followed by
	// exactly two uppercase hex digits.
	KindHexadecimalEscapeMissingDigits = report.Kind{
		Name: ShortInvalidString, Level: report.Error,
		Format: "expected 2 uppercase hexadecimal digits after `\\x`",
	}

	// KindUnicodeEscapeMissingBracedDigits fires when `\u` is not followed by
	// `{`, 1 to 6 uppercase hex digits, and `}`.
	KindUnicodeEscapeMissingBracedDigits = report.Kind{
		Name: ShortInvalidString, Level: report.Error,
		Format: "expected `{`, 1 to 6 uppercase hexadecimal digits, and `}` after `\\u`",
	}

	// KindUnicodeEscapeTooLarge fires when a `\u{...}` escape's value
	// exceeds the maximum Unicode code point.
	KindUnicodeEscapeTooLarge = report.Kind{
		Name: ShortInvalidString, Level: report.Error,
		Format: "code point %#x is greater than the maximum of U+10FFFF",
	}

	// KindUnicodeEscapeSurrogate fires when a `\u{...}` escape's value falls
	// in the UTF-16 surrogate range, which is not a valid scalar value.
	KindUnicodeEscapeSurrogate = report.Kind{
		Name: ShortInvalidString, Level: report.Error,
		Format: "code point %#x is a surrogate, not a scalar value",
	}

	// KindUnknownEscapeSequence fires on `\` followed by a character that
	// does not introduce any recognized escape.
	KindUnknownEscapeSequence = report.Kind{
		Name: ShortInvalidString, Level: report.Error,
		Format: "unrecognized escape sequence %q",
	}
)
