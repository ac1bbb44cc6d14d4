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

import "github.com/TuringQ-Infra/cocktail-lang/report"

// Stable, externally-tested short-names for numeric-literal diagnostics.
// Several distinct failure concepts below share ShortInvalidNumber; only
// the separator-stride warning gets its own short-name.
const (
	ShortInvalidNumber            = "syntax-invalid-number"
	ShortIrregularDigitSeparators = "syntax-irregular-digit-separators"
)

var (
	// KindEmptyDigitSequence fires when a digit sequence is empty or
	// consists entirely of digit separators.
	KindEmptyDigitSequence = report.Kind{
		Name: ShortInvalidNumber, Level: report.Error,
		Format: "empty digit sequence in numeric literal",
	}

	// KindInvalidDigit fires when a digit sequence contains a character
	// outside the radix's digit set.
	KindInvalidDigit = report.Kind{
		Name: ShortInvalidNumber, Level: report.Error,
		Format: "invalid digit %q in %s numeric literal",
	}

	// KindInvalidDigitSeparator fires when '_' appears first, last, or
	// adjacent to another '_' in a digit sequence.
	KindInvalidDigitSeparator = report.Kind{
		Name: ShortInvalidNumber, Level: report.Error,
		Format: "misplaced digit separator in numeric literal",
	}

	// KindIrregularDigitSeparators fires when digit separators are present
	// but not spaced at the expected stride for the radix. Recoverable:
	// validation continues after this diagnostic.
	KindIrregularDigitSeparators = report.Kind{
		Name: ShortIrregularDigitSeparators, Level: report.Warning,
		Format: "digit separators in %s number should appear every %s digits from the right",
	}

	// KindUnknownBaseSpecifier fires on a decimal integer part with a
	// leading zero that is not the literal "0" itself.
	KindUnknownBaseSpecifier = report.Kind{
		Name: ShortInvalidNumber, Level: report.Error,
		Format: "unknown base specifier in numeric literal",
	}

	// KindBinaryRealLiteral fires on a radix-2 literal with a fractional
	// part, which this language does not support.
	KindBinaryRealLiteral = report.Kind{
		Name: ShortInvalidNumber, Level: report.Error,
		Format: "binary real number literals are not supported",
	}

	// KindWrongRealLiteralExponent fires when the exponent marker letter
	// does not match the one expected for the literal's radix ('e' for
	// decimal, 'p' for hexadecimal).
	KindWrongRealLiteralExponent = report.Kind{
		Name: ShortInvalidNumber, Level: report.Error,
		Format: "expected %q to introduce exponent",
	}
)
