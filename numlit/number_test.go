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

package numlit_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TuringQ-Infra/cocktail-lang/numlit"
	"github.com/TuringQ-Infra/cocktail-lang/report"
)

func recognizeAll(t *testing.T, text string) numlit.Lexeme {
	t.Helper()
	l, ok := numlit.Recognize(text, 0)
	require.True(t, ok, "expected %q to be recognized as a number", text)
	require.Equal(t, text, l.Text, "expected the entire input to be consumed")
	return l
}

func TestIntegerLiterals(t *testing.T) {
	tests := []struct {
		text string
		want int64
	}{
		{"123_456", 123456},
		{"0xFF_FF_FF", 16777215},
		{"0b1001", 9},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var sink report.List
			l := recognizeAll(t, tt.text)
			v := numlit.Compute(l, &sink)

			require.Equal(t, numlit.IntegerTag, v.Tag)
			assert.Equal(t, big.NewInt(tt.want), v.Integer)
		})
	}
}

func TestIrregularDigitSeparators(t *testing.T) {
	// "10_00" places the separator one character off from the expected
	// stride-4-from-the-right position (it lands on a digit, not '_').
	var sink report.List
	l := recognizeAll(t, "10_00")
	v := numlit.Compute(l, &sink)

	require.Equal(t, numlit.IntegerTag, v.Tag)
	assert.Equal(t, big.NewInt(1000), v.Integer)

	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, numlit.ShortIrregularDigitSeparators, sink.Diagnostics[0].Kind.Name)
}

func TestRegularDigitSeparatorsAreSilent(t *testing.T) {
	// "1_000" is a single, complete group of 3 digits: the separator sits
	// exactly at the stride-4-from-the-right position, so it is not
	// flagged even though only one group is present.
	for _, text := range []string{"1_000", "1_000_000", "0xFFFF_FFFF"} {
		t.Run(text, func(t *testing.T) {
			var sink report.List
			l := recognizeAll(t, text)
			v := numlit.Compute(l, &sink)

			require.Equal(t, numlit.IntegerTag, v.Tag)
			assert.Empty(t, sink.Diagnostics)
		})
	}
}

func TestRealLiterals(t *testing.T) {
	t.Run("decimal", func(t *testing.T) {
		var sink report.List
		l := recognizeAll(t, "1.5e2")
		v := numlit.Compute(l, &sink)

		require.Equal(t, numlit.RealTag, v.Tag)
		assert.Equal(t, byte(10), v.Radix)
		assert.Equal(t, big.NewInt(15), v.Mantissa)
		assert.Equal(t, big.NewInt(1), v.Exponent)
		assert.Empty(t, sink.Diagnostics)
	})

	t.Run("hexadecimal", func(t *testing.T) {
		var sink report.List
		l := recognizeAll(t, "0x1.8p4")
		v := numlit.Compute(l, &sink)

		require.Equal(t, numlit.RealTag, v.Tag)
		assert.Equal(t, byte(2), v.Radix)
		assert.Equal(t, big.NewInt(24), v.Mantissa)
		assert.Equal(t, "0", v.Exponent.String())
		assert.Empty(t, sink.Diagnostics)
	})
}

func TestBinaryRealLiteralRejected(t *testing.T) {
	var sink report.List
	l := recognizeAll(t, "0b1.1")
	v := numlit.Compute(l, &sink)

	assert.Equal(t, numlit.Unrecoverable, v.Tag)
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, numlit.ShortInvalidNumber, sink.Diagnostics[0].Kind.Name)
}

func TestLeadingZeroRejected(t *testing.T) {
	var sink report.List
	l := recognizeAll(t, "0123")
	v := numlit.Compute(l, &sink)

	assert.Equal(t, numlit.Unrecoverable, v.Tag)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, numlit.KindUnknownBaseSpecifier, sink.Diagnostics[0].Kind)
}

func TestWrongExponentMarker(t *testing.T) {
	var sink report.List
	l := recognizeAll(t, "1.5p2")
	v := numlit.Compute(l, &sink)

	assert.Equal(t, numlit.Unrecoverable, v.Tag)
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, numlit.KindWrongRealLiteralExponent, sink.Diagnostics[0].Kind)
}

func TestEmptyDigitSequence(t *testing.T) {
	var sink report.List
	l := recognizeAll(t, "0x")
	v := numlit.Compute(l, &sink)

	assert.Equal(t, numlit.Unrecoverable, v.Tag)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, numlit.KindEmptyDigitSequence, sink.Diagnostics[0].Kind)
}

func TestMisplacedDigitSeparator(t *testing.T) {
	var sink report.List
	l := recognizeAll(t, "1__0")
	v := numlit.Compute(l, &sink)

	assert.Equal(t, numlit.IntegerTag, v.Tag)
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, numlit.KindInvalidDigitSeparator, sink.Diagnostics[0].Kind)
}

func TestRecognizeStopsAtNonDigitStart(t *testing.T) {
	_, ok := numlit.Recognize("abc", 0)
	assert.False(t, ok)
}
