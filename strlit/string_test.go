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

package strlit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TuringQ-Infra/cocktail-lang/report"
	"github.com/TuringQ-Infra/cocktail-lang/strlit"
)

func recognizeAll(t *testing.T, text string) strlit.Lexeme {
	t.Helper()
	l, ok := strlit.Recognize(text, 0)
	require.True(t, ok, "expected %q to be recognized as a string", text)
	require.Equal(t, text, l.Text, "expected the entire input to be consumed")
	return l
}

func TestSimpleString(t *testing.T) {
	var sink report.List
	l := recognizeAll(t, `"hello"`)
	require.True(t, l.Terminated)
	require.False(t, l.MultiLine)
	require.Equal(t, 0, l.HashLevel)
	assert.Equal(t, "hello", l.Content)

	v := strlit.Compute(l, &sink)
	assert.Equal(t, "hello", string(v))
	assert.Empty(t, sink.Diagnostics)
}

func TestRawString(t *testing.T) {
	var sink report.List
	l := recognizeAll(t, `#"a\tb\#nc"#`)
	require.True(t, l.Terminated)
	require.Equal(t, 1, l.HashLevel)

	v := strlit.Compute(l, &sink)
	// `\t` is not a recognized escape in raw mode (the introducer needs a
	// matching run of '#'s), so it passes through literally; `\#n` is.
	assert.Equal(t, "a\\tb\nc", string(v))
	assert.Empty(t, sink.Diagnostics)
}

func TestEscapeSequences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"tab", `"\t"`, "\t"},
		{"newline", `"\n"`, "\n"},
		{"return", `"\r"`, "\r"},
		{"quote", `"\""`, "\""},
		{"backslash", `"\\"`, "\\"},
		{"nul", `"\0"`, "\x00"},
		{"hex", `"\x41"`, "A"},
		{"unicode bmp", `"\u{48}"`, "H"},
		{"unicode astral", `"\u{1F600}"`, "\U0001F600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sink report.List
			l := recognizeAll(t, tt.text)
			v := strlit.Compute(l, &sink)
			assert.Equal(t, tt.want, string(v))
			assert.Empty(t, sink.Diagnostics)
		})
	}
}

func TestDecimalEscapeFollowedByDigit(t *testing.T) {
	var sink report.List
	l := recognizeAll(t, `"\01"`)
	v := strlit.Compute(l, &sink)

	assert.Equal(t, "\x001", string(v))
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, strlit.KindDecimalEscapeSequence, sink.Diagnostics[0].Kind)
}

func TestHexEscapeRequiresTwoUppercaseDigits(t *testing.T) {
	var sink report.List
	l := recognizeAll(t, `"\x4g"`)
	v := strlit.Compute(l, &sink)

	// Malformed: falls back to keeping 'x' literal, the rest is unconsumed
	// and reprocessed as ordinary content.
	assert.Equal(t, "x4g", string(v))
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, strlit.KindHexadecimalEscapeMissingDigits, sink.Diagnostics[0].Kind)
}

func TestUnicodeEscapeTooLarge(t *testing.T) {
	var sink report.List
	l := recognizeAll(t, `"\u{110000}"`)
	v := strlit.Compute(l, &sink)

	// The braced digits are left unconsumed and reprocessed as content.
	assert.Equal(t, "u{110000}", string(v))
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, strlit.KindUnicodeEscapeTooLarge, sink.Diagnostics[0].Kind)
}

func TestUnicodeEscapeSurrogate(t *testing.T) {
	var sink report.List
	l := recognizeAll(t, `"\u{D800}"`)
	v := strlit.Compute(l, &sink)

	assert.Equal(t, "u{D800}", string(v))
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, strlit.KindUnicodeEscapeSurrogate, sink.Diagnostics[0].Kind)
}

func TestUnicodeEscapeMissingBraces(t *testing.T) {
	var sink report.List
	l := recognizeAll(t, `"\u41"`)
	v := strlit.Compute(l, &sink)

	assert.Equal(t, "u41", string(v))
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, strlit.KindUnicodeEscapeMissingBracedDigits, sink.Diagnostics[0].Kind)
}

func TestUnknownEscapeSequence(t *testing.T) {
	var sink report.List
	l := recognizeAll(t, `"\q"`)
	v := strlit.Compute(l, &sink)

	assert.Equal(t, "q", string(v))
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, strlit.KindUnknownEscapeSequence, sink.Diagnostics[0].Kind)
}

func TestMultiLineString(t *testing.T) {
	var sink report.List
	text := "\"\"\"\n  line one\n  line two\n  \"\"\""
	l := recognizeAll(t, text)
	require.True(t, l.Terminated)
	require.True(t, l.MultiLine)

	v := strlit.Compute(l, &sink)
	assert.Equal(t, "line one\nline two\n", string(v))
	assert.Empty(t, sink.Diagnostics)
}

func TestMultiLineStringLineContinuation(t *testing.T) {
	var sink report.List
	text := "\"\"\"\n  one \\\n  two\n  \"\"\""
	l := recognizeAll(t, text)

	v := strlit.Compute(l, &sink)
	assert.Equal(t, "one two\n", string(v))
	assert.Empty(t, sink.Diagnostics)
}

func TestMultiLineStringMismatchedIndent(t *testing.T) {
	var sink report.List
	text := "\"\"\"\n  line one\n not indented\n  \"\"\""
	l := recognizeAll(t, text)

	strlit.Compute(l, &sink)
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, strlit.KindMismatchedIndentInString, sink.Diagnostics[0].Kind)
}

func TestMultiLineStringContentBeforeTerminator(t *testing.T) {
	var sink report.List
	text := "\"\"\"\n  line one\n  tail\"\"\""
	l := recognizeAll(t, text)

	strlit.Compute(l, &sink)
	require.NotEmpty(t, sink.Diagnostics)
	assert.Equal(t, strlit.KindContentBeforeStringTerminator, sink.Diagnostics[0].Kind)
}

func TestUnterminatedSimpleString(t *testing.T) {
	l, ok := strlit.Recognize(`"abc`, 0)
	require.True(t, ok)
	assert.False(t, l.Terminated)

	var sink report.List
	v := strlit.Compute(l, &sink)
	assert.Nil(t, v)
}

func TestUnterminatedAtBareNewline(t *testing.T) {
	l, ok := strlit.Recognize("\"abc\nrest", 0)
	require.True(t, ok)
	assert.False(t, l.Terminated)
	assert.Equal(t, `"abc`, l.Text)
}

func TestRecognizeRequiresQuoteOrHash(t *testing.T) {
	_, ok := strlit.Recognize("abc", 0)
	assert.False(t, ok)
}
