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

// Package strlit recognizes, validates, and decodes string literals: simple
// (`"..."`), raw with `#`-padding (`#"..."#`, `##"..."##`, ...), and
// triple-quoted multi-line (`"""..."""`) strings, including escape-sequence
// expansion and indentation stripping.
package strlit

import "strings"

// Lexeme is a view over the source span recognized as a string literal.
//
// Text is the full span, including delimiters and hash padding; Content is
// the inner span between the opening delimiter and the closing terminator
// (or, if unterminated, everything after the opening delimiter). A Lexeme
// is immutable once returned from Recognize.
type Lexeme struct {
	Text    string
	Content string
	Offset  int // absolute byte offset of Text[0]

	// ContentOffset is the absolute byte offset of Content[0]; callers
	// positioning diagnostics within Content add their in-Content offset to
	// this rather than to Offset.
	ContentOffset int

	HashLevel  int
	MultiLine  bool
	Terminated bool
}

// multiLinePrefixLen returns the length of a valid multi-line string prefix
// at the start of rest (which must already have any leading '#'s removed),
// or 0 if rest does not open a multi-line string.
//
// A valid prefix is `"""` followed by zero or more characters that are none
// of '#', '"', '\n', terminated by '\n'; the returned length includes that
// terminating newline.
func multiLinePrefixLen(rest string) int {
	const indicator = `"""`
	if !strings.HasPrefix(rest, indicator) {
		return 0
	}

	tail := rest[len(indicator):]
	end := strings.IndexAny(tail, "#\"\n")
	if end == -1 || tail[end] != '\n' {
		return 0
	}
	return len(indicator) + end + 1
}

// Recognize consumes a string literal starting at text[0], which must be
// either '#' (hash padding) or '"' (a quote). If text does not open a
// string literal, Recognize reports false.
//
// Recognize never fails on malformed or unterminated input: it always
// returns a Lexeme describing what it found, with Terminated set
// accordingly; diagnosing an unterminated literal is the responsibility of
// the caller (the "owning lexer"), not of this recognizer.
func Recognize(text string, offset int) (Lexeme, bool) {
	cursor := 0
	for cursor < len(text) && text[cursor] == '#' {
		cursor++
	}
	hashLevel := cursor

	multiLine := false
	if n := multiLinePrefixLen(text[cursor:]); n > 0 {
		multiLine = true
		cursor += n
	} else if cursor < len(text) && text[cursor] == '"' {
		cursor++
	} else {
		return Lexeme{}, false
	}
	prefixLen := cursor

	terminator := `"` + strings.Repeat("#", hashLevel)
	if multiLine {
		terminator = `"""` + strings.Repeat("#", hashLevel)
	}
	escape := "\\" + strings.Repeat("#", hashLevel)

	for cursor < len(text) {
		switch {
		case text[cursor] == '\\' && (len(escape) == 1 || strings.HasPrefix(text[cursor:], escape)):
			cursor += len(escape)
			if cursor >= len(text) || (!multiLine && text[cursor] == '\n') {
				return build(text[:cursor], offset, prefixLen, hashLevel, multiLine, false), true
			}
			cursor++

		case text[cursor] == '\n' && !multiLine:
			return build(text[:cursor], offset, prefixLen, hashLevel, multiLine, false), true

		case text[cursor] == '"' && (len(terminator) == 1 || strings.HasPrefix(text[cursor:], terminator)):
			cursor += len(terminator)
			return build(text[:cursor], offset, prefixLen, hashLevel, multiLine, true), true

		default:
			cursor++
		}
	}

	return build(text[:cursor], offset, prefixLen, hashLevel, multiLine, false), true
}

func build(text string, offset, prefixLen, hashLevel int, multiLine, terminated bool) Lexeme {
	contentEnd := len(text)
	if terminated {
		termLen := 1 + hashLevel
		if multiLine {
			termLen = 3 + hashLevel
		}
		contentEnd = len(text) - termLen
	}

	return Lexeme{
		Text:          text,
		Content:       text[prefixLen:contentEnd],
		Offset:        offset,
		ContentOffset: offset + prefixLen,
		HashLevel:     hashLevel,
		MultiLine:     multiLine,
		Terminated:    terminated,
	}
}
