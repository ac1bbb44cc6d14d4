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

import (
	"strings"
	"unicode/utf8"

	"github.com/TuringQ-Infra/cocktail-lang/charclass"
	"github.com/TuringQ-Infra/cocktail-lang/report"
	"github.com/TuringQ-Infra/cocktail-lang/source"
)

// Compute decodes the value of a terminated string literal, expanding escape
// sequences and, for multi-line literals, stripping the shared indentation.
// An unterminated literal decodes to nil; the caller is expected to have
// already diagnosed the lack of a terminator.
func Compute(l Lexeme, sink report.Sink) []byte {
	if !l.Terminated {
		return nil
	}

	var indent string
	if l.MultiLine {
		indent = checkIndent(l, sink)
	}

	e := &expander{l: l, sink: sink}
	return e.run(indent)
}

// checkIndent finds the leading whitespace run on the final line of a
// multi-line literal (the line holding its closing terminator), and reports
// KindContentBeforeStringTerminator if any non-whitespace content sits
// between that run and the terminator.
func checkIndent(l Lexeme, sink report.Sink) string {
	text := l.Text
	terminatorLen := 3 + l.HashLevel
	contentEnd := len(text) - terminatorLen

	indentEnd := len(text)
	indentStart := 0
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] == '\n' {
			indentStart = i + 1
			break
		}
		if !charclass.IsSpace(text[i]) {
			indentEnd = i
		}
	}

	if indentEnd != contentEnd {
		sink.Emit(KindContentBeforeStringTerminator, source.At(l.Offset+indentEnd))
	}
	return text[indentStart:indentEnd]
}

// expander walks a literal's content once, stripping the shared indent from
// each line and expanding escape sequences as it goes.
type expander struct {
	l      Lexeme
	sink   report.Sink
	result []byte
}

func (e *expander) pos(remaining string) int {
	return e.l.ContentOffset + (len(e.l.Content) - len(remaining))
}

func (e *expander) run(indent string) []byte {
	escape := "\\" + strings.Repeat("#", e.l.HashLevel)
	content := e.l.Content

lines:
	for {
		if rest, ok := strings.CutPrefix(content, indent); ok {
			content = rest
		} else {
			i := 0
			for i < len(content) && charclass.IsHorizontalWhitespace(content[i]) {
				i++
			}
			if i >= len(content) || content[i] != '\n' {
				e.sink.Emit(KindMismatchedIndentInString, source.At(e.pos(content)))
			}
			content = content[i:]
		}

		for {
			end := 0
			for end < len(content) &&
				content[end] != '\n' && content[end] != '\\' &&
				!(charclass.IsHorizontalWhitespace(content[end]) && content[end] != ' ') {
				end++
			}
			e.result = append(e.result, content[:end]...)
			content = content[end:]

			if content == "" {
				return e.result
			}

			switch {
			case content[0] == '\n':
				for len(e.result) > 0 && e.result[len(e.result)-1] != '\n' && charclass.IsSpace(e.result[len(e.result)-1]) {
					e.result = e.result[:len(e.result)-1]
				}
				e.result = append(e.result, '\n')
				content = content[1:]
				continue lines

			case charclass.IsHorizontalWhitespace(content[0]):
				j := 1
				for j < len(content) && charclass.IsHorizontalWhitespace(content[j]) {
					j++
				}
				if j >= len(content) || content[j] != '\n' {
					e.sink.Emit(KindInvalidHorizontalWhitespaceInString, source.At(e.pos(content)))
					e.result = append(e.result, content[:j]...)
				}
				content = content[j:]

			case !strings.HasPrefix(content, escape):
				e.result = append(e.result, content[0])
				content = content[1:]

			default:
				content = content[len(escape):]
				if rest, ok := strings.CutPrefix(content, "\n"); ok {
					content = rest
					continue lines
				}
				content = e.expandEscape(content)
			}
		}
	}
}

// expandEscape decodes a single escape sequence (the introducer has already
// been consumed) and returns the remaining, unconsumed content. On a
// malformed escape it emits a diagnostic and falls back to keeping the
// escape-type character as literal output.
func (e *expander) expandEscape(content string) string {
	if content == "" {
		e.sink.Emit(KindUnknownEscapeSequence, source.At(e.pos(content)), "")
		return content
	}

	first := content[0]
	rest := content[1:]

	switch first {
	case 't':
		e.result = append(e.result, '\t')
		return rest
	case 'n':
		e.result = append(e.result, '\n')
		return rest
	case 'r':
		e.result = append(e.result, '\r')
		return rest
	case '"', '\'', '\\':
		e.result = append(e.result, first)
		return rest

	case '0':
		e.result = append(e.result, 0)
		if len(rest) > 0 && charclass.IsDecimalDigit(rest[0]) {
			e.sink.Emit(KindDecimalEscapeSequence, source.At(e.pos(rest)))
		}
		return rest

	case 'x':
		if len(rest) >= 2 && charclass.IsUpperHexDigit(rest[0]) && charclass.IsUpperHexDigit(rest[1]) {
			v, _ := parseHex(rest[:2])
			e.result = append(e.result, byte(v))
			return rest[2:]
		}
		e.sink.Emit(KindHexadecimalEscapeMissingDigits, source.At(e.pos(rest)))
		e.result = append(e.result, first)
		return rest

	case 'u':
		if braced, digits, ok := cutBraced(rest); ok && len(digits) >= 1 && len(digits) <= 6 {
			if b, ok := e.expandUnicode(digits, e.pos(rest)+1); ok {
				e.result = append(e.result, b...)
				return braced
			}
			// Too large or a surrogate: the specific diagnostic was already
			// emitted; fall through to keep the braced digits unconsumed so
			// they are re-processed as literal content.
			e.result = append(e.result, first)
			return rest
		}
		e.sink.Emit(KindUnicodeEscapeMissingBracedDigits, source.At(e.pos(rest)))
		e.result = append(e.result, first)
		return rest

	default:
		e.sink.Emit(KindUnknownEscapeSequence, source.At(e.pos(rest)), string(first))
		e.result = append(e.result, first)
		return rest
	}
}

// cutBraced matches "{" + hex-digits + "}" at the start of s, returning what
// follows the closing brace, the digits found, and whether the match
// succeeded structurally (a non-empty digit run between braces).
func cutBraced(s string) (after, digits string, ok bool) {
	body, ok := strings.CutPrefix(s, "{")
	if !ok {
		return "", "", false
	}
	i := 0
	for i < len(body) && charclass.IsUpperHexDigit(body[i]) {
		i++
	}
	after, ok = strings.CutPrefix(body[i:], "}")
	if !ok || i == 0 {
		return "", "", false
	}
	return after, body[:i], true
}

func (e *expander) expandUnicode(digits string, pos int) ([]byte, bool) {
	v, _ := parseHex(digits)
	cp := rune(v)

	if v > 0x10FFFF {
		e.sink.Emit(KindUnicodeEscapeTooLarge, source.At(pos), v)
		return nil, false
	}
	if cp >= 0xD800 && cp <= 0xDFFF {
		e.sink.Emit(KindUnicodeEscapeSurrogate, source.At(pos), v)
		return nil, false
	}

	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, cp)
	return buf[:n], true
}

func parseHex(digits string) (uint32, bool) {
	var v uint32
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return 0, false
		}
		v = v*16 + d
	}
	return v, true
}
