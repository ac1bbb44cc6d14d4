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

// Package token defines the narrow, read-only contract a [parsetree.Tree]
// needs from a token stream: recovering a token's text for printing.
//
// The overall token stream layout (how the lexer buffers and indexes
// tokens) is out of this module's scope; this package only defines the
// borrowing contract the parse tree depends on, plus a minimal concrete
// Stream good enough to drive the parse tree's tests without a real lexer.
package token

// Stream is a read-only view of a sequence of lexed tokens, indexed by
// position. A [parsetree.Tree] borrows a Stream; it never owns or mutates
// one.
type Stream interface {
	// Text returns the source text of the token at the given index.
	Text(index int) string
}

// Buffer is a [Stream] backed by a plain slice of token text, sufficient
// for tests and for simple callers that have already materialized their
// tokens' text.
type Buffer []string

// Text implements [Stream].
func (b Buffer) Text(index int) string {
	return b[index]
}
