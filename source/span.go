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

// Package source defines the minimal location type the analyzers and the
// diagnostic sink need.
//
// Mapping a [Span] back to a file, a line/column, or a byte buffer that
// outlives the call into an analyzer is the job of the (out-of-scope)
// source-buffer layer; this package only carries offsets into whatever text
// the caller is currently looking at.
package source

import "fmt"

// Span is a half-open byte range [Start, End) into some piece of source
// text. It carries no reference to the text itself or to a file: callers
// that need to recover text slice a buffer they already hold using Start
// and End.
type Span struct {
	Start, End int
}

// Len returns the width of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsZero reports whether this is the zero Span.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Slice returns the substring of text described by this span.
func (s Span) Slice(text string) string {
	return text[s.Start:s.End]
}

// At returns a zero-width span at the given offset, suitable for pointing a
// diagnostic at a single position rather than a range.
func At(offset int) Span {
	return Span{Start: offset, End: offset}
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}
