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

package report

import "github.com/TuringQ-Infra/cocktail-lang/source"

// Sink accepts diagnostics keyed by source location.
//
// Emit must never panic and must never block; analyzers are expected to
// keep scanning after a call to Emit so that as many diagnostics as possible
// are reported for a single pass over the input.
type Sink interface {
	Emit(kind Kind, loc source.Span, params ...any)
}

// List is a [Sink] that simply appends every diagnostic it receives, in the
// order they were emitted. Since every analyzer in this module scans its
// input monotonically left to right, a List's contents after a single
// analyzer invocation are already in source order.
type List struct {
	Diagnostics []Diagnostic
}

// Emit implements [Sink].
func (l *List) Emit(kind Kind, loc source.Span, params ...any) {
	l.Diagnostics = append(l.Diagnostics, Diagnostic{
		Kind:     kind,
		Location: loc,
		Params:   params,
	})
}

// HasErrors reports whether any diagnostic in the list is at [Error] level.
func (l *List) HasErrors() bool {
	for _, d := range l.Diagnostics {
		if d.Kind.Level == Error {
			return true
		}
	}
	return false
}
