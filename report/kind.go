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

// Package report defines the diagnostic sink contract shared by every
// analyzer in this module.
//
// It is intentionally narrow: rendering diagnostics to a terminal or an
// editor is a separate, out-of-scope concern (the "diagnostic rendering
// back-end" named in the package's scope). This package only defines how a
// diagnostic is described and how it is delivered to whatever consumer
// wants to render or collect it.
package report

import "fmt"

// Level is the severity of a diagnostic.
type Level int8

const (
	// Error indicates the analyzer could not make sense of its input and
	// had to recover with a best guess, or gave up entirely.
	Error Level = 1 + iota
	// Warning indicates something that is probably not what the author
	// intended, but which the analyzer can still fully process.
	Warning
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return fmt.Sprintf("report.Level(%d)", int(l))
	}
}

// Kind is a static descriptor for a diagnostic.
//
// Kinds are plain data, not an interface hierarchy: a single [Sink.Emit]
// entry point keyed by a Kind value avoids needing virtual dispatch to
// figure out how to format or classify a diagnostic. Several distinct Kinds
// may share the same Name; Name is the stable, tested-against short
// identifier (e.g. "syntax-invalid-number"), while Format is a
// human-readable template interpolated with a diagnostic's Params via
// [fmt.Sprintf]-style verbs.
type Kind struct {
	Name   string
	Format string
	Level  Level
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	return k.Name
}
