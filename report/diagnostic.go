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

import (
	"fmt"

	"github.com/TuringQ-Infra/cocktail-lang/source"
)

// Diagnostic is a single emitted diagnostic: a Kind, the location it
// pertains to, and the parameters to interpolate into the Kind's Format.
type Diagnostic struct {
	Kind     Kind
	Location source.Span
	Params   []any
}

// Message renders this diagnostic's human-readable message.
func (d Diagnostic) Message() string {
	if len(d.Params) == 0 {
		return d.Kind.Format
	}
	return fmt.Sprintf(d.Kind.Format, d.Params...)
}

// String implements [fmt.Stringer].
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Location, d.Kind.Name, d.Message())
}
