// Copyright 2025 The SCALSRenderer Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resolve

import (
	"errors"
	"fmt"
)

// StructuralError is a pass-fatal condition: the document cannot be
// turned into a tree at all. It propagates to Resolve's caller; everything
// softer (missing state, unknown styles, malformed expressions) degrades
// locally and never surfaces here.
type StructuralError struct {
	// Path locates the offending node in the document, e.g.
	// "root.children[2]".
	Path string
	Err  error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error at %s: %v", e.Path, e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

func newStructuralError(path string, err error) *StructuralError {
	return &StructuralError{Path: path, Err: err}
}

// IsStructural reports whether err is, or wraps, a StructuralError.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}

// UnknownKindError is a required dispatch miss: no handler is registered
// for the kind the document names.
type UnknownKindError struct {
	// Registry names the handler table that missed, e.g. "component".
	Registry string
	Kind     string
}

func (e *UnknownKindError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("missing %s kind", e.Registry)
	}
	return fmt.Sprintf("no %s handler registered for kind %q", e.Registry, e.Kind)
}

// IsUnknownKind reports whether err is, or wraps, an UnknownKindError.
func IsUnknownKind(err error) bool {
	var ue *UnknownKindError
	return errors.As(err, &ue)
}
