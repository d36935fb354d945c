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
	"sort"
)

// Registry maps an open string kind discriminator to a handler of one
// capability. Registration is explicit and additive; registering a kind
// twice replaces the earlier handler.
type Registry[T any] struct {
	name     string
	handlers map[string]T
}

// NewRegistry creates an empty registry. name identifies the capability
// in error messages ("component", "layout", ...).
func NewRegistry[T any](name string) *Registry[T] {
	return &Registry[T]{name: name, handlers: map[string]T{}}
}

// Register installs handler for kind, replacing any earlier registration.
func (r *Registry[T]) Register(kind string, handler T) {
	r.handlers[kind] = handler
}

// Lookup returns the handler for kind. Callers with a default code path
// use this form; a miss is not an error.
func (r *Registry[T]) Lookup(kind string) (T, bool) {
	h, ok := r.handlers[kind]
	return h, ok
}

// MustLookup returns the handler for kind or an UnknownKindError. Used
// where dispatch is required and a miss is structural.
func (r *Registry[T]) MustLookup(kind string) (T, error) {
	h, ok := r.handlers[kind]
	if !ok {
		var zero T
		return zero, &UnknownKindError{Registry: r.name, Kind: kind}
	}
	return h, nil
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry[T]) Kinds() []string {
	kinds := make([]string, 0, len(r.handlers))
	for k := range r.handlers {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Len returns the number of registered kinds.
func (r *Registry[T]) Len() int {
	return len(r.handlers)
}
