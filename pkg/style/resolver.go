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

package style

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// DesignSystemPrefix marks style ids that belong to an external design
// system. Such ids are resolved exclusively through the injected Provider;
// the local style table is never consulted for them.
const DesignSystemPrefix = "ds:"

// Provider resolves design-system style ids. A miss returns (_, false)
// and the caller sees the zero Style — there is no fallback to the local
// table.
type Provider interface {
	Resolve(id string) (Style, bool)
}

// Resolver resolves style ids against a document's style table, following
// single-parent inheritance chains.
type Resolver struct {
	table    map[string]Definition
	provider Provider
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithProvider installs the external design-system provider consulted for
// ids carrying DesignSystemPrefix.
func WithProvider(p Provider) Option {
	return func(r *Resolver) { r.provider = p }
}

// NewResolver creates a resolver over the given style table.
func NewResolver(table map[string]Definition, opts ...Option) *Resolver {
	r := &Resolver{table: table}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the fully merged style for id. Unknown ids resolve to
// the zero Style — style misses are soft, a render never fails on them.
//
// Inheritance is depth-first: the parent chain is resolved first, then the
// style's own fields overwrite. A visited set guarantees termination on
// cyclic inherits graphs; the cycle is truncated at the first repeated id
// rather than reported.
func (r *Resolver) Resolve(id string) Style {
	return r.resolve(id, sets.New[string]())
}

func (r *Resolver) resolve(id string, visited sets.Set[string]) Style {
	if id == "" {
		return Style{}
	}

	if strings.HasPrefix(id, DesignSystemPrefix) {
		if r.provider != nil {
			if resolved, ok := r.provider.Resolve(id); ok {
				return resolved
			}
		}
		return Style{}
	}

	if visited.Has(id) {
		return Style{}
	}
	visited.Insert(id)

	def, ok := r.table[id]
	if !ok {
		return Style{}
	}

	var inherited Style
	if def.Inherits != "" {
		inherited = r.resolve(def.Inherits, visited)
	}
	return Merge(inherited, def.Style)
}
