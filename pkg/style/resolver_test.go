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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInheritance(t *testing.T) {
	table := map[string]Definition{
		"A": {Style: Style{ForegroundColor: String("red")}},
		"B": {Style: Style{FontSize: Float(10)}, Inherits: "A"},
	}
	r := NewResolver(table)

	resolved := r.Resolve("B")
	require.NotNil(t, resolved.ForegroundColor)
	require.NotNil(t, resolved.FontSize)
	assert.Equal(t, "red", *resolved.ForegroundColor)
	assert.Equal(t, 10.0, *resolved.FontSize)
}

func TestResolveChildOverridesParent(t *testing.T) {
	table := map[string]Definition{
		"base":  {Style: Style{ForegroundColor: String("red"), Padding: Float(4)}},
		"child": {Style: Style{ForegroundColor: String("blue")}, Inherits: "base"},
	}
	r := NewResolver(table)

	resolved := r.Resolve("child")
	assert.Equal(t, "blue", *resolved.ForegroundColor)
	assert.Equal(t, 4.0, *resolved.Padding)
}

func TestResolveDeepChain(t *testing.T) {
	table := map[string]Definition{
		"a": {Style: Style{ForegroundColor: String("red")}},
		"b": {Style: Style{FontSize: Float(12)}, Inherits: "a"},
		"c": {Style: Style{Padding: Float(8)}, Inherits: "b"},
	}
	r := NewResolver(table)

	resolved := r.Resolve("c")
	assert.Equal(t, "red", *resolved.ForegroundColor)
	assert.Equal(t, 12.0, *resolved.FontSize)
	assert.Equal(t, 8.0, *resolved.Padding)
}

func TestResolveMissIsZero(t *testing.T) {
	r := NewResolver(nil)
	assert.True(t, r.Resolve("nope").IsZero())
	assert.True(t, r.Resolve("").IsZero())
}

func TestResolveSelfInheritTerminates(t *testing.T) {
	table := map[string]Definition{
		"A": {Style: Style{ForegroundColor: String("red")}, Inherits: "A"},
	}
	r := NewResolver(table)

	// Must not recurse forever; the repeated id truncates the chain.
	resolved := r.Resolve("A")
	require.NotNil(t, resolved.ForegroundColor)
	assert.Equal(t, "red", *resolved.ForegroundColor)
}

func TestResolveCycleTruncates(t *testing.T) {
	table := map[string]Definition{
		"A": {Style: Style{ForegroundColor: String("red")}, Inherits: "B"},
		"B": {Style: Style{FontSize: Float(10)}, Inherits: "A"},
	}
	r := NewResolver(table)

	resolved := r.Resolve("A")
	assert.Equal(t, "red", *resolved.ForegroundColor)
	assert.Equal(t, 10.0, *resolved.FontSize)
}

type fakeProvider struct {
	styles map[string]Style
}

func (p *fakeProvider) Resolve(id string) (Style, bool) {
	s, ok := p.styles[id]
	return s, ok
}

func TestResolveDesignSystemPrefix(t *testing.T) {
	table := map[string]Definition{
		// Local entry that must never shadow the provider.
		"ds:title": {Style: Style{ForegroundColor: String("local")}},
	}
	provider := &fakeProvider{styles: map[string]Style{
		"ds:title": {ForegroundColor: String("brand")},
	}}
	r := NewResolver(table, WithProvider(provider))

	resolved := r.Resolve("ds:title")
	assert.Equal(t, "brand", *resolved.ForegroundColor)

	// A provider miss is empty, not a local lookup.
	assert.True(t, r.Resolve("ds:unknown").IsZero())

	// Without a provider the prefix always resolves empty.
	bare := NewResolver(table)
	assert.True(t, bare.Resolve("ds:title").IsZero())
}

func TestMergeInlineWinsLast(t *testing.T) {
	base := Style{ForegroundColor: String("red"), FontSize: Float(10)}
	inline := Style{ForegroundColor: String("green")}

	merged := Merge(base, inline)
	assert.Equal(t, "green", *merged.ForegroundColor)
	assert.Equal(t, 10.0, *merged.FontSize)

	// Inputs untouched.
	assert.Equal(t, "red", *base.ForegroundColor)
}
