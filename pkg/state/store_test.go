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

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSet(t *testing.T) {
	s := New()
	s.Set("user.name", "ada")
	s.Set("items", []interface{}{"a", "b"})

	v, ok := s.Get("user.name")
	require.True(t, ok)
	assert.Equal(t, "ada", v)

	v, ok = s.Get("items[1]")
	require.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestDirtyPropagation(t *testing.T) {
	s := New()
	s.Set("a.b.c", 1)

	assert.True(t, s.IsDirty("a"))
	assert.True(t, s.IsDirty("a.b"))
	assert.True(t, s.IsDirty("a.b.c"))
	assert.False(t, s.IsDirty("x"))

	dirty := s.ConsumeDirtyPaths()
	assert.Equal(t, []string{"a", "a.b", "a.b.c"}, dirty)

	// Consuming clears everything.
	assert.False(t, s.IsDirty("a"))
	assert.False(t, s.IsDirty("a.b.c"))
	assert.Nil(t, s.ConsumeDirtyPaths())
}

func TestIsDirtyDescendantMatch(t *testing.T) {
	s := New()
	s.Set("user.address.city", "x")

	// A path is dirty when any dotted descendant is dirty, even if the
	// path itself was never written.
	assert.True(t, s.IsDirty("user.address"))
	// Prefix match must respect dot boundaries.
	assert.False(t, s.IsDirty("user.addr"))
}

func TestCallbacksFireUnconditionally(t *testing.T) {
	s := New()
	var calls []struct {
		path     string
		old, new interface{}
	}
	s.OnChange(func(path string, oldValue, newValue interface{}) {
		calls = append(calls, struct {
			path     string
			old, new interface{}
		}{path, oldValue, newValue})
	})

	s.Set("count", 1)
	s.Set("count", 1) // same value: still notified

	require.Len(t, calls, 2)
	assert.Equal(t, "count", calls[0].path)
	assert.Nil(t, calls[0].old)
	assert.Equal(t, 1, calls[0].new)
	assert.Equal(t, 1, calls[1].old)
	assert.Equal(t, 1, calls[1].new)
}

func TestSetDefault(t *testing.T) {
	s := New()
	s.Set("count", 5)
	s.SetDefault("count", 0)
	s.SetDefault("name", "fresh")

	v, _ := s.Get("count")
	assert.Equal(t, 5, v, "SetDefault must not clobber existing state")
	v, _ = s.Get("name")
	assert.Equal(t, "fresh", v)
}

func TestSnapshotRestore(t *testing.T) {
	s := New()
	s.Set("a", 1)
	s.Set("b", "two")
	snap := s.Snapshot()

	s.Set("a", 99)
	s.ConsumeDirtyPaths()

	s.Restore(snap)
	v, _ := s.Get("a")
	assert.Equal(t, 1, v)

	dirty := s.ConsumeDirtyPaths()
	assert.ElementsMatch(t, []string{"a", "b"}, dirty, "restore marks every top-level key dirty")
}

func TestSourceCapabilities(t *testing.T) {
	s := New()
	s.Set("items", []interface{}{"a", "b", "c"})
	s.Set("nums", []interface{}{1.0, 2.0})
	s.Set("name", "ada")

	assert.Equal(t, 3, s.Length("items"))
	assert.Equal(t, 0, s.Length("missing"))
	assert.Equal(t, 0, s.Length("name"))

	assert.True(t, s.Contains("items", "b"))
	assert.False(t, s.Contains("items", "z"))
	// Numeric coercion: an authored int matches a decoded float.
	assert.True(t, s.Contains("nums", 2))

	arr, ok := s.Array("items")
	require.True(t, ok)
	assert.Len(t, arr, 3)
	_, ok = s.Array("name")
	assert.False(t, ok)
}

func TestHydrateExtract(t *testing.T) {
	type profile struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	s := New()
	Hydrate(s, profile{Name: "ada", Count: 3})

	v, ok := s.Get("name")
	require.True(t, ok)
	assert.Equal(t, "ada", v)
	assert.True(t, s.IsDirty("name"), "hydrate goes through the ordinary Set path")

	var out profile
	Extract(s, &out)
	assert.Equal(t, "ada", out.Name)
	assert.Equal(t, 3, out.Count)
}

func TestHydrateFailureIsNoOp(t *testing.T) {
	s := New()
	s.Set("keep", 1)

	// A channel cannot be marshaled; the bridge must degrade silently.
	Hydrate(s, make(chan int))

	assert.Equal(t, 1, s.Len())
	v, _ := s.Get("keep")
	assert.Equal(t, 1, v)
}
