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

// Package state holds the mutable value tree for a render session: a map
// from top-level key to dynamic value, addressed by keypath, with
// dirty-path tracking and synchronous change callbacks.
//
// The store is single-threaded by contract. All reads and writes must
// happen on the session's logical thread; asynchronous action handlers
// marshal back before calling Set.
package state

import (
	"strings"

	"golang.org/x/exp/maps"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/keypath"
)

// ChangeCallback observes a single Set call. Callbacks fire synchronously
// and unconditionally — even when the new value equals the old one. The
// contract is at-least-once notification, not change detection.
type ChangeCallback func(path string, oldValue, newValue interface{})

// Store is the keyed mutable value tree for one render session.
type Store struct {
	values    map[string]interface{}
	dirty     sets.Set[string]
	callbacks []ChangeCallback
}

// New creates an empty store.
func New() *Store {
	return &Store{
		values: make(map[string]interface{}),
		dirty:  sets.New[string](),
	}
}

// Get returns the value at path, or (nil, false) when the path does not
// resolve. Misses are soft: rendering against partially-populated state
// must not fail.
func (s *Store) Get(path string) (interface{}, bool) {
	return keypath.Get(path, s.values)
}

// Set writes value at path, marks the path and every ancestor dirty, and
// notifies all registered callbacks.
//
// Callback invocation is not reentrancy-guarded: a callback that itself
// calls Set re-enters the notification loop. Keeping the guard out is a
// deliberate choice — callers own that discipline.
func (s *Store) Set(path string, value interface{}) {
	oldValue, _ := s.Get(path)
	keypath.Set(path, value, s.values)

	s.dirty.Insert(path)
	for _, parent := range keypath.ParentPaths(path) {
		s.dirty.Insert(parent)
	}

	for _, cb := range s.callbacks {
		cb(path, oldValue, value)
	}
}

// SetDefault writes value only when path does not already resolve. Used to
// seed document-declared initial state without clobbering a session store
// that outlives resolution passes.
func (s *Store) SetDefault(path string, value interface{}) {
	if _, ok := s.Get(path); !ok {
		s.Set(path, value)
	}
}

// OnChange registers a change callback. Callbacks cannot be removed; a
// render session's observers live as long as the session.
func (s *Store) OnChange(cb ChangeCallback) {
	s.callbacks = append(s.callbacks, cb)
}

// IsDirty reports whether path, or any descendant of it, changed since the
// last ConsumeDirtyPaths. Ancestors of a written path are inserted at Set
// time, so an exact-match lookup covers the ancestor direction.
func (s *Store) IsDirty(path string) bool {
	if s.dirty.Has(path) {
		return true
	}
	prefix := path + "."
	for dirty := range s.dirty {
		if strings.HasPrefix(dirty, prefix) {
			return true
		}
	}
	return false
}

// ConsumeDirtyPaths returns every dirty path (sorted, for determinism) and
// clears the set in the same step.
func (s *Store) ConsumeDirtyPaths() []string {
	if s.dirty.Len() == 0 {
		return nil
	}
	out := sets.List(s.dirty)
	s.dirty = sets.New[string]()
	return out
}

// Snapshot returns a shallow copy of the backing map. Nested containers
// are shared; callers treat a snapshot as read-only.
func (s *Store) Snapshot() map[string]interface{} {
	return maps.Clone(s.values)
}

// Restore replaces the backing map with snapshot and marks every top-level
// key dirty so the next resolution pass re-reads everything.
func (s *Store) Restore(snapshot map[string]interface{}) {
	s.values = maps.Clone(snapshot)
	if s.values == nil {
		s.values = make(map[string]interface{})
	}
	for key := range s.values {
		s.dirty.Insert(key)
	}
}

// Len returns the number of top-level keys.
func (s *Store) Len() int { return len(s.values) }
