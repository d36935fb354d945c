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

// Package tracking records which state paths each view node read and
// wrote during a resolution pass. The resolver consults the recorded
// scopes to decide which nodes need re-resolution after a state change.
package tracking

import (
	"k8s.io/apimachinery/pkg/util/sets"
)

// Recorder is the capability the resolver threads through a pass. A
// context carries either a real Tracker or the shared no-op; consumers
// never branch on whether tracking is enabled.
type Recorder interface {
	// BeginTracking opens a scope for the node currently being resolved.
	BeginTracking(nodeID string)
	// EndTracking closes the innermost scope.
	EndTracking()

	// RecordRead attributes a global state read to the innermost scope.
	RecordRead(path string)
	// RecordWrite attributes a global state write to the innermost scope.
	RecordWrite(path string)

	// RecordLocalRead attributes a node-local state read.
	RecordLocalRead(path string)
	// RecordLocalWrite attributes a node-local state write.
	RecordLocalWrite(path string)
}

type noop struct{}

func (noop) BeginTracking(string)    {}
func (noop) EndTracking()            {}
func (noop) RecordRead(string)       {}
func (noop) RecordWrite(string)      {}
func (noop) RecordLocalRead(string)  {}
func (noop) RecordLocalWrite(string) {}

var sharedNoop Recorder = noop{}

// Noop returns the shared do-nothing Recorder.
func Noop() Recorder {
	return sharedNoop
}

// Scope is the dependency record for one node resolution.
type Scope struct {
	NodeID string

	Reads  sets.Set[string]
	Writes sets.Set[string]

	// Local sets cover per-node state, tracked apart from global keypaths.
	LocalReads  sets.Set[string]
	LocalWrites sets.Set[string]
}

func newScope(nodeID string) *Scope {
	return &Scope{
		NodeID:      nodeID,
		Reads:       sets.New[string](),
		Writes:      sets.New[string](),
		LocalReads:  sets.New[string](),
		LocalWrites: sets.New[string](),
	}
}

// Tracker is the real Recorder. It keeps a stack of open scopes, one per
// in-progress node resolution, and attributes every record call to the
// innermost scope only. Reads performed while resolving a child are never
// bubbled up to an ancestor scope.
//
// A Tracker lives for a single resolution pass and is not safe for
// concurrent use.
type Tracker struct {
	stack     []*Scope
	completed map[string]*Scope
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{completed: map[string]*Scope{}}
}

// BeginTracking pushes a scope for nodeID.
func (t *Tracker) BeginTracking(nodeID string) {
	t.stack = append(t.stack, newScope(nodeID))
}

// EndTracking pops the innermost scope and files it under its node
// identity. Popping an empty stack is a no-op; the resolver pairs every
// begin with a deferred end, so the stack cannot unbalance on error.
func (t *Tracker) EndTracking() {
	if len(t.stack) == 0 {
		return
	}
	top := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	t.completed[top.NodeID] = top
}

func (t *Tracker) innermost() *Scope {
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[len(t.stack)-1]
}

// RecordRead attributes a global state read to the innermost scope.
func (t *Tracker) RecordRead(path string) {
	if s := t.innermost(); s != nil {
		s.Reads.Insert(path)
	}
}

// RecordWrite attributes a global state write to the innermost scope.
func (t *Tracker) RecordWrite(path string) {
	if s := t.innermost(); s != nil {
		s.Writes.Insert(path)
	}
}

// RecordLocalRead attributes a node-local read to the innermost scope.
func (t *Tracker) RecordLocalRead(path string) {
	if s := t.innermost(); s != nil {
		s.LocalReads.Insert(path)
	}
}

// RecordLocalWrite attributes a node-local write to the innermost scope.
func (t *Tracker) RecordLocalWrite(path string) {
	if s := t.innermost(); s != nil {
		s.LocalWrites.Insert(path)
	}
}

// Scopes returns the completed scopes keyed by node identity. Scopes
// still open on the stack are not included.
func (t *Tracker) Scopes() map[string]*Scope {
	return t.completed
}

// Scope returns the completed scope for nodeID, if any.
func (t *Tracker) Scope(nodeID string) (*Scope, bool) {
	s, ok := t.completed[nodeID]
	return s, ok
}

// Depth reports how many scopes are currently open.
func (t *Tracker) Depth() int {
	return len(t.stack)
}
