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
	"fmt"

	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/document"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/expression"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/ir"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/state"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/style"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/tracking"
)

// Context is the immutable per-pass bundle handed to handlers. It is
// created once per resolution pass; recursion derives a new value per
// level via WithParent, never mutating in place.
type Context struct {
	Document *document.Document
	Styles   *style.Resolver
	State    *state.Store

	// Recorder is the pass's dependency recorder, never nil: a pass
	// without tracking carries the shared no-op.
	Recorder tracking.Recorder

	// Parent is the view-node reference of the node being resolved,
	// NoParent at the root.
	Parent NodeRef

	eval     *expression.Evaluator
	resolver *Resolver
	views    *ViewTree
	path     string
}

// WithParent returns a copy of the context whose Parent is parent. All
// other fields are shared.
func (c Context) WithParent(parent NodeRef) Context {
	c.Parent = parent
	return c
}

// Path locates the node being resolved within the document, e.g.
// "root.children[2]".
func (c Context) Path() string {
	return c.path
}

// Evaluate interprets an expression against the pass's recording state
// source.
func (c Context) Evaluate(expr string) interface{} {
	return c.eval.Evaluate(expr)
}

// EvaluateBool resolves a condition expression to a boolean.
func (c Context) EvaluateBool(cond string) bool {
	return c.eval.EvaluateBool(cond)
}

// Interpolate replaces ${...} spans in template.
func (c Context) Interpolate(template string) string {
	return c.eval.Interpolate(template)
}

// ResolveChild resolves the index-th child component under the current
// node. Handlers for container kinds call this per child; the child's
// context points back at this node.
func (c Context) ResolveChild(index int, child document.Component) (*ir.Node, error) {
	cc := c
	cc.path = fmt.Sprintf("%s.children[%d]", c.path, index)
	return c.resolver.resolveComponent(cc, child)
}

// ApplyLayout annotates node with layout attributes. A nil layout and an
// unregistered layout kind both take the built-in stack default.
func (c Context) ApplyLayout(l *document.Layout, node *ir.Node) {
	c.resolver.applyLayout(c, l, node)
}

// LocalGet reads node-local state for the current view node. Local state
// only exists when the pass tracks dependencies.
func (c Context) LocalGet(key string) (interface{}, bool) {
	c.Recorder.RecordLocalRead(key)
	if c.views == nil {
		return nil, false
	}
	n := c.views.Node(c.Parent)
	if n == nil {
		return nil, false
	}
	v, ok := n.Local[key]
	return v, ok
}

// LocalSet writes node-local state for the current view node.
func (c Context) LocalSet(key string, value interface{}) {
	c.Recorder.RecordLocalWrite(key)
	if c.views == nil {
		return
	}
	if n := c.views.Node(c.Parent); n != nil {
		n.Local[key] = value
	}
}

// recordingSource decorates the store's expression source so every state
// read is reported to the recorder at the read site. Attribution to the
// right scope happens inside the recorder; the decorator stays stateless.
type recordingSource struct {
	src expression.Source
	rec tracking.Recorder
}

var _ expression.Source = recordingSource{}

func (s recordingSource) Value(path string) (interface{}, bool) {
	s.rec.RecordRead(path)
	return s.src.Value(path)
}

func (s recordingSource) Array(path string) ([]interface{}, bool) {
	s.rec.RecordRead(path)
	return s.src.Array(path)
}

func (s recordingSource) Contains(path string, needle interface{}) bool {
	s.rec.RecordRead(path)
	return s.src.Contains(path, needle)
}

func (s recordingSource) Length(path string) int {
	s.rec.RecordRead(path)
	return s.src.Length(path)
}
