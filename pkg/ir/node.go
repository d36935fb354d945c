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

// Package ir defines the platform-neutral node tree produced by a
// resolution pass. Renderers consume it; nothing in it refers back to the
// document AST or to live state.
package ir

import (
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/style"
)

// Node is one fully resolved element of the render tree. Text and
// attribute values carry post-interpolation content only.
type Node struct {
	// Kind is the component kind that produced this node, e.g. "label"
	// or "container".
	Kind string

	// Text is the resolved textual content, empty for non-textual kinds.
	Text string

	// Style is the fully merged visual style.
	Style style.Style

	// Attributes holds kind-specific resolved properties.
	Attributes map[string]interface{}

	Children []*Node
}

// New returns a Node of the given kind with an empty attribute map.
func New(kind string) *Node {
	return &Node{Kind: kind, Attributes: map[string]interface{}{}}
}

// SetAttr sets one attribute, allocating the map if the node was built
// by hand without New.
func (n *Node) SetAttr(key string, value interface{}) {
	if n.Attributes == nil {
		n.Attributes = map[string]interface{}{}
	}
	n.Attributes[key] = value
}

// AddChild appends child and returns it.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// Walk visits n and every descendant depth-first, parents before
// children.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) { total++ })
	return total
}
