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

// NodeRef indexes a view node within one pass's arena. Parent references
// are plain indices, so parent/child queries are cheap and the structure
// is cycle-free by construction.
type NodeRef int

// NoParent marks a node without a parent, and a context before any node
// has been entered.
const NoParent NodeRef = -1

// ViewNode parallels one resolved IR node. It carries the node's tracking
// identity and its local (per-node, non-global) state.
type ViewNode struct {
	// ID is the tracking identity: the component's declared id, or a
	// generated one. Tracker scopes are keyed by it.
	ID string

	// Parent is a non-owning back-reference into the same arena.
	Parent NodeRef

	// Local holds node-local state, invisible to the global store.
	Local map[string]interface{}
}

// ViewTree is the arena of view nodes for one resolution pass. It is
// created fresh per pass when tracking is enabled and discarded when the
// pass's RenderTree is superseded.
type ViewTree struct {
	nodes []ViewNode
}

// NewViewTree returns an empty tree.
func NewViewTree() *ViewTree {
	return &ViewTree{}
}

// Add appends a node and returns its reference.
func (t *ViewTree) Add(id string, parent NodeRef) NodeRef {
	t.nodes = append(t.nodes, ViewNode{
		ID:     id,
		Parent: parent,
		Local:  map[string]interface{}{},
	})
	return NodeRef(len(t.nodes) - 1)
}

// Node returns the node at ref, or nil when ref is out of range.
func (t *ViewTree) Node(ref NodeRef) *ViewNode {
	if ref < 0 || int(ref) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[ref]
}

// ParentOf returns ref's parent, or NoParent.
func (t *ViewTree) ParentOf(ref NodeRef) NodeRef {
	n := t.Node(ref)
	if n == nil {
		return NoParent
	}
	return n.Parent
}

// ChildrenOf returns the references whose parent is ref, in insertion
// order.
func (t *ViewTree) ChildrenOf(ref NodeRef) []NodeRef {
	var children []NodeRef
	for i := range t.nodes {
		if t.nodes[i].Parent == ref {
			children = append(children, NodeRef(i))
		}
	}
	return children
}

// Len returns the number of nodes.
func (t *ViewTree) Len() int {
	return len(t.nodes)
}
