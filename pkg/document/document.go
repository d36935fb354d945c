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

// Package document defines the declarative UI document AST: the component
// tree, document-declared initial state, named styles, and action
// definitions. A document is parsed once per render session and handed to
// the resolver; this package does no resolution of its own.
package document

import (
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/style"
)

// Component is one node of the authored UI tree. Kind is an open string
// discriminator dispatched through the component registry at resolve time.
type Component struct {
	// Kind selects the handler that turns this node into IR. Required.
	Kind string `json:"kind"`

	// ID identifies the node for dependency tracking. Optional; nodes
	// without an id get a generated identity per resolution pass.
	ID string `json:"id,omitempty"`

	// Content is the node's textual content: a static literal or a
	// template with ${...} spans interpolated against the state store.
	Content string `json:"content,omitempty"`

	// Bind is a state keypath the node's content is read from directly,
	// taking precedence over Content when set.
	Bind string `json:"bind,omitempty"`

	// StyleID names a document style (or a ds:-prefixed design-system
	// style) applied to the node.
	StyleID string `json:"style,omitempty"`

	// InlineStyle is a per-usage override merged last, after the named
	// style's inheritance chain.
	InlineStyle *style.Style `json:"inlineStyle,omitempty"`

	// Layout configures child arrangement for container kinds.
	Layout *Layout `json:"layout,omitempty"`

	// Properties carries kind-specific scalar parameters (image source,
	// input placeholder, ...). String values may be templates.
	Properties map[string]Value `json:"properties,omitempty"`

	// Action references an entry of the document's action table, fired
	// by interactive kinds (button tap and the like).
	Action string `json:"action,omitempty"`

	Children []Component `json:"children,omitempty"`
}

// Layout describes how a container arranges its children. Kind is an open
// discriminator for the layout registry; unknown kinds fall back to the
// built-in stack behavior.
type Layout struct {
	Kind    string  `json:"kind,omitempty"`
	Axis    string  `json:"axis,omitempty"`
	Spacing float64 `json:"spacing,omitempty"`
	Columns int     `json:"columns,omitempty"`
}

// Action is a document-declared action definition. Execution side effects
// live outside the resolution core; the resolver only carries the table
// through to the RenderTree.
type Action struct {
	// Kind selects the handler in the action registry.
	Kind string `json:"kind"`

	// When is an optional boolean guard expression; a false guard skips
	// execution silently.
	When string `json:"when,omitempty"`

	// Params are literal parameters. String parameters may be templates
	// interpolated at execution time.
	Params map[string]Value `json:"params,omitempty"`
}

// Document is a fully parsed UI document.
type Document struct {
	// Root is the top of the component tree.
	Root Component `json:"root"`

	// State is the document-declared initial state, seeded into the
	// session store for keys not already present.
	State map[string]Value `json:"state,omitempty"`

	// Styles is the named style table.
	Styles map[string]style.Definition `json:"styles,omitempty"`

	// Actions is the action table keyed by document-declared id.
	Actions map[string]Action `json:"actions,omitempty"`
}
