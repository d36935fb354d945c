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

// Package resolve walks a parsed UI document and produces the
// platform-neutral IR tree. It dispatches component and layout kinds
// through open registries, merges styles, interpolates state into
// content, and optionally records per-node state dependencies.
package resolve

import (
	"sort"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/document"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/expression"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/ir"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/state"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/style"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/tracking"
)

// Content is the outcome of a node's content-resolution phase. All state
// reads it required have already happened, inside the node's tracking
// scope; dispatch handlers assemble IR from it without touching state.
type Content struct {
	// Text is the node's resolved textual content. A bind keypath wins
	// over a content template when both are set.
	Text string

	// Style is the fully merged style: named chain, then inline override.
	Style style.Style

	// Properties are the kind-specific parameters with string templates
	// already interpolated.
	Properties map[string]interface{}
}

// ComponentResolver turns one document component into an IR node.
type ComponentResolver interface {
	ResolveComponent(ctx Context, c document.Component, content Content) (*ir.Node, error)
}

// ComponentResolverFunc adapts a function to ComponentResolver.
type ComponentResolverFunc func(ctx Context, c document.Component, content Content) (*ir.Node, error)

func (f ComponentResolverFunc) ResolveComponent(ctx Context, c document.Component, content Content) (*ir.Node, error) {
	return f(ctx, c, content)
}

// LayoutResolver annotates a container node with layout attributes.
// Layout dispatch is optional: a miss falls back to the built-in stack
// behavior instead of erroring.
type LayoutResolver interface {
	ApplyLayout(ctx Context, l document.Layout, node *ir.Node)
}

// LayoutResolverFunc adapts a function to LayoutResolver.
type LayoutResolverFunc func(ctx Context, l document.Layout, node *ir.Node)

func (f LayoutResolverFunc) ApplyLayout(ctx Context, l document.Layout, node *ir.Node) {
	f(ctx, l, node)
}

// Renderer turns a resolved RenderTree into platform output. Concrete
// renderers live outside this module; the registry only carries them to
// consumers.
type Renderer interface {
	Render(tree *RenderTree) (interface{}, error)
}

// RenderTree is the product of one resolution pass.
type RenderTree struct {
	// Root is the resolved IR tree.
	Root *ir.Node

	// State is the live session store, for continued reactive use after
	// the initial pass.
	State *state.Store

	// Actions is the document's action table keyed by declared id.
	Actions map[string]document.Action

	// Views parallels Root with tracking identities and node-local
	// state. Nil when the pass ran without a tracker.
	Views *ViewTree
}

// Resolver orchestrates resolution passes. One Resolver serves many
// passes; registries are shared, per-pass state lives in the Context.
type Resolver struct {
	components *Registry[ComponentResolver]
	layouts    *Registry[LayoutResolver]
	renderers  *Registry[Renderer]

	log           logr.Logger
	tracker       *tracking.Tracker
	styleProvider style.Provider
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the resolver's logger.
func WithLogger(log logr.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// WithTracker enables dependency tracking. Passes record per-node state
// reads and writes into t and build a parallel view-node tree.
func WithTracker(t *tracking.Tracker) Option {
	return func(r *Resolver) { r.tracker = t }
}

// WithStyleProvider installs the design-system provider consulted for
// ds:-prefixed style ids.
func WithStyleProvider(p style.Provider) Option {
	return func(r *Resolver) { r.styleProvider = p }
}

// New creates a Resolver with the built-in component and layout kinds
// registered. Registrations after New override built-ins per kind.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		components: NewRegistry[ComponentResolver]("component"),
		layouts:    NewRegistry[LayoutResolver]("layout"),
		renderers:  NewRegistry[Renderer]("renderer"),
		log:        logr.Discard(),
	}
	registerBuiltins(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterComponent installs a component handler for kind.
func (r *Resolver) RegisterComponent(kind string, h ComponentResolver) {
	r.components.Register(kind, h)
}

// RegisterLayout installs a layout handler for kind.
func (r *Resolver) RegisterLayout(kind string, h LayoutResolver) {
	r.layouts.Register(kind, h)
}

// RegisterRenderer installs a platform renderer under name.
func (r *Resolver) RegisterRenderer(name string, renderer Renderer) {
	r.renderers.Register(name, renderer)
}

// Renderer returns the platform renderer registered under name.
func (r *Resolver) Renderer(name string) (Renderer, bool) {
	return r.renderers.Lookup(name)
}

// ComponentKinds returns the registered component kinds, sorted.
func (r *Resolver) ComponentKinds() []string {
	return r.components.Kinds()
}

// Resolve runs one pass over doc against store. Document-declared
// initial state is seeded first, without clobbering keys the session
// store already holds. A structural error aborts the pass and is
// returned; soft conditions degrade inside the tree.
func (r *Resolver) Resolve(doc *document.Document, store *state.Store) (*RenderTree, error) {
	start := time.Now()

	seedState(doc, store)

	var styleOpts []style.Option
	if r.styleProvider != nil {
		styleOpts = append(styleOpts, style.WithProvider(r.styleProvider))
	}

	rec := tracking.Noop()
	var views *ViewTree
	if r.tracker != nil {
		rec = r.tracker
		views = NewViewTree()
	}

	ctx := Context{
		Document: doc,
		Styles:   style.NewResolver(doc.Styles, styleOpts...),
		State:    store,
		Recorder: rec,
		Parent:   NoParent,
		eval:     expression.New(recordingSource{src: store, rec: rec}),
		resolver: r,
		views:    views,
		path:     "root",
	}

	root, err := r.resolveComponent(ctx, doc.Root)
	if err != nil {
		r.log.Error(err, "resolution pass failed")
		return nil, err
	}

	Metrics.ObservePass(time.Since(start).Seconds(), root.Count())
	r.log.V(1).Info("resolution pass complete", "nodes", root.Count())

	return &RenderTree{
		Root:    root,
		State:   store,
		Actions: doc.Actions,
		Views:   views,
	}, nil
}

// seedState writes document-declared initial state for keys not already
// present. Keys are visited in sorted order so callback observers see a
// deterministic seeding sequence.
func seedState(doc *document.Document, store *state.Store) {
	keys := make([]string, 0, len(doc.State))
	for k := range doc.State {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		store.SetDefault(k, doc.State[k].Interface())
	}
}

// resolveComponent resolves one node in two phases: content resolution,
// wrapped in a tracking scope, then kind dispatch. Always in that order;
// the scope covers exactly the phase that reads state.
func (r *Resolver) resolveComponent(ctx Context, c document.Component) (*ir.Node, error) {
	handler, err := r.components.MustLookup(c.Kind)
	if err != nil {
		return nil, newStructuralError(ctx.path, err)
	}

	id := c.ID
	if id == "" {
		id = uuid.NewString()
	}

	self := NoParent
	if ctx.views != nil {
		self = ctx.views.Add(id, ctx.Parent)
	}
	ctx = ctx.WithParent(self)

	r.log.V(2).Info("resolving node", "kind", c.Kind, "path", ctx.path)

	content := r.resolveContent(ctx, c, id)
	return handler.ResolveComponent(ctx, c, content)
}

// resolveContent is the content-resolution phase: every state read a
// node needs happens here, inside its tracking scope.
func (r *Resolver) resolveContent(ctx Context, c document.Component, id string) Content {
	ctx.Recorder.BeginTracking(id)
	defer ctx.Recorder.EndTracking()

	var text string
	switch {
	case c.Bind != "":
		value, _ := readBind(ctx, c.Bind)
		text = expression.Stringify(value)
	case c.Content != "":
		text = ctx.Interpolate(c.Content)
	}

	merged := ctx.Styles.Resolve(c.StyleID)
	if c.InlineStyle != nil {
		merged = style.Merge(merged, *c.InlineStyle)
	}

	var props map[string]interface{}
	if len(c.Properties) > 0 {
		props = make(map[string]interface{}, len(c.Properties))
		for k, v := range c.Properties {
			if s, ok := v.StringValue(); ok {
				props[k] = ctx.Interpolate(s)
			} else {
				props[k] = v.Interface()
			}
		}
	}

	return Content{Text: text, Style: merged, Properties: props}
}

// readBind reads a bound keypath through the recording source so the
// dependency lands in the node's scope.
func readBind(ctx Context, path string) (interface{}, bool) {
	src := recordingSource{src: ctx.State, rec: ctx.Recorder}
	return src.Value(path)
}

// applyLayout dispatches the layout kind, falling back to the built-in
// stack behavior for nil layouts and unregistered kinds.
func (r *Resolver) applyLayout(ctx Context, l *document.Layout, node *ir.Node) {
	if l == nil {
		stackLayout(ctx, document.Layout{}, node)
		return
	}
	if h, ok := r.layouts.Lookup(l.Kind); ok {
		h.ApplyLayout(ctx, *l, node)
		return
	}
	stackLayout(ctx, *l, node)
}
