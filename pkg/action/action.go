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

// Package action executes document-declared actions against the session
// store. Handlers reach state exclusively through the boundary Context:
// Get, Set, Evaluate, Interpolate. Nothing here bypasses dirty-path
// tracking by touching backing structures directly.
//
// Side-effecting kinds (alerts, navigation, network) stay outside the
// resolution core; consumers register their own handlers for them.
package action

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/document"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/expression"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/resolve"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/state"
)

// Context is the state boundary handed to action handlers.
type Context struct {
	store *state.Store
	eval  *expression.Evaluator
}

// Get reads the value at path.
func (c Context) Get(path string) (interface{}, bool) {
	return c.store.Get(path)
}

// Set writes value at path through the store, so dirty tracking and
// change callbacks fire.
func (c Context) Set(path string, value interface{}) {
	c.store.Set(path, value)
}

// Evaluate interprets an expression against the store.
func (c Context) Evaluate(expr string) interface{} {
	return c.eval.Evaluate(expr)
}

// EvaluateBool resolves a condition to a boolean.
func (c Context) EvaluateBool(cond string) bool {
	return c.eval.EvaluateBool(cond)
}

// Interpolate replaces ${...} spans in template.
func (c Context) Interpolate(template string) string {
	return c.eval.Interpolate(template)
}

// Handler executes one action kind.
type Handler interface {
	Execute(ctx Context, a document.Action) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx Context, a document.Action) error

func (f HandlerFunc) Execute(ctx Context, a document.Action) error {
	return f(ctx, a)
}

// Executor dispatches actions through a kind registry.
type Executor struct {
	handlers *resolve.Registry[Handler]
	ctx      Context
	log      logr.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the executor's logger.
func WithLogger(log logr.Logger) Option {
	return func(e *Executor) { e.log = log }
}

// NewExecutor creates an Executor over store with the built-in
// state-mutation kinds registered.
func NewExecutor(store *state.Store, opts ...Option) *Executor {
	e := &Executor{
		handlers: resolve.NewRegistry[Handler]("action"),
		ctx: Context{
			store: store,
			eval:  expression.New(store),
		},
		log: logr.Discard(),
	}
	e.Register("setState", HandlerFunc(setState))
	e.Register("toggle", HandlerFunc(toggle))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register installs a handler for kind, replacing any earlier one.
func (e *Executor) Register(kind string, h Handler) {
	e.handlers.Register(kind, h)
}

// Execute runs one action. A false When guard skips silently; an
// unregistered kind is an error.
func (e *Executor) Execute(a document.Action) error {
	if a.When != "" && !e.ctx.EvaluateBool(a.When) {
		e.log.V(1).Info("action guard false, skipping", "kind", a.Kind)
		return nil
	}
	h, err := e.handlers.MustLookup(a.Kind)
	if err != nil {
		return err
	}
	return h.Execute(e.ctx, a)
}

// ExecuteNamed looks id up in a document's action table and executes it.
func (e *Executor) ExecuteNamed(actions map[string]document.Action, id string) error {
	a, ok := actions[id]
	if !ok {
		return fmt.Errorf("no action declared with id %q", id)
	}
	return e.Execute(a)
}

// setState writes an interpolated value to a keypath. Params: path
// (required string), value (any scalar; strings are interpolated).
func setState(ctx Context, a document.Action) error {
	path, ok := stringParam(a, "path")
	if !ok {
		return fmt.Errorf("setState: missing path param")
	}

	raw, ok := a.Params["value"]
	if !ok {
		return fmt.Errorf("setState: missing value param")
	}

	if s, isString := raw.StringValue(); isString {
		ctx.Set(path, ctx.Evaluate(s))
		return nil
	}
	ctx.Set(path, raw.Interface())
	return nil
}

// toggle flips the boolean at a keypath. A missing or non-boolean value
// toggles to true.
func toggle(ctx Context, a document.Action) error {
	path, ok := stringParam(a, "path")
	if !ok {
		return fmt.Errorf("toggle: missing path param")
	}

	current, _ := ctx.Get(path)
	b, _ := current.(bool)
	ctx.Set(path, !b)
	return nil
}

func stringParam(a document.Action, name string) (string, bool) {
	v, ok := a.Params[name]
	if !ok {
		return "", false
	}
	return v.StringValue()
}
