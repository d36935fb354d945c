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
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/document"
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/ir"
)

// Built-in kinds cover the common leaf and container components so a
// plain document resolves out of the box. Consumers override or extend
// per kind through RegisterComponent / RegisterLayout.

func registerBuiltins(r *Resolver) {
	r.components.Register("label", ComponentResolverFunc(resolveLabel))
	r.components.Register("button", ComponentResolverFunc(resolveButton))
	r.components.Register("image", ComponentResolverFunc(resolveImage))
	r.components.Register("spacer", ComponentResolverFunc(resolveSpacer))
	r.components.Register("container", ComponentResolverFunc(resolveContainer))

	r.layouts.Register("stack", LayoutResolverFunc(stackLayout))
	r.layouts.Register("grid", LayoutResolverFunc(gridLayout))
}

// newNode builds the common IR shell every kind shares.
func newNode(kind string, content Content) *ir.Node {
	n := ir.New(kind)
	n.Text = content.Text
	n.Style = content.Style
	for k, v := range content.Properties {
		n.SetAttr(k, v)
	}
	return n
}

func resolveLabel(ctx Context, c document.Component, content Content) (*ir.Node, error) {
	return newNode("label", content), nil
}

func resolveButton(ctx Context, c document.Component, content Content) (*ir.Node, error) {
	n := newNode("button", content)
	if c.Action != "" {
		n.SetAttr("action", c.Action)
	}
	return n, nil
}

func resolveImage(ctx Context, c document.Component, content Content) (*ir.Node, error) {
	return newNode("image", content), nil
}

func resolveSpacer(ctx Context, c document.Component, content Content) (*ir.Node, error) {
	return newNode("spacer", content), nil
}

func resolveContainer(ctx Context, c document.Component, content Content) (*ir.Node, error) {
	n := newNode("container", content)
	ctx.ApplyLayout(c.Layout, n)
	for i, child := range c.Children {
		resolved, err := ctx.ResolveChild(i, child)
		if err != nil {
			return nil, err
		}
		n.AddChild(resolved)
	}
	return n, nil
}

// stackLayout is the default child arrangement: a single axis, vertical
// unless the document says otherwise. Unregistered layout kinds land
// here too.
func stackLayout(ctx Context, l document.Layout, node *ir.Node) {
	axis := l.Axis
	if axis == "" {
		axis = "vertical"
	}
	node.SetAttr("layout", "stack")
	node.SetAttr("axis", axis)
	if l.Spacing != 0 {
		node.SetAttr("spacing", l.Spacing)
	}
}

func gridLayout(ctx Context, l document.Layout, node *ir.Node) {
	columns := l.Columns
	if columns <= 0 {
		columns = 2
	}
	node.SetAttr("layout", "grid")
	node.SetAttr("columns", columns)
	if l.Spacing != 0 {
		node.SetAttr("spacing", l.Spacing)
	}
}
