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

package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/style"
)

func TestDumpDeterministic(t *testing.T) {
	root := New("container")
	root.Style.Padding = style.Float(8)

	label := root.AddChild(New("label"))
	label.Text = "Count: 5"
	label.Style.FontSize = style.Float(14)
	label.Style.ForegroundColor = style.String("red")

	button := root.AddChild(New("button"))
	button.Text = "Add"
	button.SetAttr("onTap", "increment")
	button.SetAttr("enabled", true)

	want := `container (padding=8)
  label "Count: 5" (foregroundColor=red fontSize=14)
  button "Add" {enabled=true onTap=increment}
`
	assert.Equal(t, want, root.String())
	// Dumping twice yields the same text; attribute order is sorted, not
	// map order.
	assert.Equal(t, root.String(), root.String())
}

func TestWalkAndCount(t *testing.T) {
	root := New("container")
	root.AddChild(New("label"))
	inner := root.AddChild(New("container"))
	inner.AddChild(New("image"))

	var kinds []string
	root.Walk(func(n *Node) { kinds = append(kinds, n.Kind) })
	assert.Equal(t, []string{"container", "label", "container", "image"}, kinds)
	assert.Equal(t, 4, root.Count())
}

func TestSetAttrAllocates(t *testing.T) {
	n := &Node{Kind: "spacer"}
	n.SetAttr("height", 12)
	assert.Equal(t, 12, n.Attributes["height"])
}
