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
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/style"
)

// Dump writes a deterministic indented rendering of the subtree to w.
// Two spaces per level; style properties in declaration order and
// attributes in sorted key order, so equal trees always dump equal text.
// The format is a diagnostic surface, not a stable serialization.
func (n *Node) Dump(w io.Writer) {
	n.dump(w, 0)
}

// String returns the dump as a string.
func (n *Node) String() string {
	var b strings.Builder
	n.Dump(&b)
	return b.String()
}

func (n *Node) dump(w io.Writer, depth int) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth), n.Kind)
	if n.Text != "" {
		fmt.Fprintf(w, " %q", n.Text)
	}
	if props := styleProps(n.Style); len(props) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(props, " "))
	}
	if len(n.Attributes) > 0 {
		keys := make([]string, 0, len(n.Attributes))
		for k := range n.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%s=%v", k, n.Attributes[k])
		}
		fmt.Fprintf(w, " {%s}", strings.Join(pairs, " "))
	}
	fmt.Fprintln(w)
	for _, c := range n.Children {
		c.dump(w, depth+1)
	}
}

func styleProps(s style.Style) []string {
	var props []string
	add := func(name, value string) {
		props = append(props, name+"="+value)
	}
	if s.ForegroundColor != nil {
		add("foregroundColor", *s.ForegroundColor)
	}
	if s.BackgroundColor != nil {
		add("backgroundColor", *s.BackgroundColor)
	}
	if s.FontSize != nil {
		add("fontSize", formatFloat(*s.FontSize))
	}
	if s.FontWeight != nil {
		add("fontWeight", *s.FontWeight)
	}
	if s.Padding != nil {
		add("padding", formatFloat(*s.Padding))
	}
	if s.CornerRadius != nil {
		add("cornerRadius", formatFloat(*s.CornerRadius))
	}
	if s.Alignment != nil {
		add("alignment", *s.Alignment)
	}
	return props
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
