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

package keypath

import (
	"fmt"
	"strings"
)

// Build constructs a path string from a slice of segments.
//
// Examples:
//   - [{Name: "items"}, {Index: 0}, {Name: "label"}] -> items[0].label
//   - [{Name: "a"}, {Name: "b"}] -> a.b
func Build(segments []Segment) string {
	var b strings.Builder

	for i, segment := range segments {
		if segment.IsIndex() {
			fmt.Fprintf(&b, "[%d]", segment.Index)
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(segment.Name)
	}

	return b.String()
}
