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

// Package keypath parses and accesses dot-separated paths into dynamic
// value trees. A path is a sequence of segments, each either a map key or
// an array index: `user.name`, `items[0].label`, `items.0.label`.
//
// Parsing is total: every input string produces a segment sequence,
// possibly empty. Malformed bracket runs are skipped silently so that a
// typo in a user-authored document degrades instead of failing the render.
package keypath

import (
	"strconv"
	"strings"
)

// Segment is a single component of a keypath. A segment is either a map
// key (Index == -1) or an array index (Index >= 0, Name empty).
type Segment struct {
	Name  string
	Index int
}

// Key returns a map-key segment.
func Key(name string) Segment { return Segment{Name: name, Index: -1} }

// Index returns an array-index segment.
func Index(i int) Segment { return Segment{Index: i} }

// IsIndex reports whether the segment addresses an array position.
func (s Segment) IsIndex() bool { return s.Index >= 0 }

// Parse splits a path into its segments. It never fails.
//
// Rules:
//   - segments are separated by '.'
//   - `[n]` after a key denotes an index segment: "items[0]" -> items, [0]
//   - a bare all-numeric segment is also an index: "items.0" == "items[0]"
//   - malformed brackets ("items[x]", "items[2") are dropped silently
func Parse(path string) []Segment {
	if path == "" {
		return nil
	}

	var segments []Segment
	for _, piece := range strings.Split(path, ".") {
		if piece == "" {
			continue
		}

		head := piece
		var brackets string
		if i := strings.IndexByte(piece, '['); i >= 0 {
			head, brackets = piece[:i], piece[i:]
		}

		if head != "" {
			if n, err := strconv.Atoi(head); err == nil && n >= 0 {
				segments = append(segments, Index(n))
			} else {
				segments = append(segments, Key(head))
			}
		}

		// Consume zero or more [n] groups. Anything that is not a
		// well-formed non-negative integer group is skipped.
		for brackets != "" {
			if brackets[0] != '[' {
				break
			}
			end := strings.IndexByte(brackets, ']')
			if end < 0 {
				break
			}
			if n, err := strconv.Atoi(brackets[1:end]); err == nil && n >= 0 {
				segments = append(segments, Index(n))
			}
			brackets = brackets[end+1:]
		}
	}
	return segments
}

// ParentPaths returns every strict dot-separated ancestor of path, from the
// shallowest to the deepest. "a.b.c" yields ["a", "a.b"].
func ParentPaths(path string) []string {
	pieces := strings.Split(path, ".")
	if len(pieces) < 2 {
		return nil
	}
	parents := make([]string, 0, len(pieces)-1)
	for i := 1; i < len(pieces); i++ {
		parents = append(parents, strings.Join(pieces[:i], "."))
	}
	return parents
}
