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

// Package expression interprets the small expression/template language
// embedded in UI documents: ternaries, array-derived operations, dynamic
// indexing, space-delimited binary arithmetic, and ${...} template
// interpolation.
//
// The grammar is deliberately tiny and the evaluator deliberately
// lenient: expressions live in user-authored content, so a malformed
// expression never fails a render pass — it degrades to the original
// string or a best-effort partial result.
package expression

// Source is the abstract state-reading capability the evaluator works
// against. The evaluator has no opinion about where state lives; anything
// that can answer these four questions can back an evaluation.
type Source interface {
	// Value returns the scalar (or any value) at a keypath.
	Value(path string) (interface{}, bool)

	// Array returns the array at a keypath, or (nil, false) when the
	// path does not resolve to an array.
	Array(path string) ([]interface{}, bool)

	// Contains reports whether the array at path contains needle.
	Contains(path string, needle interface{}) bool

	// Length returns the length of the array at path; missing or
	// non-array paths have length zero.
	Length(path string) int
}

// Evaluator interprets expressions against a Source.
type Evaluator struct {
	src Source
}

// New creates an evaluator reading from src.
func New(src Source) *Evaluator {
	return &Evaluator{src: src}
}
