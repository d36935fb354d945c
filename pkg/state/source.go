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

package state

import (
	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/expression"
)

// Compile time proof that the store satisfies the evaluator's state
// reading capability.
var _ expression.Source = &Store{}

// Value implements expression.Source.
func (s *Store) Value(path string) (interface{}, bool) {
	return s.Get(path)
}

// Array implements expression.Source. It returns (nil, false) when the
// path does not resolve to an array.
func (s *Store) Array(path string) ([]interface{}, bool) {
	v, ok := s.Get(path)
	if !ok {
		return nil, false
	}
	arr, ok := v.([]interface{})
	return arr, ok
}

// Contains implements expression.Source: membership with numeric coercion,
// so 2 matches 2.0 the way document-authored literals expect.
func (s *Store) Contains(path string, needle interface{}) bool {
	arr, ok := s.Array(path)
	if !ok {
		return false
	}
	for _, element := range arr {
		if looseEqual(element, needle) {
			return true
		}
	}
	return false
}

// Length implements expression.Source. Missing or non-array paths have
// length zero.
func (s *Store) Length(path string) int {
	arr, ok := s.Array(path)
	if !ok {
		return 0
	}
	return len(arr)
}

// looseEqual compares two dynamic values, treating all numeric types as
// one domain. Everything else falls back to ==.
func looseEqual(a, b interface{}) bool {
	fa, aNum := asFloat(a)
	fb, bNum := asFloat(b)
	if aNum && bNum {
		return fa == fb
	}
	return a == b
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
