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

package expression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinder-michaelchoe/SCALSRenderer-sub006/pkg/keypath"
)

// mapSource backs the evaluator with a plain map. The evaluator works
// against any Source; tests don't need the full state store.
type mapSource struct {
	data map[string]interface{}
}

func (s mapSource) Value(path string) (interface{}, bool) {
	return keypath.Get(path, s.data)
}

func (s mapSource) Array(path string) ([]interface{}, bool) {
	v, ok := keypath.Get(path, s.data)
	if !ok {
		return nil, false
	}
	arr, ok := v.([]interface{})
	return arr, ok
}

func (s mapSource) Contains(path string, needle interface{}) bool {
	arr, ok := s.Array(path)
	if !ok {
		return false
	}
	for _, element := range arr {
		if element == needle {
			return true
		}
	}
	return false
}

func (s mapSource) Length(path string) int {
	arr, _ := s.Array(path)
	return len(arr)
}

func eval(data map[string]interface{}) *Evaluator {
	return New(mapSource{data: data})
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		expr string
		data map[string]interface{}
		want interface{}
	}{
		{expr: "count + 3", data: map[string]interface{}{"count": 5}, want: 8},
		{expr: "count - 5", data: map[string]interface{}{"count": 5}, want: 0},
		{expr: "count * 2", data: map[string]interface{}{"count": 5}, want: 10},
		{expr: "count / 2", data: map[string]interface{}{"count": 7}, want: 3},
		{expr: "count % 3", data: map[string]interface{}{"count": 7}, want: 1},
		{expr: "(index + 1) % 3", data: map[string]interface{}{"index": 2}, want: 0},
		{expr: "price * 2", data: map[string]interface{}{"price": 1.5}, want: 3.0},
		{expr: "2 + 2", data: nil, want: 4},
		{expr: "a + b", data: map[string]interface{}{"a": 1, "b": 2}, want: 3},
	}

	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			assert.Equal(t, tc.want, eval(tc.data).Evaluate(tc.expr))
		})
	}
}

// Strings with embedded hyphens, slashes, or at-signs are content, not
// arithmetic. Only a space-surrounded operator token counts.
func TestArithmeticNonMatchGuard(t *testing.T) {
	exprs := []string{
		"5-star rating",
		"user@example.com",
		"a/b/c",
		"100% done",
		"well-known",
	}
	for _, expr := range exprs {
		assert.Equal(t, expr, eval(nil).Evaluate(expr), "expression %q must pass through unchanged", expr)
	}
}

func TestArithmeticLenientFallback(t *testing.T) {
	// Division by zero degrades to the original string.
	assert.Equal(t, "count / 0", eval(map[string]interface{}{"count": 5}).Evaluate("count / 0"))
	// Unresolvable operands degrade too.
	assert.Equal(t, "ghost + 1", eval(nil).Evaluate("ghost + 1"))
}

func TestTernary(t *testing.T) {
	tests := []struct {
		expr string
		data map[string]interface{}
		want interface{}
	}{
		{expr: "isOn ? 'ON' : 'OFF'", data: map[string]interface{}{"isOn": false}, want: "OFF"},
		{expr: "isOn ? 'ON' : 'OFF'", data: map[string]interface{}{"isOn": true}, want: "ON"},
		{expr: "true ? yes : no", data: nil, want: "yes"},
		{expr: "TRUE ? yes : no", data: nil, want: "yes"},
		{expr: "!isOn ? 'hidden' : 'shown'", data: map[string]interface{}{"isOn": false}, want: "hidden"},
		{expr: "items.isEmpty ? 'none' : 'some'", data: map[string]interface{}{"items": []interface{}{}}, want: "none"},
		{expr: "items.contains('b') ? 'has b' : 'no b'", data: map[string]interface{}{"items": []interface{}{"a", "b"}}, want: "has b"},
		// Unresolvable conditions are false.
		{expr: "mystery ? 'a' : 'b'", data: nil, want: "b"},
	}

	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			assert.Equal(t, tc.want, eval(tc.data).Evaluate(tc.expr))
		})
	}
}

func TestTernaryQuotedSplitPoints(t *testing.T) {
	// '?' and ':' inside quoted spans must not act as split points.
	data := map[string]interface{}{"ok": true}
	assert.Equal(t, "a:b", eval(data).Evaluate("ok ? 'a:b' : 'c'"))
	assert.Equal(t, "why?", eval(data).Evaluate("ok ? 'why?' : 'no'"))
}

func TestArrayExpressions(t *testing.T) {
	data := map[string]interface{}{
		"items": []interface{}{"a", "b", "c"},
		"empty": []interface{}{},
		"nums":  []interface{}{1, 2, 3},
	}

	tests := []struct {
		expr string
		want interface{}
	}{
		{expr: "items.count", want: 3},
		{expr: "empty.count", want: 0},
		{expr: "missing.count", want: 0},
		{expr: "items.isEmpty", want: false},
		{expr: "empty.isEmpty", want: true},
		{expr: "items.first", want: "a"},
		{expr: "items.last", want: "c"},
		{expr: "empty.first", want: nil},
		{expr: "items.contains('b')", want: true},
		{expr: "items.contains('z')", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			assert.Equal(t, tc.want, eval(data).Evaluate(tc.expr))
		})
	}
}

func TestArrayContainsVariableArg(t *testing.T) {
	data := map[string]interface{}{
		"items":    []interface{}{"a", "b"},
		"selected": "b",
	}
	assert.Equal(t, true, eval(data).Evaluate("items.contains(selected)"))
}

// A scalar field genuinely named like an array suffix is not hijacked.
func TestArraySuffixScalarFieldWins(t *testing.T) {
	data := map[string]interface{}{
		"stats": map[string]interface{}{"count": 12},
	}
	// Not an array op: stats.count resolves as a scalar, so the whole
	// expression falls through to template passthrough.
	assert.Equal(t, "stats.count", eval(data).Evaluate("stats.count"))
	// ...but it still interpolates as a plain path.
	assert.Equal(t, "12", eval(data).Interpolate("${stats.count}"))
}

func TestDynamicIndexing(t *testing.T) {
	data := map[string]interface{}{
		"items": []interface{}{"a", "b"},
		"idx":   1,
	}

	assert.Equal(t, "b", eval(data).Evaluate("items[1]"))
	assert.Equal(t, "b", eval(data).Evaluate("items[idx]"))
	assert.Nil(t, eval(data).Evaluate("items[5]"), "out of bounds yields none")
	assert.Nil(t, eval(data).Evaluate("ghost[0]"), "missing array yields none")
}

func TestEvaluateBool(t *testing.T) {
	data := map[string]interface{}{
		"isOn":  true,
		"isOff": false,
		"items": []interface{}{"a"},
		"name":  "ada",
	}

	e := eval(data)
	assert.True(t, e.EvaluateBool("isOn"))
	assert.False(t, e.EvaluateBool("isOff"))
	assert.True(t, e.EvaluateBool("true"))
	assert.True(t, e.EvaluateBool("True"))
	assert.False(t, e.EvaluateBool("false"))
	assert.True(t, e.EvaluateBool("!isOff"))
	assert.False(t, e.EvaluateBool("!isOn"))
	assert.True(t, e.EvaluateBool("!!isOn"))
	assert.False(t, e.EvaluateBool("items.isEmpty"))
	assert.True(t, e.EvaluateBool("items.contains('a')"))
	// Non-boolean state and unknown tokens are false.
	assert.False(t, e.EvaluateBool("name"))
	assert.False(t, e.EvaluateBool("mystery"))
	assert.False(t, e.EvaluateBool(""))
}
