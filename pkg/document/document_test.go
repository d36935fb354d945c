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

package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Value
	}{
		{name: "null", json: `null`, want: Null()},
		{name: "bool true", json: `true`, want: Bool(true)},
		{name: "bool false", json: `false`, want: Bool(false)},
		{name: "int", json: `42`, want: Int(42)},
		{name: "negative int", json: `-7`, want: Int(-7)},
		{name: "double", json: `3.5`, want: Double(3.5)},
		{name: "exponent is a double", json: `1e3`, want: Double(1000)},
		{name: "string", json: `"hello"`, want: String("hello")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got Value
			require.NoError(t, json.Unmarshal([]byte(tc.json), &got))
			assert.True(t, tc.want.Equal(got), "want %v got %v", tc.want, got)
		})
	}
}

func TestValueUnmarshalRejectsContainers(t *testing.T) {
	var v Value
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
}

func TestValueInterface(t *testing.T) {
	assert.Nil(t, Null().Interface())
	assert.Equal(t, true, Bool(true).Interface())
	assert.Equal(t, 5, Int(5).Interface())
	assert.Equal(t, 2.5, Double(2.5).Interface())
	assert.Equal(t, "x", String("x").Interface())
}

func TestDecodeDocument(t *testing.T) {
	data := []byte(`{
		"root": {
			"kind": "container",
			"layout": {"kind": "stack", "axis": "vertical", "spacing": 8},
			"children": [
				{"kind": "label", "id": "title", "content": "Count: ${count}", "style": "heading"},
				{"kind": "button", "content": "Increment", "action": "bump"}
			]
		},
		"state": {"count": 0},
		"styles": {
			"base": {"foregroundColor": "black"},
			"heading": {"inherits": "base", "fontSize": 24}
		},
		"actions": {
			"bump": {"kind": "setState", "params": {"path": "count", "value": 1}}
		}
	}`)

	doc, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, "container", doc.Root.Kind)
	require.Len(t, doc.Root.Children, 2)
	assert.Equal(t, "Count: ${count}", doc.Root.Children[0].Content)
	assert.Equal(t, "heading", doc.Root.Children[0].StyleID)
	assert.Equal(t, "bump", doc.Root.Children[1].Action)

	require.Contains(t, doc.State, "count")
	assert.True(t, doc.State["count"].Equal(Int(0)))

	assert.Equal(t, "base", doc.Styles["heading"].Inherits)
	assert.Equal(t, "setState", doc.Actions["bump"].Kind)
}

func TestDecodeYAMLDocument(t *testing.T) {
	data := []byte(`
root:
  kind: label
  content: hello
`)
	doc, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "label", doc.Root.Kind)
	assert.Equal(t, "hello", doc.Root.Content)
}

func TestDecodeRejectsMissingRootKind(t *testing.T) {
	_, err := Decode([]byte(`{"root": {"content": "x"}}`))
	assert.Error(t, err)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode([]byte(`{"root": {"kind": "label"}, "bogus": 1}`))
	assert.Error(t, err)
}
