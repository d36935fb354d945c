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
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ValueKind discriminates the closed union of document literal values.
type ValueKind string

const (
	ValueKindNull   ValueKind = "null"
	ValueKindBool   ValueKind = "bool"
	ValueKindInt    ValueKind = "int"
	ValueKindDouble ValueKind = "double"
	ValueKindString ValueKind = "string"
)

// Value is a document-declared literal: initial state or an action
// parameter. It is a closed tagged union over {null, bool, int, double,
// string} — deliberately narrower than the runtime state store, which also
// holds arrays and maps produced by actions at runtime.
type Value struct {
	kind ValueKind
	b    bool
	i    int
	d    float64
	s    string
}

// Null returns the null value.
func Null() Value { return Value{kind: ValueKindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: ValueKindBool, b: b} }

// Int returns an integer value.
func Int(i int) Value { return Value{kind: ValueKindInt, i: i} }

// Double returns a floating-point value.
func Double(d float64) Value { return Value{kind: ValueKindDouble, d: d} }

// String returns a string value.
func String(s string) Value { return Value{kind: ValueKindString, s: s} }

// Kind returns the value's discriminator. The zero Value is null.
func (v Value) Kind() ValueKind {
	if v.kind == "" {
		return ValueKindNull
	}
	return v.kind
}

// Interface unboxes the value into the dynamic representation the state
// store works with: nil, bool, int, float64, or string.
func (v Value) Interface() interface{} {
	switch v.Kind() {
	case ValueKindBool:
		return v.b
	case ValueKindInt:
		return v.i
	case ValueKindDouble:
		return v.d
	case ValueKindString:
		return v.s
	default:
		return nil
	}
}

// StringValue returns the string payload and whether the value is a string.
func (v Value) StringValue() (string, bool) {
	return v.s, v.Kind() == ValueKindString
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case ValueKindBool:
		return v.b == other.b
	case ValueKindInt:
		return v.i == other.i
	case ValueKindDouble:
		return v.d == other.d
	case ValueKindString:
		return v.s == other.s
	default:
		return true
	}
}

// UnmarshalJSON decodes a JSON scalar into the union. Numbers without a
// fraction or exponent become ints, everything else numeric becomes a
// double. Arrays and objects are rejected: the document literal union is
// closed by design.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*v = Null()
		return nil
	}

	switch trimmed[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return err
		}
		*v = Bool(b)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	case '[', '{':
		return fmt.Errorf("document values are scalars, got %c...", trimmed[0])
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return fmt.Errorf("unsupported document value %s", trimmed)
		}
		if !strings.ContainsAny(n.String(), ".eE") {
			i, err := n.Int64()
			if err == nil {
				*v = Int(int(i))
				return nil
			}
		}
		d, err := n.Float64()
		if err != nil {
			return fmt.Errorf("unsupported number %s", n)
		}
		*v = Double(d)
		return nil
	}
}

// MarshalJSON is the inverse of UnmarshalJSON.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
