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
	"fmt"

	"sigs.k8s.io/yaml"
)

// Decode parses a JSON- or YAML-authored document. Unknown fields are
// rejected so an author's typo surfaces at load time instead of silently
// dropping a property.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	if doc.Root.Kind == "" {
		return nil, fmt.Errorf("document root must declare a kind")
	}
	return &doc, nil
}
