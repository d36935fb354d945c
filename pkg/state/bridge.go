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
	"encoding/json"
	"sort"

	"golang.org/x/exp/maps"
)

// Hydrate copies the exported fields of v into the store as top-level
// keys, going through the ordinary Set path so dirty tracking and
// callbacks fire. The bridge is best-effort structural: any
// serialization failure is a silent no-op, keeping the dynamically-typed
// store decoupled from any one static schema.
func Hydrate(s *Store, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return
	}

	// Sorted keys keep callback order deterministic.
	keys := maps.Keys(m)
	sort.Strings(keys)
	for _, key := range keys {
		s.Set(key, m[key])
	}
}

// Extract fills v from the store's current contents via the same
// structural round trip. Failures leave v untouched; Extract never
// returns an error.
func Extract(s *Store, v interface{}) {
	data, err := json.Marshal(s.values)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, v)
}
