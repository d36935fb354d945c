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

// Get walks the path through container and returns the addressed value.
// It returns (nil, false) if any intermediate value is not a map for a key
// segment, not an array for an index segment, or the index is out of
// bounds. An empty path returns the container itself.
func Get(path string, container map[string]interface{}) (interface{}, bool) {
	var current interface{} = container
	for _, segment := range Parse(path) {
		if segment.IsIndex() {
			array, ok := current.([]interface{})
			if !ok || segment.Index >= len(array) {
				return nil, false
			}
			current = array[segment.Index]
		} else {
			currentMap, ok := current.(map[string]interface{})
			if !ok {
				return nil, false
			}
			value, ok := currentMap[segment.Name]
			if !ok {
				return nil, false
			}
			current = value
		}
	}
	return current, true
}

// Set writes value at path inside container, materializing missing
// intermediate maps and arrays as it goes. Arrays grow with nil
// placeholders when the target index is past the end.
//
// Writing nil removes a map key but stores an explicit nil in an array
// slot. The asymmetry is deliberate: removing an array element would shift
// every index recorded elsewhere, while a map key simply ceases to exist.
//
// A path that crosses an existing value of the wrong container type is a
// silent no-op.
func Set(path string, value interface{}, container map[string]interface{}) {
	segments := Parse(path)
	if len(segments) == 0 || segments[0].IsIndex() {
		// The root container is a map; an index at the root has nowhere
		// to land.
		return
	}

	// Track the parent container so freshly grown arrays can be linked
	// back into the tree.
	var parent interface{} = container
	var current interface{} = container
	var parentKey string
	var parentIndex int

	for i, segment := range segments {
		last := i == len(segments)-1

		if segment.IsIndex() {
			array, ok := current.([]interface{})
			if !ok {
				return
			}
			if segment.Index >= len(array) {
				grown := make([]interface{}, segment.Index+1)
				copy(grown, array)
				array = grown
				updateParent(parent, parentKey, parentIndex, array)
			}
			if last {
				array[segment.Index] = value
				return
			}

			parent = array
			parentIndex = segment.Index
			if array[segment.Index] == nil {
				array[segment.Index] = emptyContainer(segments[i+1])
			}
			current = array[segment.Index]
		} else {
			currentMap, ok := current.(map[string]interface{})
			if !ok {
				return
			}
			if last {
				if value == nil {
					delete(currentMap, segment.Name)
				} else {
					currentMap[segment.Name] = value
				}
				return
			}

			parent = currentMap
			parentKey = segment.Name
			if currentMap[segment.Name] == nil {
				currentMap[segment.Name] = emptyContainer(segments[i+1])
			}
			current = currentMap[segment.Name]
		}
	}
}

// emptyContainer returns the container the next segment expects.
func emptyContainer(next Segment) interface{} {
	if next.IsIndex() {
		return make([]interface{}, 0)
	}
	return make(map[string]interface{})
}

// updateParent relinks a replaced child container into its parent. Needed
// whenever an array is grown, since growing allocates a new backing slice.
func updateParent(parent interface{}, key string, index int, value interface{}) {
	switch p := parent.(type) {
	case map[string]interface{}:
		p[key] = value
	case []interface{}:
		p[index] = value
	}
}
