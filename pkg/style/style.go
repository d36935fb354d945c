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

// Package style resolves named visual styles through single-parent
// inheritance chains. Styles are small records of optional properties;
// resolution merges the inherited chain bottom-up and lets per-usage
// inline overrides win last.
package style

// Style is a record of optional visual properties. Nil means "not set";
// merge semantics rely on the distinction, so every field is a pointer.
type Style struct {
	ForegroundColor *string  `json:"foregroundColor,omitempty"`
	BackgroundColor *string  `json:"backgroundColor,omitempty"`
	FontSize        *float64 `json:"fontSize,omitempty"`
	FontWeight      *string  `json:"fontWeight,omitempty"`
	Padding         *float64 `json:"padding,omitempty"`
	CornerRadius    *float64 `json:"cornerRadius,omitempty"`
	Alignment       *string  `json:"alignment,omitempty"`
}

// Definition is a named style as declared in a document: its own
// properties plus an optional single parent to inherit from.
type Definition struct {
	Style
	// Inherits names the parent style, resolved before this style's own
	// fields are applied. Empty means no parent.
	Inherits string `json:"inherits,omitempty"`
}

// Merge overlays override on top of base. Fields set in override win;
// fields unset in override keep the base value. Neither input is mutated.
func Merge(base, override Style) Style {
	out := base
	if override.ForegroundColor != nil {
		out.ForegroundColor = override.ForegroundColor
	}
	if override.BackgroundColor != nil {
		out.BackgroundColor = override.BackgroundColor
	}
	if override.FontSize != nil {
		out.FontSize = override.FontSize
	}
	if override.FontWeight != nil {
		out.FontWeight = override.FontWeight
	}
	if override.Padding != nil {
		out.Padding = override.Padding
	}
	if override.CornerRadius != nil {
		out.CornerRadius = override.CornerRadius
	}
	if override.Alignment != nil {
		out.Alignment = override.Alignment
	}
	return out
}

// IsZero reports whether no property is set.
func (s Style) IsZero() bool {
	return s.ForegroundColor == nil &&
		s.BackgroundColor == nil &&
		s.FontSize == nil &&
		s.FontWeight == nil &&
		s.Padding == nil &&
		s.CornerRadius == nil &&
		s.Alignment == nil
}

// Helpers for building styles in code and in tests.

// String returns a pointer to s.
func String(s string) *string { return &s }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }
