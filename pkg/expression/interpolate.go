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
	"fmt"
	"strconv"
	"strings"
)

// span is one ${...} occurrence: template[start:end] == "${" + expr + "}".
type span struct {
	start, end int
	expr       string
}

// Interpolate replaces every ${...} span in template with the stringified
// result of evaluating the inner expression. Spans are non-nested and
// brace-delimited; replacement runs right-to-left over the original index
// ranges so earlier spans keep their positions while later ones are
// rewritten. Text without spans passes through untouched.
func (e *Evaluator) Interpolate(template string) string {
	spans := scanSpans(template)
	if len(spans) == 0 {
		return template
	}
	Metrics.IncInterpolation()

	out := template
	for i := len(spans) - 1; i >= 0; i-- {
		sp := spans[i]
		out = out[:sp.start] + Stringify(e.inner(sp.expr)) + out[sp.end:]
	}
	return out
}

// inner resolves one span body: ternary, then array-derived, then plain
// state path, in that priority. Unresolvable spans stringify to "".
func (e *Evaluator) inner(expr string) interface{} {
	trimmed := strings.TrimSpace(expr)
	if v, ok := e.ternary(trimmed); ok {
		return v
	}
	if v, ok := e.arrayExpr(trimmed); ok {
		return v
	}
	if v, ok := e.src.Value(trimmed); ok {
		return v
	}
	return nil
}

// scanSpans finds every ${...} occurrence. An unterminated span ends the
// scan; whatever was found before it is still replaced.
func scanSpans(template string) []span {
	var spans []span
	i := 0
	for {
		open := strings.Index(template[i:], "${")
		if open < 0 {
			break
		}
		open += i
		closing := strings.Index(template[open+2:], "}")
		if closing < 0 {
			break
		}
		closing += open + 2
		spans = append(spans, span{start: open, end: closing + 1, expr: template[open+2 : closing]})
		i = closing + 1
	}
	return spans
}

// Stringify renders a dynamic value for template substitution: integers
// in decimal, doubles via default formatting, strings verbatim, booleans
// as true/false, nil as the empty string, anything else through fmt.
func Stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
