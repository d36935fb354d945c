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
	"strconv"
	"strings"
	"time"
)

// Evaluate interprets a single expression. Grammar forms are tried in a
// fixed priority: ternary, array-derived, dynamic indexing, arithmetic;
// anything that matches none of them is treated as a template and handed
// to Interpolate, which returns plain text unchanged.
func (e *Evaluator) Evaluate(expr string) interface{} {
	start := time.Now()
	form := "template"
	defer func() {
		Metrics.ObserveEvaluation(form, time.Since(start).Seconds())
	}()

	trimmed := strings.TrimSpace(expr)

	if v, ok := e.ternary(trimmed); ok {
		form = "ternary"
		return v
	}
	if v, ok := e.arrayExpr(trimmed); ok {
		form = "array"
		return v
	}
	if v, ok := e.dynamicIndex(trimmed); ok {
		form = "index"
		return v
	}
	if v, ok := e.arithmetic(trimmed); ok {
		form = "arithmetic"
		return v
	}
	return e.Interpolate(expr)
}

// EvaluateBool resolves a condition to a boolean. Resolution order: an
// array-derived boolean sub-expression, a direct boolean state lookup,
// the literal tokens true/false (case-insensitive), a leading '!' applied
// recursively; anything else is false.
func (e *Evaluator) EvaluateBool(cond string) bool {
	cond = strings.TrimSpace(cond)
	if cond == "" {
		return false
	}

	if v, ok := e.arrayExpr(cond); ok {
		if b, isBool := v.(bool); isBool {
			return b
		}
	}
	if v, ok := e.src.Value(cond); ok {
		if b, isBool := v.(bool); isBool {
			return b
		}
	}
	switch strings.ToLower(cond) {
	case "true":
		return true
	case "false":
		return false
	}
	if strings.HasPrefix(cond, "!") {
		return !e.EvaluateBool(cond[1:])
	}
	return false
}

// ternary handles `cond ? trueExpr : falseExpr`. The branch taken is a
// quote-stripped literal.
func (e *Evaluator) ternary(s string) (interface{}, bool) {
	cond, whenTrue, whenFalse, ok := splitTernary(s)
	if !ok {
		return nil, false
	}
	if e.EvaluateBool(cond) {
		return stripQuotes(whenTrue), true
	}
	return stripQuotes(whenFalse), true
}

// splitTernary locates the '?' and ':' split points while ignoring
// characters inside single- or double-quoted spans, so a branch literal
// like 'a: b' does not confuse the split.
func splitTernary(s string) (cond, whenTrue, whenFalse string, ok bool) {
	var quote byte
	question := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '?':
			if question == -1 {
				question = i
			}
		case ':':
			if question >= 0 {
				return strings.TrimSpace(s[:question]),
					strings.TrimSpace(s[question+1 : i]),
					strings.TrimSpace(s[i+1:]),
					true
			}
		}
	}
	return "", "", "", false
}

// arrayExpr handles suffix-matched array operations: .count, .isEmpty,
// .first, .last, and .contains(arg). A path that resolves to an actual
// scalar wins over suffix matching, so a field genuinely named "count"
// keeps working.
func (e *Evaluator) arrayExpr(s string) (interface{}, bool) {
	if base, arg, ok := splitContains(s); ok {
		if strings.ContainsRune(base, ' ') {
			return nil, false
		}
		return e.src.Contains(base, e.resolveContainsArg(arg)), true
	}

	var base string
	switch {
	case strings.HasSuffix(s, ".count"):
		base = strings.TrimSuffix(s, ".count")
	case strings.HasSuffix(s, ".isEmpty"):
		base = strings.TrimSuffix(s, ".isEmpty")
	case strings.HasSuffix(s, ".first"):
		base = strings.TrimSuffix(s, ".first")
	case strings.HasSuffix(s, ".last"):
		base = strings.TrimSuffix(s, ".last")
	default:
		return nil, false
	}
	if base == "" || strings.ContainsRune(base, ' ') {
		return nil, false
	}
	if _, isScalar := e.src.Value(s); isScalar {
		return nil, false
	}

	switch {
	case strings.HasSuffix(s, ".count"):
		return e.src.Length(base), true
	case strings.HasSuffix(s, ".isEmpty"):
		return e.src.Length(base) == 0, true
	case strings.HasSuffix(s, ".first"):
		arr, _ := e.src.Array(base)
		if len(arr) == 0 {
			return nil, true
		}
		return arr[0], true
	default: // .last
		arr, _ := e.src.Array(base)
		if len(arr) == 0 {
			return nil, true
		}
		return arr[len(arr)-1], true
	}
}

func splitContains(s string) (base, arg string, ok bool) {
	if !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	marker := ".contains("
	i := strings.Index(s, marker)
	if i <= 0 {
		return "", "", false
	}
	return s[:i], s[i+len(marker) : len(s)-1], true
}

// resolveContainsArg resolves the argument of .contains(): a quoted
// literal stays literal, a numeric literal becomes a number, anything
// else is looked up as a state variable.
func (e *Evaluator) resolveContainsArg(arg string) interface{} {
	arg = strings.TrimSpace(arg)
	if stripped := stripQuotes(arg); stripped != arg {
		return stripped
	}
	if n, err := strconv.Atoi(arg); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f
	}
	if v, ok := e.src.Value(arg); ok {
		return v
	}
	return nil
}

// dynamicIndex handles `path[indexExpr]` where indexExpr is itself
// evaluated — a literal int or a state variable — before the array
// lookup. Out-of-bounds and missing arrays yield nil, not an error.
func (e *Evaluator) dynamicIndex(s string) (interface{}, bool) {
	if !strings.HasSuffix(s, "]") {
		return nil, false
	}
	open := strings.LastIndex(s, "[")
	if open <= 0 {
		return nil, false
	}
	base, inner := s[:open], strings.TrimSpace(s[open+1:len(s)-1])
	if inner == "" || strings.ContainsRune(base, ' ') {
		return nil, false
	}

	index, ok := e.resolveIndex(inner)
	if !ok {
		return nil, false
	}
	arr, ok := e.src.Array(base)
	if !ok || index < 0 || index >= len(arr) {
		return nil, true
	}
	return arr[index], true
}

func (e *Evaluator) resolveIndex(inner string) (int, bool) {
	if n, err := strconv.Atoi(inner); err == nil {
		return n, true
	}
	if v, ok := e.src.Value(inner); ok {
		if f, _, isNum := toNumber(v); isNum {
			return int(f), true
		}
	}
	return 0, false
}

// arithmetic handles a single binary operation between two operands. The
// operator must be one of + - * / % surrounded by spaces at the top
// nesting level; there is no tokenizer and no precedence. That narrowness
// is load-bearing: "5-star rating" or an email address must never be
// mistaken for subtraction.
func (e *Evaluator) arithmetic(s string) (interface{}, bool) {
	op, pos := findOperator(s)
	if pos < 0 {
		return nil, false
	}

	left, leftInt, ok := e.operand(strings.TrimSpace(s[:pos]))
	if !ok {
		return nil, false
	}
	right, rightInt, ok := e.operand(strings.TrimSpace(s[pos+1:]))
	if !ok {
		return nil, false
	}

	bothInt := leftInt && rightInt
	switch op {
	case '+':
		return numeric(left+right, bothInt), true
	case '-':
		return numeric(left-right, bothInt), true
	case '*':
		return numeric(left*right, bothInt), true
	case '/':
		if right == 0 {
			return nil, false
		}
		if bothInt {
			return int(left) / int(right), true
		}
		return left / right, true
	case '%':
		if !bothInt || int(right) == 0 {
			return nil, false
		}
		return int(left) % int(right), true
	}
	return nil, false
}

// findOperator returns the first space-surrounded operator outside
// parentheses and quotes, scanning left to right.
func findOperator(s string) (byte, int) {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '+', '-', '*', '/', '%':
			if depth == 0 && i > 0 && i+1 < len(s) && s[i-1] == ' ' && s[i+1] == ' ' {
				return c, i
			}
		}
	}
	return 0, -1
}

// operand resolves one side of a binary operation: a parenthesized
// sub-expression (stripped and recursed), a numeric literal, or a state
// path.
func (e *Evaluator) operand(s string) (value float64, isInt bool, ok bool) {
	if s == "" {
		return 0, false, false
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return toNumber(e.Evaluate(s[1 : len(s)-1]))
	}
	if n, err := strconv.Atoi(s); err == nil {
		return float64(n), true, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, false, true
	}
	if v, found := e.src.Value(s); found {
		return toNumber(v)
	}
	return 0, false, false
}

func numeric(f float64, isInt bool) interface{} {
	if isInt {
		return int(f)
	}
	return f
}

// toNumber coerces a dynamic value into the arithmetic domain.
func toNumber(v interface{}) (value float64, isInt bool, ok bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true, true
	case int32:
		return float64(n), true, true
	case int64:
		return float64(n), true, true
	case float32:
		return float64(n), false, true
	case float64:
		return n, false, true
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return float64(i), true, true
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, false, true
		}
	}
	return 0, false, false
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
