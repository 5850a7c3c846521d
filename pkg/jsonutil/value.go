package jsonutil

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CoerceString converts a value to string when it is already a string.
func CoerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	default:
		return ""
	}
}

// CoerceScalar renders strings and numbers as display text. The second
// return is false for empty strings, zero numbers, and non-scalar values,
// matching the "print only meaningful scalars" contract of the key/value
// output formatters.
func CoerceScalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, strings.TrimSpace(t) != ""
	case float64:
		if t == 0 {
			return "0", false
		}
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10), true
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), t != 0
	case int64:
		return strconv.FormatInt(t, 10), t != 0
	case json.Number:
		return t.String(), t.String() != "0" && t.String() != ""
	case bool:
		return strconv.FormatBool(t), t
	default:
		return "", false
	}
}

// GetStringByPath reads a string from a restricted JSONPath subset
// ($.a.b, $.items[0].x, $.items[*].x). When a wildcard is used, the first
// non-empty string wins.
func GetStringByPath(root map[string]any, path string) string {
	vals, ok := GetValuesByPath(root, path)
	if !ok {
		return ""
	}
	for _, v := range vals {
		if s := CoerceString(v); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// GetValuesByPath reads all matched terminal values from a restricted
// JSONPath subset.
func GetValuesByPath(root any, path string) ([]any, bool) {
	p := strings.TrimSpace(path)
	if p == "" || !strings.HasPrefix(p, "$.") {
		return nil, false
	}
	parts := strings.Split(strings.TrimPrefix(p, "$."), ".")
	return collectPathValues(root, parts)
}

func collectPathValues(cur any, parts []string) ([]any, bool) {
	if len(parts) == 0 {
		return []any{cur}, true
	}
	part := strings.TrimSpace(parts[0])
	if part == "" {
		return nil, false
	}
	name, idx, hasIdx, isStar := splitIndex(part)
	if name != "" {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		next, ok := m[name]
		if !ok {
			return nil, false
		}
		cur = next
	}
	rest := parts[1:]
	if !hasIdx {
		return collectPathValues(cur, rest)
	}
	arr, ok := cur.([]any)
	if !ok {
		return nil, false
	}
	if isStar {
		out := make([]any, 0, len(arr))
		if len(rest) == 0 {
			out = append(out, arr...)
			return out, true
		}
		for _, item := range arr {
			vals, ok := collectPathValues(item, rest)
			if !ok {
				continue
			}
			out = append(out, vals...)
		}
		return out, true
	}
	if idx < 0 || idx >= len(arr) {
		return nil, false
	}
	return collectPathValues(arr[idx], rest)
}

func splitIndex(s string) (name string, idx int, hasIdx bool, isStar bool) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return s, 0, false, false
	}
	close := strings.IndexByte(s, ']')
	if close < 0 || close < open {
		return s, 0, false, false
	}
	name = s[:open]
	inner := strings.TrimSpace(s[open+1 : close])
	if inner == "*" {
		return name, 0, true, true
	}
	n, err := strconv.Atoi(inner)
	if err != nil {
		return name, 0, false, false
	}
	return name, n, true, false
}
