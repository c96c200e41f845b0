package extract

import "strings"

// field walks nested JSON objects by key. It returns (nil, false) for a
// missing key or a non-object along the way, so heterogeneous records never
// produce errors, just non-matches.
func field(v interface{}, keys ...string) (interface{}, bool) {
	cur := v
	for _, k := range keys {
		obj, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = obj[k]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// rawString resolves a nested key to a string without trimming. Gate fields
// (content-item type, tool name) are compared against it exactly.
func rawString(v interface{}, keys ...string) (string, bool) {
	raw, ok := field(v, keys...)
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}

// stringField resolves a nested key to a trimmed string, for payload fields.
// Missing keys, wrong types, and whitespace-only values all report false.
func stringField(v interface{}, keys ...string) (string, bool) {
	s, ok := rawString(v, keys...)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}
