// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package normalize

import "strings"

// ============================================================================
// Path Resolution
// ============================================================================

// At resolves a flat key or dot-delimited path against a decoded JSON tree,
// short-circuiting to nil on any missing or non-object intermediate segment.
// A nil result means the path did not resolve; JSON null and "absent" are
// deliberately indistinguishable, matching how the UI treats both.
func At(v any, path string) any {
	cur := v
	for path != "" {
		seg := path
		if i := strings.IndexByte(path, '.'); i >= 0 {
			seg, path = path[:i], path[i+1:]
		} else {
			path = ""
		}
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[seg]
	}
	return cur
}

// first returns the value at the first candidate path that resolves to a
// non-nil value. This mirrors the precedence the UI applies when the same
// field has moved between envelope versions.
func first(v any, paths ...string) any {
	for _, p := range paths {
		if resolved := At(v, p); resolved != nil {
			return resolved
		}
	}
	return nil
}

// ExtractList walks the candidate paths in priority order and returns the
// first resolved value that is an array. Responses that match none of the
// known shapes yield an empty list rather than an error.
func ExtractList(res any, paths []string) []any {
	for _, p := range paths {
		if list, ok := At(res, p).([]any); ok {
			return list
		}
	}
	return []any{}
}

// asList coerces a value to a list, returning an empty list for anything
// that is not an array.
func asList(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{}
}
