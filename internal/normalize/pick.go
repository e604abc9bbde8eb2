// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// Scalar Pick Primitives
// ============================================================================
// Pick-first-valid helpers over candidate lists. Candidates come straight
// from decoded JSON trees, so numbers are float64 and absent values are nil.

// FirstString returns the first candidate that is a string with
// non-whitespace content, or "" when none qualifies.
func FirstString(candidates ...any) string {
	for _, c := range candidates {
		if s, ok := c.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// FirstNumber returns the first candidate that is a finite number, or a
// string parsing to one, or 0 when none qualifies.
//
// 0 means both "found zero" and "found nothing"; callers that need the
// distinction use NullableNumber instead.
func FirstNumber(candidates ...any) float64 {
	for _, c := range candidates {
		if n, ok := parseNumber(c); ok {
			return n
		}
	}
	return 0
}

// NullableNumber is FirstNumber with an explicit miss: it returns nil when
// no candidate qualifies, preserving the "unknown" vs "zero" distinction.
func NullableNumber(candidates ...any) *float64 {
	for _, c := range candidates {
		if n, ok := parseNumber(c); ok {
			return &n
		}
	}
	return nil
}

// FirstScalarString returns the first candidate that is a non-empty string
// or a finite number, stringified. Used for identifiers the API sends as
// either type (comment IDs, cursors, user IDs).
func FirstScalarString(candidates ...any) string {
	for _, c := range candidates {
		switch v := c.(type) {
		case string:
			if v != "" {
				return v
			}
		default:
			if n, ok := asNumber(c); ok {
				return formatFloat(n)
			}
		}
	}
	return ""
}

// parseNumber accepts finite numbers and numeric strings.
func parseNumber(v any) (float64, bool) {
	if n, ok := asNumber(v); ok {
		return n, true
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
			return n, true
		}
	}
	return 0, false
}

// asNumber accepts finite numbers only, without string coercion. JSON trees
// carry float64, but normalizers are also fed hand-built fixtures, so the
// common Go numeric kinds are accepted too.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case float32:
		return asNumber(float64(n))
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// formatFloat renders a float the way the UI expects identifiers: integers
// without an exponent or trailing zeros.
func formatFloat(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// scalarString stringifies any scalar for key building and display.
// nil renders as "".
func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		if s {
			return "true"
		}
		return "false"
	default:
		if n, ok := asNumber(v); ok {
			return formatFloat(n)
		}
		return fmt.Sprint(v)
	}
}

// firstInt truncates FirstNumber to an int64 counter.
func firstInt(candidates ...any) int64 {
	return int64(FirstNumber(candidates...))
}

// NullableInt is NullableNumber truncated to an int64 pointer, for counters
// and timestamps where zero is meaningful but "unknown" must survive.
func NullableInt(candidates ...any) *int64 {
	n := NullableNumber(candidates...)
	if n == nil {
		return nil
	}
	i := int64(*n)
	return &i
}
