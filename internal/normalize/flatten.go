// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package normalize

import (
	"sort"
	"strconv"
)

// ============================================================================
// Debug Flattening
// ============================================================================

// Default flatten limits. Deep payloads collapse into marker rows instead
// of flooding the diagnostics table.
const (
	DefaultFlattenEntries = 240
	DefaultFlattenDepth   = 4
	DefaultFlattenArray   = 8
)

// FlattenLimits bounds a Flatten traversal. Zero values mean the defaults.
type FlattenLimits struct {
	MaxEntries int `koanf:"max_entries" validate:"omitempty,min=1,max=10000"`
	MaxDepth   int `koanf:"max_depth" validate:"omitempty,min=1,max=32"`
	MaxArray   int `koanf:"max_array" validate:"omitempty,min=1,max=1000"`
}

func (l FlattenLimits) withDefaults() FlattenLimits {
	if l.MaxEntries <= 0 {
		l.MaxEntries = DefaultFlattenEntries
	}
	if l.MaxDepth <= 0 {
		l.MaxDepth = DefaultFlattenDepth
	}
	if l.MaxArray <= 0 {
		l.MaxArray = DefaultFlattenArray
	}
	return l
}

// FlattenRow is one path/value row of the diagnostics table.
type FlattenRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Flatten renders an arbitrary decoded JSON tree as flat path/value rows
// for the diagnostics view. Nested objects become dotted paths and array
// elements bracketed indices. Arrays beyond MaxArray collapse into a
// single "<path>[+]" summary row, traversal beyond MaxDepth into a
// "[depth]" marker row, and emission stops once MaxEntries rows exist.
//
// Object keys are walked in sorted order so output is deterministic; the
// decoded tree does not retain the payload's field order.
func Flatten(value any, limits FlattenLimits) []FlattenRow {
	f := &flattener{limits: limits.withDefaults()}
	if m, ok := value.(map[string]any); ok {
		for _, key := range sortedKeys(m) {
			f.walk(m[key], key, 0)
			if f.full() {
				break
			}
		}
	} else {
		f.walk(value, "value", 0)
	}
	return f.rows
}

type flattener struct {
	limits FlattenLimits
	rows   []FlattenRow
}

func (f *flattener) full() bool {
	return len(f.rows) >= f.limits.MaxEntries
}

func (f *flattener) push(key, value string) {
	if key == "" || f.full() {
		return
	}
	f.rows = append(f.rows, FlattenRow{Key: key, Value: value})
}

func (f *flattener) walk(val any, path string, depth int) {
	if f.full() {
		return
	}
	if depth > f.limits.MaxDepth {
		f.push(path, "[depth]")
		return
	}
	switch v := val.(type) {
	case nil:
		f.push(path, PlaceholderNone)
	case string:
		f.push(path, v)
	case bool:
		f.push(path, scalarString(v))
	case []any:
		if len(v) == 0 {
			f.push(path, "[]")
			return
		}
		limit := len(v)
		if limit > f.limits.MaxArray {
			limit = f.limits.MaxArray
		}
		for i := 0; i < limit; i++ {
			f.walk(v[i], path+"["+strconv.Itoa(i)+"]", depth+1)
		}
		if len(v) > limit {
			f.push(path+"[+]", "+"+strconv.Itoa(len(v)-limit)+" items")
		}
	case map[string]any:
		if len(v) == 0 {
			f.push(path, "{}")
			return
		}
		for _, key := range sortedKeys(v) {
			f.walk(v[key], path+"."+key, depth+1)
			if f.full() {
				break
			}
		}
	default:
		if n, ok := asNumber(val); ok {
			f.push(path, FormatNumber(n))
			return
		}
		f.push(path, scalarString(val))
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
