// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package normalize

import (
	"reflect"
	"testing"
)

func TestFlatten_NestedPaths(t *testing.T) {
	value := map[string]any{
		"a": map[string]any{"b": "x"},
		"n": 1234.0,
		"z": nil,
	}
	got := Flatten(value, FlattenLimits{})
	want := []FlattenRow{
		{Key: "a.b", Value: "x"},
		{Key: "n", Value: "1,234"},
		{Key: "z", Value: PlaceholderNone},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}
}

func TestFlatten_EmptyContainers(t *testing.T) {
	value := map[string]any{
		"arr": []any{},
		"obj": map[string]any{},
	}
	got := Flatten(value, FlattenLimits{})
	want := []FlattenRow{
		{Key: "arr", Value: "[]"},
		{Key: "obj", Value: "{}"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}
}

func TestFlatten_ArrayTruncation(t *testing.T) {
	arr := make([]any, 5)
	for i := range arr {
		arr[i] = "v"
	}
	got := Flatten(map[string]any{"list": arr}, FlattenLimits{MaxArray: 2})
	want := []FlattenRow{
		{Key: "list[0]", Value: "v"},
		{Key: "list[1]", Value: "v"},
		{Key: "list[+]", Value: "+3 items"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}
}

func TestFlatten_DepthLimit(t *testing.T) {
	value := map[string]any{
		"a": map[string]any{"b": map[string]any{"c": "deep"}},
	}
	got := Flatten(value, FlattenLimits{MaxDepth: 1})
	want := []FlattenRow{{Key: "a.b.c", Value: "[depth]"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}
}

func TestFlatten_MaxEntries(t *testing.T) {
	value := map[string]any{"a": "1", "b": "2", "c": "3", "d": "4"}
	got := Flatten(value, FlattenLimits{MaxEntries: 2})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Sorted key order makes the cut deterministic.
	if got[0].Key != "a" || got[1].Key != "b" {
		t.Errorf("rows = %v, want keys a, b", got)
	}
}

func TestFlatten_ScalarRoot(t *testing.T) {
	got := Flatten("hello", FlattenLimits{})
	want := []FlattenRow{{Key: "value", Value: "hello"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}

	if got := Flatten(true, FlattenLimits{}); got[0].Value != "true" {
		t.Errorf("Flatten(true) = %v", got)
	}
}

func TestFlattenLimits_Defaults(t *testing.T) {
	l := FlattenLimits{}.withDefaults()
	if l.MaxEntries != DefaultFlattenEntries || l.MaxDepth != DefaultFlattenDepth || l.MaxArray != DefaultFlattenArray {
		t.Errorf("withDefaults() = %+v", l)
	}
	l = FlattenLimits{MaxEntries: 10, MaxDepth: 2, MaxArray: 3}.withDefaults()
	if l.MaxEntries != 10 || l.MaxDepth != 2 || l.MaxArray != 3 {
		t.Errorf("withDefaults() clobbered explicit limits: %+v", l)
	}
}
