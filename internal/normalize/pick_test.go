// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package normalize

import (
	"math"
	"testing"
)

func TestFirstString(t *testing.T) {
	tests := []struct {
		name       string
		candidates []any
		expected   string
	}{
		{"first valid wins", []any{"a", "b"}, "a"},
		{"skips non-strings", []any{nil, 42.0, true, "found"}, "found"},
		{"skips empty", []any{"", "x"}, "x"},
		{"skips whitespace-only", []any{"   ", "x"}, "x"},
		{"all invalid", []any{nil, 1.0, ""}, ""},
		{"no candidates", nil, ""},
		{"numeric string is a string", []any{"123"}, "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstString(tt.candidates...); got != tt.expected {
				t.Errorf("FirstString() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFirstNumber(t *testing.T) {
	tests := []struct {
		name       string
		candidates []any
		expected   float64
	}{
		{"first number wins", []any{1.0, 2.0}, 1},
		{"numeric string parses", []any{"12", 3.0}, 12},
		{"unparseable string skipped", []any{"12px", 3.0}, 3},
		{"whitespace string skipped", []any{"  ", 3.0}, 3},
		{"nil and bool skipped", []any{nil, true, 7.0}, 7},
		{"nan skipped", []any{math.NaN(), 5.0}, 5},
		{"inf skipped", []any{math.Inf(1), 5.0}, 5},
		{"zero is found", []any{0.0, 9.0}, 0},
		{"all invalid yields zero", []any{nil, "x"}, 0},
		{"go ints accepted", []any{42}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstNumber(tt.candidates...); got != tt.expected {
				t.Errorf("FirstNumber() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNullableNumber(t *testing.T) {
	if got := NullableNumber(nil, "x"); got != nil {
		t.Errorf("NullableNumber() = %v, want nil", *got)
	}
	if got := NullableNumber(0.0); got == nil || *got != 0 {
		t.Errorf("NullableNumber(0) = %v, want 0", got)
	}
	if got := NullableNumber(nil, "15"); got == nil || *got != 15 {
		t.Errorf("NullableNumber(nil, \"15\") = %v, want 15", got)
	}
}

func TestNullableInt(t *testing.T) {
	if got := NullableInt("nope"); got != nil {
		t.Errorf("NullableInt() = %v, want nil", *got)
	}
	if got := NullableInt(1700000000.0); got == nil || *got != 1700000000 {
		t.Errorf("NullableInt() = %v, want 1700000000", got)
	}
}

func TestFirstScalarString(t *testing.T) {
	tests := []struct {
		name       string
		candidates []any
		expected   string
	}{
		{"string passes through", []any{"abc"}, "abc"},
		{"empty string skipped", []any{"", "x"}, "x"},
		{"number stringified", []any{nil, 123.0}, "123"},
		{"large id without exponent", []any{1234567890123.0}, "1234567890123"},
		{"fractional kept", []any{1.5}, "1.5"},
		{"nothing", []any{nil, true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstScalarString(tt.candidates...); got != tt.expected {
				t.Errorf("FirstScalarString() = %q, want %q", got, tt.expected)
			}
		})
	}
}
