// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package validation

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Level    string `validate:"oneof=info debug"`
	Capacity int    `validate:"min=1,max=10"`
}

func TestValidateStruct(t *testing.T) {
	if err := ValidateStruct(sample{Level: "info", Capacity: 5}); err != nil {
		t.Errorf("ValidateStruct(valid) = %v, want nil", err)
	}
}

func TestValidateStruct_CollectsAllFailures(t *testing.T) {
	err := ValidateStruct(sample{Level: "bogus", Capacity: 0})
	if err == nil {
		t.Fatal("ValidateStruct(invalid) = nil, want error")
	}

	var serr *StructError
	if !errors.As(err, &serr) {
		t.Fatalf("error type = %T, want *StructError", err)
	}
	if len(serr.Fields) != 2 {
		t.Fatalf("Fields = %v, want both failures reported", serr.Fields)
	}

	msg := err.Error()
	if !strings.Contains(msg, "oneof") || !strings.Contains(msg, "min") {
		t.Errorf("Error() = %q, want failed tags named", msg)
	}
}

func TestValidateStruct_NonStructInput(t *testing.T) {
	err := ValidateStruct(42)
	if err == nil {
		t.Fatal("ValidateStruct(non-struct) = nil, want error")
	}
	var serr *StructError
	if errors.As(err, &serr) {
		t.Errorf("error type = *StructError, want plain error for non-struct input")
	}
}

func TestFieldErrorMessage(t *testing.T) {
	fe := FieldError{Field: "Config.Feed.Capacity", Tag: "min", Param: "1"}
	if got := fe.Error(); got != "Config.Feed.Capacity failed min=1" {
		t.Errorf("Error() = %q", got)
	}
	fe = FieldError{Field: "Config.Logging.Caller", Tag: "required"}
	if got := fe.Error(); got != "Config.Logging.Caller failed required" {
		t.Errorf("Error() = %q", got)
	}
}
