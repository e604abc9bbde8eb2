// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package broadcast

import (
	"strings"
	"testing"
)

func TestMessageType(t *testing.T) {
	tests := []struct {
		name string
		msg  any
		want int
	}{
		{"t field", map[string]any{"t": 1.0}, TypeComment},
		{"type field", map[string]any{"type": 38.0}, TypeKeepalive},
		{"t wins over type", map[string]any{"t": 3.0, "type": 1.0}, TypeSystemNotice},
		{"numeric string", map[string]any{"t": "123"}, TypeSessionEnd},
		{"no discriminant", map[string]any{}, -1},
		{"non-object", "x", -1},
		{"nil", nil, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MessageType(tt.msg); got != tt.want {
				t.Errorf("MessageType() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestToComment(t *testing.T) {
	t.Run("full message", func(t *testing.T) {
		msg := map[string]any{
			"t":          1.0,
			"cm":         "hi",
			"ac":         "Alice",
			"u":          42.0,
			"lci":        9001.0,
			"iurl":       "https://img/a.png",
			"created_at": 1700000000.0,
			"vip_rank":   2.0,
		}
		got := ToComment(msg)
		if got == nil {
			t.Fatal("ToComment() = nil, want record")
		}
		if got.Comment != "hi" {
			t.Errorf("Comment = %q, want hi", got.Comment)
		}
		if got.UserName != "Alice" || got.UserID != "42" || got.CommentID != "9001" {
			t.Errorf("identity = %q/%q/%q", got.UserName, got.UserID, got.CommentID)
		}
		if got.CreatedAt == nil || *got.CreatedAt != 1700000000 {
			t.Errorf("CreatedAt = %v, want 1700000000", got.CreatedAt)
		}
		if got.VipRank != 2 {
			t.Errorf("VipRank = %d, want 2", got.VipRank)
		}
		if got.ProfileImageURL != "https://img/a.png" {
			t.Errorf("ProfileImageURL = %q", got.ProfileImageURL)
		}
	})

	t.Run("long field names accepted", func(t *testing.T) {
		msg := map[string]any{"t": 1.0, "comment": "yo", "user_name": "Bob", "user_id": "7"}
		got := ToComment(msg)
		if got == nil || got.Comment != "yo" || got.UserName != "Bob" || got.UserID != "7" {
			t.Errorf("ToComment() = %+v", got)
		}
	})

	t.Run("empty text discarded", func(t *testing.T) {
		if got := ToComment(map[string]any{"t": 1.0, "cm": ""}); got != nil {
			t.Errorf("ToComment() = %+v, want nil", got)
		}
	})

	t.Run("wrong type discarded", func(t *testing.T) {
		if got := ToComment(map[string]any{"t": 3.0, "cm": "hi"}); got != nil {
			t.Errorf("ToComment() = %+v, want nil", got)
		}
	})

	t.Run("non-object discarded", func(t *testing.T) {
		if got := ToComment("junk"); got != nil {
			t.Errorf("ToComment() = %+v, want nil", got)
		}
	})
}

func TestToSystemNotice(t *testing.T) {
	t.Run("join line synthesized from user name", func(t *testing.T) {
		msg := map[string]any{"t": 3.0, "ac": "Alice", "u": "42", "created_at": 1700000000.0}
		got := ToSystemNotice(msg)
		if got == nil {
			t.Fatal("ToSystemNotice() = nil, want record")
		}
		if got.Text != "Alice"+joinNoticeSuffix {
			t.Errorf("Text = %q, want join line", got.Text)
		}
		if got.Key == "" {
			t.Error("Key is empty, want non-empty by construction")
		}
		if got.UserID != "42" {
			t.Errorf("UserID = %q, want 42", got.UserID)
		}
		if got.CreatedAt != 1700000000 {
			t.Errorf("CreatedAt = %d, want 1700000000", got.CreatedAt)
		}
	})

	t.Run("own text when no user name", func(t *testing.T) {
		got := ToSystemNotice(map[string]any{"t": 3.0, "cm": "maintenance soon"})
		if got == nil || got.Text != "maintenance soon" {
			t.Errorf("ToSystemNotice() = %+v", got)
		}
	})

	t.Run("generic placeholder as last resort", func(t *testing.T) {
		got := ToSystemNotice(map[string]any{"t": 3.0})
		if got == nil || got.Text != genericNoticeText {
			t.Errorf("ToSystemNotice() = %+v", got)
		}
		if got.Key == "" {
			t.Error("Key is empty, want non-empty")
		}
	})

	t.Run("explicit id becomes the key", func(t *testing.T) {
		got := ToSystemNotice(map[string]any{"t": 3.0, "lci": "n1", "ac": "Bob"})
		if got == nil || got.Key != "n1" {
			t.Errorf("ToSystemNotice() = %+v, want key n1", got)
		}
	})

	t.Run("synthesized key embeds user and text", func(t *testing.T) {
		got := ToSystemNotice(map[string]any{"t": 3.0, "ac": "Bob", "u": "7", "created_at": 5.0})
		if got == nil {
			t.Fatal("ToSystemNotice() = nil")
		}
		if !strings.Contains(got.Key, "7") || !strings.Contains(got.Key, got.Text) {
			t.Errorf("Key = %q, want user id and text embedded", got.Key)
		}
	})

	t.Run("viewer count survives", func(t *testing.T) {
		got := ToSystemNotice(map[string]any{"t": 3.0, "ac": "A", "online_viewer_num": 0.0})
		if got == nil || got.Viewers == nil || *got.Viewers != 0 {
			t.Errorf("Viewers = %+v, want explicit 0", got)
		}
	})

	t.Run("wrong type discarded", func(t *testing.T) {
		if got := ToSystemNotice(map[string]any{"t": 1.0, "ac": "A"}); got != nil {
			t.Errorf("ToSystemNotice() = %+v, want nil", got)
		}
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		msg         any
		wantComment bool
		wantNotice  bool
	}{
		{"comment", map[string]any{"t": 1.0, "cm": "hi"}, true, false},
		{"notice", map[string]any{"t": 3.0, "ac": "Alice"}, false, true},
		{"empty comment dropped", map[string]any{"t": 1.0, "cm": ""}, false, false},
		{"keepalive", map[string]any{"t": 38.0}, false, false},
		{"session end", map[string]any{"t": 123.0}, false, false},
		{"unknown type", map[string]any{"t": 99.0}, false, false},
		{"malformed", "junk", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment, notice := Classify(tt.msg)
			if (comment != nil) != tt.wantComment {
				t.Errorf("comment = %+v, want present=%v", comment, tt.wantComment)
			}
			if (notice != nil) != tt.wantNotice {
				t.Errorf("notice = %+v, want present=%v", notice, tt.wantNotice)
			}
			if comment != nil && notice != nil {
				t.Error("both comment and notice set, want at most one")
			}
		})
	}
}
