// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package models

// ============================================================================
// Comment and System Notice Models
// ============================================================================

// CommentRecord represents a single chat comment, either classified from a
// broadcast-socket message or normalized from a comment-list fetch.
type CommentRecord struct {
	CommentID string `json:"comment_id,omitempty"` // Stable ID; empty means no stable identity
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Comment   string `json:"comment"` // Comment text; never empty for a valid record

	// CreatedAt is Unix seconds; nil when the payload carried no timestamp.
	CreatedAt *int64 `json:"created_at,omitempty"`

	// Decorative fields carried through unmodified.
	ProfileImageURL      string `json:"profile_image_url,omitempty"`
	IsModerator          int64  `json:"is_moderator"`
	IsCheerleader        int64  `json:"is_cheerleader"`
	VipRank              int64  `json:"vip_rank"`
	YellRank             int64  `json:"yell_rank"`
	YellLevel            int64  `json:"yell_level"`
	ProfileFrameImageURL string `json:"profile_frame_image_url,omitempty"`
	PushImageURL         string `json:"push_image_url,omitempty"`

	// Raw keeps the original message for the diagnostics view.
	Raw any `json:"-"`
}

// Notice kinds. Only joins are produced today; the field exists so new
// notice types can be added without changing consumers.
const (
	NoticeKindJoin = "join"
)

// SystemNoticeRecord represents a system notice (a viewer joining the
// session) classified from a broadcast-socket message.
type SystemNoticeRecord struct {
	Key       string `json:"key"`  // Dedup key; non-empty by construction
	Kind      string `json:"type"` // NoticeKindJoin
	Text      string `json:"text"`
	UserName  string `json:"user_name,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	AvatarURL string `json:"profile_image_url,omitempty"`

	// Viewers is the online viewer count carried by some notices; nil when absent.
	Viewers *int64 `json:"viewers,omitempty"`

	CreatedAt int64 `json:"created_at"` // Unix seconds; defaulted to arrival time

	// Raw keeps the original message for the diagnostics view.
	Raw any `json:"-"`
}
