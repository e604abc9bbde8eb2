// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package models

// ============================================================================
// Live Session Models
// ============================================================================

// Live session status strings shown in the UI.
const (
	StatusLive  = "配信中"
	StatusEnded = "終了"
)

// LiveSessionView aggregates a static session snapshot (the one-time detail
// fetch) and a live snapshot (the periodic poll) into one UI-ready view.
//
// Poll-sourced values take precedence over static-fetch values for volatile
// counters; the poll endpoint is authoritative while a session is running.
// StartedAt resolves static-first since a session's start time never changes.
type LiveSessionView struct {
	Title       string `json:"title"`         // Session title; "タイトルなし" when absent
	OwnerName   string `json:"owner"`         // Broadcaster display name; "不明" when absent
	OwnerUserID string `json:"owner_user_id"` // Broadcaster user ID; may be empty

	// IsFollowing is tri-state: nil means the payload carried no follow flag.
	IsFollowing *int64 `json:"is_following,omitempty"`

	Viewers       int64 `json:"viewers"`       // OnlineViewers if nonzero, else TotalViewers
	TotalViewers  int64 `json:"total_viewers"` // Cumulative viewer count
	OnlineViewers int64 `json:"online_viewers"`
	CommentCount  int64 `json:"comment_num"`
	StartedAt     int64 `json:"started_at"` // Unix seconds; 0 when absent

	AppTitle string `json:"app_title"` // Game/app being streamed; "不明" when absent

	// CollabVacancy is tri-state: nil means the payload carried no vacancy flag.
	CollabVacancy *int64 `json:"collab_has_vacancy,omitempty"`

	Status    string `json:"status"` // StatusLive or StatusEnded
	IsLive    bool   `json:"is_live"`
	StarCount int64  `json:"star_num"`
	GiftCount int64  `json:"gift_num"`
	LiveID    string `json:"live_id"`
}
