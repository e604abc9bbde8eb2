// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package models

// ============================================================================
// Gift Ranking Models
// ============================================================================

// RankUnknown is the sentinel shown when a ranking item carries no rank.
const RankUnknown = "-"

// RankingEntry represents one row of a gift-ranking leaderboard after
// normalization. Points is pre-formatted with thousands separators because
// the UI renders it verbatim.
type RankingEntry struct {
	Rank         string `json:"rank"` // Ordinal as a string, or RankUnknown
	UserName     string `json:"user_name"`
	UserID       string `json:"user_id,omitempty"`
	Points       string `json:"points"` // Locale-grouped, "0" when absent
	GiftName     string `json:"gift_name,omitempty"`
	GiftImageURL string `json:"gift_image_url,omitempty"`
	UserImageURL string `json:"user_image_url,omitempty"`
}
