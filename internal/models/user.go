// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package models

// ============================================================================
// User Models
// ============================================================================

// UserRecord represents a user from a search result or profile lookup.
// The same logical user arrives in several envelope shapes depending on the
// API version; internal/normalize resolves them into this canonical form.
type UserRecord struct {
	ID          string `json:"user_id"`               // Stable user identifier
	Name        string `json:"name"`                  // Display name; "ユーザー" when absent
	AvatarURL   string `json:"avatar_url,omitempty"`  // Profile image URL; may be empty
	Description string `json:"description,omitempty"` // Profile text; may be empty
	LiveID      string `json:"live_id,omitempty"`     // Current broadcast ID; empty unless broadcasting
}

// IsBroadcasting reports whether the user was broadcasting at lookup time.
func (u *UserRecord) IsBroadcasting() bool {
	return u.LiveID != ""
}
