// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package normalize

import "github.com/takaseh/mirroview/internal/models"

// ============================================================================
// User Normalization
// ============================================================================
// Search results, recommendations and profile lookups each wrap the user a
// different way (flat, under "user", or camelCased). The getters below are
// also used directly by list renderers that never build a full record.

// UserID resolves the user identifier from any known user shape.
func UserID(user any) string {
	return FirstString(At(user, "user_id"), At(user, "id"), At(user, "user.user_id"))
}

// UserName resolves the display name, falling back to the generic
// placeholder so list rows are never blank.
func UserName(user any) string {
	return FirstString(
		At(user, "name"),
		At(user, "user.name"),
		At(user, "username"),
		At(user, "screen_name"),
		PlaceholderUser,
	)
}

// UserAvatar resolves the profile image URL; empty when no shape matches.
func UserAvatar(user any) string {
	return FirstString(
		At(user, "profile_image_url"),
		At(user, "user.profile_image_url"),
		At(user, "avatar_image_url"),
		At(user, "image_url"),
	)
}

// UserDescription resolves the profile text; empty when no shape matches.
func UserDescription(user any) string {
	return FirstString(At(user, "description"), At(user, "user.description"), At(user, "bio"))
}

// UserLiveID resolves the ID of the user's current broadcast. Empty means
// the user is not live (or the response predates the onlive field).
func UserLiveID(user any) string {
	return FirstString(
		At(user, "onlive.live_id"),
		At(user, "onlive.id"),
		At(user, "live.live_id"),
		At(user, "live_id"),
	)
}

// User builds the canonical record for one raw search-result or lookup
// entry. Total: any input, including nil, yields a record with defaults.
func User(user any) models.UserRecord {
	return models.UserRecord{
		ID:          UserID(user),
		Name:        UserName(user),
		AvatarURL:   UserAvatar(user),
		Description: UserDescription(user),
		LiveID:      UserLiveID(user),
	}
}
