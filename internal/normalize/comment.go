// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package normalize

import "strings"

// ============================================================================
// Comment Identity
// ============================================================================

// commentIDPaths lists every field a stable comment identifier has appeared
// under across API and socket versions.
var commentIDPaths = []string{
	"comment_id",
	"id",
	"comment.id",
	"commentId",
	"comment_id_str",
}

// CommentKey derives the deduplication key for a comment or notice item.
//
// A stable identifier field wins when present. Otherwise the key is the
// composite "userId|text|createdAt". ok is false only when even the
// composite is empty — the caller must then skip deduplication and treat
// the item as always-new, because suppressing such items could silently
// drop legitimate distinct messages.
func CommentKey(item any) (key string, ok bool) {
	for _, p := range commentIDPaths {
		if id := FirstScalarString(At(item, p)); id != "" {
			return id, true
		}
	}

	parts := []string{
		FirstScalarString(At(item, "user_id"), At(item, "user.user_id")),
		FirstScalarString(At(item, "comment"), At(item, "message")),
		FirstScalarString(At(item, "created_at"), At(item, "createdAt")),
	}
	fallback := strings.Join(parts, "|")
	if strings.Trim(fallback, "|") == "" {
		return "", false
	}
	return fallback, true
}

// CommentTimestamp resolves a comment's Unix-seconds timestamp, nil when no
// known field carries one. Zero is a valid timestamp and stays distinct
// from "unknown".
func CommentTimestamp(item any) *int64 {
	return NullableInt(
		At(item, "created_at"),
		At(item, "createdAt"),
		At(item, "time"),
		At(item, "timestamp"),
	)
}
