// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package normalize

import "github.com/takaseh/mirroview/internal/models"

// ============================================================================
// Live Session View Builder
// ============================================================================

// LiveInfoView merges the static detail fetch and the periodic poll
// snapshot into one view. Returns nil only when both inputs are absent.
//
// Poll values win for volatile counters (viewers, comments, stars, gifts)
// because the poll endpoint is authoritative while a session runs; the
// static fetch wins for started_at since a start time never changes.
// Idempotent: the same two inputs always yield an identical record.
func LiveInfoView(liveInfo, polling any) *models.LiveSessionView {
	if liveInfo == nil && polling == nil {
		return nil
	}
	src := liveInfo
	if l := At(liveInfo, "live"); l != nil {
		src = l
	}
	pollSrc := polling
	if l := At(polling, "live"); l != nil {
		pollSrc = l
	}

	title := FirstString(At(src, "title"), At(src, "name"), At(pollSrc, "title"), At(pollSrc, "name"))
	ownerName := FirstString(
		At(src, "owner.name"),
		At(src, "user.name"),
		At(pollSrc, "owner.name"),
		At(pollSrc, "user.name"),
	)
	totalViewers := firstInt(At(pollSrc, "total_viewer_num"), At(src, "total_viewer_num"))
	onlineViewers := firstInt(At(pollSrc, "online_user_num"), At(src, "online_user_num"))
	viewers := onlineViewers
	if viewers == 0 {
		viewers = totalViewers
	}

	appTitle := FirstString(
		At(src, "app_title"),
		At(src, "app_short_title"),
		At(pollSrc, "app_title"),
		At(pollSrc, "app_short_title"),
	)

	view := &models.LiveSessionView{
		Title:         title,
		OwnerName:     ownerName,
		OwnerUserID:   FirstString(At(src, "owner.user_id"), At(src, "user.user_id"), At(pollSrc, "owner.user_id"), At(pollSrc, "user.user_id")),
		IsFollowing:   strictInt(At(src, "owner.is_following"), At(src, "is_following")),
		Viewers:       viewers,
		TotalViewers:  totalViewers,
		OnlineViewers: onlineViewers,
		CommentCount:  firstInt(At(pollSrc, "comment_num"), At(src, "comment_num")),
		StartedAt:     firstInt(At(src, "started_at"), At(pollSrc, "started_at")),
		AppTitle:      appTitle,
		CollabVacancy: strictInt(At(pollSrc, "collab_has_vacancy"), At(src, "collab_has_vacancy")),
		StarCount:     firstInt(At(pollSrc, "star_num"), At(src, "star_num")),
		GiftCount:     firstInt(At(pollSrc, "gift_num"), At(src, "gift_num")),
		LiveID:        FirstString(At(src, "live_id"), At(pollSrc, "live_id")),
	}
	if view.Title == "" {
		view.Title = "タイトルなし"
	}
	if view.OwnerName == "" {
		view.OwnerName = PlaceholderUnknown
	}
	if view.AppTitle == "" {
		view.AppTitle = PlaceholderUnknown
	}

	view.IsLive = resolveIsLive(liveInfo, src, pollSrc)
	if view.IsLive {
		view.Status = models.StatusLive
	} else {
		view.Status = models.StatusEnded
	}
	return view
}

// resolveIsLive derives liveness: explicit poll flag, then explicit static
// flag, then the top-level flag some detail responses carry, then the
// ended_at==0 convention of the oldest envelope.
func resolveIsLive(liveInfo, src, pollSrc any) bool {
	if b, ok := At(pollSrc, "is_live").(bool); ok {
		return b
	}
	if b, ok := At(src, "is_live").(bool); ok {
		return b
	}
	if b, ok := At(liveInfo, "is_live").(bool); ok {
		return b
	}
	n, ok := asNumber(At(src, "ended_at"))
	return ok && n == 0
}

// strictInt keeps tri-state flags tri-state: only a real number counts, no
// string coercion, and nil survives as "unknown".
func strictInt(candidates ...any) *int64 {
	for _, c := range candidates {
		if n, ok := asNumber(c); ok {
			i := int64(n)
			return &i
		}
	}
	return nil
}
