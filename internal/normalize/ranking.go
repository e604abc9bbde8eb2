// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package normalize

import (
	"net/url"

	"github.com/takaseh/mirroview/internal/models"
)

// ============================================================================
// Gift Ranking: URL Resolution, Merge, Normalization
// ============================================================================

// GiftRankingURL resolves the gift-ranking endpoint URL advertised inside a
// poll or detail response.
func GiftRankingURL(polling, liveInfo any) string {
	return FirstString(
		At(polling, "gift_ranking_url"),
		At(polling, "giftRankingUrl"),
		At(polling, "gift_ranking.url"),
		At(polling, "gift.ranking_url"),
		At(polling, "live.gift_ranking_url"),
		At(liveInfo, "gift_ranking_url"),
		At(liveInfo, "live.gift_ranking_url"),
	)
}

// ObfuscatedUserID resolves the obfuscated owner ID the supplementary
// ranking fetch requires. The ranking URL's query string is tried last; a
// malformed URL contributes nothing rather than failing the lookup.
func ObfuscatedUserID(polling, liveInfo any, giftRankingURL string) string {
	fromURL := ""
	if giftRankingURL != "" {
		if u, err := url.Parse(giftRankingURL); err == nil {
			fromURL = u.Query().Get("obfuscated_user_id")
		}
	}
	return FirstString(
		At(polling, "obfuscated_user_id"),
		At(polling, "current_user_rank.user.obfuscated_user_id"),
		At(polling, "user.obfuscated_user_id"),
		At(liveInfo, "owner.obfuscated_user_id"),
		At(liveInfo, "user.obfuscated_user_id"),
		At(liveInfo, "live.owner.obfuscated_user_id"),
		At(liveInfo, "live.user.obfuscated_user_id"),
		fromURL,
	)
}

// rankingKey derives the merge identity of a raw ranking item: rank when
// present, else user ID, else "" (no stable key; kept unmerged).
func rankingKey(item any) string {
	if rank := first(item, "rank", "rank_no", "rankNo"); rank != nil {
		return "rank:" + scalarString(rank)
	}
	switch uid := first(item, "user.user_id", "user_id").(type) {
	case string:
		if uid != "" {
			return "user:" + uid
		}
	default:
		// Numeric IDs count unless zero, which the API uses as "no user".
		if n, ok := asNumber(uid); ok && n != 0 {
			return "user:" + formatFloat(n)
		}
	}
	return ""
}

// MergeRankingLists reconciles the authoritative base leaderboard with a
// supplementary fetch. Matching entries are shallow-merged with the extra's
// fields winning; base order is preserved; unmatched extras are appended in
// their original relative order, keyless extras last.
func MergeRankingLists(base, extra []any) []any {
	if len(base) == 0 {
		return extra
	}
	if len(extra) == 0 {
		return base
	}

	extraByKey := make(map[string]any, len(extra))
	var keyOrder []string
	var keyless []any
	for _, item := range extra {
		key := rankingKey(item)
		if key == "" {
			keyless = append(keyless, item)
			continue
		}
		if _, seen := extraByKey[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		extraByKey[key] = item
	}

	used := make(map[string]bool, len(extraByKey))
	merged := make([]any, 0, len(base)+len(extra))
	for _, item := range base {
		key := rankingKey(item)
		if extraItem, ok := extraByKey[key]; key != "" && ok {
			used[key] = true
			merged = append(merged, overlayItem(item, extraItem))
			continue
		}
		merged = append(merged, item)
	}
	for _, key := range keyOrder {
		if !used[key] {
			merged = append(merged, extraByKey[key])
		}
	}
	return append(merged, keyless...)
}

// overlayItem shallow-merges extra over base field-by-field. When either
// side is not an object, the extra item wins wholesale.
func overlayItem(base, extra any) any {
	baseMap, okBase := base.(map[string]any)
	extraMap, okExtra := extra.(map[string]any)
	if !okBase || !okExtra {
		return extra
	}
	out := make(map[string]any, len(baseMap)+len(extraMap))
	for k, v := range baseMap {
		out[k] = v
	}
	for k, v := range extraMap {
		out[k] = v
	}
	return out
}

// RankingItem normalizes one raw ranking item. The "who" sub-object hides
// under one of five container fields and the "what was given" under another
// five, depending on the API version; points appear under six names.
func RankingItem(item any) models.RankingEntry {
	user := first(item, "user", "owner", "sender", "viewer", "account")
	gift := first(item, "gift", "gift_master", "gift_detail", "gift_item", "present")

	rank := models.RankUnknown
	if r := first(item, "rank", "rank_no", "rankNo"); r != nil {
		rank = scalarString(r)
	}

	return models.RankingEntry{
		Rank:     rank,
		UserName: FirstString(At(user, "name"), At(item, "user_name"), At(item, "name"), PlaceholderUser),
		UserID:   FirstString(At(user, "user_id"), At(item, "user_id")),
		Points: FormatNumber(
			At(item, "gift_point"),
			At(item, "point"),
			At(item, "amount"),
			At(item, "total_point"),
			At(item, "total"),
			At(item, "points"),
		),
		GiftName: FirstString(
			At(gift, "name"),
			At(gift, "title"),
			At(item, "gift_name"),
			At(item, "gift_title"),
			At(item, "present_name"),
		),
		GiftImageURL: FirstString(
			At(item, "gift_image_url"),
			At(gift, "image_url"),
			At(gift, "icon_url"),
			At(gift, "thumbnail_url"),
			At(gift, "image"),
			At(item, "image_url"),
			At(item, "thumbnail_url"),
		),
		UserImageURL: FirstString(
			At(user, "profile_image_url"),
			At(user, "avatar_image_url"),
			At(user, "image_url"),
			At(item, "user_image_url"),
			At(item, "profile_image_url"),
		),
	}
}

// GiftRankingView merges the base and supplementary ranking fetches and
// normalizes every merged row. Non-array inputs count as empty.
func GiftRankingView(giftRanking, giftRankingExtra any) []models.RankingEntry {
	merged := MergeRankingLists(asList(giftRanking), asList(giftRankingExtra))
	entries := make([]models.RankingEntry, 0, len(merged))
	for _, item := range merged {
		entries = append(entries, RankingItem(item))
	}
	return entries
}
