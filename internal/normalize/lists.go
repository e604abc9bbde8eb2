// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package normalize

import "github.com/takaseh/mirroview/internal/models"

// ============================================================================
// Collection Extractors
// ============================================================================
// Each extractor encodes the envelope shapes observed across API releases
// as an ordered candidate list. See the package comment for the rationale.

// userListPaths covers the user-search envelopes: flat lists in early
// releases, wrapped under "data" from mid-2024 builds onward.
var userListPaths = []string{
	"users",
	"user_list",
	"result",
	"search_result",
	"data.users",
	"data.user_list",
	"data.result",
	"data.search_result",
}

// ExtractUsers returns the raw user list from a search response.
func ExtractUsers(res any) []any {
	return ExtractList(res, userListPaths)
}

// ExtractLives returns the raw live list from a live-search or
// live-history response. The first present field wins even when it is not
// an array, in which case the result is empty.
func ExtractLives(res any) []any {
	return asList(first(res, "lives", "live_list", "history", "data"))
}

// ExtractComments returns the raw comment list from a comment fetch.
func ExtractComments(res any) []any {
	return asList(first(res, "comments", "live_comments", "data"))
}

// rankingPaths covers every gift-ranking nesting observed so far. The
// ranking moved under "gift_ranking" and then under "data" across releases,
// with three different list field names.
var rankingPaths = []string{
	"ranking",
	"rankings",
	"gift_ranking",
	"gift_ranking.ranking",
	"gift_ranking.rankings",
	"gift_ranking.ranks",
	"data.ranking",
	"data.rankings",
	"data.gift_ranking",
	"data.gift_ranking.ranking",
	"data.gift_ranking.rankings",
	"data.gift_ranking.ranks",
	"ranks",
	"items",
	"list",
	"results",
	"data",
}

// ExtractRanking returns the raw ranking list from a gift-ranking response.
func ExtractRanking(res any) []any {
	return ExtractList(res, rankingPaths)
}

// ExtractMeta returns pagination metadata from a list response. Both the
// page-numbered and the cursor-based scheme are resolved; absent fields
// stay nil/empty so callers can tell "no pagination" from "page zero".
func ExtractMeta(res any) models.PageMeta {
	meta := res
	if d := At(res, "data"); d != nil {
		meta = d
	}
	return models.PageMeta{
		CurrentPage:   NullableInt(At(meta, "current_page"), At(meta, "currentPage")),
		NextPage:      NullableInt(At(meta, "next_page"), At(meta, "nextPage")),
		PreviousPage:  NullableInt(At(meta, "previous_page"), At(meta, "previousPage")),
		TotalEntries:  NullableInt(At(meta, "total_entries"), At(meta, "totalEntries")),
		CurrentCursor: FirstScalarString(At(meta, "current_cursor"), At(meta, "currentCursor")),
		NextCursor:    FirstScalarString(At(meta, "next_cursor"), At(meta, "nextCursor")),
	}
}
