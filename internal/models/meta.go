// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package models

// ============================================================================
// Pagination Models
// ============================================================================

// PageMeta carries pagination metadata from list endpoints. The platform
// mixes page-numbered and cursor-based pagination across API versions, so
// both families are present; nil/empty means the response carried no value.
type PageMeta struct {
	CurrentPage   *int64 `json:"current_page,omitempty"`
	NextPage      *int64 `json:"next_page,omitempty"`
	PreviousPage  *int64 `json:"previous_page,omitempty"`
	TotalEntries  *int64 `json:"total_entries,omitempty"`
	CurrentCursor string `json:"current_cursor,omitempty"`
	NextCursor    string `json:"next_cursor,omitempty"`
}

// HasNext reports whether the response advertised a further page under
// either pagination scheme.
func (m *PageMeta) HasNext() bool {
	return m.NextPage != nil || m.NextCursor != ""
}
