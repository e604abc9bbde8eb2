// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package state

import (
	"sync"

	"github.com/takaseh/mirroview/internal/models"
)

// Search modes.
const (
	ModeLive = "live"
	ModeUser = "user"
)

// SearchSnapshot is a copy of the search state at one point in time. The
// UI renders from snapshots; mutation happens only through SearchStore
// methods.
type SearchSnapshot struct {
	Query    string
	Mode     string
	Results  []any // Raw result items; rendered through internal/normalize
	Searched bool
	Meta     models.PageMeta

	RecommendUsers   []models.UserRecord
	RecommendPage    int
	RecommendHasMore bool

	SelectedUser       *models.UserRecord
	SelectedUserDetail any
	LiveHistory        []any
	HistoryPage        int
	HistoryHasMore     bool
	HistoryMeta        models.PageMeta

	Err           string
	RecommendErr  string
	UserDetailErr string
	HistoryErr    string
}

// SearchStore owns the search page's state: query, mode, result pages,
// recommendations and the selected user's detail and live history. All
// access is through methods; reads get copies.
type SearchStore struct {
	mu   sync.RWMutex
	snap SearchSnapshot
}

// NewSearchStore returns a store in its initial state: live mode, no
// query, a first recommendation page pending.
func NewSearchStore() *SearchStore {
	return &SearchStore{
		snap: SearchSnapshot{
			Mode:             ModeLive,
			RecommendPage:    1,
			RecommendHasMore: true,
			HistoryPage:      1,
			HistoryHasMore:   true,
		},
	}
}

// Snapshot returns a copy of the current state. Slices are copied so the
// UI can iterate while a fetch mutates the store.
func (s *SearchStore) Snapshot() SearchSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.snap
	snap.Results = copyAny(s.snap.Results)
	snap.RecommendUsers = copyUsers(s.snap.RecommendUsers)
	snap.LiveHistory = copyAny(s.snap.LiveHistory)
	return snap
}

// BeginSearch records the query and mode and clears the previous results
// and error.
func (s *SearchStore) BeginSearch(query, mode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Query = query
	s.snap.Mode = mode
	s.snap.Results = nil
	s.snap.Searched = false
	s.snap.Meta = models.PageMeta{}
	s.snap.Err = ""
}

// SetResults stores a fresh result page with its pagination metadata.
func (s *SearchStore) SetResults(results []any, meta models.PageMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Results = results
	s.snap.Searched = true
	s.snap.Meta = meta
	s.snap.Err = ""
}

// AppendResults adds a follow-up page to the current results.
func (s *SearchStore) AppendResults(results []any, meta models.PageMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Results = append(s.snap.Results, results...)
	s.snap.Meta = meta
}

// SetSearchError records a failed search. Results stay as they were so
// the UI keeps showing the last good page.
func (s *SearchStore) SetSearchError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Searched = true
	s.snap.Err = msg
}

// SetRecommendations stores a recommendation page.
func (s *SearchStore) SetRecommendations(users []models.UserRecord, page int, hasMore bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page <= 1 {
		s.snap.RecommendUsers = users
	} else {
		s.snap.RecommendUsers = append(s.snap.RecommendUsers, users...)
	}
	s.snap.RecommendPage = page
	s.snap.RecommendHasMore = hasMore
	s.snap.RecommendErr = ""
}

// SetRecommendError records a failed recommendation fetch.
func (s *SearchStore) SetRecommendError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.RecommendErr = msg
}

// SelectUser stores the selected search result and clears the previous
// detail, history and their errors.
func (s *SearchStore) SelectUser(u *models.UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.SelectedUser = u
	s.snap.SelectedUserDetail = nil
	s.snap.LiveHistory = nil
	s.snap.HistoryPage = 1
	s.snap.HistoryHasMore = true
	s.snap.HistoryMeta = models.PageMeta{}
	s.snap.UserDetailErr = ""
	s.snap.HistoryErr = ""
}

// SetUserDetail stores the selected user's profile detail payload.
func (s *SearchStore) SetUserDetail(detail any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.SelectedUserDetail = detail
	s.snap.UserDetailErr = ""
}

// SetUserDetailError records a failed profile fetch.
func (s *SearchStore) SetUserDetailError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.UserDetailErr = msg
}

// SetLiveHistory stores a live-history page for the selected user.
// page 1 replaces, later pages append.
func (s *SearchStore) SetLiveHistory(items []any, page int, hasMore bool, meta models.PageMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page <= 1 {
		s.snap.LiveHistory = items
	} else {
		s.snap.LiveHistory = append(s.snap.LiveHistory, items...)
	}
	s.snap.HistoryPage = page
	s.snap.HistoryHasMore = hasMore
	s.snap.HistoryMeta = meta
	s.snap.HistoryErr = ""
}

// SetLiveHistoryError records a failed history fetch.
func (s *SearchStore) SetLiveHistoryError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.HistoryErr = msg
}

func copyAny(in []any) []any {
	if in == nil {
		return nil
	}
	out := make([]any, len(in))
	copy(out, in)
	return out
}

func copyUsers(in []models.UserRecord) []models.UserRecord {
	if in == nil {
		return nil
	}
	out := make([]models.UserRecord, len(in))
	copy(out, in)
	return out
}
