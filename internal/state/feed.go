// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package state

import (
	"strconv"
	"strings"
	"sync"

	"github.com/takaseh/mirroview/internal/metrics"
	"github.com/takaseh/mirroview/internal/models"
	"github.com/takaseh/mirroview/internal/normalize"
)

// DefaultFeedCapacity bounds the comment feed when the caller passes no
// capacity. Sessions with busy chats would otherwise grow without limit
// for their whole duration.
const DefaultFeedCapacity = 2000

// CommentFeed retains comments and system notices in arrival order,
// suppressing duplicates across the fetch, poll and socket sources by
// dedup key. Oldest entries are evicted once the capacity is reached.
type CommentFeed struct {
	mu       sync.RWMutex
	capacity int
	seen     map[string]struct{}
	items    []any
	keys     []string // parallel to items; "" for keyless entries
}

// NewCommentFeed returns an empty feed. capacity <= 0 means
// DefaultFeedCapacity.
func NewCommentFeed(capacity int) *CommentFeed {
	if capacity <= 0 {
		capacity = DefaultFeedCapacity
	}
	return &CommentFeed{
		capacity: capacity,
		seen:     make(map[string]struct{}),
	}
}

// AppendRaw adds a raw comment item from a fetch or poll response.
// Returns false when the item's dedup key was already seen.
func (f *CommentFeed) AppendRaw(item any) bool {
	key, ok := normalize.CommentKey(item)
	if !ok {
		key = ""
	}
	return f.append(item, key, "comment")
}

// AppendComment adds a classified socket comment.
func (f *CommentFeed) AppendComment(c *models.CommentRecord) bool {
	if c == nil {
		return false
	}
	return f.append(c, commentRecordKey(c), "comment")
}

// AppendNotice adds a classified system notice. Notice keys are non-empty
// by construction, so notices always deduplicate.
func (f *CommentFeed) AppendNotice(n *models.SystemNoticeRecord) bool {
	if n == nil {
		return false
	}
	return f.append(n, n.Key, "notice")
}

// append is the single insertion path. An empty key means "no stable
// identity": dedup is skipped and the item always lands.
func (f *CommentFeed) append(item any, key, source string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if key != "" {
		if _, dup := f.seen[key]; dup {
			metrics.FeedDuplicates.WithLabelValues(source).Inc()
			return false
		}
		f.seen[key] = struct{}{}
	}
	f.items = append(f.items, item)
	f.keys = append(f.keys, key)
	metrics.FeedAppends.WithLabelValues(source).Inc()

	if len(f.items) > f.capacity {
		evicted := len(f.items) - f.capacity
		for _, k := range f.keys[:evicted] {
			if k != "" {
				delete(f.seen, k)
			}
		}
		f.items = append([]any(nil), f.items[evicted:]...)
		f.keys = append([]string(nil), f.keys[evicted:]...)
		metrics.FeedEvictions.Add(float64(evicted))
	}
	return true
}

// Items returns a copy of the feed in arrival order.
func (f *CommentFeed) Items() []any {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]any, len(f.items))
	copy(out, f.items)
	return out
}

// Len returns the number of retained entries.
func (f *CommentFeed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.items)
}

// Reset empties the feed, typically on session change.
func (f *CommentFeed) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = nil
	f.keys = nil
	f.seen = make(map[string]struct{})
}

// commentRecordKey mirrors normalize.CommentKey for the typed record: the
// stable ID when present, else the userId|text|createdAt composite, else
// "" (skip dedup).
func commentRecordKey(c *models.CommentRecord) string {
	if c.CommentID != "" {
		return c.CommentID
	}
	created := ""
	if c.CreatedAt != nil {
		created = strconv.FormatInt(*c.CreatedAt, 10)
	}
	key := c.UserID + "|" + c.Comment + "|" + created
	if strings.Trim(key, "|") == "" {
		return ""
	}
	return key
}
