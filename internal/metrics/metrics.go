// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Instrumentation for the normalization pipeline. The counters answer the
// two questions that matter when a session misbehaves: what is the socket
// actually delivering, and how much of it is the dedup layer suppressing.

var (
	// BroadcastMessages counts classified socket messages by outcome kind:
	// "comment", "notice", "discarded" (empty-text t=1 / malformed t=3),
	// "keepalive", "session_end", "ignored".
	BroadcastMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mirroview_broadcast_messages_total",
			Help: "Total broadcast socket messages by classification outcome",
		},
		[]string{"kind"},
	)

	// FeedAppends counts comment/notice records accepted into a feed.
	FeedAppends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mirroview_feed_appends_total",
			Help: "Total records appended to a comment feed",
		},
		[]string{"source"}, // "comment", "notice"
	)

	// FeedDuplicates counts records suppressed by dedup-key match.
	FeedDuplicates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mirroview_feed_duplicates_total",
			Help: "Total records suppressed as duplicates by dedup key",
		},
		[]string{"source"},
	)

	// FeedEvictions counts records dropped when a bounded feed overflows.
	FeedEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mirroview_feed_evictions_total",
			Help: "Total records evicted from a bounded comment feed",
		},
	)
)
