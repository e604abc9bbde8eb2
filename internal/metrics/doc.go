// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

// Package metrics exposes Prometheus counters for the normalization
// pipeline: broadcast message classification outcomes and comment-feed
// dedup behavior. Counters are registered on the default registry via
// promauto; the embedding application decides whether and where to expose
// them.
package metrics
