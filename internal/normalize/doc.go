// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

/*
Package normalize turns heterogeneous Mirrativ API payloads into the
canonical records of internal/models.

The upstream API is not versioned in a machine-readable way and has silently
changed its response envelopes across releases: the same logical entity
arrives at the top level in one version and nested under a "data" or "live"
wrapper in another, with field names that drift between releases. Rather
than maintaining per-version parsers, every normalizer here encodes the
known shapes as an ordered preference list of candidate paths, tried
top-to-bottom. The first present, well-typed value wins; a wholly new shape
degrades to empty results instead of failing.

All inputs are generic JSON trees as produced by unmarshaling into any
(map[string]any, []any, float64, string, bool, nil).

Key Components:

  - Scalar primitives: FirstString, FirstNumber, NullableNumber pick the
    first valid candidate; NullableNumber keeps "unknown" distinct from
    "zero" for viewer counts and timestamps
  - Path helpers: At resolves dotted paths with safe short-circuiting;
    ExtractList returns the first candidate path holding an array
  - Entity normalizers: User, RankingItem, LiveInfoView and the collection
    extractors (users, lives, comments, ranking, page meta)
  - Reconciliation: MergeRankingLists merges a base leaderboard with a
    supplementary fetch, preserving base order
  - Dedup keys: CommentKey derives the stable identity the state container
    uses to suppress duplicates across fetch, poll and socket sources
  - Stream URL resolution: StreamURL and the LLStream websocket URL builders
  - Flatten: bounded path/value flattening for the diagnostics view

Totality:

Every function in this package is total. Malformed input, wrong types at an
expected path, unparseable numeric strings and nil inputs all degrade to
typed defaults ("", 0, nil, or a placeholder such as "不明"); nothing here
returns an error or panics.

All functions are pure and hold no state; arbitrary interleaving of socket
classification and poll normalization needs no synchronization.
*/
package normalize
