// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

/*
Package models defines the canonical record types produced by the
normalization layer.

Every type in this package is a read-only projection built fresh from a raw
API or broadcast-socket payload: records are never mutated after
construction, and a new record is built every time raw input changes. The
state container (internal/state) retains previous records for diffing; this
package holds data structures only.

Key Components:

  - UserRecord: a search-result or profile-lookup user
  - LiveSessionView: a live session merged from the static detail fetch and
    the periodic poll snapshot
  - CommentRecord: a chat comment from the broadcast socket or a comment
    fetch
  - SystemNoticeRecord: a join or other system notice from the broadcast
    socket
  - RankingEntry: one row of a gift-ranking leaderboard
  - PageMeta: pagination metadata for cursor- and page-based list endpoints

Nullable Semantics:

The upstream API distinguishes "field absent" from "field present and zero"
for volatile counters and timestamps. Fields where that distinction matters
are pointers (*int64); nil means the payload carried no usable value.

Thread Safety:

All models are plain data structures, immutable after creation, and safe
for concurrent read access. No internal mutexes are needed.

See Also:

  - internal/normalize: builds these records from raw payloads
  - internal/broadcast: builds comment/notice records from socket messages
  - internal/state: retains and deduplicates these records for the UI
*/
package models
