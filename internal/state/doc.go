// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

/*
Package state holds the explicitly-owned containers the UI layer reads
from: search results with their pagination, and the live-session comment
feed with dedup across overlapping sources.

The containers are deliberately not module-level singletons. The embedding
application constructs them, passes them to the rendering layer, and owns
their lifetime; everything here is plain mutex-guarded state with copy-out
snapshots.

The comment feed is where the dedup-key contract pays off: the initial
comment fetch, the periodic poll and the broadcast socket all deliver
overlapping messages, and the feed suppresses repeats by the key derived in
internal/normalize. Items for which no key can be derived are always
appended — dropping them could silently discard legitimate distinct
messages.
*/
package state
