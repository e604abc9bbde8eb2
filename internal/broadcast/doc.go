// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

/*
Package broadcast classifies realtime messages from the Mirrativ broadcast
server (bcsvr) into UI-ready records.

The socket transport itself lives outside this layer: a collaborator opens
the connection using the Config extracted here and delivers decoded
messages one at a time, in arrival order. Every function in this package is
a pure mapping over one message, so classification may interleave freely
with poll normalization without synchronization.

Message types observed on the wire:

	t=1   user comment (text)
	t=3   system notice (viewer joined)
	t=38  keepalive (ignored)
	t=123 session end (surfaced to the session lifecycle owner, not here)

Classify returns exactly one of *models.CommentRecord,
*models.SystemNoticeRecord, or nil ("not actionable by this layer"). It
never returns a partial record: a t=1 message without resolvable text is
nil, and malformed input of any shape is nil.
*/
package broadcast
