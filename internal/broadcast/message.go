// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package broadcast

import (
	"strconv"
	"time"

	"github.com/takaseh/mirroview/internal/metrics"
	"github.com/takaseh/mirroview/internal/models"
	"github.com/takaseh/mirroview/internal/normalize"
)

// ============================================================================
// Message Classification
// ============================================================================

// Broadcast message type discriminants, read from the "t" or "type" field.
const (
	TypeComment      = 1
	TypeSystemNotice = 3
	TypeKeepalive    = 38
	TypeSessionEnd   = 123
)

// joinNoticeSuffix is appended to the user name for synthesized join text.
const joinNoticeSuffix = " が入室しました"

// genericNoticeText is shown when a notice carries neither a user nor text.
const genericNoticeText = "入室通知"

// MessageType returns the numeric type discriminant of a raw message, or
// -1 when none resolves.
func MessageType(msg any) int {
	n := normalize.NullableNumber(normalize.At(msg, "t"), normalize.At(msg, "type"))
	if n == nil {
		return -1
	}
	return int(*n)
}

// ToComment converts a t=1 socket message into a comment record. Any other
// type, a non-object message, or a message with no resolvable text yields
// nil.
func ToComment(msg any) *models.CommentRecord {
	if _, ok := msg.(map[string]any); !ok {
		return nil
	}
	if MessageType(msg) != TypeComment {
		return nil
	}

	text := normalize.FirstString(
		normalize.At(msg, "cm"),
		normalize.At(msg, "comment"),
		normalize.At(msg, "speech"),
		normalize.At(msg, "message"),
	)
	if text == "" {
		return nil
	}

	return &models.CommentRecord{
		CommentID:            normalize.FirstScalarString(normalize.At(msg, "lci"), normalize.At(msg, "comment_id")),
		UserID:               normalize.FirstScalarString(normalize.At(msg, "u"), normalize.At(msg, "user_id")),
		UserName:             normalize.FirstScalarString(normalize.At(msg, "ac"), normalize.At(msg, "user_name")),
		Comment:              text,
		CreatedAt:            normalize.CommentTimestamp(msg),
		ProfileImageURL:      normalize.FirstString(normalize.At(msg, "iurl"), normalize.At(msg, "profile_image_url")),
		IsModerator:          int64(normalize.FirstNumber(normalize.At(msg, "is_moderator"))),
		IsCheerleader:        int64(normalize.FirstNumber(normalize.At(msg, "is_cheerleader"))),
		VipRank:              int64(normalize.FirstNumber(normalize.At(msg, "vip_rank"))),
		YellRank:             int64(normalize.FirstNumber(normalize.At(msg, "yell_rank"))),
		YellLevel:            int64(normalize.FirstNumber(normalize.At(msg, "yell_level"))),
		ProfileFrameImageURL: normalize.FirstString(normalize.At(msg, "profile_frame_image_url")),
		PushImageURL:         normalize.FirstString(normalize.At(msg, "push_image_url")),
		Raw:                  msg,
	}
}

// ToSystemNotice converts a t=3 socket message into a system notice. When
// a user name resolves the notice is a synthesized join line; otherwise
// the message's own text is used, with a generic placeholder as the last
// resort. The dedup key is non-empty by construction.
func ToSystemNotice(msg any) *models.SystemNoticeRecord {
	if _, ok := msg.(map[string]any); !ok {
		return nil
	}
	if MessageType(msg) != TypeSystemNotice {
		return nil
	}

	userName := normalize.FirstString(normalize.At(msg, "ac"), normalize.At(msg, "user_name"))
	userID := normalize.FirstString(normalize.At(msg, "u"), normalize.At(msg, "user_id"))
	avatar := normalize.FirstString(normalize.At(msg, "iurl"), normalize.At(msg, "profile_image_url"))

	text := userName + joinNoticeSuffix
	if userName == "" {
		text = normalize.FirstString(
			normalize.At(msg, "cm"),
			normalize.At(msg, "message"),
			normalize.At(msg, "speech"),
			normalize.At(msg, "notice_text"),
			normalize.At(msg, "text"),
		)
		if text == "" {
			text = genericNoticeText
		}
	}

	createdAt := time.Now().Unix()
	if ts := normalize.CommentTimestamp(msg); ts != nil {
		createdAt = *ts
	}

	key := normalize.FirstString(normalize.At(msg, "lci"), normalize.At(msg, "comment_id"))
	if key == "" {
		key = strconv.FormatInt(createdAt, 10) + ":" + userID + ":" + text
	}

	return &models.SystemNoticeRecord{
		Key:       key,
		Kind:      models.NoticeKindJoin,
		Text:      text,
		UserName:  userName,
		UserID:    userID,
		AvatarURL: avatar,
		Viewers: normalize.NullableInt(
			normalize.At(msg, "online_viewer_num"),
			normalize.At(msg, "online_user_num"),
			normalize.At(msg, "viewer_num"),
		),
		CreatedAt: createdAt,
		Raw:       msg,
	}
}

// Classify maps one raw socket message to a comment, a system notice, or
// nil for everything this layer does not act on (keepalives, session-end
// markers, unknown types, malformed messages). The result is never a
// partial record.
func Classify(msg any) (comment *models.CommentRecord, notice *models.SystemNoticeRecord) {
	switch MessageType(msg) {
	case TypeComment:
		comment = ToComment(msg)
		if comment == nil {
			metrics.BroadcastMessages.WithLabelValues("discarded").Inc()
			return nil, nil
		}
		metrics.BroadcastMessages.WithLabelValues("comment").Inc()
		return comment, nil
	case TypeSystemNotice:
		notice = ToSystemNotice(msg)
		if notice == nil {
			metrics.BroadcastMessages.WithLabelValues("discarded").Inc()
			return nil, nil
		}
		metrics.BroadcastMessages.WithLabelValues("notice").Inc()
		return nil, notice
	case TypeKeepalive:
		metrics.BroadcastMessages.WithLabelValues("keepalive").Inc()
	case TypeSessionEnd:
		metrics.BroadcastMessages.WithLabelValues("session_end").Inc()
	default:
		metrics.BroadcastMessages.WithLabelValues("ignored").Inc()
	}
	return nil, nil
}
