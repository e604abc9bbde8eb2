// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package broadcast

import "github.com/takaseh/mirroview/internal/normalize"

// Config carries what the socket collaborator needs to open the realtime
// transport. Both fields are mandatory; ExtractConfig returns nil rather
// than a half-filled config.
type Config struct {
	// Key is the bcsvr connection key for the session.
	Key string `json:"bcsvr_key"`
	// Host is the broadcast server hostname.
	Host string `json:"host"`
}

// ExtractConfig resolves the bcsvr connection settings from a live-detail
// or stream-status response. The key and host have moved between the top
// level and the "live"/"data" wrappers across API versions.
func ExtractConfig(info any) *Config {
	key := normalize.FirstString(
		normalize.At(info, "bcsvr_key"),
		normalize.At(info, "broadcast_key"),
		normalize.At(info, "live.bcsvr_key"),
		normalize.At(info, "live.broadcast_key"),
		normalize.At(info, "data.bcsvr_key"),
		normalize.At(info, "data.broadcast_key"),
	)
	host := normalize.FirstString(
		normalize.At(info, "broadcast_host"),
		normalize.At(info, "live.broadcast_host"),
		normalize.At(info, "data.broadcast_host"),
	)
	if key == "" || host == "" {
		return nil
	}
	return &Config{Key: key, Host: host}
}
