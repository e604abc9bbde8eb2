// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package normalize

import "strings"

// ============================================================================
// Stream URL Resolution
// ============================================================================
// The playback URL moved between direct fields and URL-list forms across
// stream-status versions, and the low-latency (LLStream) transport is
// advertised either as a ready-made websocket URL or as an edge host plus
// stream key that the client assembles itself.

// llstreamDefaultPort is the edge port used when the status carries a bare
// edge host.
const llstreamDefaultPort = "1883"

// LLStream track suffixes.
const (
	llstreamVideoSuffix = "video/avc"
	llstreamAudioSuffix = "audio/aac"
)

// StreamURL resolves the HLS playback URL from a stream-status object,
// preferring direct fields and falling back to the first usable entry of a
// URL list. Empty when no shape matches.
func StreamURL(status any) string {
	direct, _ := first(status,
		"streaming_url_hls",
		"streaming_url",
		"hls_url",
		"playlist_url",
	).(string)
	if direct != "" {
		return direct
	}

	list := asList(first(status, "streaming_url_list", "streaming_urls", "url_list"))
	for _, item := range list {
		if s, ok := item.(string); ok && s != "" {
			return s
		}
		if s := FirstString(At(item, "url"), At(item, "streaming_url"), At(item, "hls_url")); s != "" {
			return s
		}
	}
	return ""
}

// LLStreamWSURL assembles a LLStream websocket URL from an edge and stream
// key. An edge that is already a ws:// or wss:// URL is used as-is; a bare
// host gets the default edge port. Empty when either part is missing.
func LLStreamWSURL(edge, streamKey, suffix string) string {
	if edge == "" || streamKey == "" {
		return ""
	}
	if strings.HasPrefix(edge, "ws://") || strings.HasPrefix(edge, "wss://") {
		return strings.TrimRight(edge, "/") + "/ws/" + streamKey + "/" + suffix
	}
	host := edge
	if !strings.Contains(host, ":") {
		host += ":" + llstreamDefaultPort
	}
	return "ws://" + host + "/ws/" + streamKey + "/" + suffix
}

// LLStreamVideoWSURL resolves the LLStream video websocket URL from a
// stream status, building it from edge and key when no ready-made URL is
// advertised.
func LLStreamVideoWSURL(status any) string {
	return llstreamTrackURL(status, "streaming_url_llstream_video", llstreamVideoSuffix)
}

// LLStreamAudioWSURL resolves the LLStream audio websocket URL.
func LLStreamAudioWSURL(status any) string {
	return llstreamTrackURL(status, "streaming_url_llstream_audio", llstreamAudioSuffix)
}

func llstreamTrackURL(status any, directField, suffix string) string {
	if direct := FirstString(
		At(status, directField),
		At(status, "live."+directField),
		At(status, "data."+directField),
	); direct != "" {
		return direct
	}

	streamKey := FirstString(
		At(status, "streaming_key"),
		At(status, "live.streaming_key"),
		At(status, "data.streaming_key"),
	)
	edge := FirstString(
		At(status, "streaming_url_edge"),
		At(status, "live.streaming_url_edge"),
		At(status, "data.streaming_url_edge"),
	)
	return LLStreamWSURL(edge, streamKey, suffix)
}
