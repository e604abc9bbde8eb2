// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package normalize

import "testing"

func TestStreamURL(t *testing.T) {
	tests := []struct {
		name   string
		status any
		want   string
	}{
		{
			name:   "direct hls field",
			status: map[string]any{"streaming_url_hls": "https://cdn/playlist.m3u8"},
			want:   "https://cdn/playlist.m3u8",
		},
		{
			name: "direct field wins over list",
			status: map[string]any{
				"streaming_url":      "https://cdn/direct.m3u8",
				"streaming_url_list": []any{"https://cdn/list.m3u8"},
			},
			want: "https://cdn/direct.m3u8",
		},
		{
			name:   "list of strings",
			status: map[string]any{"streaming_url_list": []any{"", "https://cdn/a.m3u8"}},
			want:   "https://cdn/a.m3u8",
		},
		{
			name: "list of objects",
			status: map[string]any{
				"url_list": []any{
					map[string]any{"quality": "low"},
					map[string]any{"url": "https://cdn/b.m3u8"},
				},
			},
			want: "https://cdn/b.m3u8",
		},
		{name: "nothing resolves", status: map[string]any{}, want: ""},
		{name: "nil input", status: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StreamURL(tt.status); got != tt.want {
				t.Errorf("StreamURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLLStreamWSURL(t *testing.T) {
	tests := []struct {
		name      string
		edge, key string
		want      string
	}{
		{
			name: "bare host gets default port",
			edge: "edge.example.com",
			key:  "k1",
			want: "ws://edge.example.com:1883/ws/k1/video/avc",
		},
		{
			name: "host with port kept",
			edge: "edge.example.com:9000",
			key:  "k1",
			want: "ws://edge.example.com:9000/ws/k1/video/avc",
		},
		{
			name: "wss url used as-is",
			edge: "wss://edge.example.com/",
			key:  "k1",
			want: "wss://edge.example.com/ws/k1/video/avc",
		},
		{name: "missing key", edge: "edge.example.com", key: "", want: ""},
		{name: "missing edge", edge: "", key: "k1", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LLStreamWSURL(tt.edge, tt.key, llstreamVideoSuffix); got != tt.want {
				t.Errorf("LLStreamWSURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLLStreamTrackURLs(t *testing.T) {
	t.Run("ready-made url wins", func(t *testing.T) {
		status := map[string]any{
			"streaming_url_llstream_video": "wss://edge/ws/k/video/avc",
			"streaming_url_edge":           "other-edge",
			"streaming_key":                "k",
		}
		if got := LLStreamVideoWSURL(status); got != "wss://edge/ws/k/video/avc" {
			t.Errorf("LLStreamVideoWSURL() = %q", got)
		}
	})

	t.Run("assembled from nested edge and key", func(t *testing.T) {
		status := map[string]any{
			"live": map[string]any{
				"streaming_url_edge": "edge.example.com",
				"streaming_key":      "abc",
			},
		}
		want := "ws://edge.example.com:1883/ws/abc/audio/aac"
		if got := LLStreamAudioWSURL(status); got != want {
			t.Errorf("LLStreamAudioWSURL() = %q, want %q", got, want)
		}
	})

	t.Run("missing parts yield empty", func(t *testing.T) {
		if got := LLStreamVideoWSURL(map[string]any{"streaming_key": "k"}); got != "" {
			t.Errorf("LLStreamVideoWSURL() = %q, want empty", got)
		}
	})
}
