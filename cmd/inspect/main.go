// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

// Package main is the offline payload inspector for Mirroview.
//
// The inspector replays captured Mirrativ payloads through the
// normalization layer without touching the network, which is how response
// envelope changes get diagnosed: capture the JSON the app received, then
// inspect what the normalizers make of it.
//
//	inspect -mode flatten capture/live_detail.json
//	inspect -mode liveinfo -poll capture/polling.json capture/live_detail.json
//	inspect -mode ranking -extra capture/ranking_extra.json capture/ranking.json
//	inspect -mode classify capture/socket_messages.json
//
// Modes:
//
//   - flatten: render the payload as flat path/value rows
//   - liveinfo: build the merged live-session view (static + optional poll)
//   - ranking: merge and normalize a gift-ranking fetch (plus optional extra)
//   - classify: classify socket messages (one object or an array) and run
//     them through a comment feed to show dedup behavior
//
// Reads stdin when no file argument is given. Configuration follows the
// normal layering (mirroview.yaml, MIRROVIEW_* env vars).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/takaseh/mirroview/internal/broadcast"
	"github.com/takaseh/mirroview/internal/config"
	"github.com/takaseh/mirroview/internal/logging"
	"github.com/takaseh/mirroview/internal/normalize"
	"github.com/takaseh/mirroview/internal/state"
)

func main() {
	mode := flag.String("mode", "flatten", "flatten | liveinfo | ranking | classify")
	pollPath := flag.String("poll", "", "optional poll snapshot JSON for -mode liveinfo")
	extraPath := flag.String("extra", "", "optional supplementary ranking JSON for -mode ranking")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		os.Exit(1)
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	payload, err := readPayload(flag.Arg(0))
	if err != nil {
		logging.Error(logging.TagAPI).Err(err).Msg("failed to read payload")
		os.Exit(1)
	}

	switch *mode {
	case "flatten":
		err = runFlatten(payload, cfg.Flatten)
	case "liveinfo":
		err = runLiveInfo(payload, *pollPath)
	case "ranking":
		err = runRanking(payload, *extraPath)
	case "classify":
		err = runClassify(payload, cfg.Feed.Capacity)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		os.Exit(1)
	}
}

// readPayload decodes a JSON document from the given file, or stdin when
// path is empty.
func readPayload(path string) (any, error) {
	var raw []byte
	var err error
	if path == "" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode %s: %w", orStdin(path), err)
	}
	return payload, nil
}

func orStdin(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}

func runFlatten(payload any, limits normalize.FlattenLimits) error {
	rows := normalize.Flatten(payload, limits)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\n", row.Key, row.Value)
	}
	return w.Flush()
}

func runLiveInfo(payload any, pollPath string) error {
	var poll any
	if pollPath != "" {
		var err error
		if poll, err = readPayload(pollPath); err != nil {
			return err
		}
	}
	view := normalize.LiveInfoView(payload, poll)
	if view == nil {
		return fmt.Errorf("no live info in payload")
	}
	return printJSON(view)
}

func runRanking(payload any, extraPath string) error {
	var extra any
	if extraPath != "" {
		var err error
		if extra, err = readPayload(extraPath); err != nil {
			return err
		}
	}
	entries := normalize.GiftRankingView(
		normalize.ExtractRanking(payload),
		normalize.ExtractRanking(extra),
	)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tUSER\tPOINTS\tGIFT")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Rank, e.UserName, e.Points, e.GiftName)
	}
	return w.Flush()
}

func runClassify(payload any, feedCapacity int) error {
	msgs, ok := payload.([]any)
	if !ok {
		msgs = []any{payload}
	}
	feed := state.NewCommentFeed(feedCapacity)
	wsLog := logging.Tagged(logging.TagWS)
	for i, msg := range msgs {
		comment, notice := broadcast.Classify(msg)
		switch {
		case comment != nil:
			added := feed.AppendComment(comment)
			fmt.Printf("[%d] comment %s: %s (appended=%v)\n", i, comment.UserName, comment.Comment, added)
		case notice != nil:
			added := feed.AppendNotice(notice)
			fmt.Printf("[%d] notice %s (appended=%v)\n", i, notice.Text, added)
		default:
			wsLog.Debug().Int("index", i).Int("type", broadcast.MessageType(msg)).Msg("not actionable")
			fmt.Printf("[%d] ignored (t=%d)\n", i, broadcast.MessageType(msg))
		}
	}
	fmt.Printf("feed retained %d of %d messages\n", feed.Len(), len(msgs))
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Println(string(out))
	return err
}
