// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package normalize

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ============================================================================
// Display Formatting
// ============================================================================

// Placeholder strings shown when a field cannot be resolved. These render
// in the UI verbatim, so absent data is always clearly marked rather than
// blank.
const (
	PlaceholderUser    = "ユーザー"
	PlaceholderUnknown = "不明"
	PlaceholderHidden  = "非公開"
	PlaceholderNone    = "-"
)

// The viewer ships with a Japanese UI; numbers and dates follow suit.
var printer = message.NewPrinter(language.Japanese)

// FormatNumber picks the first valid number from the candidates and renders
// it with locale grouping (thousands separators). Zero and not-found both
// render as "0".
func FormatNumber(candidates ...any) string {
	n := FirstNumber(candidates...)
	if n == 0 {
		return "0"
	}
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return printer.Sprintf("%d", int64(n))
	}
	return printer.Sprint(number.Decimal(n))
}

// FormatUnixTime renders seconds-since-epoch as a localized date and time.
// Zero or unresolvable input renders as "-".
func FormatUnixTime(candidates ...any) string {
	seconds := FirstNumber(candidates...)
	if seconds == 0 {
		return PlaceholderNone
	}
	return time.Unix(int64(seconds), 0).Format("2006/01/02 15:04:05")
}

// FormatUnixDate is FormatUnixTime without the time component, used by the
// search result and live-history lists.
func FormatUnixDate(candidates ...any) string {
	seconds := FirstNumber(candidates...)
	if seconds == 0 {
		return PlaceholderNone
	}
	return time.Unix(int64(seconds), 0).Format("2006/01/02")
}

// FormatBirthday renders a profile birthday. The platform sends birthdays
// as "MMDD" with a separate visibility flag; a hidden or absent birthday
// renders as "非公開".
func FormatBirthday(value, visible any) string {
	switch v := visible.(type) {
	case bool:
		if !v {
			return PlaceholderHidden
		}
	case string:
		if v == "0" {
			return PlaceholderHidden
		}
	default:
		if n, ok := asNumber(visible); ok && n == 0 {
			return PlaceholderHidden
		}
	}
	raw := FirstString(value)
	if raw == "" {
		return PlaceholderHidden
	}
	if len(raw) == 4 {
		return raw[:2] + "/" + raw[2:]
	}
	return raw
}
