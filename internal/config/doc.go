// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

// Package config loads application configuration via Koanf v2 with layered
// sources: built-in defaults, an optional YAML file (mirroview.yaml, or the
// path in MIRROVIEW_CONFIG), and MIRROVIEW_* environment variables, highest
// priority last. Loaded configuration is validated before use.
package config
