// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

package config

import (
	"time"

	"github.com/takaseh/mirroview/internal/normalize"
	"github.com/takaseh/mirroview/internal/state"
	"github.com/takaseh/mirroview/internal/validation"
)

// Config is the application configuration, loaded via Koanf with layered
// sources (highest priority wins): environment variables, config file,
// built-in defaults.
type Config struct {
	Logging LoggingConfig           `koanf:"logging"`
	Flatten normalize.FlattenLimits `koanf:"flatten"`
	Feed    FeedConfig              `koanf:"feed"`
	Poll    PollConfig              `koanf:"poll"`
}

// LoggingConfig configures the zerolog global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// FeedConfig bounds the live-session comment feed.
type FeedConfig struct {
	Capacity int `koanf:"capacity" validate:"min=1,max=100000"`
}

// PollConfig carries the poll cadence handed to the transport collaborator.
// The normalization layer itself performs no I/O; this setting only rides
// along in the config file so everything tunable lives in one place.
type PollConfig struct {
	Interval time.Duration `koanf:"interval" validate:"gte=1s,lte=10m"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
		Flatten: normalize.FlattenLimits{
			MaxEntries: normalize.DefaultFlattenEntries,
			MaxDepth:   normalize.DefaultFlattenDepth,
			MaxArray:   normalize.DefaultFlattenArray,
		},
		Feed: FeedConfig{
			Capacity: state.DefaultFeedCapacity,
		},
		Poll: PollConfig{
			Interval: 5 * time.Second,
		},
	}
}

// Validate checks the configuration against its constraints.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c)
}
