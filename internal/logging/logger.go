// Mirroview - Mirrativ Desktop Viewer Companion
// Copyright 2026 Takase H. (takaseh)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/takaseh/mirroview

// Package logging provides centralized zerolog-based logging for Mirroview.
//
// All subsystems log through one global zerolog instance with a closed set
// of subsystem tags (see Tag), so a session log can be filtered down to
// just the broadcast socket, the player, or the REST layer.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "console"})
//
//	logging.Info(logging.TagAPI).Str("endpoint", "live_polling").Msg("poll ok")
//	logging.Warn(logging.TagWS).Msg("socket reconnecting")
//
// Log delivery is fire-and-forget: a failing writer is never observed or
// retried by callers.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Tag identifies the subsystem a log record comes from.
type Tag string

// The closed set of subsystem tags.
const (
	TagWS    Tag = "ws"    // Broadcast socket
	TagHLS   Tag = "hls"   // HLS stream / player
	TagAPI   Tag = "api"   // REST API calls
	TagJoin  Tag = "join"  // Session join flow
	TagRelay Tag = "relay" // LLStream relay
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string

	// Format is the output format: json or console.
	// Default: console (this is a desktop companion; json suits log capture)
	Format string

	// Caller includes caller file and line number in logs.
	Caller bool

	// Timestamp enables timestamps in log output. Default: true
	Timestamp bool

	// Output is the writer for log output. Default: os.Stderr
	Output io.Writer
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "console",
		Timestamp: true,
		Output:    os.Stderr,
	}
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

//nolint:gochecknoinits // init ensures logging works before explicit Init() call
func init() {
	initLogger(DefaultConfig())
}

// Init initializes the global logger. Safe to call multiple times;
// subsequent calls reconfigure the logger.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

// initLogger configures the global logger (must be called with mu held).
func initLogger(cfg Config) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "console"
	}
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	output := cfg.Output
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: "15:04:05",
		}
	}

	ctx := zerolog.New(output)
	if cfg.Timestamp {
		ctx = ctx.With().Timestamp().Logger()
	}
	if cfg.Caller {
		ctx = ctx.With().Caller().Logger()
	}
	log = ctx
}

// parseLevel converts a string level to zerolog.Level.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger replaces the global logger instance. Useful for tests.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// Tagged returns a child logger carrying the subsystem tag as a default
// field. Components that log often keep one of these.
//
//	wsLog := logging.Tagged(logging.TagWS)
//	wsLog.Info().Str("host", cfg.Host).Msg("connecting")
func Tagged(tag Tag) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log.With().Str("tag", string(tag)).Logger()
}

// Debug starts a debug-level record under the given tag.
func Debug(tag Tag) *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Debug().Str("tag", string(tag))
}

// Info starts an info-level record under the given tag.
func Info(tag Tag) *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Info().Str("tag", string(tag))
}

// Warn starts a warn-level record under the given tag.
func Warn(tag Tag) *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Warn().Str("tag", string(tag))
}

// Error starts an error-level record under the given tag.
func Error(tag Tag) *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Error().Str("tag", string(tag))
}
