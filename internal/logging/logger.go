// Package logging provides the package-level loggers used across the
// optimization core, a simplified version of jpfluger-alibs-slim/alog's
// channel-label registry: this core has no HTTP endpoints or file writers to
// provision, so a single global zerolog.Logger per channel name is enough.
package logging

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu       sync.RWMutex
	channels = make(map[string]zerolog.Logger)
	base     = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			With().Timestamp().Logger()
)

// Get returns the logger for channel, creating it (tagged with a "channel"
// field) the first time it is requested.
func Get(channel string) zerolog.Logger {
	mu.RLock()
	lg, ok := channels[channel]
	mu.RUnlock()
	if ok {
		return lg
	}

	mu.Lock()
	defer mu.Unlock()
	lg, ok = channels[channel]
	if ok {
		return lg
	}
	lg = base.With().Str("channel", channel).Logger()
	channels[channel] = lg
	return lg
}

// SetLevel adjusts the global minimum log level (e.g. zerolog.Disabled in
// tests that expect quiet output).
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
