// Package timeouts provides centralized timeout values for handler I/O.
//
// Every dataset load runs under context.WithTimeout(ctx, timeouts.Fetch()),
// and health checks under timeouts.Ping(). Values can be changed at startup
// with Configure; otherwise the defaults apply.
package timeouts

import (
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing  = 2 * time.Second
	DefaultFetch = 10 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	ping  = DefaultPing
	fetch = DefaultFetch
)

// Ping returns the timeout for health checks against the data source.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Fetch returns the timeout for one full dataset load (connect, transfer
// and decode).
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping  time.Duration
	Fetch time.Duration
}

// Configure sets custom timeout values. Zero or negative values in cfg are
// ignored, keeping the current values. Call it during startup before
// handlers are built.
//
// Example:
//
//	timeouts.Configure(timeouts.Config{Fetch: appCfg.FetchTimeout})
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Fetch > 0 {
		fetch = cfg.Fetch
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	fetch = DefaultFetch
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Fetch: fetch}
}
