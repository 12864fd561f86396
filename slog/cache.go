package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/djdocs"
)

var _ djdocs.Cache = (*LoggingCache)(nil)

// LoggingCache wraps a Cache with logging.
type LoggingCache struct {
	next   djdocs.Cache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next djdocs.Cache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache and logs whether the key was found.
func (c *LoggingCache) Get(ctx context.Context, key string) (value []byte, err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache get",
			"key", key,
			"hit", value != nil,
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Get(ctx, key)
}

// Set delegates to the wrapped cache and logs the operation.
func (c *LoggingCache) Set(ctx context.Context, key string, value []byte) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache set",
			"key", key,
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Set(ctx, key, value)
}
