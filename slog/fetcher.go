// Package slog provides log/slog decorators for spyder services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mrTr1cky/spyder"
)

// Ensure LoggingFetcher implements spyder.Fetcher.
var _ spyder.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   spyder.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next spyder.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) spyder.FetchOutcome {
	begin := time.Now()
	outcome := f.next.Fetch(ctx, url)

	attrs := []any{
		"url", url,
		"outcome", outcome.Kind.String(),
		"status", outcome.Status,
		"bytes", len(outcome.Body),
		"duration", time.Since(begin),
	}
	if outcome.Err != nil {
		attrs = append(attrs, "err", outcome.Err)
	}
	f.logger.Debug("fetch", attrs...)
	return outcome
}
