package slog

import (
	"log/slog"
	"time"

	"github.com/mrTr1cky/spyder"
)

// Ensure LoggingLinkExtractor implements spyder.LinkExtractor.
var _ spyder.LinkExtractor = (*LoggingLinkExtractor)(nil)

// LoggingLinkExtractor wraps a LinkExtractor with debug logging.
type LoggingLinkExtractor struct {
	next   spyder.LinkExtractor
	logger *slog.Logger
}

// NewLoggingLinkExtractor creates a new LoggingLinkExtractor.
func NewLoggingLinkExtractor(next spyder.LinkExtractor, logger *slog.Logger) *LoggingLinkExtractor {
	return &LoggingLinkExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the link count.
func (e *LoggingLinkExtractor) Extract(html, baseURL string) (links []string, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("link extraction",
			"url", baseURL,
			"links", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, baseURL)
}
