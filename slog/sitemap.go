package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mrTr1cky/spyder"
)

var _ spyder.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService logs how many sitemap URLs a root yields and how many
// of them the crawler can seed.
type LoggingSitemapService struct {
	next   spyder.SitemapService
	logger *slog.Logger
}

func NewLoggingSitemapService(next spyder.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs logs a failed lookup at warn level. A successful one is logged
// at debug level with its URLs split into same-origin seeds and off-site
// entries the crawler drops.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	begin := time.Now()
	urls, err := s.next.DiscoverURLs(ctx, baseURL)
	if err != nil {
		s.logger.Warn("sitemap lookup failed",
			"root", baseURL,
			"duration", time.Since(begin),
			"err", err,
		)
		return urls, err
	}

	seeds := 0
	for _, u := range urls {
		if spyder.SameOrigin(baseURL, u) {
			seeds++
		}
	}
	s.logger.Debug("sitemap urls",
		"root", baseURL,
		"seeds", seeds,
		"offsite", len(urls)-seeds,
		"duration", time.Since(begin),
	)
	return urls, nil
}
