package mock

import (
	"context"

	"github.com/mrTr1cky/spyder"
)

var _ spyder.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of spyder.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
