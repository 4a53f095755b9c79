package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/mrTr1cky/spyder/mock"
	spyslog "github.com/mrTr1cky/spyder/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("splits sitemap URLs into seeds and off-site entries", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{
					"https://example.com/a",
					"https://example.com/b",
					"https://cdn.example.net/c",
				}, nil
			},
		}

		svc := spyslog.NewLoggingSitemapService(inner, newDebugLogger(&buf))
		urls, err := svc.DiscoverURLs(context.Background(), "https://example.com/")

		require.NoError(t, err)
		assert.Len(t, urls, 3)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "msg=\"sitemap urls\"")
		assert.Contains(t, output, "root=https://example.com/")
		assert.Contains(t, output, "seeds=2")
		assert.Contains(t, output, "offsite=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("warns when the lookup fails", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, errors.New("connection failed")
			},
		}

		svc := spyslog.NewLoggingSitemapService(inner, newDebugLogger(&buf))
		_, err := svc.DiscoverURLs(context.Background(), "https://example.com/")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "msg=\"sitemap lookup failed\"")
		assert.Contains(t, output, "err=\"connection failed\"")
		assert.NotContains(t, output, "seeds=")
	})
}
