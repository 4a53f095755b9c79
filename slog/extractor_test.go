package slog_test

import (
	"bytes"
	"testing"

	"github.com/mrTr1cky/spyder/mock"
	spyslog "github.com/mrTr1cky/spyder/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLinkExtractor_Extract(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.LinkExtractor{
		ExtractFn: func(_, baseURL string) ([]string, error) {
			return []string{baseURL + "a", baseURL + "b", baseURL + "c"}, nil
		},
	}

	e := spyslog.NewLoggingLinkExtractor(inner, newDebugLogger(&buf))
	links, err := e.Extract("<html></html>", "https://example.com/")

	require.NoError(t, err)
	assert.Len(t, links, 3)
	output := buf.String()
	assert.Contains(t, output, "link extraction")
	assert.Contains(t, output, "url=https://example.com/")
	assert.Contains(t, output, "links=3")
}
