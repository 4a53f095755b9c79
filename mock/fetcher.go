package mock

import (
	"context"

	"github.com/mrTr1cky/spyder"
)

var _ spyder.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of spyder.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) spyder.FetchOutcome
}

func (f *Fetcher) Fetch(ctx context.Context, url string) spyder.FetchOutcome {
	return f.FetchFn(ctx, url)
}
