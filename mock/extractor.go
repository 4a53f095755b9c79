package mock

import "github.com/mrTr1cky/spyder"

var _ spyder.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of spyder.LinkExtractor.
type LinkExtractor struct {
	ExtractFn func(html, baseURL string) ([]string, error)
}

func (e *LinkExtractor) Extract(html, baseURL string) ([]string, error) {
	return e.ExtractFn(html, baseURL)
}
