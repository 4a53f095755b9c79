// Package goquery provides a goquery-based implementation of spyder.LinkExtractor.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mrTr1cky/spyder"
)

// Ensure Extractor implements spyder.LinkExtractor at compile time.
var _ spyder.LinkExtractor = (*Extractor)(nil)

// linkSources lists the elements and attributes that reference other resources.
var linkSources = []struct {
	selector string
	attr     string
}{
	{"a[href]", "href"},
	{"script[src]", "src"},
	{"link[href]", "href"},
}

// Extractor collects anchor, script and link references from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns referenced URLs resolved against baseURL.
// Anchors come first, then scripts, then link elements, each group in
// document order; a URL is kept at its first occurrence. URLs are kept
// exactly as resolved: fragments, query strings and trailing slashes are
// not normalized.
func (e *Extractor) Extract(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, spyder.Errorf(spyder.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, spyder.Errorf(spyder.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	for _, src := range linkSources {
		doc.Find(src.selector).Each(func(_ int, sel *goquery.Selection) {
			ref, _ := sel.Attr(src.attr)
			resolved := resolveURL(base, ref)
			if resolved == "" || seen[resolved] {
				return
			}
			seen[resolved] = true
			links = append(links, resolved)
		})
	}

	return links, nil
}

// resolveURL resolves ref against base.
// Returns empty string for references that cannot be fetched.
func resolveURL(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if isNonHTTPLink(ref) {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(u)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	if resolved.Host == "" {
		return ""
	}
	return resolved.String()
}

// isNonHTTPLink checks if a reference uses a scheme that should be skipped.
func isNonHTTPLink(ref string) bool {
	ref = strings.ToLower(ref)
	return strings.HasPrefix(ref, "javascript:") ||
		strings.HasPrefix(ref, "mailto:") ||
		strings.HasPrefix(ref, "tel:") ||
		strings.HasPrefix(ref, "data:")
}
