package spyder

// LinkExtractor pulls referenced URLs out of an HTML document.
type LinkExtractor interface {
	// Extract parses html leniently and returns the absolute URLs referenced
	// by anchors, script sources and link elements, resolved against baseURL.
	// Each URL appears once. Malformed references are dropped silently.
	Extract(html string, baseURL string) ([]string, error)
}
