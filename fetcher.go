package spyder

import (
	"context"
	"fmt"
)

// FetchKind classifies the outcome of a single fetch.
type FetchKind int

// Fetch outcome kinds.
const (
	// FetchOK means the server answered with HTTP 200.
	FetchOK FetchKind = iota
	// FetchHTTPError means the server answered with any other status.
	FetchHTTPError
	// FetchTransportError means no usable response was received
	// (DNS failure, refused connection, timeout, truncated body).
	FetchTransportError
)

// String returns a short label for the kind.
func (k FetchKind) String() string {
	switch k {
	case FetchOK:
		return "ok"
	case FetchHTTPError:
		return "http_error"
	case FetchTransportError:
		return "transport_error"
	default:
		return fmt.Sprintf("FetchKind(%d)", int(k))
	}
}

// FetchOutcome is the tagged result of one fetch.
// Body is only set for FetchOK, Status for FetchOK and FetchHTTPError,
// and Err for FetchTransportError.
type FetchOutcome struct {
	Kind   FetchKind
	URL    string
	Status int
	Body   string
	Err    error
}

// OK reports whether the fetch succeeded.
func (o FetchOutcome) OK() bool {
	return o.Kind == FetchOK
}

// Fetcher retrieves documents over HTTP.
type Fetcher interface {
	// Fetch issues a single GET for url and classifies the result.
	// It never retries and never returns a failure other than through
	// the outcome's Kind.
	Fetch(ctx context.Context, url string) FetchOutcome
}
