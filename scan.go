package spyder

import (
	"context"
	"time"
)

// FindingKind identifies how a URL was found.
type FindingKind string

// Finding kinds.
const (
	FindingCrawl FindingKind = "crawl"
	FindingProbe FindingKind = "probe"
)

// Scan is one finished invocation of the scanner.
type Scan struct {
	ID         string    `json:"id"`
	Domains    int       `json:"domains"`
	Discovered int       `json:"discovered"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Finding is a URL found during a scan.
type Finding struct {
	ID     string      `json:"id"`
	ScanID string      `json:"scanId"`
	Kind   FindingKind `json:"kind"`
	Domain string      `json:"domain"`
	URL    string      `json:"url"`
	Depth  int         `json:"depth"`
}

// Validate returns an error if the finding contains invalid fields.
func (f *Finding) Validate() error {
	if f.URL == "" {
		return Errorf(EINVALID, "finding URL required")
	}
	if f.Kind != FindingCrawl && f.Kind != FindingProbe {
		return Errorf(EINVALID, "invalid finding kind %q", f.Kind)
	}
	return nil
}

// FindingFilter represents a filter for FindFindings.
type FindingFilter struct {
	ScanID *string      `json:"scanId"`
	Kind   *FindingKind `json:"kind"`
	URL    *string      `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ScanService exports finished scans to storage.
type ScanService interface {
	// CreateScan stores a scan and assigns its ID.
	CreateScan(ctx context.Context, scan *Scan) error

	// FindScanByID retrieves a scan by ID.
	// Returns ENOTFOUND if the scan does not exist.
	FindScanByID(ctx context.Context, id string) (*Scan, error)

	// CreateFindings stores findings for an existing scan atomically.
	CreateFindings(ctx context.Context, scanID string, findings []*Finding) error

	// FindFindings retrieves findings matching the filter ordered by URL.
	FindFindings(ctx context.Context, filter FindingFilter) ([]*Finding, error)
}
