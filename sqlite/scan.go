package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/mrTr1cky/spyder"
)

// Compile-time interface verification.
var _ spyder.ScanService = (*ScanService)(nil)

// ScanService implements spyder.ScanService using SQLite.
type ScanService struct {
	db *DB
}

// NewScanService creates a new ScanService.
func NewScanService(db *DB) *ScanService {
	return &ScanService{db: db}
}

// hashURL returns the hex xxHash of url as stored in the url_hash column.
func hashURL(url string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(url))
}

// CreateScan creates a new scan. A zero StartedAt or FinishedAt is set to now.
func (s *ScanService) CreateScan(ctx context.Context, scan *spyder.Scan) error {
	scan.ID = uuid.New().String()
	now := time.Now().UTC()
	if scan.StartedAt.IsZero() {
		scan.StartedAt = now
	}
	if scan.FinishedAt.IsZero() {
		scan.FinishedAt = now
	}
	scan.StartedAt = scan.StartedAt.UTC().Truncate(time.Second)
	scan.FinishedAt = scan.FinishedAt.UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scans (id, domains, discovered, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?)
	`, scan.ID, scan.Domains, scan.Discovered,
		scan.StartedAt.Format(time.RFC3339), scan.FinishedAt.Format(time.RFC3339))

	return err
}

// FindScanByID retrieves a scan by ID.
func (s *ScanService) FindScanByID(ctx context.Context, id string) (*spyder.Scan, error) {
	var scan spyder.Scan
	var startedAt, finishedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, domains, discovered, started_at, finished_at
		FROM scans
		WHERE id = ?
	`, id).Scan(&scan.ID, &scan.Domains, &scan.Discovered, &startedAt, &finishedAt)

	if err == sql.ErrNoRows {
		return nil, spyder.Errorf(spyder.ENOTFOUND, "scan not found")
	}
	if err != nil {
		return nil, err
	}

	if scan.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if scan.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
		return nil, err
	}

	return &scan, nil
}

// CreateFindings stores findings for a scan in a single transaction.
// Either every finding is stored or none is.
func (s *ScanService) CreateFindings(ctx context.Context, scanID string, findings []*spyder.Finding) error {
	for _, f := range findings {
		if err := f.Validate(); err != nil {
			return err
		}
	}

	if _, err := s.FindScanByID(ctx, scanID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO findings (id, scan_id, kind, domain, url, url_hash, depth)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range findings {
		f.ID = uuid.New().String()
		f.ScanID = scanID
		if _, err := stmt.ExecContext(ctx, f.ID, f.ScanID, string(f.Kind), f.Domain, f.URL, hashURL(f.URL), f.Depth); err != nil {
			return fmt.Errorf("insert finding %s: %w", f.URL, err)
		}
	}

	return tx.Commit()
}

// FindFindings retrieves findings matching the filter ordered by URL.
func (s *ScanService) FindFindings(ctx context.Context, filter spyder.FindingFilter) ([]*spyder.Finding, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, scan_id, kind, domain, url, depth FROM findings WHERE 1=1")

	if filter.ScanID != nil {
		query.WriteString(" AND scan_id = ?")
		args = append(args, *filter.ScanID)
	}
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.URL != nil {
		query.WriteString(" AND url_hash = ? AND url = ?")
		args = append(args, hashURL(*filter.URL), *filter.URL)
	}

	query.WriteString(" ORDER BY url ASC, kind ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var findings []*spyder.Finding
	for rows.Next() {
		var f spyder.Finding
		var kind string
		if err := rows.Scan(&f.ID, &f.ScanID, &kind, &f.Domain, &f.URL, &f.Depth); err != nil {
			return nil, err
		}
		f.Kind = spyder.FindingKind(kind)
		findings = append(findings, &f)
	}

	return findings, rows.Err()
}
