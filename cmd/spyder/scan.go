package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mrTr1cky/spyder"
	"github.com/mrTr1cky/spyder/crawl"
	"github.com/mrTr1cky/spyder/sqlite"
)

// Run executes the scan.
func (c *ScanCmd) Run(deps *Dependencies) error {
	started := time.Now()

	result, err := deps.Coordinator.Run(deps.Ctx, c.Domains, c.Wordlist)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spyder.ErrorMessage(err))
		return err
	}

	// Partial results are still written after an interrupt.
	if err := deps.Results.Write(result.Discovered); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Wrote %d URLs to %s\n", len(result.Discovered), deps.Results.Path())

	if c.DBPath != "" {
		if err := c.export(deps, result, started); err != nil {
			return fmt.Errorf("export scan: %w", err)
		}
	}

	return deps.Ctx.Err()
}

// export stores the finished scan and its findings in the SQLite database.
func (c *ScanCmd) export(deps *Dependencies, result *crawl.Result, started time.Time) error {
	// An interrupted scan is still exported.
	ctx := context.WithoutCancel(deps.Ctx)

	db := sqlite.NewDB(c.DBPath)
	if err := db.Open(); err != nil {
		return err
	}
	defer db.Close()

	scans := sqlite.NewScanService(db)
	scan := &spyder.Scan{
		Domains:    len(c.Domains),
		Discovered: len(result.Discovered),
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	if err := scans.CreateScan(ctx, scan); err != nil {
		return err
	}

	if err := scans.CreateFindings(ctx, scan.ID, findings(result)); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported scan %s to %s\n", scan.ID, c.DBPath)
	return nil
}

// findings flattens crawl visits and valid probe paths into findings.
func findings(result *crawl.Result) []*spyder.Finding {
	var out []*spyder.Finding
	for _, cr := range result.Crawls {
		for _, v := range cr.Visits {
			out = append(out, &spyder.Finding{
				Kind:   spyder.FindingCrawl,
				Domain: cr.Root,
				URL:    v.URL,
				Depth:  v.Depth,
			})
		}
	}
	for _, pr := range result.Probes {
		for _, u := range pr.Valid {
			out = append(out, &spyder.Finding{
				Kind:   spyder.FindingProbe,
				Domain: pr.Base,
				URL:    u,
			})
		}
	}
	return out
}
