package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/mrTr1cky/spyder/crawl"
	"github.com/mrTr1cky/spyder/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Coordinator *crawl.Coordinator
	Results     *fs.ResultFile
}

// ScanCmd crawls and probes every domain, then writes the results.
type ScanCmd struct {
	Domains  []string
	Wordlist []string

	// DBPath, if set, is the SQLite file the finished scan is exported to.
	DBPath string
}
