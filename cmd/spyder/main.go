package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mrTr1cky/spyder"
	"github.com/mrTr1cky/spyder/crawl"
	"github.com/mrTr1cky/spyder/fs"
	"github.com/mrTr1cky/spyder/goquery"
	spyhttp "github.com/mrTr1cky/spyder/http"
	spyslog "github.com/mrTr1cky/spyder/slog"
	"github.com/mrTr1cky/spyder/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin supplies domains when neither --domain nor --list is given.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("spyder"),
		kong.Description("Crawl domains for same-origin URLs and probe wordlist paths"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	domains, err := readDomains(cli, m.Stdin)
	if err != nil {
		return err
	}
	wordlist, err := fs.ReadLinesFile(cli.File)
	if err != nil {
		return fmt.Errorf("wordlist: %w", err)
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var fetcher spyder.Fetcher = spyhttp.NewFetcher(spyhttp.WithTimeout(cli.Timeout))
	var extractor spyder.LinkExtractor = goquery.NewExtractor()
	if cli.Verbose {
		fetcher = spyslog.NewLoggingFetcher(fetcher, logger)
		extractor = spyslog.NewLoggingLinkExtractor(extractor, logger)
	}

	reporter := zerolog.NewReporter(stdout, cli.NoColor || !zerolog.IsTerminal(stdout))

	crawler := crawl.NewCrawler(fetcher, extractor, crawl.NewVisitedSet(crawl.DefaultVisitedShards))
	crawler.Reporter = reporter
	crawler.Logger = logger
	crawler.MaxDepth = cli.Depth
	crawler.MaxPages = cli.MaxPages
	if cli.Sitemap {
		var sitemaps spyder.SitemapService = spyhttp.NewSitemapService(&http.Client{Timeout: cli.Timeout})
		if cli.Verbose {
			sitemaps = spyslog.NewLoggingSitemapService(sitemaps, logger)
		}
		crawler.Sitemaps = sitemaps
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Coordinator: &crawl.Coordinator{
			Crawler:     crawler,
			Prober:      &crawl.Prober{Fetcher: fetcher, Reporter: reporter},
			Concurrency: cli.Threads,
			Logger:      logger,
		},
		Results: fs.NewResultFile(cli.Output),
	}

	cmd := &ScanCmd{
		Domains:  domains,
		Wordlist: wordlist,
		DBPath:   cli.DB,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Domain   string        `short:"d" help:"Single domain to scan"`
	List     string        `short:"l" help:"File with one domain per line"`
	File     string        `short:"f" default:"dir.txt" help:"Wordlist of paths to probe on every domain"`
	Threads  int           `short:"t" default:"10" help:"Number of concurrent workers"`
	Depth    int           `default:"3" help:"Maximum link depth followed from each domain root"`
	Timeout  time.Duration `default:"5s" help:"Timeout per request"`
	Output   string        `short:"o" default:"results.txt" help:"File to write discovered URLs to"`
	MaxPages int           `name:"max-pages" default:"0" help:"Maximum fetches per domain crawl (0 = unlimited)"`
	Sitemap  bool          `help:"Seed each crawl with URLs from the domain's sitemaps"`
	DB       string        `name:"db" help:"SQLite database to export the finished scan to"`
	Scheme   string        `default:"https" enum:"http,https" help:"Scheme for domains given without one"`
	Verbose  bool          `short:"v" help:"Log request diagnostics to stderr"`
	NoColor  bool          `name:"no-color" help:"Disable colored output"`
}

// Validate is called by Kong after parsing.
func (c *CLI) Validate() error {
	if c.Threads < 1 {
		return spyder.Errorf(spyder.EINVALID, "--threads must be at least 1")
	}
	if c.Depth < 0 {
		return spyder.Errorf(spyder.EINVALID, "--depth must not be negative")
	}
	if c.Timeout <= 0 {
		return spyder.Errorf(spyder.EINVALID, "--timeout must be positive")
	}
	if c.MaxPages < 0 {
		return spyder.Errorf(spyder.EINVALID, "--max-pages must not be negative")
	}
	return nil
}
