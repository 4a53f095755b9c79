// Package zerolog prints scan events to the console using zerolog's ConsoleWriter.
package zerolog

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mrTr1cky/spyder"
	"github.com/rs/zerolog"
)

// levelFound tags valid wordlist paths. It is not a zerolog level; the
// event is logged without one and carries this value in the level field.
const levelFound = "found"

const (
	colorRed    = 31
	colorGreen  = 32
	colorYellow = 33
)

// Ensure Reporter implements spyder.Reporter.
var _ spyder.Reporter = (*Reporter)(nil)

// Reporter writes one severity-tagged line per scan event:
//
//	[+] discovered URL
//	[!] failed fetch
//	[*] valid wordlist path
type Reporter struct {
	logger zerolog.Logger
}

// NewReporter returns a Reporter writing to w. Colors are disabled when
// noColor is true.
func NewReporter(w io.Writer, noColor bool) *Reporter {
	cw := zerolog.ConsoleWriter{
		Out:           zerolog.SyncWriter(w),
		NoColor:       noColor,
		PartsOrder:    []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel:   formatLevel(noColor),
		FormatMessage: formatMessage,
	}
	return &Reporter{logger: zerolog.New(cw)}
}

// Discovered reports a URL the crawl fetched successfully.
func (r *Reporter) Discovered(url string, _ int) {
	r.logger.Info().Msgf("Discovered URL: %s", url)
}

// FetchFailed reports a fetch that did not return HTTP 200.
func (r *Reporter) FetchFailed(outcome spyder.FetchOutcome) {
	switch outcome.Kind {
	case spyder.FetchHTTPError:
		r.logger.Warn().Msgf("Failed to fetch URL: %s (status %d)", outcome.URL, outcome.Status)
	default:
		r.logger.Error().Msgf("Error fetching URL: %s - %v", outcome.URL, outcome.Err)
	}
}

// ValidPath reports a wordlist candidate that returned HTTP 200.
func (r *Reporter) ValidPath(url string) {
	r.logger.Log().Str(zerolog.LevelFieldName, levelFound).Msgf("Valid path from wordlist: %s", url)
}

func formatLevel(noColor bool) zerolog.Formatter {
	return func(i any) string {
		level, _ := i.(string)
		switch level {
		case zerolog.LevelInfoValue:
			return colorize("[+]", colorGreen, noColor)
		case zerolog.LevelWarnValue, zerolog.LevelErrorValue:
			return colorize("[!]", colorRed, noColor)
		case levelFound:
			return colorize("[*]", colorYellow, noColor)
		default:
			return "[?]"
		}
	}
}

func formatMessage(i any) string {
	if i == nil {
		return ""
	}
	return fmt.Sprint(i)
}

func colorize(s string, color int, noColor bool) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", color, s)
}

// IsTerminal reports whether w is a terminal that can render colors.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
