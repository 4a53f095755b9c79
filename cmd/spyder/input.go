package main

import (
	"io"
	"strings"

	"github.com/mrTr1cky/spyder"
	"github.com/mrTr1cky/spyder/fs"
)

// readDomains collects root URLs from --domain and --list, or from stdin
// when neither is set. Comment lines are skipped and duplicates dropped.
func readDomains(cli *CLI, stdin io.Reader) ([]string, error) {
	var lines []string
	if cli.Domain != "" {
		lines = append(lines, cli.Domain)
	}
	if cli.List != "" {
		list, err := fs.ReadLinesFile(cli.List)
		if err != nil {
			return nil, err
		}
		lines = append(lines, list...)
	}
	if cli.Domain == "" && cli.List == "" && stdin != nil {
		list, err := fs.ReadLines(stdin)
		if err != nil {
			return nil, err
		}
		lines = append(lines, list...)
	}

	seen := make(map[string]bool, len(lines))
	var domains []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		root := spyder.NormalizeDomain(line, cli.Scheme)
		if root == "" || seen[root] {
			continue
		}
		if _, err := spyder.OriginOf(root); err != nil {
			return nil, spyder.Errorf(spyder.EINVALID, "invalid domain %q", line)
		}
		seen[root] = true
		domains = append(domains, root)
	}

	if len(domains) == 0 {
		return nil, spyder.Errorf(spyder.EINVALID, "no domains given: use --domain, --list or stdin")
	}
	return domains, nil
}
