// Package fs reads scan inputs from and writes scan results to the local filesystem.
package fs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrTr1cky/spyder"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// ReadLines returns the non-blank lines of r with surrounding whitespace removed.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// ReadLinesFile returns the non-blank lines of the file at path.
// A missing file returns an ENOTFOUND error.
func ReadLinesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, spyder.Errorf(spyder.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
