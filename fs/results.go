package fs

import (
	"bufio"
	"os"
	"path/filepath"
	"slices"
)

// ResultFile writes the final list of discovered URLs.
// The list is written to path.tmp and renamed over path, so readers never
// observe a partial file.
type ResultFile struct {
	path string
}

// NewResultFile creates a ResultFile targeting path.
func NewResultFile(path string) *ResultFile {
	return &ResultFile{path: path}
}

// Path returns the final output path.
func (f *ResultFile) Path() string {
	return f.path
}

func (f *ResultFile) tempPath() string {
	return f.path + ".tmp"
}

// Write stores urls one per line, sorted and without duplicates,
// replacing any previous content of the file.
func (f *ResultFile) Write(urls []string) error {
	sorted := slices.Clone(urls)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := f.writeTemp(sorted); err != nil {
		_ = f.Abort()
		return err
	}

	if err := os.Rename(f.tempPath(), f.path); err != nil {
		_ = f.Abort()
		return err
	}
	return nil
}

func (f *ResultFile) writeTemp(urls []string) error {
	file, err := os.Create(f.tempPath())
	if err != nil {
		return err
	}

	w := bufio.NewWriter(file)
	for _, u := range urls {
		if _, err := w.WriteString(u + "\n"); err != nil {
			file.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Abort removes a leftover temporary file.
func (f *ResultFile) Abort() error {
	if err := os.Remove(f.tempPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
