/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: source.go
Description: Sample sources for the Akaylee ArchRec reference corpus.
Provides the Source abstraction that decouples corpus building from any
particular storage scheme, and a directory-backed implementation with
suffix-based label derivation and transparent xz decompression.
*/

package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// Sample is one labeled reference sample. Open returns a fresh reader
// over the raw (decompressed) sample bytes.
type Sample struct {
	Label      string
	Path       string
	Compressed bool
	Open       func() (io.ReadCloser, error)
}

// Source yields the labeled samples a reference corpus is built from.
type Source interface {
	Samples() ([]Sample, error)
}

// DirectorySource scans a directory for corpus samples. A file named
// "<arch><suffix>" is a sample for architecture <arch>; a file named
// "<arch><suffix>.xz" is the same, stored xz-compressed. Everything
// else is skipped. Samples are returned in lexicographic filename
// order, so corpus insertion order is deterministic.
type DirectorySource struct {
	Dir    string
	Suffix string
}

// NewDirectorySource creates a directory source for the given corpus
// location and sample filename suffix (e.g. ".corpus").
func NewDirectorySource(dir, suffix string) *DirectorySource {
	return &DirectorySource{
		Dir:    dir,
		Suffix: suffix,
	}
}

// Samples lists the eligible sample files in the corpus directory.
// Returns an error if the directory cannot be read.
func (s *DirectorySource) Samples() ([]Sample, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory %s: %w", s.Dir, err)
	}

	samples := make([]Sample, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		path := filepath.Join(s.Dir, name)

		switch {
		case strings.HasSuffix(name, s.Suffix+".xz"):
			label := strings.TrimSuffix(name, s.Suffix+".xz")
			samples = append(samples, Sample{
				Label:      label,
				Path:       path,
				Compressed: true,
				Open:       openXZ(path),
			})
		case strings.HasSuffix(name, s.Suffix):
			label := strings.TrimSuffix(name, s.Suffix)
			samples = append(samples, Sample{
				Label: label,
				Path:  path,
				Open:  openPlain(path),
			})
		}
	}

	return samples, nil
}

// openPlain returns an opener for an uncompressed sample file.
func openPlain(path string) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sample %s: %w", path, err)
		}
		return f, nil
	}
}

// openXZ returns an opener that decompresses an xz sample on the fly.
func openXZ(path string) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sample %s: %w", path, err)
		}
		r, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read xz sample %s: %w", path, err)
		}
		return &xzReadCloser{Reader: r, file: f}, nil
	}
}

// xzReadCloser couples an xz decompressor with its underlying file so
// callers can close both as one.
type xzReadCloser struct {
	*xz.Reader
	file *os.File
}

func (rc *xzReadCloser) Close() error {
	return rc.file.Close()
}
