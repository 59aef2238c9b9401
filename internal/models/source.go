// Package models holds the data types shared by the g search pipeline.
package models

import (
	"io"
	"os"
)

// Source is a single input being scanned: a file on disk or the raw text of
// standard input.
type Source struct {
	Name string // File path, empty for raw piped text
	Open func() (io.ReadCloser, error)
}

// Named reports whether the source has a name to show in a banner.
func (s Source) Named() bool {
	return s.Name != ""
}

// FileSource returns a source that opens path when scanned.
func FileSource(path string) Source {
	return Source{
		Name: path,
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// ReaderSource returns an unnamed source over r. Closing it does not close r.
func ReaderSource(r io.Reader) Source {
	return Source{
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(r), nil
		},
	}
}
