package units

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Source abstracts where the unit stream comes from.
type Source interface {
	// Open returns the stream to ingest. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)

	// Name describes the source for logs.
	Name() string
}

// ReaderSource wraps an already open reader such as stdin.
type ReaderSource struct {
	r    io.Reader
	name string
}

// NewReaderSource creates a source that reads from r.
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{r: r, name: name}
}

func (s *ReaderSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}

func (s *ReaderSource) Name() string { return s.name }

// FileSource reads units from a file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a source that reads from path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening unit file: %w", err)
	}
	return f, nil
}

func (s *FileSource) Name() string { return s.path }
