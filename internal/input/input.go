// Package input provides source reading for the formx CLI tool;
// handles retrieving raw text from local files and standard input.
package input

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxSourceSizeBytes caps how much text a single source may contribute.
// The tool formats short ad-hoc strings; anything near this limit is
// almost certainly a mistake, and the cap prevents memory overload.
const MaxSourceSizeBytes = 10 * 1024 * 1024 // 10MB

// limitedReadCloser wraps an io.ReadCloser to enforce the size limit.
type limitedReadCloser struct {
	io.ReadCloser
	N      int64  // max bytes remaining
	source string // for error messages
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, fmt.Errorf("content from %q exceeds size limit", l.source)
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.ReadCloser.Read(p)
	l.N -= int64(n)
	return
}

// Open returns a reader for a single source. "-" reads from standard
// input; everything else is treated as a local file path.
func Open(source string) (io.ReadCloser, error) {
	if source == "-" {
		return &limitedReadCloser{
			ReadCloser: os.Stdin,
			N:          MaxSourceSizeBytes,
			source:     "stdin",
		}, nil
	}
	return openFile(source)
}

// openFile opens a local file for reading with better error messages,
// checking the size before opening so oversized files fail fast.
func openFile(path string) (io.ReadCloser, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}

	if fileInfo.Size() > MaxSourceSizeBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)",
			path, fileInfo.Size(), MaxSourceSizeBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	return file, nil
}

// ReadAll reads every source in order and joins the contents with a
// single space; the joined text feeds one normalization pass downstream.
// ctx is checked between sources so a cancelled run stops promptly.
func ReadAll(ctx context.Context, sources []string) (string, error) {
	var combined strings.Builder

	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		reader, err := Open(source)
		if err != nil {
			return "", err
		}

		data, err := io.ReadAll(reader)
		closeErr := reader.Close()
		if err != nil {
			return "", fmt.Errorf("failed to read source %q: %w", source, err)
		}
		if closeErr != nil {
			return "", fmt.Errorf("failed to close source %q: %w", source, closeErr)
		}

		if combined.Len() > 0 {
			combined.WriteString(" ")
		}
		combined.Write(data)
	}

	return combined.String(), nil
}
