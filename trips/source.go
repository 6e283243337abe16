package trips

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
)

// sourceReader is what the decoders need: parquet wants random access, csv a stream
type sourceReader interface {
	io.Reader
	io.ReaderAt
	io.Seeker
	io.Closer
}

type memSource struct {
	*bytes.Reader
}

func (memSource) Close() error { return nil }

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// sourceFormat returns "parquet" or "csv" from the location's extension
func sourceFormat(location string) (string, error) {
	p := location
	if isRemote(location) {
		// drop query strings from URLs
		if i := strings.IndexAny(p, "?#"); i >= 0 {
			p = p[:i]
		}
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".parquet", ".pq":
		return "parquet", nil
	case ".csv":
		return "csv", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, location)
	}
}

// openSource opens a local file or downloads a URL completely into memory.
func openSource(ctx context.Context, client *http.Client, location string) (sourceReader, error) {
	if !isRemote(location) {
		f, err := os.Open(location)
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", location, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, location)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	return memSource{bytes.NewReader(data)}, nil
}
