package openapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Source identifies where an OpenAPI document lives.
type Source interface {
	// Load returns the raw document payload.
	Load(ctx context.Context) ([]byte, error)
	// Describe names the source for error messages.
	Describe() string
}

// SourceFromFile loads the document from a path on disk.
func SourceFromFile(path string) Source {
	return fileSource{path: path}
}

// SourceFromURL loads the document over HTTP(S).
func SourceFromURL(url string) Source {
	return urlSource{url: url}
}

// SourceFromBytes wraps an in-memory document.
func SourceFromBytes(data []byte) Source {
	return bytesSource{data: data}
}

type fileSource struct {
	path string
}

func (s fileSource) Load(context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", s.path, err)
	}
	return data, nil
}

func (s fileSource) Describe() string { return s.path }

type urlSource struct {
	url string
}

func (s urlSource) Load(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("openapi: build request for %s: %w", s.url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openapi: fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openapi: fetch %s: unexpected status %s", s.url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", s.url, err)
	}
	return data, nil
}

func (s urlSource) Describe() string { return s.url }

type bytesSource struct {
	data []byte
}

func (s bytesSource) Load(context.Context) ([]byte, error) {
	return s.data, nil
}

func (s bytesSource) Describe() string { return "<bytes>" }
