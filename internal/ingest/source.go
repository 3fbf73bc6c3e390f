package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Source yields the raw bytes of the media contribution table. The loader
// does not care whether they come from disk or over HTTP.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

type FileSource struct{ Path string }

func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open source data: %w", err)
	}
	return f, nil
}

// HTTPSource fetches the table from a URL, for deployments where the export
// lives behind a static file host instead of on local disk.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) HTTPSource {
	return HTTPSource{URL: url, Client: &http.Client{Timeout: timeout}}
}

func (s HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch source data: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		resp.Body.Close()
		return nil, fmt.Errorf("fetch source data: non-2xx %d body=%s", resp.StatusCode, string(b))
	}
	return resp.Body, nil
}
