package repository

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// PartialSource fetches shared page fragments (header, footer) by path.
type PartialSource interface {
	Fetch(ctx context.Context, path string) (string, error)
}

// FilePartialSource reads partials from a directory on disk.
type FilePartialSource struct {
	root string
}

func NewFilePartialSource(root string) *FilePartialSource {
	return &FilePartialSource{root: root}
}

func (s *FilePartialSource) Fetch(_ context.Context, path string) (string, error) {
	clean := filepath.Clean("/" + path)
	data, err := os.ReadFile(filepath.Join(s.root, clean))
	if err != nil {
		return "", errors.Wrapf(err, "read partial %s", path)
	}
	return string(data), nil
}

// NewPartialSource reads from baseURL when it is set, otherwise from dir.
func NewPartialSource(dir, baseURL string) PartialSource {
	if baseURL != "" {
		return NewHTTPPartialSource(baseURL)
	}
	return NewFilePartialSource(dir)
}

// HTTPPartialSource fetches partials relative to a base URL.
type HTTPPartialSource struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPPartialSource(baseURL string) *HTTPPartialSource {
	return &HTTPPartialSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *HTTPPartialSource) Fetch(ctx context.Context, path string) (string, error) {
	url := s.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.WithStack(err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "fetch partial %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, "read partial %s", path)
	}
	return string(body), nil
}
