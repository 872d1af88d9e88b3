// Package fetch retrieves custom assets from the upload server when a
// command references a file that was announced but never attached.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const _maxAssetSize = 10 * 1024 * 1024 // 10 MB

// HTTPFetcher downloads custom assets from the upload server's /download
// endpoint
type HTTPFetcher struct {
	logger  *zap.Logger
	client  *http.Client
	baseURL string
}

// NewHTTPFetcher creates a fetcher against the upload server. An empty base
// URL disables fetching; Fetch then always errors.
func NewHTTPFetcher(logger *zap.Logger, baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		logger:  logger,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second, // keep the dispatch tick from hanging forever
		},
	}
}

// Fetch downloads the named asset and returns its bytes
func (f *HTTPFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if f.baseURL == "" {
		return nil, fmt.Errorf("no upload server configured")
	}

	u := fmt.Sprintf("%s/download/%s", f.baseURL, url.PathEscape(ref))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "kioskd/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, _maxAssetSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	f.logger.Debug("Custom asset fetched",
		zap.String("ref", ref),
		zap.Int("bytes", len(data)))
	return data, nil
}
