package proxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

type httpClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Fetcher downloads a dataset with a single GET. It never retries.
type Fetcher struct {
	logger  *slog.Logger
	client  httpClient
	timeout time.Duration
}

// NewFetcher creates a fetcher. A zero timeout waits for the response
// indefinitely. A nil logger discards.
func NewFetcher(logger *slog.Logger, timeout time.Duration) *Fetcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Fetcher{
		logger:  logger,
		client:  &http.Client{},
		timeout: timeout,
	}
}

func NewFetcherWithClient(logger *slog.Logger, client httpClient) *Fetcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Fetcher{
		logger: logger,
		client: client,
	}
}

// Fetch GETs url and decodes the JSON array it returns.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]Record, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer func() {
		if _, err := io.Copy(io.Discard, res.Body); err != nil {
			f.logger.Debug("Failed to drain response body", "err", err)
		}
		res.Body.Close()
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: %w %d", url, ErrUnexpectedStatus, res.StatusCode)
	}

	recs, err := Decode(res.Body)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	f.logger.Info("Fetched records", "url", url, "count", len(recs), "in", time.Since(start).Round(time.Millisecond))
	return recs, nil
}
