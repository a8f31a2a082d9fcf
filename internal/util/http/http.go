// Package http fetches remote images for swatch.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jmylchreest/swatch/internal/version"
)

// UserAgentName prefixes the User-Agent header, followed by the build version.
const UserAgentName = "swatch"

// Defaults applied to zero FetchOptions fields.
const (
	DefaultTimeout  = 10 * time.Second
	DefaultMaxBytes = 64 << 20
)

// FetchOptions tunes a single Fetch. The zero value is usable.
type FetchOptions struct {
	Timeout  time.Duration
	MaxBytes int64

	// Headers are added to the request after the defaults and may replace them.
	Headers map[string]string
}

func (o FetchOptions) withDefaults() FetchOptions {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	return o
}

// StatusError reports a response other than 200 OK.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Fetch downloads url and returns the body. Bodies larger than
// opts.MaxBytes are rejected rather than truncated.
func Fetch(ctx context.Context, url string, opts FetchOptions) ([]byte, error) {
	opts = opts.withDefaults()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgentName+"/"+version.Version)
	req.Header.Set("Accept", "image/*")
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	client := &http.Client{Timeout: opts.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}
	if resp.ContentLength > opts.MaxBytes {
		return nil, fmt.Errorf("response body of %d bytes exceeds %d bytes", resp.ContentLength, opts.MaxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, opts.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(data)) > opts.MaxBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", opts.MaxBytes)
	}
	return data, nil
}
