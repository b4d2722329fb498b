package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultFetchTimeout bounds a single remote fetch.
	DefaultFetchTimeout = 15 * time.Second

	// DefaultMaxBytes bounds any single media payload (20 MiB).
	DefaultMaxBytes int64 = 20 << 20

	defaultUserAgent = "go-pageexport/1.0 (+https://github.com/alnah/go-pageexport)"
)

// Payload is raw media bytes with the content type reported by the source.
type Payload struct {
	Data        []byte
	ContentType string
}

// Fetcher retrieves remote media.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Payload, error)
}

// HTTPFetcher fetches media over HTTP.
type HTTPFetcher struct {
	client   *http.Client
	timeout  time.Duration
	maxBytes int64
}

// NewHTTPFetcher creates an HTTPFetcher. A nil client uses a fresh
// http.Client; zero timeout or maxBytes select the defaults.
func NewHTTPFetcher(client *http.Client, timeout time.Duration, maxBytes int64) *HTTPFetcher {
	if client == nil {
		client = &http.Client{}
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &HTTPFetcher{client: client, timeout: timeout, maxBytes: maxBytes}
}

// Fetch performs a GET request and returns the body if the status is 2xx
// and the body fits within the size limit.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Payload, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "image/*,video/*;q=0.9,*/*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d for %s", ErrUnexpectedStatus, resp.StatusCode, url)
	}
	if resp.ContentLength > f.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, resp.ContentLength)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, f.maxBytes)
	}

	return &Payload{Data: body, ContentType: headerMIME(resp.Header.Get("Content-Type"))}, nil
}

// headerMIME strips parameters from a Content-Type header value.
func headerMIME(v string) string {
	if i := strings.IndexByte(v, ';'); i >= 0 {
		v = v[:i]
	}
	return strings.ToLower(strings.TrimSpace(v))
}

// Compile-time interface check.
var _ Fetcher = (*HTTPFetcher)(nil)
