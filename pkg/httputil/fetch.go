// Package httputil fetches remote diagram sources over HTTP.
//
// The CLI accepts http(s) URLs anywhere it accepts a file path, so a
// diagram published as a raw gist or pasted behind a share service can
// be piped straight into convert/inspect/render. Transient failures
// (network errors, 5xx responses) are retried with exponential backoff;
// client errors fail immediately.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/archpad/archpad/pkg/errors"
)

const (
	// maxBodySize caps remote responses. Diagram payloads are small;
	// anything larger is not a diagram.
	maxBodySize = 4 << 20

	fetchAttempts  = 3
	fetchBaseDelay = 500 * time.Millisecond
)

// DefaultClient is used by [Fetch] when no client is supplied.
var DefaultClient = &http.Client{Timeout: 15 * time.Second}

// retryableError marks a failure worth another attempt.
type retryableError struct{ err error }

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// Fetch retrieves the body at url, retrying transient failures up to
// three times with doubling backoff. Non-2xx responses other than 5xx
// fail immediately: a 404 maps to ErrCodeNotFound, everything else to
// ErrCodeInternal.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = DefaultClient
	}

	var (
		body    []byte
		lastErr error
		delay   = fetchBaseDelay
	)
	for attempt := 0; attempt < fetchAttempts; attempt++ {
		body, lastErr = fetchOnce(ctx, client, url)
		if lastErr == nil {
			return body, nil
		}
		if _, ok := lastErr.(*retryableError); !ok {
			return nil, lastErr
		}

		if attempt < fetchAttempts-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return nil, errors.Wrap(errors.ErrCodeInternal, lastErr, "fetch %s", url)
}

func fetchOnce(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request for %s", url)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &retryableError{err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return nil, &retryableError{fmt.Errorf("%s returned %s", url, resp.Status)}
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.New(errors.ErrCodeNotFound, "%s returned %s", url, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.New(errors.ErrCodeInternal, "%s returned %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &retryableError{err}
	}
	if len(body) > maxBodySize {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s body exceeds %d bytes", url, maxBodySize)
	}
	return body, nil
}
