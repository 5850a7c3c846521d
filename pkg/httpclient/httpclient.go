// Package httpclient defines the narrow HTTP surface the API client
// packages rely on, plus the retrying client the CLI wires in by default.
package httpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// HTTPDoer captures the subset of *http.Client the API packages rely on.
// Tests inject fake implementations of this interface so they can run
// offline without making upstream requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Retry policy shared by every call: up to 3 attempts, exponential
// backoff starting at one second, retrying only the status codes the
// edge APIs document as transient.
const (
	retryMax     = 3
	retryWaitMin = 1 * time.Second
	retryWaitMax = 8 * time.Second
)

var retryStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// NewRetrying returns an *http.Client that transparently retries
// transient failures. Request signing happens before Do, so replayed
// attempts reuse the already-signed request.
func NewRetrying() *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = retryMax
	rc.RetryWaitMin = retryWaitMin
	rc.RetryWaitMax = retryWaitMax
	rc.Logger = nil
	rc.CheckRetry = checkRetry
	return rc.StandardClient()
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	if resp != nil && retryStatuses[resp.StatusCode] {
		return true, nil
	}
	return false, nil
}
