// Package httpclient is the transport under the IIS client and the webhook publisher.
package httpclient

import "context"

// Response carries the raw body and status of a completed request, whatever the status.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client performs a single GET. Only transport failures are returned as errors.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}
