package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
	// Post issues a POST with an empty body; request parameters travel in the
	// URL's query string.
	Post(ctx context.Context, url string, headers map[string]string) (Response, error)
}
