package rpc

import "errors"

// Error kinds surfaced by the transport layer. Callers match them with
// errors.Is; the wrapped message carries the detail.
var (
	// ErrCredentialUnavailable means the cookie file could not be read.
	ErrCredentialUnavailable = errors.New("credential unavailable")

	// ErrTransport covers connection, request and body-read failures.
	ErrTransport = errors.New("transport failure")

	// ErrHTTPStatus marks a non-2xx response.
	ErrHTTPStatus = errors.New("http status not ok")
)
