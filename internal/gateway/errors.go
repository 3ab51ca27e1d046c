package gateway

import "fmt"

// UpstreamError means the store answered with a non-2xx status. The body is
// kept for the server-side log; callers surface a generic failure instead.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d", e.Status)
}

// GatewayError means the store could not be reached or its response could
// not be read or decoded.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }
