package client

import "fmt"

// URIParseError reports a request path that does not parse as a relative
// URI. It is detected before any network I/O takes place.
type URIParseError struct {
	Path string
	Err  error
}

func (e *URIParseError) Error() string {
	return fmt.Sprintf("invalid request path %q: %v", e.Path, e.Err)
}

func (e *URIParseError) Unwrap() error { return e.Err }

// ConnectionError reports a transport-level failure: the connection could
// not be opened, or the request could not be sent or the response read.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// HTTPResponseError reports an unexpected non-200 status on an
// authenticated call.
type HTTPResponseError struct {
	StatusCode int
	Path       string
}

func (e *HTTPResponseError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.Path)
}

// LoginError reports a non-200 status on the login call. It is distinct
// from [HTTPResponseError] because a rejected login is an expected,
// caller-recoverable outcome rather than a protocol surprise.
type LoginError struct {
	StatusCode int
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("login rejected with status %d", e.StatusCode)
}

// ContentTypeError reports a response whose Content-Type is not JSON.
// Context names the call that received it.
type ContentTypeError struct {
	ContentType string
	Context     string
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("%s: expected JSON response, got Content-Type %q", e.Context, e.ContentType)
}

// HeaderNotFoundError reports a required response header that is absent.
type HeaderNotFoundError struct {
	Header string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("response header %q not found", e.Header)
}

// JSONDecodeError reports a response body that fails to decode into the
// expected shape. RawBody carries the original body text for diagnosis.
type JSONDecodeError struct {
	Message string
	RawBody string
}

func (e *JSONDecodeError) Error() string {
	return fmt.Sprintf("decoding response body: %s (body: %s)", e.Message, e.RawBody)
}
