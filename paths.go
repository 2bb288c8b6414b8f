package client

import (
	"errors"
	"net/url"
	"strings"
)

const apiPrefix = "/api/v3"

// apiPath joins segments under the API prefix, percent-encoding each one
// so identifiers cannot splice extra path components into the request.
func apiPath(segments ...string) string {
	var b strings.Builder
	b.WriteString(apiPrefix)
	for _, segment := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(segment))
	}
	return b.String()
}

// checkPath validates a request path as a relative URI before any network
// I/O happens.
func checkPath(path string) error {
	u, err := url.Parse(path)
	if err != nil {
		return &URIParseError{Path: path, Err: err}
	}
	if u.IsAbs() || u.Host != "" {
		return &URIParseError{Path: path, Err: errors.New("path must be relative")}
	}
	return nil
}
