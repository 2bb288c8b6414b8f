package client

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ConnectionData describes how to reach the chat server. It is fixed at
// client construction and consumed by every request.
type ConnectionData struct {
	Hostname  string
	Port      int
	UseTLS    bool
	AutoClose bool
}

// BaseURL derives the scheme://host:port prefix all request paths are
// resolved against.
func (cd ConnectionData) BaseURL() string {
	scheme := "http"
	if cd.UseTLS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, cd.Hostname, cd.Port)
}

// newRestyClient builds the transport for a client. Keep-alives are
// disabled, so every call opens its own connection and the transport
// closes it when the response body is drained.
func newRestyClient(cd ConnectionData, opts *Options) *resty.Client {
	transport := &http.Transport{
		DisableKeepAlives: true,
	}
	if cd.UseTLS && opts.insecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402
	}

	rc := resty.New().
		SetBaseURL(cd.BaseURL()).
		SetTransport(transport).
		SetHeader("User-Agent", opts.userAgent).
		SetRetryCount(0).
		SetCloseConnection(cd.AutoClose)

	if opts.timeout > 0 {
		rc.SetTimeout(opts.timeout)
	}

	return rc
}
