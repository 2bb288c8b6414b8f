package client

import (
	"strings"
	"time"
)

type Option func(*Options)

type Options struct {
	port               int
	useTLS             bool
	autoClose          bool
	insecureSkipVerify bool
	timeout            time.Duration
	userAgent          string
	logger             Logger
	authToken          Token
}

func newClientOptions() *Options {
	return &Options{
		port:      443,
		useTLS:    true,
		autoClose: true,
		userAgent: "mattermost-go-client/" + Version,
		logger:    NoopLogger{},
	}
}

func WithPort(port int) Option {
	return func(o *Options) {
		if port > 0 && port <= 65535 {
			o.port = port
		}
	}
}

func WithTLS(enabled bool) Option {
	return func(o *Options) {
		o.useTLS = enabled
	}
}

// WithInsecureSkipVerify disables TLS certificate verification. Intended
// for servers with self-signed certificates in test environments.
func WithInsecureSkipVerify() Option {
	return func(o *Options) {
		o.insecureSkipVerify = true
	}
}

// WithAutoClose controls whether requests carry a Connection: close
// directive. Connections are never reused either way.
func WithAutoClose(autoClose bool) Option {
	return func(o *Options) {
		o.autoClose = autoClose
	}
}

// WithTimeout bounds the total duration of each call, connection setup
// included. The default of zero means no client-side timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		userAgent = strings.TrimSpace(userAgent)

		if userAgent == "" {
			return
		}

		o.userAgent = userAgent
	}
}

func WithLogger(logger Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAuthToken resumes a session with a token obtained from an earlier
// [Client.Login].
func WithAuthToken(token Token) Option {
	return func(o *Options) {
		o.authToken = token
	}
}
