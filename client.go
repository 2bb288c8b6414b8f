package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Version is the library release, reported in the User-Agent header.
const Version = "0.3.0"

const (
	jsonContentType = "application/json"
	tokenHeader     = "Token"
)

// Client issues typed requests against a chat server's v3 REST API. Build
// one with [New], authenticate with [Client.Login], then call the
// endpoint methods. A client is safe for concurrent use once a token is
// held; Login itself must not race other calls because it installs the
// token on the client.
type Client struct {
	conn    ConnectionData
	options *Options
	rest    *resty.Client
	token   Token
}

// New creates a client for the server at hostname. The zero-option
// default targets port 443 over TLS with Connection: close requests.
func New(hostname string, opts ...Option) *Client {
	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	conn := ConnectionData{
		Hostname:  hostname,
		Port:      options.port,
		UseTLS:    options.useTLS,
		AutoClose: options.autoClose,
	}

	return &Client{
		conn:    conn,
		options: options,
		rest:    newRestyClient(conn, options),
		token:   options.authToken,
	}
}

// Connection returns the descriptor the client was built with.
func (c *Client) Connection() ConnectionData { return c.conn }

// Token returns the bearer token attached to authenticated requests. It
// is empty until [Client.Login] succeeds or [WithAuthToken] supplies one.
func (c *Client) Token() Token { return c.token }

// Login authenticates with the server. On success the returned token is
// also stored on the client and attached to every subsequent request.
// A rejected login surfaces as [LoginError] carrying the status the
// server answered with.
func (c *Client) Login(ctx context.Context, login LoginRequest) (Token, *User, error) {
	path := apiPath("users", "login")

	c.options.logger.Log(RequestEvent{Method: http.MethodPost, Path: path, Body: login})

	resp, err := c.send(ctx, http.MethodPost, path, login)
	if err != nil {
		return "", nil, err
	}

	if resp.StatusCode() != http.StatusOK {
		return "", nil, &LoginError{StatusCode: resp.StatusCode()}
	}

	if err := checkContentType(resp, "POST "+path); err != nil {
		return "", nil, err
	}

	tokenValue, err := headerValue(resp, tokenHeader)
	if err != nil {
		return "", nil, err
	}

	var user User
	untyped, err := c.decodeBody(resp.Body(), &user)
	if err != nil {
		return "", nil, err
	}

	c.options.logger.Log(ResponseEvent{Status: resp.StatusCode(), Path: path, Body: untyped})

	c.token = Token(tokenValue)

	return c.token, &user, nil
}

// doRequest runs the full pipeline for one API call: path check, request
// event, send, status and content-type validation, decode, response
// event. It returns the decoded value.
func doRequest[T any](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	return withRequest(ctx, c, method, path, body, func(value *T) (*T, error) {
		return value, nil
	})
}

// withRequest is doRequest with a continuation applied to the decoded
// value before it is returned, for endpoints whose wire shape wraps the
// value the caller actually wants.
func withRequest[T, R any](ctx context.Context, c *Client, method, path string, body any, unwrap func(*T) (*R, error)) (*R, error) {
	if err := checkPath(path); err != nil {
		return nil, err
	}

	c.options.logger.Log(RequestEvent{Method: method, Path: path, Body: body})

	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	if err := checkStatus(resp, path); err != nil {
		return nil, err
	}

	if err := checkContentType(resp, method+" "+path); err != nil {
		return nil, err
	}

	var target T
	untyped, err := c.decodeBody(resp.Body(), &target)
	if err != nil {
		return nil, err
	}

	c.options.logger.Log(ResponseEvent{Status: resp.StatusCode(), Path: path, Body: untyped})

	return unwrap(&target)
}

// postRaw issues a POST with a raw byte body and validates the status
// only. It serves the trivial calls whose response carries nothing the
// caller needs.
func (c *Client) postRaw(ctx context.Context, path string, body []byte) error {
	if err := checkPath(path); err != nil {
		return err
	}

	c.options.logger.Log(RequestEvent{Method: http.MethodPost, Path: path})

	resp, err := c.send(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}

	return checkStatus(resp, path)
}

// send executes one request over a fresh connection and normalizes
// transport failures into [ConnectionError].
func (c *Client) send(ctx context.Context, method, path string, body any) (*resty.Response, error) {
	req := c.rest.R().SetContext(ctx)

	if c.token != "" {
		req.SetHeader("Authorization", "Bearer "+string(c.token))
	}

	if body != nil {
		req.SetHeader("Content-Type", jsonContentType)
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	return resp, nil
}

func checkStatus(resp *resty.Response, path string) error {
	if resp.StatusCode() != http.StatusOK {
		return &HTTPResponseError{StatusCode: resp.StatusCode(), Path: path}
	}
	return nil
}

func checkContentType(resp *resty.Response, callContext string) error {
	contentType, err := headerValue(resp, "Content-Type")
	if err != nil {
		return err
	}
	if !strings.Contains(contentType, jsonContentType) {
		return &ContentTypeError{ContentType: contentType, Context: callContext}
	}
	return nil
}

// headerValue looks up a required response header; header names are
// matched case-insensitively.
func headerValue(resp *resty.Response, name string) (string, error) {
	value := resp.Header().Get(name)
	if value == "" {
		return "", &HeaderNotFoundError{Header: name}
	}
	return value, nil
}

// decodeBody unmarshals a validated body into target and, only when a
// logger is attached, into an untyped value for the response event.
// Callers without a logger pay for exactly one parse.
func (c *Client) decodeBody(body []byte, target any) (any, error) {
	if err := json.Unmarshal(body, target); err != nil {
		return nil, &JSONDecodeError{Message: err.Error(), RawBody: string(body)}
	}

	var untyped any
	if _, noop := c.options.logger.(NoopLogger); !noop {
		if err := json.Unmarshal(body, &untyped); err != nil {
			return nil, &JSONDecodeError{Message: err.Error(), RawBody: string(body)}
		}
	}

	return untyped, nil
}
