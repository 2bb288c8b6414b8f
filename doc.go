// Package client provides an HTTP client for the Mattermost v3 REST API.
//
// The client wraps [github.com/go-resty/resty/v2] and implements the thin
// request/response pipeline every API call funnels through: authenticated
// request construction, status and content-type validation, and JSON
// decoding into typed records, with a distinct error kind for every way a
// call can fail.
//
// # Basic Usage
//
//	c := client.New("chat.example.com",
//	    client.WithPort(443),
//	    client.WithTimeout(15*time.Second),
//	)
//
//	token, user, err := c.Login(ctx, client.LoginRequest{
//	    LoginID:  "alice@example.com",
//	    Password: "hunter2",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	teams, err := c.GetTeams(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained.
//
// # Connections
//
// Every call opens and closes its own connection; there is no pooling,
// no retrying, and no rate limiting. Calls are independent and may be
// issued concurrently once a token is held. Cancellation and deadlines
// are the caller's responsibility via context or [WithTimeout].
//
// # Authentication
//
// [Client.Login] exchanges credentials for a bearer token, which the
// client then attaches to every subsequent request. A token from an
// earlier session can be supplied up front with [WithAuthToken].
//
// # Error Handling
//
// Failures are never generic. Each stage of the pipeline reports its own
// type: [URIParseError], [ConnectionError], [HTTPResponseError],
// [LoginError], [ContentTypeError], [HeaderNotFoundError], and
// [JSONDecodeError]. All are matchable with [errors.As], and nothing is
// retried or swallowed inside the client.
//
// # Logging
//
// Implement [Logger] and supply it via [WithLogger] to observe the
// pipeline: a [RequestEvent] is emitted before each request is sent and a
// [ResponseEvent] after each successful decode. The default [NoopLogger]
// discards all events; [ZapLogger] forwards them to a zap logger. Ensure
// your implementation redacts credentials before persisting events.
package client
