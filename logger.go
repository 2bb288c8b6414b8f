package client

import "go.uber.org/zap"

// LogEvent is implemented by the event types the pipeline hands to a
// [Logger]: [RequestEvent] and [ResponseEvent].
type LogEvent interface {
	logEvent()
}

// RequestEvent is emitted before a request is sent. Body is the outgoing
// JSON payload, or nil for GET and empty-body calls.
type RequestEvent struct {
	Method string
	Path   string
	Body   any
}

// ResponseEvent is emitted after a response has been validated and
// decoded. Body is the untyped decoded JSON value.
type ResponseEvent struct {
	Status int
	Path   string
	Body   any
}

func (RequestEvent) logEvent()  {}
func (ResponseEvent) logEvent() {}

// Logger is the sink for pipeline events. Implement this interface to
// integrate with your logging library and supply the implementation via
// [WithLogger]. Sinks run synchronously inline with the call and must
// not panic.
type Logger interface {
	Log(event LogEvent)
}

// NoopLogger is a [Logger] that silently discards all events. It is the
// default used when no logger is provided to [New].
type NoopLogger struct{}

func (NoopLogger) Log(LogEvent) {}

// ZapLogger is a [Logger] that forwards events to a zap logger at debug
// level, with method, path, status, and body as structured fields.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger wraps the given zap logger. A nil argument yields a
// logger backed by zap.NewNop.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapLogger{logger: logger}
}

func (z *ZapLogger) Log(event LogEvent) {
	switch ev := event.(type) {
	case RequestEvent:
		z.logger.Debug("api request",
			zap.String("method", ev.Method),
			zap.String("path", ev.Path),
			zap.Any("body", ev.Body),
		)
	case ResponseEvent:
		z.logger.Debug("api response",
			zap.Int("status", ev.Status),
			zap.String("path", ev.Path),
			zap.Any("body", ev.Body),
		)
	}
}
