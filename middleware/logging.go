package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

const RequestIDHeader = "X-Request-ID"

// requestID returns the caller-supplied request id or generates one.
func requestID(c *gin.Context) string {
	if id := c.GetHeader(RequestIDHeader); id != "" {
		return id
	}
	return uuid.NewString()
}

// LoggingMiddleware logs every request with a request id and, when tracing
// is active, the trace id. A sub-logger carrying both is injected into the
// request context for handlers and services to use.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		reqID := requestID(c)

		logCtx := log.With().Str("request_id", reqID)
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			logCtx = logCtx.Str("trace_id", sc.TraceID().String())
		}
		logger := logCtx.Logger()

		ctx := logger.WithContext(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)

		c.Header(RequestIDHeader, reqID)

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		var event *zerolog.Event
		if statusCode >= 400 {
			event = logger.Error()
		} else {
			event = logger.Info()
		}

		event.
			Str("method", method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Msg("HTTP request")
	}
}
