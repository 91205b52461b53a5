package http

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sameer-dev-stack/Royal-Class-Events/internal/metrics"
)

const (
	// HeaderRequestID carries the per-request correlation ID.
	HeaderRequestID = "X-Request-ID"

	requestIDKey    = "request_id"
	maxRequestIDLen = 128
)

// RequestID reuses the caller's X-Request-ID or mints a new UUID, and echoes
// it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogger logs request details and latency and feeds the request
// metrics.
func RequestLogger(logger zerolog.Logger, rec *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		status := c.Writer.Status()

		rec.ObserveRequest(c.FullPath(), c.Request.Method, status, elapsed)

		evt := logger.Info()
		if status >= http.StatusInternalServerError {
			evt = logger.Error()
		}
		evt.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("duration", elapsed).
			Str("request_id", requestID(c)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// Recovery turns a panic in a handler into a 500 envelope.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		msg := fmt.Sprint(recovered)
		logger.Error().
			Str("path", c.Request.URL.Path).
			Str("request_id", requestID(c)).
			Str("panic", msg).
			Msg("calculation failed")
		writeError(c, http.StatusInternalServerError, codeInternalError, msg)
	})
}
