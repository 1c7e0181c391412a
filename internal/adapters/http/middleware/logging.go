package middleware

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/commerce/internal/core/logger"
)

func logHTTPRequest(ctx context.Context, statusCode int, attrs map[string]any) {
	level := logger.LogLevelInfo
	if statusCode >= 500 {
		level = logger.LogLevelError
	} else if statusCode >= 400 {
		level = logger.LogLevelWarn
	}

	logger.Log(ctx, logger.LogEntry{
		Level:      level,
		Message:    "HTTP Request",
		Attributes: attrs,
	})
}

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// only error bodies are kept; they are small and carry the failure reason
const maxErrorBodySize = 4 * 1024

type errorBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *errorBodyWriter) capture(n int) bool {
	return w.Status() >= 400 && w.body.Len()+n <= maxErrorBodySize
}

func (w *errorBodyWriter) Write(b []byte) (int, error) {
	if w.capture(len(b)) {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *errorBodyWriter) WriteString(s string) (int, error) {
	if w.capture(len(s)) {
		w.body.WriteString(s)
	}
	return w.ResponseWriter.WriteString(s)
}

func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		buf := bufferPool.Get().(*bytes.Buffer)
		defer bufferPool.Put(buf)
		buf.Reset()
		writer := &errorBodyWriter{ResponseWriter: c.Writer, body: buf}
		c.Writer = writer

		c.Next()

		status := c.Writer.Status()
		attrs := map[string]any{
			"http.method":      c.Request.Method,
			"http.path":        c.Request.URL.Path,
			"http.route":       c.FullPath(),
			"http.status_code": status,
			"http.duration_ms": time.Since(start).Milliseconds(),
		}

		if userID := c.GetHeader(UserIDHeader); userID != "" {
			attrs["user.id"] = userID
		}
		if key := c.GetHeader("Idempotency-Key"); key != "" {
			attrs["http.idempotency_key"] = key
		}
		if size, err := strconv.ParseInt(c.Request.Header.Get("Content-Length"), 10, 64); err == nil {
			attrs["http.request_size"] = size
		}
		if strings.Contains(c.Writer.Header().Get("Content-Type"), "application/json") && writer.body.Len() > 0 {
			attrs["http.error_body"] = writer.body.String()
		}

		logHTTPRequest(c.Request.Context(), status, attrs)
	}
}
