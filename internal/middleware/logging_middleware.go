// internal/middleware/logging_middleware.go
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"coreadmin-service/internal/domain/syslog"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// maxCapturedBody caps how much of a request/response body is persisted.
const maxCapturedBody = 64 << 10

// bodyCaptureWriter tees the response body so it can be persisted after
// the handler runs.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	if w.body.Len() < maxCapturedBody {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	if w.body.Len() < maxCapturedBody {
		w.body.WriteString(s)
	}
	return w.ResponseWriter.WriteString(s)
}

type LoggingMiddleware struct {
	logs   syslog.Repository
	logger *zap.Logger
}

func NewLoggingMiddleware(logs syslog.Repository, logger *zap.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logs: logs, logger: logger}
}

// Log records every request: a structured access-log line plus a sys_log
// row for the monitor screens. Persistence failures never fail the
// request being logged.
func (m *LoggingMiddleware) Log() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := ulid.Make().String()
		c.Header("X-Request-Id", requestID)

		var reqBody string
		if c.Request.Body != nil && captureBody(c.ContentType()) {
			raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCapturedBody))
			if err == nil {
				reqBody = string(raw)
				c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), c.Request.Body))
			}
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()

		m.logger.Info("request",
			zap.String("requestId", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
			zap.String("ip", c.ClientIP()),
		)

		rec := &syslog.Record{
			Description:     describeRoute(c.Request.Method, c.FullPath()),
			Module:          inferModule(c.Request.URL.Path),
			RequestURL:      c.Request.URL.RequestURI(),
			RequestMethod:   c.Request.Method,
			RequestHeaders:  headersJSON(c.Request.Header),
			RequestBody:     maskPasswords(reqBody),
			StatusCode:      status,
			ResponseHeaders: headersJSON(c.Writer.Header()),
			ResponseBody:    writer.body.String(),
			TimeTaken:       elapsed.Milliseconds(),
			IP:              c.ClientIP(),
			Browser:         c.Request.UserAgent(),
			Status:          syslog.StatusSuccess,
			CreateTime:      start,
		}
		if status >= 400 || len(c.Errors) > 0 {
			rec.Status = syslog.StatusFailure
			if len(c.Errors) > 0 {
				msg := c.Errors.String()
				rec.ErrorMsg = &msg
			}
		}
		if userID, ok := GetUserID(c); ok {
			rec.CreateUser = &userID
		}

		// Persist outside the request context so client cancellation
		// cannot drop the row.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := m.logs.Save(ctx, rec); err != nil {
				m.logger.Warn("failed to persist request log", zap.Error(err))
			}
		}()
	}
}

func captureBody(contentType string) bool {
	return strings.Contains(contentType, "json") ||
		strings.Contains(contentType, "form-urlencoded") ||
		contentType == ""
}

func headersJSON(h map[string][]string) string {
	flat := make(map[string]string, len(h))
	for k, v := range h {
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "Cookie") {
			continue
		}
		flat[k] = strings.Join(v, "; ")
	}
	b, err := json.Marshal(flat)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// maskPasswords blanks password-ish JSON fields before persistence.
func maskPasswords(body string) string {
	if body == "" || !strings.Contains(body, "assword") {
		return body
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(body), &m); err != nil {
		return body
	}
	for k := range m {
		if strings.Contains(strings.ToLower(k), "password") {
			m[k] = "******"
		}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return body
	}
	return string(b)
}

var moduleNames = map[string]string{
	"auth":    "Authentication",
	"captcha": "Captcha",
	"system":  "System",
	"monitor": "Monitoring",
	"common":  "Common",
}

// inferModule derives the log module label from the first path segment.
func inferModule(path string) string {
	seg := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}
	if name, ok := moduleNames[seg]; ok {
		return name
	}
	return seg
}

func describeRoute(method, route string) string {
	if route == "" {
		return method
	}
	return method + " " + route
}
