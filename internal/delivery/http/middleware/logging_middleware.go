package middleware

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"hospital-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

const requestLoggerKey contextKey = "request_logger"

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

type LoggingMiddleware struct {
	log *logrus.Logger
}

func NewLoggingMiddleware(log *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{log: log}
}

// Handle tags each request with an id, logs its outcome, and turns panics into 500s.
func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		entry := m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
		})
		rec := &statusRecorder{ResponseWriter: w}

		defer func() {
			if p := recover(); p != nil {
				entry.WithField("panic", p).Errorf("Recovered from panic: %s", debug.Stack())
				if rec.status == 0 {
					response.InternalServerError(rec, "")
				}
			}

			fields := logrus.Fields{
				"status":      rec.status,
				"bytes":       rec.bytes,
				"duration_ms": time.Since(start).Milliseconds(),
			}
			switch {
			case rec.status >= http.StatusInternalServerError:
				entry.WithFields(fields).Error("Request failed")
			case rec.status >= http.StatusBadRequest:
				entry.WithFields(fields).Warn("Request rejected")
			default:
				entry.WithFields(fields).Info("Request completed")
			}
		}()

		ctx := context.WithValue(r.Context(), requestLoggerKey, entry)
		next.ServeHTTP(rec, r.WithContext(ctx))
	})
}

// LoggerFromContext returns the request-scoped entry, falling back to the standard logger.
func LoggerFromContext(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(requestLoggerKey).(*logrus.Entry); ok {
		return entry
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
