package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogging logs one line per request: method, path, status, duration.
// A request id is taken from X-Request-ID or generated, and echoed back.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)

		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r.WithContext(utils.WithRequestID(r.Context(), reqID)))

		entry := utils.Logger.WithFields(logrus.Fields{
			"request_id":  reqID,
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   utils.ClientIP(r),
		})
		if r.Method == http.MethodGet && rec.status < http.StatusBadRequest {
			entry.Debug("request handled")
			return
		}
		entry.Info("request handled")
	})
}
