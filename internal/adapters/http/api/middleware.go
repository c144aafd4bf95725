// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/trainlens/trainlens/pkg/metrics"
)

// MetricsMiddleware records request count, latency, and error counters
// for one endpoint. The status written by the handler is captured
// through a recording writer; anything at or above 400 also feeds the
// error-by-type counters.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsedMs := float64(time.Since(start).Milliseconds())
		status := strconv.Itoa(rec.status)

		metrics.RecordHTTPRequest(endpoint, r.Method, status)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, status, elapsedMs)

		if rec.status >= http.StatusBadRequest {
			class := errorClass(rec.status)
			metrics.RecordErrorByEndpoint(endpoint, r.Method, class)
			metrics.RecordErrorByType(class, errorSeverity(rec.status))
			metrics.RecordErrorLatency("http", class, elapsedMs)
		}
	}
}

func errorClass(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "server_error"
	case status == http.StatusTooManyRequests:
		return "rate_limit"
	case status == http.StatusNotFound:
		return "not_found"
	case status >= http.StatusBadRequest:
		return "client_error"
	default:
		return "unknown"
	}
}

func errorSeverity(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "high"
	case status >= http.StatusBadRequest:
		return "medium"
	default:
		return "low"
	}
}

// statusRecorder captures the status code a handler writes.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}
