// Package middleware holds small, composable HTTP wrappers.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/yanizio/bedtime/internal/metrics"
	"github.com/yanizio/bedtime/internal/ua"
)

// Classifier maps a request to the route group label used in metrics and
// logs, e.g. "Auth" or "Root".
type Classifier func(*http.Request) string

// Metrics records request counts and latency per route group.
func Metrics(group Classifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			g := group(r)
			metrics.HTTPRequestDuration.WithLabelValues(g).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(g, r.Method, strconv.Itoa(status(ww))).Inc()
		})
	}
}

// AccessLog writes one structured line per request to log.
func AccessLog(log *zap.SugaredLogger, group Classifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			agent := ua.Parse(r.UserAgent())
			log.Infow("request",
				"request_id", chimw.GetReqID(r.Context()),
				"group", group(r),
				"method", r.Method,
				"path", r.URL.Path,
				"status", status(ww),
				"bytes", ww.BytesWritten(),
				"dur", time.Since(start),
				"remote", r.RemoteAddr,
				"browser", agent.Browser,
				"device", agent.Device,
				"bot", agent.IsBot,
			)
		})
	}
}

// status treats an untouched writer as an implicit 200.
func status(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}
