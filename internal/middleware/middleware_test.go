// internal/middleware/middleware_test.go
//
// Unit-tests for the HTTP wrappers.
//
//   • Security sets every header, and handlers can still override them.
//   • Metrics counts requests under the classifier's group label.
//   • AccessLog writes one structured entry per request.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yanizio/bedtime/internal/metrics"
)

func TestSecurity_SetsHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	Security(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	for _, h := range []string{
		"Strict-Transport-Security",
		"Content-Security-Policy",
		"X-Content-Type-Options",
		"Referrer-Policy",
	} {
		if rr.Header().Get(h) == "" {
			t.Errorf("missing header %s", h)
		}
	}
	if got := rr.Header().Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Errorf("X-Frame-Options = %q, handler override lost", got)
	}
}

func TestMetrics_CountsByGroup(t *testing.T) {
	counter := metrics.HTTPRequestsTotal.WithLabelValues("Test", http.MethodPost, "418")
	before := testutil.ToFloat64(counter)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := Metrics(func(*http.Request) string { return "Test" })(next)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/x", nil))

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Fatalf("counter = %v, want %v", got, before+1)
	}
}

func TestAccessLog_WritesEntry(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core).Sugar()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	h := AccessLog(log, func(*http.Request) string { return "Root" })(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "curl/8.4.0")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if logs.Len() != 1 {
		t.Fatalf("entries = %d, want 1", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["group"] != "Root" || fields["path"] != "/" {
		t.Fatalf("unexpected fields: %#v", fields)
	}
	if fields["status"] != int64(http.StatusOK) {
		t.Fatalf("status = %#v, want 200", fields["status"])
	}
}
