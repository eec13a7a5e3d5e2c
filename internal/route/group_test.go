package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMatch(t *testing.T) {
	mounts := []Mount{
		{Prefix: "/api/v1/auth", Tag: "Auth"},
		{Prefix: "/api/v1/users", Tag: "Users"},
	}
	cases := map[string]string{
		"/api/v1/auth":       "Auth",
		"/api/v1/auth/login": "Auth",
		"/api/v1/users/me":   "Users",
		"/api/v1/authors":    "Root",
		"/":                  "Root",
		"/api/v1/stories/42": "Root",
	}
	for path, want := range cases {
		if got := Match(mounts, path, "Root"); got != want {
			t.Errorf("Match(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestPlaceholder(t *testing.T) {
	r := Placeholder("stories")
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(method, "/42", nil))
		if rr.Code != http.StatusNotImplemented {
			t.Fatalf("%s: status = %d, want 501", method, rr.Code)
		}
		if rr.Body.String() != `{"detail":"stories routes are not implemented"}` {
			t.Fatalf("%s: body = %s", method, rr.Body.String())
		}
	}
}
