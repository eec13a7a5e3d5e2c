// internal/route/group.go
//
// Mountable handler groups.
//
// Each feature package under components/<name> exposes a zero-argument
// New() returning a Group.  The app bootstrap attaches every Group under a
// fixed, versioned prefix with a display tag; there is no implicit
// discovery, so mount order is exactly the order of the Mount list.

package route

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/bedtime/internal/respond"
)

// Group is anything that can hand the bootstrap a router.
//
// Routes() should return paths relative to the mount prefix, e.g.
//
//	r := chi.NewRouter()
//	r.Post("/login", login)
//	return r
type Group interface {
	Routes() chi.Router
}

// Mount binds a Group to a path prefix and a documentation tag.
type Mount struct {
	Prefix string // "/api/v1/auth"
	Tag    string // "Auth"
	Group  Group
}

// Covers reports whether path falls under m.Prefix.
func (m Mount) Covers(path string) bool {
	if path == m.Prefix {
		return true
	}
	return strings.HasPrefix(path, m.Prefix+"/")
}

// Match returns the tag of the first mount covering path, or fallback.
func Match(mounts []Mount, path, fallback string) string {
	for _, m := range mounts {
		if m.Covers(path) {
			return m.Tag
		}
	}
	return fallback
}

// Placeholder returns a router that answers every request with 501 and a
// detail naming the group.  Feature packages start from it until their
// handlers land.
func Placeholder(name string) chi.Router {
	r := chi.NewRouter()
	h := func(w http.ResponseWriter, _ *http.Request) {
		respond.Detail(w, http.StatusNotImplemented, name+" routes are not implemented")
	}
	r.NotFound(h)
	r.MethodNotAllowed(h)
	return r
}
