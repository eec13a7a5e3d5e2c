// components/auth/auth.go
//
// Authentication route group, mounted at /api/v1/auth.
//
// Token issuance and verification are not built yet; SECRET_KEY is loaded
// for this group's future signing needs.  Until then every request is
// answered with 501.
//
//------------------------------------------------------------------------------

package auth

import (
	"github.com/go-chi/chi/v5"

	"github.com/yanizio/bedtime/internal/route"
)

// Compile-time assertion: *Group satisfies route.Group.
var _ route.Group = (*Group)(nil)

// Group holds the authentication handlers.
type Group struct{}

// New returns the auth group.  No arguments; the bootstrap mounts it as-is.
func New() *Group { return &Group{} }

// Routes builds the router mounted under the auth prefix.
func (g *Group) Routes() chi.Router { return route.Placeholder("auth") }
