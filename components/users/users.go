// Package users is the user-account route group, mounted at /api/v1/users.
package users

import (
	"github.com/go-chi/chi/v5"

	"github.com/yanizio/bedtime/internal/route"
)

var _ route.Group = (*Group)(nil)

type Group struct{}

func New() *Group { return &Group{} }

func (g *Group) Routes() chi.Router { return route.Placeholder("users") }
