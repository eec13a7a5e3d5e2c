// components/stories/stories.go
//
// Story route group, mounted at /api/v1/stories.  Generation, narration,
// and audio storage will live behind these routes.

package stories

import (
	"github.com/go-chi/chi/v5"

	"github.com/yanizio/bedtime/internal/route"
)

// Compile-time assertion: *Group satisfies route.Group.
var _ route.Group = (*Group)(nil)

// Group holds the story handlers.
type Group struct{}

// New returns the stories group.
func New() *Group { return &Group{} }

// Routes builds the router mounted under the stories prefix.
func (g *Group) Routes() chi.Router { return route.Placeholder("stories") }
