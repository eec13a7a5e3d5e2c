// internal/app/app.go
//
// Application bootstrap.
//
/*
Context
--------
`New()` builds the one HTTP application for the process:

  1. Metadata (name, version) is taken from Settings.
  2. The middleware chain is installed: request ID, real IP, panic
     recovery, security headers, Prometheus metrics, and zap access log.
  3. Infrastructure endpoints: /healthz, /readyz, /metrics, /openapi.json.
  4. `GET /` answers with the static welcome payload.
  5. Route groups are mounted in list order (`DefaultMounts()` unless
     `WithMounts` overrides it).  Prefixes are disjoint, so order affects
     only the generated API document.

The App holds no mutable state after New returns; every handler is safe
under concurrent use.
*/
package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yanizio/bedtime/components/auth"
	"github.com/yanizio/bedtime/components/stories"
	"github.com/yanizio/bedtime/components/users"
	"github.com/yanizio/bedtime/internal/config"
	"github.com/yanizio/bedtime/internal/database"
	"github.com/yanizio/bedtime/internal/metrics"
	"github.com/yanizio/bedtime/internal/middleware"
	"github.com/yanizio/bedtime/internal/respond"
	"github.com/yanizio/bedtime/internal/route"
)

// WelcomeMessage is the body of GET /.
const WelcomeMessage = "Welcome to the Personalized Bedtime Story App Backend!"

const (
	rootTag   = "Root"
	systemTag = "System"
)

// DefaultMounts lists the feature groups in mount order.
func DefaultMounts() []route.Mount {
	return []route.Mount{
		{Prefix: "/api/v1/auth", Tag: "Auth", Group: auth.New()},
		{Prefix: "/api/v1/users", Tag: "Users", Group: users.New()},
		{Prefix: "/api/v1/stories", Tag: "Stories", Group: stories.New()},
	}
}

/*──────────────────────────────── options ──────────────────────────────────*/

// Option tweaks New.
type Option func(*App)

// WithLogger sets the access/lifecycle logger.  Defaults to zap.S().
func WithLogger(log *zap.SugaredLogger) Option {
	return func(a *App) { a.log = log }
}

// WithDatabase enables the database check in /readyz.
func WithDatabase(db database.Pinger) Option {
	return func(a *App) { a.db = db }
}

// WithMounts replaces DefaultMounts.
func WithMounts(mounts ...route.Mount) Option {
	return func(a *App) { a.mounts = mounts }
}

/*──────────────────────────────── App ─────────────────────────────────────*/

// App is the running server's handler tree plus its metadata.
type App struct {
	name    string
	version string
	mounts  []route.Mount
	log     *zap.SugaredLogger
	db      database.Pinger

	router chi.Router
	apiDoc []byte
}

// New builds the application from s.
func New(s config.Settings, opts ...Option) *App {
	a := &App{
		name:    s.ProjectName,
		version: s.ProjectVersion,
		mounts:  DefaultMounts(),
	}
	for _, fn := range opts {
		fn(a)
	}
	if a.log == nil {
		a.log = zap.S()
	}
	a.mounts = append([]route.Mount(nil), a.mounts...)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Security)
	r.Use(middleware.Metrics(a.groupOf))
	r.Use(middleware.AccessLog(a.log, a.groupOf))

	r.Get("/", handleRoot)
	r.Get("/healthz", handleHealth)
	r.Get("/readyz", a.handleReady)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/openapi.json", a.handleOpenAPI)

	groups := make([]chi.Router, len(a.mounts))
	for i, m := range a.mounts {
		groups[i] = m.Group.Routes()
		r.Mount(m.Prefix, groups[i])
	}

	a.router = r
	a.apiDoc = buildAPIDoc(a.name, a.version, a.mounts, groups)
	metrics.BuildInfo.WithLabelValues(a.name, a.version).Set(1)

	a.log.Infow("app built",
		"name", a.name,
		"version", a.version,
		"prefixes", a.Prefixes(),
	)
	return a
}

// ServeHTTP makes App an http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

func (a *App) Name() string    { return a.name }
func (a *App) Version() string { return a.version }

// Mounts returns a copy of the mounted groups in mount order.
func (a *App) Mounts() []route.Mount {
	return append([]route.Mount(nil), a.mounts...)
}

// Prefixes returns the mounted prefixes in mount order.
func (a *App) Prefixes() []string {
	out := make([]string, len(a.mounts))
	for i, m := range a.mounts {
		out[i] = m.Prefix
	}
	return out
}

// groupOf labels a request for metrics and logs.
func (a *App) groupOf(r *http.Request) string {
	if r.URL.Path == "/" {
		return rootTag
	}
	return route.Match(a.mounts, r.URL.Path, systemTag)
}

/*──────────────────────────── handlers ────────────────────────────────────*/

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"message": WelcomeMessage})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleReady(w http.ResponseWriter, r *http.Request) {
	if a.db == nil {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "not configured"})
		return
	}
	if err := database.Ready(r.Context(), a.db); err != nil {
		metrics.ReadinessFailuresTotal.Inc()
		a.log.Warnw("readiness probe failed", "err", err)
		respond.Detail(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "ok"})
}

func (a *App) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(a.apiDoc)
}
