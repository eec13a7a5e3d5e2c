// Package database centralises sqlx connection helpers.
//
// The backend does not persist anything yet; the handle exists so the
// readiness probe can tell operators whether DATABASE_URL points at a live
// server.  The driver is chosen from the URL scheme:
//
//	postgres://…, postgresql://…   lib/pq
//	mysql://user:pw@tcp(host)/db    go-sql-driver/mysql (scheme stripped)
//
// Open never dials; sqlx.Open only validates the DSN.  Callers should
// Close() the returned *sqlx.DB at shutdown.
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PingTimeout bounds a single readiness probe.
const PingTimeout = 2 * time.Second

// ErrUnsupportedScheme is returned for URLs whose scheme has no driver.
var ErrUnsupportedScheme = errors.New("unsupported database url scheme")

// Pinger is satisfied by *sql.DB and *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Driver returns the database/sql driver name and DSN for url.
func Driver(url string) (driver, dsn string, err error) {
	scheme, rest, ok := strings.Cut(url, "://")
	if !ok {
		return "", "", fmt.Errorf("%w: missing scheme", ErrUnsupportedScheme)
	}
	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return "postgres", url, nil
	case "mysql":
		return "mysql", rest, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

// Open returns a lazily-connecting *sqlx.DB with conservative pool sizes:
// 10 max open, 5 idle, and a 30-minute connection lifetime.
func Open(url string) (*sqlx.DB, error) {
	driver, dsn, err := Driver(url)
	if err != nil {
		return nil, err
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// Ready pings p, bounded by PingTimeout.
func Ready(ctx context.Context, p Pinger) error {
	ctx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	return p.PingContext(ctx)
}
