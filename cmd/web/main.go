// cmd/web/main.go
//
// Bedtime story backend – HTTP entry point.
//
// Start-up sequence
// -----------------
//
//  1. Install a console logger so configuration failures are visible.
//
//  2. Load Settings (.env overlaid by the environment).  Any missing or
//     empty required key aborts here, listing every offending key.
//
//  3. Start the daily rotating file logger under LOG_DIR (tees to console
//     when running in a TTY).
//
//  4. Open a lazy database handle for /readyz.  No connection is made.
//
//  5. Build the app: metadata, middleware, /, probes, and the three route
//     groups under /api/v1.
//
//  6. Serve on LISTEN_ADDR until SIGINT or SIGTERM, then drain.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yanizio/bedtime/internal/app"
	"github.com/yanizio/bedtime/internal/config"
	"github.com/yanizio/bedtime/internal/database"
	"github.com/yanizio/bedtime/internal/logger"
	"github.com/yanizio/bedtime/internal/server"
)

func main() {
	boot := logger.Bootstrap()

	settings, err := config.Load()
	if err != nil {
		boot.Fatalw("configuration error", "err", err)
	}

	log, err := logger.New(settings.LogDir, logger.RunningInTTY())
	if err != nil {
		boot.Fatalw("start logger", "err", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Open(settings.DatabaseURL)
	if err != nil {
		log.Fatalw("database handle", "err", err)
	}
	defer db.Close()

	a := app.New(settings, app.WithLogger(log), app.WithDatabase(db))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, server.New(settings.ListenAddr, a), log); err != nil {
		log.Errorw("http server", "err", err)
		os.Exit(1)
	}
	log.Infow("bye")
}
