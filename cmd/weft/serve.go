package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	weft "github.com/weft-dev/weft"
	"github.com/weft-dev/weft/internal/config"
	"github.com/weft-dev/weft/pkg/element"
	"github.com/weft-dev/weft/pkg/live"
	"github.com/weft-dev/weft/pkg/schedule"
	"github.com/weft-dev/weft/pkg/snapshot"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live preview server",
		Long: `Start the live preview server with a demo clock application.

The server renders the application once per second and streams the
resulting patch frames to connected websocket clients. A full HTML
snapshot is served at / and persisted through the configured backend.

Examples:
  weft serve
  weft serve --port=8080
  weft serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, dir)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from weft.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from weft.json)")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Project directory containing weft.json")

	return cmd
}

func runServe(port int, host, dir string) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, cleanup, err := newStore(cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	var rootOpts []weft.Option
	if cfg.Render.FrameIntervalMs > 0 || cfg.Render.SlotBudgetMs > 0 {
		var schedOpts []schedule.FrameOption
		if cfg.Render.FrameIntervalMs > 0 {
			schedOpts = append(schedOpts,
				schedule.WithFrameInterval(time.Duration(cfg.Render.FrameIntervalMs)*time.Millisecond))
		}
		if cfg.Render.SlotBudgetMs > 0 {
			schedOpts = append(schedOpts,
				schedule.WithSlotBudget(time.Duration(cfg.Render.SlotBudgetMs)*time.Millisecond))
		}
		sched := schedule.NewFrameScheduler(schedOpts...)
		defer sched.Stop()
		rootOpts = append(rootOpts, weft.WithScheduler(sched))
	}

	srv := live.NewServer(
		live.WithLogger(logger),
		live.WithStore(store),
		live.WithRootOptions(rootOpts...),
	)
	defer srv.Close()

	printBanner()
	fmt.Println()
	success("Preview server on http://%s", cfg.Address())
	info("websocket stream on /ws, metrics on /metrics")
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go runClock(ctx, srv, logger)

	httpServer := &http.Server{
		Addr:    cfg.Address(),
		Handler: srv.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		warn("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// runClock rerenders the demo application once per second until ctx is
// cancelled.
func runClock(ctx context.Context, srv *live.Server, logger *slog.Logger) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	ticks := 0
	for {
		if err := srv.Render(ctx, clockPage(time.Now(), ticks)); err != nil {
			logger.Error("render failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ticks++
		}
	}
}

func clockPage(now time.Time, ticks int) *element.Element {
	return element.Div(element.Class("clock"),
		element.H1("Weft Live Preview"),
		element.P(now.Format("15:04:05")),
		element.Ul(
			element.Li(element.Textf("renders: %d", ticks+1)),
			element.Li(element.Textf("date: %s", now.Format("2006-01-02"))),
		),
	)
}

// newStore builds the snapshot store named by the config. The returned
// cleanup closes backend resources the store doesn't own.
func newStore(cfg *config.Config) (snapshot.Store, func() error, error) {
	switch cfg.Snapshot.Backend {
	case "memory":
		return snapshot.NewMemoryStore(), nil, nil

	case "sqlite":
		db, err := sql.Open("sqlite", cfg.Snapshot.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", cfg.Snapshot.Path, err)
		}
		store, err := snapshot.NewSQLStore(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, db.Close, nil

	case "s3":
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, nil, fmt.Errorf("load aws config: %w", err)
		}
		client := s3.NewFromConfig(awsCfg)
		return snapshot.NewS3Store(client, cfg.Snapshot.Bucket, cfg.Snapshot.Prefix), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown snapshot backend %q", cfg.Snapshot.Backend)
	}
}
