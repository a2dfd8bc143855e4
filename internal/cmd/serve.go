package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"focusboss/internal/logging"
	"focusboss/internal/server"
	"focusboss/internal/version"
)

// ServeCmd runs the HTTP API in the foreground
type ServeCmd struct {
	Listen string `help:"Address to listen on (default from settings or 127.0.0.1:5000)" env:"FOCUSBOSS_LISTEN"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	addr := s.Listen
	if addr == "" {
		addr = cli.Settings().GetListenAddr()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	c := cli.Container
	srv := server.NewServer(addr, c.Tracker, c.PreferencesService, c.HistoryService, c.Catalog, c.Clock, version.Version)

	fmt.Fprintf(os.Stderr, "%s listening on http://%s\n", version.Name, l.Addr())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(ctx, l)
	})
	g.Go(func() error {
		probeActivitySource(ctx, cli)
		return nil
	})

	return g.Wait()
}

// probeActivitySource warns early when ActivityWatch cannot be reached.
// Polls still work without it; periods just account as idle.
func probeActivitySource(ctx context.Context, cli *CLI) {
	ctx, cancel := context.WithTimeout(ctx, cli.Settings().GetUpstreamTimeout())
	defer cancel()

	now := time.Now()
	if _, err := cli.Container.ActivitySource.Query(ctx, now.Add(-time.Minute), now); err != nil {
		if ctx.Err() == context.Canceled {
			return
		}
		logging.Logger.Warn("ActivityWatch not reachable", "url", cli.Settings().GetActivityWatchURL(), "error", err)
		fmt.Fprintf(os.Stderr, "Warning: ActivityWatch not reachable at %s: %v\n", cli.Settings().GetActivityWatchURL(), err)
		return
	}
	logging.Logger.Info("ActivityWatch reachable", "url", cli.Settings().GetActivityWatchURL())
}
