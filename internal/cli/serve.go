package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/sheetboard/internal/board"
	"github.com/rshade/sheetboard/internal/config"
	"github.com/rshade/sheetboard/internal/logging"
	"github.com/rshade/sheetboard/internal/web"
)

// shutdownTimeout bounds graceful shutdown of the HTTP server.
const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard page over HTTP",
		Long: `Serves the dashboard page. Every page request reloads the sheet.

  GET /             the card list
  GET /?project=N   the card list and the details of card N
  GET /healthz      liveness probe`,
		Example: `  sheetboard serve --addr 127.0.0.1:8080`,
		Args:    cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			return runServe(cmd, a)
		}),
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default "+config.DefaultAddr+" or server.addr)")
	return cmd
}

func runServe(cmd *cobra.Command, a *app) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.ComponentLogger(*logging.FromContext(ctx), "serve")
	addr := a.cfg.Server.Addr

	h := web.NewHandler(a.newLoader(), board.DateLabel(time.Now()))
	srv := web.NewServer(ctx, addr, h)

	log.Info().Str("addr", addr).Str("source", a.cfg.Source.URL).Msg("serving dashboard")
	cmd.Printf("Serving dashboard on http://%s\n", addr)

	err := web.ListenAndServe(ctx, srv, shutdownTimeout)
	log.Info().Err(err).Msg("server stopped")
	return err
}
