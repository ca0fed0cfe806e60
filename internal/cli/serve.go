package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/sidepin/sidepin/internal/httpapi"
)

// serveCommand creates the serve command running the HTTP evaluator.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP evaluator for conformance checks",
		Long: `Run the HTTP evaluator for conformance checks.

The evaluator exposes the pure positioning core over JSON endpoints so a host
integration in another environment can replay its observed geometry and diff
the decisions:

  POST /v1/classify   heights -> strategy
  POST /v1/next       previous state + geometry pair -> next state
  POST /v1/resolve    state + geometry -> style rules

The server holds no state between requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")

	return cmd
}

// runServe starts the evaluator and blocks until ctx is canceled or the
// listener fails.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)
	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewServer(logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("evaluator listening", "addr", addr)
	printInfo("Evaluator listening on %s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("evaluator stopped")
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
