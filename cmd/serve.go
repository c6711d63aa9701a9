package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/tadkalabs/tadka/internal/server"
)

// Serve starts the local section API over the cached feed service.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	repo, db, err := r.openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	service := r.cachedService(repo)

	router := server.NewBasicRouter()
	router.Use(server.RequestLogger(r.logger))
	router.Handler(server.HealthHandler{})
	router.Handler(server.NewSectionHandler(service, r.logger))

	addr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	r.logger.Info("starting section server", "addr", addr)
	r.writePlain("Listening on http://%s\n", addr)

	srv := &http.Server{Addr: addr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		r.logger.Info("shutting down section server")
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}

func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Serve cached sections over HTTP",
		Action: r.Serve,
	}
}
