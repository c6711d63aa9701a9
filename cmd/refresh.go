package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tadkalabs/tadka/internal/shared"
	"github.com/tadkalabs/tadka/internal/tasks"
)

// Refresh re-fetches configured sections into the local cache.
func (r *Runner) Refresh(ctx context.Context, cmd *cli.Command) error {
	slugs := cmd.StringSlice("section")
	if len(slugs) == 0 {
		slugs = r.config.Portal.Sections
	}
	if len(slugs) == 0 {
		return fmt.Errorf("%w: no sections configured, set portal.sections in config.toml", shared.ErrMissingConfig)
	}

	repo, db, err := r.openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	engine := tasks.NewRefreshEngine(r.service, repo)

	progress := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.writePlain("[%d/%d] %s\n", update.Step, update.Total, update.Message)
		}
	}()

	result, err := engine.Run(ctx, slugs, progress)
	close(progress)
	<-done

	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	r.writePlainln("✓ Refreshed %d/%d sections", result.SuccessCount, result.Total)
	for _, section := range result.Sections {
		if section.Err != nil {
			r.writePlain("  ✗ %s: %v\n", section.Slug, section.Err)
		}
	}

	if result.FailedCount > 0 {
		return fmt.Errorf("%d sections failed to refresh", result.FailedCount)
	}

	return nil
}

func refreshCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "refresh",
		Usage: "Fetch configured sections into the local cache",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "section",
				Aliases: []string{"s"},
				Usage:   "Section slug to refresh (repeatable, defaults to configured sections)",
			},
		},
		Action: r.Refresh,
	}
}
