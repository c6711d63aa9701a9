package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
)

// CacheStatus reports each cached section's age and freshness against the TTL.
func (r *Runner) CacheStatus(ctx context.Context, cmd *cli.Command) error {
	repo, db, err := r.openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	snapshots, err := repo.List(nil)
	if err != nil {
		return fmt.Errorf("failed to list sections: %w", err)
	}

	if len(snapshots) == 0 {
		r.writePlain("Cache is empty.\n")
		return nil
	}

	ttl := time.Duration(r.config.Cache.TTLMinutes) * time.Minute
	now := time.Now()

	r.writePlainHeader("Cache Status")
	for _, snap := range snapshots {
		state := "fresh"
		if snap.Stale(ttl, now) {
			state = "stale"
		}
		age := now.Sub(snap.FetchedAt()).Round(time.Second)
		r.writePlain("%s  %s (age %s)\n", snap.Slug(), state, age)
	}

	return nil
}

// CacheClear removes all cached section snapshots.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	repo, db, err := r.openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	removed, err := repo.Clear()
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	r.logger.Infof("cleared %d cached sections", removed)
	r.writePlain("✓ Removed %d cached sections\n", removed)
	return nil
}

// cacheCommand handles section cache inspection and maintenance
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect and maintain the section cache",
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Show cached sections and their freshness",
				Action: r.CacheStatus,
			},
			{
				Name:   "clear",
				Usage:  "Remove all cached sections",
				Action: r.CacheClear,
			},
		},
	}
}
