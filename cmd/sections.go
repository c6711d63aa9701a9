package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tadkalabs/tadka/internal/rail"
	"github.com/tadkalabs/tadka/internal/shared"
)

// SectionsList lists section snapshots held in the local cache.
func (r *Runner) SectionsList(ctx context.Context, cmd *cli.Command) error {
	repo, db, err := r.openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	snapshots, err := repo.List(nil)
	if err != nil {
		return fmt.Errorf("failed to list sections: %w", err)
	}

	if cmd.Bool("json") {
		type row struct {
			Slug      string `json:"slug"`
			FetchedAt string `json:"fetched_at"`
			Tabs      int    `json:"tabs"`
		}
		rows := []row{}
		for _, snap := range snapshots {
			tabs := 0
			if group, err := snap.Group(); err == nil {
				tabs = group.Len()
			}
			rows = append(rows, row{Slug: snap.Slug(), FetchedAt: snap.FetchedAt().Format("2006-01-02 15:04:05"), Tabs: tabs})
		}
		return r.writeJSON(rows, true)
	}

	if len(snapshots) == 0 {
		r.writePlain("No cached sections. Run 'tadka refresh' first.\n")
		if len(r.config.Portal.Sections) > 0 {
			r.writePlain("Configured sections: %v\n", r.config.Portal.Sections)
		}
		return nil
	}

	r.writePlainHeader("Cached Sections")
	for _, snap := range snapshots {
		tabs := 0
		if group, err := snap.Group(); err == nil {
			tabs = group.Len()
		}
		r.writePlain("%s  (%d tabs, fetched %s)\n", snap.Slug(), tabs, snap.FetchedAt().Format("2006-01-02 15:04:05"))
	}

	return nil
}

// SectionsShow fetches one section and prints its tabs and items.
//
// Serves from the cache when fresh, hitting the portal otherwise.
func (r *Runner) SectionsShow(ctx context.Context, cmd *cli.Command) error {
	slug := cmd.String("slug")
	if slug == "" {
		return fmt.Errorf("%w: section slug is required", shared.ErrMissingArgument)
	}

	repo, db, err := r.openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	service := r.cachedService(repo)
	group, err := service.FetchSection(ctx, slug)
	if err != nil {
		return fmt.Errorf("failed to fetch section: %w", err)
	}

	if tab := cmd.String("tab"); tab != "" {
		items := group.Items(tab)
		if cmd.Bool("json") {
			return r.writeJSON(items, true)
		}

		display := rail.New(slug, group, rail.Opts{
			DisplayLimit: int(cmd.Int("limit")),
			Quality:      rail.Quality(r.config.UI.ThumbnailQuality),
		})
		display.SetActiveTab(tab)

		r.writePlainHeader(fmt.Sprintf("%s / %s", slug, tab))
		for i, item := range display.VisibleItems() {
			r.writePlain("%d. %s\n", i+1, item.Title)
			r.writePlain("   %s\n", display.Thumbnail(item, i))
		}
		return nil
	}

	if cmd.Bool("json") {
		payload, err := service.FetchSectionRaw(ctx, slug)
		if err != nil {
			return fmt.Errorf("failed to fetch section: %w", err)
		}
		return r.writePlain("%s\n", payload)
	}

	r.writePlainHeader(fmt.Sprintf("Section: %s", slug))
	for _, tab := range group.Tabs() {
		r.writePlain("%s  (%d items)\n", tab, len(group.Items(tab)))
	}

	return nil
}

func sectionsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "sections",
		Usage: "Inspect portal sections",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List cached sections",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output as JSON",
					},
				},
				Action: r.SectionsList,
			},
			{
				Name:  "show",
				Usage: "Show a section's tabs and items",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "slug",
						Usage:    "Section slug to show",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "tab",
						Usage: "Show items for one tab",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Cap the number of items shown (0 = all)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output as JSON",
					},
				},
				Action: r.SectionsShow,
			},
		},
	}
}
