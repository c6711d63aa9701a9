package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/tadkalabs/tadka/internal/rail"
	"github.com/tadkalabs/tadka/internal/shared"
	"github.com/tadkalabs/tadka/internal/store"
	"github.com/tadkalabs/tadka/internal/tasks"
	"github.com/tadkalabs/tadka/internal/ui"
)

// TUI launches the interactive terminal UI for browsing a section.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	section := cmd.String("section")
	if section == "" {
		if len(r.config.Portal.Sections) == 0 {
			return fmt.Errorf("%w: no sections configured, set portal.sections in config.toml", shared.ErrMissingConfig)
		}
		section = r.config.Portal.Sections[0]
	}

	repo, db, err := r.openRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/tadka-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	tabs, err := store.NewTabStore(cmd.String("tabs-file"))
	if err != nil {
		return fmt.Errorf("failed to open tab store: %w", err)
	}

	service := r.cachedService(repo)
	engine := tasks.NewRefreshEngine(r.service, repo)

	model := ui.NewModel(ctx, service, tabs, engine, ui.Opts{
		Section:   section,
		PortalURL: r.config.Portal.BaseURL,
		Rail: rail.Opts{
			DisplayLimit: r.config.UI.DisplayLimit,
			Quality:      rail.Quality(r.config.UI.ThumbnailQuality),
		},
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Browse a section interactively",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "section",
				Aliases: []string{"s"},
				Usage:   "Section slug to browse (defaults to the first configured section)",
			},
			&cli.StringFlag{
				Name:  "tabs-file",
				Usage: "Path for persisted tab selections",
				Value: "./tabs.json",
			},
		},
		Action: r.TUI,
	}
}
