package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tadkalabs/tadka/internal/formatter"
	"github.com/tadkalabs/tadka/internal/shared"
)

// Export writes a section's items to CSV, Markdown, or plain text.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	slug := cmd.String("slug")
	if slug == "" {
		return fmt.Errorf("%w: section slug is required", shared.ErrMissingArgument)
	}
	format := cmd.String("format")
	output := cmd.String("output")

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

	export := &formatter.SectionExport{Slug: slug, Group: group}

	switch format {
	case "csv":
		result, err := formatter.WriteCSVExport(export, output)
		if err != nil {
			return fmt.Errorf("CSV export failed: %w", err)
		}
		r.writePlain("✓ Exported to %s\n", result.ItemsFile)
		r.writePlain("✓ Metadata written to %s\n", result.MetadataFile)

	case "md", "markdown":
		mdFile, err := formatter.WriteMarkdownExport(export, output)
		if err != nil {
			return fmt.Errorf("Markdown export failed: %w", err)
		}
		r.writePlain("✓ Exported to %s\n", mdFile)

	case "txt", "text":
		txtFile, err := formatter.WriteTextExport(export, output)
		if err != nil {
			return fmt.Errorf("text export failed: %w", err)
		}
		r.writePlain("✓ Exported to %s\n", txtFile)

	default:
		return fmt.Errorf("%w: unsupported format %q (csv, md, txt)", shared.ErrInvalidFlag, format)
	}

	return nil
}

func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export a section to CSV, Markdown, or plain text",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "slug",
				Usage:    "Section slug to export",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format (csv, md, txt)",
				Value:   "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output path (defaults to the section slug)",
			},
		},
		Action: r.Export,
	}
}
