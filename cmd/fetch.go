package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tadkalabs/tadka/internal/shared"
)

// Fetch retrieves a section straight from the portal, bypassing the cache.
func (r *Runner) Fetch(ctx context.Context, cmd *cli.Command) error {
	slug := cmd.String("slug")
	if slug == "" {
		return fmt.Errorf("%w: section slug is required", shared.ErrMissingArgument)
	}

	r.logger.Infof("fetching section: %s", slug)

	payload, err := r.service.FetchSectionRaw(ctx, slug)
	if err != nil {
		return fmt.Errorf("failed to fetch section: %w", err)
	}

	if cmd.Bool("pretty") {
		var decoded any
		if err := json.Unmarshal(payload, &decoded); err != nil {
			return fmt.Errorf("failed to decode section payload: %w", err)
		}
		indented, err := shared.MarshalJSON(decoded, true)
		if err != nil {
			return fmt.Errorf("failed to format payload: %w", err)
		}
		payload = indented
	}

	if output := cmd.String("output"); output != "" {
		if err := os.WriteFile(output, payload, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		r.writePlain("✓ Saved %s to %s\n", slug, output)
		return nil
	}

	return r.writePlain("%s\n", payload)
}

func fetchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Fetch a section from the portal and print or save it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "slug",
				Usage:    "Section slug to fetch",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print the JSON payload",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the payload to a file instead of stdout",
			},
		},
		Action: r.Fetch,
	}
}
