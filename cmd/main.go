package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tadkalabs/tadka/internal/feed"
	"github.com/tadkalabs/tadka/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	configPath := "config.toml"
	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(configPath); err == nil {
			config = loadedConfig
		}
	}

	service := feed.NewHTTPService(config.Portal.BaseURL, feed.HTTPOpts{
		Token:     config.Portal.Token,
		RateLimit: config.Portal.RateLimit,
	})

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Service:    service,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "tadka",
		Usage:    "Browse Tadka portal sections from the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
