package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/KirkDiggler/bowcinema/internal/config"
)

// HighGUI windows must be driven from the main OS thread
func init() {
	runtime.LockOSThread()
}

func main() {
	app := &cli.App{
		Name:  "cinema",
		Usage: "archery cinema venue controller",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"CINEMA_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			newRunCommand(),
			newGamesCommand(),
			newDevicesCommand(),
			newReportCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and installs the default logger
func setup(c *cli.Context) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
