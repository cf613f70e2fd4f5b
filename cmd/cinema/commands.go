package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gordonklaus/portaudio"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"

	"github.com/KirkDiggler/bowcinema/internal/audio"
	"github.com/KirkDiggler/bowcinema/internal/config"
	"github.com/KirkDiggler/bowcinema/internal/player"
	"github.com/KirkDiggler/bowcinema/internal/report"
	sessionRepo "github.com/KirkDiggler/bowcinema/internal/repositories/session"
)

func newGamesCommand() *cli.Command {
	return &cli.Command{
		Name:  "games",
		Usage: "list the games found in the videos directory",
		Action: func(c *cli.Context) error {
			cfg, _, err := setup(c)
			if err != nil {
				return err
			}
			catalog, err := player.NewCatalog(&player.CatalogConfig{Root: cfg.Paths.Videos})
			if err != nil {
				return err
			}
			games, err := catalog.Games()
			if err != nil {
				return err
			}
			for _, g := range games {
				fmt.Println(g)
			}
			return nil
		},
	}
}

func newDevicesCommand() *cli.Command {
	return &cli.Command{
		Name:  "devices",
		Usage: "list audio input devices",
		Action: func(c *cli.Context) error {
			if err := portaudio.Initialize(); err != nil {
				return fmt.Errorf("failed to initialize portaudio: %w", err)
			}
			defer portaudio.Terminate()

			devices, err := audio.InputDevices()
			if err != nil {
				return err
			}
			for _, d := range devices {
				fmt.Printf("%d\t%s\t%d ch\t%.0f Hz\n", d.Index, d.Name, d.Channels, d.SampleRate)
			}
			return nil
		},
	}
}

func newReportCommand() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "regenerate the reports of a stored session",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "session",
				Usage: "session ID; lists recent sessions when empty",
			},
			&cli.BoolFlag{
				Name:  "workbook",
				Usage: "also write the XLSX export",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, logger, err := setup(c)
			if err != nil {
				return err
			}
			if cfg.Redis.Addr == "" {
				return fmt.Errorf("redis address is not configured")
			}

			client, repo, err := openRepository(c.Context, cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			id := c.String("session")
			if id == "" {
				out, err := repo.ListSessions(c.Context, &sessionRepo.ListSessionsInput{Limit: 10})
				if err != nil {
					return err
				}
				for _, s := range out.Sessions {
					fmt.Printf("%s\t%d shooters\t%s\n", s.ID, len(s.Shooters), s.CreatedAt.Format(time.DateTime))
				}
				return nil
			}

			session, err := repo.GetSession(c.Context, &sessionRepo.GetSessionInput{SessionID: id})
			if err != nil {
				return err
			}

			path, err := report.WriteText(session)
			if err != nil {
				return err
			}
			fmt.Println(path)

			if _, path, err = report.WriteChart(session); err != nil {
				return err
			}
			fmt.Println(path)

			if c.Bool("workbook") {
				if path, err = report.WriteWorkbook(session, &report.WorkbookConfig{Logger: logger}); err != nil {
					return err
				}
				fmt.Println(path)
			}
			return nil
		},
	}
}

func openRepository(ctx context.Context, cfg *config.Config) (*redis.Client, sessionRepo.Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	repo, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: client})
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return client, repo, nil
}
