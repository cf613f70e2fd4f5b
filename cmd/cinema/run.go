package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"

	"github.com/KirkDiggler/bowcinema/internal/audio"
	"github.com/KirkDiggler/bowcinema/internal/camera"
	"github.com/KirkDiggler/bowcinema/internal/common/clock"
	"github.com/KirkDiggler/bowcinema/internal/common/uuid"
	"github.com/KirkDiggler/bowcinema/internal/config"
	"github.com/KirkDiggler/bowcinema/internal/engine"
	"github.com/KirkDiggler/bowcinema/internal/handlers/api"
	"github.com/KirkDiggler/bowcinema/internal/handlers/discord"
	"github.com/KirkDiggler/bowcinema/internal/imaging"
	"github.com/KirkDiggler/bowcinema/internal/metrics"
	"github.com/KirkDiggler/bowcinema/internal/player"
	"github.com/KirkDiggler/bowcinema/internal/services/capture"
	"github.com/KirkDiggler/bowcinema/internal/services/game"
	"github.com/KirkDiggler/bowcinema/internal/services/ledger"
	"github.com/KirkDiggler/bowcinema/internal/services/roster"
	"github.com/KirkDiggler/bowcinema/internal/services/scoring"
)

func newRunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run the venue loop",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "game",
				Usage: "start a session with these games right away",
			},
			&cli.IntFlag{
				Name:  "shooters",
				Value: 1,
				Usage: "number of shooters taken from the roster",
			},
			&cli.BoolFlag{
				Name:  "no-audio",
				Usage: "disable the microphone; only manual bangs are used",
			},
			&cli.BoolFlag{
				Name:  "workbook",
				Usage: "write the XLSX export when a session completes",
			},
			&cli.BoolFlag{
				Name:  "fullscreen",
				Usage: "show the player window fullscreen",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sysClock := &clock.DefaultClock{}

	shooters, err := roster.New(&roster.Config{
		MaxPlayers: cfg.Game.MaxPlayers,
		Names:      cfg.Game.Shooters,
	})
	if err != nil {
		return err
	}
	shooters.SetCount(c.Int("shooters"))

	catalog, err := player.NewCatalog(&player.CatalogConfig{Root: cfg.Paths.Videos})
	if err != nil {
		return err
	}

	cam, err := camera.OpenCV(&camera.OpenCVConfig{
		DeviceIndex: cfg.Camera.DeviceIndex,
		Width:       cfg.Camera.Width,
		Height:      cfg.Camera.Height,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	defer cam.Close()

	extractor, err := imaging.NewTemplateExtractor(&imaging.TemplateExtractorConfig{
		TemplatePath: cfg.Paths.TemplateImage,
		MaskPath:     cfg.Paths.MaskImage,
		Method:       cfg.Extractor.MatchMethod,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	defer extractor.Close()

	videoPlayer, err := player.NewOpenCV(&player.OpenCVConfig{
		Picker:     catalog,
		Clock:      sysClock,
		Fullscreen: c.Bool("fullscreen"),
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	defer videoPlayer.Close()

	captureSvc, err := capture.New(&capture.Config{
		Camera:      cam,
		Player:      videoPlayer,
		Store:       imaging.NewDiskStore(),
		Clock:       sysClock,
		Root:        cfg.Paths.CamShots,
		Format:      cfg.Camera.Format,
		SettleDelay: cfg.Camera.SettleDelay,
		GrabTimeout: cfg.Camera.GrabTimeout,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	ledgerSvc, err := ledger.New(&ledger.Config{
		UUID:            uuid.New(),
		Clock:           sysClock,
		Points:          cfg.Game.Points,
		PlaceholderCrop: cfg.Paths.NoHitImage,
		Logger:          logger,
	})
	if err != nil {
		return err
	}

	sequencer, err := game.New(&game.Config{
		Ledger:          ledgerSvc,
		Capture:         captureSvc,
		Extractor:       extractor,
		Player:          videoPlayer,
		Scorer:          scoring.NewMissScorer(cfg.Game.Points),
		Clock:           sysClock,
		ArrowsPerPlayer: cfg.Game.ArrowsPerPlayer,
		SessionPrefix:   cfg.Game.SessionPrefix,
		CamShotsDir:     cfg.Paths.CamShots,
		ResultsDir:      cfg.Paths.Results,
		PlaceholderCrop: cfg.Paths.NoHitImage,
		Points:          cfg.Game.Points,
		Logger:          logger,
	})
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	venueMetrics, err := metrics.New(registry)
	if err != nil {
		return err
	}

	engineCfg := &engine.Config{
		Sequencer:      sequencer,
		Ledger:         ledgerSvc,
		Renderer:       videoPlayer,
		Metrics:        venueMetrics,
		TickInterval:   cfg.Game.TickInterval,
		ManualDebounce: time.Second,
		Workbook:       c.Bool("workbook"),
		Logger:         logger,
	}

	devices := &venueDevices{camera: cam, tuning: tuningConfig(cfg)}
	if cfg.Audio.Enabled && !c.Bool("no-audio") {
		source, detector, err := openDetector(cfg, logger)
		if err != nil {
			logger.Warn("audio detection disabled", slog.Any("error", err))
		} else {
			defer source.Close()
			engineCfg.Detector = detector
			devices.detector = detector
		}
	}
	engineCfg.Devices = devices

	if cfg.Redis.Addr != "" {
		client, repo, err := openRepository(ctx, cfg)
		if err != nil {
			logger.Warn("session persistence disabled", slog.Any("error", err))
		} else {
			defer client.Close()
			engineCfg.Repository = repo
		}
	}

	if cfg.Discord.Token != "" {
		publisher, err := discord.New(&discord.Config{
			Token:     cfg.Discord.Token,
			ChannelID: cfg.Discord.ChannelID,
			Logger:    logger,
		})
		if err != nil {
			logger.Warn("discord publishing disabled", slog.Any("error", err))
		} else {
			defer publisher.Close()
			engineCfg.Publisher = publisher
		}
	}

	eng, err := engine.New(engineCfg)
	if err != nil {
		return err
	}

	if cfg.HTTP.Addr != "" {
		handler, err := api.New(&api.Config{
			Controller: eng,
			Registry:   registry,
			Logger:     logger,
		})
		if err != nil {
			return err
		}
		server := &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           handler.Routes(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("control API listening", slog.String("addr", cfg.HTTP.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("control API stopped", slog.Any("error", err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	if games := c.StringSlice("game"); len(games) > 0 {
		go func() {
			out, err := eng.Start(ctx, &game.StartInput{
				Shooters: shooters.Shooters(),
				Games:    games,
			})
			if err != nil {
				logger.Error("session not started", slog.Any("error", err))
				return
			}
			logger.Info("session started from command line", slog.String("session", out.SessionID))
		}()
	}

	if err := eng.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("venue loop stopped")
	return nil
}

func openDetector(cfg *config.Config, logger *slog.Logger) (*audio.PortAudioSource, *audio.Detector, error) {
	source, err := audio.OpenPortAudio(&audio.PortAudioConfig{
		DeviceIndex: cfg.Audio.DeviceIndex,
		BlockTime:   cfg.Audio.BlockTime,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, err
	}

	tuning := audio.NewTuning(source.BlockTime(), tuningConfig(cfg))
	detector, err := audio.NewDetector(source, tuning, logger)
	if err != nil {
		source.Close()
		return nil, nil, fmt.Errorf("failed to create detector: %w", err)
	}

	device := source.Device()
	logger.Info("listening for bangs",
		slog.String("device", device.Name),
		slog.Duration("block", tuning.BlockTime),
	)
	return source, detector, nil
}

func tuningConfig(cfg *config.Config) audio.TuningConfig {
	return audio.TuningConfig{
		InitialThreshold: cfg.Audio.InitialThreshold,
		Oversensitive:    cfg.Audio.Oversensitive,
		Undersensitive:   cfg.Audio.Undersensitive,
		MaxTapLength:     cfg.Audio.MaxTapLength,
	}
}

// venueDevices switches the camera and microphone on behalf of the engine
type venueDevices struct {
	camera   *camera.OpenCVCamera
	detector *audio.Detector
	tuning   audio.TuningConfig
}

func (d *venueDevices) SwitchCamera(index int) error {
	return d.camera.Switch(index)
}

func (d *venueDevices) SwitchMicrophone(index int) error {
	if d.detector == nil {
		return engine.ErrNoDevices
	}
	return d.detector.SwitchDevice(index, d.tuning)
}
