// Package main is the entry point for dungeoncrawl.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/logger"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatalf("dungeoncrawl: %v", err)
	}
}

func run(configPath string) error {
	// Load .env file for local development
	envErr := godotenv.Load()

	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: logOut,
	})
	if envErr != nil {
		logger.Log.WithError(envErr).Debug(".env file not loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - game still works
			logger.Log.WithError(err).Warn("Telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Log.WithError(err).Error("Error shutting down telemetry")
				}
			}()
		}
	}

	console, closeConsole, err := newConsole(cfg)
	if err != nil {
		return err
	}
	defer closeConsole()

	g, err := game.New(cfg, console)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	logger.Log.WithFields(logrus.Fields{
		"seed":    g.Seed(),
		"session": g.SessionID(),
		"ui":      cfg.UI,
	}).Info("Starting dungeoncrawl")

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// newConsole opens the console selected by cfg.UI.
func newConsole(cfg game.Config) (game.Console, func(), error) {
	if cfg.UI == game.UIPlain {
		return ui.NewPlain(os.Stdin, os.Stdout), func() {}, nil
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	term := ui.NewTerminal(screen, gamedata.MustLoadRoomRegistry())
	return term, term.Close, nil
}

// openLog picks the log destination. The full-screen terminal owns
// stdout and stderr, so without a log file its logs are dropped.
func openLog(cfg game.Config) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
	if cfg.UI == game.UIPlain {
		return os.Stderr, func() {}, nil
	}
	return nil, func() {}, nil
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// available and no endpoint has been configured.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "dungeoncrawl" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
