package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/randalmurphal/labelkit/abbrev"
	"github.com/randalmurphal/labelkit/config"
	"github.com/randalmurphal/labelkit/fit"
	"github.com/randalmurphal/labelkit/watch"
)

// App carries what every command needs.
type App struct {
	ctx    context.Context
	cfg    config.Config
	logger *slog.Logger

	source   abbrev.Source
	reloader *watch.Reloader
	ab       *abbrev.Abbreviator

	stdin  io.Reader
	stdout io.Writer
}

func newApp(ctx context.Context, cli *CLI, stdin io.Reader, stdout, stderr io.Writer) (*App, error) {
	cfg := config.DefaultConfig()
	if cli.Config != "" {
		loaded, err := config.Load(cli.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cli.Table != "" {
		cfg.Table = cli.Table
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger(stderr, cfg.Level(), cli.NoColor)

	app := &App{
		ctx:    ctx,
		cfg:    cfg,
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
	}

	// The table is required: fail before any command runs.
	switch {
	case cfg.Watch:
		r, err := watch.NewReloader(cfg.Table,
			watch.WithLogger(logger),
			watch.WithPollInterval(cfg.PollInterval))
		if err != nil {
			return nil, err
		}
		app.source, app.reloader = r, r
	case cfg.Table != "":
		t, err := abbrev.LoadFile(cfg.Table)
		if err != nil {
			return nil, err
		}
		app.source = t
	default:
		app.source = abbrev.Default()
	}

	app.ab = abbrev.New(app.source)
	logger.Debug("abbreviation table ready",
		slog.String("table", tableName(cfg.Table)),
		slog.Bool("watch", cfg.Watch))

	return app, nil
}

func (a *App) fitter() *fit.Fitter {
	opts := []fit.Option{fit.WithLogger(a.logger)}
	if a.cfg.Legacy {
		opts = append(opts, fit.WithLegacyMeasurement())
	}
	return fit.NewFitter(a.ab, a.cfg.Measurer(), opts...)
}

func tableName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
