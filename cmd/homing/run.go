package main

import (
	"context"
	"errors"
	"io"

	"github.com/zeusync/homing/internal/config"
	"github.com/zeusync/homing/internal/core/observability/log"
	"github.com/zeusync/homing/internal/injector"
	"github.com/zeusync/homing/pkg/encoding"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

type options struct {
	scene  string
	watch  bool
	format string
}

func run(ctx context.Context, out io.Writer, opts options) error {
	enc, err := encoding.ForFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.watch && opts.scene == "" {
		return errors.New("-watch needs -scene")
	}

	cfg := config.Default()
	if opts.scene != "" {
		if cfg, err = config.LoadFile(opts.scene); err != nil {
			return err
		}
	}
	logger, err := generate(ctx, out, enc, cfg)
	if err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	return watch(ctx, out, enc, opts.scene, logger)
}

// generate builds the scene, writes its field to out and returns the run's
// logger.
func generate(ctx context.Context, out io.Writer, enc encoding.Encoder, cfg *config.Config) (log.Log, error) {
	setup, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	app := injector.InitializeApp(setup.Generator, setup.LogLevel)
	defer app.Logger.Sync()

	f, err := app.Generator.Generate(ctx, setup.Estimator, setup.Grid)
	if err != nil {
		return app.Logger, err
	}
	return app.Logger, enc.Encode(out, f)
}

func watch(ctx context.Context, out io.Writer, enc encoding.Encoder, scene string, logger log.Log) error {
	w, err := config.NewWatcher(scene)
	if err != nil {
		return err
	}
	defer w.Close()
	logger.Info("watching scene", log.String("path", scene))

	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			cfg, err := config.LoadFile(path)
			if err != nil {
				logger.Error("scene reload failed, keeping previous field", log.Error(err))
				continue
			}
			next, err := generate(ctx, out, enc, cfg)
			if err != nil {
				logger.Error("field generation failed", log.Error(err))
				continue
			}
			logger = next
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("scene watcher error", log.Error(err))
		}
	}
}
