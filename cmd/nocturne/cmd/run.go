package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/go-nocturne/nocturne/cmd/nocturne/internal/config"
	"github.com/go-nocturne/nocturne/pkg/engine"
	"github.com/go-nocturne/nocturne/pkg/graphics"
	"github.com/go-nocturne/nocturne/pkg/random"
	"github.com/go-nocturne/nocturne/pkg/rasterizer"
	"github.com/go-nocturne/nocturne/pkg/scene"
	"github.com/go-nocturne/nocturne/pkg/timeline"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Render the night",
		Long: `Render the full night and encode the frames.

Reads nocturne.yaml from the project directory (the current directory by
default) and writes either one animated GIF or a directory of PNG frames,
per output.format.`,
		Usage: "nocturne run [project-dir] [--verbose]",
		Run:   runRun,
	})
}

func runRun(args []string) error {
	dir := "."
	verbose := false
	for _, arg := range args {
		switch arg {
		case "--verbose":
			verbose = true
		default:
			dir = arg
		}
	}

	cfg, err := config.Resolve(dir, Version)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zapLogger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("can't initialize logger: %w", err)
	}
	defer zapLogger.Sync()
	log := zapLogger.Sugar()

	clock, err := timeline.NewClock(cfg.Clock)
	if err != nil {
		return err
	}

	var rng random.Source
	if cfg.Seed != 0 {
		rng = random.NewSeeded(cfg.Seed)
	} else {
		rng = random.New()
	}

	machine, err := scene.NewMachine(cfg.Scene, graphics.DefaultSkyPalette(), rng)
	if err != nil {
		return err
	}

	var sink rasterizer.FrameSink
	switch cfg.Output.Format {
	case "png":
		sink, err = rasterizer.NewPNGDirSink(cfg.Output.Path)
	default:
		sink, err = rasterizer.NewGIFSink(cfg.Output.Path, cfg.Output.Delay)
	}
	if err != nil {
		return err
	}

	renderer, err := rasterizer.NewRenderer(rasterizer.Config{
		Bounds: cfg.Scene.Bounds,
		Scale:  cfg.Output.Scale,
		Sink:   sink,
	})
	if err != nil {
		return err
	}

	driver, err := engine.NewDriver(engine.DriverConfig{
		Clock:    clock,
		Machine:  machine,
		Renderer: renderer,
		Frames:   cfg.Frames,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := driver.Run(ctx)
	if err != nil {
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}

	w, h := renderer.FrameSize()
	log.Infow("night rendered",
		"frames", stats.FramesRendered,
		"size", fmt.Sprintf("%dx%d", w, h),
		"output", cfg.Output.Path,
	)
	return nil
}
