package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/gekko3d/rayvox"
	"github.com/gekko3d/rayvox/voxelrt/rt/app"
	"github.com/gekko3d/rayvox/voxelrt/rt/hud"
)

type options struct {
	headless bool
	out      string
}

// parseArgs loads the config file (if any) and lets flags override it. A
// single positional argument is the render distance.
func parseArgs(args []string, stderr io.Writer) (rayvox.Config, options, error) {
	fs := flag.NewFlagSet("rayvox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	scene := fs.String("scene", "", "scene to render: analytic or buffer")
	distance := fs.Int("distance", 0, "render distance in cells")
	width := fs.Int("width", 0, "frame width")
	height := fs.Int("height", 0, "frame height")
	workers := fs.Int("workers", -1, "render goroutines (0 = one per CPU)")
	debug := fs.Bool("debug", false, "log per-frame stats and draw the overlay")
	var opt options
	fs.BoolVar(&opt.headless, "headless", false, "render one frame to -out and exit")
	fs.StringVar(&opt.out, "out", "frame.png", "PNG written in headless mode")
	if err := fs.Parse(args); err != nil {
		return rayvox.Config{}, opt, err
	}

	cfg := rayvox.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = rayvox.LoadConfig(*configPath); err != nil {
			return cfg, opt, err
		}
	}

	if fs.NArg() > 1 {
		return cfg, opt, fmt.Errorf("expected at most one argument, got %d", fs.NArg())
	}
	if fs.NArg() == 1 {
		d, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return cfg, opt, fmt.Errorf("render distance %q: %w", fs.Arg(0), err)
		}
		cfg.Camera.RenderDistance = d
	}
	if *distance != 0 {
		cfg.Camera.RenderDistance = *distance
	}
	if *scene != "" {
		cfg.Scene = *scene
	}
	if *width != 0 {
		cfg.Width = *width
	}
	if *height != 0 {
		cfg.Height = *height
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	if *debug {
		cfg.Debug = true
	}
	return cfg, opt, cfg.Validate()
}

func renderToFile(ctx context.Context, a *app.App, path string) error {
	f, err := a.Render(ctx)
	if err != nil {
		return err
	}
	if a.DebugMode {
		hud.Draw(a.Image, a.Overlay())
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(out, a.Image); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	a.Logger.Infof("wrote %s (%s)", path, f)
	return nil
}

func run(args []string) error {
	cfg, opt, err := parseArgs(args, os.Stderr)
	if err != nil {
		return err
	}
	logger := rayvox.NewDefaultLogger(cfg.LogPrefix, cfg.Debug)

	a, err := app.NewApp(cfg, logger)
	if err != nil {
		return err
	}

	if opt.headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return renderToFile(ctx, a, opt.out)
	}
	return runWindow(a)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		rayvox.NewDefaultLogger("rayvox", false).Errorf("%v", err)
		os.Exit(1)
	}
}
