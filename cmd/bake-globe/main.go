package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/gg"

	"wireframe-globe/internal/bake"
	"wireframe-globe/internal/batch"
	"wireframe-globe/internal/config"
	"wireframe-globe/internal/raster"
)

func main() {
	// CLI flags; with none given the default site globe is baked
	configFile := flag.String("config", "", "Path to a .json or .toml config file")
	output := flag.String("output", "", "Output SVG path (default: public/globe-animation.svg)")
	frames := flag.Int("frames", 0, "Number of animation frames (default: 48)")
	duration := flag.Float64("duration", 0, "Seconds per full rotation (default: 10)")
	webp := flag.String("webp", "", "Also write an animated WebP preview to this path")
	framesDir := flag.String("frames-dir", "", "Also dump every frame as TGA plus manifest.json into this directory")
	workers := flag.Int("workers", 0, "Raster preview workers (default: NumCPU)")
	watch := flag.Bool("watch", false, "Re-bake whenever the config file changes (requires -config)")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
		gg.SetLogger(logger)
	}

	flags := config.Flags{
		Output:    *output,
		Frames:    *frames,
		Duration:  *duration,
		WebP:      *webp,
		FramesDir: *framesDir,
		Workers:   *workers,
	}

	if err := run(*configFile, flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !*watch {
		return
	}
	if *configFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -watch requires -config.")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	fmt.Printf("Watching %s (Ctrl+C to stop)\n", *configFile)
	err := config.Watch(ctx, *configFile, func() {
		if err := run(*configFile, flags); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string, flags config.Flags) error {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}

	// CLI flags override config file
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	start := time.Now()
	asset, err := bake.Bake(cfg.Globe, cfg.Timeline())
	if err != nil {
		return err
	}

	size, err := asset.WriteFile(cfg.Output, cfg.Style())
	if err != nil {
		return err
	}
	fmt.Printf("Generated %s\n", cfg.Output)
	fmt.Printf("Frames: %d, File size: %.2f KB\n", len(asset.Frames), float64(size)/1024)
	slog.Debug("bake done", "paths", asset.PathCount(), "elapsed", time.Since(start))

	if cfg.Preview.WebP == "" && cfg.Preview.FramesDir == "" {
		return nil
	}
	return writePreviews(cfg, asset)
}

func writePreviews(cfg config.Config, asset *bake.Asset) error {
	lineColor, err := config.ParseColor(cfg.Color)
	if err != nil {
		return err
	}
	opts := raster.DefaultOptions(cfg.Preview.Size)
	opts.Supersample = cfg.Preview.Supersample
	opts.Color = lineColor
	opts.LineWidth = cfg.StrokeWidth

	fmt.Printf("Rasterizing %d frames at %dx%d, Workers: %d\n", len(asset.Frames), opts.Width, opts.Height, cfg.Preview.Workers)
	results := batch.Run(batch.Config{
		Asset:    asset,
		Raster:   opts,
		Workers:  cfg.Preview.Workers,
		Progress: os.Stdout,
	})

	if cfg.Preview.WebP != "" {
		if err := batch.WriteWebP(cfg.Preview.WebP, asset.Timeline, results); err != nil {
			return err
		}
		fmt.Printf("WebP: %s\n", cfg.Preview.WebP)
	}
	if cfg.Preview.FramesDir != "" {
		if err := batch.WriteFrames(cfg.Preview.FramesDir, asset, results); err != nil {
			return err
		}
		fmt.Printf("Frames dir: %s\n", cfg.Preview.FramesDir)
	}
	return nil
}
