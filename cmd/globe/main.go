package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"wireframe-globe/internal/config"
	"wireframe-globe/internal/live"
)

func main() {
	colorFlag := flag.String("color", "", "Line color, #rrggbb or a color name (default: #ffffff)")
	configFile := flag.String("config", "", "Path to a .json or .toml config file for the globe shape")
	width := flag.Int("width", 480, "Initial window width")
	height := flag.Int("height", 560, "Initial window height")
	headless := flag.Bool("headless", false, "Run without a window.")
	hz := flag.Int("hz", live.DefaultTPS, "Tick rate in headless mode.")
	ticks := flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	snapshot := flag.String("snapshot", "", "Headless only: write the last frame to this .png or .webp")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Color: *colorFlag})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lineColor, err := config.ParseColor(cfg.Color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := live.DefaultOptions()
	opts.Color = lineColor
	opts.Params = cfg.Globe
	opts.LineWidth = cfg.StrokeWidth
	g := live.New(opts)

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := live.RunHeadless(ctx, g, live.HeadlessConfig{
			Hz:       *hz,
			Ticks:    *ticks,
			Snapshot: *snapshot,
			Size:     256,
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Angle: %.4f rad\n", g.Angle())
		return
	}

	if err := live.RunWindow(g, "Wireframe Globe", *width, *height); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
