package live

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"wireframe-globe/internal/raster"
)

// HeadlessConfig drives the globe without a window.
type HeadlessConfig struct {
	Hz       int
	Ticks    uint64 // stop after this many ticks; 0 runs until ctx is done
	Snapshot string // last frame as .png or .webp, empty to skip
	Size     int    // snapshot width and height
}

// RunHeadless advances the globe at cfg.Hz on a wall-clock ticker.
func RunHeadless(ctx context.Context, g *Globe, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = DefaultTPS
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("live: invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			if err := g.snapshot(cfg); err != nil {
				return err
			}
			return ctx.Err()
		case <-t.C:
			g.Step(d)
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return g.snapshot(cfg)
			}
		}
	}
}

func (g *Globe) snapshot(cfg HeadlessConfig) error {
	if cfg.Snapshot == "" {
		return nil
	}
	size := cfg.Size
	if size <= 0 {
		size = 256
	}
	opts := raster.DefaultOptions(size)
	opts.Color = g.opts.Color
	opts.LineWidth = g.opts.LineWidth

	img, err := raster.RenderFrame(g.Frame(), g.opts.Params.ViewBox(), opts)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Snapshot)
	if err != nil {
		return fmt.Errorf("live: create %s: %w", cfg.Snapshot, err)
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(cfg.Snapshot), ".webp") {
		err = nativewebp.Encode(f, img, nil)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("live: encode %s: %w", cfg.Snapshot, err)
	}
	return f.Close()
}
