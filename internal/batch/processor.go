package batch

import (
	"fmt"
	"image"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"wireframe-globe/internal/bake"
	"wireframe-globe/internal/raster"
)

// Config holds everything a raster run shares.
type Config struct {
	Asset    *bake.Asset
	Raster   raster.Options
	Workers  int
	Progress io.Writer // periodic progress lines; nil for silence
}

// Result holds the outcome of rasterizing one frame.
type Result struct {
	Frame     int
	RotationY float64
	Image     *image.NRGBA
	Err       error
}

// Run rasterizes every frame of the asset using a worker pool. Results are
// indexed by frame regardless of completion order.
func Run(cfg Config) []Result {
	frames := cfg.Asset.Frames
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func processFrame(cfg Config, idx int) Result {
	frame := cfg.Asset.Frames[idx]
	img, err := raster.RenderFrame(frame, cfg.Asset.Params.ViewBox(), cfg.Raster)
	return Result{
		Frame:     idx,
		RotationY: frame.RotationY,
		Image:     img,
		Err:       err,
	}
}

// FirstError returns the error of the lowest failing frame, or nil.
func FirstError(results []Result) error {
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("batch: frame %d: %w", r.Frame, r.Err)
		}
	}
	return nil
}
