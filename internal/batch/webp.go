package batch

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"

	"wireframe-globe/internal/bake"
)

// disposeToBackground clears each frame before the next one is drawn, so
// transparent regions never show the previous rotation.
const disposeToBackground = 1

// WriteWebP encodes rasterized frames as a looping animated WebP whose frame
// durations follow the timeline windows.
func WriteWebP(path string, tl bake.Timeline, results []Result) error {
	if err := FirstError(results); err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("batch: no frames to encode")
	}

	ms := uint(math.Round(tl.Window() * 1000))
	if ms == 0 {
		ms = 1
	}

	ani := nativewebp.Animation{
		Images:    make([]image.Image, len(results)),
		Durations: make([]uint, len(results)),
		Disposals: make([]uint, len(results)),
		LoopCount: 0, // forever
	}
	for i, r := range results {
		ani.Images[i] = r.Image
		ani.Durations[i] = ms
		ani.Disposals[i] = disposeToBackground
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("batch: create %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.EncodeAll(f, &ani, nil); err != nil {
		return fmt.Errorf("batch: webp encode: %w", err)
	}
	return f.Close()
}
