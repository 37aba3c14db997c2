package batch

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/ftrvxmtrx/tga"

	"wireframe-globe/internal/bake"
)

// ManifestEntry describes one dumped frame.
type ManifestEntry struct {
	Frame     int     `json:"frame"`
	RotationY float64 `json:"rotation_y"`
	Delay     float64 `json:"delay_seconds"`
	Window    float64 `json:"window_seconds"`
	Rings     int     `json:"rings"`
	Image     string  `json:"image"`
}

// FrameName is the file name of frame f inside a dump directory.
func FrameName(f int) string {
	return fmt.Sprintf("frame-%02d.tga", f)
}

// WriteFrames dumps every rasterized frame as TGA into dir and writes
// manifest.json next to them.
func WriteFrames(dir string, asset *bake.Asset, results []Result) error {
	if err := FirstError(results); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("batch: create %s: %w", dir, err)
	}

	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		name := FrameName(r.Frame)
		if err := writeTGA(filepath.Join(dir, name), r.Image); err != nil {
			return err
		}
		entries[i] = ManifestEntry{
			Frame:     r.Frame,
			RotationY: r.RotationY,
			Delay:     asset.Timeline.Delay(r.Frame),
			Window:    asset.Timeline.Window(),
			Rings:     len(asset.Frames[r.Frame].Paths),
			Image:     name,
		}
	}
	return WriteManifest(filepath.Join(dir, "manifest.json"), entries)
}

// WriteManifest writes the frame index as indented JSON.
func WriteManifest(path string, entries []ManifestEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func writeTGA(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	defer f.Close()
	if err := tga.Encode(f, img); err != nil {
		return fmt.Errorf("batch: tga encode %s: %w", path, err)
	}
	return f.Close()
}
