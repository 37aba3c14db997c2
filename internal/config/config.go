package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"wireframe-globe/internal/bake"
	"wireframe-globe/internal/globe"
)

// DefaultOutput is where the baked SVG lands, relative to the site root.
var DefaultOutput = filepath.Join("public", "globe-animation.svg")

// Config holds the globe shape, the bake timeline and output settings.
type Config struct {
	Output      string       `json:"output" toml:"output"`
	Frames      int          `json:"frames" toml:"frames"`
	Duration    float64      `json:"duration_seconds" toml:"duration_seconds"`
	Color       string       `json:"color" toml:"color"`   // live and raster line color
	Stroke      string       `json:"stroke" toml:"stroke"` // SVG stroke, currentColor by default
	StrokeWidth float64      `json:"stroke_width" toml:"stroke_width"`
	Globe       globe.Params `json:"globe" toml:"globe"`
	Preview     Preview      `json:"preview" toml:"preview"`
}

// Preview configures the optional raster outputs of a bake.
type Preview struct {
	WebP        string `json:"webp" toml:"webp"`             // animated WebP path, empty to skip
	FramesDir   string `json:"frames_dir" toml:"frames_dir"` // TGA dump directory, empty to skip
	Size        int    `json:"size" toml:"size"`
	Supersample int    `json:"supersample" toml:"supersample"`
	Workers     int    `json:"workers" toml:"workers"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	style := bake.DefaultStyle()
	return Config{
		Output:      DefaultOutput,
		Frames:      bake.DefaultFrames,
		Duration:    bake.DefaultDuration,
		Color:       "#ffffff",
		Stroke:      style.Stroke,
		StrokeWidth: style.StrokeWidth,
		Globe:       globe.DefaultParams(),
		Preview: Preview{
			Size:        256,
			Supersample: 2,
			Workers:     runtime.NumCPU(),
		},
	}
}

// Load reads a JSON or TOML config file, chosen by extension. Fields not set
// in the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: unsupported extension %q for %s (want .json or .toml)", ext, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output    string
	Frames    int
	Duration  float64
	Color     string
	WebP      string
	FramesDir string
	Workers   int
}

// Resolve applies flag overrides and fills any remaining empty fields with
// defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Duration > 0 {
		c.Duration = flags.Duration
	}
	if flags.Color != "" {
		c.Color = flags.Color
	}
	if flags.WebP != "" {
		c.Preview.WebP = flags.WebP
	}
	if flags.FramesDir != "" {
		c.Preview.FramesDir = flags.FramesDir
	}
	if flags.Workers > 0 {
		c.Preview.Workers = flags.Workers
	}

	d := Default()
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Frames <= 0 {
		c.Frames = d.Frames
	}
	if c.Duration <= 0 {
		c.Duration = d.Duration
	}
	if c.Color == "" {
		c.Color = d.Color
	}
	if c.Stroke == "" {
		c.Stroke = d.Stroke
	}
	if c.StrokeWidth <= 0 {
		c.StrokeWidth = d.StrokeWidth
	}
	c.Globe = c.Globe.WithDefaults()
	if c.Preview.Size <= 0 {
		c.Preview.Size = d.Preview.Size
	}
	if c.Preview.Supersample <= 0 {
		c.Preview.Supersample = d.Preview.Supersample
	}
	if c.Preview.Workers <= 0 {
		c.Preview.Workers = d.Preview.Workers
	}
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if err := c.Globe.Validate(); err != nil {
		return err
	}
	if err := c.Timeline().Validate(); err != nil {
		return err
	}
	if _, err := ParseColor(c.Color); err != nil {
		return err
	}
	// Stroke is written into the stylesheet verbatim
	if c.Stroke != "currentColor" {
		if _, err := ParseColor(c.Stroke); err != nil {
			return fmt.Errorf("config: stroke: %w", err)
		}
	}
	return nil
}

// Timeline returns the bake timeline described by the config.
func (c *Config) Timeline() bake.Timeline {
	return bake.Timeline{Frames: c.Frames, Duration: c.Duration}
}

// Style returns the SVG paint settings described by the config.
func (c *Config) Style() bake.Style {
	st := bake.DefaultStyle()
	st.Stroke = c.Stroke
	st.StrokeWidth = c.StrokeWidth
	return st
}
