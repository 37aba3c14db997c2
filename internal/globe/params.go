package globe

import (
	"fmt"

	"wireframe-globe/internal/viewmatrix"
)

// Params is the single definition of the globe's shape and view. Both the
// live renderer and the baker read it, so the two never drift apart.
type Params struct {
	Radius    float64 `json:"radius" toml:"radius"`
	YScale    float64 `json:"y_scale" toml:"y_scale"` // vertical stretch, >1 gives an oval
	Tilt      float64 `json:"tilt" toml:"tilt"`       // radians, toward the viewer
	LatCount  int     `json:"lat_count" toml:"lat_count"`
	LongCount int     `json:"long_count" toml:"long_count"`
	Segments  int     `json:"segments" toml:"segments"` // per closed ring; Segments+1 samples

	// CullTolerance is the fraction of Radius behind the depth origin that
	// still counts as front-facing. Tuned by eye, not derived.
	CullTolerance float64 `json:"cull_tolerance" toml:"cull_tolerance"`
}

// Defaults for the site globe.
const (
	DefaultRadius        = 50
	DefaultYScale        = 1.2
	DefaultTilt          = 0.6
	DefaultLatCount      = 10
	DefaultLongCount     = 12
	DefaultSegments      = 64
	DefaultCullTolerance = 0.1
)

// DefaultParams returns the globe used by both renderers.
func DefaultParams() Params {
	return Params{
		Radius:        DefaultRadius,
		YScale:        DefaultYScale,
		Tilt:          DefaultTilt,
		LatCount:      DefaultLatCount,
		LongCount:     DefaultLongCount,
		Segments:      DefaultSegments,
		CullTolerance: DefaultCullTolerance,
	}
}

// WithDefaults returns p with every zero field replaced by its default.
// Tilt and CullTolerance are left alone since zero is meaningful for both;
// start from DefaultParams to get their defaults.
func (p Params) WithDefaults() Params {
	d := DefaultParams()
	if p.Radius == 0 {
		p.Radius = d.Radius
	}
	if p.YScale == 0 {
		p.YScale = d.YScale
	}
	if p.LatCount == 0 {
		p.LatCount = d.LatCount
	}
	if p.LongCount == 0 {
		p.LongCount = d.LongCount
	}
	if p.Segments == 0 {
		p.Segments = d.Segments
	}
	return p
}

// Validate rejects parameters that cannot describe a wireframe sphere.
func (p Params) Validate() error {
	switch {
	case p.Radius <= 0:
		return fmt.Errorf("globe: radius must be positive, got %g", p.Radius)
	case p.YScale <= 0:
		return fmt.Errorf("globe: y_scale must be positive, got %g", p.YScale)
	case p.LatCount < 1:
		return fmt.Errorf("globe: lat_count must be at least 1, got %d", p.LatCount)
	case p.LongCount < 1:
		return fmt.Errorf("globe: long_count must be at least 1, got %d", p.LongCount)
	case p.Segments < 3:
		return fmt.Errorf("globe: segments must be at least 3, got %d", p.Segments)
	case p.CullTolerance < 0:
		return fmt.Errorf("globe: cull_tolerance must not be negative, got %g", p.CullTolerance)
	}
	return nil
}

// DepthThreshold is the depth a projected point must exceed to be drawn.
func (p Params) DepthThreshold() float64 {
	return -p.Radius * p.CullTolerance
}

// ViewBox is the framing shared by every renderer: 1.2R either side
// horizontally and 1.4R vertically (-60 -70 120 140 at R=50).
func (p Params) ViewBox() viewmatrix.ViewBox {
	return viewmatrix.ViewBox{
		MinX:   -p.Radius * 12 / 10,
		MinY:   -p.Radius * 14 / 10,
		Width:  p.Radius * 24 / 10,
		Height: p.Radius * 28 / 10,
	}
}
