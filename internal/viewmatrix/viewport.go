package viewmatrix

import "math"

// ViewBox is the globe-space rectangle a renderer must show, in the same
// units as the projected points.
type ViewBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// Viewport maps projected globe coordinates onto a pixel surface.
type Viewport struct {
	Scale      float64
	OffX, OffY float64
}

// Fit returns the viewport that centers box inside a w×h surface and scales it
// uniformly so the whole box stays visible.
func Fit(box ViewBox, w, h int) Viewport {
	if box.Width <= 0 || box.Height <= 0 || w <= 0 || h <= 0 {
		return Viewport{Scale: 1}
	}
	scale := math.Min(float64(w)/box.Width, float64(h)/box.Height)

	// Center of the box lands on the center of the surface
	cx := box.MinX + box.Width/2
	cy := box.MinY + box.Height/2
	return Viewport{
		Scale: scale,
		OffX:  float64(w)/2 - cx*scale,
		OffY:  float64(h)/2 - cy*scale,
	}
}

// Apply maps a projected point to pixel coordinates.
func (v Viewport) Apply(p Point) (float64, float64) {
	return p.X*v.Scale + v.OffX, p.Y*v.Scale + v.OffY
}
