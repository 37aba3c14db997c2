package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"wireframe-globe/internal/globe"
	"wireframe-globe/internal/postprocess"
	"wireframe-globe/internal/viewmatrix"
)

// EquatorScale widens the equator relative to the other rings.
const EquatorScale = 1.2

// Options describes one raster output.
type Options struct {
	Width, Height int
	Supersample   int         // render at this multiple then downsample; <=1 disables
	Color         color.Color // line color
	Background    color.Color // nil leaves the image transparent
	LineWidth     float64     // in view box units
}

// DefaultOptions is a square transparent render with white lines.
func DefaultOptions(size int) Options {
	return Options{
		Width:       size,
		Height:      size,
		Supersample: 2,
		Color:       color.White,
		LineWidth:   0.8,
	}
}

// RenderFrame strokes every visible arc of frame into an NRGBA image. box is
// the globe-space framing, usually Params.ViewBox().
func RenderFrame(frame globe.Frame, box viewmatrix.ViewBox, opts Options) (*image.NRGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", opts.Width, opts.Height)
	}
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	lineColor := opts.Color
	if lineColor == nil {
		lineColor = color.White
	}

	w, h := opts.Width*ss, opts.Height*ss
	dc := gg.NewContext(w, h)
	defer dc.Close()

	if opts.Background != nil {
		dc.ClearWithColor(gg.FromColor(opts.Background))
	} else {
		dc.ClearWithColor(gg.Transparent)
	}

	vp := viewmatrix.Fit(box, w, h)
	dc.SetColor(lineColor)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for _, rp := range frame.Paths {
		width := opts.LineWidth * vp.Scale
		if rp.ID.Kind == globe.Equator {
			width *= EquatorScale
		}
		dc.SetLineWidth(width)

		for _, arc := range rp.Arcs {
			for i, p := range arc {
				x, y := vp.Apply(p)
				if i == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
		}
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("raster: stroke %s: %w", rp.ID, err)
		}
	}

	img := postprocess.ToNRGBA(dc.Image())
	if ss > 1 {
		img = postprocess.Downsample(img, opts.Width, opts.Height)
	}
	return img, nil
}
