package bake

import (
	"wireframe-globe/internal/globe"
)

// Asset is a baked animation: one frame per timeline step, in order.
type Asset struct {
	Params   globe.Params
	Timeline Timeline
	Frames   []globe.Frame
}

// Bake computes every frame of the timeline for the globe described by p.
func Bake(p globe.Params, tl Timeline) (*Asset, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := tl.Validate(); err != nil {
		return nil, err
	}

	mesh := globe.NewMesh(p)
	frames := make([]globe.Frame, tl.Frames)
	for f := range frames {
		frames[f] = mesh.Frame(tl.Angle(f))
	}
	return &Asset{Params: p, Timeline: tl, Frames: frames}, nil
}

// PathCount is the number of path primitives across all frames.
func (a *Asset) PathCount() int {
	n := 0
	for _, f := range a.Frames {
		n += len(f.Paths)
	}
	return n
}
