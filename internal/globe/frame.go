package globe

import (
	"wireframe-globe/internal/viewmatrix"
)

// RingPath is the visible part of one ring in one frame.
type RingPath struct {
	ID   RingID
	Arcs []Arc
	D    string // SVG path data
}

// Frame is the globe drawn at one spin angle. Rings with nothing visible are
// left out entirely.
type Frame struct {
	RotationY float64
	Paths     []RingPath
}

// PathStrings returns the path data of every visible ring in drawing order.
func (f Frame) PathStrings() []string {
	out := make([]string, len(f.Paths))
	for i, rp := range f.Paths {
		out[i] = rp.D
	}
	return out
}

// Mesh holds the sampled rings of one globe so frames only pay for rotation
// and projection.
type Mesh struct {
	params Params
	rings  []Ring
}

// NewMesh samples every ring of p once.
func NewMesh(p Params) *Mesh {
	return &Mesh{params: p, rings: Rings(p)}
}

func (m *Mesh) Params() Params { return m.params }

// Rings returns the sampled rings in drawing order. Callers must not modify them.
func (m *Mesh) Rings() []Ring { return m.rings }

// Frame projects and culls every ring at spin angle rotationY.
func (m *Mesh) Frame(rotationY float64) Frame {
	threshold := m.params.DepthThreshold()
	f := Frame{RotationY: rotationY}
	for _, ring := range m.rings {
		projected := viewmatrix.ProjectVertices(ring.Points, rotationY, m.params.Tilt)
		arcs := VisibleArcs(projected, threshold)
		if len(arcs) == 0 {
			continue
		}
		f.Paths = append(f.Paths, RingPath{ID: ring.ID, Arcs: arcs, D: PathData(arcs)})
	}
	return f
}
