package viewmatrix

import (
	"wireframe-globe/internal/mathutil"
)

// Point is a projected vertex: screen X, screen Y (positive is down) and the
// post-rotation depth retained for culling. Positive depth faces the viewer.
type Point struct {
	X, Y  float64
	Depth float64
}

// ViewMatrix builds the combined rotation: spin about the vertical axis by
// rotationY, then tilt about the horizontal axis.
func ViewMatrix(rotationY, tilt float64) mathutil.Mat3 {
	return mathutil.Mat3Mul(mathutil.RotX(tilt), mathutil.RotY(rotationY))
}

// ProjectVertices spins, tilts and orthographically projects every vertex.
// The result has the same length and order as verts.
func ProjectVertices(verts []mathutil.Vec3, rotationY, tilt float64) []Point {
	m := ViewMatrix(rotationY, tilt)

	out := make([]Point, len(verts))
	for i, v := range verts {
		t := m.MulVec3(v)
		out[i] = Point{X: t[0], Y: -t[1], Depth: t[2]}
	}
	return out
}
