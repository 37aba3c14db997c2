package globe

import (
	"strconv"

	"wireframe-globe/internal/viewmatrix"
)

// Arc is a maximal run of consecutive front-facing points of one ring.
type Arc []viewmatrix.Point

// VisibleArcs splits a projected ring into its front-facing runs. A point is
// front-facing when its depth is strictly greater than threshold. Arcs never
// bridge a hidden stretch, and a fully hidden ring yields nil.
func VisibleArcs(points []viewmatrix.Point, threshold float64) []Arc {
	var arcs []Arc
	inPath := false
	for _, p := range points {
		if p.Depth <= threshold {
			inPath = false
			continue
		}
		if !inPath {
			arcs = append(arcs, Arc{})
			inPath = true
		}
		last := len(arcs) - 1
		arcs[last] = append(arcs[last], p)
	}
	return arcs
}

// PathData renders arcs as SVG path commands, "M x y " to start each arc and
// "L x y " for every following point, coordinates to two decimals.
func PathData(arcs []Arc) string {
	var buf []byte
	for _, arc := range arcs {
		for i, p := range arc {
			if i == 0 {
				buf = append(buf, "M "...)
			} else {
				buf = append(buf, "L "...)
			}
			buf = appendCoord(buf, p.X)
			buf = append(buf, ' ')
			buf = appendCoord(buf, p.Y)
			buf = append(buf, ' ')
		}
	}
	return string(buf)
}

// appendCoord writes v with two decimals. Negative zero prints as 0.00.
func appendCoord(buf []byte, v float64) []byte {
	if v == 0 {
		v = 0
	}
	return strconv.AppendFloat(buf, v, 'f', 2, 64)
}
