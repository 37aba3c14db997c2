package globe

import (
	"fmt"
	"math"

	"wireframe-globe/internal/mathutil"
)

// RingKind tells latitude rings, the equator and meridians apart.
type RingKind int

const (
	Latitude RingKind = iota
	Equator
	Longitude
)

// RingID identifies one ring of the wireframe.
type RingID struct {
	Kind  RingKind
	Index int  // latitude index 1..LatCount-1 or meridian index 0..LongCount-1
	South bool // latitude rings only
}

func (id RingID) String() string {
	switch id.Kind {
	case Latitude:
		if id.South {
			return fmt.Sprintf("lat-%d-s", id.Index)
		}
		return fmt.Sprintf("lat-%d-n", id.Index)
	case Equator:
		return "equator"
	case Longitude:
		return fmt.Sprintf("long-%d", id.Index)
	}
	return fmt.Sprintf("ring(%d,%d)", id.Kind, id.Index)
}

// Ring is a closed path on the sphere. The last sample repeats the first.
type Ring struct {
	ID     RingID
	Points []mathutil.Vec3
}

// LatitudeRing samples the horizontal circle at elevation phi. A negative phi
// gives the mirrored ring in the southern hemisphere.
func LatitudeRing(phi, radius, yScale float64, segments int) []mathutil.Vec3 {
	y := radius * math.Sin(phi) * yScale
	r := radius * math.Cos(phi)

	points := make([]mathutil.Vec3, 0, segments+1)
	for j := 0; j <= segments; j++ {
		theta := float64(j) / float64(segments) * math.Pi * 2
		points = append(points, mathutil.Vec3{r * math.Cos(theta), y, r * math.Sin(theta)})
	}
	return points
}

// MeridianRing samples the full great circle through the poles at azimuth
// theta. Theta in [0, π) covers every meridian once, since each circle also
// draws its antipodal half.
func MeridianRing(theta, radius, yScale float64, segments int) []mathutil.Vec3 {
	points := make([]mathutil.Vec3, 0, segments+1)
	for j := 0; j <= segments; j++ {
		phi := float64(j) / float64(segments) * math.Pi * 2
		points = append(points, mathutil.Vec3{
			radius * math.Sin(phi) * math.Sin(theta),
			radius * math.Cos(phi) * yScale,
			radius * math.Sin(phi) * math.Cos(theta),
		})
	}
	return points
}

// LatitudeAngle is the elevation of latitude ring i.
func (p Params) LatitudeAngle(i int) float64 {
	return float64(i) / float64(p.LatCount) * (math.Pi / 2)
}

// MeridianAngle is the azimuth of meridian i.
func (p Params) MeridianAngle(i int) float64 {
	return float64(i) / float64(p.LongCount) * math.Pi
}

// Rings samples the whole wireframe in drawing order: per latitude index the
// northern then the southern ring, then the equator, then the meridians by
// increasing azimuth.
func Rings(p Params) []Ring {
	rings := make([]Ring, 0, 2*(p.LatCount-1)+1+p.LongCount)

	for i := 1; i < p.LatCount; i++ {
		phi := p.LatitudeAngle(i)
		rings = append(rings,
			Ring{ID: RingID{Kind: Latitude, Index: i}, Points: LatitudeRing(phi, p.Radius, p.YScale, p.Segments)},
			Ring{ID: RingID{Kind: Latitude, Index: i, South: true}, Points: LatitudeRing(-phi, p.Radius, p.YScale, p.Segments)},
		)
	}

	rings = append(rings, Ring{ID: RingID{Kind: Equator}, Points: LatitudeRing(0, p.Radius, p.YScale, p.Segments)})

	for i := 0; i < p.LongCount; i++ {
		rings = append(rings, Ring{
			ID:     RingID{Kind: Longitude, Index: i},
			Points: MeridianRing(p.MeridianAngle(i), p.Radius, p.YScale, p.Segments),
		})
	}
	return rings
}
