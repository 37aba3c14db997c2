package globe

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingsCountAndOrder(t *testing.T) {
	p := DefaultParams()
	rings := Rings(p)

	// 9 latitudes per hemisphere, the equator, 12 meridians
	require.Len(t, rings, 2*(p.LatCount-1)+1+p.LongCount)

	var ids []string
	for _, r := range rings {
		assert.Len(t, r.Points, p.Segments+1, r.ID.String())
		ids = append(ids, r.ID.String())
	}
	assert.Equal(t, []string{"lat-1-n", "lat-1-s", "lat-2-n", "lat-2-s"}, ids[:4])
	assert.Equal(t, "equator", ids[2*(p.LatCount-1)])
	assert.Equal(t, "long-0", ids[2*(p.LatCount-1)+1])
	assert.Equal(t, "long-11", ids[len(ids)-1])
}

func TestLatitudeRingIsPlanarCircle(t *testing.T) {
	const r, s = 50.0, 1.2
	for _, phi := range []float64{0.05, 0.4, 1.0, 1.5} {
		for _, sign := range []float64{1, -1} {
			pts := LatitudeRing(sign*phi, r, s, 64)
			wantY := sign * r * math.Sin(phi) * s
			wantRadius := r * math.Cos(phi)
			for _, pt := range pts {
				assert.InDelta(t, wantY, pt[1], 1e-12)
				assert.InDelta(t, wantRadius, math.Hypot(pt[0], pt[2]), 1e-9)
			}
		}
	}
}

func TestLatitudeRingClosed(t *testing.T) {
	pts := LatitudeRing(0.3, 50, 1.2, 64)
	require.Len(t, pts, 65)
	assert.InDeltaSlice(t, pts[0][:], pts[64][:], 1e-9)
}

func TestEquatorIsZeroLatitude(t *testing.T) {
	p := DefaultParams()
	rings := Rings(p)
	eq := rings[2*(p.LatCount-1)]
	require.Equal(t, Equator, eq.ID.Kind)

	if diff := cmp.Diff(LatitudeRing(0, p.Radius, p.YScale, p.Segments), eq.Points); diff != "" {
		t.Errorf("equator mismatch (-want +got):\n%s", diff)
	}
	for _, pt := range eq.Points {
		assert.Equal(t, 0.0, pt[1])
		assert.InDelta(t, p.Radius, math.Hypot(pt[0], pt[2]), 1e-9)
	}
}

func TestMeridianOnStretchedSphere(t *testing.T) {
	p := DefaultParams()
	for i := 0; i < p.LongCount; i++ {
		theta := p.MeridianAngle(i)
		assert.Less(t, theta, math.Pi)
		for _, pt := range MeridianRing(theta, p.Radius, p.YScale, p.Segments) {
			y := pt[1] / p.YScale
			assert.InDelta(t, p.Radius, math.Sqrt(pt[0]*pt[0]+y*y+pt[2]*pt[2]), 1e-9)
			// Every point lies in the vertical plane at azimuth theta
			assert.InDelta(t, 0, pt[0]*math.Cos(theta)-pt[2]*math.Sin(theta), 1e-9)
		}
	}
}

func TestRingsDeterministic(t *testing.T) {
	p := DefaultParams()
	if diff := cmp.Diff(Rings(p), Rings(p)); diff != "" {
		t.Errorf("Rings not deterministic:\n%s", diff)
	}
}

func TestLatitudeAngles(t *testing.T) {
	p := DefaultParams()
	assert.InDelta(t, math.Pi/20, p.LatitudeAngle(1), 1e-15)
	assert.Less(t, p.LatitudeAngle(p.LatCount-1), math.Pi/2)
	assert.Equal(t, 0.0, p.MeridianAngle(0))
}

func TestParamsValidate(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())

	tests := []struct {
		name string
		mod  func(*Params)
	}{
		{"radius", func(p *Params) { p.Radius = 0 }},
		{"y scale", func(p *Params) { p.YScale = -1 }},
		{"lat count", func(p *Params) { p.LatCount = 0 }},
		{"long count", func(p *Params) { p.LongCount = 0 }},
		{"segments", func(p *Params) { p.Segments = 2 }},
		{"tolerance", func(p *Params) { p.CullTolerance = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mod(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestParamsDerived(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, -5.0, p.DepthThreshold())

	vb := p.ViewBox()
	assert.Equal(t, -60.0, vb.MinX)
	assert.Equal(t, -70.0, vb.MinY)
	assert.Equal(t, 120.0, vb.Width)
	assert.Equal(t, 140.0, vb.Height)

	got := Params{Tilt: 0.25}.WithDefaults()
	want := DefaultParams()
	want.Tilt = 0.25
	want.CullTolerance = 0
	assert.Equal(t, want, got)
}
