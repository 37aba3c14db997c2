package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownsampleSize(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	out := Downsample(img, 32, 24)
	assert.Equal(t, image.Rect(0, 0, 32, 24), out.Bounds())
}

func TestDownsampleNoUpscale(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	assert.Same(t, img, Downsample(img, 32, 32))
}

func TestDownsampleKeepsColorAtEdges(t *testing.T) {
	// White stripe on a transparent background
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 28; x < 36; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	out := Downsample(img, 32, 32)

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			c := out.NRGBAAt(x, y)
			if c.A > 8 {
				// Partially covered pixels stay white rather than going grey
				require.GreaterOrEqual(t, c.R, uint8(240), "pixel %d,%d = %v", x, y, c)
			}
		}
	}
	assert.GreaterOrEqual(t, out.NRGBAAt(16, 16).A, uint8(250))
	assert.Zero(t, out.NRGBAAt(0, 0).A)
}

func TestToNRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 14))
	src.SetRGBA(10, 10, color.RGBA{128, 0, 0, 128}) // premultiplied half red

	out := ToNRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 4, 4), out.Bounds())
	c := out.NRGBAAt(0, 0)
	assert.Equal(t, uint8(128), c.A)
	assert.InDelta(t, 255, int(c.R), 1)

	n := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	assert.Same(t, n, ToNRGBA(n))
}
