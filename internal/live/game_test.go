package live

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe-globe/internal/globe"
)

func TestUpdateAdvancesSpin(t *testing.T) {
	opts := DefaultOptions()
	opts.TPS = 50
	g := New(opts)
	assert.Zero(t, g.Angle())

	for i := 0; i < 50; i++ {
		require.NoError(t, g.Update())
	}
	assert.InDelta(t, globe.DefaultSpinSpeed, g.Angle(), 1e-12)
}

func TestFrameFollowsAngle(t *testing.T) {
	g := New(DefaultOptions())
	g.Step(3 * time.Second)

	want := globe.NewMesh(globe.DefaultParams()).Frame(g.Angle())
	assert.Equal(t, want.PathStrings(), g.Frame().PathStrings())
}

func TestLayout(t *testing.T) {
	g := New(DefaultOptions())
	w, h := g.Layout(640, 480)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	w, h = g.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestNewFillsDefaults(t *testing.T) {
	g := New(Options{Params: globe.DefaultParams(), Speed: 1})
	assert.Equal(t, DefaultTPS, g.opts.TPS)
	assert.NotNil(t, g.opts.Color)
	assert.Equal(t, 0.8, g.opts.LineWidth)
}

func TestRunHeadlessTicks(t *testing.T) {
	g := New(DefaultOptions())
	snap := filepath.Join(t.TempDir(), "globe.png")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := RunHeadless(ctx, g, HeadlessConfig{Hz: 200, Ticks: 10, Snapshot: snap, Size: 32})
	require.NoError(t, err)
	assert.InDelta(t, 10*globe.DefaultSpinSpeed/200, g.Angle(), 1e-12)

	f, err := os.Open(snap)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
}

func TestRunHeadlessCancel(t *testing.T) {
	g := New(DefaultOptions())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, g, HeadlessConfig{Hz: 100})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
