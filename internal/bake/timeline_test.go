package bake

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimelineSiteScenario(t *testing.T) {
	tl := Timeline{Frames: 48, Duration: 10}
	assert.Equal(t, 5.0, tl.Delay(24))
	assert.InDelta(t, 10.0/48, tl.Window(), 1e-15)
	assert.InDelta(t, 0.2083, tl.Window(), 1e-4)
	assert.Equal(t, math.Pi, tl.Angle(24))
	assert.Equal(t, 0.0, tl.Angle(0))
}

func TestTimelinePartitionsPeriod(t *testing.T) {
	for _, tl := range []Timeline{{48, 10}, {7, 3}, {1, 2}, {13, 0.5}} {
		// Windows tile the period with no gap or overlap
		assert.Equal(t, 0.0, tl.Delay(0))
		assert.Equal(t, tl.Duration, tl.Delay(tl.Frames))
		for f := 0; f < tl.Frames; f++ {
			assert.Less(t, tl.Delay(f), tl.Delay(f+1))
		}

		const steps = 2000
		counts := make([]int, tl.Frames)
		for i := 0; i < steps; i++ {
			at := float64(i) / steps * tl.Duration
			f := tl.FrameAt(at)
			if assert.GreaterOrEqual(t, f, 0) && assert.Less(t, f, tl.Frames) {
				counts[f]++
				// Exactly this frame's window contains the instant
				for g := 0; g < tl.Frames; g++ {
					inside := tl.Delay(g) <= at && at < tl.Delay(g+1)
					assert.Equal(t, g == f, inside, "t=%v frame %d", at, g)
				}
			}
		}
		for f, n := range counts {
			assert.Positive(t, n, "frame %d never visible in %+v", f, tl)
		}
	}
}

func TestTimelineFrameAtBoundaries(t *testing.T) {
	tl := DefaultTimeline()
	assert.Equal(t, 0, tl.FrameAt(0))
	assert.Equal(t, 24, tl.FrameAt(5))
	assert.Equal(t, 23, tl.FrameAt(math.Nextafter(5, 0)))
	assert.Equal(t, 47, tl.FrameAt(math.Nextafter(10, 0)))

	// Wraps around the loop in both directions
	assert.Equal(t, 0, tl.FrameAt(10))
	assert.Equal(t, 24, tl.FrameAt(25))
	assert.Equal(t, 47, tl.FrameAt(-0.01))
}

func TestTimelineValidate(t *testing.T) {
	assert.NoError(t, DefaultTimeline().Validate())
	assert.Error(t, Timeline{Frames: 0, Duration: 10}.Validate())
	assert.Error(t, Timeline{Frames: 4, Duration: 0}.Validate())
	assert.Error(t, Timeline{Frames: 4, Duration: math.NaN()}.Validate())
	assert.Error(t, Timeline{Frames: 4, Duration: math.Inf(1)}.Validate())
}

func TestVisiblePercent(t *testing.T) {
	assert.InDelta(t, 2.0833, DefaultTimeline().VisiblePercent(), 1e-4)
}
