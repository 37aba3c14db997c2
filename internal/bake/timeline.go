package bake

import (
	"fmt"
	"math"
)

// Defaults for the site animation.
const (
	DefaultFrames   = 48
	DefaultDuration = 10 // seconds per full turn
)

// Timeline spreads Frames snapshots of one full turn over a looping period of
// Duration seconds. Frame f is shown during [Delay(f), Delay(f+1)).
type Timeline struct {
	Frames   int
	Duration float64
}

// DefaultTimeline returns the 48 frame, 10 second loop.
func DefaultTimeline() Timeline {
	return Timeline{Frames: DefaultFrames, Duration: DefaultDuration}
}

func (t Timeline) Validate() error {
	if t.Frames < 1 {
		return fmt.Errorf("bake: frames must be at least 1, got %d", t.Frames)
	}
	if !(t.Duration > 0) || math.IsInf(t.Duration, 0) {
		return fmt.Errorf("bake: duration must be a positive number of seconds, got %g", t.Duration)
	}
	return nil
}

// Angle is the spin of frame f. Frame Frames would repeat frame 0 and is
// never produced.
func (t Timeline) Angle(f int) float64 {
	return float64(f) / float64(t.Frames) * math.Pi * 2
}

// Delay is the offset into the period at which frame f becomes visible.
func (t Timeline) Delay(f int) float64 {
	return float64(f) / float64(t.Frames) * t.Duration
}

// Window is how long each frame stays visible.
func (t Timeline) Window() float64 {
	return t.Duration / float64(t.Frames)
}

// VisiblePercent is the window as a percentage of the period, the unit of
// CSS keyframe offsets.
func (t Timeline) VisiblePercent() float64 {
	return 100 / float64(t.Frames)
}

// FrameAt returns the single frame visible at time at. Times outside the first
// period wrap around.
func (t Timeline) FrameAt(at float64) int {
	u := math.Mod(at, t.Duration)
	if u < 0 {
		u += t.Duration
	}

	f := int(u / t.Duration * float64(t.Frames))
	if f >= t.Frames {
		f = t.Frames - 1
	}
	// Settle against Delay so boundaries agree with the windows exactly
	for f > 0 && u < t.Delay(f) {
		f--
	}
	for f < t.Frames-1 && u >= t.Delay(f+1) {
		f++
	}
	return f
}
