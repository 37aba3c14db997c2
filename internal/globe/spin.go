package globe

import (
	"time"

	"wireframe-globe/internal/mathutil"
)

// DefaultSpinSpeed is the live globe's spin in radians per second.
const DefaultSpinSpeed = 0.1

// AngleAt is the spin angle after elapsed time at speed radians per second,
// folded into [0, 2π).
func AngleAt(speed float64, elapsed time.Duration) float64 {
	return mathutil.WrapAngle(speed * elapsed.Seconds())
}

// Spinner accumulates elapsed time from a display refresh callback.
// The angle depends on nothing but the total elapsed time.
type Spinner struct {
	Speed   float64
	elapsed time.Duration
}

// NewSpinner returns a spinner at angle zero.
func NewSpinner(speed float64) *Spinner {
	return &Spinner{Speed: speed}
}

// Advance adds one refresh interval. Negative intervals are ignored.
func (s *Spinner) Advance(dt time.Duration) {
	if dt > 0 {
		s.elapsed += dt
	}
}

func (s *Spinner) Elapsed() time.Duration { return s.elapsed }

// Angle is the current spin angle.
func (s *Spinner) Angle() float64 {
	return AngleAt(s.Speed, s.elapsed)
}
