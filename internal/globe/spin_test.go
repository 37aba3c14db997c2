package globe

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAngleAt(t *testing.T) {
	assert.Equal(t, 0.0, AngleAt(DefaultSpinSpeed, 0))
	assert.InDelta(t, 1.0, AngleAt(DefaultSpinSpeed, 10*time.Second), 1e-12)

	// One full turn takes 2π/0.1 seconds and wraps back to zero
	speed := DefaultSpinSpeed
	turn := time.Duration(math.Round(2 * math.Pi / speed * float64(time.Second)))
	a := AngleAt(speed, turn+time.Second)
	assert.InDelta(t, 0.1, a, 1e-6)
}

func TestSpinner(t *testing.T) {
	s := NewSpinner(DefaultSpinSpeed)
	for i := 0; i < 50; i++ {
		s.Advance(20 * time.Millisecond)
	}
	assert.Equal(t, time.Second, s.Elapsed())
	assert.InDelta(t, 0.1, s.Angle(), 1e-12)

	s.Advance(-time.Hour)
	assert.Equal(t, time.Second, s.Elapsed())
}

func TestSpinnerDependsOnlyOnElapsed(t *testing.T) {
	a := NewSpinner(0.3)
	b := NewSpinner(0.3)
	a.Advance(1500 * time.Millisecond)
	for i := 0; i < 3; i++ {
		b.Advance(500 * time.Millisecond)
	}
	assert.Equal(t, a.Angle(), b.Angle())
}
