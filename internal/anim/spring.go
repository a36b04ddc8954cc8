// Package anim provides frame-driven spring and timing animations.
//
// Animations are advanced by the caller once per frame with the frame
// timestamp. Nothing here owns a goroutine or a timer.
package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// maxSpringStep caps a single integration step. A frame clock that stalls
// (suspended terminal, slow render) must not fling the spring.
const maxSpringStep = 64 * time.Millisecond

// SpringConfig describes a damped harmonic oscillator.
type SpringConfig struct {
	Mass              float64
	Stiffness         float64
	Damping           float64
	OvershootClamping bool

	// The spring is considered at rest when both its speed and its
	// distance to the destination fall under these thresholds.
	RestSpeedThreshold        float64
	RestDisplacementThreshold float64
}

// BaseSpringConfig returns the physical defaults every derived
// configuration starts from.
func BaseSpringConfig() SpringConfig {
	return SpringConfig{
		Mass:                      1,
		Stiffness:                 100,
		Damping:                   10,
		RestSpeedThreshold:        0.001,
		RestDisplacementThreshold: 0.001,
	}
}

// DefaultSpringConfig is the settle spring used by swipeable rows: no
// bounce, speed 5.
func DefaultSpringConfig() SpringConfig {
	return SpringFromBouncinessAndSpeed(BaseSpringConfig(), 0, 5)
}

func (c SpringConfig) normalize() SpringConfig {
	base := BaseSpringConfig()
	if c.Mass <= 0 {
		c.Mass = base.Mass
	}
	if c.Stiffness < 0 {
		c.Stiffness = 0
	}
	if c.Damping < 0 {
		c.Damping = 0
	}
	if c.RestSpeedThreshold <= 0 {
		c.RestSpeedThreshold = base.RestSpeedThreshold
	}
	if c.RestDisplacementThreshold <= 0 {
		c.RestDisplacementThreshold = base.RestDisplacementThreshold
	}
	return c
}

func (c SpringConfig) angularFrequency() float64 {
	return math.Sqrt(c.Stiffness / c.Mass)
}

func (c SpringConfig) dampingRatio() float64 {
	if c.Stiffness == 0 {
		return 1
	}
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// Spring animates a value toward a destination. The spring keeps its own
// position and velocity between frames; callers may post-process the
// returned value without feeding it back.
type Spring struct {
	cfg SpringConfig

	running  bool
	position float64
	velocity float64
	start    float64
	last     time.Time
}

// NewSpring returns a stopped spring.
func NewSpring(cfg SpringConfig) *Spring {
	return &Spring{cfg: cfg.normalize()}
}

// Config returns the normalized configuration.
func (s *Spring) Config() SpringConfig { return s.cfg }

// Running reports whether the spring is mid-flight.
func (s *Spring) Running() bool { return s.running }

// Stop halts the spring. The next Run starts from the values it is given.
func (s *Spring) Stop() { s.running = false }

// Velocity returns the current internal velocity.
func (s *Spring) Velocity() float64 { return s.velocity }

// Run advances the spring to now and returns the new position and whether
// it came to rest at dest. When the spring is stopped it is started from
// position and velocity at time now, so the first frame never moves.
func (s *Spring) Run(now time.Time, position, velocity, dest float64) (float64, bool) {
	if !s.running {
		s.running = true
		s.position = position
		s.velocity = velocity
		s.start = position
		s.last = now
	}

	dt := now.Sub(s.last)
	s.last = now
	if dt > maxSpringStep {
		dt = maxSpringStep
	}
	if dt > 0 {
		h := harmonica.NewSpring(dt.Seconds(), s.cfg.angularFrequency(), s.cfg.dampingRatio())
		s.position, s.velocity = h.Update(s.position, s.velocity, dest)
	}

	if s.overshooting(dest) || s.resting(dest) {
		if s.cfg.Stiffness != 0 {
			s.position = dest
			s.velocity = 0
		}
		s.running = false
		return s.position, true
	}
	return s.position, false
}

func (s *Spring) overshooting(dest float64) bool {
	if !s.cfg.OvershootClamping || s.cfg.Stiffness == 0 {
		return false
	}
	if s.start < dest {
		return s.position > dest
	}
	return s.position < dest
}

func (s *Spring) resting(dest float64) bool {
	if s.cfg.Stiffness == 0 {
		return true
	}
	return math.Abs(s.velocity) <= s.cfg.RestSpeedThreshold &&
		math.Abs(dest-s.position) <= s.cfg.RestDisplacementThreshold
}
