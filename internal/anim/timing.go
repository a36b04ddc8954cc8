package anim

import "time"

// DefaultTransitionDuration is the duration of imperative open/close
// transitions.
const DefaultTransitionDuration = 200 * time.Millisecond

// TimingConfig describes a fixed-duration eased animation.
type TimingConfig struct {
	Duration time.Duration
	Easing   Easing
}

// DefaultTimingConfig returns a 200ms linear timing.
func DefaultTimingConfig() TimingConfig {
	return TimingConfig{Duration: DefaultTransitionDuration, Easing: Linear}
}

// Timing interpolates from the position it was started at toward a
// destination over a fixed duration.
type Timing struct {
	cfg TimingConfig

	running bool
	from    float64
	elapsed time.Duration
	last    time.Time
}

// NewTiming returns a stopped timing animation.
func NewTiming(cfg TimingConfig) *Timing {
	if cfg.Easing == nil {
		cfg.Easing = Linear
	}
	if cfg.Duration < 0 {
		cfg.Duration = 0
	}
	return &Timing{cfg: cfg}
}

// Running reports whether the timing is mid-flight.
func (t *Timing) Running() bool { return t.running }

// Stop halts the animation.
func (t *Timing) Stop() { t.running = false }

// Run advances the animation to now and returns the new position and
// whether the destination was reached. A stopped timing snapshots
// position as its origin.
func (t *Timing) Run(now time.Time, position, dest float64) (float64, bool) {
	if !t.running {
		t.running = true
		t.from = position
		t.elapsed = 0
		t.last = now
	}
	if d := now.Sub(t.last); d > 0 {
		t.elapsed += d
	}
	t.last = now

	if t.elapsed >= t.cfg.Duration {
		t.running = false
		return dest, true
	}
	progress := t.cfg.Easing(float64(t.elapsed) / float64(t.cfg.Duration))
	return t.from + (dest-t.from)*progress, false
}
