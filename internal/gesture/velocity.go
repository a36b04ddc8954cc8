package gesture

import "time"

// velocityFilter smooths instantaneous pointer velocity with an
// exponential moving average. The first warmUp samples pass through so
// a fresh gesture reacts immediately.
type velocityFilter struct {
	smoothing   float64
	warmUp      int
	count       int
	last        float64
	lastOffset  float64
	lastTime    time.Time
	initialized bool
}

func newVelocityFilter(smoothing float64, warmUp int) *velocityFilter {
	if smoothing < 0 {
		smoothing = 0
	}
	if smoothing > 1 {
		smoothing = 1
	}
	return &velocityFilter{smoothing: smoothing, warmUp: warmUp}
}

// Add records an offset sample and returns the smoothed velocity.
func (f *velocityFilter) Add(offset float64, at time.Time) float64 {
	if !f.initialized {
		f.initialized = true
		f.lastOffset = offset
		f.lastTime = at
		return 0
	}
	dt := at.Sub(f.lastTime).Seconds()
	if dt <= 0 {
		// Same timestamp: the displacement counts toward the next sample.
		return f.last
	}
	raw := (offset - f.lastOffset) / dt
	f.lastOffset = offset
	f.lastTime = at

	if f.count < f.warmUp {
		f.count++
		f.last = raw
		return raw
	}
	f.last = raw*(1-f.smoothing) + f.last*f.smoothing
	return f.last
}

// At returns the velocity as seen at time at. A pointer that has not
// moved for longer than idle is treated as stopped.
func (f *velocityFilter) At(at time.Time, idle time.Duration) float64 {
	if !f.initialized || at.Sub(f.lastTime) > idle {
		return 0
	}
	return f.last
}

func (f *velocityFilter) Reset() {
	*f = velocityFilter{smoothing: f.smoothing, warmUp: f.warmUp}
}
