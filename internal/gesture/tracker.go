package gesture

import (
	"math"
	"time"
)

// TrackerConfig tunes pan recognition.
type TrackerConfig struct {
	Direction Direction
	// ActiveOffset is how far the pointer must travel along the axis
	// before the pan activates.
	ActiveOffset float64
	// FailOffset fails a pending pan once the pointer travels this far
	// across the axis. Zero disables it.
	FailOffset float64
	// Smoothing is the weight of the previous velocity in [0,1].
	Smoothing float64
	// IdleTimeout zeroes the release velocity when the pointer rested
	// for longer before being released.
	IdleTimeout time.Duration
}

// DefaultTrackerConfig matches a horizontal pan activating past 20 units.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		Direction:    Horizontal,
		ActiveOffset: 20,
		Smoothing:    0.5,
		IdleTimeout:  100 * time.Millisecond,
	}
}

// Tracker recognizes a single pan gesture from pointer press, motion and
// release. It is not safe for concurrent use.
type Tracker struct {
	cfg    TrackerConfig
	phase  Phase
	startX float64
	startY float64
	offset float64
	vel    *velocityFilter
}

// NewTracker returns an idle tracker.
func NewTracker(cfg TrackerConfig) *Tracker {
	return &Tracker{
		cfg: cfg,
		vel: newVelocityFilter(cfg.Smoothing, 1),
	}
}

// Phase returns the recognizer phase.
func (t *Tracker) Phase() Phase { return t.phase }

// Tracking reports whether a gesture is in progress.
func (t *Tracker) Tracking() bool {
	return t.phase == PhaseBegan || t.phase == PhaseActive
}

// Press starts a new gesture at (x, y).
func (t *Tracker) Press(x, y float64, at time.Time) Event {
	t.vel.Reset()
	t.vel.Add(0, at)
	t.startX, t.startY = x, y
	t.offset = 0
	t.phase = PhaseBegan
	return Event{Phase: PhaseBegan}
}

// Move feeds pointer motion. The boolean is false when the motion does
// not produce a sample, either because no gesture is tracked or because
// the pan has not activated yet.
func (t *Tracker) Move(x, y float64, at time.Time) (Event, bool) {
	if !t.Tracking() {
		return Event{}, false
	}
	along := t.cfg.Direction.Along(x-t.startX, y-t.startY)
	across := t.cfg.Direction.Across(x-t.startX, y-t.startY)
	t.offset = along
	v := t.vel.Add(along, at)

	if t.phase == PhaseBegan {
		if t.cfg.FailOffset > 0 && math.Abs(across) > t.cfg.FailOffset {
			t.phase = PhaseFailed
			return Event{Phase: PhaseFailed, Offset: along}, true
		}
		if math.Abs(along) <= t.cfg.ActiveOffset {
			return Event{}, false
		}
		t.phase = PhaseActive
	}
	return Event{Phase: PhaseActive, Offset: along, Velocity: v}, true
}

// Release ends the gesture at (x, y). A pan released before it activated
// fails.
func (t *Tracker) Release(x, y float64, at time.Time) (Event, bool) {
	switch t.phase {
	case PhaseBegan:
		t.phase = PhaseFailed
		along := t.cfg.Direction.Along(x-t.startX, y-t.startY)
		return Event{Phase: PhaseFailed, Offset: along}, true
	case PhaseActive:
		along := t.cfg.Direction.Along(x-t.startX, y-t.startY)
		if along != t.offset {
			t.vel.Add(along, at)
			t.offset = along
		}
		t.phase = PhaseEnded
		return Event{
			Phase:    PhaseEnded,
			Offset:   along,
			Velocity: t.vel.At(at, t.cfg.IdleTimeout),
		}, true
	default:
		return Event{}, false
	}
}

// Cancel aborts the gesture, for example when the pointer leaves the row.
func (t *Tracker) Cancel() (Event, bool) {
	if !t.Tracking() {
		return Event{}, false
	}
	t.phase = PhaseCancelled
	return Event{Phase: PhaseCancelled, Offset: t.offset}, true
}
