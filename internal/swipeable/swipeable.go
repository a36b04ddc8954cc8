// Package swipeable implements the gesture-to-translation state machine of
// a swipeable list row.
//
// A row sits at translation 0 and may reveal a leading panel (positive
// translation) and a trailing panel (negative translation). Pan samples,
// layout measurements and imperative open/close requests are queued by
// the host and applied by Frame, which the host calls once per display
// frame with the frame time.
package swipeable

import (
	"log/slog"
	"time"

	"github.com/llehouerou/swiperow/internal/anim"
	"github.com/llehouerou/swiperow/internal/gesture"
)

// Swipeable is one row. It is not safe for concurrent use; the host
// drives it from its update loop.
type Swipeable struct {
	opts     Options
	logger   *slog.Logger
	onChange func(Change)

	layout layout

	// Imperative requests, consumed by the next frame.
	transition  Transition
	resetSpring bool

	sampler *gesture.Sampler
	pending []gesture.Event

	phase            gesture.Phase
	translation      float64
	translationState TranslationState
	dragOffset       float64
	prevDragOffset   float64
	velocity         float64
	activeLimit      limit
	activeSpring     target
	settled          bool

	spring *anim.Spring
	timing *anim.Timing
}

// New returns a closed row.
func New(opts Options, options ...Option) *Swipeable {
	opts = opts.normalize()
	s := &Swipeable{
		opts:             opts,
		logger:           discardLogger(),
		sampler:          gesture.NewSampler(opts.LatchBegan),
		translationState: StateClosed,
		settled:          true,
		spring:           anim.NewSpring(opts.Spring),
		timing:           anim.NewTiming(opts.Transition),
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// Options returns the normalized options.
func (s *Swipeable) Options() Options { return s.opts }

// HasLeading reports whether the row has a leading panel.
func (s *Swipeable) HasLeading() bool { return s.opts.Leading != nil }

// HasTrailing reports whether the row has a trailing panel.
func (s *Swipeable) HasTrailing() bool { return s.opts.Trailing != nil }

// Translation returns the current row offset.
func (s *Swipeable) Translation() float64 { return s.translation }

// State returns the discrete translation state.
func (s *Swipeable) State() TranslationState { return s.translationState }

// Phase returns the corrected gesture phase last applied.
func (s *Swipeable) Phase() gesture.Phase { return s.phase }

// HandleGesture queues a raw pan sample for the next frame.
func (s *Swipeable) HandleGesture(ev gesture.Event) {
	s.pending = append(s.pending, ev)
}

// Animating reports whether further frames may change the translation.
// Hosts use it to stop their frame clock while the row is idle.
func (s *Swipeable) Animating() bool {
	return len(s.pending) > 0 ||
		s.resetSpring ||
		s.transition != TransitionNone ||
		(s.phase.Terminal() && !s.settled)
}

// Frame applies everything queued since the previous frame, advances the
// active animation to now and returns the new translation.
func (s *Swipeable) Frame(now time.Time) float64 {
	if s.resetSpring {
		s.resetSpring = false
		s.reset()
	}

	pending := s.pending
	s.pending = nil
	for _, raw := range pending {
		for _, ev := range s.sampler.Correct(raw) {
			s.apply(ev)
		}
	}

	if s.transition != TransitionNone {
		s.runTransition(now)
		return s.translation
	}
	if s.phase.Terminal() && !s.settled {
		s.settle(now)
	}
	return s.translation
}

func (s *Swipeable) stopClock() {
	s.spring.Stop()
	s.timing.Stop()
}

func (s *Swipeable) reset() {
	s.stopClock()
	s.activeSpring = targetNone
	s.activeLimit = limitNone
	s.dragOffset = 0
	s.velocity = 0
	s.prevDragOffset = 0
	s.settled = true
}

func (s *Swipeable) apply(ev gesture.Event) {
	switch ev.Phase {
	case gesture.PhaseBegan:
		if s.transition != TransitionNone {
			s.logger.Debug("transition abandoned", "transition", s.transition, "translation", s.translation)
			s.transition = TransitionNone
		}
		s.phase = gesture.PhaseBegan
		s.reset()

	case gesture.PhaseActive:
		s.phase = gesture.PhaseActive
		s.dragOffset = ev.Offset
		s.velocity = ev.Velocity
		if s.transition != TransitionNone {
			s.prevDragOffset = s.dragOffset
			return
		}
		s.drag()

	case gesture.PhaseEnded, gesture.PhaseCancelled, gesture.PhaseFailed:
		prev := s.phase
		s.phase = ev.Phase
		if prev.Terminal() {
			return
		}
		s.prevDragOffset = 0
		s.velocity = ev.Velocity
		switch {
		case s.transition != TransitionNone:
			s.settled = true
		case ev.Phase == gesture.PhaseCancelled && s.atRest():
			s.settled = true
		default:
			s.settled = false
		}

	default:
		s.phase = ev.Phase
	}
}

func (s *Swipeable) atRest() bool {
	return s.translation == 0 &&
		(s.activeSpring == targetNone || s.activeSpring == targetMiddle)
}

// drag applies the delta of the latest active sample.
func (s *Swipeable) drag() {
	snaps := s.SnapPoints()
	next := s.translation + s.dragOffset - s.prevDragOffset

	if s.activeLimit == limitNone {
		if s.opts.LimitsEnabled && s.dragOffset != 0 {
			switch {
			case s.translation == 0:
				if s.dragOffset > 0 {
					s.activeLimit = limitLeading
				} else {
					s.activeLimit = limitTrailing
				}
			case s.translation > limitThreshold:
				s.activeLimit = limitLeading
			case s.translation < -limitThreshold:
				s.activeLimit = limitTrailing
			}
		}
		if !s.HasLeading() {
			s.activeLimit = limitTrailing
		}
		if !s.HasTrailing() {
			s.activeLimit = limitLeading
		}
	}

	switch s.activeLimit {
	case limitLeading:
		next = s.clampToTrailingSnap(max(next, 0), snaps)
	case limitTrailing:
		next = s.clampToLeadingSnap(min(next, 0), snaps)
	default:
		next = s.clampToLeadingSnap(s.clampToTrailingSnap(next, snaps), snaps)
	}

	s.translation = next
	s.prevDragOffset = s.dragOffset
	s.notify(MethodDrag)
}

func (s *Swipeable) clampToTrailingSnap(v float64, snaps SnapPoints) float64 {
	if !s.opts.OvershootLeading && v > snaps.Trailing {
		return snaps.Trailing
	}
	return v
}

func (s *Swipeable) clampToLeadingSnap(v float64, snaps SnapPoints) float64 {
	if !s.opts.OvershootTrailing && v < snaps.Leading {
		return snaps.Leading
	}
	return v
}

// settle springs the released row toward the snap point chosen from its
// projected position. The target is latched on the first settle frame.
func (s *Swipeable) settle(now time.Time) {
	snaps := s.SnapPoints()

	if s.activeSpring == targetNone {
		th := s.Thresholds()
		projected := s.translation + s.opts.Inertia*s.velocity
		switch {
		case projected <= th.Leading:
			s.activeSpring = targetLeading
		case projected < th.Trailing:
			s.activeSpring = targetMiddle
		default:
			s.activeSpring = targetTrailing
		}
		s.logger.Debug("settle target latched",
			"target", s.activeSpring,
			"projected", projected,
			"translation", s.translation)
	}

	var dest float64
	switch s.activeSpring {
	case targetLeading:
		dest = snaps.Leading
	case targetTrailing:
		dest = snaps.Trailing
	}

	pos, done := s.spring.Run(now, s.translation, s.velocity, dest)
	switch s.activeSpring {
	case targetLeading:
		switch {
		case pos < 0 && s.activeLimit == limitLeading:
			pos = 0
		case !s.opts.OvershootLeading && pos < snaps.Leading:
			pos = snaps.Leading
		}
	case targetMiddle:
		if (pos < 0 && s.activeLimit == limitLeading) || (pos > 0 && s.activeLimit == limitTrailing) {
			pos = 0
		}
	case targetTrailing:
		switch {
		case pos > 0 && s.activeLimit == limitTrailing:
			pos = 0
		case !s.opts.OvershootTrailing && pos > snaps.Trailing:
			pos = snaps.Trailing
		}
	}

	s.translation = pos
	if done {
		s.settled = true
	}
	s.notify(MethodSwipe)
}

func (s *Swipeable) runTransition(now time.Time) {
	snaps := s.SnapPoints()
	var dest float64
	switch s.transition {
	case TransitionOpenLeading:
		dest = snaps.Trailing
	case TransitionOpenTrailing:
		dest = snaps.Leading
	}

	if s.translation == dest {
		s.transition = TransitionNone
	} else {
		pos, done := s.timing.Run(now, s.translation, dest)
		s.translation = pos
		if done {
			s.stopClock()
			s.transition = TransitionNone
		}
	}
	s.notify(MethodTransition)
}
