package swipeable

// OpenLeading animates the row until the leading panel is fully revealed.
func (s *Swipeable) OpenLeading() { s.request(TransitionOpenLeading) }

// OpenTrailing animates the row until the trailing panel is fully
// revealed.
func (s *Swipeable) OpenTrailing() { s.request(TransitionOpenTrailing) }

// Close animates the row back to translation 0.
func (s *Swipeable) Close() { s.request(TransitionClose) }

// request is applied at the start of the next frame. A later request in
// the same frame replaces an earlier one.
func (s *Swipeable) request(t Transition) {
	s.logger.Debug("transition requested", "transition", t, "translation", s.translation)
	s.resetSpring = true
	s.transition = t
}

// PendingTransition returns the transition in flight, if any.
func (s *Swipeable) PendingTransition() Transition { return s.transition }
