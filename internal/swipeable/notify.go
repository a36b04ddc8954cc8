package swipeable

// The predicates below decide the next discrete state. Each one is a pure
// function of the current state, the translation, and the threshold and
// snap point on its side.

func trailingOpeningThresholdPassed(st TranslationState, t, threshold, snap float64, has bool) bool {
	return has &&
		st.in(StateTrailingClosed, StateLeadingClosed, StateClosed, StateTrailingClosingThresholdPassed) &&
		t <= threshold && t > snap
}

func trailingOpened(st TranslationState, t, snap float64) bool {
	return st == StateTrailingOpeningThresholdPassed && t <= snap
}

func trailingClosingThresholdPassed(st TranslationState, t, threshold float64) bool {
	return st.in(StateTrailingOpened, StateTrailingOpeningThresholdPassed) &&
		t < 0 && t > threshold
}

func trailingClosed(st TranslationState, t float64) bool {
	return st == StateTrailingClosingThresholdPassed && t >= 0
}

func leadingOpeningThresholdPassed(st TranslationState, t, threshold, snap float64, has bool) bool {
	return has &&
		st.in(StateLeadingClosed, StateTrailingClosed, StateClosed, StateLeadingClosingThresholdPassed) &&
		t >= threshold && t < snap
}

func leadingOpened(st TranslationState, t, snap float64) bool {
	return st == StateLeadingOpeningThresholdPassed && t >= snap
}

func leadingClosingThresholdPassed(st TranslationState, t, threshold float64) bool {
	return st.in(StateLeadingOpened, StateLeadingOpeningThresholdPassed) &&
		t > 0 && t < threshold
}

func leadingClosed(st TranslationState, t float64) bool {
	return st == StateLeadingClosingThresholdPassed && t <= 0
}

type transitionRule struct {
	matches func() bool
	next    TranslationState
	item    Side
	action  Action
}

// notify advances the discrete state and reports at most one change per
// call. Nothing is computed until the container has been measured and a
// listener is registered.
func (s *Swipeable) notify(method Method) {
	if s.onChange == nil || s.layout.size == 0 {
		return
	}
	st := s.translationState
	t := s.translation
	sp := s.SnapPoints()
	th := s.Thresholds()

	rules := [...]transitionRule{
		{
			matches: func() bool {
				return trailingOpeningThresholdPassed(st, t, th.Leading, sp.Leading, s.HasTrailing())
			},
			next: StateTrailingOpeningThresholdPassed, item: Trailing, action: OpeningThresholdPassed,
		},
		{
			matches: func() bool { return trailingOpened(st, t, sp.Leading) },
			next:    StateTrailingOpened, item: Trailing, action: Opened,
		},
		{
			matches: func() bool { return trailingClosingThresholdPassed(st, t, th.Leading) },
			next:    StateTrailingClosingThresholdPassed, item: Trailing, action: ClosingThresholdPassed,
		},
		{
			matches: func() bool { return trailingClosed(st, t) },
			next:    StateTrailingClosed, item: Trailing, action: Closed,
		},
		{
			matches: func() bool {
				return leadingOpeningThresholdPassed(st, t, th.Trailing, sp.Trailing, s.HasLeading())
			},
			next: StateLeadingOpeningThresholdPassed, item: Leading, action: OpeningThresholdPassed,
		},
		{
			matches: func() bool { return leadingOpened(st, t, sp.Trailing) },
			next:    StateLeadingOpened, item: Leading, action: Opened,
		},
		{
			matches: func() bool { return leadingClosingThresholdPassed(st, t, th.Trailing) },
			next:    StateLeadingClosingThresholdPassed, item: Leading, action: ClosingThresholdPassed,
		},
		{
			matches: func() bool { return leadingClosed(st, t) },
			next:    StateLeadingClosed, item: Leading, action: Closed,
		},
	}

	for _, r := range rules {
		if !r.matches() {
			continue
		}
		s.translationState = r.next
		change := Change{Item: r.item, Action: r.action, Method: method}
		s.logger.Debug("swipe change",
			"side", change.Item,
			"action", change.Action,
			"method", change.Method,
			"translation", t)
		s.onChange(change)
		return
	}
}
