package swipeable

// Side identifies one of the two reveal panels.
type Side int

const (
	Leading Side = iota
	Trailing
)

func (s Side) String() string {
	if s == Trailing {
		return "trailing"
	}
	return "leading"
}

// Action is a threshold crossing reported to the change listener.
type Action int

const (
	OpeningThresholdPassed Action = iota
	Opened
	ClosingThresholdPassed
	Closed
)

func (a Action) String() string {
	switch a {
	case OpeningThresholdPassed:
		return "opening-threshold-passed"
	case Opened:
		return "opened"
	case ClosingThresholdPassed:
		return "closing-threshold-passed"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Method names the motion source that produced a change.
type Method int

const (
	MethodDrag Method = iota
	MethodSwipe
	MethodTransition
)

func (m Method) String() string {
	switch m {
	case MethodDrag:
		return "drag"
	case MethodSwipe:
		return "swipe"
	case MethodTransition:
		return "transition"
	}
	return "unknown"
}

// Change is delivered to the listener when the row crosses a threshold.
type Change struct {
	Item   Side
	Action Action
	Method Method
}

// TranslationState is the discrete position of the row relative to its
// thresholds and snap points.
type TranslationState int

const (
	StateClosed TranslationState = iota
	StateLeadingOpeningThresholdPassed
	StateLeadingOpened
	StateLeadingClosingThresholdPassed
	StateLeadingClosed
	StateTrailingOpeningThresholdPassed
	StateTrailingOpened
	StateTrailingClosingThresholdPassed
	StateTrailingClosed
)

var stateNames = [...]string{
	StateClosed:                         "closed",
	StateLeadingOpeningThresholdPassed:  "leading-opening-threshold-passed",
	StateLeadingOpened:                  "leading-opened",
	StateLeadingClosingThresholdPassed:  "leading-closing-threshold-passed",
	StateLeadingClosed:                  "leading-closed",
	StateTrailingOpeningThresholdPassed: "trailing-opening-threshold-passed",
	StateTrailingOpened:                 "trailing-opened",
	StateTrailingClosingThresholdPassed: "trailing-closing-threshold-passed",
	StateTrailingClosed:                 "trailing-closed",
}

func (s TranslationState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// IsClosed reports whether no panel is considered open.
func (s TranslationState) IsClosed() bool {
	return s == StateClosed || s == StateLeadingClosed || s == StateTrailingClosed
}

// OpenSide returns the side considered open, if any. A row is open from
// the moment it passes the opening threshold until it passes the
// closing threshold.
func (s TranslationState) OpenSide() (Side, bool) {
	switch s {
	case StateLeadingOpeningThresholdPassed, StateLeadingOpened:
		return Leading, true
	case StateTrailingOpeningThresholdPassed, StateTrailingOpened:
		return Trailing, true
	}
	return Leading, false
}

func (s TranslationState) in(states ...TranslationState) bool {
	for _, st := range states {
		if s == st {
			return true
		}
	}
	return false
}

// target is the snap destination latched on release.
type target int

const (
	targetNone target = iota
	targetLeading
	targetMiddle
	targetTrailing
)

func (t target) String() string {
	return [...]string{"none", "leading", "middle", "trailing"}[t]
}

// limit restricts drag motion to one side once the direction is known.
type limit int

const (
	limitNone limit = iota
	// limitLeading keeps translation >= 0 (only the leading panel shows).
	limitLeading
	// limitTrailing keeps translation <= 0.
	limitTrailing
)

// Transition is an imperative request.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionOpenLeading
	TransitionOpenTrailing
	TransitionClose
)

func (t Transition) String() string {
	switch t {
	case TransitionOpenLeading:
		return "open-leading"
	case TransitionOpenTrailing:
		return "open-trailing"
	case TransitionClose:
		return "close"
	}
	return "none"
}
