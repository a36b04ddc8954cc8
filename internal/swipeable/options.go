package swipeable

import (
	"io"
	"log/slog"
	"math"

	"github.com/llehouerou/swiperow/internal/anim"
	"github.com/llehouerou/swiperow/internal/gesture"
)

const (
	// limitThreshold is the translation beyond which an in-progress drag
	// latches its limit from the current translation sign.
	limitThreshold = 0.1

	DefaultThreshold = 0.5
	DefaultInertia   = 0.1
)

// Props is passed to a panel renderer.
type Props struct {
	Side Side
	// Gap is how much of the panel is currently revealed.
	Gap float64
	// Extent is the measured size of the panel along the axis.
	Extent float64
	// Translation is the current row translation.
	Translation float64
}

// Progress is the revealed fraction of the panel, clamped to [0,1].
func (p Props) Progress() float64 {
	if p.Extent <= 0 {
		return 0
	}
	return math.Min(math.Max(p.Gap/p.Extent, 0), 1)
}

// Renderer draws a panel. A nil renderer means the row has no panel on
// that side.
type Renderer func(Props) string

// Options configure a row. Use DefaultOptions as a starting point; the
// zero value disables overshoot, limits and latching.
type Options struct {
	Leading  Renderer
	Trailing Renderer

	Direction gesture.Direction

	// Fractions of the panel size the row must travel to count as
	// opening, and to be snapped open on release.
	LeadingThreshold  float64
	TrailingThreshold float64

	// Overshoot lets the row travel past a fully revealed panel.
	OvershootLeading  bool
	OvershootTrailing bool

	// LimitsEnabled latches the drag direction once it is known.
	LimitsEnabled bool

	// Inertia is the number of seconds of release velocity projected
	// when choosing the settle target.
	Inertia float64

	Spring     anim.SpringConfig
	Transition anim.TimingConfig

	// LatchBegan enables began-phase correction for recognizers that
	// report it late or not at all.
	LatchBegan bool
}

// DefaultOptions returns the defaults for a row with no panels.
func DefaultOptions() Options {
	return Options{
		Direction:         gesture.Horizontal,
		LeadingThreshold:  DefaultThreshold,
		TrailingThreshold: DefaultThreshold,
		OvershootLeading:  true,
		OvershootTrailing: true,
		LimitsEnabled:     true,
		Inertia:           DefaultInertia,
		Spring:            anim.DefaultSpringConfig(),
		Transition:        anim.DefaultTimingConfig(),
		LatchBegan:        true,
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 1)
}

func (o Options) normalize() Options {
	o.LeadingThreshold = clamp01(o.LeadingThreshold)
	o.TrailingThreshold = clamp01(o.TrailingThreshold)
	if math.IsNaN(o.Inertia) || o.Inertia < 0 {
		o.Inertia = 0
	}
	if o.Spring == (anim.SpringConfig{}) {
		o.Spring = anim.DefaultSpringConfig()
	}
	switch {
	case o.Transition.Easing == nil && o.Transition.Duration == 0:
		o.Transition = anim.DefaultTimingConfig()
	case o.Transition.Easing == nil:
		o.Transition.Easing = anim.Linear
	}
	return o
}

// Option customizes a Swipeable beyond its Options.
type Option func(*Swipeable)

// WithLogger sets the logger used for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Swipeable) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithListener registers the change listener. Threshold notifications
// are only computed when a listener is set.
func WithListener(fn func(Change)) Option {
	return func(s *Swipeable) { s.onChange = fn }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
