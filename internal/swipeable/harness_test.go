package swipeable

import (
	"testing"
	"time"

	"github.com/llehouerou/swiperow/internal/gesture"
)

const frameStep = 16 * time.Millisecond

var epoch = time.Unix(1_700_000_000, 0)

func blank(Props) string { return "" }

// rowOptions returns default options with the requested panels.
func rowOptions(leading, trailing bool) Options {
	opts := DefaultOptions()
	if leading {
		opts.Leading = blank
	}
	if trailing {
		opts.Trailing = blank
	}
	return opts
}

type harness struct {
	t       *testing.T
	s       *Swipeable
	now     time.Time
	changes []Change
}

// newHarness builds a measured row. trailingWidth is the size of the
// trailing panel; the trailing edge is derived from it.
func newHarness(t *testing.T, opts Options, leadingSize, trailingWidth, size float64) *harness {
	t.Helper()
	h := &harness{t: t, now: epoch}
	h.s = New(opts, WithListener(func(c Change) {
		h.changes = append(h.changes, c)
	}))
	h.s.SetContainerExtent(size)
	h.s.SetLeadingExtent(leadingSize)
	h.s.SetTrailingEdge(size - trailingWidth)
	return h
}

func (h *harness) frame() float64 {
	h.now = h.now.Add(frameStep)
	return h.s.Frame(h.now)
}

func (h *harness) frames(n int) float64 {
	var t float64
	for range n {
		t = h.frame()
	}
	return t
}

// run drives frames until the row stops animating.
func (h *harness) run() float64 {
	h.t.Helper()
	for range 500 {
		h.frame()
		if !h.s.Animating() {
			return h.s.Translation()
		}
	}
	h.t.Fatalf("row still animating after 500 frames, translation %v", h.s.Translation())
	return 0
}

func (h *harness) send(phase gesture.Phase, offset, velocity float64) float64 {
	h.s.HandleGesture(gesture.Event{Phase: phase, Offset: offset, Velocity: velocity})
	return h.frame()
}

// drag sends one active sample per offset, then returns the translation.
func (h *harness) drag(offsets ...float64) float64 {
	var t float64
	for _, o := range offsets {
		t = h.send(gesture.PhaseActive, o, 0)
	}
	return t
}

func (h *harness) release(offset, velocity float64) {
	h.send(gesture.PhaseEnded, offset, velocity)
}
