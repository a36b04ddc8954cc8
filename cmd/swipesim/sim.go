package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/llehouerou/swiperow/internal/gesture"
	"github.com/llehouerou/swiperow/internal/swipeable"
)

// simulator drives one row with a fake clock and prints every frame that
// moved the row or produced a notification.
type simulator struct {
	row      *swipeable.Swipeable
	out      io.Writer
	interval time.Duration
	start    time.Time
	now      time.Time
	frame    int
	last     float64
	changes  []swipeable.Change
}

func newSimulator(out io.Writer, opts swipeable.Options, layout Layout, interval time.Duration, logger *slog.Logger) *simulator {
	if layout.Leading > 0 {
		opts.Leading = label
	} else {
		opts.Leading = nil
	}
	if layout.Trailing > 0 {
		opts.Trailing = label
	} else {
		opts.Trailing = nil
	}

	start := time.Unix(0, 0)
	s := &simulator{out: out, interval: interval, start: start, now: start}
	s.row = swipeable.New(opts,
		swipeable.WithLogger(logger),
		swipeable.WithListener(func(c swipeable.Change) {
			s.changes = append(s.changes, c)
		}),
	)

	s.row.SetContainerExtent(layout.Size)
	if layout.Leading > 0 {
		s.row.SetLeadingExtent(layout.Leading)
	}
	if layout.Trailing > 0 {
		s.row.SetTrailingEdge(layout.Size - layout.Trailing)
	}
	return s
}

// label is the panel renderer used by the simulator.
func label(p swipeable.Props) string {
	return fmt.Sprintf("%s %3.0f%%", p.Side, 100*p.Progress())
}

// run replays sc and then lets the row settle. It reports whether the row
// came to rest within the settle budget.
func (s *simulator) run(sc Script) bool {
	for i, st := range sc.Steps {
		s.apply(i+1, st)
		for range st.Frames {
			s.step()
		}
	}
	for range sc.Settle {
		if !s.row.Animating() {
			break
		}
		s.step()
	}

	fmt.Fprintf(s.out, "final translation %.2f state %s\n", s.row.Translation(), s.row.State())
	return !s.row.Animating()
}

func (s *simulator) apply(n int, st Step) {
	if st.Control != "" {
		fmt.Fprintf(s.out, "step %d: %s\n", n, st.Control)
		switch st.Control {
		case "open_leading":
			s.row.OpenLeading()
		case "open_trailing":
			s.row.OpenTrailing()
		case "close":
			s.row.Close()
		}
		return
	}

	phase, _ := gesture.ParsePhase(st.Phase)
	fmt.Fprintf(s.out, "step %d: %s offset=%g velocity=%g\n", n, phase, st.Offset, st.Velocity)
	s.row.HandleGesture(gesture.Event{Phase: phase, Offset: st.Offset, Velocity: st.Velocity})
}

func (s *simulator) step() {
	s.frame++
	s.now = s.now.Add(s.interval)
	t := s.row.Frame(s.now)

	changes := s.changes
	s.changes = nil
	if t == s.last && len(changes) == 0 {
		return
	}
	s.last = t

	fmt.Fprintf(s.out, "%5d %7s %9.2f  %s\n",
		s.frame, s.now.Sub(s.start).Round(time.Millisecond), t, s.row.State())
	for _, c := range changes {
		fmt.Fprintf(s.out, "      -> %s %s (%s)\n", c.Item, c.Action, c.Method)
	}
	if side, ok := s.row.PanelOnTop(); ok {
		var panel string
		if side == swipeable.Leading {
			panel = s.row.RenderLeading()
		} else {
			panel = s.row.RenderTrailing()
		}
		fmt.Fprintf(s.out, "         [%s]\n", panel)
	}
}
