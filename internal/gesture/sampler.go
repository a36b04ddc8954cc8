package gesture

// Sampler corrects the raw phase stream before it reaches a row.
//
// Some recognizers report the began phase unreliably: it may be missing,
// or arrive after the gesture already went active. With latching
// enabled a began sample is synthesized in front of the first active
// sample of a gesture that did not report one, and a began arriving
// after active is dropped, so consumers always observe began before
// active. Without latching samples pass through unchanged.
type Sampler struct {
	latch bool
	state Phase
}

// NewSampler returns a sampler. latchBegan enables the correction.
func NewSampler(latchBegan bool) *Sampler {
	return &Sampler{latch: latchBegan}
}

// Phase returns the last corrected phase.
func (s *Sampler) Phase() Phase { return s.state }

// Correct maps one raw sample to zero or more corrected samples, in the
// order they must be applied.
func (s *Sampler) Correct(ev Event) []Event {
	if !s.latch {
		s.state = ev.Phase
		return []Event{ev}
	}
	switch {
	case ev.Phase == PhaseBegan:
		if s.state == PhaseActive {
			return nil
		}
		s.state = PhaseBegan
		return []Event{ev}
	case ev.Phase == PhaseActive && s.state != PhaseActive && s.state != PhaseBegan:
		s.state = PhaseActive
		began := Event{Phase: PhaseBegan, Offset: ev.Offset}
		return []Event{began, ev}
	default:
		s.state = ev.Phase
		return []Event{ev}
	}
}
