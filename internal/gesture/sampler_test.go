package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func phases(evs []Event) []Phase {
	out := make([]Phase, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ev.Phase)
	}
	return out
}

func TestSampler_Latching(t *testing.T) {
	tests := []struct {
		name string
		raw  []Phase
		want []Phase
	}{
		{
			name: "began arrives late",
			raw:  []Phase{PhaseActive, PhaseBegan, PhaseActive, PhaseEnded},
			want: []Phase{PhaseBegan, PhaseActive, PhaseActive, PhaseEnded},
		},
		{
			name: "began missing",
			raw:  []Phase{PhaseActive, PhaseActive, PhaseEnded},
			want: []Phase{PhaseBegan, PhaseActive, PhaseActive, PhaseEnded},
		},
		{
			name: "each gesture gets its own began",
			raw:  []Phase{PhaseBegan, PhaseActive, PhaseEnded, PhaseBegan, PhaseActive, PhaseCancelled},
			want: []Phase{PhaseBegan, PhaseActive, PhaseEnded, PhaseBegan, PhaseActive, PhaseCancelled},
		},
		{
			name: "tap without activation",
			raw:  []Phase{PhaseBegan, PhaseFailed},
			want: []Phase{PhaseBegan, PhaseFailed},
		},
		{
			name: "repeated began before activation",
			raw:  []Phase{PhaseBegan, PhaseBegan, PhaseActive, PhaseEnded},
			want: []Phase{PhaseBegan, PhaseBegan, PhaseActive, PhaseEnded},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSampler(true)
			var got []Event
			for _, p := range tt.raw {
				got = append(got, s.Correct(Event{Phase: p})...)
			}
			assert.Equal(t, tt.want, phases(got))
		})
	}
}

func TestSampler_SynthesizedBeganCarriesOffset(t *testing.T) {
	s := NewSampler(true)

	got := s.Correct(Event{Phase: PhaseActive, Offset: 24, Velocity: 90})

	assert.Equal(t, []Event{
		{Phase: PhaseBegan, Offset: 24},
		{Phase: PhaseActive, Offset: 24, Velocity: 90},
	}, got)
	assert.Equal(t, PhaseActive, s.Phase())
}

func TestSampler_PassThrough(t *testing.T) {
	s := NewSampler(false)
	raw := []Phase{PhaseActive, PhaseBegan, PhaseEnded}

	var got []Event
	for _, p := range raw {
		got = append(got, s.Correct(Event{Phase: p})...)
	}

	assert.Equal(t, raw, phases(got))
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "cancelled", PhaseCancelled.String())
	assert.Equal(t, "unknown", Phase(42).String())

	p, ok := ParsePhase("active")
	assert.True(t, ok)
	assert.Equal(t, PhaseActive, p)

	_, ok = ParsePhase("dragging")
	assert.False(t, ok)
}

func TestPhase_Terminal(t *testing.T) {
	assert.True(t, PhaseEnded.Terminal())
	assert.True(t, PhaseCancelled.Terminal())
	assert.True(t, PhaseFailed.Terminal())
	assert.False(t, PhaseActive.Terminal())
	assert.False(t, PhaseBegan.Terminal())
	assert.False(t, PhaseUndetermined.Terminal())
}
