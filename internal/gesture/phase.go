// Package gesture turns pointer input into pan gesture samples.
package gesture

// Phase is the lifecycle state reported by a pan recognizer.
type Phase int

const (
	PhaseUndetermined Phase = iota
	PhaseBegan
	PhaseActive
	PhaseEnded
	PhaseCancelled
	PhaseFailed
)

var phaseNames = [...]string{
	PhaseUndetermined: "undetermined",
	PhaseBegan:        "began",
	PhaseActive:       "active",
	PhaseEnded:        "ended",
	PhaseCancelled:    "cancelled",
	PhaseFailed:       "failed",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Terminal reports whether p ends a gesture.
func (p Phase) Terminal() bool {
	return p == PhaseEnded || p == PhaseCancelled || p == PhaseFailed
}

// ParsePhase is the inverse of Phase.String.
func ParsePhase(s string) (Phase, bool) {
	for i, name := range phaseNames {
		if name == s {
			return Phase(i), true
		}
	}
	return PhaseUndetermined, false
}

// Event is one pan sample. Offset is the cumulative displacement along
// the row axis since the gesture started; Velocity is in offset units
// per second.
type Event struct {
	Phase    Phase
	Offset   float64
	Velocity float64
}

// Direction is the axis a row translates along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection accepts "horizontal" or "vertical".
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "horizontal", "":
		return Horizontal, true
	case "vertical":
		return Vertical, true
	}
	return Horizontal, false
}

// Along returns the component of (x, y) on the axis.
func (d Direction) Along(x, y float64) float64 {
	if d == Vertical {
		return y
	}
	return x
}

// Across returns the component of (x, y) on the other axis.
func (d Direction) Across(x, y float64) float64 {
	if d == Vertical {
		return x
	}
	return y
}
