package swipeable

// layout holds the measurements reported by the host renderer.
type layout struct {
	// leadingSize is where the content starts after the leading panel.
	leadingSize float64
	// trailingEdge is where the trailing panel starts.
	trailingEdge     float64
	trailingMeasured bool
	// size is the container extent along the axis.
	size float64
}

// SetLeadingExtent records the far edge of the leading panel.
func (s *Swipeable) SetLeadingExtent(v float64) {
	s.layout.leadingSize = v
}

// SetTrailingEdge records the near edge of the trailing panel.
func (s *Swipeable) SetTrailingEdge(v float64) {
	s.layout.trailingEdge = v
	s.layout.trailingMeasured = true
}

// SetContainerExtent records the container size along the axis.
func (s *Swipeable) SetContainerExtent(v float64) {
	s.layout.size = v
}

// ContainerExtent returns the last measured container size.
func (s *Swipeable) ContainerExtent() float64 { return s.layout.size }

// SnapPoints are the rest positions of a row.
type SnapPoints struct {
	// Leading is where the trailing panel is fully revealed (<= 0).
	Leading float64
	// Middle is the closed position.
	Middle float64
	// Trailing is where the leading panel is fully revealed (>= 0).
	Trailing float64
}

// SnapPoints derives the rest positions from the current layout. A side
// without a panel, or not yet measured, snaps to 0.
func (s *Swipeable) SnapPoints() SnapPoints {
	var sp SnapPoints
	if s.HasTrailing() && s.layout.trailingMeasured && s.layout.size > 0 {
		sp.Leading = min(s.layout.trailingEdge-s.layout.size, 0)
	}
	if s.HasLeading() {
		sp.Trailing = max(s.layout.leadingSize, 0)
	}
	return sp
}

// Thresholds are the translations a row must pass to count as opening.
type Thresholds struct {
	Leading  float64
	Trailing float64
}

// Thresholds scales the snap points by the configured fractions.
func (s *Swipeable) Thresholds() Thresholds {
	sp := s.SnapPoints()
	return Thresholds{
		Leading:  sp.Leading * s.opts.LeadingThreshold,
		Trailing: sp.Trailing * s.opts.TrailingThreshold,
	}
}

// LeadingProps returns the render props of the leading panel.
func (s *Swipeable) LeadingProps() Props {
	return Props{
		Side:        Leading,
		Gap:         max(s.translation, 0),
		Extent:      s.layout.leadingSize,
		Translation: s.translation,
	}
}

// TrailingProps returns the render props of the trailing panel.
func (s *Swipeable) TrailingProps() Props {
	extent := 0.0
	if s.layout.trailingMeasured {
		extent = max(s.layout.size-s.layout.trailingEdge, 0)
	}
	return Props{
		Side:        Trailing,
		Gap:         max(-s.translation, 0),
		Extent:      extent,
		Translation: s.translation,
	}
}

// PanelOnTop returns the panel drawn above the other, if any is revealed.
func (s *Swipeable) PanelOnTop() (Side, bool) {
	switch {
	case s.translation > 0:
		return Leading, true
	case s.translation < 0:
		return Trailing, true
	}
	return Leading, false
}

// RenderLeading draws the leading panel, or returns "" without one.
func (s *Swipeable) RenderLeading() string {
	if s.opts.Leading == nil {
		return ""
	}
	return s.opts.Leading(s.LeadingProps())
}

// RenderTrailing draws the trailing panel, or returns "" without one.
func (s *Swipeable) RenderTrailing() string {
	if s.opts.Trailing == nil {
		return ""
	}
	return s.opts.Trailing(s.TrailingProps())
}
