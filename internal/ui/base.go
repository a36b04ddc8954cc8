package ui

// Base holds the area a component was given. Components embed it to get
// SetSize from the popup contract for free.
type Base struct {
	width, height int
}

// SetSize records the area.
func (b *Base) SetSize(width, height int) {
	b.width, b.height = width, height
}

func (b Base) Width() int { return b.width }
func (b Base) Height() int { return b.height }

// Sized reports whether a window size has arrived yet.
func (b Base) Sized() bool {
	return b.width > 0 && b.height > 0
}
