// Package cursor tracks the selected row and scroll offset of the inbox.
package cursor

// Cursor is a selection inside a scrolled viewport. Callers pass the list
// length n and viewport height h on every call; both change under it as
// rows come and go and the terminal is resized.
type Cursor struct {
	pos    int
	offset int // first visible row
	margin int // rows kept between the cursor and a viewport edge
}

func New(margin int) Cursor {
	return Cursor{margin: margin}
}

func (c Cursor) Pos() int { return c.pos }
func (c Cursor) Offset() int { return c.offset }

// Move steps the selection by delta rows.
func (c *Cursor) Move(delta, n, h int) {
	c.Jump(c.pos+delta, n, h)
}

// Jump selects row pos, clamped to the list.
func (c *Cursor) Jump(pos, n, h int) {
	if n == 0 {
		return
	}
	c.pos = clamp(pos, n-1)
	c.EnsureVisible(n, h)
}

// Scroll shifts the viewport by delta rows. The selection only moves when
// it would otherwise fall outside the viewport.
func (c *Cursor) Scroll(delta, n, h int) {
	if n == 0 || h <= 0 {
		return
	}
	c.offset = clamp(c.offset+delta, max(n-h, 0))
	c.pos = min(max(c.pos, c.offset), c.offset+h-1)
}

// EnsureVisible scrolls so the selection sits at least margin rows from
// either edge, as far as the list allows.
func (c *Cursor) EnsureVisible(n, h int) {
	if n == 0 || h <= 0 {
		return
	}
	if top := c.pos - c.margin; top < c.offset {
		c.offset = max(top, 0)
	}
	if bottom := c.pos + c.margin + 1; bottom > c.offset+h {
		c.offset = bottom - h
	}
	c.offset = clamp(c.offset, max(n-h, 0))
}

// ClampToBounds pulls the selection back inside a list of n rows and
// reports whether it moved. An empty list also resets the scroll.
func (c *Cursor) ClampToBounds(n int) bool {
	if n == 0 {
		moved := *c != Cursor{margin: c.margin}
		c.Reset()
		return moved
	}
	prev := c.pos
	c.pos = clamp(c.pos, n-1)
	return c.pos != prev
}

// VisibleRange returns the half-open index range shown in the viewport.
func (c Cursor) VisibleRange(n, h int) (start, end int) {
	if n == 0 || h <= 0 {
		return 0, 0
	}
	return min(c.offset, n), min(c.offset+h, n)
}

// RowAt maps viewport line to a list index. ok is false below the last
// row and outside the viewport.
func (c Cursor) RowAt(line, n, h int) (idx int, ok bool) {
	idx = c.offset + line
	if line < 0 || line >= h || idx >= n {
		return 0, false
	}
	return idx, true
}

func (c *Cursor) Reset() {
	c.pos, c.offset = 0, 0
}

// HandleKey applies the list navigation keys: j/k and the arrows step,
// g/G and home/end jump, ctrl+d/ctrl+u move half a page.
func (c *Cursor) HandleKey(key string, n, h int) bool {
	switch key {
	case "j", "down":
		c.Move(1, n, h)
	case "k", "up":
		c.Move(-1, n, h)
	case "g", "home":
		c.Reset()
	case "G", "end":
		c.Jump(n-1, n, h)
	case "ctrl+d":
		c.Move(h/2, n, h)
	case "ctrl+u":
		c.Move(-h/2, n, h)
	default:
		return false
	}
	return true
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}
