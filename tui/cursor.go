package tui

// Cursor tracks the highlighted entry of a list that may be taller than the
// terminal. Pos always stays within [0, ItemCount-1].
type Cursor struct {
	Pos       int // highlighted item index
	Offset    int // first visible item
	VpHeight  int // visible rows, 0 until the terminal size is known
	ItemCount int
}

func (c *Cursor) Up() {
	if c.Pos > 0 {
		c.Pos--
		c.EnsureVisible()
	}
}

func (c *Cursor) Down() {
	if c.Pos < c.ItemCount-1 {
		c.Pos++
		c.EnsureVisible()
	}
}

// EnsureVisible adjusts Offset so Pos is within the visible window.
func (c *Cursor) EnsureVisible() {
	if c.VpHeight <= 0 {
		c.Offset = 0
		return
	}

	if c.Pos < c.Offset {
		c.Offset = c.Pos
	}

	if c.Pos >= c.Offset+c.VpHeight {
		c.Offset = c.Pos - c.VpHeight + 1
	}

	// don't leave blank rows at the bottom after the terminal grows
	if last := max(0, c.ItemCount-c.VpHeight); c.Offset > last {
		c.Offset = last
	}
}

// Window returns the half-open range of items to render.
func (c *Cursor) Window() (int, int) {
	if c.VpHeight <= 0 {
		return 0, c.ItemCount
	}

	return c.Offset, min(c.Offset+c.VpHeight, c.ItemCount)
}
