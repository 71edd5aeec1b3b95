package state

// MoveCursorUp moves the cursor one item up, wrapping to the last item.
func (l *Level) MoveCursorUp() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	old := l.Cursor
	l.Cursor = (l.Cursor - 1 + n) % n
	return old != l.Cursor
}

// MoveCursorDown moves the cursor one item down, wrapping to the first item.
func (l *Level) MoveCursorDown() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	old := l.Cursor
	l.Cursor = (l.Cursor + 1) % n
	return old != l.Cursor
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = n - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *Level) moveCursorBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(l.Cursor+delta, 0, len(l.Items)-1)
	return l.Cursor != old
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Items)
	if maxVisible <= 0 || maxVisible > total {
		return total
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	l.ViewportOffset = clamp(l.ViewportOffset, 0, maxOffset)
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Cursor > upper {
		l.ViewportOffset = clamp(l.Cursor-maxVisible+1, 0, maxOffset)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
