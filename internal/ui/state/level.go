package state

import "github.com/nguyenvanduocit/duocnv/internal/menu"

// Level holds the per-menu view state: cursor, filter, and viewport.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level with the cursor on the first item.
func NewLevel(id, title string, items []menu.Item) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item identifier among visible items.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the level items, keeping the cursor on the same item
// when it is still present.
func (l *Level) UpdateItems(items []menu.Item) {
	var keep string
	if current, ok := l.Current(); ok {
		keep = current.ID
	}
	l.Full = CloneItems(items)
	l.refilter()
	if idx := l.IndexOf(keep); idx >= 0 {
		l.Cursor = idx
	}
	if l.ViewportOffset > len(l.Items)-1 || l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}
