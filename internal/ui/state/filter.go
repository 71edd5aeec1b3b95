package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/nguyenvanduocit/duocnv/internal/menu"
)

// The filter is an append-only query: text is typed at the end and removed
// from the end.

// SetFilter replaces the query and refilters. The cursor held when the query
// first becomes non-blank comes back once it is blank again.
func (l *Level) SetFilter(query string) {
	wasActive := strings.TrimSpace(l.Filter) != ""
	active := strings.TrimSpace(query) != ""
	if active && !wasActive {
		l.LastCursor = l.Cursor
	}
	l.Filter = query
	l.Items = FilterItems(l.Full, query)
	l.ViewportOffset = 0

	switch {
	case active:
		l.Cursor = max(BestMatchIndex(l.Items, query), 0)
	case wasActive:
		l.Cursor = 0
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		}
		l.LastCursor = -1
	default:
		l.LastCursor = -1
		l.clampCursor()
	}
}

// ClearFilter drops the query. It reports whether there was one.
func (l *Level) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("")
	return true
}

// AppendFilter adds typed text to the end of the query.
func (l *Level) AppendFilter(text string) bool {
	if text == "" {
		return false
	}
	l.SetFilter(l.Filter + text)
	return true
}

// TrimFilter removes the last rune of the query.
func (l *Level) TrimFilter() bool {
	runes := []rune(l.Filter)
	if len(runes) == 0 {
		return false
	}
	l.SetFilter(string(runes[:len(runes)-1]))
	return true
}

// TrimFilterWord removes the last word of the query and any spaces after it.
func (l *Level) TrimFilterWord() bool {
	if l.Filter == "" {
		return false
	}
	kept := strings.TrimRightFunc(l.Filter, unicode.IsSpace)
	kept = strings.TrimRightFunc(kept, func(r rune) bool { return !unicode.IsSpace(r) })
	l.SetFilter(kept)
	return true
}

func (l *Level) refilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	l.clampCursor()
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

func (l *Level) clampCursor() {
	switch {
	case len(l.Items) == 0, l.Cursor < 0:
		l.Cursor = 0
	case l.Cursor >= len(l.Items):
		l.Cursor = len(l.Items) - 1
	}
}

func searchText(item menu.Item) string {
	if item.Hint == "" {
		return item.Label
	}
	return item.Label + " " + item.Hint
}

// FilterItems keeps the items whose label and hint fuzzily contain the query,
// in their original order. When nothing matches fuzzily, a case-insensitive
// substring search over label and id decides instead.
func FilterItems(items []menu.Item, query string) []menu.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return CloneItems(items)
	}
	var out []menu.Item
	for _, item := range items {
		if fuzzy.MatchNormalizedFold(query, searchText(item)) {
			out = append(out, item)
		}
	}
	if len(out) > 0 {
		return out
	}
	lower := strings.ToLower(query)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) || strings.Contains(strings.ToLower(item.ID), lower) {
			out = append(out, item)
		}
	}
	return out
}

// Match tiers, best first.
const (
	tierExact = iota
	tierLabelPrefix
	tierIDPrefix
	tierLabelContains
	tierNone
)

func matchTier(item menu.Item, lower string) int {
	label, id := strings.ToLower(item.Label), strings.ToLower(item.ID)
	switch {
	case label == lower || id == lower:
		return tierExact
	case strings.HasPrefix(label, lower):
		return tierLabelPrefix
	case strings.HasPrefix(id, lower):
		return tierIDPrefix
	case strings.Contains(label, lower):
		return tierLabelContains
	}
	return tierNone
}

// BestMatchIndex picks the item the cursor should land on for query: the
// earliest item in the best tier, else the closest fuzzy match, else 0. It
// returns -1 for an empty list.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return 0
	}
	lower := strings.ToLower(query)
	best, bestTier := 0, tierNone
	for i, item := range items {
		if tier := matchTier(item, lower); tier < bestTier {
			best, bestTier = i, tier
		}
	}
	if bestTier != tierNone {
		return best
	}
	best, bestDistance := 0, -1
	for i, item := range items {
		d := fuzzy.RankMatchNormalizedFold(query, searchText(item))
		if d >= 0 && (bestDistance < 0 || d < bestDistance) {
			best, bestDistance = i, d
		}
	}
	return best
}
