package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nguyenvanduocit/duocnv/internal/logging/events"
)

const (
	filterPromptText      = "/ "
	filterPlaceholderText = "(type to search)"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	if m.static {
		return nil
	}
	return cmd
}

// isFilterText reports whether msg is text typed into an open filter. Such
// keys never reach the konami detector.
func (m *Model) isFilterText(msg tea.KeyMsg) bool {
	return m.filtering && typedText(msg) != ""
}

// typedText returns the printable text carried by msg, if any.
func typedText(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeySpace:
		return " "
	case tea.KeyRunes:
		if msg.Alt {
			return ""
		}
		for _, r := range msg.Runes {
			if !unicode.IsPrint(r) {
				return ""
			}
		}
		return string(msg.Runes)
	}
	return ""
}

func (m *Model) openFilter() tea.Cmd {
	current := m.currentLevel()
	if current == nil || m.filtering {
		return nil
	}
	m.filtering = true
	m.filterCursorDirty = true
	events.Filter.Open(current.ID)
	cmd := m.filterCursor.Focus()
	if m.static {
		return nil
	}
	return cmd
}

func (m *Model) closeFilter() {
	m.filtering = false
	m.filterCursor.Blur()
	current := m.currentLevel()
	if current == nil {
		return
	}
	if current.ClearFilter() {
		events.Filter.Cleared(current.ID)
	}
	m.syncViewport(current)
}

// handleTextInput edits the query of an open filter. Text is only ever added
// or removed at the end; ctrl+w drops a word and ctrl+u the whole query.
// Backspace on an empty query closes the filter.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.currentLevel()
	if current == nil {
		return false, nil
	}
	var op string
	var changed bool
	switch msg.Type {
	case tea.KeyCtrlU:
		op, changed = "clear", current.ClearFilter()
	case tea.KeyCtrlW:
		op, changed = "word", current.TrimFilterWord()
	case tea.KeyBackspace, tea.KeyCtrlH:
		if current.Filter == "" {
			m.closeFilter()
			return true, nil
		}
		op, changed = "backspace", current.TrimFilter()
	default:
		op, changed = "type", current.AppendFilter(typedText(msg))
	}
	if !changed {
		return false, nil
	}
	m.errMsg = ""
	m.filterCursorDirty = true
	events.Filter.Edit(current.ID, op, current.Filter)
	m.syncViewport(current)
	return true, nil
}

// filterPrompt renders the query with the caret after it, or the placeholder
// with the caret on its first rune.
func (m *Model) filterPrompt() string {
	current := m.currentLevel()
	if current == nil {
		return ""
	}
	prompt := styles.FilterPrompt.Render(filterPromptText)
	if current.Filter == "" {
		placeholder := []rune(filterPlaceholderText)
		return prompt + m.caret(string(placeholder[0]), styles.FilterPlaceholder) +
			styles.FilterPlaceholder.Render(string(placeholder[1:]))
	}
	return prompt + styles.Filter.Render(current.Filter) + m.caret(" ", styles.Filter)
}

func (m *Model) caret(char string, text *lipgloss.Style) string {
	m.filterCursor.Style = styles.Cursor.Copy()
	m.filterCursor.TextStyle = text.Copy()
	m.filterCursor.SetChar(char)
	return m.filterCursor.View()
}
