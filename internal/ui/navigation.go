package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nguyenvanduocit/duocnv/internal/logging/events"
	"github.com/nguyenvanduocit/duocnv/internal/nav"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	key := keyMsg.String()
	if key == "ctrl+c" {
		return m.quit()
	}
	if m.loading {
		return nil
	}
	if m.overlay {
		m.overlay = false
		events.UI.OverlayClose(m.state.Screen.String(), key)
		return nil
	}
	if !m.isFilterText(keyMsg) && m.detector.PushKey(key) {
		events.UI.OverlayOpen(m.state.Screen.String())
		return nil
	}
	if m.filtering {
		if handled, cmd := m.handleTextInput(keyMsg); handled {
			return cmd
		}
	}
	switch key {
	case "q":
		return m.quit()
	case "/":
		return m.openFilter()
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up", "k":
		m.moveCursorUp()
	case "down", "j":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home", "g":
		m.moveCursorHome()
	case "end", "G":
		m.moveCursorEnd()
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

func (m *Model) handleEscapeKey() tea.Cmd {
	if m.filtering {
		m.closeFilter()
		return nil
	}
	return m.apply(nav.Escape())
}

func (m *Model) handleEnterKey() tea.Cmd {
	if !m.state.Screen.IsMenu() {
		if m.state.Project != nil {
			m.setInfo("Opening " + m.state.Project.URL)
		}
		return m.apply(nav.Activate())
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok {
		return nil
	}
	events.UI.MenuEnter(current.ID, item.ID, item.Label, current.Filter)
	if m.filtering {
		m.closeFilter()
		if idx := current.IndexOf(item.ID); idx >= 0 {
			current.Cursor = idx
			m.syncViewport(current)
		}
	}
	return m.apply(nav.Select(item.ID))
}

// apply runs ev through the navigator and schedules any browser launches it
// requested. A failed lookup leaves the screen as it was and surfaces the
// error on the status line.
func (m *Model) apply(ev nav.Event) tea.Cmd {
	if m.navigator == nil {
		return nil
	}
	prev := m.state
	next, err := m.navigator.Transition(m.state, ev)
	launches := m.drainLaunches()
	if err != nil {
		m.errMsg = err.Error()
		events.UI.Error(err)
		return launches
	}
	m.errMsg = ""
	m.state = next
	if next.Quit {
		return tea.Batch(launches, m.quit())
	}
	if next.Screen != prev.Screen {
		m.filtering = false
		m.filterCursor.Blur()
		m.forceClearInfo()
		if current := m.currentLevel(); current != nil {
			m.syncViewport(current)
		}
	}
	return launches
}

func (m *Model) currentLevel() *level {
	if m.loading {
		return nil
	}
	return m.levels[m.state.Screen]
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorUp() {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorDown() {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageUp(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageDown(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorHome(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorEnd(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}
