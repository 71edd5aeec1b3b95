package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nguyenvanduocit/duocnv/internal/nav"
)

func TestSlashOpensFilterAndRunesAppend(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("enter", "/")
	m := h.Model()
	if !m.filtering {
		t.Fatalf("expected filter to open")
	}
	if prompt := m.filterPrompt(); !strings.Contains(prompt, "type to search") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
	h.Keys("e", "l", "s", "e")
	current := m.currentLevel()
	if current.Filter != "else" {
		t.Fatalf("unexpected filter %q", current.Filter)
	}
	if len(current.Items) != 1 || current.Items[0].ID != "other" {
		t.Fatalf("expected only other project, got %#v", current.Items)
	}
	if !strings.Contains(h.View(), "/ else") {
		t.Fatalf("expected filter text in view")
	}
}

func TestFilterEnterSelectsMatchAndClears(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("enter", "/", "e", "l", "s", "e", "enter")
	m := h.Model()
	state := m.State()
	if state.Screen != nav.ScreenProjectDetail || state.Project == nil || state.Project.ID != "other" {
		t.Fatalf("expected other project detail, got %#v", state)
	}
	if m.filtering {
		t.Fatalf("expected filter closed after selection")
	}
	h.Keys("esc")
	current := m.currentLevel()
	if current.Filter != "" || len(current.Items) != 2 {
		t.Fatalf("expected unfiltered list on return, got %q %#v", current.Filter, current.Items)
	}
	if current.Cursor != 1 {
		t.Fatalf("expected cursor on the selected project, got %d", current.Cursor)
	}
}

func TestEscapeClosesFilterBeforeNavigating(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("enter", "/", "z", "esc")
	m := h.Model()
	if m.filtering || m.currentLevel().Filter != "" {
		t.Fatalf("expected filter cleared and closed")
	}
	if got := m.State().Screen; got != nav.ScreenProjects {
		t.Fatalf("expected to stay on projects, got %v", got)
	}
}

func TestFilterTypingQDoesNotQuit(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("/", "q")
	if h.Quit() {
		t.Fatalf("q typed into the filter must not quit")
	}
	if got := h.Model().currentLevel().Filter; got != "q" {
		t.Fatalf("expected q in filter, got %q", got)
	}
}

func TestBackspaceOnEmptyFilterCloses(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("/", "c", "backspace")
	m := h.Model()
	if !m.filtering || m.currentLevel().Filter != "" {
		t.Fatalf("expected rune removed with filter still open")
	}
	h.Keys("backspace")
	if m.filtering {
		t.Fatalf("expected backspace on empty filter to close it")
	}
}

func TestFilterEditingKeys(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("/")
	m := h.Model()
	current := m.currentLevel()
	current.SetFilter("abc def")

	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlW}); !handled || current.Filter != "abc " {
		t.Fatalf("expected ctrl+w to drop the last word, got %q", current.Filter)
	}
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}); handled {
		t.Fatalf("expected left arrow to be left to navigation")
	}
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}); !handled || current.Filter != "" {
		t.Fatalf("expected ctrl+u to clear the filter, got %q", current.Filter)
	}
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}); handled {
		t.Fatalf("expected ctrl+u on an empty filter to do nothing")
	}
	if !m.filtering {
		t.Fatalf("expected filter to stay open")
	}
}

func TestFilterIgnoresAltRunes(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("/")
	m := h.Model()
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}); handled {
		t.Fatalf("expected alt+x not to be typed into the filter")
	}
	if m.currentLevel().Filter != "" {
		t.Fatalf("expected empty filter, got %q", m.currentLevel().Filter)
	}
}

func TestSlashIgnoredOnDetailScreens(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("enter", "enter", "/")
	if h.Model().filtering {
		t.Fatalf("expected no filter on a detail screen")
	}
}
