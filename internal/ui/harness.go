package ui

import tea "github.com/charmbracelet/bubbletea"

// maxHarnessSteps bounds command chains so a self-rescheduling command cannot
// hang a test.
const maxHarnessSteps = 256

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Start runs the model's Init command, which loads the profile.
func (h *Harness) Start() {
	if h.model == nil {
		return
	}
	h.processCmd(h.model.Init(), 0)
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.deliver(msg, 0)
}

// Keys sends one key message per name. Single characters are sent as runes.
func (h *Harness) Keys(names ...string) {
	for _, name := range names {
		h.Send(KeyMsg(name))
	}
}

func (h *Harness) deliver(msg tea.Msg, depth int) {
	if _, ok := msg.(tea.QuitMsg); ok {
		h.quit = true
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, cmd := range batch {
			h.processCmd(cmd, depth+1)
		}
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd, depth+1)
}

func (h *Harness) processCmd(cmd tea.Cmd, depth int) {
	if cmd == nil || depth > maxHarnessSteps {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	h.deliver(msg, depth)
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

// Quit reports whether a tea.Quit command has been observed.
func (h *Harness) Quit() bool {
	return h.quit
}

// KeyMsg builds the key message Bubble Tea delivers for name.
func KeyMsg(name string) tea.KeyMsg {
	switch name {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
