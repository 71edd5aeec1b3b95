package command

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nguyenvanduocit/duocnv/internal/logging"
	"github.com/nguyenvanduocit/duocnv/internal/logging/events"
)

// Request encapsulates a side effect the UI wants performed off the event loop.
type Request struct {
	ID    string
	Label string
	Run   func() error
}

// Result is delivered back to the model once a request has run.
type Result struct {
	ID    string
	Label string
	Err   error
}

// Bus coordinates the execution of queued side effects.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		err := req.Run()
		if err != nil {
			logging.Error(err)
		}
		events.Command.Done(req.ID, req.Label)
		return Result{ID: req.ID, Label: req.Label, Err: err}
	}
}
