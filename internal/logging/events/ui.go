package events

import "github.com/nguyenvanduocit/duocnv/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) MenuEnter(screen, itemID, label, filter string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"screen": screen,
		"item":   itemID,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) MenuCursor(screen string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"screen": screen, "cursor": cursor})
}

func (UITracer) OverlayOpen(screen string) {
	logging.Trace("overlay.open", map[string]interface{}{"screen": screen})
}

func (UITracer) OverlayClose(screen, key string) {
	logging.Trace("overlay.close", map[string]interface{}{"screen": screen, "key": key})
}

func (UITracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("ui.error", map[string]interface{}{"error": err.Error()})
}

func (FilterTracer) Open(screen string) {
	logging.Trace("filter.open", map[string]interface{}{"screen": screen})
}

func (FilterTracer) Cleared(screen string) {
	logging.Trace("filter.clear", map[string]interface{}{"screen": screen})
}

// Edit records a change to the query. op is one of type, backspace, word or
// clear.
func (FilterTracer) Edit(screen, op, filter string) {
	logging.Trace("filter.edit", map[string]interface{}{"screen": screen, "op": op, "filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Done(id, label string) {
	logging.Trace("command.done", map[string]interface{}{"id": id, "label": label})
}
