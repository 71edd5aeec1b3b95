package events

import "github.com/nguyenvanduocit/duocnv/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Transition(from, to, event, key string) {
	logging.Trace("nav.transition", map[string]interface{}{
		"from":  from,
		"to":    to,
		"event": event,
		"key":   key,
	})
}

func (NavTracer) NotFound(screen, key string) {
	logging.Trace("nav.not-found", map[string]interface{}{"screen": screen, "key": key})
}

func (NavTracer) Quit(screen string) {
	logging.Trace("nav.quit", map[string]interface{}{"screen": screen})
}
