package events

import "github.com/nguyenvanduocit/duocnv/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(screen string) {
	logging.Trace("app.exit", map[string]interface{}{"screen": screen})
}
