package events

import "github.com/nguyenvanduocit/duocnv/internal/logging"

type KonamiTracer struct{}

var Konami = KonamiTracer{}

func (KonamiTracer) Push(symbol string, buffered int) {
	logging.Trace("konami.push", map[string]interface{}{"symbol": symbol, "buffered": buffered})
}

func (KonamiTracer) Activate() {
	logging.Trace("konami.activate", nil)
}
