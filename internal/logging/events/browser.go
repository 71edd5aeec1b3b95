package events

import "github.com/nguyenvanduocit/duocnv/internal/logging"

type BrowserTracer struct{}

var Browser = BrowserTracer{}

func (BrowserTracer) Open(url, command string) {
	logging.Trace("browser.open", map[string]interface{}{"url": url, "command": command})
}

func (BrowserTracer) Skip(url string) {
	logging.Trace("browser.skip", map[string]interface{}{"url": url})
}

func (BrowserTracer) Error(url string, err error) {
	if err == nil {
		return
	}
	logging.Trace("browser.error", map[string]interface{}{"url": url, "error": err.Error()})
}

func (BrowserTracer) Throttled(url string) {
	logging.Trace("browser.throttled", map[string]interface{}{"url": url})
}
