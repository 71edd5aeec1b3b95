package events

import "github.com/nguyenvanduocit/duocnv/internal/logging"

type ProfileTracer struct{}

var Profile = ProfileTracer{}

func (ProfileTracer) Fetch(source string) {
	logging.Trace("profile.fetch", map[string]interface{}{"source": source})
}

func (ProfileTracer) Loaded(source, name string, projects int) {
	logging.Trace("profile.loaded", map[string]interface{}{
		"source":   source,
		"name":     name,
		"projects": projects,
	})
}

// Fallback records why the embedded default replaced the fetched profile.
func (ProfileTracer) Fallback(source string, err error) {
	payload := map[string]interface{}{"source": source}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("profile.fallback", payload)
}
