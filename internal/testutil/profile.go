// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nguyenvanduocit/duocnv/internal/profile"
)

// Profile returns a small, valid profile with predictable ids and links.
func Profile() profile.Profile {
	stars := 42
	return profile.Profile{
		Name:    "Test Person",
		Tagline: "Builder of small things",
		Stats: profile.Stats{
			Years:   "7+",
			Commits: "2K",
			Repos:   "64",
			Stars:   "300",
		},
		Bio: []string{"First bio line", "Second bio line"},
		Projects: []profile.Project{
			{
				ID:          "duocnv",
				Title:       "duocnv",
				Description: "This very card",
				Tech:        "Go",
				URL:         "https://example.com/card",
				Stars:       &stars,
				Highlights:  []string{"Runs in a terminal"},
			},
			{
				ID:          "other",
				Title:       "Other Project",
				Description: "Something else",
				Tech:        "Rust",
				URL:         "https://example.com/other",
			},
		},
		Now: []string{"Writing tests"},
		Links: map[string]string{
			"github": "https://example.com/x",
			"blog":   "https://example.com/blog",
		},
	}
}

// ProfileJSON encodes p for use as a response body.
func ProfileJSON(t *testing.T, p profile.Profile) []byte {
	t.Helper()
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("encode profile: %v", err)
	}
	return data
}

// ServeProfile starts a server that answers every request with status and
// body. It is closed when the test ends.
func ServeProfile(t *testing.T, status int, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}
