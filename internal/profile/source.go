package profile

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/nguyenvanduocit/duocnv/internal/logging/events"
	"gopkg.in/yaml.v3"
)

// DefaultURL is the remote profile document fetched at startup.
const DefaultURL = "https://raw.githubusercontent.com/nguyenvanduocit/duocnv/main/profile.json"

const maxDocumentSize = 1 << 20

// Source fetches a profile document. Implementations report every failure;
// Load decides what to do with it.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (Profile, error)
}

// Result is the outcome of Load. Err carries the reason a fallback happened
// and is informational only.
type Result struct {
	Profile  Profile
	Source   string
	Fallback bool
	Err      error
}

// Load fetches the profile once. Any failure, including a document that does
// not validate, yields Default instead. It never retries.
func Load(ctx context.Context, src Source) Result {
	if src == nil {
		return Result{Profile: Default(), Source: "default", Fallback: true}
	}
	name := src.Name()
	events.Profile.Fetch(name)
	p, err := src.Fetch(ctx)
	if err == nil {
		err = p.Validate()
	}
	if err != nil {
		events.Profile.Fallback(name, err)
		return Result{Profile: Default(), Source: name, Fallback: true, Err: err}
	}
	events.Profile.Loaded(name, p.Name, len(p.Projects))
	return Result{Profile: p, Source: name}
}

// HTTPSource performs a single unauthenticated GET. A nil Client uses
// http.DefaultClient, which has no timeout; callers bound the request through
// ctx when they want one.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Name() string {
	return s.URL
}

func (s HTTPSource) Fetch(ctx context.Context) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return Profile{}, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Profile{}, fmt.Errorf("fetch profile: unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	return Decode(data)
}

// FileSource reads a local YAML or JSON profile document.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	return "file:" + s.Path
}

func (s FileSource) Fetch(ctx context.Context) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile file: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile file %s: %w", s.Path, err)
	}
	return p, nil
}
