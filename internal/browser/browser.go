// Package browser opens URLs in the user's default browser. Launches are
// fire-and-forget: callers never learn whether a browser actually appeared.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/nguyenvanduocit/duocnv/internal/logging/events"
)

// Launcher opens a URL without blocking the caller.
type Launcher interface {
	Open(url string)
}

// Command returns the program and arguments used to open url on goos. None of
// them pass the URL through a shell.
func Command(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// CheckURL rejects anything but an absolute http or https URL.
func CheckURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("refusing to open %q: not an http(s) URL", raw)
	}
	return nil
}

// System launches the platform's URL opener as a detached child process.
type System struct {
	goos  string
	start func(*exec.Cmd) error
}

// NewSystem returns a launcher for the running platform.
func NewSystem() *System {
	return &System{goos: runtime.GOOS, start: startDetached}
}

// Open starts the opener and returns immediately. Failures are traced and
// otherwise dropped.
func (s *System) Open(url string) {
	if strings.TrimSpace(url) == "" {
		return
	}
	if err := CheckURL(url); err != nil {
		events.Browser.Error(url, err)
		return
	}
	name, args := Command(s.goos, url)
	cmd := exec.Command(name, args...)
	if err := s.start(cmd); err != nil {
		events.Browser.Error(url, err)
		return
	}
	events.Browser.Open(url, name)
}

func startDetached(cmd *exec.Cmd) error {
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return err
	}
	// reap so the child does not linger as a zombie
	go func() { _ = cmd.Wait() }()
	return nil
}

// Nop records the request in the trace log and opens nothing.
type Nop struct{}

func (Nop) Open(url string) {
	events.Browser.Skip(url)
}

// Recorder remembers every URL it was asked to open.
type Recorder struct {
	mu   sync.Mutex
	urls []string
}

func (r *Recorder) Open(url string) {
	r.mu.Lock()
	r.urls = append(r.urls, url)
	r.mu.Unlock()
}

// URLs returns the recorded URLs in call order.
func (r *Recorder) URLs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}
