package browser

import (
	"sync"
	"time"

	"github.com/nguyenvanduocit/duocnv/internal/logging/events"
)

// Throttled lets at most one launch through per interval and drops the rest.
type Throttled struct {
	inner    Launcher
	interval time.Duration
	now      func() time.Time

	mu    sync.Mutex
	ready time.Time
}

// Throttle wraps l. A non-positive interval returns l unchanged.
func Throttle(l Launcher, interval time.Duration) Launcher {
	if interval <= 0 || l == nil {
		return l
	}
	return &Throttled{inner: l, interval: interval, now: time.Now}
}

func (t *Throttled) Open(url string) {
	if !t.admit() {
		events.Browser.Throttled(url)
		return
	}
	t.inner.Open(url)
}

func (t *Throttled) admit() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if now.Before(t.ready) {
		return false
	}
	t.ready = now.Add(t.interval)
	return true
}
