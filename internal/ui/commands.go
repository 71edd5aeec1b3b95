package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nguyenvanduocit/duocnv/internal/logging/events"
	"github.com/nguyenvanduocit/duocnv/internal/menu"
	"github.com/nguyenvanduocit/duocnv/internal/nav"
	"github.com/nguyenvanduocit/duocnv/internal/profile"
	"github.com/nguyenvanduocit/duocnv/internal/ui/command"
)

const launchCommandID = "browser:open"

// profileLoadedMsg carries the outcome of the startup fetch.
type profileLoadedMsg struct {
	result profile.Result
}

func (m *Model) loadProfileCmd() tea.Cmd {
	src := m.source
	timeout := m.fetchTimeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return profileLoadedMsg{result: profile.Load(ctx, src)}
	}
}

func (m *Model) handleProfileLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(profileLoadedMsg)
	if !ok || !m.loading {
		return nil
	}
	m.loading = false
	m.profile = loaded.result.Profile
	m.fallback = loaded.result.Fallback
	m.navigator = nav.New(&m.profile, &m.launches)
	m.state = nav.Initial()
	m.buildLevels()
	return nil
}

func (m *Model) buildLevels() {
	ctx := m.menuContext()
	m.levels = make(map[nav.Screen]*level, 3)
	for _, screen := range nav.Screens {
		if !screen.IsMenu() {
			continue
		}
		items, err := m.registry.Load(screen, ctx)
		if err != nil {
			events.UI.Error(err)
			m.errMsg = err.Error()
		}
		lvl := newLevel(screen.String(), m.registry.Title(screen), items)
		m.syncViewport(lvl)
		m.levels[screen] = lvl
	}
}

func (m *Model) menuContext() menu.Context {
	if m.navigator == nil {
		return menu.Context{}
	}
	return menu.Context{Profile: &m.profile}
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		events.UI.Error(result.Err)
	}
	return nil
}

// launchQueue collects URLs the navigator asks to open during a transition.
// The model drains it into bus commands once the transition returns.
type launchQueue struct {
	urls []string
}

func (q *launchQueue) Open(url string) {
	q.urls = append(q.urls, url)
}

func (q *launchQueue) drain() []string {
	urls := q.urls
	q.urls = nil
	return urls
}

func (m *Model) drainLaunches() tea.Cmd {
	urls := m.launches.drain()
	if len(urls) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(urls))
	for _, url := range urls {
		target := url
		cmds = append(cmds, m.bus.Execute(command.Request{
			ID:    launchCommandID,
			Label: target,
			Run: func() error {
				m.launcher.Open(target)
				return nil
			},
		}))
	}
	return tea.Batch(cmds...)
}
