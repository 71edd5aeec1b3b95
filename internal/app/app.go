package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nguyenvanduocit/duocnv/internal/browser"
	"github.com/nguyenvanduocit/duocnv/internal/logging/events"
	"github.com/nguyenvanduocit/duocnv/internal/profile"
	"github.com/nguyenvanduocit/duocnv/internal/ui"
)

// launchInterval keeps a held enter key from opening a burst of tabs.
const launchInterval = 500 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	ShowFooter   bool
	ProfileURL   string
	ProfileFile  string
	FetchTimeout time.Duration
	NoBrowser    bool
}

// Source picks where the profile comes from. A local file wins over the URL.
func Source(cfg Config) profile.Source {
	if cfg.ProfileFile != "" {
		return profile.FileSource{Path: cfg.ProfileFile}
	}
	url := cfg.ProfileURL
	if url == "" {
		url = profile.DefaultURL
	}
	return profile.HTTPSource{URL: url}
}

// Launcher returns the browser launcher for cfg.
func Launcher(cfg Config) browser.Launcher {
	if cfg.NoBrowser {
		return browser.Nop{}
	}
	return browser.Throttle(browser.NewSystem(), launchInterval)
}

// Options maps cfg onto the UI model options.
func Options(cfg Config) ui.Options {
	return ui.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Source:       Source(cfg),
		FetchTimeout: cfg.FetchTimeout,
		Launcher:     Launcher(cfg),
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := ui.NewModel(Options(cfg))
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	events.App.Exit(model.State().Screen.String())
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
