package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/nguyenvanduocit/duocnv/internal/app"
	"github.com/nguyenvanduocit/duocnv/internal/config"
	"github.com/nguyenvanduocit/duocnv/internal/logging"
	"github.com/nguyenvanduocit/duocnv/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload describes the invocation for the trace log.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"source": app.Source(cfg.App).Name(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	payload["terminal"] = probeTerminal(map[string]int{
		"stdin":  int(os.Stdin.Fd()),
		"stdout": int(os.Stdout.Fd()),
	})
	return payload
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminal reports terminal support and size for each named descriptor,
// ordered by name.
func probeTerminal(fds map[string]int) []terminalProbe {
	names := make([]string, 0, len(fds))
	for name := range fds {
		names = append(names, name)
	}
	sort.Strings(names)

	probes := make([]terminalProbe, 0, len(names))
	for _, name := range names {
		fd := fds[name]
		probe := terminalProbe{Name: name}
		if fd >= 0 && term.IsTerminal(fd) {
			probe.IsTerminal = true
			if w, h, err := term.GetSize(fd); err == nil {
				probe.Width, probe.Height = w, h
			} else {
				probe.Error = err.Error()
			}
		}
		probes = append(probes, probe)
	}
	return probes
}
