// Package nav is the card's screen state machine. State is a plain value;
// Navigator.Transition computes the next one and performs the only side
// effect the machine has, asking a browser.Launcher to open a URL.
package nav

import (
	"errors"
	"fmt"

	"github.com/nguyenvanduocit/duocnv/internal/browser"
	"github.com/nguyenvanduocit/duocnv/internal/logging/events"
	"github.com/nguyenvanduocit/duocnv/internal/profile"
)

// Screen identifies the view currently shown.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenProjects
	ScreenConnect
	ScreenProjectDetail
	ScreenConnectDetail
)

// Screens lists every screen in declaration order.
var Screens = []Screen{ScreenMain, ScreenProjects, ScreenConnect, ScreenProjectDetail, ScreenConnectDetail}

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenProjects:
		return "projects"
	case ScreenConnect:
		return "connect"
	case ScreenProjectDetail:
		return "project-detail"
	case ScreenConnectDetail:
		return "connect-detail"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// IsMenu reports whether the screen lists selectable items.
func (s Screen) IsMenu() bool {
	return s == ScreenMain || s == ScreenProjects || s == ScreenConnect
}

// Main menu keys.
const (
	KeyProjects = "projects"
	KeyConnect  = "connect"
)

// ErrNotFound is returned when a selection names a key the profile does not
// contain. Menus are built from the same profile, so it signals an internal
// inconsistency rather than user error.
var ErrNotFound = errors.New("not found")

// State is the navigation state. Project points into the loaded profile's
// project slice; URL is a copy of the selected link.
type State struct {
	Screen  Screen
	Project *profile.Project
	LinkKey string
	URL     string
	Quit    bool
}

// Initial is the state at session start.
func Initial() State {
	return State{Screen: ScreenMain}
}

// Valid reports whether the detail screens carry their selection.
func (s State) Valid() bool {
	switch s.Screen {
	case ScreenProjectDetail:
		return s.Project != nil
	case ScreenConnectDetail:
		return s.URL != ""
	case ScreenMain, ScreenProjects, ScreenConnect:
		return true
	default:
		return false
	}
}

type EventKind int

const (
	EventSelect EventKind = iota + 1
	EventEscape
	EventActivate
)

func (k EventKind) String() string {
	switch k {
	case EventSelect:
		return "select"
	case EventEscape:
		return "escape"
	case EventActivate:
		return "activate"
	default:
		return "unknown"
	}
}

// Event is an input to Transition. Key is only meaningful for EventSelect.
type Event struct {
	Kind EventKind
	Key  string
}

func Select(key string) Event { return Event{Kind: EventSelect, Key: key} }

func Escape() Event { return Event{Kind: EventEscape} }

func Activate() Event { return Event{Kind: EventActivate} }

// Navigator applies events to states for one loaded profile.
type Navigator struct {
	profile  *profile.Profile
	launcher browser.Launcher
}

// New returns a navigator over p. A nil launcher opens nothing.
func New(p *profile.Profile, launcher browser.Launcher) *Navigator {
	if launcher == nil {
		launcher = browser.Nop{}
	}
	return &Navigator{profile: p, launcher: launcher}
}

// Profile returns the profile the navigator resolves selections against.
func (n *Navigator) Profile() *profile.Profile {
	return n.profile
}

// Transition returns the state that follows s after ev. Events without a
// meaning on the current screen return s unchanged. A failed lookup returns s
// unchanged together with an error wrapping ErrNotFound.
func (n *Navigator) Transition(s State, ev Event) (State, error) {
	if s.Quit {
		return s, nil
	}
	next, err := n.step(s, ev)
	if err != nil {
		events.Nav.NotFound(s.Screen.String(), ev.Key)
		return s, err
	}
	if next.Quit {
		events.Nav.Quit(s.Screen.String())
	} else if next.Screen != s.Screen {
		events.Nav.Transition(s.Screen.String(), next.Screen.String(), ev.Kind.String(), ev.Key)
	}
	return next, nil
}

func (n *Navigator) step(s State, ev Event) (State, error) {
	switch s.Screen {
	case ScreenMain:
		switch ev.Kind {
		case EventSelect:
			switch ev.Key {
			case KeyProjects:
				return State{Screen: ScreenProjects}, nil
			case KeyConnect:
				return State{Screen: ScreenConnect}, nil
			}
			return s, fmt.Errorf("%w: menu entry %q", ErrNotFound, ev.Key)
		case EventEscape:
			s.Quit = true
			return s, nil
		}
	case ScreenProjects:
		switch ev.Kind {
		case EventSelect:
			project, ok := n.lookupProject(ev.Key)
			if !ok {
				return s, fmt.Errorf("%w: project %q", ErrNotFound, ev.Key)
			}
			return State{Screen: ScreenProjectDetail, Project: project}, nil
		case EventEscape:
			return State{Screen: ScreenMain}, nil
		}
	case ScreenConnect:
		switch ev.Kind {
		case EventSelect:
			url, ok := n.lookupLink(ev.Key)
			if !ok {
				return s, fmt.Errorf("%w: link %q", ErrNotFound, ev.Key)
			}
			n.launcher.Open(url)
			return State{Screen: ScreenConnectDetail, LinkKey: ev.Key, URL: url}, nil
		case EventEscape:
			return State{Screen: ScreenMain}, nil
		}
	case ScreenProjectDetail:
		switch ev.Kind {
		case EventActivate:
			if s.Project != nil {
				n.launcher.Open(s.Project.URL)
			}
			return s, nil
		case EventEscape:
			return State{Screen: ScreenProjects}, nil
		}
	case ScreenConnectDetail:
		if ev.Kind == EventEscape {
			return State{Screen: ScreenConnect}, nil
		}
	}
	return s, nil
}

func (n *Navigator) lookupProject(id string) (*profile.Project, bool) {
	if n.profile == nil {
		return nil, false
	}
	return n.profile.Project(id)
}

func (n *Navigator) lookupLink(key string) (string, bool) {
	if n.profile == nil {
		return "", false
	}
	return n.profile.Link(key)
}
