package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nguyenvanduocit/duocnv/internal/browser"
	"github.com/nguyenvanduocit/duocnv/internal/konami"
	"github.com/nguyenvanduocit/duocnv/internal/menu"
	"github.com/nguyenvanduocit/duocnv/internal/nav"
	"github.com/nguyenvanduocit/duocnv/internal/profile"
	"github.com/nguyenvanduocit/duocnv/internal/theme"
	"github.com/nguyenvanduocit/duocnv/internal/ui/command"
	uistate "github.com/nguyenvanduocit/duocnv/internal/ui/state"
)

type level = uistate.Level

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []menu.Item) *level {
	return uistate.NewLevel(id, title, items)
}

// Options configures a Model.
type Options struct {
	Width        int
	Height       int
	ShowFooter   bool
	Source       profile.Source
	FetchTimeout time.Duration
	Launcher     browser.Launcher
	// Static disables the spinner and caret blink timers. Used by tests that
	// drive the model synchronously.
	Static bool
}

// Model implements the Bubble Tea model for the business card.
type Model struct {
	loading      bool
	spinner      spinner.Model
	source       profile.Source
	fetchTimeout time.Duration

	profile   profile.Profile
	fallback  bool
	navigator *nav.Navigator
	state     nav.State
	detector  *konami.Detector
	overlay   bool
	levels    map[nav.Screen]*level

	filtering         bool
	filterCursor      cursor.Model
	filterCursorDirty bool

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	static      bool
	quitting    bool

	handlers map[reflect.Type]msgHandler

	registry *menu.Registry
	bus      *command.Bus
	launcher browser.Launcher
	launches launchQueue
}

// NewModel initialises the UI in its loading state.
func NewModel(opts Options) *Model {
	launcher := opts.Launcher
	if launcher == nil {
		launcher = browser.Nop{}
	}
	m := &Model{
		loading:      true,
		source:       opts.Source,
		fetchTimeout: opts.FetchTimeout,
		state:        nav.Initial(),
		levels:       map[nav.Screen]*level{},
		showFooter:   opts.ShowFooter,
		static:       opts.Static,
		registry:     menu.BuildRegistry(),
		bus:          command.New(),
		launcher:     launcher,
	}
	m.detector = konami.NewDetector(m.openOverlay)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(*styles.Loading))
	c := cursor.New()
	c.Style = styles.Cursor.Copy()
	c.TextStyle = styles.Filter.Copy()
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadProfileCmd()}
	if !m.static {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
		reflect.TypeOf(profileLoadedMsg{}):  m.handleProfileLoadedMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if !m.static {
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !m.loading {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	return cmd
}

func (m *Model) openOverlay() {
	m.overlay = true
}

// Loading reports whether the profile is still being fetched.
func (m *Model) Loading() bool {
	return m.loading
}

// State returns the current navigation state.
func (m *Model) State() nav.State {
	return m.state
}

// Profile returns the profile in use. It is the zero value while loading.
func (m *Model) Profile() profile.Profile {
	return m.profile
}

// UsedFallback reports whether the embedded profile replaced the remote one.
func (m *Model) UsedFallback() bool {
	return m.fallback
}

// OverlayVisible reports whether the easter-egg overlay is showing.
func (m *Model) OverlayVisible() bool {
	return m.overlay
}

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}
