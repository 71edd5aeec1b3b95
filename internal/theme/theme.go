package theme

import "github.com/charmbracelet/lipgloss"

// Gradient lists the color stops blended across the banner.
var Gradient = []string{"#00d4ff", "#7c3aed", "#f472b6"}

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading           *lipgloss.Style
	Tagline           *lipgloss.Style
	Quote             *lipgloss.Style
	StatValue         *lipgloss.Style
	StatLabel         *lipgloss.Style
	Rule              *lipgloss.Style
	Greeting          *lipgloss.Style
	Body              *lipgloss.Style
	Arrow             *lipgloss.Style
	Link              *lipgloss.Style
	MenuTitle         *lipgloss.Style
	Item              *lipgloss.Style
	ItemIndicator     *lipgloss.Style
	SelectedItem      *lipgloss.Style
	Hint              *lipgloss.Style
	DetailTitle       *lipgloss.Style
	Highlight         *lipgloss.Style
	Success           *lipgloss.Style
	EasterEgg         *lipgloss.Style
	Error             *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Italic(true),
	),
	Tagline: ptr(
		lipgloss.NewStyle().Faint(true),
	),
	Quote: ptr(
		lipgloss.NewStyle().Faint(true).Italic(true),
	),
	StatValue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	),
	StatLabel: ptr(
		lipgloss.NewStyle().Faint(true),
	),
	Rule: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Greeting: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	Body: ptr(
		lipgloss.NewStyle().Faint(true),
	),
	Arrow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	),
	Link: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	),
	MenuTitle: ptr(
		lipgloss.NewStyle().Faint(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	),
	Hint: ptr(
		lipgloss.NewStyle().Faint(true),
	),
	DetailTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	),
	Highlight: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	),
	EasterEgg: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Faint(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("51")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
