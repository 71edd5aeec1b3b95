package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/nguyenvanduocit/duocnv/internal/format/table"
	"github.com/nguyenvanduocit/duocnv/internal/menu"
	"github.com/nguyenvanduocit/duocnv/internal/nav"
	"github.com/nguyenvanduocit/duocnv/internal/profile"
)

const (
	ruleWidth      = 65
	infoLifetime   = 5 * time.Second
	chromeRows     = 8 // menu title, filter prompt, status, footer and spacing
	overlayMessage = "KONAMI CODE ACTIVATED!\n\n" +
		"You found the secret!\n\n" +
		"Fun fact: I've been coding since\n" +
		"2011 and still use \"console.log\"\n" +
		"for debugging. Some things never\n" +
		"change.\n\n" +
		"Thanks for exploring my card!"
)

// quickLinks are shown in the header when the profile defines them.
var quickLinks = []string{"github", "twitter", "blog"}

var footerHints = map[nav.Screen]string{
	nav.ScreenMain:          "↑/↓ to select · Enter to confirm · / to filter · Esc to exit",
	nav.ScreenProjects:      "↑/↓ to select · Enter to confirm · / to filter · Esc to back",
	nav.ScreenConnect:       "↑/↓ to select · Enter to open in browser · / to filter · Esc to back",
	nav.ScreenProjectDetail: "Enter to open in browser · Esc to back",
	nav.ScreenConnectDetail: "Esc to back",
}

const (
	filterHint  = "Type to filter · ↑/↓ to select · Enter to confirm · Esc to clear"
	overlayHint = "Press any key to continue"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

func blank() styledLine {
	return styledLine{}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.loading {
		lines := []styledLine{
			blank(),
			{text: " " + m.spinner.View() + " " + styles.Loading.Render("Loading profile…"), raw: true},
		}
		return renderLines(applyWidth(lines, m.width))
	}

	body := m.bodyLines()
	bottom := m.bottomLines()
	header := m.headerLines(false)
	if m.height > 0 && len(header)+len(body)+len(bottom) > m.height {
		header = m.headerLines(true)
	}
	if m.height > 0 && len(header)+len(body)+len(bottom) > m.height {
		header = nil
	}

	lines := make([]styledLine, 0, len(header)+len(body)+len(bottom))
	lines = append(lines, header...)
	lines = append(lines, body...)
	lines = limitHeight(lines, m.height-len(bottom), m.width)
	lines = append(lines, bottom...)
	return renderLines(applyWidth(lines, m.width))
}

// headerLines renders the card header. The compact form keeps only the name,
// tagline, and stats so menus stay visible on short terminals.
func (m *Model) headerLines(compact bool) []styledLine {
	p := &m.profile
	lines := make([]styledLine, 0, 32)
	lines = append(lines, blank())

	var banner []string
	if !compact {
		banner = bannerRows(p.Name, m.width)
	}
	if len(banner) > 0 {
		for _, row := range paintGradient(banner) {
			lines = append(lines, styledLine{text: row, raw: true})
		}
	} else {
		name := gradient(1)[0]
		lines = append(lines, styledLine{
			text: " " + lipgloss.NewStyle().Bold(true).Foreground(name).Render(p.Name),
			raw:  true,
		})
	}
	if p.Tagline != "" {
		lines = append(lines, styledLine{text: " " + p.Tagline, style: styles.Tagline})
	}
	if stats := statsLine(p.Stats); stats != "" {
		lines = append(lines, blank(), styledLine{text: stats, raw: true})
	}
	if compact {
		return append(lines, blank())
	}

	wrap := m.wrapWidth()
	if p.Quote != "" {
		lines = append(lines, blank())
		for _, line := range wrapText(fmt.Sprintf("%q", p.Quote), wrap) {
			lines = append(lines, styledLine{text: " " + line, style: styles.Quote})
		}
	}
	lines = append(lines, blank(), styledLine{text: " " + strings.Repeat("─", ruleWidth), style: styles.Rule}, blank())
	for i, bio := range p.Bio {
		style := styles.Body
		if i == 0 {
			style = styles.Greeting
		}
		if strings.TrimSpace(bio) == "" {
			lines = append(lines, blank())
			continue
		}
		for _, line := range wrapText(bio, wrap) {
			lines = append(lines, styledLine{text: " " + line, style: style})
		}
	}
	if len(p.Now) > 0 {
		lines = append(lines, blank())
		for _, now := range p.Now {
			for _, line := range wrapText(now, wrap) {
				lines = append(lines, styledLine{text: " " + line, style: styles.Body})
			}
		}
	}
	if links := m.quickLinkLines(); len(links) > 0 {
		lines = append(lines, blank())
		lines = append(lines, links...)
	}
	return append(lines, blank())
}

func statsLine(s profile.Stats) string {
	type stat struct {
		value profile.Counter
		label string
	}
	stats := []stat{
		{s.Years, "years coding"},
		{s.Commits, "commits"},
		{s.Repos, "repositories"},
		{s.Stars, "GitHub stars"},
	}
	parts := make([]string, 0, len(stats))
	for _, st := range stats {
		if st.value == "" {
			continue
		}
		parts = append(parts, styles.StatValue.Render(string(st.value))+" "+styles.StatLabel.Render(st.label))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, styles.StatLabel.Render(" • "))
}

func (m *Model) quickLinkLines() []styledLine {
	lines := make([]styledLine, 0, len(quickLinks))
	for _, key := range quickLinks {
		url, ok := m.profile.Link(key)
		if !ok {
			continue
		}
		text := " " + styles.Arrow.Render("→") + " " +
			styles.Body.Render(menu.LinkLabel(key)+":") + " " +
			styles.Link.Render(hyperlink(url, menu.LinkHint(url)))
		lines = append(lines, styledLine{text: text, raw: true})
	}
	return lines
}

func (m *Model) wrapWidth() int {
	if m.width <= 2 {
		return 0
	}
	return m.width - 2
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	return strings.Split(wordwrap.String(text, width), "\n")
}

func (m *Model) bodyLines() []styledLine {
	if m.overlay {
		return overlayLines()
	}
	switch m.state.Screen {
	case nav.ScreenProjectDetail:
		return m.projectDetailLines()
	case nav.ScreenConnectDetail:
		return m.connectDetailLines()
	}
	return m.menuLines()
}

func overlayLines() []styledLine {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.EasterEgg.GetForeground()).
		Padding(1, 3).
		Inherit(*styles.EasterEgg).
		Render(overlayMessage)
	rows := strings.Split(box, "\n")
	lines := make([]styledLine, 0, len(rows)+1)
	for _, row := range rows {
		lines = append(lines, styledLine{text: "  " + row, raw: true})
	}
	return append(lines, blank())
}

func (m *Model) menuLines() []styledLine {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	lines := make([]styledLine, 0, len(current.Items)+3)
	if current.Title != "" {
		lines = append(lines, styledLine{text: " " + current.Title, style: styles.MenuTitle}, blank())
	}
	if len(current.Items) == 0 {
		msg := "(no entries)"
		if current.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", current.Filter)
		}
		return append(lines, styledLine{text: " " + msg, style: styles.Hint})
	}
	m.syncViewport(current)
	start := 0
	display := current.Items
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(display) > maxItems {
		start = current.ViewportOffset
		if start+maxItems > len(display) {
			start = len(display) - maxItems
			current.ViewportOffset = start
		}
		display = display[start : start+maxItems]
	}
	for i, row := range itemColumns(display) {
		lines = append(lines, buildItemLine(display[i], row, start+i == current.Cursor))
	}
	return lines
}

// itemColumns aligns item labels so hints line up in one column. Each entry
// is the padded label including the column gap.
func itemColumns(items []menu.Item) []string {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{item.Label, item.Hint}
	}
	formatted := table.Format(rows, nil)
	out := make([]string, len(formatted))
	for i, line := range formatted {
		out[i] = strings.TrimSuffix(line, items[i].Hint)
	}
	return out
}

func buildItemLine(item menu.Item, label string, selected bool) styledLine {
	indicator := "  "
	labelStyle := styles.Item
	if selected {
		indicator = styles.ItemIndicator.Render("❯ ")
		labelStyle = styles.SelectedItem
	}
	text := " " + indicator + labelStyle.Render(label)
	if item.Hint != "" {
		text += styles.Hint.Render("· " + item.Hint)
	}
	return styledLine{text: text, raw: true}
}

func (m *Model) projectDetailLines() []styledLine {
	project := m.state.Project
	if project == nil {
		return nil
	}
	lines := []styledLine{{text: " " + project.Title, style: styles.DetailTitle}, blank()}
	if project.Description != "" {
		for _, line := range wrapText(project.Description, m.wrapWidth()) {
			lines = append(lines, styledLine{text: " " + line, style: styles.Body})
		}
		lines = append(lines, blank())
	}
	for _, highlight := range project.Highlights {
		lines = append(lines, styledLine{
			text: " • " + styles.Highlight.Render(highlight),
			raw:  true,
		})
	}
	if len(project.Highlights) > 0 {
		lines = append(lines, blank())
	}
	meta := make([]string, 0, 2)
	if project.Tech != "" {
		meta = append(meta, project.Tech)
	}
	if project.Stars != nil {
		meta = append(meta, fmt.Sprintf("★ %d", *project.Stars))
	}
	if len(meta) > 0 {
		lines = append(lines, styledLine{text: " " + strings.Join(meta, " · "), style: styles.Body}, blank())
	}
	lines = append(lines, styledLine{
		text: " " + styles.Arrow.Render("→") + " " + styles.Link.Render(hyperlink(project.URL, project.URL)),
		raw:  true,
	})
	return lines
}

func (m *Model) connectDetailLines() []styledLine {
	url := m.state.URL
	return []styledLine{
		{text: " ✓ Opened in browser!", style: styles.Success},
		blank(),
		{text: " " + styles.Link.Render(hyperlink(url, url)), raw: true},
	}
}

func (m *Model) bottomLines() []styledLine {
	lines := make([]styledLine, 0, 5)
	if m.filtering && !m.overlay {
		lines = append(lines, blank(), styledLine{text: " " + m.filterPrompt(), raw: true})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, blank(), styledLine{text: " " + info, style: styles.Hint})
	}
	if m.errMsg != "" {
		lines = append(lines, blank(), styledLine{text: " Error: " + m.errMsg, style: styles.Error})
	}
	if m.showFooter {
		lines = append(lines, blank(), styledLine{text: " " + m.footerHint(), style: styles.Footer})
	}
	return lines
}

func (m *Model) footerHint() string {
	switch {
	case m.overlay:
		return overlayHint
	case m.filtering:
		return filterHint
	}
	return footerHints[m.state.Screen]
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	remain := m.height - chromeRows
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if ansi.StringWidth(text) > width {
				text = ansi.Truncate(text, width, "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return runewidth.Truncate(text, 1, "")
	}
	return runewidth.Truncate(text, width, "…")
}
