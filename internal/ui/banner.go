package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/common-nighthawk/go-figure"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nguyenvanduocit/duocnv/internal/format/table"
	"github.com/nguyenvanduocit/duocnv/internal/theme"
)

const bannerFont = "standard"

// bannerRows renders name as figlet art. It returns nil when the name holds
// characters the font cannot draw or the art is wider than width.
func bannerRows(name string, width int) []string {
	name = strings.TrimSpace(name)
	if name == "" || !printableASCII(name) {
		return nil
	}
	rows := figure.NewFigure(name, bannerFont, false).Slicify()
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	widest := 0
	for i, row := range rows {
		rows[i] = strings.TrimRight(row, " ")
		if w := table.CellWidth(rows[i]); w > widest {
			widest = w
		}
	}
	if width > 0 && widest > width {
		return nil
	}
	return rows
}

func printableASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// gradient returns n colors blended evenly across the theme gradient stops.
func gradient(n int) []lipgloss.Color {
	stops := make([]colorful.Color, 0, len(theme.Gradient))
	for _, hex := range theme.Gradient {
		c, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		stops = append(stops, c)
	}
	out := make([]lipgloss.Color, n)
	if len(stops) == 0 {
		return out
	}
	for i := range out {
		if n == 1 || len(stops) == 1 {
			out[i] = lipgloss.Color(stops[0].Hex())
			continue
		}
		pos := float64(i) / float64(n-1) * float64(len(stops)-1)
		seg := int(pos)
		if seg >= len(stops)-1 {
			seg = len(stops) - 2
		}
		blended := stops[seg].BlendLuv(stops[seg+1], pos-float64(seg)).Clamped()
		out[i] = lipgloss.Color(blended.Hex())
	}
	return out
}

// paintGradient colors each column of rows along the gradient, so the art
// shades from left to right.
func paintGradient(rows []string) []string {
	widest := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > widest {
			widest = n
		}
	}
	colors := gradient(widest)
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for col, r := range []rune(row) {
			if r == ' ' {
				b.WriteRune(r)
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(colors[col]).Render(string(r)))
		}
		out[i] = b.String()
	}
	return out
}

// hyperlink wraps text in an OSC 8 sequence pointing at url. Terminals
// without hyperlink support show text unchanged.
func hyperlink(url, text string) string {
	if url == "" {
		return text
	}
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}
