package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/nguyenvanduocit/duocnv/internal/menu"
)

func resize(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: width, Height: height}
}

func visibleWidth(line string) int {
	return ansi.StringWidth(line)
}

func TestBannerRows(t *testing.T) {
	rows := bannerRows("DUOC NV", 0)
	if len(rows) < 3 {
		t.Fatalf("expected figlet rows, got %q", rows)
	}
	for _, row := range rows {
		if row != strings.TrimRight(row, " ") {
			t.Fatalf("expected trailing spaces trimmed, got %q", row)
		}
	}
	if got := bannerRows("Được", 0); got != nil {
		t.Fatalf("expected non-ASCII names to skip the banner, got %q", got)
	}
	if got := bannerRows("DUOC NV", 10); got != nil {
		t.Fatalf("expected banner wider than the viewport to be skipped")
	}
	if got := bannerRows("  ", 0); got != nil {
		t.Fatalf("expected blank name to have no banner")
	}
}

func TestGradientStops(t *testing.T) {
	if got := gradient(1); len(got) != 1 || string(got[0]) != "#00d4ff" {
		t.Fatalf("expected first stop, got %v", got)
	}
	colors := gradient(9)
	if len(colors) != 9 {
		t.Fatalf("expected 9 colors, got %d", len(colors))
	}
	for i, c := range colors {
		if len(c) != 7 || c[0] != '#' {
			t.Fatalf("color %d is not a hex color: %q", i, c)
		}
	}
	if colors[0] == colors[8] {
		t.Fatalf("expected gradient ends to differ")
	}
	if len(gradient(0)) != 0 {
		t.Fatalf("expected no colors for zero width")
	}
}

func TestPaintGradientKeepsText(t *testing.T) {
	rows := []string{"ab c", "de"}
	painted := paintGradient(rows)
	for i, row := range painted {
		if got := ansi.Strip(row); got != rows[i] {
			t.Fatalf("row %d: expected %q, got %q", i, rows[i], got)
		}
	}
}

func TestHyperlink(t *testing.T) {
	link := hyperlink("https://example.com", "example")
	if !strings.Contains(link, "https://example.com") || !strings.Contains(link, "example") {
		t.Fatalf("unexpected hyperlink %q", link)
	}
	if got := ansi.Strip(link); got != "example" {
		t.Fatalf("expected visible text only, got %q", got)
	}
	if got := hyperlink("", "plain"); got != "plain" {
		t.Fatalf("expected plain text without url, got %q", got)
	}
}

func TestItemColumnsAlignHints(t *testing.T) {
	items := []menu.Item{
		{ID: "github", Label: "GitHub", Hint: "@someone"},
		{ID: "twitter", Label: "X (Twitter)", Hint: "@else"},
		{ID: "none", Label: "Bare"},
	}
	cols := itemColumns(items)
	if visibleWidth(cols[0]) != visibleWidth(cols[1]) || visibleWidth(cols[1]) != visibleWidth(cols[2]) {
		t.Fatalf("expected equal label columns, got %q", cols)
	}
	if !strings.HasPrefix(cols[1], "X (Twitter)") {
		t.Fatalf("unexpected column %q", cols[1])
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("hello world", 6); got != "hello…" {
		t.Fatalf("expected truncated text, got %q", got)
	}
	if got := truncateText("short", 10); got != "short" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := truncateText("日本語", 4); visibleWidth(got) > 4 {
		t.Fatalf("expected wide runes to respect width, got %q", got)
	}
}

func TestLimitHeight(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}}
	got := limitHeight(lines, 2, 0)
	if len(got) != 2 || got[1].text != "…" {
		t.Fatalf("unexpected limited lines %#v", got)
	}
	if got := limitHeight(lines, 0, 0); len(got) != 3 {
		t.Fatalf("expected no limit for zero height")
	}
}
