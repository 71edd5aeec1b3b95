package menu

import (
	"errors"
	"net/url"
	"strings"
	"unicode"

	"github.com/nguyenvanduocit/duocnv/internal/nav"
	"github.com/nguyenvanduocit/duocnv/internal/profile"
)

// Item represents a selectable menu entry. ID is the key handed to the
// navigator when the item is chosen.
type Item struct {
	ID    string
	Label string
	Hint  string
}

// Context carries runtime data needed by loader functions.
type Context struct {
	Profile *profile.Profile
}

// Loader populates a menu on demand.
type Loader func(Context) ([]Item, error)

var ErrNoProfile = errors.New("profile not loaded")

var linkLabels = map[string]string{
	"github":   "GitHub",
	"twitter":  "X (Twitter)",
	"x":        "X",
	"linkedin": "LinkedIn",
	"blog":     "Blog",
	"website":  "Website",
}

// handleHosts show a single path segment as @handle.
var handleHosts = map[string]struct{}{
	"github.com":  {},
	"x.com":       {},
	"twitter.com": {},
}

// MainItems returns the top-level menu entries.
func MainItems() []Item {
	return []Item{
		{ID: nav.KeyProjects, Label: "View projects", Hint: "Things I've built"},
		{ID: nav.KeyConnect, Label: "Connect with me", Hint: "Social links"},
	}
}

// ProjectItems lists projects in profile order.
func ProjectItems(p *profile.Profile) []Item {
	if p == nil {
		return nil
	}
	items := make([]Item, 0, len(p.Projects))
	for _, project := range p.Projects {
		items = append(items, Item{ID: project.ID, Label: project.Title, Hint: project.Description})
	}
	return items
}

// LinkItems lists links in the profile's display order.
func LinkItems(p *profile.Profile) []Item {
	if p == nil {
		return nil
	}
	keys := p.LinkKeys()
	items := make([]Item, 0, len(keys))
	for _, key := range keys {
		items = append(items, Item{ID: key, Label: LinkLabel(key), Hint: LinkHint(p.Links[key])})
	}
	return items
}

// LinkLabel returns the display name for a link key.
func LinkLabel(key string) string {
	if label, ok := linkLabels[strings.ToLower(key)]; ok {
		return label
	}
	return prettyLabel(key)
}

// LinkHint shortens a URL for display: social handles become "@name",
// LinkedIn profiles "/in/name", anything else host plus path.
func LinkHint(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	path := strings.Trim(u.Path, "/")
	if _, ok := handleHosts[host]; ok && path != "" && !strings.Contains(path, "/") {
		return "@" + path
	}
	if host == "linkedin.com" && strings.HasPrefix(path, "in/") {
		return "/" + path
	}
	if path == "" {
		return host
	}
	return host + "/" + path
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
