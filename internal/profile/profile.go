// Package profile holds the content shown on the card and the sources it can
// be loaded from. A loaded Profile is treated as read-only for the session.
package profile

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// linkOrder is the display order for well-known link keys. Unknown keys
// follow in lexical order.
var linkOrder = []string{"github", "twitter", "linkedin", "blog", "website"}

// Counter is a display-only statistic such as "13+" or "1.8K". Numeric JSON
// and YAML values are accepted and kept in their literal form.
type Counter string

// UnmarshalJSON accepts both string and number literals.
func (c *Counter) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Counter(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("counter: %w", err)
	}
	*c = Counter(n.String())
	return nil
}

// UnmarshalYAML keeps the scalar text as written.
func (c *Counter) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("counter: expected scalar at line %d", node.Line)
	}
	*c = Counter(node.Value)
	return nil
}

type Stats struct {
	Years   Counter `json:"years" yaml:"years"`
	Commits Counter `json:"commits" yaml:"commits"`
	Repos   Counter `json:"repos" yaml:"repos"`
	Stars   Counter `json:"stars" yaml:"stars"`
}

// Project is one entry of the projects menu. ID is its identity.
type Project struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Description string   `json:"description" yaml:"description"`
	Tech        string   `json:"tech" yaml:"tech"`
	URL         string   `json:"url" yaml:"url" validate:"required,http_url"`
	Stars       *int     `json:"stars,omitempty" yaml:"stars,omitempty" validate:"omitempty,gte=0"`
	Highlights  []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// Profile is everything the card renders.
type Profile struct {
	Name     string            `json:"name" yaml:"name" validate:"required"`
	Tagline  string            `json:"tagline" yaml:"tagline"`
	Quote    string            `json:"quote,omitempty" yaml:"quote,omitempty"`
	Stats    Stats             `json:"stats" yaml:"stats"`
	Bio      []string          `json:"bio" yaml:"bio"`
	Projects []Project         `json:"projects" yaml:"projects" validate:"unique=ID,dive"`
	Now      []string          `json:"now" yaml:"now"`
	Links    map[string]string `json:"links" yaml:"links" validate:"dive,keys,required,endkeys,required,http_url"`
}

// Validate reports schema violations: missing name, project ids that are
// empty or repeated, and project or link URLs that are not absolute http(s)
// URLs. Only validated URLs ever reach the browser launcher.
func (p *Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

// Project returns the project with the given id. The pointer refers to the
// entry inside p.Projects.
func (p *Profile) Project(id string) (*Project, bool) {
	for i := range p.Projects {
		if p.Projects[i].ID == id {
			return &p.Projects[i], true
		}
	}
	return nil, false
}

// Link returns the URL stored under key.
func (p *Profile) Link(key string) (string, bool) {
	url, ok := p.Links[key]
	if !ok || url == "" {
		return "", false
	}
	return url, true
}

// LinkKeys lists link keys in display order.
func (p *Profile) LinkKeys() []string {
	if len(p.Links) == 0 {
		return nil
	}
	keys := make([]string, 0, len(p.Links))
	seen := make(map[string]struct{}, len(linkOrder))
	for _, key := range linkOrder {
		if _, ok := p.Links[key]; ok {
			keys = append(keys, key)
			seen[key] = struct{}{}
		}
	}
	rest := make([]string, 0, len(p.Links)-len(keys))
	for key := range p.Links {
		if _, ok := seen[key]; !ok {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
