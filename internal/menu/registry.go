package menu

import (
	"fmt"

	"github.com/nguyenvanduocit/duocnv/internal/nav"
)

// Registry maps menu screens to the loaders that populate them.
type Registry struct {
	loaders map[nav.Screen]Loader
	titles  map[nav.Screen]string
}

// BuildRegistry constructs the registry for every menu screen.
func BuildRegistry() *Registry {
	return &Registry{
		loaders: map[nav.Screen]Loader{
			nav.ScreenMain:     loadMainMenu,
			nav.ScreenProjects: loadProjectsMenu,
			nav.ScreenConnect:  loadConnectMenu,
		},
		titles: map[nav.Screen]string{
			nav.ScreenProjects: "Projects",
			nav.ScreenConnect:  "Connect",
		},
	}
}

// Find returns the loader registered for screen.
func (r *Registry) Find(screen nav.Screen) (Loader, bool) {
	loader, ok := r.loaders[screen]
	return loader, ok
}

// Title returns the heading shown above a menu. The main menu has none.
func (r *Registry) Title(screen nav.Screen) string {
	return r.titles[screen]
}

// Load runs the loader for screen.
func (r *Registry) Load(screen nav.Screen, ctx Context) ([]Item, error) {
	loader, ok := r.Find(screen)
	if !ok {
		return nil, fmt.Errorf("no menu for screen %s", screen)
	}
	return loader(ctx)
}

func loadMainMenu(Context) ([]Item, error) {
	return MainItems(), nil
}

func loadProjectsMenu(ctx Context) ([]Item, error) {
	if ctx.Profile == nil {
		return nil, ErrNoProfile
	}
	return ProjectItems(ctx.Profile), nil
}

func loadConnectMenu(ctx Context) ([]Item, error) {
	if ctx.Profile == nil {
		return nil, ErrNoProfile
	}
	return LinkItems(ctx.Profile), nil
}
