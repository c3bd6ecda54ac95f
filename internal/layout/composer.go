// Package layout assembles the page chrome: header, optional sidebar,
// content slot, and optional footer, as dictated by the route classifier.
package layout

import (
	"sync"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/yashdubey2004/AI-law/internal/appctx"
	"github.com/yashdubey2004/AI-law/internal/routing"
)

// Composer owns the sidebar overlay state for one mounted layout. All other
// inputs to Compose are derived from the path, so rendering the same path
// twice yields byte-identical output.
type Composer struct {
	mu       sync.Mutex
	open     bool
	lastPath string
	app      *appctx.Context
}

func NewComposer(app *appctx.Context) *Composer {
	return &Composer{app: app}
}

// OpenSidebar handles the menu-toggle event. It only has an effect on
// routes that show a sidebar.
func (c *Composer) OpenSidebar(path string) {
	if !routing.Classify(path).ShowSidebar {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
}

// CloseSidebar handles an explicit close or an overlay dismiss. Closing an
// already-closed sidebar is a no-op.
func (c *Composer) CloseSidebar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
}

func (c *Composer) SidebarOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Compose assembles the chrome around content for path. Navigating to a
// different path closes the transient overlay; re-rendering the same path
// leaves state untouched.
func (c *Composer) Compose(path string, content g.Node) g.Node {
	c.mu.Lock()
	if path != c.lastPath {
		c.open = false
		c.lastPath = path
	}
	open := c.open
	theme := c.app.Theme()
	c.mu.Unlock()

	d := routing.Classify(path)

	themeClass := ""
	if theme == appctx.ThemeDark {
		themeClass = "dark"
	}

	return html.Div(
		html.Class("min-h-screen bg-background flex flex-col"),
		g.If(themeClass != "", g.Attr("data-theme", themeClass)),
		Header(path, d, theme),
		html.Div(
			html.Class("flex flex-1"),
			g.If(d.ShowSidebar, Sidebar(path, open)),
			html.Main(html.Class("flex-1 flex flex-col"), content),
		),
		g.If(d.ShowFooter, Footer()),
	)
}
