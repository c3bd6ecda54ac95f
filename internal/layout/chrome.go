package layout

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/yashdubey2004/AI-law/internal/appctx"
	"github.com/yashdubey2004/AI-law/internal/catalog"
	"github.com/yashdubey2004/AI-law/internal/routing"
)

// Header renders the top bar. The hamburger and account menu appear only on
// authenticated chrome; the landing nav appears only on the landing page.
func Header(path string, d routing.RouteDescriptor, theme appctx.Theme) g.Node {
	return html.Header(
		html.Class("sticky top-0 z-50 w-full border-b bg-background/95 backdrop-blur"),
		html.Div(
			html.Class("container flex h-16 items-center justify-between px-4"),
			html.Div(
				html.Class("flex items-center gap-4"),
				g.If(!d.IsPublic, hamburgerButton()),
				brandLink(),
			),
			g.If(d.ShowTopNav, landingNav(path)),
			html.Div(
				html.Class("flex items-center gap-4"),
				themeToggle(theme),
				headerAccountArea(d),
			),
		),
	)
}

func hamburgerButton() g.Node {
	return html.Button(
		html.Type("button"),
		html.ID("menu-toggle"),
		html.Class("md:hidden inline-flex items-center justify-center rounded-md p-2 hover:bg-accent"),
		g.Attr("aria-label", "Open navigation"),
		iconSVG(menuIcon),
	)
}

func brandLink() g.Node {
	return html.A(
		html.Href(routing.PathLanding),
		html.Class("flex items-center gap-2"),
		html.Div(
			html.Class("flex items-center justify-center w-8 h-8 bg-primary rounded-lg"),
			iconSVG(scaleIcon),
		),
		html.Span(html.Class("text-xl font-bold"), g.Text("NyayMantra")),
	)
}

func landingNav(path string) g.Node {
	navClass := func(href string) string {
		if href == path {
			return "text-sm font-medium text-primary"
		}
		return "text-sm font-medium text-muted-foreground hover:text-primary"
	}
	return html.Nav(
		html.Class("hidden md:flex items-center gap-6"),
		html.A(html.Href(routing.PathDashboard), html.Class(navClass(routing.PathDashboard)), g.Text("Dashboard")),
		html.A(html.Href("#features"), html.Class(navClass("#features")), g.Text("Features")),
		html.A(html.Href("#about"), html.Class(navClass("#about")), g.Text("About Us")),
	)
}

func themeToggle(theme appctx.Theme) g.Node {
	icon := moonIcon
	if theme == appctx.ThemeDark {
		icon = sunIcon
	}
	return html.Form(
		html.Method("post"),
		html.Action("/theme/toggle"),
		html.Class("inline"),
		html.Button(
			html.Type("submit"),
			html.Class("inline-flex items-center justify-center rounded-md p-2 hover:bg-accent"),
			g.Attr("aria-label", "Toggle theme"),
			iconSVG(icon),
		),
	)
}

func headerAccountArea(d routing.RouteDescriptor) g.Node {
	if d.ShowAccountMenu {
		return html.Div(
			html.Class("relative"),
			html.ID("account-menu"),
			html.Button(
				html.Type("button"),
				html.Class("relative h-8 w-8 rounded-full bg-secondary text-sm font-medium"),
				g.Text("JD"),
			),
			html.Div(
				html.Class("hidden absolute right-0 mt-2 w-56 rounded-md border bg-background shadow-md"),
				html.A(html.Href(routing.PathProfile), html.Class("block px-3 py-2 text-sm hover:bg-accent"), g.Text("Manage Profile")),
				html.A(html.Href(routing.PathLogin), html.Class("block px-3 py-2 text-sm hover:bg-accent"), g.Text("Logout")),
			),
		)
	}
	return html.Div(
		html.Class("flex items-center gap-2"),
		html.A(html.Href(routing.PathLogin), html.Class("inline-flex items-center rounded-md px-4 py-2 text-sm font-medium hover:bg-accent"), g.Text("Login")),
		html.A(html.Href(routing.PathSignup), html.Class("inline-flex items-center rounded-md bg-primary px-4 py-2 text-sm font-medium text-primary-foreground"), g.Text("Sign Up")),
	)
}

// Sidebar renders both the persistent desktop rail and the mobile overlay.
// The overlay's visibility follows open; the rail follows the descriptor
// alone.
func Sidebar(path string, open bool) g.Node {
	overlayClass := "fixed inset-0 z-40 hidden"
	if open {
		overlayClass = "fixed inset-0 z-40 md:hidden"
	}
	return g.Group([]g.Node{
		html.Div(
			html.ID("sidebar-overlay"),
			html.Class(overlayClass),
			html.Div(html.Class("absolute inset-0 bg-black/50"), g.Attr("data-dismiss", "sidebar")),
			html.Div(html.Class("absolute left-0 top-0 h-full w-64 bg-background p-0"), sidebarContent(path)),
		),
		html.Aside(
			html.Class("hidden md:flex h-full w-64 flex-col border-r bg-sidebar"),
			sidebarContent(path),
		),
	})
}

func sidebarContent(path string) g.Node {
	items := routing.SidebarItems()
	links := make([]g.Node, 0, len(items))
	for _, item := range items {
		class := "w-full flex items-center justify-start gap-2 rounded-md px-3 py-2 text-sm hover:bg-accent"
		if item.IsActive(path) {
			class = "w-full flex items-center justify-start gap-2 rounded-md px-3 py-2 text-sm bg-secondary"
		}
		links = append(links, html.A(
			html.Href(item.Href),
			html.Class(class),
			iconSVG(iconFor(item.Icon)),
			g.Text(item.Title),
		))
	}
	return html.Div(
		html.Class("flex h-full flex-col"),
		html.Div(
			html.Class("flex h-16 items-center border-b px-6"),
			html.H2(html.Class("text-lg font-semibold"), g.Text("Navigation")),
		),
		html.Div(html.Class("flex-1 space-y-2 px-3 py-4"), g.Group(links)),
	)
}

// Footer renders the landing-page footer.
func Footer() g.Node {
	return html.Footer(
		html.Class("border-t bg-muted/30"),
		html.Div(
			html.Class("container px-4 py-8 text-center text-sm text-muted-foreground"),
			html.P(g.Text("NyayMantra. Legal clarity for everyone.")),
			html.P(g.Text("© 2024 NyayMantra. All rights reserved.")),
		),
	)
}

// Toasts renders queued notifications. The caller drains the queue; this
// function only formats.
func Toasts(notifications []appctx.Notification) g.Node {
	if len(notifications) == 0 {
		return nil
	}
	nodes := make([]g.Node, 0, len(notifications))
	for _, n := range notifications {
		class := "rounded-md border bg-background p-4 shadow-md"
		if n.Severity == appctx.SeverityError {
			class = "rounded-md border border-destructive bg-destructive/10 p-4 shadow-md"
		}
		nodes = append(nodes, html.Div(
			html.Class(class),
			g.Attr("data-toast-id", n.ID),
			html.P(html.Class("font-medium"), g.Text(n.Title)),
			html.P(html.Class("text-sm text-muted-foreground"), g.Text(n.Description)),
		))
	}
	return html.Div(
		html.Class("fixed bottom-4 right-4 z-50 space-y-2"),
		g.Group(nodes),
	)
}

// Badge maps a variant to its pill styling; the switch covers every variant.
func Badge(v catalog.BadgeVariant, label string) g.Node {
	var class string
	switch v {
	case catalog.BadgeDefault:
		class = "bg-primary text-primary-foreground"
	case catalog.BadgeSecondary:
		class = "bg-secondary text-secondary-foreground"
	case catalog.BadgeOutline:
		class = "border text-foreground"
	case catalog.BadgeDestructive:
		class = "bg-destructive text-destructive-foreground"
	}
	return html.Span(
		html.Class("inline-flex items-center rounded-full px-2.5 py-0.5 text-xs font-semibold "+class),
		g.Text(label),
	)
}
