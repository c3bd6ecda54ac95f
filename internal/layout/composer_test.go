package layout

import (
	"strings"
	"testing"

	g "maragu.dev/gomponents"

	"github.com/yashdubey2004/AI-law/internal/appctx"
	"github.com/yashdubey2004/AI-law/internal/routing"
)

func render(t *testing.T, node g.Node) string {
	t.Helper()
	var b strings.Builder
	if err := node.Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestSidebarToggleLifecycle(t *testing.T) {
	t.Parallel()
	c := NewComposer(appctx.New())
	// Establish the current path first.
	_ = render(t, c.Compose(routing.PathDashboard, g.Text("content")))

	if c.SidebarOpen() {
		t.Fatal("sidebar should start closed")
	}
	c.OpenSidebar(routing.PathDashboard)
	if !c.SidebarOpen() {
		t.Fatal("OpenSidebar should open the overlay")
	}
	c.CloseSidebar()
	if c.SidebarOpen() {
		t.Fatal("CloseSidebar should close the overlay")
	}
	c.CloseSidebar()
	if c.SidebarOpen() {
		t.Fatal("a second CloseSidebar must stay closed")
	}
}

func TestOpenSidebarIgnoredOnPublicRoutes(t *testing.T) {
	t.Parallel()
	c := NewComposer(appctx.New())
	_ = render(t, c.Compose(routing.PathLanding, g.Text("content")))
	c.OpenSidebar(routing.PathLanding)
	if c.SidebarOpen() {
		t.Fatal("public routes offer no sidebar to open")
	}
}

func TestNavigationClosesOverlay(t *testing.T) {
	t.Parallel()
	c := NewComposer(appctx.New())
	_ = render(t, c.Compose(routing.PathDashboard, g.Text("content")))
	c.OpenSidebar(routing.PathDashboard)

	_ = render(t, c.Compose(routing.PathCaseSearch, g.Text("content")))
	if c.SidebarOpen() {
		t.Fatal("navigating should close the transient overlay")
	}
}

func TestComposeIsIdempotent(t *testing.T) {
	t.Parallel()
	c := NewComposer(appctx.New())
	first := render(t, c.Compose(routing.PathDashboard, g.Text("content")))
	second := render(t, c.Compose(routing.PathDashboard, g.Text("content")))
	if first != second {
		t.Fatal("composing the same path twice must be byte-identical")
	}

	c.OpenSidebar(routing.PathDashboard)
	_ = render(t, c.Compose(routing.PathDashboard, g.Text("content")))
	if !c.SidebarOpen() {
		t.Fatal("re-rendering the same path must not mutate sidebar state")
	}
}

func TestChromeFollowsDescriptor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		path        string
		wantSidebar bool
		wantFooter  bool
	}{
		{routing.PathLanding, false, true},
		{routing.PathLogin, false, false},
		{routing.PathSignup, false, false},
		{routing.PathDashboard, true, false},
		{routing.PathLegalNews, true, false},
		{"/unknown", true, false},
	}
	for _, tt := range tests {
		c := NewComposer(appctx.New())
		out := render(t, c.Compose(tt.path, g.Text("content")))
		if got := strings.Contains(out, "<aside"); got != tt.wantSidebar {
			t.Fatalf("%s: sidebar present = %v, want %v", tt.path, got, tt.wantSidebar)
		}
		if got := strings.Contains(out, "<footer"); got != tt.wantFooter {
			t.Fatalf("%s: footer present = %v, want %v", tt.path, got, tt.wantFooter)
		}
		wantHamburger := !routing.Classify(tt.path).IsPublic
		if got := strings.Contains(out, `id="menu-toggle"`); got != wantHamburger {
			t.Fatalf("%s: hamburger present = %v, want %v", tt.path, got, wantHamburger)
		}
	}
}

func TestActiveSidebarItemHighlighted(t *testing.T) {
	t.Parallel()
	c := NewComposer(appctx.New())
	out := render(t, c.Compose(routing.PathCaseSearch, g.Text("content")))
	if !strings.Contains(out, "bg-secondary") {
		t.Fatal("active sidebar item should carry the highlight class")
	}
	if strings.Count(out, "bg-secondary\"") < 1 {
		t.Fatal("expected at least one highlighted link")
	}
}

func TestHeaderVariants(t *testing.T) {
	t.Parallel()
	c := NewComposer(appctx.New())
	landing := render(t, c.Compose(routing.PathLanding, g.Text("content")))
	if !strings.Contains(landing, "About Us") {
		t.Fatal("landing header should show the marketing nav")
	}
	if !strings.Contains(landing, "Sign Up") {
		t.Fatal("public header should offer Sign Up")
	}

	c2 := NewComposer(appctx.New())
	dash := render(t, c2.Compose(routing.PathDashboard, g.Text("content")))
	if strings.Contains(dash, "About Us") {
		t.Fatal("authenticated header must not show the marketing nav")
	}
	if !strings.Contains(dash, "Manage Profile") {
		t.Fatal("authenticated header should show the account menu")
	}
}
